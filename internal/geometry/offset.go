package geometry

import "gonum.org/v1/gonum/floats/scalar"

// classifySegment derives the orientation of the segment from a to b,
// or fails when the segment is diagonal or has zero length. idx is the
// segment index reported in errors.
func classifySegment(idx int, a, b Point) (Orientation, error) {
	dxZero := scalar.EqualWithinAbs(b.X, a.X, Epsilon)
	dyZero := scalar.EqualWithinAbs(b.Y, a.Y, Epsilon)

	switch {
	case !dxZero && !dyZero:
		return 0, &NonAxisAlignedError{Index: idx, Start: a, End: b}
	case dxZero && dyZero:
		return 0, &DegenerateSegmentError{Index: idx, At: a}
	case dxZero:
		return Vertical, nil
	default:
		return Horizontal, nil
	}
}

// offsetVector returns the perpendicular displacement that shifts a
// segment to the right-hand side of its direction of travel. For the
// clockwise, axis-aligned outer path the interior of the trace always
// lies on the right, so this places the offset segment on the trace's
// inside edge.
func offsetVector(a, b Point, o Orientation, width float64) (dx, dy float64) {
	if o == Vertical {
		if b.Y > a.Y { // travelling up: right is +x
			return width, 0
		}
		return -width, 0 // travelling down: right is -x
	}
	if b.X > a.X { // travelling right: right is -y
		return 0, -width
	}
	return 0, width // travelling left: right is +y
}

// OffsetInner derives the inside-edge polyline of the trace from the
// clockwise outer path. Each segment is shifted perpendicular to its
// direction of travel by width, then adjacent offset segments are
// re-intersected to reconstruct clean corner vertices. The result has
// the same length as the input; inputs of fewer than two points yield
// an empty path without error.
func OffsetInner(outer Path, width float64) (Path, error) {
	if len(outer) < 2 {
		return Path{}, nil
	}

	segs := make([]Segment, 0, len(outer)-1)
	for i := 0; i < len(outer)-1; i++ {
		a, b := outer[i], outer[i+1]
		ori, err := classifySegment(i, a, b)
		if err != nil {
			return nil, err
		}
		dx, dy := offsetVector(a, b, ori, width)
		segs = append(segs, Segment{
			Start:       Point{a.X + dx, a.Y + dy},
			End:         Point{b.X + dx, b.Y + dy},
			Orientation: ori,
		})
	}

	inner := make(Path, 0, len(outer))
	inner = append(inner, segs[0].Start)
	for i := 1; i < len(segs); i++ {
		prev, cur := segs[i-1], segs[i]
		if prev.Orientation == cur.Orientation {
			// Straight continuation. A clean rectangular spiral
			// alternates orientations, but a collinear pair is still
			// joined at the later segment's start.
			inner = append(inner, cur.Start)
			continue
		}
		// Corner: the vertical member fixes x, the horizontal fixes y.
		if prev.Orientation == Vertical {
			inner = append(inner, Point{prev.Start.X, cur.Start.Y})
		} else {
			inner = append(inner, Point{cur.Start.X, prev.Start.Y})
		}
	}
	inner = append(inner, segs[len(segs)-1].End)

	return inner, nil
}
