package geometry

import "fmt"

// InvalidConfigError reports a coil specification whose turns collapse
// before reaching the requested count, or whose scalar parameters are
// out of range. The request cannot produce a valid coil.
type InvalidConfigError struct {
	Spec   CoilSpec
	Turn   int // 1-based index of the first degenerate turn, 0 if a scalar check failed
	Reason string
}

func (e *InvalidConfigError) Error() string {
	if e.Turn > 0 {
		return fmt.Sprintf("invalid coil configuration: turn %d of %d: %s", e.Turn, e.Spec.Turns, e.Reason)
	}
	return fmt.Sprintf("invalid coil configuration: %s", e.Reason)
}

// NonAxisAlignedError reports a path segment that changes both
// coordinates. The offsetter only handles axis-aligned rectangular
// spirals, so this indicates a corrupted or non-rectangular path.
type NonAxisAlignedError struct {
	Index int // segment index within the path
	Start Point
	End   Point
}

func (e *NonAxisAlignedError) Error() string {
	return fmt.Sprintf("non-axis-aligned segment at index %d: (%g,%g) -> (%g,%g)",
		e.Index, e.Start.X, e.Start.Y, e.End.X, e.End.Y)
}

// DegenerateSegmentError reports a zero-length path segment.
type DegenerateSegmentError struct {
	Index int
	At    Point
}

func (e *DegenerateSegmentError) Error() string {
	return fmt.Sprintf("zero-length segment at index %d: (%g,%g)", e.Index, e.At.X, e.At.Y)
}

// LengthMismatchError reports an inner path whose length does not
// match the expected 4*N points when regrouping into turns. This is a
// caller precondition violation, not a recoverable condition.
type LengthMismatchError struct {
	Got  int
	Want int
}

func (e *LengthMismatchError) Error() string {
	return fmt.Sprintf("path length mismatch: got %d points, want %d", e.Got, e.Want)
}
