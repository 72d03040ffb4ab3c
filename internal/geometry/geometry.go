// Package geometry computes the planar coordinate geometry of
// rectangular, inward-spiralling coil traces.
//
// All computation is pure and stateless: every function derives its
// result from its arguments alone, so concurrent requests are safe
// without locking.
package geometry

// Epsilon is the tolerance used when classifying path segments as
// vertical, horizontal, or degenerate.
const Epsilon = 1e-12

// Point is an (x, y) coordinate pair in millimetres.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Turn holds the four corner points of one rectangular loop of the
// coil, in traversal order: left-lower, left-upper, right-upper,
// right-lower.
type Turn [4]Point

// Path is an ordered polyline. Consecutive points must differ in
// exactly one coordinate (axis-aligned segments only) and by a
// non-zero amount.
type Path []Point

// Orientation tags a path segment as vertical or horizontal.
type Orientation int

const (
	Vertical Orientation = iota
	Horizontal
)

func (o Orientation) String() string {
	switch o {
	case Vertical:
		return "vertical"
	case Horizontal:
		return "horizontal"
	default:
		return "unknown"
	}
}

// Segment is a directed pair of adjacent path points plus its derived
// orientation.
type Segment struct {
	Start       Point
	End         Point
	Orientation Orientation
}
