package geometry

// CoilSpec holds the scalar parameters of a rectangular spiral coil.
// Lengths are millimetres; the outermost turn spans the full
// [0, OuterWidth] x [0, OuterHeight] rectangle.
type CoilSpec struct {
	OuterWidth  float64 `json:"lx"`    // Lx, outer rectangle width
	OuterHeight float64 `json:"by"`    // By, outer rectangle height
	TraceWidth  float64 `json:"width"` // conductor trace width
	Gap         float64 `json:"gap"`   // clearance between adjacent turns
	Turns       int     `json:"turns"` // number of concentric turns, outermost first
}

// Pitch returns the centre-to-centre spacing between adjacent turns.
func (s CoilSpec) Pitch() float64 {
	return s.TraceWidth + s.Gap
}

// Validate checks the spec up front and returns an *InvalidConfigError
// describing the first problem found. Beyond the scalar range checks,
// it verifies that every requested turn keeps strictly positive width
// and height, so the generator never emits crossed or inverted
// rectangles.
func (s CoilSpec) Validate() error {
	if s.Turns < 1 {
		return &InvalidConfigError{Spec: s, Reason: "turn count must be at least 1"}
	}
	if s.TraceWidth <= 0 {
		return &InvalidConfigError{Spec: s, Reason: "trace width must be positive"}
	}
	if s.Gap < 0 {
		return &InvalidConfigError{Spec: s, Reason: "gap must not be negative"}
	}
	if s.OuterWidth <= 0 || s.OuterHeight <= 0 {
		return &InvalidConfigError{Spec: s, Turn: 1, Reason: "outer rectangle has non-positive extent"}
	}

	d := s.Pitch()
	for t := 2; t <= s.Turns; t++ {
		i := float64(t - 1)
		left := i * d
		right := s.OuterWidth - i*d
		bottom := (i - 1) * d
		top := s.OuterHeight - i*d
		if right <= left || top <= bottom {
			return &InvalidConfigError{
				Spec:   s,
				Turn:   t,
				Reason: "turns collapse before reaching the requested count; reduce turns, width, or gap",
			}
		}
	}
	return nil
}
