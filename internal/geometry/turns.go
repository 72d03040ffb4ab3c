package geometry

// GenerateTurns computes the outer-edge corner points of every
// concentric rectangular turn, outermost first. The spec is validated
// before any geometry is produced.
func GenerateTurns(spec CoilSpec) ([]Turn, error) {
	if err := spec.Validate(); err != nil {
		return nil, err
	}

	d := spec.Pitch()
	turns := make([]Turn, 0, spec.Turns)

	for t := 1; t <= spec.Turns; t++ {
		if t == 1 {
			turns = append(turns, Turn{
				{0, 0},
				{0, spec.OuterHeight},
				{spec.OuterWidth, spec.OuterHeight},
				{spec.OuterWidth, 0},
			})
			continue
		}

		i := float64(t - 1)
		left := i * d
		right := spec.OuterWidth - i*d
		top := spec.OuterHeight - i*d

		// The bottom edge is deliberately asymmetric: the left-lower
		// corner sits one pitch lower ((i-1)*d) than the right-lower
		// corner (i*d). That offset opens the small bottom gap that
		// stitches the turns into one continuous inward spiral instead
		// of N disjoint rectangles. Do not symmetrise it.
		turns = append(turns, Turn{
			{left, (i - 1) * d},
			{left, top},
			{right, top},
			{right, i * d},
		})
	}
	return turns, nil
}
