package geometry

// Flatten concatenates the per-turn corner points into a single
// clockwise spiral polyline, turn 1 first through turn N last. The
// connection from each turn's right-lower corner to the next turn's
// left-lower corner runs along the bottom edge.
func Flatten(turns []Turn) Path {
	path := make(Path, 0, 4*len(turns))
	for _, t := range turns {
		path = append(path, t[0], t[1], t[2], t[3])
	}
	return path
}

// Regroup slices a 4*n-point path back into n turns of four corners
// each, preserving index alignment with the outer turn sequence.
func Regroup(path Path, n int) ([]Turn, error) {
	if len(path) != 4*n {
		return nil, &LengthMismatchError{Got: len(path), Want: 4 * n}
	}
	turns := make([]Turn, n)
	for k := 0; k < n; k++ {
		copy(turns[k][:], path[4*k:4*k+4])
	}
	return turns, nil
}
