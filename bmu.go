package somgo

// bmu returns the coordinate of the best matching unit together with its
// distance. dst must already hold the distances from a sample to every
// cell in row-major order. Ties resolve to the first cell in row-major
// order (strict less-than comparison), which keeps BMU search
// deterministic.
func (s *SOM) bmu(dst []float32) (Coord, float32) {
	best := 0
	for i := 1; i < len(dst); i++ {
		if dst[i] < dst[best] {
			best = i
		}
	}
	return s.weights.coord(best), dst[best]
}

// bmu2 returns the two closest cells, closest first, plus the distance of
// the closest. The two cells are always distinct on grids with at least
// two cells; on a single-cell grid both coordinates name the one cell.
func (s *SOM) bmu2(dst []float32) (Coord, Coord, float32) {
	best, second := -1, -1
	for i, d := range dst {
		switch {
		case best == -1 || d < dst[best]:
			second = best
			best = i
		case second == -1 || d < dst[second]:
			second = i
		}
	}
	if second == -1 {
		second = best
	}
	return s.weights.coord(best), s.weights.coord(second), dst[best]
}
