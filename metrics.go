package somgo

import (
	"math"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// bmuInfo carries the batch scan result for one sample.
type bmuInfo struct {
	best   Coord
	second Coord
	dist   float32
}

// scan finds the two best matching units and the BMU distance for every
// sample. Samples are fanned out across GOMAXPROCS workers; the grid is
// only read, and each result lands in its own slot, so the output is
// deterministic regardless of scheduling.
func (s *SOM) scan(data [][]float32) ([]bmuInfo, error) {
	if s.weights == nil {
		return nil, ErrNotFitted
	}
	if err := s.checkData(data); err != nil {
		return nil, err
	}

	n := len(data)
	results := make([]bmuInfo, n)
	cells := s.weights.Cells()

	workers := runtime.GOMAXPROCS(0)
	if workers > n {
		workers = n
	}
	if workers <= 1 {
		dst := make([]float32, cells)
		for i, x := range data {
			s.distancesTo(dst, x)
			b, sec, d := s.bmu2(dst)
			results[i] = bmuInfo{best: b, second: sec, dist: d}
		}
		return results, nil
	}

	chunk := (n + workers - 1) / workers
	g := new(errgroup.Group)
	for lo := 0; lo < n; lo += chunk {
		hi := min(lo+chunk, n)
		g.Go(func() error {
			dst := make([]float32, cells)
			for i := lo; i < hi; i++ {
				s.distancesTo(dst, data[i])
				b, sec, d := s.bmu2(dst)
				results[i] = bmuInfo{best: b, second: sec, dist: d}
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// BMU returns the best matching unit for a single input vector: the
// coordinate of the reference vector closest to x under the configured
// metric.
func (s *SOM) BMU(x []float32) (Coord, error) {
	if s.weights == nil {
		return Coord{}, ErrNotFitted
	}
	if len(x) != s.dim {
		return Coord{}, &ErrDimensionMismatch{Expected: s.dim, Actual: len(x)}
	}
	dst := make([]float32, s.weights.Cells())
	s.distancesTo(dst, x)
	b, _ := s.bmu(dst)
	return b, nil
}

// Transform returns the BMU coordinate of every sample. The model is not
// mutated; calling Transform twice on the same data yields identical
// coordinates.
func (s *SOM) Transform(data [][]float32) ([]Coord, error) {
	infos, err := s.scan(data)
	if err != nil {
		return nil, err
	}
	coords := make([]Coord, len(infos))
	for i, info := range infos {
		coords[i] = info.best
	}
	return coords, nil
}

// Predict is an alias of Transform, kept for estimator-style APIs where
// cluster assignment is phrased as prediction.
func (s *SOM) Predict(data [][]float32) ([]Coord, error) {
	return s.Transform(data)
}

// QuantizationError returns the mean distance from each sample to its
// best matching unit. Lower is better.
func (s *SOM) QuantizationError(data [][]float32) (float64, error) {
	if len(data) == 0 {
		return 0, ErrEmptyTrainingSet
	}
	infos, err := s.scan(data)
	if err != nil {
		return 0, err
	}
	var sum float64
	for _, info := range infos {
		sum += float64(info.dist)
	}
	return sum / float64(len(infos)), nil
}

// TopographicError returns the percentage (0..100) of samples whose two
// closest reference vectors are not lattice-adjacent. Two cells count as
// adjacent when both their row and column coordinates differ by at most
// one. Grids with fewer than two cells cannot have a distinct second BMU
// and always score 0.
func (s *SOM) TopographicError(data [][]float32) (float64, error) {
	if len(data) == 0 {
		return 0, ErrEmptyTrainingSet
	}
	if s.weights == nil {
		return 0, ErrNotFitted
	}
	if s.weights.Cells() < 2 {
		if err := s.checkData(data); err != nil {
			return 0, err
		}
		return 0, nil
	}

	infos, err := s.scan(data)
	if err != nil {
		return 0, err
	}
	var errs int
	for _, info := range infos {
		if !adjacent(info.best, info.second) {
			errs++
		}
	}
	return 100 * float64(errs) / float64(len(infos)), nil
}

// adjacent reports whether two lattice coordinates are within one cell
// of each other on both axes.
func adjacent(a, b Coord) bool {
	return abs(a.Row-b.Row) <= 1 && abs(a.Col-b.Col) <= 1
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// UMatrix returns the unified distance matrix of the trained grid: for
// every cell, the weighted mean input-space distance to its existing
// lattice neighbors (up to 8, clipped at the edges), each neighbor
// weighted by the inverse lattice distance 1/sqrt(dr^2+dc^2) so diagonal
// neighbors count less than orthogonal ones. High values mark cluster
// boundaries.
func (s *SOM) UMatrix() ([][]float64, error) {
	if s.weights == nil {
		return nil, ErrNotFitted
	}

	g := s.weights
	u := make([][]float64, s.rows)
	for r := range u {
		u[r] = make([]float64, s.cols)
		for c := range u[r] {
			var num, den float64
			for dr := -1; dr <= 1; dr++ {
				for dc := -1; dc <= 1; dc++ {
					if dr == 0 && dc == 0 {
						continue
					}
					nr, nc := r+dr, c+dc
					if nr < 0 || nr >= s.rows || nc < 0 || nc >= s.cols {
						continue
					}
					w := 1 / math.Sqrt(float64(dr*dr+dc*dc))
					num += w * float64(s.distFn(g.At(r, c), g.At(nr, nc)))
					den += w
				}
			}
			if den > 0 {
				u[r][c] = num / den
			}
		}
	}
	return u, nil
}
