package somgo

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// Initializer produces the initial grid of reference vectors.
type Initializer interface {
	// Initialize creates a (rows, cols, dim) weight grid. data holds the
	// training samples for data-dependent strategies and may be nil for
	// strategies that ignore it. rng is the model-owned generator.
	Initialize(rows, cols, dim int, data [][]float32, rng *RNG) (*WeightGrid, error)
}

// RandomInitializer fills every component of every reference vector with
// an independent draw from a standard normal distribution. It does not
// look at the training data.
type RandomInitializer struct{}

// Initialize implements the Initializer interface.
func (RandomInitializer) Initialize(rows, cols, dim int, _ [][]float32, rng *RNG) (*WeightGrid, error) {
	g := newWeightGrid(rows, cols, dim)
	rng.FillNorm(g.data)
	return g, nil
}

// PCAInitializer seeds the grid from the top-2 principal components of
// the training data, so the initial map topology already aligns with the
// data's dominant variance directions. This typically speeds up
// convergence compared to random initialization.
//
// The row axis spans PC1 scaled by the square root of its explained
// variance over rows linearly spaced points in [-1, 1]; the column axis
// spans PC2 the same way over cols points. Cell (r, c) becomes
// alpha[r]*PC1 + beta[c]*PC2.
type PCAInitializer struct{}

// Initialize implements the Initializer interface. It fails with
// ErrPCARequiresData when no training data is supplied, and requires at
// least 2 samples and 2 features to extract two components.
func (PCAInitializer) Initialize(rows, cols, dim int, data [][]float32, _ *RNG) (*WeightGrid, error) {
	if len(data) == 0 {
		return nil, ErrPCARequiresData
	}
	if dim < 2 {
		return nil, fmt.Errorf("pca initialization needs at least 2 features: %w", &ErrInvalidDimension{Dimension: dim})
	}
	if len(data) < 2 {
		return nil, fmt.Errorf("pca initialization needs at least 2 samples, got %d", len(data))
	}

	pcs, variances, err := principalComponents(data, dim, 2)
	if err != nil {
		return nil, err
	}

	alpha := spacedAxis(rows, math.Sqrt(variances[0]))
	beta := spacedAxis(cols, math.Sqrt(variances[1]))

	g := newWeightGrid(rows, cols, dim)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			w := g.At(r, c)
			for d := 0; d < dim; d++ {
				w[d] = float32(alpha[r]*pcs[0][d] + beta[c]*pcs[1][d])
			}
		}
	}
	return g, nil
}

// principalComponents returns the top-k principal component directions
// and their explained variances, computed via thin SVD of the centered
// data matrix.
func principalComponents(data [][]float32, dim, k int) ([][]float64, []float64, error) {
	n := len(data)

	x := mat.NewDense(n, dim, nil)
	for i, row := range data {
		if len(row) != dim {
			return nil, nil, &ErrDimensionMismatch{Expected: dim, Actual: len(row)}
		}
		for j, v := range row {
			x.Set(i, j, float64(v))
		}
	}

	// Center each feature column.
	for j := 0; j < dim; j++ {
		col := mat.Col(nil, j, x)
		mean := stat.Mean(col, nil)
		for i := 0; i < n; i++ {
			x.Set(i, j, x.At(i, j)-mean)
		}
	}

	var svd mat.SVD
	if ok := svd.Factorize(x, mat.SVDThin); !ok {
		return nil, nil, fmt.Errorf("pca initialization: svd factorization failed")
	}

	var v mat.Dense
	svd.VTo(&v)
	s := svd.Values(nil)
	if len(s) < k {
		return nil, nil, fmt.Errorf("pca initialization: got %d singular values, need %d", len(s), k)
	}

	pcs := make([][]float64, k)
	variances := make([]float64, k)
	for c := 0; c < k; c++ {
		pcs[c] = mat.Col(nil, c, &v)
		variances[c] = s[c] * s[c] / float64(n-1)
	}
	return pcs, variances, nil
}

// spacedAxis returns n points linearly spaced in [-1, 1], scaled. A
// single-point axis sits at the origin.
func spacedAxis(n int, scale float64) []float64 {
	axis := make([]float64, n)
	if n == 1 {
		return axis
	}
	step := 2.0 / float64(n-1)
	for i := range axis {
		axis[i] = (-1.0 + float64(i)*step) * scale
	}
	return axis
}
