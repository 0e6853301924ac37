package somgo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRandomInitializer(t *testing.T) {
	t.Run("Shape", func(t *testing.T) {
		g, err := RandomInitializer{}.Initialize(5, 7, 3, nil, NewRNG(1))
		require.NoError(t, err)
		assert.Equal(t, 5, g.Rows())
		assert.Equal(t, 7, g.Cols())
		assert.Equal(t, 3, g.Dim())
	})

	t.Run("Deterministic", func(t *testing.T) {
		a, err := RandomInitializer{}.Initialize(4, 4, 2, nil, NewRNG(42))
		require.NoError(t, err)
		b, err := RandomInitializer{}.Initialize(4, 4, 2, nil, NewRNG(42))
		require.NoError(t, err)
		assert.Equal(t, a.Raw(), b.Raw())

		c, err := RandomInitializer{}.Initialize(4, 4, 2, nil, NewRNG(43))
		require.NoError(t, err)
		assert.NotEqual(t, a.Raw(), c.Raw())
	})
}

func TestPCAInitializer(t *testing.T) {
	t.Run("RequiresData", func(t *testing.T) {
		_, err := PCAInitializer{}.Initialize(4, 4, 2, nil, nil)
		require.ErrorIs(t, err, ErrPCARequiresData)
	})

	t.Run("RequiresTwoFeatures", func(t *testing.T) {
		_, err := PCAInitializer{}.Initialize(4, 4, 1, [][]float32{{1}, {2}}, nil)
		require.Error(t, err)
	})

	t.Run("RequiresTwoSamples", func(t *testing.T) {
		_, err := PCAInitializer{}.Initialize(4, 4, 2, [][]float32{{1, 2}}, nil)
		require.Error(t, err)
	})

	t.Run("AlignsWithDominantVariance", func(t *testing.T) {
		// Variance along the first feature dwarfs the second, so the
		// grid must spread much wider along feature 0 than feature 1.
		data := [][]float32{
			{-10, -1}, {-5, 1}, {0, -1}, {5, 1}, {10, -1},
			{-10, 1}, {-5, -1}, {0, 1}, {5, -1}, {10, 1},
		}

		g, err := PCAInitializer{}.Initialize(6, 6, 2, data, nil)
		require.NoError(t, err)

		spread := func(d int) float32 {
			lo, hi := g.At(0, 0)[d], g.At(0, 0)[d]
			for i := 0; i < g.Cells(); i++ {
				v := g.cell(i)[d]
				if v < lo {
					lo = v
				}
				if v > hi {
					hi = v
				}
			}
			return hi - lo
		}
		assert.Greater(t, spread(0), 4*spread(1))
	})

	t.Run("NonSquareGrid", func(t *testing.T) {
		data := [][]float32{
			{-3, -1, 0}, {-1, 1, 0}, {1, -1, 0}, {3, 1, 0},
		}
		g, err := PCAInitializer{}.Initialize(3, 5, 3, data, nil)
		require.NoError(t, err)
		assert.Equal(t, 3, g.Rows())
		assert.Equal(t, 5, g.Cols())
		assert.Len(t, g.Raw(), 3*5*3)
	})

	t.Run("Deterministic", func(t *testing.T) {
		data := [][]float32{{-2, 0}, {-1, 1}, {1, -1}, {2, 0}}
		a, err := PCAInitializer{}.Initialize(4, 4, 2, data, nil)
		require.NoError(t, err)
		b, err := PCAInitializer{}.Initialize(4, 4, 2, data, nil)
		require.NoError(t, err)
		assert.Equal(t, a.Raw(), b.Raw())
	})
}

func TestSpacedAxis(t *testing.T) {
	t.Run("SinglePoint", func(t *testing.T) {
		assert.Equal(t, []float64{0}, spacedAxis(1, 3.0))
	})

	t.Run("Endpoints", func(t *testing.T) {
		axis := spacedAxis(5, 2.0)
		require.Len(t, axis, 5)
		assert.InDelta(t, -2.0, axis[0], 1e-12)
		assert.InDelta(t, 0.0, axis[2], 1e-12)
		assert.InDelta(t, 2.0, axis[4], 1e-12)
	})
}
