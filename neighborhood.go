package somgo

import "math"

// gridDistances fills dst (length rows*cols) with the squared lattice
// distance (br-r)^2 + (bc-c)^2 from the BMU to every cell. The table is
// recomputed per sample because the BMU moves; dst is a reusable buffer.
func gridDistances(dst []float32, rows, cols int, b Coord) {
	i := 0
	for r := 0; r < rows; r++ {
		dr := float32(b.Row - r)
		for c := 0; c < cols; c++ {
			dc := float32(b.Col - c)
			dst[i] = dr*dr + dc*dc
			i++
		}
	}
}

// gaussianNeighborhood converts the squared grid distances in h into
// Gaussian neighborhood weights in place: h[i] = exp(-h[i]/(2*sigma^2)).
// The weight is 1 at the BMU and decays with lattice distance; sigma
// controls the radius of influence. sigma must be non-zero.
func gaussianNeighborhood(h []float32, sigma float64) {
	denom := 2 * sigma * sigma
	for i, d := range h {
		h[i] = float32(math.Exp(-float64(d) / denom))
	}
}

// update applies the Kohonen online update rule for a single sample x:
// w[r,c] += lr * h[r,c] * (x - w[r,c]) over the entire grid, with h the
// neighborhood weight per cell. Cells near the BMU move strongly toward
// x, distant cells move negligibly. The grid is read and written in one
// sweep; within a sample there is no partial-overwrite hazard.
func (g *WeightGrid) update(x []float32, h []float32, lr float64) {
	for i := 0; i < g.Cells(); i++ {
		scale := float32(lr) * h[i]
		w := g.cell(i)
		for d := range w {
			w[d] += scale * (x[d] - w[d])
		}
	}
}
