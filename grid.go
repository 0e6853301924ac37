package somgo

// Coord identifies one cell of the lattice.
type Coord struct {
	Row int
	Col int
}

// WeightGrid holds the reference vectors of a map as a single flattened
// buffer of length rows*cols*dim, laid out row-major with the feature
// axis innermost. The flattened layout keeps the whole grid in one
// allocation and makes the per-sample update a single sweep.
//
// The grid is created once by an Initializer, mutated in place during
// training, and never resized.
type WeightGrid struct {
	rows int
	cols int
	dim  int
	data []float32
}

func newWeightGrid(rows, cols, dim int) *WeightGrid {
	return &WeightGrid{
		rows: rows,
		cols: cols,
		dim:  dim,
		data: make([]float32, rows*cols*dim),
	}
}

// Rows returns the number of lattice rows.
func (g *WeightGrid) Rows() int { return g.rows }

// Cols returns the number of lattice columns.
func (g *WeightGrid) Cols() int { return g.cols }

// Dim returns the number of components per reference vector.
func (g *WeightGrid) Dim() int { return g.dim }

// Cells returns the total number of lattice cells.
func (g *WeightGrid) Cells() int { return g.rows * g.cols }

// At returns the reference vector of cell (r, c) as a subslice view into
// the underlying buffer. Mutating the returned slice mutates the grid.
func (g *WeightGrid) At(r, c int) []float32 {
	i := (r*g.cols + c) * g.dim
	return g.data[i : i+g.dim]
}

// cell returns the reference vector at flattened row-major index i.
func (g *WeightGrid) cell(i int) []float32 {
	return g.data[i*g.dim : (i+1)*g.dim]
}

// coord converts a flattened row-major cell index into a Coord.
func (g *WeightGrid) coord(i int) Coord {
	return Coord{Row: i / g.cols, Col: i % g.cols}
}

// Raw returns the underlying flattened buffer. The caller must treat it
// as read-only while the owning model may still train.
func (g *WeightGrid) Raw() []float32 { return g.data }

// Clone returns a deep copy of the grid.
func (g *WeightGrid) Clone() *WeightGrid {
	c := newWeightGrid(g.rows, g.cols, g.dim)
	copy(c.data, g.data)
	return c
}
