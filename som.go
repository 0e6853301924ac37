package somgo

import (
	"log/slog"

	"github.com/hupe1980/somgo/distance"
)

// SOM is a self-organizing map: a (rows, cols) lattice of dim-dimensional
// reference vectors trained online against input samples.
//
// A SOM is not safe for concurrent use while Fit is running; queries
// (Transform, QuantizationError, TopographicError, UMatrix) are pure
// reads and may run concurrently with each other between training runs.
type SOM struct {
	rows int
	cols int
	dim  int

	distFn      distance.Func
	initializer Initializer
	rng         *RNG
	logger      *Logger

	// weights is nil until the first Fit call (or InitWeights).
	weights *WeightGrid
}

// New creates a self-organizing map with a rows x cols lattice of
// dim-dimensional reference vectors. The weight grid stays uninitialized
// until Fit or InitWeights runs.
func New(rows, cols, dim int, optFns ...Option) (*SOM, error) {
	if rows < 1 || cols < 1 {
		return nil, ErrInvalidGridSize
	}
	if dim < 1 {
		return nil, &ErrInvalidDimension{Dimension: dim}
	}

	opts := options{
		metric:      distance.MetricL2,
		initializer: RandomInitializer{},
		seed:        DefaultSeed,
	}
	for _, fn := range optFns {
		fn(&opts)
	}

	distFn := opts.distFn
	if distFn == nil {
		fn, err := distance.Provider(opts.metric)
		if err != nil {
			return nil, err
		}
		distFn = fn
	}

	rng := opts.rng
	if rng == nil {
		rng = NewRNG(opts.seed)
	}

	logger := opts.logger
	if logger == nil {
		logger = NewTextLogger(slog.LevelInfo)
	}

	return &SOM{
		rows:        rows,
		cols:        cols,
		dim:         dim,
		distFn:      distFn,
		initializer: opts.initializer,
		rng:         rng,
		logger:      logger.WithGrid(rows, cols),
	}, nil
}

// Rows returns the number of lattice rows.
func (s *SOM) Rows() int { return s.rows }

// Cols returns the number of lattice columns.
func (s *SOM) Cols() int { return s.cols }

// Dim returns the input dimension.
func (s *SOM) Dim() int { return s.dim }

// Weights returns the current weight grid, or nil before initialization.
// The grid is owned by the model; callers that need a stable snapshot
// should Clone it.
func (s *SOM) Weights() *WeightGrid { return s.weights }

// InitWeights initializes the weight grid explicitly using the configured
// initializer. data may be nil for data-independent strategies. Any
// previously trained weights are replaced.
func (s *SOM) InitWeights(data [][]float32) error {
	g, err := s.initializer.Initialize(s.rows, s.cols, s.dim, data, s.rng)
	if err != nil {
		return err
	}
	s.weights = g
	return nil
}

// checkData validates that every sample matches the model's input
// dimension.
func (s *SOM) checkData(data [][]float32) error {
	for _, x := range data {
		if len(x) != s.dim {
			return &ErrDimensionMismatch{Expected: s.dim, Actual: len(x)}
		}
	}
	return nil
}

// distancesTo fills dst (length rows*cols) with the distance from x to
// every reference vector in row-major order. This is the vector-to-grid
// broadcast of the configured pairwise metric.
func (s *SOM) distancesTo(dst []float32, x []float32) {
	g := s.weights
	for i := 0; i < g.Cells(); i++ {
		dst[i] = s.distFn(x, g.cell(i))
	}
}
