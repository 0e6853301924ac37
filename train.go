package somgo

// Training defaults. The stock schedules follow the classic annealed
// setup: the learning rate decays from 1.0 to 0.01 and the neighborhood
// radius from max(rows, cols)/2 to 1.0, both stepping every
// DefaultStepSize samples over the whole run.
const (
	DefaultEpochs            = 20
	DefaultLearningRateStart = 1.0
	DefaultLearningRateEnd   = 0.01
	DefaultSigmaEnd          = 1.0
)

// FitResult holds the outcome of one training run: the final weight grid
// and the per-epoch metric series.
type FitResult struct {
	Weights *WeightGrid

	// QuantizationErrors[e] is the mean BMU distance over the full
	// training set after epoch e.
	QuantizationErrors []float64

	// TopographicErrors[e] is the percentage of samples whose two BMUs
	// were not lattice-adjacent after epoch e.
	TopographicErrors []float64
}

// Fit trains the map online against data. Weights are initialized with
// the configured initializer if they do not exist yet. Every single
// sample mutates the grid, so sample order matters: shuffling (on by
// default) draws an independent permutation per epoch from the
// model-owned generator.
//
// After each epoch both quality metrics are computed over the full
// training set in its original order and appended to the result series.
// A failure aborts the run; weights already updated by earlier samples
// of the same run keep their mutated values.
func (s *SOM) Fit(data [][]float32, optFns ...FitOption) (*FitResult, error) {
	opts := fitOptions{
		epochs:  DefaultEpochs,
		shuffle: true,
		verbose: true,
	}
	for _, fn := range optFns {
		fn(&opts)
	}

	if opts.epochs < 1 {
		return nil, ErrInvalidEpochs
	}
	n := len(data)
	if n == 0 {
		return nil, ErrEmptyTrainingSet
	}
	if err := s.checkData(data); err != nil {
		return nil, err
	}

	if s.weights == nil {
		if err := s.InitWeights(data); err != nil {
			return nil, err
		}
	}

	lrSched := opts.lr
	if lrSched == nil {
		var err error
		lrSched, err = NewScheduler(DefaultLearningRateStart, DefaultLearningRateEnd, DefaultStepSize, n, opts.epochs)
		if err != nil {
			return nil, err
		}
	}
	sigmaSched := opts.sigma
	if sigmaSched == nil {
		var err error
		sigmaSched, err = NewScheduler(float64(max(s.rows, s.cols))/2, DefaultSigmaEnd, DefaultStepSize, n, opts.epochs)
		if err != nil {
			return nil, err
		}
	}

	cells := s.weights.Cells()
	dist := make([]float32, cells)
	hood := make([]float32, cells)

	result := &FitResult{
		QuantizationErrors: make([]float64, 0, opts.epochs),
		TopographicErrors:  make([]float64, 0, opts.epochs),
	}

	for epoch := 0; epoch < opts.epochs; epoch++ {
		var order []int
		if opts.shuffle {
			order = s.rng.Perm(n)
		}

		var lr, sigma float64
		for i := 0; i < n; i++ {
			idx := i
			if order != nil {
				idx = order[i]
			}

			total := epoch*n + i
			lr = lrSched.Step(total)
			sigma = sigmaSched.Step(total)
			if sigma == 0 {
				return nil, ErrZeroSigma
			}

			x := data[idx]
			s.distancesTo(dist, x)
			b, _ := s.bmu(dist)

			gridDistances(hood, s.rows, s.cols, b)
			gaussianNeighborhood(hood, sigma)
			s.weights.update(x, hood, lr)
		}

		qe, err := s.QuantizationError(data)
		if err != nil {
			return nil, err
		}
		te, err := s.TopographicError(data)
		if err != nil {
			return nil, err
		}
		result.QuantizationErrors = append(result.QuantizationErrors, qe)
		result.TopographicErrors = append(result.TopographicErrors, te)

		if opts.verbose {
			s.logger.LogEpoch(epoch, qe, te, lr, sigma)
		}
	}

	result.Weights = s.weights
	return result, nil
}
