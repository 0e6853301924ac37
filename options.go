package somgo

import (
	"github.com/hupe1980/somgo/distance"
)

// DefaultSeed seeds the model-owned generator when neither WithSeed nor
// WithRNG is given. A fixed default keeps untouched models reproducible.
const DefaultSeed int64 = 1

type options struct {
	metric      distance.Metric
	distFn      distance.Func
	initializer Initializer
	rng         *RNG
	seed        int64
	logger      *Logger
}

// Option configures model construction.
type Option func(*options)

// WithMetric selects the distance metric used for BMU search and all
// derived metrics. Defaults to MetricL2 (Euclidean).
func WithMetric(m distance.Metric) Option {
	return func(o *options) {
		o.metric = m
	}
}

// WithDistanceFunc injects a custom pairwise distance function. Takes
// precedence over WithMetric.
func WithDistanceFunc(fn distance.Func) Option {
	return func(o *options) {
		o.distFn = fn
	}
}

// WithInitializer selects the weight initialization strategy.
// Defaults to RandomInitializer.
func WithInitializer(init Initializer) Option {
	return func(o *options) {
		o.initializer = init
	}
}

// WithSeed seeds the model-owned random generator.
func WithSeed(seed int64) Option {
	return func(o *options) {
		o.seed = seed
	}
}

// WithRNG supplies an externally constructed generator. Takes precedence
// over WithSeed. The model assumes exclusive ownership.
func WithRNG(rng *RNG) Option {
	return func(o *options) {
		o.rng = rng
	}
}

// WithLogger configures the logger used for per-epoch progress lines.
// Defaults to a text logger on stderr.
func WithLogger(l *Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

type fitOptions struct {
	epochs  int
	lr      *Scheduler
	sigma   *Scheduler
	shuffle bool
	verbose bool
}

// FitOption configures a single training run.
type FitOption func(*fitOptions)

// WithEpochs sets the number of training epochs. Defaults to 20.
func WithEpochs(n int) FitOption {
	return func(o *fitOptions) {
		o.epochs = n
	}
}

// WithLRScheduler supplies the learning-rate schedule. The default decays
// exponentially from 1.0 to 0.01, stepping every 100 samples.
func WithLRScheduler(s *Scheduler) FitOption {
	return func(o *fitOptions) {
		o.lr = s
	}
}

// WithSigmaScheduler supplies the neighborhood-radius schedule. The
// default decays exponentially from max(rows, cols)/2 to 1.0, stepping
// every 100 samples.
func WithSigmaScheduler(s *Scheduler) FitOption {
	return func(o *fitOptions) {
		o.sigma = s
	}
}

// WithShuffle toggles per-epoch random permutation of the sample order.
// Enabled by default. Disabling it processes samples in their original
// order every epoch.
func WithShuffle(shuffle bool) FitOption {
	return func(o *fitOptions) {
		o.shuffle = shuffle
	}
}

// WithVerbose toggles the per-epoch progress line. Enabled by default.
func WithVerbose(verbose bool) FitOption {
	return func(o *fitOptions) {
		o.verbose = verbose
	}
}
