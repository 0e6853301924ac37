package somgo

import (
	"fmt"
	"math"
)

// DefaultStepSize is the number of consumed samples between scheduler
// advances when no explicit step size is configured.
const DefaultStepSize = 100

// DecayFunc computes the annealed value at a given step. start and end
// are the configured bounds, step is the current annealing step and
// totalSteps the total number of steps in the schedule.
type DecayFunc func(start, end float64, step, totalSteps int) float64

// ExponentialDecay anneals from start towards end along an exponential
// curve: value(i) = start * exp(-rate*i) with
// rate = -ln(end/start)/totalSteps, so value(0) = start and
// value(totalSteps) = end. Both bounds must be positive.
func ExponentialDecay(start, end float64, step, totalSteps int) float64 {
	if totalSteps <= 0 {
		return start
	}
	rate := -math.Log(end/start) / float64(totalSteps)
	return start * math.Exp(-rate*float64(step))
}

// LinearDecay anneals from start to end along a straight line.
func LinearDecay(start, end float64, step, totalSteps int) float64 {
	if totalSteps <= 0 {
		return start
	}
	return start + (end-start)*float64(step)/float64(totalSteps)
}

// Scheduler is a stateful annealing process producing a decaying scalar
// (learning rate or neighborhood radius) as a function of cumulative
// samples consumed. It advances only once per stepSize samples: Step
// recomputes the value when the consumed count lands on a step boundary
// and returns the cached value otherwise.
type Scheduler struct {
	start       float64
	end         float64
	stepSize    int
	totalSteps  int
	currentStep int
	current     float64
	decay       DecayFunc
}

// SchedulerOption configures a Scheduler.
type SchedulerOption func(*Scheduler)

// WithDecayFunc replaces the exponential decay strategy. Custom decay
// functions are not bound to positive start/end values.
func WithDecayFunc(fn DecayFunc) SchedulerOption {
	return func(s *Scheduler) {
		s.decay = fn
	}
}

// NewScheduler creates a scheduler annealing from start to end, advancing
// once every stepSize consumed samples, over a training run of
// nSamples*nEpochs samples in total.
func NewScheduler(start, end float64, stepSize, nSamples, nEpochs int, optFns ...SchedulerOption) (*Scheduler, error) {
	if stepSize <= 0 {
		return nil, ErrInvalidStepSize
	}
	if nSamples <= 0 || nEpochs <= 0 {
		return nil, fmt.Errorf("scheduler requires positive sample and epoch counts, got %d samples, %d epochs", nSamples, nEpochs)
	}

	s := &Scheduler{
		start:      start,
		end:        end,
		stepSize:   stepSize,
		totalSteps: nSamples * nEpochs / stepSize,
		current:    start,
	}

	for _, fn := range optFns {
		fn(s)
	}

	if s.decay == nil {
		// The exponential default takes a logarithm of end/start.
		if start <= 0 || end <= 0 {
			return nil, ErrInvalidDecayBounds
		}
		s.decay = ExponentialDecay
	}

	return s, nil
}

// Step advances the schedule for the given cumulative sample count and
// returns the current value. The value is recomputed only when consumed
// is an exact multiple of the step size; intermediate counts return the
// previously computed value unchanged.
func (s *Scheduler) Step(consumed int) float64 {
	if consumed%s.stepSize == 0 {
		s.current = s.decay(s.start, s.end, s.currentStep, s.totalSteps)
		s.currentStep++
	}
	return s.current
}

// Value returns the current value without advancing the schedule.
func (s *Scheduler) Value() float64 {
	return s.current
}

// TotalSteps returns the number of annealing steps in the schedule.
func (s *Scheduler) TotalSteps() int {
	return s.totalSteps
}
