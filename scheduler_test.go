package somgo

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSchedulerValidation(t *testing.T) {
	tests := []struct {
		name     string
		start    float64
		end      float64
		stepSize int
		expected error
	}{
		{"ZeroStepSize", 1.0, 0.01, 0, ErrInvalidStepSize},
		{"NegativeStepSize", 1.0, 0.01, -5, ErrInvalidStepSize},
		{"ZeroStart", 0, 0.01, 10, ErrInvalidDecayBounds},
		{"ZeroEnd", 1.0, 0, 10, ErrInvalidDecayBounds},
		{"NegativeStart", -1.0, 0.01, 10, ErrInvalidDecayBounds},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewScheduler(tt.start, tt.end, tt.stepSize, 100, 1)
			require.ErrorIs(t, err, tt.expected)
		})
	}

	t.Run("InvalidCounts", func(t *testing.T) {
		_, err := NewScheduler(1.0, 0.01, 10, 0, 1)
		require.Error(t, err)
		_, err = NewScheduler(1.0, 0.01, 10, 100, 0)
		require.Error(t, err)
	})

	t.Run("CustomDecaySkipsBoundsCheck", func(t *testing.T) {
		s, err := NewScheduler(1.0, 0, 10, 100, 1, WithDecayFunc(LinearDecay))
		require.NoError(t, err)
		assert.Equal(t, 1.0, s.Step(0))
	})
}

func TestSchedulerStepBoundary(t *testing.T) {
	s, err := NewScheduler(1.0, 0.01, 10, 100, 1)
	require.NoError(t, err)
	require.Equal(t, 10, s.TotalSteps())

	// Step(0) returns the start value.
	assert.Equal(t, 1.0, s.Step(0))

	// Intermediate counts return the cached value unchanged.
	for consumed := 1; consumed < 10; consumed++ {
		assert.Equal(t, 1.0, s.Step(consumed))
	}

	// The next boundary recomputes: value(1) = start * exp(-rate) with
	// rate = -ln(end/start)/totalSteps.
	rate := -math.Log(0.01/1.0) / 10
	assert.InDelta(t, math.Exp(-rate), s.Step(10), 1e-12)

	// Value does not advance the schedule.
	assert.Equal(t, s.Value(), s.Step(15))
}

func TestSchedulerConvergesToEnd(t *testing.T) {
	s, err := NewScheduler(1.0, 0.01, 10, 100, 1)
	require.NoError(t, err)

	var last float64
	for k := 0; k <= s.TotalSteps(); k++ {
		last = s.Step(k * 10)
	}
	assert.InDelta(t, 0.01, last, 1e-9)
}

func TestSchedulerMonotoneDecay(t *testing.T) {
	s, err := NewScheduler(1.0, 0.01, 1, 50, 1)
	require.NoError(t, err)

	prev := s.Step(0)
	for consumed := 1; consumed < 50; consumed++ {
		cur := s.Step(consumed)
		assert.Less(t, cur, prev)
		prev = cur
	}
}

func TestSchedulerDegenerateTotalSteps(t *testing.T) {
	// stepSize larger than the whole run: the schedule stays constant.
	s, err := NewScheduler(1.0, 0.01, 100, 4, 1)
	require.NoError(t, err)
	require.Equal(t, 0, s.TotalSteps())

	for consumed := 0; consumed < 4; consumed++ {
		assert.Equal(t, 1.0, s.Step(consumed))
	}
}

func TestExponentialDecay(t *testing.T) {
	assert.Equal(t, 1.0, ExponentialDecay(1.0, 0.01, 0, 10))
	assert.InDelta(t, 0.01, ExponentialDecay(1.0, 0.01, 10, 10), 1e-12)
	assert.InDelta(t, 0.1, ExponentialDecay(1.0, 0.01, 5, 10), 1e-12)
}

func TestLinearDecay(t *testing.T) {
	assert.Equal(t, 1.0, LinearDecay(1.0, 0.0, 0, 10))
	assert.InDelta(t, 0.5, LinearDecay(1.0, 0.0, 5, 10), 1e-12)
	assert.InDelta(t, 0.0, LinearDecay(1.0, 0.0, 10, 10), 1e-12)
}
