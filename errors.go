package somgo

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFitted is returned when a query runs against a model whose
	// weight grid has not been initialized yet.
	ErrNotFitted = errors.New("model has not been fitted")

	// ErrEmptyTrainingSet is returned when Fit is called with no samples.
	ErrEmptyTrainingSet = errors.New("training set must not be empty")

	// ErrPCARequiresData is returned when PCA initialization is requested
	// without training data.
	ErrPCARequiresData = errors.New("pca initialization requires training data")

	// ErrInvalidGridSize is returned when rows or cols is not positive.
	ErrInvalidGridSize = errors.New("grid dimensions must be positive")

	// ErrInvalidEpochs is returned when the epoch count is not positive.
	ErrInvalidEpochs = errors.New("epoch count must be positive")

	// ErrInvalidStepSize is returned when a scheduler step size is not positive.
	ErrInvalidStepSize = errors.New("scheduler step size must be positive")

	// ErrInvalidDecayBounds is returned when exponential decay is configured
	// with a non-positive start or end value.
	ErrInvalidDecayBounds = errors.New("exponential decay requires positive start and end values")

	// ErrZeroSigma is returned when the neighborhood radius anneals to zero,
	// which would divide by zero inside the Gaussian kernel.
	ErrZeroSigma = errors.New("neighborhood radius must not be zero")
)

// ErrDimensionMismatch indicates a sample/model dimensionality mismatch.
type ErrDimensionMismatch struct {
	Expected int
	Actual   int
}

func (e *ErrDimensionMismatch) Error() string {
	return fmt.Sprintf("dimension mismatch: expected %d, got %d", e.Expected, e.Actual)
}

// ErrInvalidDimension indicates an invalid configured input dimension.
type ErrInvalidDimension struct {
	Dimension int
}

func (e *ErrInvalidDimension) Error() string {
	return fmt.Sprintf("invalid dimension: %d", e.Dimension)
}
