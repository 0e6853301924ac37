// Package somgo implements Self-Organizing Maps (Kohonen maps) for Go.
//
// A Self-Organizing Map projects high-dimensional input vectors onto a
// two-dimensional lattice of reference vectors while preserving the
// topological neighborhood structure of the input space. It is used for
// dimensionality reduction, clustering, and visualization.
//
// # Quick Start
//
//	som, _ := somgo.New(10, 10, 3, somgo.WithSeed(42))
//	result, _ := som.Fit(data, somgo.WithEpochs(20))
//
//	coords, _ := som.Transform(data)   // BMU coordinate per sample
//	um, _ := som.UMatrix()             // cluster-boundary map
//
// # Training
//
// Training is strictly online: the weight grid is mutated after every
// single sample, so sample order matters and shuffling changes the
// learned map even under a fixed seed. Fit returns the per-epoch
// quantization-error and topographic-error series alongside the final
// weights.
//
// Learning rate and neighborhood radius are driven by annealed
// schedulers. The defaults decay exponentially (learning rate 1.0 to
// 0.01, radius max(rows, cols)/2 to 1.0, stepped every 100 samples);
// custom schedules plug in via WithLRScheduler and WithSigmaScheduler.
//
// # Initialization
//
// Weights start either as independent standard-normal draws (default)
// or seeded from the top-2 principal components of the training data
// (PCAInitializer), which aligns the initial map with the data's
// dominant variance directions and speeds up convergence.
//
// # Reproducibility
//
// All randomness (weight initialization, per-epoch shuffling) flows
// through a model-owned seedable generator. Two runs with the same seed
// and parameters produce bit-identical weights and metric series.
package somgo
