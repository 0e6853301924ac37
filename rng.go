package somgo

import "math/rand"

// RNG encapsulates a seedable pseudo-random number generator together with
// its seed. Every source of randomness in a model (weight initialization,
// per-epoch shuffling) flows through a single RNG instance so runs are
// reproducible.
//
// An RNG is owned by exactly one model and is not safe for concurrent use;
// training is single-threaded so no locking is needed.
type RNG struct {
	rand *rand.Rand
	seed int64
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	return r.rand.Intn(n)
}

// Float64 returns a pseudo-random number in [0.0,1.0).
func (r *RNG) Float64() float64 {
	return r.rand.Float64()
}

// NormFloat64 returns a standard-normally distributed float64.
func (r *RNG) NormFloat64() float64 {
	return r.rand.NormFloat64()
}

// Perm returns a pseudo-random permutation of the integers [0,n).
func (r *RNG) Perm(n int) []int {
	return r.rand.Perm(n)
}

// FillNorm fills dst with independent standard-normal draws.
func (r *RNG) FillNorm(dst []float32) {
	for i := range dst {
		dst[i] = float32(r.rand.NormFloat64())
	}
}
