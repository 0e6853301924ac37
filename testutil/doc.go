// Package testutil provides seeded synthetic datasets for tests,
// benchmarks, and examples. All generators are deterministic for a given
// seed.
package testutil
