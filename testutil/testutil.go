package testutil

import (
	"math"
	"math/rand"
)

// Uniform returns n vectors of the given dimension with components drawn
// uniformly from [0, 1).
func Uniform(seed int64, n, dim int) [][]float32 {
	r := rand.New(rand.NewSource(seed))
	data := make([][]float32, n)
	for i := range data {
		v := make([]float32, dim)
		for j := range v {
			v[j] = r.Float32()
		}
		data[i] = v
	}
	return data
}

// Blobs returns perCenter samples around each center, jittered with
// normal noise of the given standard deviation. Samples are grouped by
// center in order.
func Blobs(seed int64, centers [][]float32, perCenter int, noise float32) [][]float32 {
	r := rand.New(rand.NewSource(seed))
	data := make([][]float32, 0, len(centers)*perCenter)
	for _, center := range centers {
		for i := 0; i < perCenter; i++ {
			v := make([]float32, len(center))
			for j, c := range center {
				v[j] = c + noise*float32(r.NormFloat64())
			}
			data = append(data, v)
		}
	}
	return data
}

// UnitSquareCorners returns the four corners of the unit square as
// 2-dimensional samples, in (0,0), (0,1), (1,0), (1,1) order.
func UnitSquareCorners() [][]float32 {
	return [][]float32{
		{0, 0},
		{0, 1},
		{1, 0},
		{1, 1},
	}
}

// Ring returns n 2-dimensional samples on a circle of the given radius,
// jittered with normal noise of the given standard deviation.
func Ring(seed int64, n int, radius, noise float32) [][]float32 {
	r := rand.New(rand.NewSource(seed))
	data := make([][]float32, n)
	for i := range data {
		angle := 2 * math.Pi * float64(i) / float64(n)
		data[i] = []float32{
			radius*float32(math.Cos(angle)) + noise*float32(r.NormFloat64()),
			radius*float32(math.Sin(angle)) + noise*float32(r.NormFloat64()),
		}
	}
	return data
}
