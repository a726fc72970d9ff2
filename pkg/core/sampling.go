package core

import (
	"math"
	"math/rand"
)

// Sampler provides uniform random numbers for sampling algorithms
// Can be swapped out for deterministic testing or different sampling patterns
type Sampler interface {
	Get1D() float64
	Get2D() Vec2
}

// RandomSampler wraps a standard Go random generator
type RandomSampler struct {
	random *rand.Rand
}

// NewRandomSampler creates a sampler from a Go random generator
func NewRandomSampler(random *rand.Rand) *RandomSampler {
	return &RandomSampler{random: random}
}

// Get1D returns a random float64 in [0, 1)
func (r *RandomSampler) Get1D() float64 {
	return r.random.Float64()
}

// Get2D returns two random float64 values in [0, 1)
func (r *RandomSampler) Get2D() Vec2 {
	return NewVec2(r.random.Float64(), r.random.Float64())
}

// SampleCosineHemisphere generates a cosine-weighted direction in the local
// shading frame (z = surface normal) from two uniform sample values
func SampleCosineHemisphere(sample Vec2) Vec3 {
	phi := 2.0 * math.Pi * sample.X
	r := math.Sqrt(sample.Y)

	return Vec3{
		X: r * math.Cos(phi),
		Y: r * math.Sin(phi),
		Z: math.Sqrt(1.0 - sample.Y),
	}
}

// CosineHemispherePDF returns the solid-angle density of cosine-weighted
// hemisphere sampling for a direction with the given zenith cosine
func CosineHemispherePDF(cosTheta float64) float64 {
	if cosTheta <= 0 {
		return 0
	}
	return cosTheta / math.Pi
}
