package material

import (
	"github.com/eradiate/go-rpv/pkg/core"
)

// Material is the minimal contract a Monte Carlo renderer requires from a
// scattering model: generate a scattered direction for a hit, evaluate the
// BRDF for an explicit direction pair, and report the sampling density for
// that pair. PDF must agree exactly with the density Scatter reports when
// given the directions Scatter produced.
type Material interface {
	// Scatter generates a scattered ray for a surface hit
	Scatter(rayIn core.Ray, hit HitRecord, sampler core.Sampler) (ScatterResult, bool)

	// EvaluateBRDF evaluates the BRDF for specific incoming/outgoing directions
	EvaluateBRDF(incomingDir, outgoingDir, normal core.Vec3) core.Vec3

	// PDF returns the solid-angle sampling density for specific
	// incoming/outgoing directions
	PDF(incomingDir, outgoingDir, normal core.Vec3) float64
}

// ScatterResult contains the result of material scattering
type ScatterResult struct {
	Incoming    core.Ray  // The incoming ray
	Scattered   core.Ray  // The scattered ray
	Attenuation core.Vec3 // BRDF value for the scattered direction
	PDF         float64   // Solid-angle density the direction was drawn with
}

// HitRecord contains information about a ray-surface intersection
type HitRecord struct {
	Point     core.Vec3 // Point of intersection
	Normal    core.Vec3 // Surface normal at intersection
	T         float64   // Parameter t along the ray
	FrontFace bool      // Whether ray hit the front face
}

// SetFaceNormal sets the normal vector and determines front/back face
func (h *HitRecord) SetFaceNormal(ray core.Ray, outwardNormal core.Vec3) {
	h.FrontFace = ray.Direction.Dot(outwardNormal) < 0
	if h.FrontFace {
		h.Normal = outwardNormal
	} else {
		h.Normal = outwardNormal.Multiply(-1)
	}
}

// SampleResult is the outcome of frame-local direction sampling
type SampleResult struct {
	Direction core.Vec3 // Outgoing direction in the local shading frame
	Value     core.Vec3 // Analytic reflectance value for that direction
	PDF       float64   // Solid-angle density the direction was drawn with
}

// Valid reports whether the sample carries usable probability mass.
// Callers must not divide by the density of an invalid sample.
func (s SampleResult) Valid() bool {
	return s.PDF > 0
}
