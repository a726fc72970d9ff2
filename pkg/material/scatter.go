package material

import (
	"github.com/eradiate/go-rpv/pkg/core"
)

// The methods below adapt the frame-local Sample/Eval/Pdf trio to the
// world-space Material interface a host renderer drives: directions are
// rotated into an orthonormal basis around the hit normal, and incoming
// directions follow the renderer convention of pointing away from the
// surface toward the origin of the incoming ray.

// Scatter implements the Material interface for RPV scattering
func (m *RPV) Scatter(rayIn core.Ray, hit HitRecord, sampler core.Sampler) (ScatterResult, bool) {
	frame := core.NewFrame(hit.Normal)
	wi := frame.ToLocal(rayIn.Direction.Negate().Normalize())

	u := sampler.Get2D()
	sample := m.Sample(wi, u.X, u.Y)
	if !sample.Valid() {
		return ScatterResult{}, false
	}

	scattered := core.NewRay(hit.Point, frame.ToWorld(sample.Direction))
	return ScatterResult{
		Incoming:    rayIn,
		Scattered:   scattered,
		Attenuation: sample.Value,
		PDF:         sample.PDF,
	}, true
}

// EvaluateBRDF evaluates the BRDF for specific incoming/outgoing directions
func (m *RPV) EvaluateBRDF(incomingDir, outgoingDir, normal core.Vec3) core.Vec3 {
	frame := core.NewFrame(normal)
	return m.Eval(frame.ToLocal(incomingDir), frame.ToLocal(outgoingDir))
}

// PDF returns the solid-angle density Scatter would have used for specific
// incoming/outgoing directions
func (m *RPV) PDF(incomingDir, outgoingDir, normal core.Vec3) float64 {
	frame := core.NewFrame(normal)
	return m.Pdf(frame.ToLocal(incomingDir), frame.ToLocal(outgoingDir))
}
