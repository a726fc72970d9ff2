package material

import (
	"math"

	"github.com/eradiate/go-rpv/pkg/core"
)

// Sample draws an outgoing direction approximately proportional to the
// reflectance for the given incident direction, using two independent
// uniform numbers u, v in [0, 1). The returned density is exactly the one
// Pdf reports for the same direction pair, and the returned value is the
// analytic reflectance, never a table lookup.
//
// Directions at or below the horizon produce an invalid (zero) result.
// A model with zero total table mass falls back to cosine-weighted
// hemisphere sampling with the matching analytic density.
func (m *RPV) Sample(wi core.Vec3, u, v float64) SampleResult {
	cosThetaI := core.CosTheta(wi)
	if cosThetaI <= 0 {
		return SampleResult{}
	}

	// Keep the sample values off the exact domain boundaries so the CDF
	// searches cannot land outside the table
	u = clampUnit(u)
	v = clampUnit(v)

	if m.totalMass == 0 {
		wo := core.SampleCosineHemisphere(core.NewVec2(u, v))
		return SampleResult{
			Direction: wo,
			Value:     m.Eval(wi, wo),
			PDF:       core.CosineHemispherePDF(core.CosTheta(wo)),
		}
	}

	// The incidence bucket only selects the conditional azimuth row; the
	// outgoing zenith comes from the incidence-averaged marginal
	idxThetaI := m.zenithBucket(cosThetaI, m.res.ThetaI)
	idxThetaO, _ := m.zenith.Sample(u)
	idxPhi, _ := m.azimuth[idxThetaI*m.res.ThetaO+idxThetaO].Sample(v)

	thetaO := (float64(idxThetaO) + 0.5) * m.deltaThetaO
	phiRel := (float64(idxPhi) + 0.5) * m.deltaPhi
	phiO := core.Phi(wi) + phiRel

	wo := core.SphericalDirection(math.Sin(thetaO), math.Cos(thetaO), phiO)
	pdf := m.bucketPDF(idxThetaI, idxThetaO, idxPhi, core.SinTheta(wo))
	if pdf <= 0 {
		return SampleResult{}
	}

	return SampleResult{Direction: wo, Value: m.Eval(wi, wo), PDF: pdf}
}

// Pdf returns the solid-angle density with which Sample would have produced
// wo from wi. Both directions are in the local shading frame; the result is
// zero when either lies at or below the horizon.
func (m *RPV) Pdf(wi, wo core.Vec3) float64 {
	cosThetaI := core.CosTheta(wi)
	cosThetaO := core.CosTheta(wo)
	if cosThetaI <= 0 || cosThetaO <= 0 {
		return 0
	}

	if m.totalMass == 0 {
		return core.CosineHemispherePDF(cosThetaO)
	}

	idxThetaI := m.zenithBucket(cosThetaI, m.res.ThetaI)
	idxThetaO := m.zenithBucket(cosThetaO, m.res.ThetaO)

	phiRel := core.Phi(wo) - core.Phi(wi)
	if phiRel < 0 {
		phiRel += 2 * math.Pi
	}
	idxPhi := int(phiRel / m.deltaPhi)
	if idxPhi > m.res.Phi-1 {
		idxPhi = m.res.Phi - 1
	}

	return m.bucketPDF(idxThetaI, idxThetaO, idxPhi, core.SinTheta(wo))
}

// bucketPDF converts bucket probabilities into a solid-angle density.
// Both Sample and Pdf report densities through this one helper, which is
// what makes the two exactly consistent: the bucket probability divided by
// the bucket's (θ, φ) extent is a density per dθ dφ, and the 1/sinθ factor
// converts it to a density per solid angle. Integrated over a bucket's
// solid angle the sinθ factors cancel, so the density integrates to the
// bucket probability and to 1 over the hemisphere.
func (m *RPV) bucketPDF(idxThetaI, idxThetaO, idxPhi int, sinThetaO float64) float64 {
	if sinThetaO <= 0 {
		return 0
	}
	pZenith := m.zenith.Prob(idxThetaO)
	pAzimuth := m.azimuth[idxThetaI*m.res.ThetaO+idxThetaO].Prob(idxPhi)
	return pZenith * pAzimuth / (m.deltaThetaO * m.deltaPhi * sinThetaO)
}

// zenithBucket maps a zenith cosine to its bucket index on a [0, π/2] axis
// with n buckets, clamping the π/2 boundary into the last bucket
func (m *RPV) zenithBucket(cosTheta float64, n int) int {
	theta := math.Acos(math.Min(1, cosTheta))
	idx := int(theta / (math.Pi / 2) * float64(n))
	if idx > n-1 {
		idx = n - 1
	}
	return idx
}

// clampUnit keeps a uniform sample value strictly inside (0, 1)
func clampUnit(u float64) float64 {
	const tiny = 1e-12
	if u < tiny {
		return tiny
	}
	if oneMinusEps := math.Nextafter(1, 0); u > oneMinusEps {
		return oneMinusEps
	}
	return u
}
