// Package material implements the Rahman-Pinty-Verstraete (RPV) surface
// reflectance model with tabulated importance sampling of the outgoing
// direction. The model features the controllable back-scattering lobe
// ("hot spot") characteristic of natural land surfaces and is widely used
// in Earth observation.
package material

import (
	"fmt"
	"math"

	"github.com/eradiate/go-rpv/pkg/core"
	"github.com/eradiate/go-rpv/pkg/distribution"
)

// Params holds the four RPV parameters, one value per color channel.
// Hosts with spatially or spectrally varying surfaces evaluate their
// textures first and build one table per resulting parameter bundle.
type Params struct {
	Rho0 core.Vec3 // Amplitude, >= 0
	K    core.Vec3 // Bowl-shape, typically in [0, 2]
	G    core.Vec3 // Asymmetry, in [-1, 1]

	// RhoC is the hot spot parameter. Leaving it at the zero value means
	// "unset" and NewRPV substitutes Rho0 for it, matching the model's
	// convention; ScalarParams and DefaultParams already fill it in.
	RhoC core.Vec3
}

// DefaultParams returns the model defaults, typical of grassland in the
// visible domain
func DefaultParams() Params {
	return ScalarParams(0.183, 0.780, -0.1)
}

// ScalarParams builds a parameter bundle with identical channels and the
// hot spot parameter set to rho0
func ScalarParams(rho0, k, g float64) Params {
	v := func(x float64) core.Vec3 { return core.NewVec3(x, x, x) }
	return Params{Rho0: v(rho0), K: v(k), G: v(g), RhoC: v(rho0)}
}

// Validate reports the first parameter constraint violation, if any
func (p Params) Validate() error {
	if p.Rho0.MinComponent() < 0 {
		return fmt.Errorf("rpv: rho_0 must be non-negative, got %+v", p.Rho0)
	}
	if p.G.MinComponent() < -1 || p.G.MaxComponent() > 1 {
		return fmt.Errorf("rpv: g must be in [-1, 1], got %+v", p.G)
	}
	return nil
}

// TableResolution fixes the discretization of the sampling table along
// incident zenith, outgoing zenith and relative azimuth.
//
// Raising ThetaI only refines the per-incidence azimuthal conditionals;
// the outgoing-zenith proposal is averaged over incidence (see RPV), so
// its accuracy is governed by ThetaO and Phi alone.
type TableResolution struct {
	ThetaI int // Incident zenith buckets over [0, π/2]
	ThetaO int // Outgoing zenith buckets over [0, π/2]
	Phi    int // Relative azimuth buckets over [0, 2π)
}

// DefaultResolution is the 32x32x32 grid used by the reference system
func DefaultResolution() TableResolution {
	return TableResolution{ThetaI: 32, ThetaO: 32, Phi: 32}
}

// Validate reports a non-positive axis resolution, if any
func (r TableResolution) Validate() error {
	if r.ThetaI <= 0 || r.ThetaO <= 0 || r.Phi <= 0 {
		return fmt.Errorf("rpv: table resolution must be positive on every axis, got %+v", r)
	}
	return nil
}

// RPV evaluates the four-parameter RPV reflectance model and importance
// samples outgoing directions proportionally to a tabulated version of it.
//
// The model is isotropic in absolute azimuth, so the table is indexed by
// (incident zenith, outgoing zenith, relative azimuth) with the incident
// azimuth pinned to zero at build time; every sampling and density query
// reduces its direction pair to those coordinates first. The outgoing
// zenith is drawn from a marginal aggregated over all incidence buckets, a
// memory/accuracy tradeoff: sampling stays unbiased because the reported
// density describes exactly the distribution sampled, but the proposal is
// less tight for strongly incidence-dependent shapes.
//
// All tables are built once in NewRPV and never mutated, so a single RPV
// may be shared by any number of concurrent rendering goroutines.
type RPV struct {
	params Params
	res    TableResolution

	table     []float64                   // raw luminance table, (θi, θo, φ) row-major
	zenith    *distribution.Piecewise1D   // marginal over outgoing zenith buckets
	azimuth   []*distribution.Piecewise1D // conditional azimuth row per (θi, θo) cell
	totalMass float64

	deltaThetaI, deltaThetaO, deltaPhi float64
}

// NewRPV builds the reflectance table and its sampling distributions.
// Construction cost is res.ThetaI*res.ThetaO*res.Phi model evaluations;
// everything after it is read-only.
func NewRPV(params Params, res TableResolution) (*RPV, error) {
	if params.RhoC == (core.Vec3{}) {
		params.RhoC = params.Rho0
	}
	if err := params.Validate(); err != nil {
		return nil, err
	}
	if err := res.Validate(); err != nil {
		return nil, err
	}

	m := &RPV{
		params:      params,
		res:         res,
		deltaThetaI: math.Pi / 2 / float64(res.ThetaI),
		deltaThetaO: math.Pi / 2 / float64(res.ThetaO),
		deltaPhi:    2 * math.Pi / float64(res.Phi),
	}
	if err := m.buildTables(); err != nil {
		return nil, err
	}
	return m, nil
}

// Params returns the parameter bundle the model was built with
func (m *RPV) Params() Params {
	return m.params
}

// Resolution returns the table resolution the model was built with
func (m *RPV) Resolution() TableResolution {
	return m.res
}

// Eval evaluates the closed-form RPV reflectance for a direction pair in
// the local shading frame. The model is single-sided: the result is zero
// whenever either direction lies at or below the horizon. The value is
// always computed analytically, never read from the sampling table.
func (m *RPV) Eval(wi, wo core.Vec3) core.Vec3 {
	cosThetaI := core.CosTheta(wi)
	cosThetaO := core.CosTheta(wo)
	if cosThetaI <= 0 || cosThetaO <= 0 {
		return core.Vec3{}
	}

	sinThetaI := core.SinTheta(wi)
	sinThetaO := core.SinTheta(wo)
	tanThetaI := sinThetaI / cosThetaI
	tanThetaO := sinThetaO / cosThetaO
	cosDeltaPhi := core.CosDeltaPhi(wi, wo)

	cosScatter := cosThetaI*cosThetaO + sinThetaI*sinThetaO*cosDeltaPhi
	hotSpot := math.Sqrt(math.Max(0,
		tanThetaI*tanThetaI+tanThetaO*tanThetaO-2*tanThetaI*tanThetaO*cosDeltaPhi))
	minnaert := cosThetaI * cosThetaO * (cosThetaI + cosThetaO)

	p := m.params
	eval := func(rho0, k, g, rhoC float64) float64 {
		// At |g| = 1 the phase numerator vanishes everywhere and the
		// denominator reaches 0 on the backscatter axis; the 0/0 point
		// carries no mass, so resolve it to 0 instead of NaN
		denom := 1 + g*g + 2*g*cosScatter
		if denom <= 0 {
			return 0
		}
		phase := (1 - g*g) / math.Pow(denom, 1.5)
		return rho0 * math.Pow(minnaert, k-1) * phase *
			(1 + (1-rhoC)/(1+hotSpot)) / math.Pi
	}

	return core.Vec3{
		X: eval(p.Rho0.X, p.K.X, p.G.X, p.RhoC.X),
		Y: eval(p.Rho0.Y, p.K.Y, p.G.Y, p.RhoC.Y),
		Z: eval(p.Rho0.Z, p.K.Z, p.G.Z, p.RhoC.Z),
	}
}
