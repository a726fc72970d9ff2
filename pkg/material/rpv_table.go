package material

import (
	"math"

	"github.com/eradiate/go-rpv/pkg/core"
	"github.com/eradiate/go-rpv/pkg/distribution"
)

// buildTables discretizes the model over the (θi, θo, φ) grid and derives
// the sampling distributions from the raw table:
//
//   - one conditional distribution over relative azimuth per (θi, θo) cell,
//   - one marginal distribution over outgoing zenith, aggregated across all
//     incidence buckets and azimuths.
//
// Direction sampling is driven by the luminance of the evaluated value; the
// full multi-channel value is always recomputed analytically at query time.
func (m *RPV) buildTables() error {
	nI, nO, nP := m.res.ThetaI, m.res.ThetaO, m.res.Phi

	m.table = make([]float64, nI*nO*nP)
	for i := 0; i < nI; i++ {
		thetaI := float64(i) * m.deltaThetaI
		wi := core.SphericalDirection(math.Sin(thetaI), math.Cos(thetaI), 0)
		for j := 0; j < nO; j++ {
			thetaO := float64(j) * m.deltaThetaO
			sinThetaO, cosThetaO := math.Sin(thetaO), math.Cos(thetaO)
			row := (i*nO + j) * nP
			for k := 0; k < nP; k++ {
				phi := float64(k) * m.deltaPhi
				wo := core.SphericalDirection(sinThetaO, cosThetaO, phi)
				m.table[row+k] = m.Eval(wi, wo).Luminance()
			}
		}
	}

	m.azimuth = make([]*distribution.Piecewise1D, nI*nO)
	for cell := 0; cell < nI*nO; cell++ {
		row, err := distribution.NewPiecewise1D(m.table[cell*nP : (cell+1)*nP])
		if err != nil {
			return err
		}
		m.azimuth[cell] = row
	}

	// Marginal over outgoing zenith: each bucket aggregates the mass of its
	// θo slab across every incidence bucket and azimuth
	weights := make([]float64, nO)
	for j := 0; j < nO; j++ {
		var mass float64
		for i := 0; i < nI; i++ {
			row := (i*nO + j) * nP
			for k := 0; k < nP; k++ {
				mass += m.table[row+k]
			}
		}
		weights[j] = mass
	}

	zenith, err := distribution.NewPiecewise1D(weights)
	if err != nil {
		return err
	}
	m.zenith = zenith
	m.totalMass = zenith.Sum()
	return nil
}

// TotalMass returns the sum of the raw table; zero indicates a degenerate
// parameter set for which sampling falls back to a cosine hemisphere
func (m *RPV) TotalMass() float64 {
	return m.totalMass
}
