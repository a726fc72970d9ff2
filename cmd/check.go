package cmd

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/urfave/cli"

	"github.com/eradiate/go-rpv/pkg/core"
)

// Tolerances for the self-checks. The sample/pdf comparison is nearly
// exact because both paths share one density computation; the integral
// check is quadrature-limited.
const (
	consistencyTolerance   = 1e-9
	normalizationTolerance = 1e-6
)

// Check runs the sampler's correctness diagnostics: agreement between the
// density reported by Sample and the one Pdf recomputes, and normalization
// of Pdf over the outgoing hemisphere.
func Check(ctx *cli.Context) error {
	setupLogging(ctx)

	model, err := buildModel(ctx)
	if err != nil {
		return err
	}
	random := rand.New(rand.NewSource(ctx.Int64("seed")))

	trials := ctx.Int("samples")
	if trials <= 0 {
		return fmt.Errorf("samples must be positive, got %d", trials)
	}

	// Sample → Pdf consistency over random incident directions
	var worst float64
	for i := 0; i < trials; i++ {
		thetaI := random.Float64() * math.Pi / 2
		phiI := random.Float64() * 2 * math.Pi
		wi := core.SphericalDirection(math.Sin(thetaI), math.Cos(thetaI), phiI)

		res := model.Sample(wi, random.Float64(), random.Float64())
		if !res.Valid() {
			continue
		}
		pdf := model.Pdf(wi, res.Direction)
		if diff := math.Abs(pdf-res.PDF) / res.PDF; diff > worst {
			worst = diff
		}
	}
	logger.Noticef("sample/pdf consistency: worst relative difference %.3g over %d draws", worst, trials)
	if worst > consistencyTolerance {
		return fmt.Errorf("sample/pdf inconsistency %.3g exceeds %.1g", worst, consistencyTolerance)
	}

	// Hemispherical integral of the density for a fixed incident direction,
	// by midpoint quadrature aligned with the table buckets
	res := model.Resolution()
	nTheta, nPhi := 4*res.ThetaO, 4*res.Phi
	dTheta := math.Pi / 2 / float64(nTheta)
	dPhi := 2 * math.Pi / float64(nPhi)
	wi := core.SphericalDirection(math.Sin(math.Pi/6), math.Cos(math.Pi/6), 0)

	var integral float64
	for j := 0; j < nTheta; j++ {
		theta := (float64(j) + 0.5) * dTheta
		sinTheta, cosTheta := math.Sin(theta), math.Cos(theta)
		for k := 0; k < nPhi; k++ {
			phi := (float64(k) + 0.5) * dPhi
			wo := core.SphericalDirection(sinTheta, cosTheta, phi)
			integral += model.Pdf(wi, wo) * sinTheta * dTheta * dPhi
		}
	}
	logger.Noticef("pdf hemisphere integral: %.9f", integral)
	if math.Abs(integral-1) > normalizationTolerance {
		return fmt.Errorf("pdf integrates to %.9f, expected 1 within %.1g", integral, normalizationTolerance)
	}

	logger.Notice("all checks passed")
	return nil
}
