package cmd

import (
	"fmt"
	"math"
	"math/rand"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"

	"github.com/eradiate/go-rpv/pkg/core"
)

// Albedo estimates the directional-hemispherical reflectance (the cosine-
// weighted hemispherical integral of the BRDF) for a range of incident
// zenith angles, by Monte Carlo with the model's own importance sampler,
// and prints the per-channel results as a table.
func Albedo(ctx *cli.Context) error {
	setupLogging(ctx)

	model, err := buildModel(ctx)
	if err != nil {
		return err
	}

	samples := ctx.Int("samples")
	if samples <= 0 {
		return fmt.Errorf("samples must be positive, got %d", samples)
	}
	random := rand.New(rand.NewSource(ctx.Int64("seed")))

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"theta_i (deg)", "albedo R", "albedo G", "albedo B"})

	for deg := 0; deg <= 80; deg += 10 {
		thetaI := float64(deg) * math.Pi / 180
		wi := core.SphericalDirection(math.Sin(thetaI), math.Cos(thetaI), 0)

		var sum core.Vec3
		for s := 0; s < samples; s++ {
			res := model.Sample(wi, random.Float64(), random.Float64())
			if !res.Valid() {
				continue
			}
			weight := core.CosTheta(res.Direction) / res.PDF
			sum = sum.Add(res.Value.Multiply(weight))
		}
		albedo := sum.Multiply(1 / float64(samples))

		table.Append([]string{
			fmt.Sprintf("%d", deg),
			fmt.Sprintf("%.5f", albedo.X),
			fmt.Sprintf("%.5f", albedo.Y),
			fmt.Sprintf("%.5f", albedo.Z),
		})
	}

	table.Render()
	return nil
}
