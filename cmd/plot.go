package cmd

import (
	"fmt"
	"image"
	"image/png"
	"math"
	"os"

	"github.com/urfave/cli"

	"github.com/eradiate/go-rpv/pkg/core"
)

// Plot renders the reflectance over the outgoing hemisphere for a fixed
// incident zenith angle as a grayscale PNG. Rows run over outgoing zenith
// (top = normal incidence), columns over relative azimuth; the hot spot
// shows up as a bright region around zero relative azimuth.
func Plot(ctx *cli.Context) error {
	setupLogging(ctx)

	model, err := buildModel(ctx)
	if err != nil {
		return err
	}

	thetaI := ctx.Float64("theta-i") * math.Pi / 180
	if thetaI < 0 || thetaI >= math.Pi/2 {
		return fmt.Errorf("theta-i must be in [0, 90) degrees")
	}
	wi := core.SphericalDirection(math.Sin(thetaI), math.Cos(thetaI), 0)

	const width, height = 512, 256
	values := make([]float64, width*height)
	maxValue := 0.0
	for y := 0; y < height; y++ {
		thetaO := (float64(y) + 0.5) / height * math.Pi / 2
		sinThetaO, cosThetaO := math.Sin(thetaO), math.Cos(thetaO)
		for x := 0; x < width; x++ {
			phi := (float64(x) + 0.5) / width * 2 * math.Pi
			wo := core.SphericalDirection(sinThetaO, cosThetaO, phi)
			v := model.Eval(wi, wo).Luminance()
			values[y*width+x] = v
			if v > maxValue {
				maxValue = v
			}
		}
	}

	img := image.NewGray(image.Rect(0, 0, width, height))
	for i, v := range values {
		level := 0.0
		if maxValue > 0 {
			level = v / maxValue
		}
		img.Pix[i] = uint8(math.Round(255 * level))
	}

	filename := ctx.String("out")
	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("creating %s: %w", filename, err)
	}
	defer file.Close()

	if err := png.Encode(file, img); err != nil {
		return fmt.Errorf("encoding %s: %w", filename, err)
	}

	logger.Noticef("wrote %s (theta_i %.1f deg, peak value %.6g)",
		filename, ctx.Float64("theta-i"), maxValue)
	return nil
}
