package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli"

	"github.com/eradiate/go-rpv/cmd"
)

func main() {
	app := cli.NewApp()
	app.Name = "rpv"
	app.Usage = "inspect and validate the tabulated RPV reflectance sampler"
	app.Version = "0.1.0"
	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "v",
			Usage: "enable verbose logging",
		},
		cli.BoolFlag{
			Name:  "vv",
			Usage: "enable even more verbose logging",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:  "albedo",
			Usage: "estimate directional-hemispherical reflectance per incident zenith",
			Flags: append([]cli.Flag{
				cli.IntFlag{
					Name:  "samples",
					Value: 100000,
					Usage: "Monte Carlo samples per incident angle",
				},
			}, cmd.ModelFlags...),
			Action: cmd.Albedo,
		},
		{
			Name:  "check",
			Usage: "run sampler consistency and normalization diagnostics",
			Flags: append([]cli.Flag{
				cli.IntFlag{
					Name:  "samples",
					Value: 100000,
					Usage: "random draws for the consistency check",
				},
			}, cmd.ModelFlags...),
			Action: cmd.Check,
		},
		{
			Name:  "plot",
			Usage: "render the reflectance over the outgoing hemisphere as a PNG",
			Flags: append([]cli.Flag{
				cli.Float64Flag{
					Name:  "theta-i",
					Value: 30,
					Usage: "incident zenith angle in degrees",
				},
				cli.StringFlag{
					Name:  "out",
					Value: "rpv.png",
					Usage: "output image path",
				},
			}, cmd.ModelFlags...),
			Action: cmd.Plot,
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
