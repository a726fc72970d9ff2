// Package cmd implements the subcommands of the rpv validation tool.
package cmd

import (
	"time"

	"github.com/urfave/cli"

	"github.com/eradiate/go-rpv/pkg/core"
	"github.com/eradiate/go-rpv/pkg/log"
	"github.com/eradiate/go-rpv/pkg/material"
)

var logger = log.New("rpv")

// ModelFlags configure the model parameters and table resolution shared by
// every subcommand
var ModelFlags = []cli.Flag{
	cli.Float64Flag{
		Name:  "rho0",
		Value: 0.183,
		Usage: "amplitude parameter, >= 0",
	},
	cli.Float64Flag{
		Name:  "k",
		Value: 0.780,
		Usage: "bowl-shape parameter",
	},
	cli.Float64Flag{
		Name:  "g",
		Value: -0.1,
		Usage: "asymmetry parameter, in [-1, 1]",
	},
	cli.Float64Flag{
		Name:  "rho-c",
		Value: -1,
		Usage: "hot spot parameter; negative means equal to rho0",
	},
	cli.IntFlag{
		Name:  "grid",
		Value: 32,
		Usage: "sampling table resolution per axis",
	},
	cli.Int64Flag{
		Name:  "seed",
		Value: 1,
		Usage: "random seed for Monte Carlo estimates",
	},
}

func setupLogging(ctx *cli.Context) {
	if ctx.GlobalBool("vv") {
		log.SetLevel(log.Debug)
	} else if ctx.GlobalBool("v") {
		log.SetLevel(log.Info)
	}
}

// buildModel constructs the RPV model from command line flags
func buildModel(ctx *cli.Context) (*material.RPV, error) {
	params := material.ScalarParams(ctx.Float64("rho0"), ctx.Float64("k"), ctx.Float64("g"))
	if rhoC := ctx.Float64("rho-c"); rhoC >= 0 {
		params.RhoC = core.NewVec3(rhoC, rhoC, rhoC)
	}

	n := ctx.Int("grid")
	res := material.TableResolution{ThetaI: n, ThetaO: n, Phi: n}

	start := time.Now()
	model, err := material.NewRPV(params, res)
	if err != nil {
		return nil, err
	}
	logger.Infof("built %dx%dx%d sampling table in %v (total mass %.6g)",
		res.ThetaI, res.ThetaO, res.Phi, time.Since(start), model.TotalMass())
	return model, nil
}
