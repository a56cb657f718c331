package cmd

import (
	"io"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/ae267/engine-trade/deltav"
	"github.com/ae267/engine-trade/internal/render"
)

// deltavCmd plots delta-v against propellant for the built-in scenarios
var deltavCmd = &cobra.Command{
	Use:   "deltav",
	Short: "Plot delta-v vs propellant mass and print the maximum",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		if err := runDeltaV(os.Stdout, "."); err != nil {
			logrus.Fatalf("Delta-v model failed: %v", err)
		}
	},
}

func runDeltaV(w io.Writer, outDir string) error {
	presets, err := deltav.DefaultPresets()
	if err != nil {
		return err
	}
	curves, err := presets.Curves()
	if err != nil {
		return err
	}
	p, err := deltav.Plot(curves...)
	if err != nil {
		return err
	}
	if err := render.Save(p, deltav.PlotWidth, deltav.PlotHeight, filepath.Join(outDir, deltav.PlotFile)); err != nil {
		return err
	}
	return deltav.PrintMaxima(w, curves...)
}
