package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/ae267/engine-trade/engine"
	"github.com/ae267/engine-trade/engine/chart"
)

// enginesCmd loads the dataset, writes every chart and prints the summary
var enginesCmd = &cobra.Command{
	Use:   "engines",
	Short: "Chart and summarize " + engine.DefaultDataPath,
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		if err := runEngines(os.Stdout, engine.DefaultDataPath, "."); err != nil {
			logrus.Fatalf("Engine analysis failed: %v", err)
		}
		logrus.Info("Engine analysis complete.")
	},
}

// runEngines is the engines pipeline with its input and output locations injected.
func runEngines(w io.Writer, dataPath, outDir string) error {
	table, err := engine.LoadTable(dataPath)
	if err != nil {
		return err
	}

	in, err := chart.NewInput(table)
	if err != nil {
		return fmt.Errorf("aggregating medians: %w", err)
	}
	if _, err := chart.RenderAll(in, outDir); err != nil {
		return fmt.Errorf("rendering charts: %w", err)
	}
	return engine.PrintSummary(w, table)
}
