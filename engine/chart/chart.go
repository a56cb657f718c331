// Package chart renders the fixed catalog of engine comparison charts.
//
// Every chart is a pure function from Input to a *plot.Plot; Render encodes it
// and RenderAll writes each one to its fixed file name, replacing earlier runs.
package chart

import (
	"fmt"
	"path/filepath"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"

	"github.com/ae267/engine-trade/engine"
	"github.com/ae267/engine-trade/internal/render"
)

// Input is everything a chart may draw from.
type Input struct {
	Table   engine.EngineTable
	Medians *engine.Aggregation // per-category medians of every numeric field
}

// NewInput aggregates the medians the category charts need.
func NewInput(table engine.EngineTable) (Input, error) {
	medians, err := engine.Medians(table, engine.NumericFields...)
	if err != nil {
		return Input{}, err
	}
	return Input{Table: table, Medians: medians}, nil
}

// Chart is one catalog entry.
type Chart struct {
	File  string
	Build func(Input) (*plot.Plot, error)
	Size  func(Input) (width, height vg.Length)
}

func fixedSize(w, h vg.Length) func(Input) (vg.Length, vg.Length) {
	return func(Input) (vg.Length, vg.Length) { return w, h }
}

type categoryMetric struct {
	field  engine.Field
	metric string // column label after unit scaling, also names the file
	title  string
	yLabel string
	scale  float64
}

var categoryMetrics = []categoryMetric{
	{engine.FieldISP, "ISP (s)", "ISP", "ISP (s)", 1},
	{engine.FieldThrustToWeight, "Thrust-to-Weight", "Thrust-to-Weight Ratio", "Thrust-to-Weight", 1},
	{engine.FieldVacuumThrust, "Vacuum Thrust (kN)", "Vacuum Thrust", "Thrust (kN)", 1},
	{engine.FieldFuelCost, "Fuel Cost (k USD)", "Fuel Cost", "Cost (k USD)", 1.0 / 1000},
}

// categoryFile names a category comparison image after its metric, e.g.
// "Vacuum Thrust (kN)" -> "category_comparison_vacuum_thrust_(kn).png".
func categoryFile(metric string) string {
	return "category_comparison_" + strings.ReplaceAll(strings.ToLower(metric), " ", "_") + "." + render.Format
}

// Catalog returns every chart in drawing order.
func Catalog() []Chart {
	charts := []Chart{
		{
			File: "isp_by_engine.png",
			Build: func(in Input) (*plot.Plot, error) {
				return horizontalBars("ISP by Engine", string(engine.FieldISP),
					SortedSeries(in.Table, engine.FieldISP), oneDecimal)
			},
			Size: fixedSize(8*vg.Inch, 6*vg.Inch),
		},
		{
			File: "thrust_weight_by_engine.png",
			Build: func(in Input) (*plot.Plot, error) {
				return horizontalBars("Thrust-to-Weight Ratio by Engine", string(engine.FieldThrustToWeight),
					SortedSeries(in.Table, engine.FieldThrustToWeight), oneDecimal)
			},
			Size: fixedSize(8*vg.Inch, 6*vg.Inch),
		},
	}

	for _, m := range categoryMetrics {
		charts = append(charts, Chart{
			File: categoryFile(m.metric),
			Build: func(in Input) (*plot.Plot, error) {
				s, err := CategorySeries(in.Medians, m.field, m.scale)
				if err != nil {
					return nil, err
				}
				return categoryBars(fmt.Sprintf("Median %s: Chemical vs NTP Engines", m.title), m.yLabel, s)
			},
			Size: fixedSize(8*vg.Inch, 6*vg.Inch),
		})
	}

	return append(charts,
		Chart{
			File:  "ntp_fuel_cost_vs_thrust.png",
			Build: func(in Input) (*plot.Plot, error) { return ntpCostVsThrust(in.Table) },
			Size:  fixedSize(10*vg.Inch, 6*vg.Inch),
		},
		Chart{
			File:  "engines_comparison_table.png",
			Build: func(in Input) (*plot.Plot, error) { return enginesTable(in.Table) },
			Size: func(in Input) (vg.Length, vg.Length) {
				return 8 * vg.Inch, tableHeight(len(in.Table))
			},
		},
		Chart{
			File: "total_fuel_cost.png",
			Build: func(in Input) (*plot.Plot, error) {
				return verticalBars("Total Fuel Cost by Engine", "Engine", "Total Fuel Cost (k USD)",
					FuelCostSeries(in.Table), func(v float64) string { return "$" + render.Thousands(v) + "k" })
			},
			Size: fixedSize(12*vg.Inch, 6*vg.Inch),
		},
		Chart{
			File: "engine_thrust_comparison.png",
			Build: func(in Input) (*plot.Plot, error) {
				return verticalBars("Total Thrust by Engine", "Engine", string(engine.FieldVacuumThrust),
					SortedSeries(in.Table, engine.FieldVacuumThrust), func(v float64) string { return render.Thousands(v) + " kN" })
			},
			Size: fixedSize(10*vg.Inch, 6*vg.Inch),
		},
	)
}

// Render builds c from in and returns the encoded image.
func Render(c Chart, in Input) ([]byte, error) {
	p, err := c.Build(in)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", c.File, err)
	}
	w, h := c.Size(in)
	data, err := render.Bytes(p, w, h)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", c.File, err)
	}
	return data, nil
}

// RenderAll writes every catalog chart into dir and returns the written paths.
// The first failure stops the run; files already written are left in place.
func RenderAll(in Input, dir string) ([]string, error) {
	var written []string
	for _, c := range Catalog() {
		data, err := Render(c, in)
		if err != nil {
			return written, err
		}
		path := filepath.Join(dir, c.File)
		if err := render.WriteFile(path, data); err != nil {
			return written, err
		}
		written = append(written, path)
	}
	return written, nil
}
