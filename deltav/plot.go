package deltav

import (
	"fmt"
	"io"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
)

// PlotFile is the fixed output name of the delta-v chart.
const PlotFile = "delta_v_plot.png"

// PlotWidth and PlotHeight size the delta-v chart.
const (
	PlotWidth  = 10 * vg.Inch
	PlotHeight = 6 * vg.Inch
)

// Plot draws delta-v (km/s) against propellant mass, one line per curve,
// and annotates each curve's final point with its value.
func Plot(curves ...Curve) (*plot.Plot, error) {
	if len(curves) == 0 {
		return nil, fmt.Errorf("%w: no curves to plot", ErrInvalidParams)
	}

	p := plot.New()
	p.Title.Text = "Delta-V vs Propellant Mass"
	if len(curves) == 1 {
		p.Title.Text += " for " + curves[0].Name + " Engine"
	}
	p.X.Label.Text = "Propellant Mass (kg)"
	p.Y.Label.Text = "Delta-V (km/s)"
	p.Legend.Top = true
	p.Legend.Left = true
	p.Add(plotter.NewGrid())

	for i, c := range curves {
		if len(c.Samples) == 0 {
			return nil, fmt.Errorf("%w: %s: empty curve", ErrInvalidParams, c.Name)
		}
		xys := make(plotter.XYs, len(c.Samples))
		for j, s := range c.Samples {
			xys[j] = plotter.XY{X: s.PropellantKg, Y: s.DeltaV / 1000}
		}
		line, err := plotter.NewLine(xys)
		if err != nil {
			return nil, err
		}
		line.Color = plotutil.Color(i)
		line.Width = vg.Points(1.5)

		final := c.Final()
		label, err := plotter.NewLabels(plotter.XYLabels{
			XYs:    plotter.XYs{{X: final.PropellantKg, Y: final.DeltaV / 1000}},
			Labels: []string{fmt.Sprintf("%.1f km/s", c.MaxKmPerSec())},
		})
		if err != nil {
			return nil, err
		}
		label.TextStyle[0].XAlign = text.XRight
		label.TextStyle[0].YAlign = text.YBottom

		p.Add(line, label)
		p.Legend.Add(c.Name, line)
	}
	return p, nil
}

// PrintMaxima writes the final delta-v of every curve.
func PrintMaxima(w io.Writer, curves ...Curve) error {
	if _, err := fmt.Fprint(w, "\nMaximum Delta-V value:\n"); err != nil {
		return err
	}
	for _, c := range curves {
		if _, err := fmt.Fprintf(w, "%s: %.1f km/s\n", c.Name, c.MaxKmPerSec()); err != nil {
			return err
		}
	}
	return nil
}
