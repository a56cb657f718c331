package chart

import (
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/ae267/engine-trade/engine"
)

var pointColor = color.NRGBA{R: 31, G: 119, B: 180, A: 178}

// ntpCostVsThrust plots fuel cost against vacuum thrust for NTP engines only,
// naming every point.
func ntpCostVsThrust(table engine.EngineTable) (*plot.Plot, error) {
	xys, names := NTPPoints(table)
	if len(xys) == 0 {
		return nil, errNoData
	}

	points, err := plotter.NewScatter(xys)
	if err != nil {
		return nil, err
	}
	points.GlyphStyle = draw.GlyphStyle{
		Color:  pointColor,
		Radius: vg.Points(5),
		Shape:  draw.CircleGlyph{},
	}

	labels, err := valueLabels(xys, names, text.XLeft, text.YBottom, vg.Point{X: vg.Points(5), Y: vg.Points(5)})
	if err != nil {
		return nil, err
	}

	grid := plotter.NewGrid()
	dashes := []vg.Length{vg.Points(4), vg.Points(2)}
	grid.Vertical.Dashes = dashes
	grid.Horizontal.Dashes = dashes

	p := plot.New()
	p.Title.Text = "NTP Engines: Fuel Cost vs Vacuum Thrust"
	p.X.Label.Text = "Vacuum Thrust (kN)"
	p.Y.Label.Text = "Fuel Cost (k USD)"
	p.Add(grid, points, labels)
	return p, nil
}
