package chart

import (
	"fmt"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
)

// oneDecimal matches the "%.1f" value labels on the ISP, T/W and median charts.
func oneDecimal(v float64) string { return fmt.Sprintf("%.1f", v) }

// horizontalBars draws s as horizontal bars with the first value at the top,
// each bar labelled at its tip.
func horizontalBars(title, xLabel string, s Series, label func(float64) string) (*plot.Plot, error) {
	n := s.Len()
	if n == 0 {
		return nil, errNoData
	}

	// y=0 is the bottom of the axis, so reverse to keep the largest bar on top.
	vals := make(plotter.Values, n)
	names := make([]string, n)
	xys := make(plotter.XYs, n)
	texts := make([]string, n)
	for i, v := range s.Values {
		j := n - 1 - i
		vals[j] = v
		names[j] = s.Labels[i]
		xys[j] = plotter.XY{X: v, Y: float64(j)}
		texts[j] = label(v)
	}

	bars, err := plotter.NewBarChart(vals, vg.Points(16))
	if err != nil {
		return nil, err
	}
	bars.Horizontal = true
	bars.Color = plotutil.Color(0)
	bars.LineStyle.Width = 0

	labels, err := valueLabels(xys, texts, text.XLeft, text.YCenter, vg.Point{X: vg.Points(3)})
	if err != nil {
		return nil, err
	}

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = xLabel
	p.Y.Label.Text = "Engine"
	p.Add(bars, labels)
	p.NominalY(names...)
	return p, nil
}

// verticalBars draws s left to right with rotated engine names under each bar.
func verticalBars(title, xLabel, yLabel string, s Series, label func(float64) string) (*plot.Plot, error) {
	n := s.Len()
	if n == 0 {
		return nil, errNoData
	}

	xys := make(plotter.XYs, n)
	texts := make([]string, n)
	for i, v := range s.Values {
		xys[i] = plotter.XY{X: float64(i), Y: v}
		texts[i] = label(v)
	}

	bars, err := plotter.NewBarChart(plotter.Values(s.Values), vg.Points(20))
	if err != nil {
		return nil, err
	}
	bars.Color = plotutil.Color(0)
	bars.LineStyle.Width = 0

	labels, err := valueLabels(xys, texts, text.XCenter, text.YBottom, vg.Point{Y: vg.Points(2)})
	if err != nil {
		return nil, err
	}

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = xLabel
	p.Y.Label.Text = yLabel
	p.Add(bars, labels)
	p.NominalX(s.Labels...)
	p.X.Tick.Label.Rotation = math.Pi / 4
	p.X.Tick.Label.XAlign = text.XRight
	p.X.Tick.Label.YAlign = text.YCenter
	return p, nil
}

// categoryBars draws one colored bar per category.
func categoryBars(title, yLabel string, s Series) (*plot.Plot, error) {
	if s.Len() == 0 {
		return nil, errNoData
	}

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "Category"
	p.Y.Label.Text = yLabel

	xys := make(plotter.XYs, s.Len())
	texts := make([]string, s.Len())
	for i, v := range s.Values {
		bar, err := plotter.NewBarChart(plotter.Values{v}, vg.Points(80))
		if err != nil {
			return nil, err
		}
		bar.XMin = float64(i)
		bar.Color = plotutil.Color(i)
		bar.LineStyle.Width = 0
		p.Add(bar)

		xys[i] = plotter.XY{X: float64(i), Y: v}
		texts[i] = oneDecimal(v)
	}

	labels, err := valueLabels(xys, texts, text.XCenter, text.YBottom, vg.Point{Y: vg.Points(2)})
	if err != nil {
		return nil, err
	}
	p.Add(labels)
	p.NominalX(s.Labels...)
	return p, nil
}

func valueLabels(xys plotter.XYs, texts []string, xAlign text.XAlignment, yAlign text.YAlignment, offset vg.Point) (*plotter.Labels, error) {
	labels, err := plotter.NewLabels(plotter.XYLabels{XYs: xys, Labels: texts})
	if err != nil {
		return nil, err
	}
	for i := range labels.TextStyle {
		labels.TextStyle[i].XAlign = xAlign
		labels.TextStyle[i].YAlign = yAlign
	}
	labels.Offset = offset
	return labels, nil
}
