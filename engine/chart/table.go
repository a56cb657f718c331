package chart

import (
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/ae267/engine-trade/engine"
)

var (
	headerFill = color.RGBA{R: 0xf2, G: 0xf2, B: 0xf2, A: 0xff}
	rowFills   = [2]color.Color{
		color.White,
		color.RGBA{R: 0xf8, G: 0xf8, B: 0xf8, A: 0xff},
	}
	ruleStyle = draw.LineStyle{Color: color.Gray{Y: 160}, Width: vg.Points(0.5)}

	maxRowHeight = vg.Points(22)
)

// cellTable draws a two-column table filling the data area from the top:
// shaded header, alternating row shading, horizontal rules only.
type cellTable struct {
	header [2]string
	rows   [][2]string
}

// DataRange implements plot.DataRanger with a fixed unit square; the table
// lays itself out in canvas coordinates.
func (t *cellTable) DataRange() (xmin, xmax, ymin, ymax float64) {
	return 0, 1, 0, 1
}

// Plot implements plot.Plotter.
func (t *cellTable) Plot(c draw.Canvas, plt *plot.Plot) {
	n := len(t.rows) + 1
	rowH := (c.Max.Y - c.Min.Y) / vg.Length(n)
	if rowH > maxRowHeight {
		rowH = maxRowHeight
	}
	colW := (c.Max.X - c.Min.X) / 2

	sty := plt.Title.TextStyle
	sty.Font.Size = vg.Points(9)
	sty.XAlign = text.XCenter
	sty.YAlign = text.YCenter

	top := c.Max.Y
	c.StrokeLine2(ruleStyle, c.Min.X, top, c.Max.X, top)
	for i := 0; i < n; i++ {
		cells := t.header
		fill := color.Color(headerFill)
		if i > 0 {
			cells = t.rows[i-1]
			fill = rowFills[(i-1)%2]
		}

		bottom := top - rowH
		c.FillPolygon(fill, []vg.Point{
			{X: c.Min.X, Y: bottom}, {X: c.Max.X, Y: bottom},
			{X: c.Max.X, Y: top}, {X: c.Min.X, Y: top},
		})
		for j, cell := range cells {
			x := c.Min.X + colW*(vg.Length(j)+0.5)
			c.FillText(sty, vg.Point{X: x, Y: bottom + rowH/2}, cell)
		}
		c.StrokeLine2(ruleStyle, c.Min.X, bottom, c.Max.X, bottom)
		top = bottom
	}
}

// enginesTable renders every engine and its category, ordered by (category, name).
func enginesTable(table engine.EngineTable) (*plot.Plot, error) {
	rows := TableRows(table)
	if len(rows) == 0 {
		return nil, errNoData
	}

	p := plot.New()
	p.Title.Text = "Rocket Engines"
	p.Title.TextStyle.Font.Size = vg.Points(14)
	p.Title.Padding = vg.Points(12)
	p.HideAxes()
	p.Add(&cellTable{header: [2]string{"Engine", "Category"}, rows: rows})
	return p, nil
}

// tableHeight sizes the table image to its row count.
func tableHeight(rows int) vg.Length {
	return vg.Length(float64(rows)*0.4+2) * vg.Inch
}
