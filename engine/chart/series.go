package chart

import (
	"errors"
	"fmt"

	"gonum.org/v1/plot/plotter"

	"github.com/ae267/engine-trade/engine"
)

// ExcludedFromFuelCost is left out of the total fuel cost chart and no other.
const ExcludedFromFuelCost = "Apollo SPS (AJ10-137)"

var errNoData = errors.New("no rows to plot")

// Series is a labelled list of bar values, in drawing order.
type Series struct {
	Labels []string
	Values []float64
}

// Len returns the number of bars.
func (s Series) Len() int { return len(s.Values) }

// SortedSeries returns field f for every engine, largest first.
func SortedSeries(table engine.EngineTable, f engine.Field) Series {
	return seriesOf(table.SortedBy(f), f, 1)
}

// FuelCostSeries returns fuel cost in thousands of USD, largest first,
// for every engine except ExcludedFromFuelCost.
func FuelCostSeries(table engine.EngineTable) Series {
	return seriesOf(table.Without(ExcludedFromFuelCost).SortedBy(engine.FieldFuelCost), engine.FieldFuelCost, 1.0/1000)
}

// CategorySeries returns the per-category median of f, multiplied by scale,
// in the aggregation's category order.
func CategorySeries(medians *engine.Aggregation, f engine.Field, scale float64) (Series, error) {
	if medians == nil || len(medians.Groups) == 0 {
		return Series{}, errNoData
	}
	req := engine.Request{Field: f, Stat: engine.StatMedian}
	var s Series
	for _, g := range medians.Groups {
		v, ok := g.Value(req)
		if !ok {
			return Series{}, fmt.Errorf("median of %q not aggregated", f)
		}
		s.Labels = append(s.Labels, string(g.Category))
		s.Values = append(s.Values, v*scale)
	}
	return s, nil
}

// NTPPoints returns (vacuum thrust kN, fuel cost k USD) for every NTP engine,
// with the engine names as point labels.
func NTPPoints(table engine.EngineTable) (plotter.XYs, []string) {
	ntp := table.Filter(engine.CategoryNTP)
	xys := make(plotter.XYs, len(ntp))
	names := make([]string, len(ntp))
	for i, r := range ntp {
		xys[i].X = r.VacuumThrustKN
		xys[i].Y = r.FuelCostUSD / 1000
		names[i] = r.Name
	}
	return xys, names
}

// TableRows returns (engine, category) pairs ordered by category then name.
func TableRows(table engine.EngineTable) [][2]string {
	sorted := table.SortedByCategoryAndName()
	rows := make([][2]string, len(sorted))
	for i, r := range sorted {
		rows[i] = [2]string{r.Name, string(r.Category)}
	}
	return rows
}

func seriesOf(table engine.EngineTable, f engine.Field, scale float64) Series {
	s := Series{
		Labels: make([]string, len(table)),
		Values: make([]float64, len(table)),
	}
	for i, r := range table {
		s.Labels[i] = r.Name
		s.Values[i] = r.Value(f) * scale
	}
	return s
}
