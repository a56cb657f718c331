package engine

import (
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// FieldSummary is the descriptive statistics block for one numeric column.
type FieldSummary struct {
	Field  Field
	Count  int
	Mean   float64
	Std    float64 // sample standard deviation (n-1)
	Min    float64
	Q25    float64
	Median float64
	Q75    float64
	Max    float64
}

// Describe summarizes every numeric column of the table.
// Columns of an empty table report Count 0 and zero values.
func Describe(table EngineTable) []FieldSummary {
	out := make([]FieldSummary, 0, len(NumericFields))
	for _, f := range NumericFields {
		out = append(out, describeValues(f, table.Values(f)))
	}
	return out
}

func describeValues(f Field, vals []float64) FieldSummary {
	s := FieldSummary{Field: f, Count: len(vals)}
	if len(vals) == 0 {
		return s
	}
	sorted := make([]float64, len(vals))
	copy(sorted, vals)
	sort.Float64s(sorted)

	s.Mean = stat.Mean(sorted, nil)
	s.Std = stat.StdDev(sorted, nil) // NaN for a single row
	s.Min = floats.Min(sorted)
	s.Max = floats.Max(sorted)
	s.Q25 = CalculatePercentile(sorted, 25)
	s.Median = CalculatePercentile(sorted, 50)
	s.Q75 = CalculatePercentile(sorted, 75)
	return s
}
