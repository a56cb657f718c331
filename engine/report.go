package engine

import (
	"bytes"
	"fmt"
	"io"
	"math"
	"strings"
)

// SummaryRequests is the fixed set of per-category statistics in the console summary.
var SummaryRequests = []Request{
	{FieldISP, StatMean},
	{FieldISP, StatMax},
	{FieldThrustToWeight, StatMean},
	{FieldThrustToWeight, StatMax},
	{FieldFuelCost, StatMean},
	{FieldFuelCost, StatMin},
}

const (
	labelWidth  = 10
	columnWidth = 24
)

// PrintSummary writes the descriptive statistics and the category-wise analysis to w.
// Output depends only on the table contents.
func PrintSummary(w io.Writer, table EngineTable) error {
	agg, err := Aggregate(table, SummaryRequests)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	fmt.Fprintln(&buf, "\nRocket Engine Analysis Summary:")
	fmt.Fprintln(&buf, strings.Repeat("-", 50))

	fmt.Fprintln(&buf, "\nBasic Statistics:")
	writeDescribe(&buf, Describe(table))

	fmt.Fprintln(&buf, "\nCategory-wise Analysis:")
	writeAggregation(&buf, agg)

	_, err = w.Write(buf.Bytes())
	return err
}

func writeDescribe(buf *bytes.Buffer, summaries []FieldSummary) {
	fmt.Fprintf(buf, "%-*s", labelWidth, "")
	for _, s := range summaries {
		fmt.Fprintf(buf, "%*s", columnWidth, s.Field)
	}
	buf.WriteByte('\n')

	rows := []struct {
		label string
		value func(FieldSummary) float64
	}{
		{"count", func(s FieldSummary) float64 { return float64(s.Count) }},
		{"mean", func(s FieldSummary) float64 { return s.Mean }},
		{"std", func(s FieldSummary) float64 { return s.Std }},
		{"min", func(s FieldSummary) float64 { return s.Min }},
		{"25%", func(s FieldSummary) float64 { return s.Q25 }},
		{"50%", func(s FieldSummary) float64 { return s.Median }},
		{"75%", func(s FieldSummary) float64 { return s.Q75 }},
		{"max", func(s FieldSummary) float64 { return s.Max }},
	}
	for _, row := range rows {
		fmt.Fprintf(buf, "%-*s", labelWidth, row.label)
		for _, s := range summaries {
			fmt.Fprintf(buf, "%*s", columnWidth, formatStat(row.value(s)))
		}
		buf.WriteByte('\n')
	}
}

func writeAggregation(buf *bytes.Buffer, agg *Aggregation) {
	fmt.Fprintf(buf, "%-*s", labelWidth, "Category")
	for _, req := range agg.Requests {
		fmt.Fprintf(buf, "%*s", columnWidth, req.String())
	}
	buf.WriteByte('\n')

	for _, g := range agg.Groups {
		fmt.Fprintf(buf, "%-*s", labelWidth, g.Category)
		for _, req := range agg.Requests {
			fmt.Fprintf(buf, "%*s", columnWidth, formatStat(g.Values[req]))
		}
		buf.WriteByte('\n')
	}
}

func formatStat(v float64) string {
	if math.IsNaN(v) {
		return "NaN"
	}
	return fmt.Sprintf("%.6f", v)
}
