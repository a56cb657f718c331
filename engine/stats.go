// engine/stats.go
package engine

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Statistic names a scalar reduction over one column.
type Statistic string

const (
	StatMean   Statistic = "mean"
	StatMedian Statistic = "median"
	StatMax    Statistic = "max"
	StatMin    Statistic = "min"
)

// CalculatePercentile returns the p-th percentile of sorted data, interpolating
// linearly between the two closest ranks (rank = p/100 * (n-1)).
// Returns 0 for empty input.
func CalculatePercentile(sorted []float64, p float64) float64 {
	n := len(sorted)
	if n == 0 {
		return 0
	}

	rank := p / 100.0 * float64(n-1)
	lowerIdx := int(math.Floor(rank))
	upperIdx := int(math.Ceil(rank))
	if upperIdx >= n {
		return sorted[n-1]
	}
	if lowerIdx == upperIdx {
		return sorted[lowerIdx]
	}
	lowerVal := sorted[lowerIdx]
	upperVal := sorted[upperIdx]
	return lowerVal + (upperVal-lowerVal)*(rank-float64(lowerIdx))
}

// Median returns the middle value of vals, averaging the two middle values for even n.
// vals is not modified.
func Median(vals []float64) float64 {
	sorted := make([]float64, len(vals))
	copy(sorted, vals)
	sort.Float64s(sorted)
	return CalculatePercentile(sorted, 50)
}

// Compute reduces vals with stat.
func Compute(s Statistic, vals []float64) (float64, error) {
	if len(vals) == 0 {
		return 0, fmt.Errorf("%w: %s", ErrEmptyGroup, s)
	}
	switch s {
	case StatMean:
		return stat.Mean(vals, nil), nil
	case StatMedian:
		return Median(vals), nil
	case StatMax:
		return floats.Max(vals), nil
	case StatMin:
		return floats.Min(vals), nil
	default:
		return 0, fmt.Errorf("%w %q; valid: mean, median, max, min", ErrUnknownStatistic, s)
	}
}
