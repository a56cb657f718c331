package engine

import (
	"bytes"
	"math"
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testTable() EngineTable {
	return EngineTable{
		{Name: "RS-25", Category: CategoryChemical, ISP: 452.3, ThrustToWeight: 73.1, VacuumThrustKN: 2279, FuelCostUSD: 1450000},
		{Name: "Pewee", Category: CategoryNTP, ISP: 901, ThrustToWeight: 9.2, VacuumThrustKN: 111, FuelCostUSD: 1250000},
		{Name: "RL10B-2", Category: CategoryChemical, ISP: 465.5, ThrustToWeight: 37.3, VacuumThrustKN: 110, FuelCostUSD: 180000},
		{Name: "Phoebus 2A", Category: CategoryNTP, ISP: 840, ThrustToWeight: 12.1, VacuumThrustKN: 4000, FuelCostUSD: 3900000},
		{Name: "J-2", Category: CategoryChemical, ISP: 421, ThrustToWeight: 73.2, VacuumThrustKN: 1033, FuelCostUSD: 890000},
		{Name: "Timberwind 45", Category: CategoryNTP, ISP: 1000, ThrustToWeight: 30, VacuumThrustKN: 441, FuelCostUSD: 2600000},
		{Name: "KIWI-B4E", Category: CategoryNTP, ISP: 834, ThrustToWeight: 5.4, VacuumThrustKN: 222, FuelCostUSD: 1700000},
	}
}

// referenceMedian is an independent median: sort, then pick or average the middle.
func referenceMedian(vals []float64) float64 {
	s := append([]float64(nil), vals...)
	sort.Float64s(s)
	n := len(s)
	if n%2 == 1 {
		return s[n/2]
	}
	return (s[n/2-1] + s[n/2]) / 2
}

func TestCompute_EachStatistic(t *testing.T) {
	vals := []float64{4, 1, 3, 2}
	tests := []struct {
		stat Statistic
		want float64
	}{
		{StatMean, 2.5},
		{StatMedian, 2.5},
		{StatMax, 4},
		{StatMin, 1},
	}
	for _, tc := range tests {
		t.Run(string(tc.stat), func(t *testing.T) {
			got, err := Compute(tc.stat, vals)
			require.NoError(t, err)
			assert.InDelta(t, tc.want, got, 1e-12)
		})
	}
}

func TestCompute_EmptyValues_ReturnsEmptyGroup(t *testing.T) {
	_, err := Compute(StatMean, nil)
	assert.ErrorIs(t, err, ErrEmptyGroup)
}

func TestCompute_UnknownStatistic_ReturnsError(t *testing.T) {
	_, err := Compute("mode", []float64{1})
	assert.ErrorIs(t, err, ErrUnknownStatistic)
}

func TestMedian_DoesNotReorderInput(t *testing.T) {
	vals := []float64{3, 1, 2}
	assert.Equal(t, 2.0, Median(vals))
	assert.Equal(t, []float64{3, 1, 2}, vals)
}

func TestCalculatePercentile_LinearInterpolation(t *testing.T) {
	sorted := []float64{1, 2, 3, 4}
	// rank = 0.25 * 3 = 0.75 -> 1 + 0.75
	assert.InDelta(t, 1.75, CalculatePercentile(sorted, 25), 1e-12)
	assert.InDelta(t, 3.25, CalculatePercentile(sorted, 75), 1e-12)
	assert.Equal(t, 1.0, CalculatePercentile(sorted, 0))
	assert.Equal(t, 4.0, CalculatePercentile(sorted, 100))
	assert.Equal(t, 0.0, CalculatePercentile(nil, 50))
}

func TestAggregate_GroupMedianMatchesReference(t *testing.T) {
	// GIVEN a mixed-category table
	table := testTable()

	// WHEN medians are aggregated for every numeric field
	agg, err := Medians(table, NumericFields...)
	require.NoError(t, err)

	// THEN each group's median equals the reference median of that group's rows
	for _, g := range agg.Groups {
		rows := table.Filter(g.Category)
		assert.Equal(t, len(rows), g.Count)
		for _, f := range NumericFields {
			got, ok := g.Value(Request{Field: f, Stat: StatMedian})
			require.True(t, ok)
			assert.InDelta(t, referenceMedian(rows.Values(f)), got, 1e-9, "%s %s", g.Category, f)
		}
	}
}

func TestAggregate_GroupsSortedAlphabeticallyWithOverall(t *testing.T) {
	agg, err := Aggregate(testTable(), []Request{{FieldISP, StatMax}, {FieldFuelCost, StatMin}})
	require.NoError(t, err)

	require.Len(t, agg.Groups, 2)
	assert.Equal(t, CategoryChemical, agg.Groups[0].Category)
	assert.Equal(t, CategoryNTP, agg.Groups[1].Category)

	assert.Equal(t, 7, agg.Overall.Count)
	assert.Equal(t, 1000.0, agg.Overall.Values[Request{FieldISP, StatMax}])
	assert.Equal(t, 180000.0, agg.Overall.Values[Request{FieldFuelCost, StatMin}])

	ntp, ok := agg.Group(CategoryNTP)
	require.True(t, ok)
	assert.Equal(t, 1250000.0, ntp.Values[Request{FieldFuelCost, StatMin}])
}

func TestAggregate_SingleCategory_OmitsAbsentCategory(t *testing.T) {
	// GIVEN a table with only NTP rows
	table := testTable().Filter(CategoryNTP)

	// WHEN aggregated
	agg, err := Aggregate(table, []Request{{FieldISP, StatMean}})
	require.NoError(t, err)

	// THEN the absent Chemical category is omitted rather than reported empty
	require.Len(t, agg.Groups, 1)
	_, ok := agg.Group(CategoryChemical)
	assert.False(t, ok)
}

func TestAggregate_EmptyTable_ReturnsEmptyGroup(t *testing.T) {
	_, err := Aggregate(EngineTable{}, []Request{{FieldISP, StatMean}})
	assert.ErrorIs(t, err, ErrEmptyGroup)
}

func TestAggregate_UnknownField_ReturnsError(t *testing.T) {
	_, err := Aggregate(testTable(), []Request{{"Chamber Pressure", StatMean}})
	assert.Error(t, err)
}

func TestSortedBy_DescendingPermutation(t *testing.T) {
	table := testTable()
	for _, f := range NumericFields {
		sorted := table.SortedBy(f)
		require.Len(t, sorted, len(table))
		for i := 1; i < len(sorted); i++ {
			assert.GreaterOrEqual(t, sorted[i-1].Value(f), sorted[i].Value(f), "%s at %d", f, i)
		}
		assert.ElementsMatch(t, table, sorted)
	}
	// the receiver keeps file order
	assert.Equal(t, "RS-25", table[0].Name)
}

func TestSortedByCategoryAndName(t *testing.T) {
	sorted := testTable().SortedByCategoryAndName()
	var names []string
	for _, r := range sorted {
		names = append(names, r.Name)
	}
	assert.Equal(t, []string{"J-2", "RL10B-2", "RS-25", "KIWI-B4E", "Pewee", "Phoebus 2A", "Timberwind 45"}, names)
}

func TestWithout_RemovesNamedRowOnly(t *testing.T) {
	table := testTable()
	out := table.Without("Pewee")
	assert.Len(t, out, len(table)-1)
	for _, r := range out {
		assert.NotEqual(t, "Pewee", r.Name)
	}
}

func TestDescribe_MatchesHandComputedValues(t *testing.T) {
	table := EngineTable{
		{Name: "a", ISP: 1}, {Name: "b", ISP: 2}, {Name: "c", ISP: 3}, {Name: "d", ISP: 4},
	}
	s := Describe(table)[0]
	assert.Equal(t, FieldISP, s.Field)
	assert.Equal(t, 4, s.Count)
	assert.InDelta(t, 2.5, s.Mean, 1e-12)
	assert.InDelta(t, math.Sqrt(5.0/3.0), s.Std, 1e-12)
	assert.InDelta(t, 1.75, s.Q25, 1e-12)
	assert.InDelta(t, 2.5, s.Median, 1e-12)
	assert.InDelta(t, 3.25, s.Q75, 1e-12)
	assert.Equal(t, 1.0, s.Min)
	assert.Equal(t, 4.0, s.Max)
}

func TestPrintSummary_Deterministic(t *testing.T) {
	// GIVEN the same table
	table := testTable()

	// WHEN the summary is printed twice
	var first, second bytes.Buffer
	require.NoError(t, PrintSummary(&first, table))
	require.NoError(t, PrintSummary(&second, table))

	// THEN the output is byte-identical
	assert.Equal(t, first.String(), second.String())
}

func TestPrintSummary_ContainsSectionsAndCategories(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, PrintSummary(&buf, testTable()))
	out := buf.String()

	assert.Contains(t, out, "Rocket Engine Analysis Summary:")
	assert.Contains(t, out, "Basic Statistics:")
	assert.Contains(t, out, "Category-wise Analysis:")
	assert.Contains(t, out, "ISP (s) mean")
	assert.Contains(t, out, "Fuel Cost (USD) min")

	var chemLine string
	for _, line := range strings.Split(out, "\n") {
		if strings.HasPrefix(line, "Chemical") {
			chemLine = line
		}
	}
	require.NotEmpty(t, chemLine)
	// max ISP among chemical rows
	assert.Contains(t, chemLine, "465.500000")
}

func TestPrintSummary_EmptyTable_ReturnsError(t *testing.T) {
	var buf bytes.Buffer
	err := PrintSummary(&buf, nil)
	assert.ErrorIs(t, err, ErrEmptyGroup)
	assert.Zero(t, buf.Len())
}
