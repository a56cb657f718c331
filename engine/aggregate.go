package engine

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

// Request asks for one statistic over one numeric field.
type Request struct {
	Field Field
	Stat  Statistic
}

func (r Request) String() string {
	return fmt.Sprintf("%s %s", r.Field, r.Stat)
}

// CategoryAggregate holds the requested statistics for one group of rows.
// For the whole-table aggregate Category is empty.
type CategoryAggregate struct {
	Category Category
	Count    int
	Values   map[Request]float64
}

// Value returns the statistic computed for req and whether it was requested.
func (a CategoryAggregate) Value(req Request) (float64, bool) {
	v, ok := a.Values[req]
	return v, ok
}

// Aggregation is the result of Aggregate.
type Aggregation struct {
	Requests []Request
	Groups   []CategoryAggregate // alphabetical by category
	Overall  CategoryAggregate
}

// Group returns the aggregate for category c.
func (a *Aggregation) Group(c Category) (CategoryAggregate, bool) {
	for _, g := range a.Groups {
		if g.Category == c {
			return g, true
		}
	}
	return CategoryAggregate{}, false
}

// Aggregate computes every request per category and over the whole table.
// Groups exist only for categories present in the table, so none is empty;
// an empty table fails with ErrEmptyGroup.
func Aggregate(table EngineTable, reqs []Request) (*Aggregation, error) {
	for _, req := range reqs {
		if !isNumericField(req.Field) {
			return nil, fmt.Errorf("unknown field %q", req.Field)
		}
	}
	if len(table) == 0 {
		return nil, fmt.Errorf("%w: dataset has no rows", ErrEmptyGroup)
	}

	overall, err := aggregateRows("", table, reqs)
	if err != nil {
		return nil, err
	}
	agg := &Aggregation{Requests: reqs, Overall: overall}
	for _, c := range table.Categories() {
		g, err := aggregateRows(c, table.Filter(c), reqs)
		if err != nil {
			return nil, fmt.Errorf("category %s: %w", c, err)
		}
		agg.Groups = append(agg.Groups, g)
	}
	logrus.Debugf("Aggregated %d requests over %d rows in %d categories", len(reqs), len(table), len(agg.Groups))
	return agg, nil
}

// Medians aggregates the median of each field.
func Medians(table EngineTable, fields ...Field) (*Aggregation, error) {
	reqs := make([]Request, len(fields))
	for i, f := range fields {
		reqs[i] = Request{Field: f, Stat: StatMedian}
	}
	return Aggregate(table, reqs)
}

func aggregateRows(c Category, rows EngineTable, reqs []Request) (CategoryAggregate, error) {
	g := CategoryAggregate{
		Category: c,
		Count:    len(rows),
		Values:   make(map[Request]float64, len(reqs)),
	}
	for _, req := range reqs {
		v, err := Compute(req.Stat, rows.Values(req.Field))
		if err != nil {
			return CategoryAggregate{}, err
		}
		g.Values[req] = v
	}
	return g, nil
}

func isNumericField(f Field) bool {
	for _, nf := range NumericFields {
		if nf == f {
			return true
		}
	}
	return false
}
