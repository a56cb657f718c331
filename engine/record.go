package engine

import (
	"fmt"
	"sort"
)

// Category groups engines by propulsion type.
type Category string

const (
	CategoryChemical Category = "Chemical"
	CategoryNTP      Category = "NTP"
)

// Field identifies one numeric column of the dataset by its CSV header.
type Field string

const (
	FieldISP            Field = "ISP (s)"
	FieldThrustToWeight Field = "Thrust-to-Weight"
	FieldVacuumThrust   Field = "Vacuum Thrust (kN)"
	FieldFuelCost       Field = "Fuel Cost (USD)"
)

// NumericFields lists the numeric columns in file order.
var NumericFields = []Field{FieldISP, FieldThrustToWeight, FieldVacuumThrust, FieldFuelCost}

// EngineRecord is one row of the dataset. Records are never mutated after loading.
type EngineRecord struct {
	Name           string
	Category       Category
	ISP            float64 // seconds
	ThrustToWeight float64
	VacuumThrustKN float64
	FuelCostUSD    float64
}

// Value returns the numeric column f of the record.
func (r EngineRecord) Value(f Field) float64 {
	switch f {
	case FieldISP:
		return r.ISP
	case FieldThrustToWeight:
		return r.ThrustToWeight
	case FieldVacuumThrust:
		return r.VacuumThrustKN
	case FieldFuelCost:
		return r.FuelCostUSD
	default:
		panic(fmt.Sprintf("engine: unknown field %q", f))
	}
}

// EngineTable is an ordered collection of records, in source file order.
// Names are unique by convention only.
type EngineTable []EngineRecord

// Values returns column f in table order.
func (t EngineTable) Values(f Field) []float64 {
	vals := make([]float64, len(t))
	for i, r := range t {
		vals[i] = r.Value(f)
	}
	return vals
}

// Filter returns the rows whose category equals c, preserving order.
func (t EngineTable) Filter(c Category) EngineTable {
	var out EngineTable
	for _, r := range t {
		if r.Category == c {
			out = append(out, r)
		}
	}
	return out
}

// Without returns a copy of the table with every row named name removed.
func (t EngineTable) Without(name string) EngineTable {
	out := make(EngineTable, 0, len(t))
	for _, r := range t {
		if r.Name != name {
			out = append(out, r)
		}
	}
	return out
}

// SortedBy returns a copy sorted by field f, largest first.
// Ties keep file order.
func (t EngineTable) SortedBy(f Field) EngineTable {
	out := make(EngineTable, len(t))
	copy(out, t)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Value(f) > out[j].Value(f)
	})
	return out
}

// SortedByCategoryAndName returns a copy ordered by (category, name) ascending.
func (t EngineTable) SortedByCategoryAndName() EngineTable {
	out := make(EngineTable, len(t))
	copy(out, t)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Category != out[j].Category {
			return out[i].Category < out[j].Category
		}
		return out[i].Name < out[j].Name
	})
	return out
}

// Categories returns the distinct categories present, in alphabetical order.
func (t EngineTable) Categories() []Category {
	seen := make(map[Category]bool)
	var cats []Category
	for _, r := range t {
		if !seen[r.Category] {
			seen[r.Category] = true
			cats = append(cats, r.Category)
		}
	}
	sort.Slice(cats, func(i, j int) bool { return cats[i] < cats[j] })
	return cats
}
