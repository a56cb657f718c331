package engine

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	"github.com/sirupsen/logrus"
)

// DefaultDataPath is the dataset location, relative to the working directory.
const DefaultDataPath = "rocket_engines.csv"

const (
	columnEngine   = "Engine"
	columnCategory = "Category"
)

// RequiredColumns is the fixed dataset schema, in file order.
var RequiredColumns = []string{
	columnEngine,
	columnCategory,
	string(FieldISP),
	string(FieldThrustToWeight),
	string(FieldVacuumThrust),
	string(FieldFuelCost),
}

// LoadTable reads the dataset at path.
// A missing file yields ErrFileNotFound; any schema or parse problem yields ErrDataFormat.
func LoadTable(path string) (EngineTable, error) {
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
		}
		return nil, fmt.Errorf("opening dataset: %w", err)
	}
	defer func() { _ = file.Close() }()

	table, err := ReadTable(file)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	logrus.Debugf("Loaded %d engines from %s", len(table), path)
	return table, nil
}

// ReadTable parses CSV with a header row into an EngineTable.
// The load is all-or-nothing: the first bad cell fails the whole table.
func ReadTable(r io.Reader) (EngineTable, error) {
	types := map[string]series.Type{
		columnEngine:   series.String,
		columnCategory: series.String,
	}
	for _, f := range NumericFields {
		types[string(f)] = series.Float
	}

	df := dataframe.ReadCSV(r, dataframe.HasHeader(true), dataframe.WithTypes(types))
	if err := df.Error(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDataFormat, err)
	}

	present := make(map[string]bool, df.Ncol())
	for _, name := range df.Names() {
		present[name] = true
	}
	for _, col := range RequiredColumns {
		if !present[col] {
			return nil, fmt.Errorf("%w: missing column %q", ErrDataFormat, col)
		}
	}

	numeric := make(map[Field][]float64, len(NumericFields))
	for _, f := range NumericFields {
		col := df.Col(string(f))
		if col.HasNaN() {
			for i, bad := range col.IsNaN() {
				if bad {
					return nil, fmt.Errorf("%w: row %d: column %q is not a number", ErrDataFormat, i+1, f)
				}
			}
		}
		numeric[f] = col.Float()
	}

	names := df.Col(columnEngine).Records()
	categories := df.Col(columnCategory).Records()

	table := make(EngineTable, df.Nrow())
	for i := range table {
		table[i] = EngineRecord{
			Name:           names[i],
			Category:       Category(categories[i]),
			ISP:            numeric[FieldISP][i],
			ThrustToWeight: numeric[FieldThrustToWeight][i],
			VacuumThrustKN: numeric[FieldVacuumThrust][i],
			FuelCostUSD:    numeric[FieldFuelCost][i],
		}
	}
	return table, nil
}
