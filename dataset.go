package fgclust

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
)

// Dataset is a tabular structure with named numeric columns, one of which is
// the designated target. All non-target columns are features fed to the
// model and to clustering.
type Dataset struct {
	columns []string
	target  int
	rows    [][]float64
}

// NewDataset builds a Dataset from column names and row-major values.
// target must name one of the columns.
func NewDataset(columns []string, rows [][]float64, target string) (*Dataset, error) {
	targetIdx := -1
	for i, c := range columns {
		if c == target {
			targetIdx = i
			break
		}
	}
	if targetIdx < 0 {
		return nil, fmt.Errorf("fgclust: target column %q not found", target)
	}
	if len(columns) < 2 {
		return nil, fmt.Errorf("fgclust: dataset needs at least one feature besides the target")
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("fgclust: dataset has no rows")
	}
	for i, row := range rows {
		if len(row) != len(columns) {
			return nil, fmt.Errorf("fgclust: row %d has %d values, want %d", i, len(row), len(columns))
		}
	}
	return &Dataset{columns: columns, target: targetIdx, rows: rows}, nil
}

// ReadCSV parses a CSV with a header row into a Dataset. Every value must be
// numeric.
func ReadCSV(r io.Reader, target string) (*Dataset, error) {
	records, err := csv.NewReader(r).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("fgclust: reading dataset: %w", err)
	}
	if len(records) < 2 {
		return nil, fmt.Errorf("fgclust: dataset CSV needs a header row and at least one data row")
	}
	columns := records[0]
	rows := make([][]float64, len(records)-1)
	for i, record := range records[1:] {
		row := make([]float64, len(record))
		for j, field := range record {
			v, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, fmt.Errorf("fgclust: dataset row %d column %q: %w", i+1, columns[j], err)
			}
			row[j] = v
		}
		rows[i] = row
	}
	return NewDataset(columns, rows, target)
}

// NumSamples reports the number of rows.
func (d *Dataset) NumSamples() int { return len(d.rows) }

// FeatureNames returns the column names excluding the target, in column order.
func (d *Dataset) FeatureNames() []string {
	names := make([]string, 0, len(d.columns)-1)
	for i, c := range d.columns {
		if i != d.target {
			names = append(names, c)
		}
	}
	return names
}

// TargetName returns the name of the target column.
func (d *Dataset) TargetName() string { return d.columns[d.target] }

// Features returns the feature values as an n×f matrix, excluding the target
// column.
func (d *Dataset) Features() [][]float64 {
	X := make([][]float64, len(d.rows))
	for i, row := range d.rows {
		x := make([]float64, 0, len(row)-1)
		for j, v := range row {
			if j != d.target {
				x = append(x, v)
			}
		}
		X[i] = x
	}
	return X
}

// TargetValues returns the target column.
func (d *Dataset) TargetValues() []float64 {
	y := make([]float64, len(d.rows))
	for i, row := range d.rows {
		y[i] = row[d.target]
	}
	return y
}

// FeatureColumn returns a single feature column by name.
func (d *Dataset) FeatureColumn(name string) ([]float64, error) {
	for j, c := range d.columns {
		if c == name && j != d.target {
			col := make([]float64, len(d.rows))
			for i, row := range d.rows {
				col[i] = row[j]
			}
			return col, nil
		}
	}
	return nil, fmt.Errorf("fgclust: feature column %q not found", name)
}
