package fgclust

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
)

// ModelKind distinguishes classification forests from regression forests.
// It selects the quality score used during cluster-count optimization.
type ModelKind string

const (
	ModelClassifier ModelKind = "classifier"
	ModelRegressor  ModelKind = "regressor"
)

// Model is the capability fgclust requires from a fitted random forest.
// Training forests is out of scope; the forest is treated as a fixed,
// already-fitted oracle and is never mutated.
type Model interface {
	// Apply returns the terminal-node (leaf) ID of every sample in every
	// tree: a matrix of shape [len(X)][NumTrees()].
	Apply(X [][]float64) ([][]int, error)

	// NumTrees reports the number of trees in the forest.
	NumTrees() int

	// Kind reports whether the forest is a classifier or a regressor.
	Kind() ModelKind
}

// validateModelKind rejects anything that is not a classifier or regressor.
// The message names the offending kind.
func validateModelKind(kind ModelKind) error {
	switch kind {
	case ModelClassifier, ModelRegressor:
		return nil
	default:
		return fmt.Errorf("fgclust: unrecognized model kind %q: can only interpret %q or %q forests",
			kind, ModelClassifier, ModelRegressor)
	}
}

// LeafMatrixModel is a Model backed by a precomputed leaf-assignment matrix,
// typically exported from whatever toolchain trained the forest. Apply
// ignores the feature values and returns the stored assignments, so it must
// be called with the same samples (in the same order) the matrix was built
// from.
type LeafMatrixModel struct {
	leaves [][]int
	nTrees int
	kind   ModelKind
}

// NewLeafMatrixModel wraps a leaf-assignment matrix (one row per sample, one
// column per tree) as a Model.
func NewLeafMatrixModel(leaves [][]int, kind ModelKind) (*LeafMatrixModel, error) {
	if err := validateModelKind(kind); err != nil {
		return nil, err
	}
	if len(leaves) == 0 {
		return nil, fmt.Errorf("fgclust: leaf matrix has no rows")
	}
	nTrees := len(leaves[0])
	if nTrees == 0 {
		return nil, fmt.Errorf("fgclust: leaf matrix has no trees")
	}
	for i, row := range leaves {
		if len(row) != nTrees {
			return nil, fmt.Errorf("fgclust: leaf matrix row %d has %d entries, want %d", i, len(row), nTrees)
		}
	}
	return &LeafMatrixModel{leaves: leaves, nTrees: nTrees, kind: kind}, nil
}

// ReadLeafMatrixCSV parses a headerless CSV of integer leaf IDs, one row per
// sample and one column per tree.
func ReadLeafMatrixCSV(r io.Reader, kind ModelKind) (*LeafMatrixModel, error) {
	records, err := csv.NewReader(r).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("fgclust: reading leaf matrix: %w", err)
	}
	leaves := make([][]int, len(records))
	for i, record := range records {
		row := make([]int, len(record))
		for j, field := range record {
			v, err := strconv.Atoi(field)
			if err != nil {
				return nil, fmt.Errorf("fgclust: leaf matrix row %d column %d: %w", i, j, err)
			}
			row[j] = v
		}
		leaves[i] = row
	}
	return NewLeafMatrixModel(leaves, kind)
}

func (m *LeafMatrixModel) Apply(X [][]float64) ([][]int, error) {
	if X != nil && len(X) != len(m.leaves) {
		return nil, fmt.Errorf("fgclust: leaf matrix was built from %d samples, got %d", len(m.leaves), len(X))
	}
	return m.leaves, nil
}

func (m *LeafMatrixModel) NumTrees() int { return m.nTrees }

func (m *LeafMatrixModel) Kind() ModelKind { return m.kind }
