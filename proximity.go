package fgclust

import "fmt"

// ComputeProximity computes the forest proximity matrix for the samples in X:
// proximity[i][j] is the number of trees in which samples i and j land in the
// same leaf, divided by the number of trees when normalize is true. The
// result is a flat []float64 of length n×n in row-major order, symmetric,
// with a maximal diagonal (every sample shares all its leaves with itself).
//
// Cost is O(n² · trees); this is an offline interpretability computation, not
// a hot path.
func ComputeProximity(model Model, X [][]float64, normalize bool) ([]float64, error) {
	leaves, err := applyModel(model, X)
	if err != nil {
		return nil, err
	}
	n := len(leaves)
	prox := make([]float64, n*n)
	return proximityRows(leaves, model.NumTrees(), normalize, 0, n, prox), nil
}

// applyModel fetches and validates the per-tree leaf assignments for X.
func applyModel(model Model, X [][]float64) ([][]int, error) {
	leaves, err := model.Apply(X)
	if err != nil {
		return nil, err
	}
	if len(leaves) == 0 {
		return nil, fmt.Errorf("fgclust: model returned no leaf assignments")
	}
	nTrees := model.NumTrees()
	for i, row := range leaves {
		if len(row) != nTrees {
			return nil, fmt.Errorf("fgclust: leaf assignment row %d has %d entries, want %d trees", i, len(row), nTrees)
		}
	}
	return leaves, nil
}

// proximityRows fills rows [start, end) of the proximity matrix, mirroring
// each entry into the lower triangle for j >= start. Writing disjoint row
// ranges from multiple goroutines is safe because entries (i,j) and (j,i)
// with i < j are both owned by the worker covering row i.
func proximityRows(leaves [][]int, nTrees int, normalize bool, start, end int, prox []float64) []float64 {
	n := len(leaves)
	scale := 1.0
	if normalize {
		scale = 1.0 / float64(nTrees)
	}
	for i := start; i < end; i++ {
		prox[i*n+i] = float64(nTrees) * scale
		for j := i + 1; j < n; j++ {
			shared := 0
			for t := 0; t < nTrees; t++ {
				if leaves[i][t] == leaves[j][t] {
					shared++
				}
			}
			p := float64(shared) * scale
			prox[i*n+j] = p
			prox[j*n+i] = p
		}
	}
	return prox
}
