package fgclust

import (
	"math"
	"testing"
)

// lineDistances builds a flat distance matrix from 1-D coordinates using
// absolute difference.
func lineDistances(coords []float64) ([]float64, int) {
	n := len(coords)
	dist := make([]float64, n*n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			dist[i*n+j] = math.Abs(coords[i] - coords[j])
		}
	}
	return dist, n
}

func TestKMedoids_TwoWellSeparatedGroups(t *testing.T) {
	// Two groups on a line: {0,1,2} and {10,11,12}. With k=2 the PAM swap
	// phase should settle on one medoid per group (coords 1 and 11) and
	// label the groups cleanly.
	dist, n := lineDistances([]float64{0, 1, 2, 10, 11, 12})

	labels := KMedoids{K: 2}.Fit(dist, n)

	if labels[0] != labels[1] || labels[1] != labels[2] {
		t.Errorf("first group split: labels = %v", labels)
	}
	if labels[3] != labels[4] || labels[4] != labels[5] {
		t.Errorf("second group split: labels = %v", labels)
	}
	if labels[0] == labels[3] {
		t.Errorf("groups merged: labels = %v", labels)
	}
}

func TestKMedoids_SingleCluster(t *testing.T) {
	dist, n := lineDistances([]float64{0, 1, 2, 3})

	labels := KMedoids{K: 1}.Fit(dist, n)

	for i, l := range labels {
		if l != 0 {
			t.Errorf("labels[%d] = %d, want 0", i, l)
		}
	}
}

func TestKMedoids_KEqualsN(t *testing.T) {
	dist, n := lineDistances([]float64{0, 5, 10})

	labels := KMedoids{K: 3}.Fit(dist, n)

	seen := make(map[int]bool)
	for _, l := range labels {
		if seen[l] {
			t.Fatalf("label %d reused with k=n: labels = %v", l, labels)
		}
		seen[l] = true
	}
}

func TestKMedoids_Deterministic(t *testing.T) {
	dist, n := lineDistances([]float64{0, 1, 2, 3, 10, 11, 12, 20, 21, 22})

	first := KMedoids{K: 3}.Fit(dist, n)
	second := KMedoids{K: 3}.Fit(dist, n)

	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("labels differ at %d between identical runs: %v vs %v", i, first, second)
		}
	}
}

func TestKMedoids_LabelsInRange(t *testing.T) {
	dist, n := lineDistances([]float64{3, 7, 1, 9, 4, 6, 8})
	k := 3

	labels := KMedoids{K: k}.Fit(dist, n)

	if len(labels) != n {
		t.Fatalf("got %d labels, want %d", len(labels), n)
	}
	for i, l := range labels {
		if l < 0 || l >= k {
			t.Errorf("labels[%d] = %d out of [0,%d)", i, l, k)
		}
	}
}

func TestKMedoids_PanicsOnBadK(t *testing.T) {
	dist, n := lineDistances([]float64{0, 1})

	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for K > n")
		}
	}()
	KMedoids{K: 3}.Fit(dist, n)
}
