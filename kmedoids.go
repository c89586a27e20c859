package fgclust

import (
	"fmt"
	"math"
	"sort"
)

// ClusterFunc is the injected clustering strategy: it takes a flat n×n
// distance matrix and returns one cluster label per sample. Labels are small
// nonnegative integers with no identity continuity between invocations.
type ClusterFunc func(dist []float64, n int) []int

// KMedoids partitions samples into K clusters represented by actual samples
// (medoids), operating directly on a precomputed distance matrix. It uses
// the deterministic PAM algorithm: greedy BUILD initialization followed by a
// bounded SWAP phase. Given the same matrix it always produces the same
// labeling; ties are resolved toward the lowest sample index.
type KMedoids struct {
	// K is the number of clusters. Must be between 1 and n.
	K int

	// MaxIter bounds the number of SWAP iterations. 0 means 300.
	MaxIter int
}

// Fit clusters the flat n×n distance matrix and returns one label per
// sample, in 0..K-1. Panics if K is out of range for n; KMedoids is always
// constructed by code that already knows n.
func (km KMedoids) Fit(dist []float64, n int) []int {
	if km.K < 1 || km.K > n {
		panic(fmt.Sprintf("fgclust: KMedoids.K = %d out of range for %d samples", km.K, n))
	}

	medoids := pamBuild(dist, n, km.K)

	maxIter := km.MaxIter
	if maxIter <= 0 {
		maxIter = 300
	}
	for iter := 0; iter < maxIter; iter++ {
		if !pamSwap(dist, n, medoids) {
			break
		}
	}

	sort.Ints(medoids)
	return assignToMedoids(dist, n, medoids)
}

// pamBuild performs the greedy BUILD initialization: the first medoid
// minimizes the total distance to all samples, and each subsequent medoid is
// the sample whose addition most reduces the total nearest-medoid distance.
func pamBuild(dist []float64, n, k int) []int {
	best, bestCost := 0, math.Inf(1)
	for i := 0; i < n; i++ {
		var cost float64
		for j := 0; j < n; j++ {
			cost += dist[i*n+j]
		}
		if cost < bestCost {
			best, bestCost = i, cost
		}
	}

	medoids := make([]int, 1, k)
	medoids[0] = best

	// nearest[j] is the distance from j to its closest medoid so far.
	nearest := make([]float64, n)
	for j := 0; j < n; j++ {
		nearest[j] = dist[best*n+j]
	}

	chosen := make([]bool, n)
	chosen[best] = true

	for len(medoids) < k {
		bestGain := math.Inf(-1)
		next := -1
		for c := 0; c < n; c++ {
			if chosen[c] {
				continue
			}
			var gain float64
			for j := 0; j < n; j++ {
				if d := nearest[j] - dist[c*n+j]; d > 0 {
					gain += d
				}
			}
			if gain > bestGain {
				bestGain, next = gain, c
			}
		}
		medoids = append(medoids, next)
		chosen[next] = true
		for j := 0; j < n; j++ {
			if d := dist[next*n+j]; d < nearest[j] {
				nearest[j] = d
			}
		}
	}
	return medoids
}

// pamSwap evaluates every (medoid, non-medoid) exchange and applies the one
// with the largest strict cost decrease. Reports whether a swap was applied.
func pamSwap(dist []float64, n int, medoids []int) bool {
	isMedoid := make([]bool, n)
	for _, m := range medoids {
		isMedoid[m] = true
	}

	baseline := configurationCost(dist, n, medoids)
	bestCost := baseline
	bestMedoid, bestSwap := -1, -1

	for mi := range medoids {
		saved := medoids[mi]
		for h := 0; h < n; h++ {
			if isMedoid[h] {
				continue
			}
			medoids[mi] = h
			if cost := configurationCost(dist, n, medoids); cost < bestCost {
				bestCost, bestMedoid, bestSwap = cost, mi, h
			}
		}
		medoids[mi] = saved
	}

	if bestMedoid < 0 {
		return false
	}
	medoids[bestMedoid] = bestSwap
	return true
}

// configurationCost is the total distance from each sample to its nearest
// medoid.
func configurationCost(dist []float64, n int, medoids []int) float64 {
	var cost float64
	for j := 0; j < n; j++ {
		nearest := math.Inf(1)
		for _, m := range medoids {
			if d := dist[m*n+j]; d < nearest {
				nearest = d
			}
		}
		cost += nearest
	}
	return cost
}

// assignToMedoids labels each sample with the position of its nearest medoid,
// ties toward the lowest position.
func assignToMedoids(dist []float64, n int, medoids []int) []int {
	labels := make([]int, n)
	for j := 0; j < n; j++ {
		bestLabel, bestDist := 0, math.Inf(1)
		for li, m := range medoids {
			if d := dist[m*n+j]; d < bestDist {
				bestLabel, bestDist = li, d
			}
		}
		labels[j] = bestLabel
	}
	return labels
}
