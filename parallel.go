package fgclust

import (
	"fmt"
	"math/rand"
	"sync"
)

// ComputeProximityParallel computes the forest proximity matrix using
// multiple goroutines. Each worker fills a contiguous range of rows; since
// a pair (i, j) is owned solely by the worker covering min(i, j), no
// synchronization is needed for writes. If workers <= 1 it falls back to the
// single-threaded ComputeProximity.
//
// The result is bitwise identical to ComputeProximity.
func ComputeProximityParallel(model Model, X [][]float64, normalize bool, workers int) ([]float64, error) {
	if workers <= 1 {
		return ComputeProximity(model, X, normalize)
	}

	leaves, err := applyModel(model, X)
	if err != nil {
		return nil, err
	}
	n := len(leaves)
	nTrees := model.NumTrees()
	prox := make([]float64, n*n)

	var wg sync.WaitGroup
	rowsPerWorker := (n + workers - 1) / workers

	for w := 0; w < workers; w++ {
		start := w * rowsPerWorker
		end := start + rowsPerWorker
		if end > n {
			end = n
		}
		if start >= n {
			break
		}

		wg.Add(1)
		go func(start, end int) {
			defer wg.Done()
			proximityRows(leaves, nTrees, normalize, start, end, prox)
		}(start, end)
	}

	wg.Wait()
	return prox, nil
}

// StabilityIndicesParallel computes bootstrap stability indices using
// multiple goroutines, one contiguous range of bootstrap rounds per worker.
// Each round seeds its own source with seed+round and its credits are
// reduced in round order afterwards, so the result is bitwise identical to
// the sequential StabilityIndices regardless of scheduling. Falls back to
// the sequential path if workers <= 1.
func StabilityIndicesParallel(dist []float64, n int, clusterFn ClusterFunc, bootstraps int, seed int64, workers int) (map[int]float64, error) {
	if workers <= 1 {
		return StabilityIndices(dist, n, clusterFn, bootstraps, seed)
	}
	if err := validateSquare(dist, n); err != nil {
		return nil, err
	}
	if bootstraps < 1 {
		return nil, fmt.Errorf("fgclust: bootstraps must be >= 1, got %d", bootstraps)
	}

	labels := clusterFn(dist, n)
	clusters := uniqueLabels(labels)
	originalSets := labelSets(labels, nil)

	credits := make([][]float64, bootstraps)

	var wg sync.WaitGroup
	roundsPerWorker := (bootstraps + workers - 1) / workers

	for w := 0; w < workers; w++ {
		start := w * roundsPerWorker
		end := start + roundsPerWorker
		if end > bootstraps {
			end = bootstraps
		}
		if start >= bootstraps {
			break
		}

		wg.Add(1)
		go func(start, end int) {
			defer wg.Done()
			for round := start; round < end; round++ {
				rng := rand.New(rand.NewSource(seed + int64(round)))
				resampled, mapping := BootstrapMatrix(dist, n, rng)
				credits[round] = bootstrapRound(resampled, n, clusterFn, clusters, originalSets, mapping)
			}
		}(start, end)
	}

	wg.Wait()

	scores := make(map[int]float64, len(clusters))
	for _, c := range clusters {
		scores[c] = 0
	}
	for _, credit := range credits {
		for i, c := range clusters {
			scores[c] += credit[i]
		}
	}
	for _, c := range clusters {
		scores[c] /= float64(bootstraps)
	}
	return scores, nil
}
