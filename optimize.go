package fgclust

import (
	"fmt"
	"math"

	"github.com/rs/zerolog/log"
)

// OptimizeK searches candidate cluster counts k in [2, cfg.MaxK) and returns
// the best stable one. For each k, the distance matrix is clustered with
// k-medoids and the per-cluster bootstrap stability indices are computed; if
// any cluster's index is at or below cfg.DiscardThreshold the candidate is
// rejected outright, since a clustering is only interpretable when every
// cluster survives resampling. Surviving candidates are scored by kind
// (balanced purity for classifiers, within-cluster variance for regressors)
// and the strictly smallest score wins, so the smallest k takes ties.
//
// Returns 1 when no candidate in range is stable; that outcome is logged,
// not an error.
func OptimizeK(dist []float64, n int, y []float64, kind ModelKind, cfg Config) (int, error) {
	applyDefaults(&cfg)
	if err := validateConfig(&cfg); err != nil {
		return 0, err
	}
	if err := validateModelKind(kind); err != nil {
		return 0, err
	}
	if err := validateSquare(dist, n); err != nil {
		return 0, err
	}
	if len(y) != n {
		return 0, fmt.Errorf("fgclust: target has %d values, want %d", len(y), n)
	}
	if n < cfg.MaxK-1 {
		return 0, fmt.Errorf("fgclust: MaxK = %d needs at least %d samples, got %d", cfg.MaxK, cfg.MaxK-1, n)
	}

	scoreMin := math.Inf(1)
	optimalK := 1

	for k := 2; k < cfg.MaxK; k++ {
		km := KMedoids{K: k, MaxIter: cfg.MaxIterClustering}

		indices, err := stabilityForWorkers(dist, n, km.Fit, cfg.Bootstraps, cfg.RandomSeed, cfg.Workers)
		if err != nil {
			return 0, err
		}
		minIndex := math.Inf(1)
		for _, v := range indices {
			if v < minIndex {
				minIndex = v
			}
		}
		log.Info().Int("k", k).Float64("min_jaccard", minIndex).Msg("cluster stability evaluated")

		if minIndex <= cfg.DiscardThreshold {
			log.Info().Int("k", k).Msg("clustering unstable, no score computed")
			continue
		}

		labels := km.Fit(dist, n)
		var score float64
		switch kind {
		case ModelClassifier:
			score, err = BalancedAveragePurity(y, labels)
			if err != nil {
				return 0, err
			}
		case ModelRegressor:
			score = TotalWithinClusterVariance(y, labels)
		}
		log.Info().Int("k", k).Float64("score", score).Msg("stable clustering scored")

		if score < scoreMin {
			scoreMin = score
			optimalK = k
		}
	}

	if optimalK == 1 {
		log.Warn().Int("max_k", cfg.MaxK).Msg("no stable clustering found, defaulting to a single cluster")
	}
	return optimalK, nil
}

// stabilityForWorkers routes to the parallel evaluator when more than one
// worker is configured. Both paths produce identical results.
func stabilityForWorkers(dist []float64, n int, clusterFn ClusterFunc, bootstraps int, seed int64, workers int) (map[int]float64, error) {
	if workers > 1 {
		return StabilityIndicesParallel(dist, n, clusterFn, bootstraps, seed, workers)
	}
	return StabilityIndices(dist, n, clusterFn, bootstraps, seed)
}
