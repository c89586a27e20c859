package fgclust

import (
	"fmt"
	"math"
	"math/rand"
	"sort"
)

// StabilityIndices measures how reliably each cluster of a labeling
// reappears under bootstrap resampling.
//
// The untouched distance matrix is clustered once to obtain the original
// clusters. Then, for each of bootstraps rounds, a resampled matrix is
// clustered with the same clusterFn, the bootstrap clusters are translated
// back to sets of original sample indices (duplicates drawn by the resample
// collapse via set semantics), and each original cluster is credited with the
// Jaccard index of its best-matching bootstrap cluster under a greedy
// one-to-one assignment. The result maps each original cluster ID to its
// mean matched Jaccard index across rounds, in [0, 1]: values near 1 mean
// the cluster survives resampling, values near 0 mean spurious structure.
//
// Round r draws from its own source seeded seed+r, so the seed-to-result
// mapping is fixed per round and independent of execution order.
func StabilityIndices(dist []float64, n int, clusterFn ClusterFunc, bootstraps int, seed int64) (map[int]float64, error) {
	if err := validateSquare(dist, n); err != nil {
		return nil, err
	}
	if bootstraps < 1 {
		return nil, fmt.Errorf("fgclust: bootstraps must be >= 1, got %d", bootstraps)
	}
	resample := func(round int) ([]float64, []int) {
		rng := rand.New(rand.NewSource(seed + int64(round)))
		return BootstrapMatrix(dist, n, rng)
	}
	return stabilityIndices(dist, n, clusterFn, bootstraps, resample), nil
}

// resampleFunc produces the resampled matrix and index mapping for one
// bootstrap round. Injected so tests can force identity resampling.
type resampleFunc func(round int) ([]float64, []int)

func stabilityIndices(dist []float64, n int, clusterFn ClusterFunc, bootstraps int, resample resampleFunc) map[int]float64 {
	labels := clusterFn(dist, n)
	clusters := uniqueLabels(labels)
	originalSets := labelSets(labels, nil)

	// Running per-cluster totals, scoped to this call.
	scores := make(map[int]float64, len(clusters))
	for _, c := range clusters {
		scores[c] = 0
	}

	for round := 0; round < bootstraps; round++ {
		resampled, mapping := resample(round)
		credit := bootstrapRound(resampled, n, clusterFn, clusters, originalSets, mapping)
		for i, c := range clusters {
			scores[c] += credit[i]
		}
	}

	for _, c := range clusters {
		scores[c] /= float64(bootstraps)
	}
	return scores
}

// bootstrapRound clusters one resampled matrix and returns the Jaccard
// credit earned by each original cluster (indexed per clusters) in that
// round.
func bootstrapRound(resampled []float64, n int, clusterFn ClusterFunc, clusters []int, originalSets map[int]map[int]bool, mapping []int) []float64 {
	bootstrapLabels := clusterFn(resampled, n)
	bootstrapSets := labelSets(bootstrapLabels, mapping)
	jaccard := jaccardMatrix(clusters, originalSets, bootstrapSets)
	return matchClusters(jaccard, len(clusters))
}

// labelSets translates a labeling into one set of sample indices per cluster
// ID. With a non-nil bootstrap mapping, resampled positions are translated
// to original sample indices first; an index drawn multiple times
// contributes once.
func labelSets(labels []int, mapping []int) map[int]map[int]bool {
	sets := make(map[int]map[int]bool)
	for i, label := range labels {
		idx := i
		if mapping != nil {
			idx = mapping[i]
		}
		set, ok := sets[label]
		if !ok {
			set = make(map[int]bool)
			sets[label] = set
		}
		set[idx] = true
	}
	return sets
}

// jaccardMatrix builds the k×k matrix of Jaccard indices between original
// clusters (rows) and bootstrap clusters (columns), both indexed by the
// original cluster IDs. A cluster ID with no members in the bootstrap
// labeling yields an all-zero column.
func jaccardMatrix(clusters []int, originalSets, bootstrapSets map[int]map[int]bool) []float64 {
	k := len(clusters)
	jaccard := make([]float64, k*k)
	for i, original := range clusters {
		for j, bootstrap := range clusters {
			jaccard[i*k+j] = jaccardIndex(originalSets[original], bootstrapSets[bootstrap])
		}
	}
	return jaccard
}

// jaccardIndex is |a ∩ b| / |a ∪ b|, with two empty sets defined as 0.
func jaccardIndex(a, b map[int]bool) float64 {
	intersection := 0
	for idx := range a {
		if b[idx] {
			intersection++
		}
	}
	union := len(a) + len(b) - intersection
	if union == 0 {
		return 0
	}
	return float64(intersection) / float64(union)
}

// matchClusters performs greedy one-to-one matching on a flat k×k Jaccard
// matrix: the globally maximal remaining entry pairs an original cluster
// (row) with a bootstrap cluster (column), then that row and column are
// removed from consideration, until every row is matched. Returns the
// credited Jaccard index per row.
//
// Ties go to the lowest row, then the lowest column. This is a greedy
// approximation of maximum-weight bipartite matching, not an optimal
// assignment.
func matchClusters(jaccard []float64, k int) []float64 {
	work := make([]float64, len(jaccard))
	copy(work, jaccard)

	credit := make([]float64, k)
	for round := 0; round < k; round++ {
		best := math.Inf(-1)
		bestRow, bestCol := -1, -1
		for i := 0; i < k; i++ {
			for j := 0; j < k; j++ {
				if work[i*k+j] > best {
					best, bestRow, bestCol = work[i*k+j], i, j
				}
			}
		}
		credit[bestRow] = best
		for j := 0; j < k; j++ {
			work[bestRow*k+j] = math.Inf(-1)
		}
		for i := 0; i < k; i++ {
			work[i*k+bestCol] = math.Inf(-1)
		}
	}
	return credit
}

// uniqueLabels returns the distinct labels in ascending order.
func uniqueLabels(labels []int) []int {
	seen := make(map[int]bool)
	var unique []int
	for _, label := range labels {
		if !seen[label] {
			seen[label] = true
			unique = append(unique, label)
		}
	}
	sort.Ints(unique)
	return unique
}
