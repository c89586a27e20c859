package fgclust

import (
	"fmt"

	"gonum.org/v1/gonum/stat"
)

// BalancedAveragePurity scores a clustering of a binary 0/1 target. Within
// each cluster the minority class count is up-scaled by
// majority_total/minority_total so class imbalance does not trivially reward
// majority-label clusters; the cluster's purity p·(1−p) is then normalized by
// 0.25 (its maximum) and the normalized values are averaged across clusters.
//
// Lower is better under this package's selection convention: a smaller value
// means more skewed (purer) clusters, despite the metric's name. OptimizeK
// minimizes it, matching the reference behavior.
func BalancedAveragePurity(y []float64, labels []int) (float64, error) {
	var n0, n1 int
	for _, v := range y {
		switch v {
		case 0:
			n0++
		case 1:
			n1++
		default:
			return 0, fmt.Errorf("fgclust: balanced purity needs a binary 0/1 target, got value %v", v)
		}
	}
	if n0 == 0 || n1 == 0 {
		return 0, fmt.Errorf("fgclust: balanced purity needs both classes present (n0=%d, n1=%d)", n0, n1)
	}

	smallLabel := 0.0
	upScale := float64(n1) / float64(n0)
	if n0 > n1 {
		smallLabel = 1.0
		upScale = float64(n0) / float64(n1)
	}

	clusters := uniqueLabels(labels)
	purities := make([]float64, 0, len(clusters))
	for _, c := range clusters {
		var small, large float64
		for i, label := range labels {
			if label != c {
				continue
			}
			if y[i] == smallLabel {
				small++
			} else {
				large++
			}
		}
		small *= upScale
		total := small + large
		purity := (small / total) * (large / total)
		purities = append(purities, purity/0.25)
	}
	return stat.Mean(purities, nil), nil
}

// TotalWithinClusterVariance scores a clustering of a continuous target: the
// sum over clusters of the population variance of the target values in the
// cluster times the cluster size. Smaller means tighter, more homogeneous
// clusters; OptimizeK minimizes it directly.
func TotalWithinClusterVariance(y []float64, labels []int) float64 {
	var score float64
	for _, c := range uniqueLabels(labels) {
		var values []float64
		for i, label := range labels {
			if label == c {
				values = append(values, y[i])
			}
		}
		mean := stat.Mean(values, nil)
		variance := stat.MomentAbout(2, values, mean, nil)
		score += variance * float64(len(values))
	}
	return score
}
