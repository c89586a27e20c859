package fgclust

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

// OneWayANOVA performs a one-way analysis of variance across the given
// groups and returns the F statistic and its p-value under the F
// distribution with (k-1, N-k) degrees of freedom.
//
// At least two non-empty groups and N-k > 0 residual degrees of freedom are
// required. When the within-group variance is zero, F is +Inf and p is 0 if
// the group means differ, otherwise F is 0 and p is 1.
func OneWayANOVA(groups [][]float64) (f, p float64, err error) {
	k := len(groups)
	if k < 2 {
		return 0, 0, fmt.Errorf("fgclust: ANOVA needs at least 2 groups, got %d", k)
	}

	var total int
	var grandSum float64
	for i, g := range groups {
		if len(g) == 0 {
			return 0, 0, fmt.Errorf("fgclust: ANOVA group %d is empty", i)
		}
		total += len(g)
		for _, v := range g {
			grandSum += v
		}
	}
	if total-k < 1 {
		return 0, 0, fmt.Errorf("fgclust: ANOVA needs N-k > 0 residual degrees of freedom (N=%d, k=%d)", total, k)
	}
	grandMean := grandSum / float64(total)

	var ssBetween, ssWithin float64
	for _, g := range groups {
		mean := stat.Mean(g, nil)
		d := mean - grandMean
		ssBetween += float64(len(g)) * d * d
		for _, v := range g {
			ssWithin += (v - mean) * (v - mean)
		}
	}

	if ssWithin == 0 {
		if ssBetween == 0 {
			return 0, 1, nil
		}
		return math.Inf(1), 0, nil
	}

	f = (ssBetween / float64(k-1)) / (ssWithin / float64(total-k))
	dist := distuv.F{D1: float64(k - 1), D2: float64(total - k)}
	return f, dist.Survival(f), nil
}
