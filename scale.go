package fgclust

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// ScaleMinMax rescales each column of X into [0, 1]. Constant columns map
// to 0.
func ScaleMinMax(X [][]float64) [][]float64 {
	return scaleColumns(X, minMaxVector)
}

// ScaleStandard centers each column of X to zero mean and unit population
// standard deviation. Constant columns map to 0.
func ScaleStandard(X [][]float64) [][]float64 {
	return scaleColumns(X, standardVector)
}

func scaleColumns(X [][]float64, scale func([]float64) []float64) [][]float64 {
	if len(X) == 0 {
		return nil
	}
	n, f := len(X), len(X[0])
	out := make([][]float64, n)
	for i := range out {
		out[i] = make([]float64, f)
	}
	column := make([]float64, n)
	for j := 0; j < f; j++ {
		for i := 0; i < n; i++ {
			column[i] = X[i][j]
		}
		for i, v := range scale(column) {
			out[i][j] = v
		}
	}
	return out
}

func minMaxVector(v []float64) []float64 {
	lo, hi := floats.Min(v), floats.Max(v)
	out := make([]float64, len(v))
	if hi == lo {
		return out
	}
	for i, x := range v {
		out[i] = (x - lo) / (hi - lo)
	}
	return out
}

func standardVector(v []float64) []float64 {
	mean := stat.Mean(v, nil)
	std := math.Sqrt(stat.MomentAbout(2, v, mean, nil))
	out := make([]float64, len(v))
	if std == 0 {
		return out
	}
	for i, x := range v {
		out[i] = (x - mean) / std
	}
	return out
}
