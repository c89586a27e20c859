package fgclust

import (
	"math"
	"testing"
)

func TestScaleMinMax(t *testing.T) {
	X := [][]float64{
		{1, 10},
		{2, 20},
		{3, 30},
	}

	scaled := ScaleMinMax(X)

	want := [][]float64{
		{0, 0},
		{0.5, 0.5},
		{1, 1},
	}
	for i := range want {
		for j := range want[i] {
			assertFloat(t, "minmax", scaled[i][j], want[i][j], 1e-12)
		}
	}
}

func TestScaleMinMax_ConstantColumn(t *testing.T) {
	X := [][]float64{{7, 1}, {7, 2}}

	scaled := ScaleMinMax(X)

	assertFloat(t, "constant[0]", scaled[0][0], 0, 0)
	assertFloat(t, "constant[1]", scaled[1][0], 0, 0)
}

func TestScaleStandard(t *testing.T) {
	X := [][]float64{{1}, {2}, {3}, {4}}

	scaled := ScaleStandard(X)

	// Column mean must be 0 and population standard deviation 1.
	var mean float64
	for i := range scaled {
		mean += scaled[i][0]
	}
	mean /= float64(len(scaled))
	assertFloat(t, "mean", mean, 0, 1e-12)

	var variance float64
	for i := range scaled {
		variance += scaled[i][0] * scaled[i][0]
	}
	variance /= float64(len(scaled))
	assertFloat(t, "std", math.Sqrt(variance), 1, 1e-12)
}

func TestScaleStandard_ConstantColumn(t *testing.T) {
	X := [][]float64{{5}, {5}, {5}}

	scaled := ScaleStandard(X)

	for i := range scaled {
		assertFloat(t, "constant", scaled[i][0], 0, 0)
	}
}
