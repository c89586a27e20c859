package fgclust

import "math/rand"

// BootstrapMatrix draws a bootstrap resample of a flat n×n matrix: n row
// indices are drawn uniformly with replacement, and both rows and columns are
// taken at those indices so the result stays symmetric whenever the input is.
//
// The returned mapping translates resampled row positions back to the
// original sample indices they were drawn from. It is many-to-one: indices
// may repeat and some originals may be absent, which downstream consumers
// must tolerate.
func BootstrapMatrix(m []float64, n int, rng *rand.Rand) ([]float64, []int) {
	indices := make([]int, n)
	for i := range indices {
		indices[i] = rng.Intn(n)
	}

	out := make([]float64, n*n)
	for p := 0; p < n; p++ {
		row := m[indices[p]*n:]
		for q := 0; q < n; q++ {
			out[p*n+q] = row[indices[q]]
		}
	}
	return out, indices
}
