package fgclust

import "fmt"

// DistanceFromProximity converts a normalized proximity matrix into a
// distance matrix: distance = 1 - proximity, elementwise. Symmetry is
// preserved and the diagonal becomes 0.
func DistanceFromProximity(prox []float64) []float64 {
	dist := make([]float64, len(prox))
	for i, p := range prox {
		dist[i] = 1 - p
	}
	return dist
}

// validateSquare checks that dist is a flat n×n matrix. A mismatch is a
// caller contract violation and fails before any computation.
func validateSquare(dist []float64, n int) error {
	if n <= 0 {
		return fmt.Errorf("fgclust: matrix size must be positive, got %d", n)
	}
	if len(dist) != n*n {
		return fmt.Errorf("fgclust: matrix length %d does not match n*n = %d (n=%d)", len(dist), n*n, n)
	}
	return nil
}
