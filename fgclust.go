package fgclust

import (
	"fmt"
	"runtime"

	"github.com/rs/zerolog/log"
)

// Config controls the forest-guided clustering pipeline.
// Start with [DefaultConfig] and override the fields you need.
type Config struct {
	// MaxK is the exclusive upper bound of the cluster-count search: k runs
	// over [2, MaxK). Default: 6.
	MaxK int

	// PValueThreshold retains a feature in the explanation only if its ANOVA
	// p-value across clusters is below this value. Default: 0.05.
	PValueThreshold float64

	// RandomSeed seeds the bootstrap resampling. Runs with the same seed,
	// data, and model produce identical results. 0 means the default seed 42.
	RandomSeed int64

	// Bootstraps is the number of resampling rounds per candidate k.
	// Default: 300.
	Bootstraps int

	// MaxIterClustering bounds the k-medoids swap phase. Default: 300.
	MaxIterClustering int

	// DiscardThreshold rejects a candidate k when the minimum per-cluster
	// Jaccard stability index is at or below it. Default: 0.6.
	DiscardThreshold float64

	// NumberOfClusters, when nonzero, bypasses the cluster-count search
	// entirely and uses this k. Default: 0 (search).
	NumberOfClusters int

	// RawCounts disables proximity normalization, leaving raw shared-leaf
	// counts. Default: false (normalize by the number of trees).
	RawCounts bool

	// Workers controls the number of goroutines for the proximity matrix and
	// the bootstrap loop. Results do not depend on it. 0 means
	// runtime.NumCPU().
	Workers int
}

// DefaultConfig returns a Config with the standard defaults.
func DefaultConfig() Config {
	return Config{
		MaxK:              6,
		PValueThreshold:   0.05,
		RandomSeed:        42,
		Bootstraps:        300,
		MaxIterClustering: 300,
		DiscardThreshold:  0.6,
	}
}

// applyDefaults fills in zero-valued config fields with their defaults.
func applyDefaults(cfg *Config) {
	if cfg.MaxK == 0 {
		cfg.MaxK = 6
	}
	if cfg.PValueThreshold == 0 {
		cfg.PValueThreshold = 0.05
	}
	if cfg.RandomSeed == 0 {
		cfg.RandomSeed = 42
	}
	if cfg.Bootstraps == 0 {
		cfg.Bootstraps = 300
	}
	if cfg.MaxIterClustering == 0 {
		cfg.MaxIterClustering = 300
	}
	if cfg.DiscardThreshold == 0 {
		cfg.DiscardThreshold = 0.6
	}
	if cfg.Workers == 0 {
		cfg.Workers = runtime.NumCPU()
	}
}

// validateConfig checks that cfg fields are valid and returns a descriptive
// error if not.
func validateConfig(cfg *Config) error {
	if cfg.MaxK < 2 {
		return fmt.Errorf("fgclust: MaxK must be >= 2, got %d", cfg.MaxK)
	}
	if cfg.PValueThreshold <= 0 || cfg.PValueThreshold > 1 {
		return fmt.Errorf("fgclust: PValueThreshold must be in (0, 1], got %f", cfg.PValueThreshold)
	}
	if cfg.Bootstraps < 1 {
		return fmt.Errorf("fgclust: Bootstraps must be >= 1, got %d", cfg.Bootstraps)
	}
	if cfg.MaxIterClustering < 1 {
		return fmt.Errorf("fgclust: MaxIterClustering must be >= 1, got %d", cfg.MaxIterClustering)
	}
	if cfg.DiscardThreshold < 0 || cfg.DiscardThreshold > 1 {
		return fmt.Errorf("fgclust: DiscardThreshold must be in [0, 1], got %f", cfg.DiscardThreshold)
	}
	if cfg.NumberOfClusters < 0 {
		return fmt.Errorf("fgclust: NumberOfClusters must be >= 0 (0 means search), got %d", cfg.NumberOfClusters)
	}
	return nil
}

// Result contains the output of forest-guided clustering.
type Result struct {
	// K is the selected number of clusters. 1 means no candidate was stable
	// and no cluster structure is claimed.
	K int

	// Labels assigns each sample to a cluster in 0..K-1, from the final
	// k-medoids fit on the proximity matrix.
	Labels []int

	// PValues maps every feature to its one-way ANOVA p-value across the
	// final clusters.
	PValues map[string]float64

	// Features lists the features with p-values below the significance
	// threshold, sorted by ascending p-value.
	Features []string
}

// Interpret runs the full pipeline on a fitted forest and a labeled dataset:
// proximity and distance matrices, cluster-count selection (unless
// overridden), final labeling, and per-feature significance.
//
// The distance matrix is computed exactly once per call and shared read-only
// by every candidate k and every bootstrap round.
func Interpret(model Model, ds *Dataset, cfg Config) (*Result, error) {
	applyDefaults(&cfg)
	if err := validateConfig(&cfg); err != nil {
		return nil, err
	}
	if err := validateModelKind(model.Kind()); err != nil {
		return nil, err
	}
	log.Info().Str("kind", string(model.Kind())).Int("trees", model.NumTrees()).Msg("interpreting random forest")

	X := ds.Features()
	y := ds.TargetValues()
	n := ds.NumSamples()

	prox, err := ComputeProximityParallel(model, X, !cfg.RawCounts, cfg.Workers)
	if err != nil {
		return nil, err
	}
	dist := DistanceFromProximity(prox)

	k := cfg.NumberOfClusters
	if k == 0 {
		k, err = OptimizeK(dist, n, y, model.Kind(), cfg)
		if err != nil {
			return nil, err
		}
	} else if k > n {
		return nil, fmt.Errorf("fgclust: NumberOfClusters = %d exceeds %d samples", k, n)
	}
	log.Info().Int("k", k).Msg("number of clusters selected")

	return Explain(prox, ds, k, cfg)
}
