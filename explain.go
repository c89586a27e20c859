package fgclust

import (
	"sort"

	"github.com/rs/zerolog/log"
)

// Explain produces the per-feature explanation of a k-cluster solution. The
// final labeling is refit with k-medoids on the proximity matrix; each
// feature then gets a one-way ANOVA p-value across the clusters, and the
// features below the significance threshold are retained, sorted by
// ascending p-value.
func Explain(prox []float64, ds *Dataset, k int, cfg Config) (*Result, error) {
	applyDefaults(&cfg)
	if err := validateConfig(&cfg); err != nil {
		return nil, err
	}
	n := ds.NumSamples()
	if err := validateSquare(prox, n); err != nil {
		return nil, err
	}

	km := KMedoids{K: k, MaxIter: cfg.MaxIterClustering}
	labels := km.Fit(prox, n)
	clusters := uniqueLabels(labels)

	pValues := make(map[string]float64, len(ds.FeatureNames()))
	for _, name := range ds.FeatureNames() {
		column, err := ds.FeatureColumn(name)
		if err != nil {
			return nil, err
		}

		groups := make([][]float64, 0, len(clusters))
		for _, c := range clusters {
			var group []float64
			for i, label := range labels {
				if label == c {
					group = append(group, column[i])
				}
			}
			groups = append(groups, group)
		}

		p := 1.0
		if len(clusters) > 1 {
			_, p, err = OneWayANOVA(groups)
			if err != nil {
				return nil, err
			}
		}
		pValues[name] = p
	}

	var retained []string
	for name, p := range pValues {
		if p < cfg.PValueThreshold {
			retained = append(retained, name)
		}
	}
	sort.Slice(retained, func(i, j int) bool {
		if pValues[retained[i]] != pValues[retained[j]] {
			return pValues[retained[i]] < pValues[retained[j]]
		}
		return retained[i] < retained[j]
	})

	log.Info().Int("k", k).Int("significant_features", len(retained)).Msg("explanation computed")

	return &Result{K: k, Labels: labels, PValues: pValues, Features: retained}, nil
}
