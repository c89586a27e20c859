// Package fgclust implements forest-guided clustering: interpreting a trained
// random forest by clustering samples in the forest's leaf-co-occurrence
// similarity space and explaining the resulting clusters per feature.
//
// The pipeline derives a proximity matrix from how often pairs of samples land
// in the same leaf across the forest's trees, converts it to a distance matrix,
// and searches over candidate cluster counts with k-medoids (PAM). A candidate
// k is only eligible if every one of its clusters survives bootstrap
// resampling (Jaccard-index stability); among the stable candidates, the one
// with the best task-specific score wins (balanced purity for classification,
// within-cluster variance for regression).
//
// Basic usage:
//
//	cfg := fgclust.DefaultConfig()
//	result, err := fgclust.Interpret(model, dataset, cfg)
//	// result.K is the selected number of clusters
//	// result.Labels[i] is the cluster ID for sample i
//	// result.PValues[feature] is the ANOVA p-value for that feature across clusters
//
// The individual stages (ComputeProximity, StabilityIndices, OptimizeK,
// KMedoids) are exported so the pipeline can be driven piecewise, and the
// clustering backend is an injected ClusterFunc so alternative back-ends can
// be substituted without touching the stability evaluation.
package fgclust
