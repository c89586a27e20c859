package fgclust

import (
	"strings"
	"testing"
)

// twoGroupDataset builds a labeled dataset with two groups of the given
// size: a "signal" feature separated by group, a "flat" constant feature,
// and the group ID as the binary target.
func twoGroupDataset(t *testing.T, groupSize int) (*Dataset, []int) {
	t.Helper()
	n := 2 * groupSize
	columns := []string{"signal", "flat", "target"}
	rows := make([][]float64, n)
	groups := make([]int, n)
	for i := 0; i < n; i++ {
		group := i / groupSize
		groups[i] = group
		rows[i] = []float64{
			float64(group)*5 + float64(i%groupSize)*0.1,
			3.0,
			float64(group),
		}
	}
	ds, err := NewDataset(columns, rows, "target")
	if err != nil {
		t.Fatalf("building dataset: %v", err)
	}
	return ds, groups
}

func TestInterpret_EndToEnd(t *testing.T) {
	ds, groups := twoGroupDataset(t, 12)
	forest := groupForest(groups, 10, ModelClassifier)

	cfg := DefaultConfig()
	cfg.MaxK = 5
	cfg.Bootstraps = 15
	cfg.DiscardThreshold = 0.2
	cfg.Workers = 1

	result, err := Interpret(forest, ds, cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.K != 2 {
		t.Fatalf("selected K = %d, want 2", result.K)
	}

	// The final labeling must reproduce the two groups, whatever IDs the
	// refit happens to assign.
	for i := 1; i < 12; i++ {
		if result.Labels[i] != result.Labels[0] {
			t.Errorf("sample %d split from its group: labels = %v", i, result.Labels)
		}
		if result.Labels[12+i] != result.Labels[12] {
			t.Errorf("sample %d split from its group: labels = %v", 12+i, result.Labels)
		}
	}
	if result.Labels[0] == result.Labels[12] {
		t.Error("the two groups were merged")
	}

	// The separated feature is significant; the constant one is not.
	if len(result.Features) != 1 || result.Features[0] != "signal" {
		t.Errorf("retained features = %v, want [signal]", result.Features)
	}
	if p := result.PValues["signal"]; p >= 0.05 {
		t.Errorf("signal p-value = %v, want < 0.05", p)
	}
	if p := result.PValues["flat"]; p != 1 {
		t.Errorf("flat p-value = %v, want 1", p)
	}
}

func TestInterpret_ClusterCountOverride(t *testing.T) {
	ds, groups := twoGroupDataset(t, 6)
	forest := groupForest(groups, 8, ModelClassifier)

	cfg := DefaultConfig()
	cfg.NumberOfClusters = 3
	cfg.Workers = 1

	// The override bypasses the search entirely; no bootstrap rounds run.
	result, err := Interpret(forest, ds, cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.K != 3 {
		t.Fatalf("K = %d, want the override 3", result.K)
	}
}

func TestInterpret_RejectsUnrecognizedModelKind(t *testing.T) {
	ds, groups := twoGroupDataset(t, 4)
	forest := groupForest(groups, 4, ModelKind("svm"))

	_, err := Interpret(forest, ds, DefaultConfig())
	if err == nil {
		t.Fatal("expected error for unrecognized model kind")
	}
	if !strings.Contains(err.Error(), "svm") {
		t.Errorf("error %q does not name the offending kind", err)
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.MaxK != 6 {
		t.Errorf("MaxK = %d, want 6", cfg.MaxK)
	}
	if cfg.PValueThreshold != 0.05 {
		t.Errorf("PValueThreshold = %v, want 0.05", cfg.PValueThreshold)
	}
	if cfg.RandomSeed != 42 {
		t.Errorf("RandomSeed = %d, want 42", cfg.RandomSeed)
	}
	if cfg.Bootstraps != 300 {
		t.Errorf("Bootstraps = %d, want 300", cfg.Bootstraps)
	}
	if cfg.MaxIterClustering != 300 {
		t.Errorf("MaxIterClustering = %d, want 300", cfg.MaxIterClustering)
	}
	if cfg.DiscardThreshold != 0.6 {
		t.Errorf("DiscardThreshold = %v, want 0.6", cfg.DiscardThreshold)
	}
}

func TestApplyDefaults_FillsZeroFields(t *testing.T) {
	var cfg Config
	applyDefaults(&cfg)

	if cfg.MaxK != 6 || cfg.Bootstraps != 300 || cfg.RandomSeed != 42 {
		t.Errorf("zero config not defaulted: %+v", cfg)
	}
	if cfg.Workers < 1 {
		t.Errorf("Workers = %d, want >= 1", cfg.Workers)
	}
}

func TestValidateConfig(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"MaxK too small", func(c *Config) { c.MaxK = 1 }},
		{"PValueThreshold out of range", func(c *Config) { c.PValueThreshold = 1.5 }},
		{"negative Bootstraps", func(c *Config) { c.Bootstraps = -1 }},
		{"DiscardThreshold above one", func(c *Config) { c.DiscardThreshold = 1.2 }},
		{"negative NumberOfClusters", func(c *Config) { c.NumberOfClusters = -2 }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tc.mutate(&cfg)
			if err := validateConfig(&cfg); err == nil {
				t.Errorf("expected validation error")
			}
		})
	}

	cfg := DefaultConfig()
	if err := validateConfig(&cfg); err != nil {
		t.Errorf("default config rejected: %v", err)
	}
}
