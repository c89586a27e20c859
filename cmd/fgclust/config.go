package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ConfigFile is the YAML configuration for the fgclust CLI.
type ConfigFile struct {
	Dataset struct {
		Path   string `yaml:"path"`
		Target string `yaml:"target"`
	} `yaml:"dataset"`

	Model struct {
		LeafMatrix string `yaml:"leafMatrix"`
		Kind       string `yaml:"kind"`
	} `yaml:"model"`

	Output string `yaml:"output"`

	Clustering struct {
		MaxK              int     `yaml:"maxK"`
		PValueThreshold   float64 `yaml:"pValueThreshold"`
		RandomSeed        int64   `yaml:"randomSeed"`
		Bootstraps        int     `yaml:"bootstraps"`
		MaxIterClustering int     `yaml:"maxIterClustering"`
		DiscardThreshold  float64 `yaml:"discardThreshold"`
		NumberOfClusters  int     `yaml:"numberOfClusters"`
		RawCounts         bool    `yaml:"rawCounts"`
		Workers           int     `yaml:"workers"`
	} `yaml:"clustering"`

	LogLevel string `yaml:"logLevel"`
}

// loadConfig reads and validates the YAML config at path.
func loadConfig(path string) (*ConfigFile, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	var cfg ConfigFile
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if cfg.Dataset.Path == "" {
		return nil, fmt.Errorf("config: dataset.path is required")
	}
	if cfg.Dataset.Target == "" {
		return nil, fmt.Errorf("config: dataset.target is required")
	}
	if cfg.Model.LeafMatrix == "" {
		return nil, fmt.Errorf("config: model.leafMatrix is required")
	}
	if cfg.Model.Kind == "" {
		return nil, fmt.Errorf("config: model.kind is required")
	}
	if cfg.Output == "" {
		cfg.Output = "fgclust.png"
	}
	return &cfg, nil
}
