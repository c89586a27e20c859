package main

import (
	"flag"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/forestguided/fgclust"
)

func main() {
	configPath := flag.String("config", "fgclust.yaml", "path to YAML configuration")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	cfg, err := loadConfig(*configPath)
	if err != nil {
		log.Fatal().Err(err).Msg("config load failed")
	}
	if level, err := zerolog.ParseLevel(cfg.LogLevel); err == nil && cfg.LogLevel != "" {
		zerolog.SetGlobalLevel(level)
	}

	ds, err := readDataset(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("dataset load failed")
	}
	model, err := readModel(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("model load failed")
	}

	result, err := fgclust.Interpret(model, ds, fgclust.Config{
		MaxK:              cfg.Clustering.MaxK,
		PValueThreshold:   cfg.Clustering.PValueThreshold,
		RandomSeed:        cfg.Clustering.RandomSeed,
		Bootstraps:        cfg.Clustering.Bootstraps,
		MaxIterClustering: cfg.Clustering.MaxIterClustering,
		DiscardThreshold:  cfg.Clustering.DiscardThreshold,
		NumberOfClusters:  cfg.Clustering.NumberOfClusters,
		RawCounts:         cfg.Clustering.RawCounts,
		Workers:           cfg.Clustering.Workers,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("interpretation failed")
	}

	if err := fgclust.WriteHeatmap(result, ds, cfg.Output); err != nil {
		log.Fatal().Err(err).Msg("heatmap rendering failed")
	}

	log.Info().
		Int("k", result.K).
		Int("significant_features", len(result.Features)).
		Str("output", cfg.Output).
		Msg("forest-guided clustering complete")
}

func readDataset(cfg *ConfigFile) (*fgclust.Dataset, error) {
	f, err := os.Open(cfg.Dataset.Path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return fgclust.ReadCSV(f, cfg.Dataset.Target)
}

func readModel(cfg *ConfigFile) (*fgclust.LeafMatrixModel, error) {
	f, err := os.Open(cfg.Model.LeafMatrix)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return fgclust.ReadLeafMatrixCSV(f, fgclust.ModelKind(cfg.Model.Kind))
}
