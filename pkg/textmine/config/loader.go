package config

import (
	"fmt"

	"github.com/Weemaan/Text-Mining-Belval/pkg/textmine/normalize"
	"github.com/Weemaan/Text-Mining-Belval/pkg/textmine/topics"
)

// Loader resolves a config source and constructs ready-to-use components.
type Loader struct {
	// Path is an optional YAML file; when empty the built-in Belval
	// defaults are used.
	Path string
}

// Components holds everything a run needs, already wired.
type Components struct {
	Config     Config
	Normalizer *normalize.Normalizer
	Model      topics.Model
	Labels     topics.Labels
}

// Load reads the configuration and builds the pipeline components.
func (l Loader) Load() (*Components, error) {
	cfg := Default()
	if l.Path != "" {
		loaded, err := Load(l.Path)
		if err != nil {
			return nil, fmt.Errorf("load config: %w", err)
		}
		cfg = loaded
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	merges := make(map[int]int, len(cfg.YearMerges))
	for _, m := range cfg.YearMerges {
		merges[m.From] = m.To
	}

	return &Components{
		Config: cfg,
		Normalizer: normalize.New(normalize.Options{
			Exclusions:     cfg.Exclusions,
			ExtraStopwords: cfg.ExtraStopwords,
			Corrections:    cfg.Corrections,
			Artifacts:      cfg.Artifacts,
			YearMerges:     merges,
		}),
		Model: topics.Model{
			K:          cfg.Topics.K,
			Seed:       cfg.Topics.Seed,
			Iterations: cfg.Topics.Iterations,
		},
		Labels: topics.Labels(cfg.Topics.Labels),
	}, nil
}
