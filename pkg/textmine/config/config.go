// Package config holds the corpus-specific tuning tables: exclusion lists,
// manual corrections, year merges, and the topic label mapping. Everything
// hand-picked lives here as data so it can be swapped per corpus.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/Weemaan/Text-Mining-Belval/pkg/textmine/internalerr"
)

// Config is the full analysis configuration.
type Config struct {
	// CorpusPath is the structured corpus file, by convention under Data/.
	CorpusPath string `yaml:"corpus_path"`
	// Exclusions are corpus-specific noise terms dropped before the
	// stop-word filter (local place names, encoding artifacts).
	Exclusions []string `yaml:"exclusions"`
	// ExtraStopwords extend the embedded English stop-word list.
	ExtraStopwords []string `yaml:"extra_stopwords"`
	// Corrections fix words the singularizer misses.
	Corrections map[string]string `yaml:"corrections"`
	// Artifacts are short noise strings found by manual inspection.
	Artifacts []string `yaml:"artifacts"`
	// YearMerges fold under-populated year buckets into a neighbor.
	YearMerges []YearMerge `yaml:"year_merges"`
	Topics     Topics      `yaml:"topics"`
}

// YearMerge is one declarative year remap rule.
type YearMerge struct {
	From int `yaml:"from"`
	To   int `yaml:"to"`
}

// Topics configures the topic model and its label table.
type Topics struct {
	K          int            `yaml:"k"`
	Seed       uint64         `yaml:"seed"`
	Iterations int            `yaml:"iterations"`
	Labels     map[int]string `yaml:"labels"`
}

// Default returns the tuning for the Belval news corpus: 66 Google News
// articles about the Esch-Belval campus, 2014-2021.
func Default() Config {
	return Config{
		CorpusPath: "Data/google_news_lines.txt",
		Exclusions: []string{
			"belval", "esch", "esch-sur-alzette", "alzette", "luxembourg",
			"â", // encoding artifact from the scraped pages
		},
		Corrections: map[string]string{
			"furnaces": "furnace",
		},
		Artifacts:  []string{"ow", "de", "la"},
		YearMerges: []YearMerge{{From: 2014, To: 2015}},
		Topics: Topics{
			K:    6,
			Seed: 42,
			Labels: map[int]string{
				1: "University & students",
				2: "Construction & development",
				3: "Blast furnace heritage",
				4: "Culture & events",
				5: "Business & research",
				6: "Transport & housing",
			},
		},
	}
}

// Load reads a YAML config file.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks the parts that would otherwise fail deep inside a run.
func (c Config) Validate() error {
	if c.CorpusPath == "" {
		return fmt.Errorf("%w: corpus_path is empty", internalerr.ErrInvalidConfig)
	}
	if c.Topics.K <= 0 {
		return fmt.Errorf("%w: topics.k must be positive, got %d", internalerr.ErrInvalidConfig, c.Topics.K)
	}
	for topic := 1; topic <= c.Topics.K; topic++ {
		if c.Topics.Labels[topic] == "" {
			return fmt.Errorf("%w: no label for topic %d", internalerr.ErrInvalidConfig, topic)
		}
	}
	for _, m := range c.YearMerges {
		if m.From == m.To {
			return fmt.Errorf("%w: year merge %d -> %d is a no-op", internalerr.ErrInvalidConfig, m.From, m.To)
		}
	}
	return nil
}
