package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/Weemaan/Text-Mining-Belval/pkg/textmine/corpus"
)

func TestLoaderDefaults(t *testing.T) {
	comps, err := Loader{}.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if comps.Model.K != 6 || comps.Model.Seed != 42 {
		t.Errorf("Model: %+v", comps.Model)
	}
	if err := comps.Labels.Validate(comps.Model.K); err != nil {
		t.Errorf("Labels: %v", err)
	}

	// The built normalizer carries the Belval exclusions and year merge.
	date2014 := time.Date(2014, time.October, 1, 0, 0, 0, 0, time.UTC)
	tokens := comps.Normalizer.Run([]corpus.Line{
		{Title: "A", LineNumber: 1, Text: "Belval furnaces preserved", Date: date2014},
	})
	for _, tok := range tokens {
		if tok.Word == "belval" {
			t.Error("Default exclusions not wired into normalizer")
		}
		if tok.Year != 2015 {
			t.Errorf("Default year merge not applied: %d", tok.Year)
		}
	}
}

func TestLoaderFromFile(t *testing.T) {
	content := `
corpus_path: Data/test.txt
extra_stopwords: [zenith]
topics:
  k: 1
  seed: 1
  labels:
    1: Everything
`
	path := filepath.Join(t.TempDir(), "cfg.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	comps, err := Loader{Path: path}.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if comps.Config.CorpusPath != "Data/test.txt" {
		t.Errorf("CorpusPath: %q", comps.Config.CorpusPath)
	}

	tokens := comps.Normalizer.Run([]corpus.Line{
		{Title: "A", LineNumber: 1, Text: "zenith reached", Date: time.Now()},
	})
	for _, tok := range tokens {
		if tok.Word == "zenith" {
			t.Error("extra_stopwords not wired into normalizer")
		}
	}
}

func TestLoaderInvalidConfig(t *testing.T) {
	content := `
corpus_path: Data/test.txt
topics:
  k: 2
  labels:
    1: OnlyOne
`
	path := filepath.Join(t.TempDir(), "cfg.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := (Loader{Path: path}).Load(); err == nil {
		t.Error("Expected validation error for incomplete labels")
	}
}
