// Package normalize turns parsed corpus lines into the filtered Token table
// every downstream analysis consumes.
package normalize

import (
	"time"

	"github.com/gertd/go-pluralize"

	"github.com/Weemaan/Text-Mining-Belval/pkg/textmine/corpus"
	"github.com/Weemaan/Text-Mining-Belval/pkg/textmine/stoplist"
)

// Token is one surviving word occurrence after filtering and normalization.
type Token struct {
	Title      string
	LineNumber int
	Date       time.Time
	Year       int
	Word       string
}

// Options configures a Normalizer. Corpus-specific tuning (exclusions,
// corrections, year merges) lives here as data, not as code.
type Options struct {
	// Exclusions are corpus-specific noise terms (place names, encoding
	// artifacts) dropped before stop-word filtering.
	Exclusions []string
	// ExtraStopwords extend the embedded English list.
	ExtraStopwords []string
	// Corrections are post-singularization substitutions discovered by
	// manual inspection ("furnaces" -> "furnace").
	Corrections map[string]string
	// Artifacts are additional noise words dropped after correction.
	Artifacts []string
	// YearMerges folds sparse year buckets into neighbors (2014 -> 2015).
	YearMerges map[int]int
}

// Normalizer applies the tokenize/filter/singularize/correct/derive steps in
// a fixed order. Output order follows source order; nothing is re-sorted.
type Normalizer struct {
	tok         *Tokenizer
	stops       *stoplist.Set
	exclusions  *stoplist.Set
	artifacts   *stoplist.Set
	corrections map[string]string
	yearMerges  map[int]int
	sing        *pluralize.Client
}

// New creates a Normalizer from the given options.
func New(opts Options) *Normalizer {
	return &Normalizer{
		tok:         NewTokenizer(),
		stops:       stoplist.NewSet(opts.ExtraStopwords),
		exclusions:  stoplist.NewEmptySet(opts.Exclusions),
		artifacts:   stoplist.NewEmptySet(opts.Artifacts),
		corrections: opts.Corrections,
		yearMerges:  opts.YearMerges,
		sing:        pluralize.NewClient(),
	}
}

// Run normalizes a sequence of corpus lines into tokens.
func (n *Normalizer) Run(lines []corpus.Line) []Token {
	var out []Token
	for _, ln := range lines {
		year := n.deriveYear(ln.Date)
		for _, raw := range n.tok.Split(ln.Text) {
			word, ok := n.normalizeWord(raw)
			if !ok {
				continue
			}
			out = append(out, Token{
				Title:      ln.Title,
				LineNumber: ln.LineNumber,
				Date:       ln.Date,
				Year:       year,
				Word:       word,
			})
		}
	}
	return out
}

// normalizeWord runs one token through the filter chain. The surviving word
// is itself a fixed point of the chain: exclusion and stop-word checks are
// re-applied to the singularized/corrected form, so filtering is idempotent.
func (n *Normalizer) normalizeWord(word string) (string, bool) {
	if n.exclusions.IsStop(word) || n.stops.IsStop(word) {
		return "", false
	}

	word = n.sing.Singular(word)
	if rep, ok := n.corrections[word]; ok {
		word = rep
	}

	if word == "" ||
		n.exclusions.IsStop(word) ||
		n.stops.IsStop(word) ||
		n.artifacts.IsStop(word) {
		return "", false
	}
	return word, true
}

func (n *Normalizer) deriveYear(date time.Time) int {
	year := date.Year()
	if to, ok := n.yearMerges[year]; ok {
		return to
	}
	return year
}
