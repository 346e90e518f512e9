package normalize

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Tokenizer splits raw text into lowercase word tokens. Filtering against
// stop-word and exclusion sets happens in the Normalizer, not here, so the
// split step stays reusable on its own.
type Tokenizer struct{}

// NewTokenizer creates a tokenizer.
func NewTokenizer() *Tokenizer {
	return &Tokenizer{}
}

// Split breaks text on word boundaries and lowercases each token.
// Hyphenated compounds are kept as single tokens ("blast-furnace").
// Single-rune and purely numeric tokens are dropped.
func (t *Tokenizer) Split(text string) []string {
	var tokens []string
	var current strings.Builder

	flush := func() {
		if current.Len() == 0 {
			return
		}
		if word := cleanToken(current.String()); word != "" {
			tokens = append(tokens, word)
		}
		current.Reset()
	}

	for _, r := range text {
		if unicode.IsLetter(r) || unicode.IsNumber(r) || r == '-' || r == '\'' {
			current.WriteRune(unicode.ToLower(r))
		} else {
			flush()
		}
	}
	flush()

	return tokens
}

// cleanToken strips leading/trailing hyphens and apostrophes, drops the
// possessive suffix, and rejects short or purely numeric tokens.
func cleanToken(token string) string {
	token = strings.Trim(token, "-'")
	token = strings.TrimSuffix(token, "'s")

	for strings.Contains(token, "--") {
		token = strings.ReplaceAll(token, "--", "-")
	}

	if utf8.RuneCountInString(token) <= 1 || isNumericOnly(token) {
		return ""
	}
	return token
}

// isNumericOnly returns true if the token contains only digits and hyphens.
func isNumericOnly(s string) bool {
	for _, r := range s {
		if !unicode.IsDigit(r) && r != '-' {
			return false
		}
	}
	return true
}
