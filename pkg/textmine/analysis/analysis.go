// Package analysis holds the read-only aggregations over the normalized
// token table: word frequency, article volume per year, and TF-IDF.
// Each consumer is independent; none feeds back into the pipeline.
package analysis

import (
	"fmt"
	"math"
	"sort"

	"github.com/Weemaan/Text-Mining-Belval/pkg/textmine/internalerr"
	"github.com/Weemaan/Text-Mining-Belval/pkg/textmine/normalize"
)

// WordCount is one row of the frequency aggregation.
type WordCount struct {
	Word string
	N    int
}

// WordCounts groups tokens by word and sorts descending by count
// (ties break alphabetically for stable output).
func WordCounts(tokens []normalize.Token) ([]WordCount, error) {
	if len(tokens) == 0 {
		return nil, fmt.Errorf("word counts: %w", internalerr.ErrEmptyAnalysisInput)
	}

	counts := make(map[string]int)
	for _, tok := range tokens {
		counts[tok.Word]++
	}

	out := make([]WordCount, 0, len(counts))
	for word, n := range counts {
		out = append(out, WordCount{Word: word, N: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].N == out[j].N {
			return out[i].Word < out[j].Word
		}
		return out[i].N > out[j].N
	})
	return out, nil
}

// TopWords caps a sorted frequency table at limit rows. Every row already
// satisfies the minimum frequency of 1.
func TopWords(counts []WordCount, limit int) []WordCount {
	if limit > 0 && len(counts) > limit {
		return counts[:limit]
	}
	return counts
}

// YearCount is the number of distinct articles in one year bucket.
type YearCount struct {
	Year int
	Docs int
}

// ArticlesPerYear counts distinct (year, title) pairs per year,
// sorted by year ascending.
func ArticlesPerYear(tokens []normalize.Token) ([]YearCount, error) {
	if len(tokens) == 0 {
		return nil, fmt.Errorf("articles per year: %w", internalerr.ErrEmptyAnalysisInput)
	}

	type yearTitle struct {
		year  int
		title string
	}
	seen := make(map[yearTitle]struct{})
	perYear := make(map[int]int)
	for _, tok := range tokens {
		key := yearTitle{tok.Year, tok.Title}
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		perYear[tok.Year]++
	}

	out := make([]YearCount, 0, len(perYear))
	for year, docs := range perYear {
		out = append(out, YearCount{Year: year, Docs: docs})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Year < out[j].Year })
	return out, nil
}

// TermScore is one (year, title, word) row with its TF-IDF breakdown.
// A document is a distinct (year, title) pair, the same unit ArticlesPerYear
// counts; the IDF denominator is the whole corpus.
type TermScore struct {
	Year  int
	Title string
	Word  string
	N     int
	TF    float64
	IDF   float64
	TFIDF float64
}

// TFIDF computes per-(year, title, word) counts and scores them with
// tf = n / total words in the document and idf = ln(docs / df). No smoothing:
// a word present in every document gets idf 0 and contributes nothing.
func TFIDF(tokens []normalize.Token) ([]TermScore, error) {
	if len(tokens) == 0 {
		return nil, fmt.Errorf("tf-idf: %w", internalerr.ErrEmptyAnalysisInput)
	}

	type doc struct {
		year  int
		title string
	}
	type docWord struct {
		year  int
		title string
		word  string
	}
	counts := make(map[docWord]int)
	docTotals := make(map[doc]int)
	for _, tok := range tokens {
		counts[docWord{tok.Year, tok.Title, tok.Word}]++
		docTotals[doc{tok.Year, tok.Title}]++
	}

	df := make(map[string]int)
	for key := range counts {
		df[key.word]++
	}
	totalDocs := float64(len(docTotals))

	out := make([]TermScore, 0, len(counts))
	for key, n := range counts {
		tf := float64(n) / float64(docTotals[doc{key.year, key.title}])
		idf := math.Log(totalDocs / float64(df[key.word]))
		out = append(out, TermScore{
			Year:  key.year,
			Title: key.title,
			Word:  key.word,
			N:     n,
			TF:    tf,
			IDF:   idf,
			TFIDF: tf * idf,
		})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Year != out[j].Year {
			return out[i].Year < out[j].Year
		}
		if out[i].TFIDF != out[j].TFIDF {
			return out[i].TFIDF > out[j].TFIDF
		}
		return out[i].Word < out[j].Word
	})
	return out, nil
}

// YearTerms is the per-year TF-IDF facet.
type YearTerms struct {
	Year  int
	Terms []TermScore
}

// TopTermsPerYear keeps the k highest-scoring rows of each year,
// years ascending.
func TopTermsPerYear(scores []TermScore, k int) []YearTerms {
	byYear := make(map[int][]TermScore)
	var years []int
	for _, s := range scores {
		if _, ok := byYear[s.Year]; !ok {
			years = append(years, s.Year)
		}
		byYear[s.Year] = append(byYear[s.Year], s)
	}
	sort.Ints(years)

	out := make([]YearTerms, 0, len(years))
	for _, year := range years {
		terms := byYear[year]
		sort.Slice(terms, func(i, j int) bool {
			if terms[i].TFIDF != terms[j].TFIDF {
				return terms[i].TFIDF > terms[j].TFIDF
			}
			return terms[i].Word < terms[j].Word
		})
		if k > 0 && len(terms) > k {
			terms = terms[:k]
		}
		out = append(out, YearTerms{Year: year, Terms: terms})
	}
	return out
}
