package topics

import (
	"errors"
	"testing"

	"gonum.org/v1/gonum/mat"

	"github.com/Weemaan/Text-Mining-Belval/pkg/textmine/internalerr"
	"github.com/Weemaan/Text-Mining-Belval/pkg/textmine/normalize"
)

func TestBuildDocsGroupsByTitle(t *testing.T) {
	tokens := []normalize.Token{
		{Title: "A", Year: 2016, Word: "campus"},
		{Title: "A", Year: 2016, Word: "student"},
		{Title: "B", Year: 2017, Word: "furnace"},
		{Title: "A", Year: 2016, Word: "opened"},
	}

	docs := BuildDocs(tokens)
	if len(docs) != 2 {
		t.Fatalf("Expected 2 docs, got %d", len(docs))
	}
	if docs[0].Title != "A" || docs[1].Title != "B" {
		t.Errorf("First-seen order not preserved: %+v", docs)
	}
	if len(docs[0].Tokens) != 3 {
		t.Errorf("Doc A should have 3 tokens, got %v", docs[0].Tokens)
	}
	if docs[1].Year != 2017 {
		t.Errorf("Doc B year: got %d, want 2017", docs[1].Year)
	}
}

func TestFitRejectsEmptyInput(t *testing.T) {
	_, err := Model{K: 6, Seed: 42}.Fit(nil)
	if !errors.Is(err, internalerr.ErrEmptyAnalysisInput) {
		t.Errorf("Expected ErrEmptyAnalysisInput, got %v", err)
	}
}

func TestFitRejectsTinyVocabulary(t *testing.T) {
	docs := []Doc{
		{Title: "A", Year: 2016, Tokens: []string{"campus", "campus"}},
		{Title: "B", Year: 2017, Tokens: []string{"campus"}},
	}
	_, err := Model{K: 6, Seed: 42}.Fit(docs)
	if !errors.Is(err, internalerr.ErrModelFit) {
		t.Errorf("Expected ErrModelFit, got %v", err)
	}
}

func TestFitSmallCorpus(t *testing.T) {
	docs := []Doc{
		{Title: "A", Year: 2015, Tokens: []string{"campus", "student", "university", "campus", "lecture"}},
		{Title: "B", Year: 2016, Tokens: []string{"furnace", "steel", "heritage", "furnace", "monument"}},
		{Title: "C", Year: 2016, Tokens: []string{"student", "university", "lecture", "semester"}},
		{Title: "D", Year: 2017, Tokens: []string{"steel", "heritage", "monument", "furnace"}},
	}

	res, err := Model{K: 2, Seed: 42, Iterations: 20}.Fit(docs)
	if err != nil {
		t.Fatalf("Fit: %v", err)
	}

	if res.K != 2 {
		t.Errorf("K: got %d", res.K)
	}
	br, bc := res.Beta.Dims()
	if br != 2 || bc != len(res.Vocab) {
		t.Errorf("Beta dims %dx%d, want 2x%d", br, bc, len(res.Vocab))
	}
	gr, gc := res.Gamma.Dims()
	if gr != len(docs) || gc != 2 {
		t.Errorf("Gamma dims %dx%d, want %dx2", gr, gc, len(docs))
	}

	for doc := 0; doc < gr; doc++ {
		var sum float64
		for topic := 0; topic < gc; topic++ {
			g := res.Gamma.At(doc, topic)
			if g < 0 || g > 1 {
				t.Errorf("Gamma out of range: doc %d topic %d = %f", doc, topic, g)
			}
			sum += g
		}
		if sum < 0.9 || sum > 1.1 {
			t.Errorf("Doc %d gamma mixture sums to %f", doc, sum)
		}
	}
}

// The model vocabulary must be exactly the normalized words. Hyphenated
// compounds survive normalization as single tokens and must not be split
// back into fragments on the way into the document-term matrix.
func TestFitVocabularyKeepsNormalizedWords(t *testing.T) {
	tokens := []normalize.Token{
		{Title: "A", Year: 2015, Word: "blast-furnace"},
		{Title: "A", Year: 2015, Word: "heritage"},
		{Title: "B", Year: 2016, Word: "blast-furnace"},
		{Title: "B", Year: 2016, Word: "monument"},
	}

	res, err := Model{K: 2, Seed: 42, Iterations: 10}.Fit(BuildDocs(tokens))
	if err != nil {
		t.Fatalf("Fit: %v", err)
	}

	seen := make(map[string]bool, len(res.Vocab))
	for _, w := range res.Vocab {
		seen[w] = true
	}
	if !seen["blast-furnace"] {
		t.Errorf("blast-furnace missing from model vocabulary: %v", res.Vocab)
	}
	if seen["blast"] || seen["furnace"] {
		t.Errorf("Compound split into fragments: %v", res.Vocab)
	}
	if len(res.Vocab) != 3 {
		t.Errorf("Vocabulary should hold the 3 distinct words, got %v", res.Vocab)
	}
}

func TestFitReproducibleWithFixedSeed(t *testing.T) {
	docs := []Doc{
		{Title: "A", Year: 2015, Tokens: []string{"campus", "student", "university"}},
		{Title: "B", Year: 2016, Tokens: []string{"furnace", "steel", "heritage"}},
		{Title: "C", Year: 2017, Tokens: []string{"student", "lecture", "campus"}},
	}

	m := Model{K: 2, Seed: 7, Iterations: 10}
	first, err := m.Fit(docs)
	if err != nil {
		t.Fatal(err)
	}
	second, err := m.Fit(docs)
	if err != nil {
		t.Fatal(err)
	}

	if !mat.EqualApprox(first.Gamma, second.Gamma, 1e-9) {
		t.Error("Same seed must reproduce the same gamma matrix")
	}
}

func newResult() *Result {
	docs := []Doc{
		{Title: "A", Year: 2015},
		{Title: "B", Year: 2015},
		{Title: "C", Year: 2016},
	}
	gamma := mat.NewDense(3, 2, []float64{
		0.9, 0.1,
		0.4, 0.6,
		0.2, 0.8,
	})
	beta := mat.NewDense(2, 3, []float64{
		0.5, 0.3, 0.2,
		0.1, 0.2, 0.7,
	})
	return &Result{
		K:     2,
		Docs:  docs,
		Vocab: []string{"campus", "student", "furnace"},
		Beta:  beta,
		Gamma: gamma,
	}
}

func TestTopTerms(t *testing.T) {
	res := newResult()

	tops := res.TopTerms(2)
	if len(tops) != 2 {
		t.Fatalf("Expected 2 topics, got %d", len(tops))
	}
	if tops[0].Topic != 1 || tops[0].Terms[0].Term != "campus" {
		t.Errorf("Topic 1 top term: %+v", tops[0])
	}
	if tops[1].Terms[0].Term != "furnace" {
		t.Errorf("Topic 2 top term: %+v", tops[1])
	}
	if len(tops[0].Terms) != 2 {
		t.Errorf("Terms not capped at 2: %d", len(tops[0].Terms))
	}
}

func TestDominantThreshold(t *testing.T) {
	res := newResult()

	dominant := res.Dominant(0.5)
	if len(dominant) != 3 {
		t.Fatalf("Expected 3 dominant assignments, got %+v", dominant)
	}

	want := map[string]int{"A": 1, "B": 2, "C": 2}
	for _, d := range dominant {
		if want[d.Title] != d.Topic {
			t.Errorf("Doc %s: got topic %d, want %d", d.Title, d.Topic, want[d.Title])
		}
	}

	// A strict threshold of 0.85 keeps only doc A.
	strict := res.Dominant(0.85)
	if len(strict) != 1 || strict[0].Title != "A" {
		t.Errorf("Strict threshold: got %+v", strict)
	}
}

func TestPrevalenceByYearSorting(t *testing.T) {
	assignments := []DocTopic{
		{Title: "C", Year: 2016, Topic: 2, Gamma: 0.8},
		{Title: "A", Year: 2015, Topic: 1, Gamma: 0.9},
		{Title: "B", Year: 2015, Topic: 2, Gamma: 0.6},
		{Title: "D", Year: 2015, Topic: 2, Gamma: 0.7},
	}

	rows := PrevalenceByYear(assignments)
	want := []YearTopicCount{
		{Topic: 1, Year: 2015, Docs: 1},
		{Topic: 2, Year: 2015, Docs: 2},
		{Topic: 2, Year: 2016, Docs: 1},
	}
	if len(rows) != len(want) {
		t.Fatalf("Got %+v, want %+v", rows, want)
	}
	for i := range want {
		if rows[i] != want[i] {
			t.Errorf("Row %d: got %+v, want %+v", i, rows[i], want[i])
		}
	}
}

func TestLabelsValidate(t *testing.T) {
	full := Labels{1: "University", 2: "Heritage"}
	if err := full.Validate(2); err != nil {
		t.Errorf("Complete labels should validate: %v", err)
	}

	missing := Labels{1: "University"}
	if err := missing.Validate(2); !errors.Is(err, internalerr.ErrInvalidConfig) {
		t.Errorf("Expected ErrInvalidConfig, got %v", err)
	}

	empty := Labels{1: "University", 2: ""}
	if err := empty.Validate(2); !errors.Is(err, internalerr.ErrInvalidConfig) {
		t.Errorf("Empty label should fail, got %v", err)
	}
}
