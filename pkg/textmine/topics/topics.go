// Package topics fits the six-topic structural model over the corpus and
// derives the beta (term-topic weight) and gamma (document-topic proportion)
// tables. Estimation itself is delegated to github.com/james-bowman/nlp;
// this package only builds the document-term input and reads the output
// matrices back into tables.
package topics

import (
	"fmt"
	"sort"

	"github.com/james-bowman/nlp"
	"github.com/james-bowman/sparse"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/mat"

	"github.com/Weemaan/Text-Mining-Belval/pkg/textmine/internalerr"
	"github.com/Weemaan/Text-Mining-Belval/pkg/textmine/normalize"
)

// Doc is one model document: all surviving tokens of one article.
type Doc struct {
	Title  string
	Year   int
	Tokens []string
}

// BuildDocs groups tokens by title, preserving first-seen order.
func BuildDocs(tokens []normalize.Token) []Doc {
	index := make(map[string]int)
	var docs []Doc
	for _, tok := range tokens {
		i, ok := index[tok.Title]
		if !ok {
			i = len(docs)
			index[tok.Title] = i
			docs = append(docs, Doc{Title: tok.Title, Year: tok.Year})
		}
		docs[i].Tokens = append(docs[i].Tokens, tok.Word)
	}
	return docs
}

// Model holds the estimator settings. The seed fixes the pseudo-random
// source so repeated runs produce the same topics.
type Model struct {
	K          int
	Seed       uint64
	Iterations int
}

// DefaultIterations matches the batch-mode estimation depth used for this
// corpus size.
const DefaultIterations = 100

// Result is a fitted model with its input docs and vocabulary.
type Result struct {
	K     int
	Docs  []Doc
	Vocab []string   // column index -> term
	Beta  *mat.Dense // K x len(Vocab), term weight per topic
	Gamma *mat.Dense // len(Docs) x K, topic proportion per document
}

// Fit builds the document-term matrix and runs the LDA estimator.
// Any estimator failure or degenerate input is fatal to the run.
func (m Model) Fit(docs []Doc) (*Result, error) {
	if len(docs) == 0 {
		return nil, fmt.Errorf("topic model: %w", internalerr.ErrEmptyAnalysisInput)
	}

	// The document-term matrix is built straight from the token counts.
	// Running the words through the vectoriser's own tokenizer would split
	// compounds like "blast-furnace" and put filtered fragments back into
	// the vocabulary; the columns must stay exactly the normalized words.
	index := make(map[string]int)
	var vocab []string
	for _, d := range docs {
		for _, w := range d.Tokens {
			if _, ok := index[w]; !ok {
				index[w] = len(vocab)
				vocab = append(vocab, w)
			}
		}
	}
	if len(vocab) < m.K {
		return nil, fmt.Errorf("%w: vocabulary size %d below topic count %d",
			internalerr.ErrModelFit, len(vocab), m.K)
	}

	dtm := sparse.NewDOK(len(vocab), len(docs))
	for j, d := range docs {
		for _, w := range d.Tokens {
			i := index[w]
			dtm.Set(i, j, dtm.At(i, j)+1)
		}
	}

	iterations := m.Iterations
	if iterations <= 0 {
		iterations = DefaultIterations
	}

	lda := nlp.NewLatentDirichletAllocation(m.K)
	lda.Iterations = iterations
	lda.TransformationPasses = iterations / 2
	lda.Processes = 1 // sequential, keeps the fixed seed reproducible
	lda.Rnd = rand.New(rand.NewSource(m.Seed))

	docsOverTopics, err := lda.FitTransform(dtm.ToCSR())
	if err != nil {
		return nil, fmt.Errorf("%w: %v", internalerr.ErrModelFit, err)
	}
	topicsOverWords := lda.Components()

	beta := mat.NewDense(m.K, len(vocab), nil)
	for topic := 0; topic < m.K; topic++ {
		for word := 0; word < len(vocab); word++ {
			beta.Set(topic, word, topicsOverWords.At(topic, word))
		}
	}

	// docsOverTopics comes back topics x docs; flip to docs x topics so
	// each row is one document's mixture.
	gamma := mat.NewDense(len(docs), m.K, nil)
	for doc := 0; doc < len(docs); doc++ {
		for topic := 0; topic < m.K; topic++ {
			gamma.Set(doc, topic, docsOverTopics.At(topic, doc))
		}
	}

	return &Result{K: m.K, Docs: docs, Vocab: vocab, Beta: beta, Gamma: gamma}, nil
}

// TermWeight is one beta row: a term's weight within a topic.
type TermWeight struct {
	Topic  int // 1-based
	Term   string
	Weight float64
}

// TopicTerms is the per-topic beta facet.
type TopicTerms struct {
	Topic int // 1-based
	Terms []TermWeight
}

// TopTerms returns the k heaviest terms of each topic.
func (r *Result) TopTerms(k int) []TopicTerms {
	out := make([]TopicTerms, 0, r.K)
	for topic := 0; topic < r.K; topic++ {
		terms := make([]TermWeight, len(r.Vocab))
		for word := range r.Vocab {
			terms[word] = TermWeight{
				Topic:  topic + 1,
				Term:   r.Vocab[word],
				Weight: r.Beta.At(topic, word),
			}
		}
		sort.Slice(terms, func(i, j int) bool {
			if terms[i].Weight != terms[j].Weight {
				return terms[i].Weight > terms[j].Weight
			}
			return terms[i].Term < terms[j].Term
		})
		if k > 0 && len(terms) > k {
			terms = terms[:k]
		}
		out = append(out, TopicTerms{Topic: topic + 1, Terms: terms})
	}
	return out
}

// DocTopic is one gamma row that cleared the dominance threshold.
type DocTopic struct {
	Title string
	Year  int
	Topic int // 1-based
	Gamma float64
}

// Dominant returns the documents whose gamma for some topic exceeds the
// threshold (0.5 gives at most one dominant topic per document).
func (r *Result) Dominant(threshold float64) []DocTopic {
	var out []DocTopic
	for doc, d := range r.Docs {
		for topic := 0; topic < r.K; topic++ {
			g := r.Gamma.At(doc, topic)
			if g > threshold {
				out = append(out, DocTopic{
					Title: d.Title,
					Year:  d.Year,
					Topic: topic + 1,
					Gamma: g,
				})
			}
		}
	}
	return out
}

// YearTopicCount is one cell of the prevalence-over-time table.
type YearTopicCount struct {
	Topic int // 1-based
	Year  int
	Docs  int
}

// PrevalenceByYear counts dominant-topic documents per (year, topic),
// sorted by topic then year. This is the inspectable intermediate table
// behind the stacked chart.
func PrevalenceByYear(assignments []DocTopic) []YearTopicCount {
	type key struct {
		topic int
		year  int
	}
	counts := make(map[key]int)
	for _, a := range assignments {
		counts[key{a.Topic, a.Year}]++
	}

	out := make([]YearTopicCount, 0, len(counts))
	for k, n := range counts {
		out = append(out, YearTopicCount{Topic: k.topic, Year: k.year, Docs: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Topic != out[j].Topic {
			return out[i].Topic < out[j].Topic
		}
		return out[i].Year < out[j].Year
	})
	return out
}
