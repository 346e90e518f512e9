// Command textmine runs the full exploratory analysis over the Belval news
// corpus: parse, normalize, frequency/temporal/TF-IDF aggregation, and the
// six-topic model, rendering each result as a terminal chart (or JSON).
// It is a one-shot batch run: every failure is fatal, nothing is retried.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"sort"
	"strconv"

	"github.com/oklog/ulid/v2"

	"github.com/Weemaan/Text-Mining-Belval/internal/logging"
	"github.com/Weemaan/Text-Mining-Belval/pkg/textmine/analysis"
	"github.com/Weemaan/Text-Mining-Belval/pkg/textmine/config"
	"github.com/Weemaan/Text-Mining-Belval/pkg/textmine/corpus"
	"github.com/Weemaan/Text-Mining-Belval/pkg/textmine/render"
	"github.com/Weemaan/Text-Mining-Belval/pkg/textmine/topics"
)

func main() {
	var (
		corpusPath = flag.String("corpus", "", "Corpus file (overrides the configured corpus_path)")
		configPath = flag.String("config", "", "YAML config file; built-in Belval tuning when empty")
		topWords   = flag.Int("top-words", 200, "Word cloud cap")
		topTerms   = flag.Int("top-terms", 10, "Terms per TF-IDF year facet and per topic")
		gammaMin   = flag.Float64("gamma", 0.5, "Dominant-topic gamma threshold")
		width      = flag.Int("width", 100, "Chart width in columns")
		jsonOut    = flag.Bool("json", false, "Emit aggregation tables as JSON instead of charts")
		logLevel   = flag.String("log-level", "info", "debug|info|warn|error")
	)
	flag.Parse()

	log := logging.New(*logLevel)
	runID := ulid.Make().String()
	log.Info("starting analysis run", "run_id", runID)

	comps, err := config.Loader{Path: *configPath}.Load()
	if err != nil {
		fatal(log, "load configuration", err)
	}

	path := comps.Config.CorpusPath
	if *corpusPath != "" {
		path = *corpusPath
	}

	lines, err := corpus.ParseFile(path)
	if err != nil {
		fatal(log, "ingest corpus", err)
	}
	log.Info("parsed corpus", "path", path, "lines", len(lines))

	tokens := comps.Normalizer.Run(lines)
	log.Info("normalized", "tokens", len(tokens))

	counts, err := analysis.WordCounts(tokens)
	if err != nil {
		fatal(log, "word frequency", err)
	}
	years, err := analysis.ArticlesPerYear(tokens)
	if err != nil {
		fatal(log, "articles per year", err)
	}
	scores, err := analysis.TFIDF(tokens)
	if err != nil {
		fatal(log, "tf-idf", err)
	}
	yearTerms := analysis.TopTermsPerYear(scores, *topTerms)

	docs := topics.BuildDocs(tokens)
	log.Info("fitting topic model", "documents", len(docs), "k", comps.Model.K, "seed", comps.Model.Seed)
	result, err := comps.Model.Fit(docs)
	if err != nil {
		fatal(log, "topic model", err)
	}

	topicTerms := result.TopTerms(*topTerms)
	dominant := result.Dominant(*gammaMin)
	prevalence := topics.PrevalenceByYear(dominant)

	if *jsonOut {
		emitJSON(log, runID, path, counts, *topWords, years, yearTerms, topicTerms, comps.Labels, prevalence)
		return
	}

	out := os.Stdout

	fmt.Fprintln(out, render.WordCloud(
		fmt.Sprintf("Word cloud (top %d words)", *topWords),
		wordBars(analysis.TopWords(counts, *topWords)), *width))

	fmt.Fprintln(out, render.BarChart("Articles per year", yearBars(years), *width))

	facets := make([]render.Facet, 0, len(yearTerms))
	for _, yt := range yearTerms {
		facets = append(facets, render.Facet{Name: strconv.Itoa(yt.Year), Bars: termBars(yt.Terms)})
	}
	fmt.Fprintln(out, render.FacetedBars("Top terms by TF-IDF per year", facets, *width))

	betaFacets := make([]render.Facet, 0, len(topicTerms))
	for _, tt := range topicTerms {
		betaFacets = append(betaFacets, render.Facet{
			Name: fmt.Sprintf("Topic %d: %s", tt.Topic, comps.Labels.Name(tt.Topic)),
			Bars: betaBars(tt.Terms),
		})
	}
	fmt.Fprintln(out, render.FacetedBars("Top topic terms (beta)", betaFacets, *width))

	fmt.Fprintln(out, render.StackedBars("Dominant topics over time",
		stackedRows(prevalence, comps.Labels), *width))

	fmt.Fprintln(out, "Topic assignments by year")
	fmt.Fprintln(out, "topic\tyear\tdocs\tlabel")
	for _, p := range prevalence {
		fmt.Fprintf(out, "%d\t%d\t%d\t%s\n", p.Topic, p.Year, p.Docs, comps.Labels.Name(p.Topic))
	}

	log.Info("analysis run finished", "run_id", runID)
}

func fatal(log *slog.Logger, stage string, err error) {
	log.Error(stage, "error", err)
	os.Exit(1)
}

func wordBars(counts []analysis.WordCount) []render.Bar {
	bars := make([]render.Bar, len(counts))
	for i, c := range counts {
		bars[i] = render.Bar{Label: c.Word, Value: float64(c.N)}
	}
	return bars
}

func yearBars(years []analysis.YearCount) []render.Bar {
	bars := make([]render.Bar, len(years))
	for i, y := range years {
		bars[i] = render.Bar{Label: strconv.Itoa(y.Year), Value: float64(y.Docs)}
	}
	return bars
}

func termBars(terms []analysis.TermScore) []render.Bar {
	bars := make([]render.Bar, len(terms))
	for i, t := range terms {
		bars[i] = render.Bar{Label: t.Word, Value: t.TFIDF}
	}
	return bars
}

func betaBars(terms []topics.TermWeight) []render.Bar {
	bars := make([]render.Bar, len(terms))
	for i, t := range terms {
		bars[i] = render.Bar{Label: t.Term, Value: t.Weight}
	}
	return bars
}

// stackedRows pivots the (topic, year) prevalence table into one row per
// year with one segment per labeled topic, both ascending.
func stackedRows(prevalence []topics.YearTopicCount, labels topics.Labels) []render.StackedRow {
	byYear := make(map[int]map[int]int)
	var yearsSeen []int
	for _, p := range prevalence {
		if _, ok := byYear[p.Year]; !ok {
			byYear[p.Year] = make(map[int]int)
			yearsSeen = append(yearsSeen, p.Year)
		}
		byYear[p.Year][p.Topic] = p.Docs
	}
	sort.Ints(yearsSeen)

	maxTopic := 0
	for _, p := range prevalence {
		if p.Topic > maxTopic {
			maxTopic = p.Topic
		}
	}

	rows := make([]render.StackedRow, 0, len(yearsSeen))
	for _, year := range yearsSeen {
		row := render.StackedRow{Label: strconv.Itoa(year)}
		for topic := 1; topic <= maxTopic; topic++ {
			if docs, ok := byYear[year][topic]; ok {
				row.Segments = append(row.Segments, render.Segment{
					Label: labels.Name(topic),
					Value: docs,
				})
			}
		}
		rows = append(rows, row)
	}
	return rows
}

type jsonReport struct {
	RunID           string               `json:"run_id"`
	Corpus          string               `json:"corpus"`
	WordCounts      []jsonWordCount      `json:"word_counts"`
	ArticlesPerYear []jsonYearCount      `json:"articles_per_year"`
	TopTermsPerYear []jsonYearTerms      `json:"top_terms_per_year"`
	Topics          []jsonTopic          `json:"topics"`
	Prevalence      []jsonYearTopicCount `json:"topic_prevalence"`
}

type jsonWordCount struct {
	Word string `json:"word"`
	N    int    `json:"n"`
}

type jsonYearCount struct {
	Year int `json:"year"`
	Docs int `json:"docs"`
}

type jsonYearTerms struct {
	Year  int            `json:"year"`
	Terms []jsonTermRank `json:"terms"`
}

type jsonTermRank struct {
	Word  string  `json:"word"`
	Score float64 `json:"score"`
}

type jsonTopic struct {
	ID    int            `json:"id"`
	Label string         `json:"label"`
	Terms []jsonTermRank `json:"terms"`
}

type jsonYearTopicCount struct {
	Topic int    `json:"topic"`
	Label string `json:"label"`
	Year  int    `json:"year"`
	Docs  int    `json:"docs"`
}

func emitJSON(
	log *slog.Logger,
	runID, path string,
	counts []analysis.WordCount,
	topWords int,
	years []analysis.YearCount,
	yearTerms []analysis.YearTerms,
	topicTerms []topics.TopicTerms,
	labels topics.Labels,
	prevalence []topics.YearTopicCount,
) {
	report := jsonReport{RunID: runID, Corpus: path}
	for _, c := range analysis.TopWords(counts, topWords) {
		report.WordCounts = append(report.WordCounts, jsonWordCount{Word: c.Word, N: c.N})
	}
	for _, y := range years {
		report.ArticlesPerYear = append(report.ArticlesPerYear, jsonYearCount{Year: y.Year, Docs: y.Docs})
	}
	for _, yt := range yearTerms {
		entry := jsonYearTerms{Year: yt.Year}
		for _, t := range yt.Terms {
			entry.Terms = append(entry.Terms, jsonTermRank{Word: t.Word, Score: t.TFIDF})
		}
		report.TopTermsPerYear = append(report.TopTermsPerYear, entry)
	}
	for _, tt := range topicTerms {
		entry := jsonTopic{ID: tt.Topic, Label: labels.Name(tt.Topic)}
		for _, t := range tt.Terms {
			entry.Terms = append(entry.Terms, jsonTermRank{Word: t.Term, Score: t.Weight})
		}
		report.Topics = append(report.Topics, entry)
	}
	for _, p := range prevalence {
		report.Prevalence = append(report.Prevalence, jsonYearTopicCount{
			Topic: p.Topic,
			Label: labels.Name(p.Topic),
			Year:  p.Year,
			Docs:  p.Docs,
		})
	}

	out, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		fatal(log, "marshal report", err)
	}
	fmt.Println(string(out))
}
