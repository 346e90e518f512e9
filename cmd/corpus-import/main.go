// Command corpus-import converts saved news-article HTML files into the
// line-oriented corpus format consumed by textmine:
//
//	Title: <article title>
//	DATE: <DD.MM.YYYY>
//	<paragraph>
//	...
//
// It works on local files only; collecting the pages is a manual step.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/Weemaan/Text-Mining-Belval/internal/htmldoc"
	"github.com/Weemaan/Text-Mining-Belval/internal/logging"
	"github.com/Weemaan/Text-Mining-Belval/pkg/textmine/corpus"
)

func main() {
	var (
		outPath  = flag.String("out", "Data/google_news_lines.txt", "Corpus file to append to")
		logLevel = flag.String("log-level", "info", "debug|info|warn|error")
	)
	flag.Parse()

	log := logging.New(*logLevel)

	if flag.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "usage: corpus-import [-out file] page.html [page.html ...]")
		os.Exit(2)
	}

	out, err := os.OpenFile(*outPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		log.Error("open output", "error", err)
		os.Exit(1)
	}
	defer out.Close()

	imported := 0
	for _, path := range flag.Args() {
		art, err := htmldoc.ExtractFile(path)
		if err != nil {
			log.Error("extract article", "path", path, "error", err)
			os.Exit(1)
		}
		if art.Published.IsZero() {
			log.Error("article has no parseable publication date", "path", path)
			os.Exit(1)
		}

		fmt.Fprintf(out, "Title: %s\n", art.Title)
		fmt.Fprintf(out, "DATE: %s\n", art.Published.Format(corpus.DateLayout))
		for _, p := range art.Paragraphs {
			fmt.Fprintln(out, p)
		}

		imported++
		log.Info("imported article", "path", path, "title", art.Title)
	}

	log.Info("done", "articles", imported, "out", *outPath)
}
