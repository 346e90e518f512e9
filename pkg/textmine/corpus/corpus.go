// Package corpus reads the line-oriented news corpus format:
//
//	Title: <article title>
//	DATE: <DD.MM.YYYY>
//	<body line>
//	<body line>
//	...
//
// Every title line and body line becomes one Line record carrying the
// title/date context of the nearest preceding marker pair. DATE lines are
// consumed while handling their title line and produce no record of their own.
package corpus

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/Weemaan/Text-Mining-Belval/pkg/textmine/internalerr"
)

const (
	titlePrefix = "Title:"
	datePrefix  = "DATE:"

	// DateLayout is the day.month.year format used by the corpus files.
	DateLayout = "02.01.2006"
)

// SentinelDate is the date assigned to body lines that precede the first
// Title: marker. Such lines also get an empty title. The reference corpus
// never starts with body lines, so this is a documented quirk rather than
// validated input.
var SentinelDate = time.Date(1900, time.January, 1, 0, 0, 0, 0, time.UTC)

// Line is one parsed corpus line with its article context.
type Line struct {
	Title      string
	LineNumber int // 1-based, monotonic across the whole file
	Text       string
	Date       time.Time
}

// ParseFile reads and parses a corpus file. A missing file surfaces the
// underlying os error (errors.Is(err, os.ErrNotExist) holds).
func ParseFile(path string) ([]Line, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open corpus %s: %w", path, err)
	}
	defer f.Close()

	lines, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("parse corpus %s: %w", path, err)
	}
	return lines, nil
}

// Parse scans the corpus in a single forward pass. The only lookahead is the
// mandatory DATE line following each Title: line.
func Parse(r io.Reader) ([]Line, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var (
		lines []Line
		title string
		date  = SentinelDate
		n     int
	)

	for sc.Scan() {
		raw := sc.Text()
		n++

		if !strings.HasPrefix(raw, titlePrefix) {
			lines = append(lines, Line{
				Title:      title,
				LineNumber: n,
				Text:       raw,
				Date:       date,
			})
			continue
		}

		title = strings.TrimSpace(strings.TrimPrefix(raw, titlePrefix))

		if !sc.Scan() {
			return nil, fmt.Errorf("%w: title %q has no DATE line", internalerr.ErrMalformedCorpus, title)
		}
		dateLine := sc.Text()
		if !strings.HasPrefix(dateLine, datePrefix) {
			return nil, fmt.Errorf("%w: title %q followed by %q, want a DATE line", internalerr.ErrMalformedCorpus, title, dateLine)
		}
		parsed, err := time.Parse(DateLayout, strings.TrimSpace(strings.TrimPrefix(dateLine, datePrefix)))
		if err != nil {
			return nil, fmt.Errorf("%w: title %q: %v", internalerr.ErrMalformedCorpus, title, err)
		}
		date = parsed

		lines = append(lines, Line{
			Title:      title,
			LineNumber: n,
			Text:       title,
			Date:       date,
		})
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("scan corpus: %w", err)
	}

	return lines, nil
}
