// Package htmldoc extracts article text from saved news pages so they can be
// appended to the line-oriented corpus format.
package htmldoc

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"golang.org/x/net/html"
)

// Article is the extracted content of one saved page.
type Article struct {
	Title      string
	Published  time.Time
	Paragraphs []string
}

// ExtractFile parses a saved HTML page from disk.
func ExtractFile(path string) (Article, error) {
	f, err := os.Open(path)
	if err != nil {
		return Article{}, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	art, err := Extract(f)
	if err != nil {
		return Article{}, fmt.Errorf("extract %s: %w", path, err)
	}
	return art, nil
}

// Extract pulls the title, the published timestamp (from a <time datetime>
// attribute or the article:published_time meta tag, when present), and the
// paragraph texts out of an HTML document.
func Extract(r io.Reader) (Article, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return Article{}, fmt.Errorf("parse html: %w", err)
	}

	var art Article
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			switch n.Data {
			case "title":
				if art.Title == "" {
					art.Title = strings.TrimSpace(textContent(n))
				}
			case "h1":
				// An h1 beats the <title> tag, which tends to carry
				// the outlet name.
				if t := strings.TrimSpace(textContent(n)); t != "" {
					art.Title = t
				}
			case "p":
				if t := collapseSpace(textContent(n)); t != "" {
					art.Paragraphs = append(art.Paragraphs, t)
				}
			case "time":
				if art.Published.IsZero() {
					art.Published = parseTimestamp(attr(n, "datetime"))
				}
			case "meta":
				if attr(n, "property") == "article:published_time" && art.Published.IsZero() {
					art.Published = parseTimestamp(attr(n, "content"))
				}
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)

	if art.Title == "" && len(art.Paragraphs) == 0 {
		return Article{}, fmt.Errorf("no article content found")
	}
	return art, nil
}

func textContent(n *html.Node) string {
	var buf strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			buf.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return buf.String()
}

func collapseSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

func parseTimestamp(s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02", "02.01.2006"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}

func attr(n *html.Node, name string) string {
	for _, a := range n.Attr {
		if a.Key == name {
			return a.Val
		}
	}
	return ""
}
