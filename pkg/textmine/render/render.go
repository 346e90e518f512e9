// Package render draws the analysis tables as plain-text charts for the
// terminal. Renderers take tabular inputs and return strings; they know
// nothing about how the tables were produced.
package render

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"
)

const defaultWidth = 80

// Bar is one labeled value in a bar chart.
type Bar struct {
	Label string
	Value float64
}

// Facet is one named sub-chart in a faceted display.
type Facet struct {
	Name string
	Bars []Bar
}

// Segment is one stacked portion of a row.
type Segment struct {
	Label string
	Value int
}

// StackedRow is one row of a stacked bar chart.
type StackedRow struct {
	Label    string
	Segments []Segment
}

// BarChart renders horizontal bars scaled to the widest value.
func BarChart(title string, bars []Bar, width int) string {
	var b strings.Builder
	writeTitle(&b, title, width)
	writeBars(&b, bars, width)
	return b.String()
}

// FacetedBars renders one small bar chart per facet under a shared title.
func FacetedBars(title string, facets []Facet, width int) string {
	var b strings.Builder
	writeTitle(&b, title, width)
	for i, f := range facets {
		if i > 0 {
			b.WriteByte('\n')
		}
		fmt.Fprintf(&b, "-- %s --\n", f.Name)
		writeBars(&b, f.Bars, width)
	}
	return b.String()
}

// segmentFills distinguishes stacked segments; six fills cover the six
// topics of this corpus and cycle beyond that.
var segmentFills = []rune{'█', '▓', '▒', '░', '◆', '•'}

// StackedBars renders one bar per row, split into segments. The legend maps
// each segment label to its fill rune.
func StackedBars(title string, rows []StackedRow, width int) string {
	var b strings.Builder
	writeTitle(&b, title, width)

	fills := make(map[string]rune)
	var legend []string
	for _, row := range rows {
		for _, seg := range row.Segments {
			if _, ok := fills[seg.Label]; !ok {
				fills[seg.Label] = segmentFills[len(fills)%len(segmentFills)]
				legend = append(legend, seg.Label)
			}
		}
	}

	labelWidth := 0
	maxTotal := 0
	for _, row := range rows {
		if w := runewidth.StringWidth(row.Label); w > labelWidth {
			labelWidth = w
		}
		total := 0
		for _, seg := range row.Segments {
			total += seg.Value
		}
		if total > maxTotal {
			maxTotal = total
		}
	}
	barWidth := chartWidth(width) - labelWidth - 8
	if barWidth < 10 {
		barWidth = 10
	}

	for _, row := range rows {
		total := 0
		var cells strings.Builder
		for _, seg := range row.Segments {
			total += seg.Value
			n := scale(seg.Value, maxTotal, barWidth)
			cells.WriteString(strings.Repeat(string(fills[seg.Label]), n))
		}
		fmt.Fprintf(&b, "%s %s %d\n", pad(row.Label, labelWidth), cells.String(), total)
	}

	b.WriteByte('\n')
	for _, label := range legend {
		fmt.Fprintf(&b, "  %c %s\n", fills[label], label)
	}
	return b.String()
}

// WordCloud renders a frequency-tiered word listing: the terminal stand-in
// for a graphical word cloud. Words arrive sorted by count descending.
func WordCloud(title string, bars []Bar, width int) string {
	var b strings.Builder
	writeTitle(&b, title, width)
	if len(bars) == 0 {
		return b.String()
	}

	max := bars[0].Value
	tiers := []struct {
		mark string
		min  float64
	}{
		{"████", max / 2},
		{"██  ", max / 4},
		{"█   ", 1.5},
		{"·   ", 0},
	}
	// Keep the minimums monotonically decreasing. With a small max the
	// fixed 1.5 floor would exceed the scaled tiers above it and frequency-1
	// words would leave the bottom tier.
	for i := len(tiers) - 2; i >= 0; i-- {
		if tiers[i].min < tiers[i+1].min {
			tiers[i].min = tiers[i+1].min
		}
	}

	next := 0
	for _, tier := range tiers {
		var words []string
		for next < len(bars) && bars[next].Value > tier.min {
			words = append(words, bars[next].Label)
			next++
		}
		if len(words) == 0 {
			continue
		}
		fmt.Fprintf(&b, "%s %s\n", tier.mark, wrap(words, chartWidth(width)-5, 5))
	}
	return b.String()
}

func writeTitle(b *strings.Builder, title string, width int) {
	b.WriteString(title)
	b.WriteByte('\n')
	b.WriteString(strings.Repeat("=", min(runewidth.StringWidth(title), chartWidth(width))))
	b.WriteString("\n")
}

func writeBars(b *strings.Builder, bars []Bar, width int) {
	labelWidth := 0
	var max float64
	for _, bar := range bars {
		if w := runewidth.StringWidth(bar.Label); w > labelWidth {
			labelWidth = w
		}
		if bar.Value > max {
			max = bar.Value
		}
	}
	barWidth := chartWidth(width) - labelWidth - 12
	if barWidth < 10 {
		barWidth = 10
	}

	for _, bar := range bars {
		n := 0
		if max > 0 {
			n = int(bar.Value / max * float64(barWidth))
		}
		if n == 0 && bar.Value > 0 {
			n = 1
		}
		fmt.Fprintf(b, "%s %s %s\n", pad(bar.Label, labelWidth), strings.Repeat("█", n), formatValue(bar.Value))
	}
}

func formatValue(v float64) string {
	if v == float64(int64(v)) {
		return fmt.Sprintf("%d", int64(v))
	}
	return fmt.Sprintf("%.4f", v)
}

func scale(value, max, width int) int {
	if max == 0 || value == 0 {
		return 0
	}
	n := value * width / max
	if n == 0 {
		n = 1
	}
	return n
}

func pad(s string, width int) string {
	gap := width - runewidth.StringWidth(s)
	if gap <= 0 {
		return s
	}
	return s + strings.Repeat(" ", gap)
}

func wrap(words []string, width, indent int) string {
	if width < 20 {
		width = 20
	}
	var b strings.Builder
	lineWidth := 0
	for i, w := range words {
		ww := runewidth.StringWidth(w)
		if i > 0 {
			if lineWidth+ww+1 > width {
				b.WriteString("\n" + strings.Repeat(" ", indent))
				lineWidth = 0
			} else {
				b.WriteByte(' ')
				lineWidth++
			}
		}
		b.WriteString(w)
		lineWidth += ww
	}
	return b.String()
}

func chartWidth(width int) int {
	if width <= 0 {
		return defaultWidth
	}
	return width
}
