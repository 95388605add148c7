package main

import (
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	accentFg  = lipgloss.Color("#7C3AED")
	dimFg     = lipgloss.AdaptiveColor{Light: "#6B7280", Dark: "#6B7280"}
	errorFg   = lipgloss.Color("#E74C3C")
	warnFg    = lipgloss.Color("#F39C12")
	borderCol = lipgloss.Color("#243141")

	titleStyle = lipgloss.NewStyle().Foreground(accentFg).Bold(true)
	dimStyle   = lipgloss.NewStyle().Foreground(dimFg)
	errorStyle = lipgloss.NewStyle().Foreground(errorFg)
	warnStyle  = lipgloss.NewStyle().Foreground(warnFg)
	boxStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(borderCol).Padding(0, 1)
)

// renderText writes one bordered block per report.
func renderText(w io.Writer, reports []fileReport) {
	for _, r := range reports {
		fmt.Fprintln(w, boxStyle.Render(renderReport(r)))
	}
}

func renderReport(r fileReport) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(r.Path))
	b.WriteByte('\n')

	res := r.Result
	for _, e := range res.Errors {
		line := "error: " + e.Message
		if e.Line > 0 {
			line = fmt.Sprintf("error: line %d: %s", e.Line, e.Message)
		}
		b.WriteString(errorStyle.Render(line))
		b.WriteByte('\n')
	}
	if len(res.Errors) > 0 {
		return strings.TrimRight(b.String(), "\n")
	}

	fmt.Fprintf(&b, "%d shapes", len(res.Shapes))
	if kinds := kindSummary(res.Shapes); kinds != "" {
		b.WriteString(dimStyle.Render(" (" + kinds + ")"))
	}
	b.WriteByte('\n')
	if res.Bounds != nil {
		b.WriteString("bounds " + formatBounds(*res.Bounds))
		b.WriteByte('\n')
	}

	for _, wn := range res.Warnings {
		b.WriteString(warnStyle.Render("warning: " + wn.Message))
		if len(wn.Entry) >= 8 {
			b.WriteString(dimStyle.Render(" [" + wn.Entry[:8] + "]"))
		}
		b.WriteByte('\n')
	}

	for _, p := range r.Probes {
		hits := "nothing"
		if len(p.Hits) > 0 {
			hits = strings.Join(p.Hits, ", ")
		}
		fmt.Fprintf(&b, "%s %s: %s\n", p.Name, dimStyle.Render(p.Query), hits)
	}
	return strings.TrimRight(b.String(), "\n")
}

// kindSummary formats kind counts as "2 circle, 1 line", sorted by kind.
func kindSummary(shapes []ShapeData) string {
	counts := make(map[string]int)
	for _, s := range shapes {
		counts[s.Kind]++
	}
	kinds := make([]string, 0, len(counts))
	for k := range counts {
		kinds = append(kinds, k)
	}
	slices.Sort(kinds)
	parts := make([]string, len(kinds))
	for i, k := range kinds {
		parts[i] = strconv.Itoa(counts[k]) + " " + k
	}
	return strings.Join(parts, ", ")
}

// formatBounds writes "[minX, maxX] x [minY, maxY]" with ±inf for null edges.
func formatBounds(b BoundsData) string {
	edge := func(f *float64, neg bool) string {
		if f != nil {
			return strconv.FormatFloat(*f, 'g', -1, 64)
		}
		if neg {
			return "-inf"
		}
		return "+inf"
	}
	return fmt.Sprintf("[%s, %s] x [%s, %s]",
		edge(b.MinX, true), edge(b.MaxX, false), edge(b.MinY, true), edge(b.MaxY, false))
}
