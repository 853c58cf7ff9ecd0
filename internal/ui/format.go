// File: internal/ui/format.go

// Package ui renders chat content in the terminal: markdown-ish bold
// formatting, the typewriter reveal effect, and the bubbletea chat view.
package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var boldStyle = lipgloss.NewStyle().Bold(true)

// Span is one run of text within a line, optionally emphasized.
type Span struct {
	Text string
	Bold bool
}

// SplitSpans splits a line on **bold** delimiter pairs, stripping the
// markers. An unmatched pair is left as literal text.
func SplitSpans(line string) []Span {
	var spans []Span
	rest := line
	for {
		start := strings.Index(rest, "**")
		if start < 0 {
			break
		}
		end := strings.Index(rest[start+2:], "**")
		if end < 0 {
			break
		}
		if start > 0 {
			spans = append(spans, Span{Text: rest[:start]})
		}
		spans = append(spans, Span{Text: rest[start+2 : start+2+end], Bold: true})
		rest = rest[start+2+end+2:]
	}
	if rest != "" {
		spans = append(spans, Span{Text: rest})
	}
	return spans
}

// RenderContent formats response text for the terminal: paragraphs are
// separated by blank lines, lines by single newlines, and bold spans
// are emphasized with the delimiters stripped.
func RenderContent(text string) string {
	paragraphs := strings.Split(text, "\n\n")
	rendered := make([]string, 0, len(paragraphs))
	for _, paragraph := range paragraphs {
		var out strings.Builder
		for i, line := range strings.Split(paragraph, "\n") {
			if i > 0 {
				out.WriteString("\n")
			}
			for _, span := range SplitSpans(line) {
				if span.Bold {
					out.WriteString(boldStyle.Render(span.Text))
				} else {
					out.WriteString(span.Text)
				}
			}
		}
		rendered = append(rendered, out.String())
	}
	return strings.Join(rendered, "\n\n")
}
