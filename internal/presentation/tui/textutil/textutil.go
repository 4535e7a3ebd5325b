// Package textutil provides small formatting helpers for TUI text.
package textutil

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// SingleLine collapses whitespace into single spaces.
func SingleLine(text string) string {
	if text == "" {
		return ""
	}
	return strings.Join(strings.Fields(text), " ")
}

// Truncate trims a string to the given width with an ellipsis.
func Truncate(text string, width int) string {
	if width <= 0 {
		return ""
	}
	return ansi.Truncate(text, width, "...")
}

// Wrap soft-wraps text to width cells, breaking words only when they are
// wider than a line.
func Wrap(text string, width int) string {
	if width <= 0 {
		return text
	}
	return ansi.Wrap(text, width, "")
}

// CellMeasurer counts terminal lines the way the renderer lays text out.
type CellMeasurer struct{}

// LineCount returns the number of lines text occupies when wrapped at width.
func (CellMeasurer) LineCount(text string, width int) int {
	if text == "" {
		return 0
	}
	return strings.Count(Wrap(text, width), "\n") + 1
}

// ClampLines keeps the first n lines of text and marks the cut with an
// ellipsis. n <= 0 returns text unchanged.
func ClampLines(text string, n int) string {
	if n <= 0 {
		return text
	}
	lines := strings.Split(text, "\n")
	if len(lines) <= n {
		return text
	}
	lines = lines[:n]
	last := strings.TrimRight(lines[n-1], " ")
	lines[n-1] = last + "…"
	return strings.Join(lines, "\n")
}
