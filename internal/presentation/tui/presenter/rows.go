// Package presenter turns derived view state into styled terminal text.
package presenter

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/tesso57/postfeed/internal/application/viewstate"
	"github.com/tesso57/postfeed/internal/presentation/tui/metrics"
	"github.com/tesso57/postfeed/internal/presentation/tui/state"
	"github.com/tesso57/postfeed/internal/presentation/tui/textutil"
)

// BodyWidth is the width a row body wraps at inside a feed of the given width.
func BodyWidth(width int) int {
	return max(width-metrics.RowGutterWidth, 1)
}

// RenderRow renders one feed card. width is the full feed width.
func RenderRow(row viewstate.RowViewState, selected bool, width int, st state.Styles) string {
	inner := BodyWidth(width)

	titleStyle := st.Title
	if selected {
		titleStyle = st.Selected
	}
	lines := []string{titleStyle.Render(textutil.Wrap(textutil.SingleLine(row.Title), inner))}

	if row.Body != "" {
		wrapped := textutil.Wrap(row.Body, inner)
		if row.BodyMaxLines > 0 {
			wrapped = textutil.ClampLines(wrapped, row.BodyMaxLines)
		}
		lines = append(lines, wrapped)
	}
	lines = append(lines, metaLine(row, st))

	gutter := lipgloss.NewStyle().PaddingLeft(metrics.RowGutterWidth)
	if selected {
		gutter = lipgloss.NewStyle().
			Border(lipgloss.ThickBorder(), false, false, false, true).
			BorderForeground(st.Selected.GetForeground()).
			PaddingLeft(metrics.RowGutterWidth - 1)
	}
	return gutter.Render(strings.Join(lines, "\n"))
}

func metaLine(row viewstate.RowViewState, st state.Styles) string {
	parts := []string{
		st.Accent.Render("♥ " + row.LikeCountText),
		st.Muted.Render(row.DateText),
	}
	if row.ShowExpandControl {
		parts = append(parts, st.Button.Render(row.ExpandLabel))
	}
	return strings.Join(parts, "  ")
}
