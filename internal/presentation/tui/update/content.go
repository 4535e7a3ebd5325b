package update

import (
	"log/slog"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/tesso57/postfeed/internal/presentation/tui/metrics"
	"github.com/tesso57/postfeed/internal/presentation/tui/presenter"
	"github.com/tesso57/postfeed/internal/presentation/tui/state"
)

const emptyFeedText = "No posts yet. Press r to reload."

// RefreshFeedViewport renders every feed row into the viewport and keeps the
// selected row in view.
func RefreshFeedViewport(s *state.ModelState) {
	if s.Feed == nil {
		return
	}
	content, spans := buildFeedContent(s)
	s.RowSpans = spans
	s.Viewport.SetContent(content)
	ensureCursorVisible(s)
}

// RefreshDetailViewport renders the open post. top scrolls back to the start.
func RefreshDetailViewport(s *state.ModelState, top bool) {
	display, ok := detailDisplay(s)
	if !ok {
		s.Viewport.SetContent("")
		return
	}
	s.Viewport.SetContent(presenter.RenderDetail(display, s.Image, contentWidth(s), s.Styles))
	if top {
		s.Viewport.GotoTop()
	}
}

func buildFeedContent(s *state.ModelState) (string, []state.RowSpan) {
	rows := s.Feed.RowCount()
	if rows == 0 {
		if s.FeedReady {
			return s.Styles.Muted.Render(emptyFeedText), nil
		}
		return "", nil
	}

	width := contentWidth(s)
	var b strings.Builder
	spans := make([]state.RowSpan, 0, rows)
	line := 0
	for i := 0; i < rows; i++ {
		row, err := s.Feed.RowViewState(i, presenter.BodyWidth(width))
		if err != nil {
			slog.Debug("row view state failed", "index", i, "error", err)
			break
		}
		rendered := presenter.RenderRow(row, i == s.Cursor, width, s.Styles)
		if i > 0 {
			b.WriteString("\n" + strings.Repeat("\n", metrics.RowSpacing))
			line += metrics.RowSpacing
		}
		height := lipgloss.Height(rendered)
		spans = append(spans, state.RowSpan{Start: line, End: line + height - 1})
		b.WriteString(rendered)
		line += height
	}
	return b.String(), spans
}

func ensureCursorVisible(s *state.ModelState) {
	if s.Cursor < 0 || s.Cursor >= len(s.RowSpans) || s.Viewport.Height <= 0 {
		return
	}
	span := s.RowSpans[s.Cursor]
	top := s.Viewport.YOffset
	bottom := top + s.Viewport.Height - 1

	switch {
	case span.Start < top:
		s.Viewport.SetYOffset(span.Start)
	case span.End > bottom:
		// Rows taller than the viewport stay pinned to their first line.
		s.Viewport.SetYOffset(min(span.End-s.Viewport.Height+1, span.Start))
	}
}
