package update

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/tesso57/postfeed/internal/application/viewstate"
	"github.com/tesso57/postfeed/internal/presentation/tui/metrics"
	"github.com/tesso57/postfeed/internal/presentation/tui/state"
)

type layoutMetrics struct {
	mainWidth  int
	mainHeight int
}

// UpdateLayout sizes the viewport to the terminal and re-renders the visible
// screen, since row overflow depends on the width.
func UpdateLayout(s *state.ModelState) {
	if s.Width > 0 && s.Height > 0 {
		layout := buildLayoutMetrics(s)
		s.Viewport.Width = layout.mainWidth
		s.Viewport.Height = layout.mainHeight
	}

	if s.Session == state.DetailView || (s.Session == state.QuitView && s.Previous == state.DetailView) {
		RefreshDetailViewport(s, false)
		return
	}
	RefreshFeedViewport(s)
}

// SyncLayout re-runs UpdateLayout when the footer grew or shrank since the
// last layout, e.g. after a status line appeared.
func SyncLayout(s *state.ModelState) {
	if s.Width <= 0 || s.Height <= 0 {
		return
	}
	layout := buildLayoutMetrics(s)
	if layout.mainWidth != s.Viewport.Width || layout.mainHeight != s.Viewport.Height {
		UpdateLayout(s)
	}
}

func buildLayoutMetrics(s *state.ModelState) layoutMetrics {
	footerHeight := footerHeight(s)
	availableHeight := clampMin(s.Height-footerHeight, 1)

	return layoutMetrics{
		mainWidth:  clampMin(s.Width, 1),
		mainHeight: clampMin(availableHeight-metrics.HeaderLines, 1),
	}
}

func footerHeight(s *state.ModelState) int {
	s.Help.Width = s.Width
	helpText := state.FooterHelpText(s.Help, s.Keys)
	return lipgloss.Height(state.FooterText(s.Session, s.Loading(), s.StatusMessage, helpText))
}

// contentWidth is the width text wraps at inside the viewport. Before the
// first resize it falls back to the configured width.
func contentWidth(s *state.ModelState) int {
	width := s.Viewport.Width - s.Viewport.Style.GetHorizontalFrameSize()
	if width > 0 {
		return width
	}
	if s.FallbackWidth > 0 {
		return s.FallbackWidth
	}
	return viewstate.DefaultFallbackWidth
}

func clampMin(value, min int) int {
	if value < min {
		return min
	}
	return value
}
