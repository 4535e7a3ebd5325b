package presenter

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tesso57/postfeed/internal/application/settings"
	"github.com/tesso57/postfeed/internal/application/viewstate"
	"github.com/tesso57/postfeed/internal/domain/post"
	"github.com/tesso57/postfeed/internal/presentation/tui/state"
	"github.com/tesso57/postfeed/internal/presentation/tui/textutil"
)

type fixedLister []post.Summary

func (l fixedLister) ListPosts(context.Context) ([]post.Summary, error) {
	return l, nil
}

func testStyles() state.Styles {
	return state.NewStyles(settings.ThemeConfig{Accent: "63", Muted: "244"})
}

func TestRenderRow_CollapsedShowsExpandControl(t *testing.T) {
	row := viewstate.RowViewState{
		Title:             "Hello",
		Body:              "one two three four five six seven eight nine ten",
		BodyMaxLines:      2,
		LikeCountText:     "42",
		DateText:          "14 Jan 2026",
		ShowExpandControl: true,
		ExpandLabel:       "Expand",
	}

	out := ansi.Strip(RenderRow(row, false, 12, testStyles()))

	assert.Contains(t, out, "Hello")
	assert.Contains(t, out, "♥ 42")
	assert.Contains(t, out, "14 Jan 2026")
	assert.Contains(t, out, "Expand")
	assert.Contains(t, out, "…")
	assert.NotContains(t, out, "ten")
}

func TestRenderRow_UncappedWithoutControl(t *testing.T) {
	row := viewstate.RowViewState{
		Title:         "Short",
		Body:          "tiny",
		LikeCountText: "0",
		DateText:      "01 Jan 1970",
	}

	out := ansi.Strip(RenderRow(row, true, 40, testStyles()))

	assert.Contains(t, out, "tiny")
	assert.NotContains(t, out, "Expand")
	assert.NotContains(t, out, "Collapse")
	for _, line := range strings.Split(out, "\n") {
		assert.LessOrEqual(t, ansi.StringWidth(line), 40)
	}
}

func TestRenderRow_ExpandedShowsWholeBody(t *testing.T) {
	row := viewstate.RowViewState{
		Title:             "Hello",
		Body:              "one two three four five six seven eight nine ten",
		LikeCountText:     "1",
		ShowExpandControl: true,
		IsExpanded:        true,
		ExpandLabel:       "Collapse",
	}

	out := ansi.Strip(RenderRow(row, false, 12, testStyles()))
	assert.Contains(t, out, "ten")
	assert.Contains(t, out, "Collapse")
}

func TestRenderDetail(t *testing.T) {
	display := viewstate.DetailDisplay{
		Title:         "Post title",
		Description:   "Full body text",
		DateText:      "14 January 2026",
		LikeCountText: "42",
		ImageURL:      "https://example.com/a.png",
	}
	st := testStyles()

	tests := []struct {
		name string
		img  state.ImagePreview
		want string
	}{
		{"loading", state.ImagePreview{Loading: true}, imageLoadingText},
		{"failed", state.ImagePreview{Err: errors.New("boom")}, imagePlaceholderText},
		{"rendered", state.ImagePreview{Rendered: "[THUMB]"}, "[THUMB]"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := ansi.Strip(RenderDetail(display, tt.img, 40, st))
			assert.Contains(t, out, "Post title")
			assert.Contains(t, out, "14 January 2026")
			assert.Contains(t, out, "♥ 42")
			assert.Contains(t, out, "Full body text")
			assert.Contains(t, out, tt.want)
		})
	}

	display.ImageURL = ""
	out := RenderDetail(display, state.ImagePreview{}, 40, st)
	assert.NotContains(t, out, imagePlaceholderText)
}

func TestRenderRow_ControlMatchesRenderedBody(t *testing.T) {
	const width = 42
	feed := viewstate.NewFeed(fixedLister{
		{ID: 1, Title: "Padded", PreviewText: "short text\n\n"},
		{ID: 2, Title: "Long", PreviewText: strings.Repeat("word ", 30)},
	}, viewstate.FeedOptions{Measurer: textutil.CellMeasurer{}})
	require.True(t, feed.Apply(feed.Fetch(feed.Request(context.Background()))))

	padded, err := feed.RowViewState(0, BodyWidth(width))
	require.NoError(t, err)
	assert.False(t, padded.ShowExpandControl)
	out := ansi.Strip(RenderRow(padded, false, width, testStyles()))
	assert.Contains(t, out, "short text")
	assert.NotContains(t, out, "Expand")

	long, err := feed.RowViewState(1, BodyWidth(width))
	require.NoError(t, err)
	assert.True(t, long.ShowExpandControl)
	assert.Contains(t, ansi.Strip(RenderRow(long, false, width, testStyles())), "Expand")
}
