// Package state holds UI state types for the TUI.
package state

import (
	"context"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"

	"github.com/tesso57/postfeed/internal/application/viewstate"
)

// ImagePreview is the rendered thumbnail of the open post's image.
type ImagePreview struct {
	URL      string
	Rendered string
	Err      error
	Loading  bool
}

// RowSpan records which content lines a feed row occupies.
type RowSpan struct {
	Start int
	End   int
}

// ModelState holds the presentation state for the TUI.
type ModelState struct {
	Session       Session
	Previous      Session
	Viewport      viewport.Model
	Help          help.Model
	Spinner       spinner.Model
	Keys          KeyMap
	Styles        Styles
	Width         int
	Height        int
	FallbackWidth int

	Feed      *viewstate.Feed
	Cursor    int
	RowSpans  []RowSpan
	FeedReady bool

	Detail *viewstate.Detail
	// DetailCtx scopes the open post's requests; cancelled on leaving it.
	DetailCtx    context.Context
	DetailCancel context.CancelFunc
	Image        ImagePreview

	// ErrorMessage is shown in a modal until dismissed.
	ErrorMessage  string
	StatusMessage string
}

// Loading reports whether the visible screen waits for its first data.
func (s *ModelState) Loading() bool {
	switch s.Session {
	case DetailView:
		if s.Detail == nil {
			return false
		}
		_, ok := s.Detail.Display()
		return !ok && s.Detail.Loading()
	default:
		return s.Feed != nil && s.Feed.Loading()
	}
}
