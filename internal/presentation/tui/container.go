// Package tui provides the main user interface model and view components.
package tui

import (
	"fmt"

	"github.com/tesso57/postfeed/internal/presentation/tui/components/header"
	mainview "github.com/tesso57/postfeed/internal/presentation/tui/components/main"
	"github.com/tesso57/postfeed/internal/presentation/tui/components/modal"
	"github.com/tesso57/postfeed/internal/presentation/tui/metrics"
	"github.com/tesso57/postfeed/internal/presentation/tui/state"
	"github.com/tesso57/postfeed/internal/presentation/tui/textutil"
	"github.com/tesso57/postfeed/internal/presentation/tui/view"
)

const (
	feedTitle        = "Posts"
	errorModalTitle  = "Error"
	errorDismissHint = "(enter to dismiss)"
)

func (m *Model) buildProps() view.Props {
	return view.Props{
		Header: m.buildHeaderProps(),
		Main:   m.buildMainProps(),
		Modal:  m.buildModalProps(),
		Footer: m.buildFooterProps(),
	}
}

func (m *Model) buildHeaderProps() header.Props {
	width := m.state.Width
	if width <= 0 {
		width = m.state.FallbackWidth
	}

	var title, subtitle string
	switch m.state.Session {
	case state.DetailView:
		title, subtitle = m.detailHeader()
	default:
		title = feedTitle
		subtitle = m.feedSubtitle()
	}

	return header.Props{
		Visible:  true,
		Title:    headerLine(title, width),
		Subtitle: headerLine(subtitle, width),
		Accent:   m.settings.Theme.Accent,
		Muted:    m.settings.Theme.Muted,
	}
}

func (m *Model) feedSubtitle() string {
	feed := m.state.Feed
	switch {
	case feed.Loading():
		return "Refreshing..."
	case feed.RowCount() == 1:
		return "1 post"
	default:
		return fmt.Sprintf("%d posts", feed.RowCount())
	}
}

func (m *Model) detailHeader() (string, string) {
	if m.state.Detail == nil {
		return "", ""
	}
	subtitle := fmt.Sprintf("Post #%d", m.state.Detail.RequestedID())
	display, ok := m.state.Detail.Display()
	if !ok {
		return subtitle, ""
	}
	if display.ImageURL != "" {
		subtitle = fmt.Sprintf("%s  ·  image: %s", subtitle, display.ImageURL)
	}
	return display.Title, subtitle
}

func (m *Model) buildMainProps() mainview.Props {
	var body string
	if m.state.Loading() {
		message := "Loading posts..."
		if m.state.Session == state.DetailView {
			message = "Loading post..."
		}
		body = fmt.Sprintf("\n\n   %s %s", m.state.Spinner.View(), message)
	} else {
		body = m.state.Viewport.View()
	}

	return mainview.Props{
		Width:  m.state.Width,
		Height: m.state.Viewport.Height + metrics.HeaderLines,
		Body:   body,
	}
}

func (m *Model) buildModalProps() modal.Props {
	if m.state.ErrorMessage != "" {
		return modal.Props{
			Visible: true,
			Kind:    modal.Error,
			Title:   errorModalTitle,
			Body:    m.state.ErrorMessage + "\n\n" + errorDismissHint,
			Width:   m.state.Width,
			Height:  m.state.Height,
		}
	}
	if m.state.Session == state.QuitView {
		return modal.Props{
			Visible: true,
			Kind:    modal.Quit,
			Body:    "Are you sure you want to quit?\n\n(y/n)",
			Width:   m.state.Width,
			Height:  m.state.Height,
		}
	}
	if m.state.Help.ShowAll {
		return modal.Props{
			Visible: true,
			Kind:    modal.Help,
			Body:    m.state.Help.View(&m.state.Keys),
			Width:   m.state.Width,
			Height:  m.state.Height,
		}
	}
	return modal.Props{Visible: false}
}

func (m *Model) buildFooterProps() string {
	helpText := state.FooterHelpText(m.state.Help, m.state.Keys)
	return state.FooterText(m.state.Session, m.state.Loading(), m.state.StatusMessage, helpText)
}

func headerLine(text string, width int) string {
	return textutil.Truncate(textutil.SingleLine(text), width)
}
