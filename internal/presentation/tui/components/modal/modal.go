// Package modal provides modal dialog components.
package modal

import (
	"github.com/charmbracelet/lipgloss"
)

// Kind represents the type of modal.
type Kind int

const (
	// None indicates no modal.
	None Kind = iota
	// Help shows the full key help.
	Help
	// Quit asks for quit confirmation.
	Quit
	// Error shows a load failure message.
	Error
)

const errorModalWidth = 48

// Props defines the properties for the modal component.
type Props struct {
	Visible bool
	Kind    Kind
	Title   string
	Body    string
	Width   int
	Height  int
}

// Render renders the modal centered in the given area.
func Render(p Props) string {
	if !p.Visible {
		return ""
	}

	borderColor := lipgloss.Color("63")
	style := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		Padding(1, 2)

	body := p.Body
	switch p.Kind {
	case Error:
		borderColor = lipgloss.Color("196")
		style = style.Width(min(errorModalWidth, max(p.Width-4, 20)))
		if p.Title != "" {
			body = lipgloss.NewStyle().Bold(true).Foreground(borderColor).Render(p.Title) + "\n\n" + body
		}
	case Quit:
		borderColor = lipgloss.Color("205")
	}

	content := style.BorderForeground(borderColor).Render(body)
	return lipgloss.Place(p.Width, p.Height, lipgloss.Center, lipgloss.Center, content)
}
