// Package header provides the screen header component.
package header

import (
	"github.com/charmbracelet/lipgloss"
)

// Props defines the properties for the header component.
type Props struct {
	Visible  bool
	Title    string
	Subtitle string
	Accent   string
	Muted    string
}

// Render renders the header component as two lines.
func Render(p Props) string {
	if !p.Visible {
		return ""
	}
	title := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(p.Accent)).
		Render(p.Title)
	subtitle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(p.Muted)).
		Render(p.Subtitle)
	return title + "\n" + subtitle
}
