// Package state holds UI state types for the TUI.
package state

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"github.com/tesso57/postfeed/internal/application/settings"
)

// Session represents the current view state.
type Session int

const (
	FeedView Session = iota
	DetailView
	QuitView
)

// KeyMap defines the keybindings for the application.
type KeyMap struct {
	Up        key.Binding
	Down      key.Binding
	Top       key.Binding
	Bottom    key.Binding
	Open      key.Binding
	Back      key.Binding
	Expand    key.Binding
	Refresh   key.Binding
	OpenImage key.Binding
	Quit      key.Binding
	Help      key.Binding
}

// ShortHelp returns a subset of keybindings for the help view.
func (k *KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Help, k.Quit, k.Back, k.Open, k.Expand}
}

// FullHelp returns all keybindings for the help view.
func (k *KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Top, k.Bottom},
		{k.Open, k.Back, k.Expand},
		{k.Refresh, k.OpenImage, k.Quit, k.Help},
	}
}

// NewKeyMap creates a new KeyMap from the configuration.
func NewKeyMap(cfg settings.KeyMapConfig) KeyMap {
	return KeyMap{
		Up:        binding(cfg.Up, "up"),
		Down:      binding(cfg.Down, "down"),
		Top:       binding(cfg.Top, "top"),
		Bottom:    binding(cfg.Bottom, "bottom"),
		Open:      binding(cfg.Open, "open post"),
		Back:      binding(cfg.Back, "back"),
		Expand:    binding(cfg.Expand, "expand/collapse"),
		Refresh:   binding(cfg.Refresh, "reload"),
		OpenImage: binding(cfg.OpenImage, "open image"),
		Quit:      binding(cfg.Quit, "quit"),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "toggle help"),
		),
	}
}

func binding(keys, help string) key.Binding {
	return key.NewBinding(
		key.WithKeys(splitKeys(keys)...),
		key.WithHelp(keys, help),
	)
}

func splitKeys(keys string) []string {
	parts := strings.Split(keys, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		keyName := strings.TrimSpace(part)
		if keyName == "" {
			continue
		}
		out = append(out, keyName)
		switch keyName {
		case "space":
			out = append(out, " ")
		case "pgdn":
			out = append(out, "pgdown")
		case "pgdown":
			out = append(out, "pgdn")
		}
	}
	return out
}

// Styles holds the themed styles shared by content builders.
type Styles struct {
	Title    lipgloss.Style
	Selected lipgloss.Style
	Muted    lipgloss.Style
	Accent   lipgloss.Style
	Button   lipgloss.Style
}

// NewStyles builds styles from the theme configuration.
func NewStyles(cfg settings.ThemeConfig) Styles {
	accent := lipgloss.Color(cfg.Accent)
	muted := lipgloss.Color(cfg.Muted)
	return Styles{
		Title:    lipgloss.NewStyle().Bold(true),
		Selected: lipgloss.NewStyle().Foreground(accent).Bold(true),
		Muted:    lipgloss.NewStyle().Foreground(muted),
		Accent:   lipgloss.NewStyle().Foreground(accent),
		Button: lipgloss.NewStyle().
			Foreground(lipgloss.Color("230")).
			Background(accent).
			Padding(0, 1),
	}
}
