package state

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
)

// FooterText returns the footer content for the current session.
func FooterText(session Session, loading bool, status, helpText string) string {
	status = strings.TrimSpace(status)
	if !loading && status != "" && (session == FeedView || session == DetailView) {
		if helpText == "" {
			return status
		}
		return status + "\n" + helpText
	}
	return helpText
}

// FooterHelpText renders the short help as two lines: actions, then movement.
func FooterHelpText(h help.Model, keys KeyMap) string {
	actions := h.ShortHelpView(keys.ShortHelp())
	movement := h.ShortHelpView([]key.Binding{keys.Up, keys.Down, keys.Refresh, keys.OpenImage})
	return actions + "\n" + movement
}
