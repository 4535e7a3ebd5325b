package mainview

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestRender(t *testing.T) {
	props := Props{
		Width:  40,
		Height: 10,
		Header: "HEADER",
		Body:   "BODY",
	}

	got := Render(props)

	if !strings.Contains(got, "HEADER") {
		t.Error("Missing header")
	}
	if !strings.Contains(got, "BODY") {
		t.Error("Missing body")
	}
	if h := lipgloss.Height(got); h != 10 {
		t.Errorf("height = %d, want 10", h)
	}
}

func TestRender_HeaderOnly(t *testing.T) {
	got := Render(Props{Header: "HEADER"})
	if strings.TrimSpace(got) != "HEADER" {
		t.Errorf("Render() = %q", got)
	}
}
