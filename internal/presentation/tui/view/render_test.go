package view

import (
	"strings"
	"testing"

	"github.com/tesso57/postfeed/internal/presentation/tui/components/header"
	mainview "github.com/tesso57/postfeed/internal/presentation/tui/components/main"
	"github.com/tesso57/postfeed/internal/presentation/tui/components/modal"
)

func TestRender_Layout(t *testing.T) {
	got := Render(Props{
		Header: header.Props{Visible: true, Title: "Posts", Subtitle: "3 posts"},
		Main:   mainview.Props{Width: 40, Height: 6, Body: "ROWS"},
		Footer: "FOOTER",
	})

	for _, want := range []string{"Posts", "3 posts", "ROWS", "FOOTER"} {
		if !strings.Contains(got, want) {
			t.Errorf("Render() missing %q", want)
		}
	}
}

func TestRender_ModalReplacesScreen(t *testing.T) {
	got := Render(Props{
		Header: header.Props{Visible: true, Title: "Posts"},
		Main:   mainview.Props{Body: "ROWS"},
		Modal:  modal.Props{Visible: true, Kind: modal.Error, Body: "boom", Width: 60, Height: 10},
	})

	if !strings.Contains(got, "boom") {
		t.Error("modal body missing")
	}
	if strings.Contains(got, "ROWS") {
		t.Error("modal should replace the main view")
	}
}
