package tui

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/mock"

	"github.com/tesso57/postfeed/internal/application/settings"
	"github.com/tesso57/postfeed/internal/domain/post"
)

type stubPostSource struct {
	mock.Mock
	posts  []post.Summary
	detail post.Detail
	err    error
}

func (s *stubPostSource) ListPosts(ctx context.Context) ([]post.Summary, error) {
	if len(s.ExpectedCalls) > 0 {
		args := s.Called(ctx)
		posts, _ := args.Get(0).([]post.Summary)
		return posts, args.Error(1)
	}
	return s.posts, s.err
}

func (s *stubPostSource) GetPost(ctx context.Context, id int) (post.Detail, error) {
	if len(s.ExpectedCalls) > 0 {
		args := s.Called(ctx, id)
		detail, _ := args.Get(0).(post.Detail)
		return detail, args.Error(1)
	}
	d := s.detail
	d.ID = id
	return d, s.err
}

type stubImageLoader struct {
	mock.Mock
}

func (s *stubImageLoader) Load(ctx context.Context, url string, w, h int) (string, error) {
	args := s.Called(ctx, url, w, h)
	return args.String(0), args.Error(1)
}

func testSettings() settings.Settings {
	return settings.Settings{
		API: settings.APIConfig{BaseURL: settings.DefaultBaseURL},
		KeyMap: settings.KeyMapConfig{
			Up: "k,up", Down: "j,down", Top: "g", Bottom: "G",
			Open: "enter,l", Back: "esc,h", Expand: "e,space",
			Refresh: "r", OpenImage: "o", Quit: "q,ctrl+c",
		},
		Theme:  settings.ThemeConfig{Accent: "63", Muted: "244"},
		Layout: settings.LayoutConfig{FallbackWidth: 80, PreviewLines: 2},
	}
}

func samplePosts() []post.Summary {
	return []post.Summary{
		{ID: 1, PublishedAt: 1700000000, Title: "Hello world", PreviewText: "A short preview", LikeCount: 7},
		{ID: 2, PublishedAt: 1700086400, Title: "Long one", PreviewText: "lorem ipsum dolor sit amet consectetur adipiscing elit sed do eiusmod tempor incididunt ut labore", LikeCount: 42},
	}
}

// pump runs cmd, feeds every resulting message back into m and repeats with
// the commands Update returns, the way the program loop would.
func pump(t *testing.T, m *Model, cmd tea.Cmd) {
	t.Helper()
	queue := []tea.Cmd{cmd}
	for steps := 0; len(queue) > 0; steps++ {
		if steps > 50 {
			t.Fatal("command queue did not settle")
		}
		next := queue[0]
		queue = queue[1:]
		if next == nil {
			continue
		}
		switch msg := next().(type) {
		case tea.BatchMsg:
			queue = append(queue, msg...)
		case tea.QuitMsg, nil:
		default:
			if isSpinnerTick(msg) {
				continue
			}
			_, follow := m.Update(msg)
			queue = append(queue, follow)
		}
	}
}

func keyRunes(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}
