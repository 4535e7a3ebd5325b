package update

import (
	"context"
	"sync"
	"testing"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/mock"

	"github.com/tesso57/postfeed/internal/application/settings"
	"github.com/tesso57/postfeed/internal/application/viewstate"
	"github.com/tesso57/postfeed/internal/domain/post"
	"github.com/tesso57/postfeed/internal/presentation/tui/state"
	"github.com/tesso57/postfeed/internal/presentation/tui/textutil"
)

type stubPosts struct {
	mock.Mock
	posts  []post.Summary
	detail post.Detail
	err    error
}

func (s *stubPosts) ListPosts(ctx context.Context) ([]post.Summary, error) {
	if len(s.ExpectedCalls) > 0 {
		args := s.Called(ctx)
		posts, _ := args.Get(0).([]post.Summary)
		return posts, args.Error(1)
	}
	return s.posts, s.err
}

func (s *stubPosts) GetPost(ctx context.Context, id int) (post.Detail, error) {
	if len(s.ExpectedCalls) > 0 {
		args := s.Called(ctx, id)
		detail, _ := args.Get(0).(post.Detail)
		return detail, args.Error(1)
	}
	d := s.detail
	d.ID = id
	return d, s.err
}

type stubImages struct {
	mu       sync.Mutex
	rendered string
	err      error
	urls     []string
}

func (s *stubImages) Load(_ context.Context, url string, _, _ int) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.urls = append(s.urls, url)
	return s.rendered, s.err
}

func samplePosts() []post.Summary {
	return []post.Summary{
		{ID: 1, PublishedAt: 1700000000, Title: "First", PreviewText: "short", LikeCount: 3},
		{ID: 2, PublishedAt: 1700086400, Title: "Second", PreviewText: "one two three four five six seven eight nine ten eleven twelve", LikeCount: 42},
		{ID: 3, PublishedAt: 1700172800, Title: "Third", PreviewText: "tiny", LikeCount: 0},
	}
}

func defaultKeyMapConfig() settings.KeyMapConfig {
	return settings.KeyMapConfig{
		Up: "k,up", Down: "j,down", Top: "g", Bottom: "G",
		Open: "enter,l", Back: "esc,h", Expand: "e,space",
		Refresh: "r", OpenImage: "o", Quit: "q,ctrl+c",
	}
}

func newTestState(posts viewstate.PostLister) *state.ModelState {
	vp := viewport.New(0, 0)
	st := &state.ModelState{
		Session:       state.FeedView,
		Viewport:      vp,
		Help:          help.New(),
		Spinner:       spinner.New(),
		Keys:          state.NewKeyMap(defaultKeyMapConfig()),
		Styles:        state.NewStyles(settings.ThemeConfig{Accent: "63", Muted: "244"}),
		FallbackWidth: 80,
	}
	st.Feed = viewstate.NewFeed(posts, viewstate.FeedOptions{Measurer: textutil.CellMeasurer{}})
	st.Feed.Subscribe(ErrorSubscriber(st))
	return st
}

// drain runs cmd and every command it batches, returning the leaf messages.
func drain(t *testing.T, cmd tea.Cmd) []tea.Msg {
	t.Helper()
	if cmd == nil {
		return nil
	}
	msg := cmd()
	batch, ok := msg.(tea.BatchMsg)
	if !ok {
		return []tea.Msg{msg}
	}
	var out []tea.Msg
	for _, c := range batch {
		out = append(out, drain(t, c)...)
	}
	return out
}

// deliver feeds load messages produced by cmd back into the state, the way
// the program loop would, and returns follow-up commands.
func deliver(t *testing.T, s *state.ModelState, cmd tea.Cmd, deps Deps) []tea.Cmd {
	t.Helper()
	var next []tea.Cmd
	for _, msg := range drain(t, cmd) {
		switch msg := msg.(type) {
		case FeedLoadedMsg:
			HandleFeedLoadedMsg(s, msg)
		case DetailLoadedMsg:
			if c := HandleDetailLoadedMsg(s, msg, deps); c != nil {
				next = append(next, c)
			}
		case ImageLoadedMsg:
			HandleImageLoadedMsg(s, msg)
		}
	}
	return next
}

func keyRunes(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}
