// Package update holds UI update logic for the TUI.
package update

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/tesso57/postfeed/internal/application/viewstate"
	"github.com/tesso57/postfeed/internal/presentation/tui/intent"
	"github.com/tesso57/postfeed/internal/presentation/tui/metrics"
	"github.com/tesso57/postfeed/internal/presentation/tui/state"
)

// ImageLoader renders a post image into a w x h cell thumbnail.
type ImageLoader interface {
	Load(ctx context.Context, url string, w, h int) (string, error)
}

// Deps groups external dependencies for updates.
type Deps struct {
	Posts       viewstate.PostGetter
	Images      ImageLoader
	Location    *time.Location
	Context     context.Context
	OpenBrowser func(string) error
}

func (d Deps) ctx() context.Context {
	if d.Context == nil {
		return context.Background()
	}
	return d.Context
}

// FeedLoadedMsg is emitted after fetching the post list.
type FeedLoadedMsg struct {
	Result viewstate.FeedResult
}

// DetailLoadedMsg is emitted after fetching one post detail. Detail is the
// model that issued the request, which may have been closed since.
type DetailLoadedMsg struct {
	Detail *viewstate.Detail
	Result viewstate.DetailResult
}

// ImageLoadedMsg is emitted after rendering a post image.
type ImageLoadedMsg struct {
	URL      string
	Rendered string
	Err      error
}

// FetchFeedCmd runs the fetch for req off the UI goroutine.
func FetchFeedCmd(feed *viewstate.Feed, req viewstate.Request) tea.Cmd {
	return func() tea.Msg {
		return FeedLoadedMsg{Result: feed.Fetch(req)}
	}
}

// FetchDetailCmd runs the fetch for req off the UI goroutine.
func FetchDetailCmd(detail *viewstate.Detail, req viewstate.Request) tea.Cmd {
	return func() tea.Msg {
		return DetailLoadedMsg{Detail: detail, Result: detail.Fetch(req)}
	}
}

// LoadImageCmd fetches and renders a post image.
func LoadImageCmd(ctx context.Context, loader ImageLoader, url string, w, h int) tea.Cmd {
	return func() tea.Msg {
		rendered, err := loader.Load(ctx, url, w, h)
		return ImageLoadedMsg{URL: url, Rendered: rendered, Err: err}
	}
}

// StartFeedLoad issues a new feed request superseding any in flight.
func StartFeedLoad(s *state.ModelState, deps Deps) tea.Cmd {
	if s.Feed == nil {
		return nil
	}
	req := s.Feed.Request(deps.ctx())
	return tea.Batch(s.Spinner.Tick, FetchFeedCmd(s.Feed, req))
}

// HandleKeyMsg routes a key press. The bool reports whether it was consumed.
func HandleKeyMsg(s *state.ModelState, msg tea.KeyMsg, deps Deps) (tea.Cmd, bool) {
	if s.ErrorMessage != "" {
		return handleErrorModal(s, msg)
	}
	if s.Session == state.QuitView {
		return handleQuitView(s, msg)
	}

	parsed := intent.FromKeyMsg(msg, s.Keys)
	if parsed.Type == intent.Quit {
		s.Previous = s.Session
		s.Session = state.QuitView
		return nil, true
	}
	if parsed.Type == intent.ToggleHelp {
		s.Help.ShowAll = !s.Help.ShowAll
		UpdateLayout(s)
		return nil, true
	}
	if s.Help.ShowAll && parsed.Type == intent.Back {
		s.Help.ShowAll = false
		UpdateLayout(s)
		return nil, true
	}

	switch s.Session {
	case state.FeedView:
		return handleFeedViewIntent(s, parsed, deps)
	case state.DetailView:
		return handleDetailViewIntent(s, parsed, deps)
	default:
		return nil, false
	}
}

// HandleWindowSize records the terminal size and relays out content.
func HandleWindowSize(s *state.ModelState, msg tea.WindowSizeMsg) {
	s.Width = msg.Width
	s.Height = msg.Height

	UpdateLayout(s)
}

// HandleFeedLoadedMsg applies a finished list fetch to the feed model.
func HandleFeedLoadedMsg(s *state.ModelState, msg FeedLoadedMsg) {
	if s.Feed == nil || !s.Feed.Apply(msg.Result) {
		return
	}
	if msg.Result.Err != nil {
		return
	}
	s.FeedReady = true
	s.Cursor = clampCursor(s.Cursor, s.Feed.RowCount())
	s.StatusMessage = fmt.Sprintf("Loaded %d posts", s.Feed.RowCount())
	RefreshFeedViewport(s)
}

// HandleDetailLoadedMsg applies a finished detail fetch and starts the
// image load when the post has an image.
func HandleDetailLoadedMsg(s *state.ModelState, msg DetailLoadedMsg, deps Deps) tea.Cmd {
	if msg.Detail == nil || !msg.Detail.Apply(msg.Result) {
		return nil
	}
	if msg.Detail != s.Detail || msg.Result.Err != nil {
		return nil
	}
	display, ok := s.Detail.Display()
	if !ok {
		return nil
	}

	var cmd tea.Cmd
	s.Image = state.ImagePreview{URL: display.ImageURL}
	if display.ImageURL != "" && deps.Images != nil {
		s.Image.Loading = true
		w, h := imageSize(s)
		cmd = LoadImageCmd(detailContext(s, deps), deps.Images, display.ImageURL, w, h)
	}
	RefreshDetailViewport(s, true)
	return cmd
}

// HandleImageLoadedMsg stores a rendered thumbnail for the open post.
func HandleImageLoadedMsg(s *state.ModelState, msg ImageLoadedMsg) {
	if s.Session != state.DetailView || s.Image.URL != msg.URL {
		return
	}
	if msg.Err != nil {
		slog.Debug("image preview failed", "url", msg.URL, "error", msg.Err)
	}
	s.Image = state.ImagePreview{URL: msg.URL, Rendered: msg.Rendered, Err: msg.Err}
	RefreshDetailViewport(s, false)
}

func handleErrorModal(s *state.ModelState, msg tea.KeyMsg) (tea.Cmd, bool) {
	switch msg.String() {
	case "enter", "esc":
		s.ErrorMessage = ""
	case "ctrl+c":
		return tea.Quit, true
	}
	return nil, true
}

func handleQuitView(s *state.ModelState, msg tea.KeyMsg) (tea.Cmd, bool) {
	switch msg.String() {
	case "y", "Y", "ctrl+c":
		return tea.Quit, true
	case "n", "N", "esc", "q", "Q":
		s.Session = s.Previous
		return nil, true
	}
	return nil, true
}

func handleFeedViewIntent(s *state.ModelState, in intent.Intent, deps Deps) (tea.Cmd, bool) {
	rows := 0
	if s.Feed != nil {
		rows = s.Feed.RowCount()
	}
	switch in.Type {
	case intent.Up:
		moveCursor(s, s.Cursor-1, rows)
		return nil, true
	case intent.Down:
		moveCursor(s, s.Cursor+1, rows)
		return nil, true
	case intent.Top:
		moveCursor(s, 0, rows)
		return nil, true
	case intent.Bottom:
		moveCursor(s, rows-1, rows)
		return nil, true
	case intent.Expand:
		if rows == 0 {
			return nil, true
		}
		if err := s.Feed.ToggleExpansion(s.Cursor); err != nil {
			slog.Debug("toggle expansion failed", "index", s.Cursor, "error", err)
			return nil, true
		}
		RefreshFeedViewport(s)
		return nil, true
	case intent.Open:
		if rows == 0 {
			return nil, true
		}
		return openDetail(s, deps), true
	case intent.Refresh:
		s.StatusMessage = ""
		return StartFeedLoad(s, deps), true
	}
	return nil, false
}

func handleDetailViewIntent(s *state.ModelState, in intent.Intent, deps Deps) (tea.Cmd, bool) {
	switch in.Type {
	case intent.Back:
		closeDetail(s)
		s.Session = state.FeedView
		RefreshFeedViewport(s)
		return nil, true
	case intent.Refresh:
		if s.Detail == nil {
			return nil, true
		}
		req := s.Detail.Request(detailContext(s, deps))
		return tea.Batch(s.Spinner.Tick, FetchDetailCmd(s.Detail, req)), true
	case intent.OpenImage:
		if display, ok := detailDisplay(s); ok && display.ImageURL != "" && deps.OpenBrowser != nil {
			if err := deps.OpenBrowser(display.ImageURL); err != nil {
				s.StatusMessage = fmt.Sprintf("Could not open image: %v", err)
			} else {
				s.StatusMessage = "Opened image in browser"
			}
		}
		return nil, true
	case intent.Top:
		s.Viewport.GotoTop()
		return nil, true
	case intent.Bottom:
		s.Viewport.GotoBottom()
		return nil, true
	}
	// Up/Down fall through to the viewport.
	return nil, false
}

func openDetail(s *state.ModelState, deps Deps) tea.Cmd {
	p, err := s.Feed.PostAt(s.Cursor)
	if err != nil {
		slog.Debug("open detail failed", "index", s.Cursor, "error", err)
		return nil
	}
	closeDetail(s)

	ctx, cancel := context.WithCancel(deps.ctx())
	s.DetailCtx, s.DetailCancel = ctx, cancel
	s.Detail = viewstate.NewDetail(deps.Posts, p.ID, deps.Location)
	s.Detail.Subscribe(ErrorSubscriber(s))
	s.Image = state.ImagePreview{}
	s.Session = state.DetailView
	s.StatusMessage = ""
	s.Viewport.SetContent("")
	s.Viewport.GotoTop()

	req := s.Detail.Request(ctx)
	return tea.Batch(s.Spinner.Tick, FetchDetailCmd(s.Detail, req))
}

func closeDetail(s *state.ModelState) {
	if s.DetailCancel != nil {
		s.DetailCancel()
		s.DetailCtx, s.DetailCancel = nil, nil
	}
	if s.Detail != nil {
		s.Detail.Close()
		s.Detail = nil
	}
	s.Image = state.ImagePreview{}
}

// ErrorSubscriber routes load failures to the error modal.
func ErrorSubscriber(s *state.ModelState) viewstate.Subscriber {
	return viewstate.SubscriberFuncs{
		OnError: func(message string) {
			s.ErrorMessage = message
		},
	}
}

func detailContext(s *state.ModelState, deps Deps) context.Context {
	if s.DetailCtx != nil {
		return s.DetailCtx
	}
	return deps.ctx()
}

func detailDisplay(s *state.ModelState) (viewstate.DetailDisplay, bool) {
	if s.Detail == nil {
		return viewstate.DetailDisplay{}, false
	}
	return s.Detail.Display()
}

func moveCursor(s *state.ModelState, target, rows int) {
	next := clampCursor(target, rows)
	if next == s.Cursor {
		return
	}
	s.Cursor = next
	RefreshFeedViewport(s)
}

func clampCursor(cursor, rows int) int {
	if rows <= 0 {
		return 0
	}
	return min(max(cursor, 0), rows-1)
}

func imageSize(s *state.ModelState) (int, int) {
	w := min(contentWidth(s), metrics.ImageMaxWidth)
	w = max(w, metrics.ImageMinWidth)
	return w, w / 2
}
