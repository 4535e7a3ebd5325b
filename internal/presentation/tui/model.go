package tui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/tesso57/postfeed/internal/application/settings"
	"github.com/tesso57/postfeed/internal/application/viewstate"
	"github.com/tesso57/postfeed/internal/presentation/tui/metrics"
	"github.com/tesso57/postfeed/internal/presentation/tui/state"
	"github.com/tesso57/postfeed/internal/presentation/tui/textutil"
	"github.com/tesso57/postfeed/internal/presentation/tui/update"
	"github.com/tesso57/postfeed/internal/presentation/tui/view"
)

// PostSource loads the feed and single posts.
type PostSource interface {
	viewstate.PostLister
	viewstate.PostGetter
}

// Model represents the main application state.
type Model struct {
	settings settings.Settings
	posts    PostSource
	images   update.ImageLoader
	location *time.Location
	ctx      context.Context
	cancel   context.CancelFunc
	state    *state.ModelState
}

// NewModel creates a new application model without image previews.
func NewModel(cfg settings.Settings, posts PostSource) *Model {
	return NewModelWithImages(cfg, posts, nil)
}

// NewModelWithImages creates a new application model that renders post
// images through images.
func NewModelWithImages(cfg settings.Settings, posts PostSource, images update.ImageLoader) *Model {
	ctx, cancel := context.WithCancel(context.Background())
	m := &Model{
		settings: cfg,
		posts:    posts,
		images:   images,
		location: time.Local,
		ctx:      ctx,
		cancel:   cancel,
	}
	m.state = newModelState(cfg, posts, m.location)
	return m
}

// Init starts the first feed load.
func (m *Model) Init() tea.Cmd {
	return update.StartFeedLoad(m.state, m.deps())
}

// Update handles messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		cmd, handled := update.HandleKeyMsg(m.state, msg, m.deps())
		if handled {
			update.SyncLayout(m.state)
			return m, cmd
		}
	case tea.WindowSizeMsg:
		update.HandleWindowSize(m.state, msg)
	case update.FeedLoadedMsg:
		update.HandleFeedLoadedMsg(m.state, msg)
	case update.DetailLoadedMsg:
		cmds = append(cmds, update.HandleDetailLoadedMsg(m.state, msg, m.deps()))
	case update.ImageLoadedMsg:
		update.HandleImageLoadedMsg(m.state, msg)
	}

	if m.state.Loading() {
		m.state.Spinner, cmd = m.state.Spinner.Update(msg)
		cmds = append(cmds, cmd)
	}

	if m.state.Session == state.DetailView && m.state.ErrorMessage == "" {
		m.state.Viewport, cmd = m.state.Viewport.Update(msg)
		cmds = append(cmds, cmd)
	}
	update.SyncLayout(m.state)

	return m, tea.Batch(cmds...)
}

// View renders the application view.
func (m *Model) View() string {
	return view.Render(m.buildProps())
}

// Close cancels in-flight requests and drops their results.
func (m *Model) Close() {
	m.cancel()
	if m.state.Detail != nil {
		m.state.Detail.Close()
	}
	m.state.Feed.Close()
}

func (m *Model) deps() update.Deps {
	return update.Deps{
		Posts:       m.posts,
		Images:      m.images,
		Location:    m.location,
		Context:     m.ctx,
		OpenBrowser: openBrowser,
	}
}

func newModelState(cfg settings.Settings, posts PostSource, loc *time.Location) *state.ModelState {
	st := &state.ModelState{
		Session:       state.FeedView,
		Viewport:      newViewport(),
		Help:          help.New(),
		Spinner:       newSpinner(cfg),
		Keys:          state.NewKeyMap(cfg.KeyMap),
		Styles:        state.NewStyles(cfg.Theme),
		FallbackWidth: cfg.FallbackWidth(),
	}
	st.Feed = viewstate.NewFeed(posts, viewstate.FeedOptions{
		Measurer:      textutil.CellMeasurer{},
		LineCap:       cfg.PreviewLineCap(),
		FallbackWidth: cfg.FallbackWidth(),
		Location:      loc,
	})
	st.Feed.Subscribe(update.ErrorSubscriber(st))
	return st
}

func newSpinner(cfg settings.Settings) spinner.Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color(cfg.Theme.Accent))
	return s
}

func newViewport() viewport.Model {
	vp := viewport.New(0, 0)
	vp.Style = lipgloss.NewStyle().
		PaddingLeft(metrics.ViewportPaddingX).
		PaddingRight(metrics.ViewportPaddingX)
	return vp
}
