package viewstate

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/tesso57/postfeed/internal/domain/post"
)

const (
	expandLabel   = "Expand"
	collapseLabel = "Collapse"
)

// DefaultFallbackWidth is used when the host cannot report an available width.
const DefaultFallbackWidth = 80

// PostLister loads the feed.
type PostLister interface {
	ListPosts(ctx context.Context) ([]post.Summary, error)
}

// FeedOptions configures a Feed.
type FeedOptions struct {
	Measurer      TextMeasurer
	LineCap       int
	FallbackWidth int
	Location      *time.Location
}

// RowViewState is the render-ready state of one feed row.
type RowViewState struct {
	Title string
	Body  string
	// BodyMaxLines caps the rendered body; zero means unlimited.
	BodyMaxLines      int
	LikeCountText     string
	DateText          string
	ShowExpandControl bool
	IsExpanded        bool
	// ExpandLabel names the action the control performs; empty without a control.
	ExpandLabel string
}

// FeedResult carries a finished list fetch back to the owner.
type FeedResult struct {
	Request Request
	Posts   []post.Summary
	Err     error
}

// Feed holds the loaded posts and the set of expanded post ids.
type Feed struct {
	lister   PostLister
	opts     FeedOptions
	gate     loadGate
	posts    []post.Summary
	expanded map[int]struct{}
}

// NewFeed creates a feed state model.
func NewFeed(lister PostLister, opts FeedOptions) *Feed {
	if opts.LineCap <= 0 {
		opts.LineCap = DefaultLineCap
	}
	if opts.FallbackWidth <= 0 {
		opts.FallbackWidth = DefaultFallbackWidth
	}
	if opts.Location == nil {
		opts.Location = time.Local
	}
	return &Feed{
		lister:   lister,
		opts:     opts,
		expanded: make(map[int]struct{}),
	}
}

// Subscribe sets the single subscriber, replacing any previous one.
func (f *Feed) Subscribe(s Subscriber) {
	f.gate.subscriber = s
}

// Request issues a new load, superseding every earlier one.
func (f *Feed) Request(ctx context.Context) Request {
	return f.gate.next(ctx)
}

// Fetch performs the network round-trip for req. It touches no model state
// and may run on any goroutine.
func (f *Feed) Fetch(req Request) FeedResult {
	if f.lister == nil {
		return FeedResult{Request: req, Err: fmt.Errorf("post lister is not configured")}
	}
	posts, err := f.lister.ListPosts(req.Context())
	return FeedResult{Request: req, Posts: posts, Err: err}
}

// Apply stores a fetch result and notifies the subscriber. Results for a
// superseded or cancelled request, or for a closed model, are dropped and
// Apply returns false.
func (f *Feed) Apply(res FeedResult) bool {
	if !f.gate.accept(res.Request) {
		return false
	}
	if res.Err == nil {
		f.posts = append([]post.Summary(nil), res.Posts...)
		f.pruneExpanded()
	}
	f.gate.notify(res.Err)
	return true
}

// Load issues a request, fetches on a new goroutine and applies the result
// through dispatch.
func (f *Feed) Load(ctx context.Context, dispatch Dispatch) {
	req := f.Request(ctx)
	go func() {
		res := f.Fetch(req)
		dispatch(func() { f.Apply(res) })
	}()
}

// Loading reports whether the latest request has not settled yet.
func (f *Feed) Loading() bool {
	return f.gate.pending()
}

// Close marks the model dead; pending results are dropped.
func (f *Feed) Close() {
	f.gate.closed = true
	f.gate.subscriber = nil
}

// RowCount returns the number of loaded posts.
func (f *Feed) RowCount() int {
	return len(f.posts)
}

// Posts returns a copy of the loaded posts in server order.
func (f *Feed) Posts() []post.Summary {
	return append([]post.Summary(nil), f.posts...)
}

// PostAt returns the post at index.
func (f *Feed) PostAt(index int) (post.Summary, error) {
	if index < 0 || index >= len(f.posts) {
		return post.Summary{}, fmt.Errorf("post %d of %d: %w", index, len(f.posts), post.ErrIndexOutOfRange)
	}
	return f.posts[index], nil
}

// IsExpanded reports whether the post at index is expanded.
func (f *Feed) IsExpanded(index int) bool {
	p, err := f.PostAt(index)
	if err != nil {
		return false
	}
	_, ok := f.expanded[p.ID]
	return ok
}

// ToggleExpansion flips the expanded state of the post at index.
func (f *Feed) ToggleExpansion(index int) error {
	p, err := f.PostAt(index)
	if err != nil {
		return err
	}
	if _, ok := f.expanded[p.ID]; ok {
		delete(f.expanded, p.ID)
	} else {
		f.expanded[p.ID] = struct{}{}
	}
	return nil
}

// RowViewState derives the row at index for the given available width.
// A non-positive width uses the fallback width.
func (f *Feed) RowViewState(index, width int) (RowViewState, error) {
	p, err := f.PostAt(index)
	if err != nil {
		return RowViewState{}, err
	}
	if width <= 0 {
		width = f.opts.FallbackWidth
	}
	_, expanded := f.expanded[p.ID]

	// Measure the text that is rendered, so trailing blank lines cannot
	// produce a control that changes nothing.
	body := strings.TrimSpace(p.PreviewText)
	row := RowViewState{
		Title:         p.Title,
		Body:          body,
		LikeCountText: formatLikes(p.LikeCount),
		DateText:      formatRowDate(p, f.opts.Location),
		IsExpanded:    expanded,
	}
	if !WouldOverflow(f.opts.Measurer, body, width, f.opts.LineCap) {
		return row, nil
	}

	row.ShowExpandControl = true
	if expanded {
		row.ExpandLabel = collapseLabel
	} else {
		row.BodyMaxLines = f.opts.LineCap
		row.ExpandLabel = expandLabel
	}
	return row, nil
}

func (f *Feed) pruneExpanded() {
	present := make(map[int]struct{}, len(f.posts))
	for _, p := range f.posts {
		present[p.ID] = struct{}{}
	}
	for id := range f.expanded {
		if _, ok := present[id]; !ok {
			delete(f.expanded, id)
		}
	}
}
