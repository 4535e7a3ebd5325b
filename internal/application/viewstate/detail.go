package viewstate

import (
	"context"
	"fmt"
	"time"

	"github.com/tesso57/postfeed/internal/domain/post"
)

// PostGetter loads one post detail.
type PostGetter interface {
	GetPost(ctx context.Context, id int) (post.Detail, error)
}

// DetailDisplay is the flattened record shown on the detail screen.
type DetailDisplay struct {
	Title         string
	Description   string
	DateText      string
	LikeCountText string
	ImageURL      string
}

// DetailResult carries a finished detail fetch back to the owner.
type DetailResult struct {
	Request Request
	Detail  post.Detail
	Err     error
}

// Detail holds a single loaded post detail.
type Detail struct {
	getter  PostGetter
	id      int
	loc     *time.Location
	gate    loadGate
	detail  *post.Detail
	display DetailDisplay
}

// NewDetail creates a detail state model for post id. A nil location renders
// dates in local time.
func NewDetail(getter PostGetter, id int, loc *time.Location) *Detail {
	if loc == nil {
		loc = time.Local
	}
	return &Detail{getter: getter, id: id, loc: loc}
}

// RequestedID returns the post id this model loads.
func (d *Detail) RequestedID() int {
	return d.id
}

// Subscribe sets the single subscriber, replacing any previous one.
func (d *Detail) Subscribe(s Subscriber) {
	d.gate.subscriber = s
}

// Request issues a new load, superseding every earlier one.
func (d *Detail) Request(ctx context.Context) Request {
	return d.gate.next(ctx)
}

// Fetch performs the network round-trip for req on any goroutine.
func (d *Detail) Fetch(req Request) DetailResult {
	if d.getter == nil {
		return DetailResult{Request: req, Err: fmt.Errorf("post getter is not configured")}
	}
	detail, err := d.getter.GetPost(req.Context(), d.id)
	return DetailResult{Request: req, Detail: detail, Err: err}
}

// Apply stores a fetch result and notifies the subscriber. It returns false
// when the result was dropped.
func (d *Detail) Apply(res DetailResult) bool {
	if !d.gate.accept(res.Request) {
		return false
	}
	if res.Err == nil {
		detail := res.Detail
		d.detail = &detail
		d.display = DetailDisplay{
			Title:         detail.Title,
			Description:   detail.BodyText,
			DateText:      formatDetailDate(detail, d.loc),
			LikeCountText: formatLikes(detail.LikeCount),
			ImageURL:      detail.ImageURL,
		}
	}
	d.gate.notify(res.Err)
	return true
}

// Load issues a request, fetches on a new goroutine and applies the result
// through dispatch.
func (d *Detail) Load(ctx context.Context, dispatch Dispatch) {
	req := d.Request(ctx)
	go func() {
		res := d.Fetch(req)
		dispatch(func() { d.Apply(res) })
	}()
}

// Loading reports whether the latest request has not settled yet.
func (d *Detail) Loading() bool {
	return d.gate.pending()
}

// Close marks the model dead; pending results are dropped.
func (d *Detail) Close() {
	d.gate.closed = true
	d.gate.subscriber = nil
}

// Post returns the loaded detail, if any.
func (d *Detail) Post() (post.Detail, bool) {
	if d.detail == nil {
		return post.Detail{}, false
	}
	return *d.detail, true
}

// Display returns the display record once a load has succeeded.
func (d *Detail) Display() (DetailDisplay, bool) {
	if d.detail == nil {
		return DetailDisplay{}, false
	}
	return d.display, true
}
