package viewstate

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/tesso57/postfeed/internal/domain/post"
)

type stubGetter struct {
	mock.Mock
}

func (s *stubGetter) GetPost(ctx context.Context, id int) (post.Detail, error) {
	args := s.Called(ctx, id)
	detail, _ := args.Get(0).(post.Detail)
	return detail, args.Error(1)
}

func TestDetail_LoadBuildsDisplay(t *testing.T) {
	getter := &stubGetter{}
	getter.On("GetPost", mock.Anything, 2).Return(post.Detail{
		ID:          2,
		PublishedAt: 1768348800,
		Title:       "Title",
		BodyText:    "Body",
		ImageURL:    "https://example.com/a.png",
		LikeCount:   42,
	}, nil).Once()

	d := NewDetail(getter, 2, time.UTC)
	sub := &recordingSubscriber{}
	d.Subscribe(sub)

	_, ok := d.Display()
	require.False(t, ok, "display must be empty before the first load")

	require.True(t, d.Apply(d.Fetch(d.Request(context.Background()))))

	display, ok := d.Display()
	require.True(t, ok)
	assert.Equal(t, DetailDisplay{
		Title:         "Title",
		Description:   "Body",
		DateText:      "14 January 2026",
		LikeCountText: "42",
		ImageURL:      "https://example.com/a.png",
	}, display)
	detail, ok := d.Post()
	require.True(t, ok)
	assert.Equal(t, 42, detail.LikeCount)
	assert.Equal(t, 2, d.RequestedID())
	assert.Equal(t, 1, sub.loaded)
	getter.AssertExpectations(t)
}

func TestDetail_LoadFailure(t *testing.T) {
	getter := &stubGetter{}
	getter.On("GetPost", mock.Anything, 5).Return(post.Detail{}, &post.FetchError{Kind: post.TransportFailure}).Once()

	d := NewDetail(getter, 5, nil)
	sub := &recordingSubscriber{}
	d.Subscribe(sub)
	d.Apply(d.Fetch(d.Request(context.Background())))

	_, ok := d.Post()
	assert.False(t, ok)
	assert.Equal(t, []string{"Could not reach the server. Check your internet connection."}, sub.errors)
	assert.False(t, d.Loading())
}

func TestDetail_StaleAndClosed(t *testing.T) {
	d := NewDetail(nil, 1, time.UTC)
	first := d.Request(context.Background())
	second := d.Request(context.Background())

	assert.False(t, d.Apply(DetailResult{Request: first, Detail: post.Detail{ID: 1, Title: "old"}}))
	assert.True(t, d.Apply(DetailResult{Request: second, Detail: post.Detail{ID: 1, Title: "new"}}))
	display, _ := d.Display()
	assert.Equal(t, "new", display.Title)

	third := d.Request(context.Background())
	d.Close()
	assert.False(t, d.Apply(DetailResult{Request: third, Detail: post.Detail{ID: 1, Title: "late"}}))
	display, _ = d.Display()
	assert.Equal(t, "new", display.Title)
}

func TestDetail_LoadDispatches(t *testing.T) {
	getter := &stubGetter{}
	getter.On("GetPost", mock.Anything, 3).Return(post.Detail{ID: 3, LikeCount: 7}, nil)
	d := NewDetail(getter, 3, time.UTC)

	queue := make(chan func(), 1)
	d.Load(context.Background(), func(fn func()) { queue <- fn })
	assert.True(t, d.Loading())

	select {
	case fn := <-queue:
		fn()
	case <-time.After(2 * time.Second):
		t.Fatal("load did not dispatch")
	}
	display, ok := d.Display()
	require.True(t, ok)
	assert.Equal(t, "7", display.LikeCountText)
}

func TestDetail_FetchWithoutGetter(t *testing.T) {
	d := NewDetail(nil, 1, nil)
	res := d.Fetch(d.Request(context.Background()))
	assert.Error(t, res.Err)
}
