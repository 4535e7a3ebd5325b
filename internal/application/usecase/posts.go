// Package usecase contains application-level services.
package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/tesso57/postfeed/internal/domain/post"
)

// PostFetcher abstracts the post API.
type PostFetcher interface {
	FetchPostList(ctx context.Context) ([]post.Summary, error)
	FetchPostDetail(ctx context.Context, id int) (post.Detail, error)
}

// PostService coordinates post fetching for the state models.
type PostService struct {
	Fetcher PostFetcher
}

// NewPostService constructs a PostService.
func NewPostService(fetcher PostFetcher) PostService {
	return PostService{Fetcher: fetcher}
}

// ListPosts fetches the feed.
func (s PostService) ListPosts(ctx context.Context) ([]post.Summary, error) {
	if s.Fetcher == nil {
		return nil, errors.New("post fetcher is not configured")
	}
	posts, err := s.Fetcher.FetchPostList(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch post list: %w", err)
	}
	return posts, nil
}

// GetPost fetches one post detail.
func (s PostService) GetPost(ctx context.Context, id int) (post.Detail, error) {
	if s.Fetcher == nil {
		return post.Detail{}, errors.New("post fetcher is not configured")
	}
	detail, err := s.Fetcher.FetchPostDetail(ctx, id)
	if err != nil {
		return post.Detail{}, fmt.Errorf("fetch post %d: %w", id, err)
	}
	return detail, nil
}

// ErrorMessage turns a fetch failure into a message fit for the user.
func ErrorMessage(err error) string {
	if err == nil {
		return ""
	}
	var fe *post.FetchError
	if !errors.As(err, &fe) {
		return "Something went wrong. Please try again."
	}
	switch fe.Kind {
	case post.InvalidURL:
		return "The request address is invalid."
	case post.TransportFailure:
		return "Could not reach the server. Check your internet connection."
	case post.ServerError:
		return fmt.Sprintf("The server returned an error (HTTP %d).", fe.StatusCode)
	case post.DecodingFailure:
		return "The server response could not be read."
	default:
		return "Something went wrong. Please try again."
	}
}
