package api

import (
	"fmt"
	"strings"

	"github.com/tesso57/postfeed/internal/domain/post"
)

// Wire names follow the upstream API exactly, including the "timeshamp" typo.
// Every field is required; pointers tell an absent key from a zero value.

type postListResponse struct {
	Posts []postSummaryDTO `json:"posts"`
}

type postSummaryDTO struct {
	PostID      *int    `json:"postId"`
	Timestamp   *int64  `json:"timeshamp"`
	Title       *string `json:"title"`
	PreviewText *string `json:"preview_text"`
	LikesCount  *int    `json:"likes_count"`
}

type postDetailResponse struct {
	Post *postDetailDTO `json:"post"`
}

type postDetailDTO struct {
	PostID     *int    `json:"postId"`
	Timestamp  *int64  `json:"timeshamp"`
	Title      *string `json:"title"`
	Text       *string `json:"text"`
	PostImage  *string `json:"postImage"`
	LikesCount *int    `json:"likes_count"`
}

func (d postSummaryDTO) toDomain() (post.Summary, error) {
	if err := missingFields(map[string]bool{
		"postId":       d.PostID == nil,
		"timeshamp":    d.Timestamp == nil,
		"title":        d.Title == nil,
		"preview_text": d.PreviewText == nil,
		"likes_count":  d.LikesCount == nil,
	}); err != nil {
		return post.Summary{}, err
	}
	return post.Summary{
		ID:          *d.PostID,
		PublishedAt: *d.Timestamp,
		Title:       *d.Title,
		PreviewText: *d.PreviewText,
		LikeCount:   *d.LikesCount,
	}, nil
}

func (d postDetailDTO) toDomain() (post.Detail, error) {
	if err := missingFields(map[string]bool{
		"postId":      d.PostID == nil,
		"timeshamp":   d.Timestamp == nil,
		"title":       d.Title == nil,
		"text":        d.Text == nil,
		"postImage":   d.PostImage == nil,
		"likes_count": d.LikesCount == nil,
	}); err != nil {
		return post.Detail{}, err
	}
	return post.Detail{
		ID:          *d.PostID,
		PublishedAt: *d.Timestamp,
		Title:       *d.Title,
		BodyText:    *d.Text,
		ImageURL:    *d.PostImage,
		LikeCount:   *d.LikesCount,
	}, nil
}

// wireKeys fixes the order missing keys are reported in.
var wireKeys = []string{"postId", "timeshamp", "title", "preview_text", "text", "postImage", "likes_count"}

func missingFields(absent map[string]bool) error {
	var missing []string
	for _, key := range wireKeys {
		if absent[key] {
			missing = append(missing, key)
		}
	}
	if len(missing) == 0 {
		return nil
	}
	return fmt.Errorf("missing required fields: %s", strings.Join(missing, ", "))
}
