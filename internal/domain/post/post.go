// Package post defines the core post models.
package post

import "time"

// Summary is the preview-level record shown in the feed.
type Summary struct {
	ID          int
	PublishedAt int64
	Title       string
	PreviewText string
	LikeCount   int
}

// Detail is the full record shown on the detail screen.
type Detail struct {
	ID          int
	PublishedAt int64
	Title       string
	BodyText    string
	ImageURL    string
	LikeCount   int
}

// PublishedTime returns the publication time in the given location.
func (s Summary) PublishedTime(loc *time.Location) time.Time {
	return unixIn(s.PublishedAt, loc)
}

// PublishedTime returns the publication time in the given location.
func (d Detail) PublishedTime(loc *time.Location) time.Time {
	return unixIn(d.PublishedAt, loc)
}

func unixIn(ts int64, loc *time.Location) time.Time {
	if loc == nil {
		loc = time.Local
	}
	return time.Unix(ts, 0).In(loc)
}
