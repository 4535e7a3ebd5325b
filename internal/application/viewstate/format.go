package viewstate

import (
	"strconv"
	"time"

	"github.com/tesso57/postfeed/internal/domain/post"
)

const (
	// RowDateLayout renders "day month-abbrev year", e.g. "14 Jan 2026".
	RowDateLayout = "02 Jan 2006"
	// DetailDateLayout renders "day month-full year", e.g. "14 January 2026".
	DetailDateLayout = "02 January 2006"
)

func formatRowDate(s post.Summary, loc *time.Location) string {
	return s.PublishedTime(loc).Format(RowDateLayout)
}

func formatDetailDate(d post.Detail, loc *time.Location) string {
	return d.PublishedTime(loc).Format(DetailDateLayout)
}

func formatLikes(n int) string {
	return strconv.Itoa(n)
}
