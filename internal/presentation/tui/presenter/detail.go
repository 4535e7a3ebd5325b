package presenter

import (
	"strings"

	"github.com/tesso57/postfeed/internal/application/viewstate"
	"github.com/tesso57/postfeed/internal/presentation/tui/state"
	"github.com/tesso57/postfeed/internal/presentation/tui/textutil"
)

const (
	detailSectionDivider = "----------------------------------------"
	imageLoadingText     = "(loading image...)"
	imagePlaceholderText = "[image unavailable]"
)

// RenderDetail renders the detail screen body wrapped at width.
func RenderDetail(d viewstate.DetailDisplay, img state.ImagePreview, width int, st state.Styles) string {
	width = max(width, 1)
	var b strings.Builder

	if title := strings.TrimSpace(d.Title); title != "" {
		b.WriteString(st.Title.Render(textutil.Wrap(title, width)))
		b.WriteString("\n")
	}
	b.WriteString(st.Muted.Render(d.DateText))
	b.WriteString("  ")
	b.WriteString(st.Accent.Render("♥ " + d.LikeCountText))
	b.WriteString("\n")

	if strings.TrimSpace(d.ImageURL) != "" {
		b.WriteString("\n")
		b.WriteString(imageBlock(img))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(detailSectionDivider)
	b.WriteString("\n")
	if desc := strings.TrimSpace(d.Description); desc != "" {
		b.WriteString(textutil.Wrap(desc, width))
	}
	return b.String()
}

func imageBlock(img state.ImagePreview) string {
	switch {
	case img.Loading:
		return imageLoadingText
	case img.Err != nil, img.Rendered == "":
		return imagePlaceholderText
	default:
		return img.Rendered
	}
}
