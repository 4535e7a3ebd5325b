// Package imagepreview fetches a post image and renders it as an ANSI thumbnail.
package imagepreview

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	"image/color"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	_ "golang.org/x/image/webp"
)

const (
	maxImageBytes     = 4 * 1024 * 1024
	imageAcceptHeader = "image/png, image/jpeg, image/gif, image/webp;q=0.9, image/*;q=0.8"
)

// ErrNoImage is returned for an empty image URL.
var ErrNoImage = errors.New("post has no image")

// Loader downloads and renders post images.
type Loader struct {
	client *http.Client
}

// NewLoader creates a Loader. A nil client uses http.DefaultClient.
func NewLoader(client *http.Client) *Loader {
	if client == nil {
		client = http.DefaultClient
	}
	return &Loader{client: client}
}

// NewHTTPClient returns an instrumented client for image downloads.
func NewHTTPClient(timeout time.Duration) *http.Client {
	return &http.Client{
		Timeout:   timeout,
		Transport: otelhttp.NewTransport(http.DefaultTransport),
	}
}

// Load fetches rawURL and renders it into a w x h cell thumbnail.
func (l *Loader) Load(ctx context.Context, rawURL string, w, h int) (string, error) {
	rawURL = strings.TrimSpace(rawURL)
	if rawURL == "" {
		return "", ErrNoImage
	}
	if _, err := url.ParseRequestURI(rawURL); err != nil {
		return "", fmt.Errorf("image url: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return "", fmt.Errorf("creating image request: %w", err)
	}
	req.Header.Set("Accept", imageAcceptHeader)
	resp, err := l.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetching image: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("image status %d", resp.StatusCode)
	}
	data, err := io.ReadAll(io.LimitReader(resp.Body, maxImageBytes))
	if err != nil {
		return "", fmt.Errorf("reading image: %w", err)
	}
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("decoding image: %w", err)
	}
	return RenderThumbnail(img, w, h), nil
}

// RenderThumbnail samples img into w columns and h rows of half-block cells,
// two vertical pixels per cell.
func RenderThumbnail(img image.Image, w, h int) string {
	b := img.Bounds()
	if b.Dx() <= 0 || b.Dy() <= 0 {
		return ""
	}
	w = max(w, 4)
	h = max(h, 2)
	rows := h * 2

	var out strings.Builder
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			sx := b.Min.X + x*b.Dx()/w
			top := sample(img, sx, b.Min.Y+(2*y)*b.Dy()/rows)
			bottom := sample(img, sx, b.Min.Y+(2*y+1)*b.Dy()/rows)
			fmt.Fprintf(&out, "\x1b[38;2;%d;%d;%dm\x1b[48;2;%d;%d;%dm▀\x1b[0m",
				top.R, top.G, top.B, bottom.R, bottom.G, bottom.B)
		}
		if y < h-1 {
			out.WriteByte('\n')
		}
	}
	return out.String()
}

func sample(img image.Image, x, y int) color.NRGBA {
	return color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
}
