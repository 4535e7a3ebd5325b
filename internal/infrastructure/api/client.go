// Package api provides the HTTP/JSON client for the post API.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/tesso57/postfeed/internal/domain/post"
)

const (
	listPath          = "/main.json"
	detailPathFormat  = "/posts/%d.json"
	jsonAcceptHeader  = "application/json, text/plain;q=0.9, */*;q=0.5"
	defaultUserAgent  = "Postfeed/1.0"
	requestIDHeader   = "X-Request-ID"
	maxResponseLength = 8 << 20
)

type acceptTransport struct {
	base      http.RoundTripper
	userAgent string
}

func (t acceptTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	base := t.base
	if base == nil {
		base = http.DefaultTransport
	}
	clone := req.Clone(req.Context())
	if clone.Header.Get("Accept") == "" {
		clone.Header.Set("Accept", jsonAcceptHeader)
	}
	if clone.Header.Get("User-Agent") == "" && t.userAgent != "" {
		clone.Header.Set("User-Agent", t.userAgent)
	}
	return base.RoundTrip(clone)
}

// Options configures a Client.
type Options struct {
	BaseURL   string
	UserAgent string
	// Timeout of zero keeps the platform default (no client timeout).
	Timeout   time.Duration
	Transport http.RoundTripper
	Logger    *slog.Logger
}

// Client fetches posts from the static JSON API.
type Client struct {
	baseURL string
	http    *http.Client
	logger  *slog.Logger
}

// NewClient creates an API client.
func NewClient(opt Options) *Client {
	ua := strings.TrimSpace(opt.UserAgent)
	if ua == "" {
		ua = defaultUserAgent
	}
	logger := opt.Logger
	if logger == nil {
		logger = slog.Default()
	}
	transport := otelhttp.NewTransport(acceptTransport{base: opt.Transport, userAgent: ua})
	return &Client{
		baseURL: strings.TrimRight(strings.TrimSpace(opt.BaseURL), "/"),
		http:    &http.Client{Timeout: opt.Timeout, Transport: transport},
		logger:  logger.With("component", "api"),
	}
}

// FetchPostList fetches the feed of post summaries in server order.
func (c *Client) FetchPostList(ctx context.Context) ([]post.Summary, error) {
	var resp postListResponse
	if err := c.getJSON(ctx, c.baseURL+listPath, &resp); err != nil {
		return nil, err
	}
	if resp.Posts == nil {
		return nil, c.decodeFailure(&resp, errors.New(`missing "posts"`))
	}
	posts := make([]post.Summary, len(resp.Posts))
	for i, dto := range resp.Posts {
		p, err := dto.toDomain()
		if err != nil {
			return nil, c.decodeFailure(&resp, fmt.Errorf("posts[%d]: %w", i, err))
		}
		posts[i] = p
	}
	return posts, nil
}

// FetchPostDetail fetches one post by id.
func (c *Client) FetchPostDetail(ctx context.Context, id int) (post.Detail, error) {
	var resp postDetailResponse
	if err := c.getJSON(ctx, c.baseURL+fmt.Sprintf(detailPathFormat, id), &resp); err != nil {
		return post.Detail{}, err
	}
	if resp.Post == nil {
		return post.Detail{}, c.decodeFailure(&resp, errors.New(`missing "post"`))
	}
	detail, err := resp.Post.toDomain()
	if err != nil {
		return post.Detail{}, c.decodeFailure(&resp, fmt.Errorf("post: %w", err))
	}
	return detail, nil
}

func (c *Client) getJSON(ctx context.Context, rawURL string, target any) error {
	if ctx == nil {
		ctx = context.Background()
	}
	u, err := url.Parse(rawURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		if err == nil {
			err = fmt.Errorf("url %q is not absolute", rawURL)
		}
		return &post.FetchError{Kind: post.InvalidURL, Err: err}
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return &post.FetchError{Kind: post.InvalidURL, Err: err}
	}
	requestID := uuid.NewString()
	req.Header.Set(requestIDHeader, requestID)
	log := c.logger.With("request_id", requestID, "url", u.String())

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		log.Warn("request failed", "error", err)
		return &post.FetchError{Kind: post.TransportFailure, Err: err}
	}
	defer func() { _ = resp.Body.Close() }()
	log.Debug("response received", "status", resp.StatusCode, "elapsed", time.Since(start))

	if kind, failed := classifyStatus(resp.StatusCode); failed {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxResponseLength))
		log.Warn("unexpected status", "status", resp.StatusCode)
		return &post.FetchError{Kind: kind, StatusCode: resp.StatusCode}
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseLength))
	if err != nil {
		log.Warn("reading body failed", "error", err)
		return &post.FetchError{Kind: post.TransportFailure, Err: fmt.Errorf("reading response: %w", err)}
	}
	if err := json.Unmarshal(data, target); err != nil {
		return c.decodeFailure(target, err)
	}
	return nil
}

func (c *Client) decodeFailure(target any, err error) error {
	c.logger.Error("decoding failed", "type", fmt.Sprintf("%T", target), "error", err)
	return &post.FetchError{Kind: post.DecodingFailure, Err: err}
}

func classifyStatus(code int) (post.FetchErrorKind, bool) {
	switch {
	case code >= 200 && code < 300:
		return post.Unknown, false
	case code >= 400 && code < 600:
		return post.ServerError, true
	default:
		return post.Unknown, true
	}
}
