package fetcher

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/go-resty/resty/v2"
)

// Default header values sent with every page request.
// The Accept values declare an HTML preference; Accept-Language keeps
// localized catalogs from guessing at the client's locale.
const (
	DefaultAccept         = "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8"
	DefaultAcceptLanguage = "en-US,en;q=0.5"
)

// DefaultTimeout is the per-request timeout.
const DefaultTimeout = 60 * time.Second

// DefaultMaxBodySize limits the response body size read into memory.
// 5MB is sufficient for any listing page while preventing memory
// exhaustion from unexpectedly large responses.
const DefaultMaxBodySize = 5 * 1024 * 1024

// Client fetches single pages with a fixed client identity and header set.
type Client struct {
	// http is the underlying resty client carrying the header defaults.
	http *resty.Client

	// maxBodySize limits how many body bytes are read per response.
	maxBodySize int64
}

// Option configures a Client.
type Option func(*Client)

// WithTimeout sets the per-request timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.http.SetTimeout(d)
	}
}

// WithMaxBodySize sets the maximum response body size to read.
func WithMaxBodySize(size int64) Option {
	return func(c *Client) {
		c.maxBodySize = size
	}
}

// WithHeader adds an extra default header to every request.
// Site-specific headers from the configuration file arrive through here.
func WithHeader(key, value string) Option {
	return func(c *Client) {
		c.http.SetHeader(key, value)
	}
}

// New creates a Client that identifies itself with the given user agent.
func New(userAgent string, opts ...Option) *Client {
	c := &Client{
		http: resty.New().
			SetTimeout(DefaultTimeout).
			SetHeader("User-Agent", userAgent).
			SetHeader("Accept", DefaultAccept).
			SetHeader("Accept-Language", DefaultAcceptLanguage),
		maxBodySize: DefaultMaxBodySize,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Fetch performs one GET against pageURL and returns the raw body.
// Any non-success status is an error; there is no retry. The body is
// truncated at the configured maximum size.
func (c *Client) Fetch(ctx context.Context, pageURL string) ([]byte, error) {
	resp, err := c.http.R().
		SetContext(ctx).
		SetDoNotParseResponse(true).
		Get(pageURL)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", pageURL, err)
	}

	raw := resp.RawBody()
	defer raw.Close() //nolint:errcheck // Close error on a read-only body is not actionable

	if !resp.IsSuccess() {
		return nil, fmt.Errorf("fetch %s: unexpected status %d", pageURL, resp.StatusCode())
	}

	body, err := io.ReadAll(io.LimitReader(raw, c.maxBodySize))
	if err != nil {
		return nil, fmt.Errorf("fetch %s: read body: %w", pageURL, err)
	}

	return body, nil
}
