package robots

import (
	"context"
	"log/slog"
	"net/url"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/temoto/robotstxt"
)

// DefaultTimeout is the timeout for the single robots.txt request.
// Catalog sites are clearnet; a short timeout keeps a dead site from
// stalling the run before it starts.
const DefaultTimeout = 30 * time.Second

// Gate decides whether the crawler may fetch a given URL.
// It fetches the site's robots.txt exactly once per Allowed call;
// the crawl loop only targets one domain per run, so no cross-domain
// caching is needed.
type Gate struct {
	// client performs the robots.txt request.
	client *resty.Client

	// userAgent is the client identity used both as the request's
	// User-Agent header and as the token matched against policy groups.
	userAgent string

	// logger reports why a gate check failed. Denials are expected
	// operational outcomes, so they log at debug, not error.
	logger *slog.Logger
}

// Option configures a Gate.
type Option func(*Gate)

// WithTimeout sets the robots.txt request timeout.
func WithTimeout(d time.Duration) Option {
	return func(g *Gate) {
		g.client.SetTimeout(d)
	}
}

// WithLogger sets a custom logger for the gate.
func WithLogger(logger *slog.Logger) Option {
	return func(g *Gate) {
		g.logger = logger
	}
}

// NewGate creates a Gate that identifies itself with the given user agent.
func NewGate(userAgent string, opts ...Option) *Gate {
	g := &Gate{
		client:    resty.New().SetTimeout(DefaultTimeout),
		userAgent: userAgent,
	}

	for _, opt := range opts {
		opt(g)
	}

	if g.logger == nil {
		g.logger = slog.Default()
	}

	return g
}

// Allowed reports whether the client identity may fetch rawURL.
//
// The policy document location is derived by keeping the URL's scheme and
// host and appending "/robots.txt". Any failure to retrieve or parse the
// policy is treated identically to an explicit denial: the caller must not
// distinguish "policy unavailable" from "policy says no".
//
// Status-code handling follows the robots.txt convention implemented by
// the robotstxt package: 404 means the site publishes no policy and all
// paths are permitted; 401 and 403 mean the whole site is off limits;
// 5xx responses are a retrieval failure and therefore a denial.
func (g *Gate) Allowed(ctx context.Context, rawURL string) bool {
	target, err := url.Parse(rawURL)
	if err != nil || !target.IsAbs() {
		g.logger.Debug("gate check failed: invalid target URL", "url", rawURL)
		return false
	}

	robotsURL := target.Scheme + "://" + target.Host + "/robots.txt"

	resp, err := g.client.R().
		SetContext(ctx).
		SetHeader("User-Agent", g.userAgent).
		Get(robotsURL)
	if err != nil {
		g.logger.Debug("gate check failed: robots.txt unreachable",
			"url", robotsURL,
			"error", err,
		)
		return false
	}

	rules, err := robotstxt.FromStatusAndBytes(resp.StatusCode(), resp.Body())
	if err != nil {
		g.logger.Debug("gate check failed: robots.txt unusable",
			"url", robotsURL,
			"status", resp.StatusCode(),
			"error", err,
		)
		return false
	}

	// Rules may match on the query string too (e.g. "Disallow: /shop?"),
	// so test path and query together.
	path := target.Path
	if path == "" {
		path = "/"
	}
	if target.RawQuery != "" {
		path += "?" + target.RawQuery
	}

	return rules.FindGroup(g.userAgent).Test(path)
}
