package crawler

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/azubair/partscan/internal/model"
	"github.com/azubair/partscan/internal/scraper"
)

// DefaultDelay is the fixed pause between successfully completed pages.
// 2 seconds is a conservative politeness floor for a public catalog site.
const DefaultDelay = 2 * time.Second

// Outcome is the terminal state a crawl run ended in.
type Outcome int

const (
	// OutcomeDone means the site stopped advertising a next link and the
	// run completed normally.
	OutcomeDone Outcome = iota

	// OutcomeDenied means robots.txt (or its absence of proof) denied the
	// seed URL. No page was fetched and no records were collected.
	OutcomeDenied

	// OutcomeFetchFailed means a page fetch failed mid-run. Records from
	// prior successful pages are preserved in the result.
	OutcomeFetchFailed
)

// String returns a human-readable outcome name.
func (o Outcome) String() string {
	switch o {
	case OutcomeDone:
		return "done"
	case OutcomeDenied:
		return "denied"
	case OutcomeFetchFailed:
		return "fetch failed"
	default:
		return fmt.Sprintf("unknown outcome (%d)", int(o))
	}
}

// Gate decides whether the run may start at all.
type Gate interface {
	// Allowed reports whether the configured client identity may fetch
	// the given URL.
	Allowed(ctx context.Context, url string) bool
}

// Fetcher retrieves one page body.
type Fetcher interface {
	// Fetch performs a single GET and returns the raw body.
	// Any non-success status is an error.
	Fetch(ctx context.Context, url string) ([]byte, error)
}

// Result is the terminal state of a crawl run.
type Result struct {
	// Products holds every extracted record in page order, then in-page
	// document order. Populated even when the run ends in a fetch failure.
	Products []model.Product

	// Pages is the number of pages successfully fetched and extracted.
	Pages int

	// Outcome is the terminal state the run reached.
	Outcome Outcome

	// Err is the fetch error when Outcome is OutcomeFetchFailed, nil
	// otherwise. Denial is not an error; it is an expected outcome.
	Err error
}

// Crawler walks a paginated listing one page at a time.
type Crawler struct {
	// gate is consulted once, for the seed URL.
	gate Gate

	// fetcher retrieves pages with the declared header set.
	fetcher Fetcher

	// delay is the fixed inter-request pause between completed pages.
	delay time.Duration

	// logger reports per-page progress.
	logger *slog.Logger
}

// Option configures a Crawler.
type Option func(*Crawler)

// WithDelay sets the inter-request delay.
func WithDelay(d time.Duration) Option {
	return func(c *Crawler) {
		c.delay = d
	}
}

// WithLogger sets a custom logger for progress reporting.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Crawler) {
		c.logger = logger
	}
}

// New creates a Crawler from its two collaborators.
//
// Design decision: We take the gate and fetcher as interfaces rather than
// constructing them here because:
//  1. The cmd layer owns configuration (identity, timeouts, headers)
//  2. Tests exercise the loop against httptest-backed fakes
//  3. The loop's contract is orchestration, not transport
func New(gate Gate, fetcher Fetcher, opts ...Option) *Crawler {
	c := &Crawler{
		gate:    gate,
		fetcher: fetcher,
		delay:   DefaultDelay,
	}

	for _, opt := range opts {
		opt(c)
	}

	if c.logger == nil {
		c.logger = slog.Default()
	}

	return c
}

// Run executes the crawl starting from seedURL and returns the terminal
// result. Run never returns a nil result: denial and fetch failure are
// expressed through the result's Outcome, not through a panic or a
// top-level error.
func (c *Crawler) Run(ctx context.Context, seedURL string) *Result {
	result := &Result{
		Products: make([]model.Product, 0),
		Outcome:  OutcomeDone,
	}

	// GATE_CHECK: once, against the seed URL only. The gate never re-runs
	// for subsequent pages.
	if !c.gate.Allowed(ctx, seedURL) {
		c.logger.Info("crawl denied by site policy", "url", seedURL)
		result.Outcome = OutcomeDenied
		return result
	}
	c.logger.Debug("site policy permits crawling", "url", seedURL)

	currentURL := seedURL
	for page := 1; currentURL != ""; page++ {
		// FETCHING
		c.logger.Info("fetching page", "page", page, "url", currentURL)
		body, err := c.fetcher.Fetch(ctx, currentURL)
		if err != nil {
			c.logger.Warn("page fetch failed, stopping crawl",
				"page", page,
				"url", currentURL,
				"error", err,
			)
			result.Outcome = OutcomeFetchFailed
			result.Err = err
			return result
		}

		// EXTRACTING: parse the body, run the extractor on every listing
		// item, append in document order. Zero items is not an error.
		doc, err := scraper.Parse(body)
		if err != nil {
			result.Outcome = OutcomeFetchFailed
			result.Err = fmt.Errorf("page %d: %w", page, err)
			return result
		}
		items := scraper.Products(doc)
		result.Products = append(result.Products, items...)
		result.Pages = page

		// NAVIGATING
		next := scraper.NextPage(doc, currentURL)
		if next == "" {
			c.logger.Info("page complete, no next page",
				"page", page,
				"items", len(items),
			)
			break
		}
		c.logger.Info("page complete",
			"page", page,
			"items", len(items),
			"next", next,
		)

		// Politeness pause: a fixed floor between the end of this page's
		// processing and the start of the next fetch.
		if c.delay > 0 {
			select {
			case <-ctx.Done():
				result.Outcome = OutcomeFetchFailed
				result.Err = ctx.Err()
				return result
			case <-time.After(c.delay):
			}
		}

		currentURL = next
	}

	return result
}
