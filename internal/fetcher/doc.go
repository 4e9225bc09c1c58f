// Package fetcher performs single-page HTTP retrievals for the crawler.
//
// The fetcher is intentionally simple: one blocking GET per call with a
// declared client identity, no retries, no backoff. A failed fetch is a
// terminal event for the crawl loop, and the loop — not the fetcher —
// decides what to do with the records accumulated so far.
//
// Design decision: We use github.com/go-resty/resty/v2 rather than raw
// net/http because:
//  1. Header defaults, timeouts, and per-request context compose cleanly
//  2. Status classification (IsSuccess) is built in
//  3. Tests can retarget the client at an httptest server with one option
package fetcher
