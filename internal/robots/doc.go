// Package robots implements the crawl permission gate.
//
// Before a crawl starts, the gate fetches the target site's robots.txt
// once and evaluates it for the configured client identity. The gate is
// deliberately conservative: transport errors, malformed policies, and
// server errors are all treated as a denial rather than propagated.
// A run that cannot prove it is welcome does not fetch a single page.
//
// Design decision: We use github.com/temoto/robotstxt rather than
// hand-parsing because:
//  1. It implements the de-facto robots.txt status-code semantics
//     (404 means no policy, 401/403 mean full disallow)
//  2. Group matching against user-agent tokens is subtle and well-tested there
//  3. The crawl gate is a compliance feature; correctness matters more
//     than saving a dependency
package robots
