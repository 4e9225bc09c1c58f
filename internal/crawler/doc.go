// Package crawler orchestrates the polite, paginated extraction run.
//
// # State machine
//
// A run is a small state machine with a termination condition discovered
// at runtime:
//
//	GATE_CHECK -> DENIED (terminal) | FETCHING
//	FETCHING   -> FETCH_FAILED (terminal) | EXTRACTING
//	EXTRACTING -> NAVIGATING
//	NAVIGATING -> FETCHING (next URL found) | DONE (terminal)
//
// The gate runs once, against the seed URL only. A denial halts with no
// records and no output. A fetch failure halts the loop but preserves the
// records accumulated on prior pages — partial results are still written.
// The absence of a rel="next" link is the sole termination signal.
//
// # Politeness
//
// The loop is strictly sequential by contract, not as a simplification:
// one page at a time, with a fixed inter-request delay between the end of
// one page's processing and the start of the next fetch. The delay is a
// hard pacing floor, not a rate limit derived from server feedback.
//
// There is deliberately no maximum-page safeguard. Termination depends
// entirely on the site ceasing to advertise a next link; a malicious
// looping next-chain would crawl forever. This matches the behavior the
// tool is a rework of and is an explicit, documented choice — bound the
// run externally (context cancellation, e.g. Ctrl-C) if that is a concern.
package crawler
