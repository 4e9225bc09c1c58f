package config

import "errors"

// Configuration validation errors.
// These errors are returned by Config.Validate() and provide specific
// information about what is wrong with the configuration.
//
// Design decision: We use package-level sentinel errors rather than
// creating new error instances in Validate(). This allows callers to use
// errors.Is() for programmatic error handling while still providing
// human-readable messages.
var (
	// ErrNoSeedURL is returned when no starting URL is specified.
	ErrNoSeedURL = errors.New("no seed URL specified: provide a catalog listing URL")

	// ErrInvalidSeedURL is returned when the starting URL is not an
	// absolute http(s) URL.
	ErrInvalidSeedURL = errors.New("invalid seed URL: must be an absolute http or https URL")

	// ErrNoUserAgent is returned when the client identity is empty.
	// An anonymous crawler cannot be matched against robots.txt groups.
	ErrNoUserAgent = errors.New("no user agent specified: a client identity is required")

	// ErrInvalidDelay is returned when the inter-request delay is negative.
	// Use 0 for no delay between requests.
	ErrInvalidDelay = errors.New("invalid delay: must be non-negative")

	// ErrInvalidTimeout is returned when the timeout is not positive.
	// A zero or negative timeout would cause immediate failures.
	ErrInvalidTimeout = errors.New("invalid timeout: must be positive")

	// ErrNoOutput is returned when the output file path is empty.
	ErrNoOutput = errors.New("no output file specified")

	// ErrInvalidMaxBodySize is returned when the max body size is negative.
	// Use 0 for the default limit.
	ErrInvalidMaxBodySize = errors.New("invalid max body size: must be non-negative")
)
