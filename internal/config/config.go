package config

import (
	"net/url"
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
)

// Default configuration values.
// These match the behavior of the scraping pipeline partscan is a rework
// of, where they differ it is noted on the constant.
const (
	// DefaultUserAgent identifies partscan in HTTP requests and to
	// robots.txt evaluation. A descriptive User-Agent lets site operators
	// identify and contact the crawler; it can be overridden per run when
	// a different client identity is required.
	DefaultUserAgent = "partscan/1.0 (+https://github.com/azubair/partscan)"

	// DefaultDelay is the fixed pause between page fetches.
	// 2 seconds is a conservative politeness floor for a public catalog.
	DefaultDelay = 2 * time.Second

	// DefaultTimeout is the per-request connection timeout.
	DefaultTimeout = 60 * time.Second

	// DefaultOutput is the CSV file crawl results are written to.
	DefaultOutput = "products.csv"

	// DefaultListenAddr is the address the inventory API binds to.
	DefaultListenAddr = ":8080"

	// DefaultMaxBodySize limits the response body size to read.
	// 5MB is sufficient for any listing page while preventing memory
	// exhaustion from unexpectedly large responses.
	DefaultMaxBodySize = 5 * 1024 * 1024

	// AppName is the application name used for XDG directory paths.
	AppName = "partscan"
)

// Config holds all configuration options for partscan.
// This struct is designed to be populated from CLI flags and passed
// through the application via dependency injection rather than global
// state.
type Config struct {
	// SeedURL is the absolute starting URL for a crawl run.
	SeedURL string

	// UserAgent is the client identity presented to the remote server
	// and to the robots.txt evaluator.
	UserAgent string

	// Delay is the fixed inter-request pause between completed pages.
	Delay time.Duration

	// Timeout is the connection timeout for each HTTP request.
	Timeout time.Duration

	// Output is the CSV file path crawl results are written to.
	Output string

	// DBDir is the directory for the SQLite database. Defaults to the
	// XDG data directory (~/.local/share/partscan on Linux).
	DBDir string

	// SaveToDB also persists crawl results to the database, preserving
	// the absent-vs-empty distinction the CSV file loses.
	SaveToDB bool

	// ListenAddr is the bind address for the inventory API server.
	ListenAddr string

	// Verbose enables detailed log output using slog.LevelDebug.
	// When false, only info and above are logged.
	Verbose bool

	// MaxBodySize is the maximum response body size in bytes to read.
	// Set to 0 to use the default.
	MaxBodySize int64

	// ConfigFilePath is the path to the configuration file. If empty,
	// the tool searches for .partscan in the current directory and then
	// in the user's home directory.
	ConfigFilePath string

	// SiteConfigs holds site-specific overrides loaded from the config
	// file. Populated by LoadConfigFile.
	SiteConfigs *File
}

// NewConfig creates a new Config with default values.
// All fields are set to safe, sensible defaults; callers override
// specific values after creation.
func NewConfig() *Config {
	return &Config{
		UserAgent:   DefaultUserAgent,
		Delay:       DefaultDelay,
		Timeout:     DefaultTimeout,
		Output:      DefaultOutput,
		DBDir:       XDGDataDir(),
		ListenAddr:  DefaultListenAddr,
		MaxBodySize: DefaultMaxBodySize,
	}
}

// XDGDataDir returns the XDG data directory for partscan.
// On Linux: ~/.local/share/partscan
// On macOS: ~/Library/Application Support/partscan
// On Windows: %LOCALAPPDATA%\partscan
func XDGDataDir() string {
	return filepath.Join(xdg.DataHome, AppName)
}

// Validate checks whether the configuration is usable for a crawl run.
// It returns a specific error describing the first problem found;
// fixing one error often makes later ones irrelevant.
func (c *Config) Validate() error {
	if c.SeedURL == "" {
		return ErrNoSeedURL
	}

	u, err := url.Parse(c.SeedURL)
	if err != nil || !u.IsAbs() || (u.Scheme != "http" && u.Scheme != "https") {
		return ErrInvalidSeedURL
	}

	if c.UserAgent == "" {
		return ErrNoUserAgent
	}

	// Zero delay is permitted but unkind; negative is invalid.
	if c.Delay < 0 {
		return ErrInvalidDelay
	}

	if c.Timeout <= 0 {
		return ErrInvalidTimeout
	}

	if c.Output == "" {
		return ErrNoOutput
	}

	if c.MaxBodySize < 0 {
		return ErrInvalidMaxBodySize
	}

	return nil
}

// ApplySiteOverrides merges any site-specific configuration for the seed
// URL's host into the run configuration. Flag-level settings that the
// user left at defaults yield to the file; the file never overrides an
// explicit flag because the cmd layer applies flags afterward.
func (c *Config) ApplySiteOverrides() {
	if c.SiteConfigs == nil {
		return
	}

	u, err := url.Parse(c.SeedURL)
	if err != nil {
		return
	}

	site := c.SiteConfigs.GetSiteConfig(u.Hostname())
	if site.UserAgent != "" {
		c.UserAgent = site.UserAgent
	}
	if !site.Delay.IsZero() {
		c.Delay = site.Delay.Duration
	}
	if site.Output != "" {
		c.Output = site.Output
	}
}
