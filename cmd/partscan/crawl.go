package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"os"
	"os/signal"
	"syscall"

	"github.com/azubair/partscan/internal/config"
	"github.com/azubair/partscan/internal/crawler"
	"github.com/azubair/partscan/internal/database"
	"github.com/azubair/partscan/internal/export"
	"github.com/azubair/partscan/internal/fetcher"
	"github.com/azubair/partscan/internal/robots"
	"github.com/spf13/cobra"
)

// NewCrawlCmd creates the crawl command.
func NewCrawlCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "crawl <listing-url>",
		Short: "Crawl a paginated catalog and extract product listings",
		Long: `Crawl walks a paginated product catalog starting from the given listing URL.

Before fetching anything it checks the site's robots.txt; if the policy
disallows the listing path (or cannot be retrieved), nothing is fetched.
Each listing page is parsed for product records and the rel="next" link
is followed until no further page exists. A fixed pause separates page
fetches.

Extracted records are written to a CSV file. With --save-db, records are
also stored in the local SQLite database so they can be inspected later
without re-crawling.

Examples:
  # Crawl a catalog listing into products.csv
  partscan crawl https://parts.example.com/product-category/spare-parts/

  # Slower crawl with a custom identity and output file
  partscan crawl -d 5s -u "mybot/2.0" -o parts.csv https://parts.example.com/shop/

  # Also persist results to the local database
  partscan crawl --save-db https://parts.example.com/shop/

Configuration file (.partscan) example:
  sites:
    parts.example.com:
      delay: 5s
      userAgent: "mybot/2.0 (+https://example.org/bot)"
      headers:
        Accept-Language: "en-GB"`,
		Args: cobra.ExactArgs(1),
		RunE: runCrawlCmd,
	}

	// Crawl behavior flags
	cmd.Flags().StringP("user-agent", "u", config.DefaultUserAgent,
		"Client identity sent in requests and matched against robots.txt")
	cmd.Flags().DurationP("delay", "d", config.DefaultDelay,
		"Fixed pause between page fetches")
	cmd.Flags().DurationP("timeout", "t", config.DefaultTimeout,
		"Connection timeout for each request")
	cmd.Flags().Int64P("max-body-size", "m", config.DefaultMaxBodySize,
		"Maximum response body size in bytes")

	// Output flags
	cmd.Flags().StringP("output", "o", config.DefaultOutput,
		"CSV file path for extracted records")
	cmd.Flags().Bool("save-db", false,
		"Also store extracted records in the local SQLite database")
	cmd.Flags().String("db-dir", config.XDGDataDir(),
		"Directory for the SQLite database")

	// Configuration file
	cmd.Flags().StringP("config", "c", "",
		"Configuration file path (default: .partscan in current or home directory)")

	return cmd
}

// runCrawlCmd executes the crawl command.
func runCrawlCmd(cmd *cobra.Command, args []string) error {
	cfg, err := buildCrawlConfig(cmd, args)
	if err != nil {
		return err
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	verbose := getVerboseFlag(cmd)
	logger := setupLogger(verbose)
	slog.SetDefault(logger)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigCh
		logger.Info("received shutdown signal, cancelling...")
		cancel()
	}()

	return runCrawl(ctx, cmd, cfg, logger)
}

// buildCrawlConfig creates a Config from cobra command flags.
// Precedence, lowest to highest: built-in defaults, site-specific
// configuration file entries, explicitly set flags.
func buildCrawlConfig(cmd *cobra.Command, args []string) (*config.Config, error) {
	cfg := config.NewConfig()
	cfg.SeedURL = args[0]

	var err error

	cfg.ConfigFilePath, err = cmd.Flags().GetString("config")
	if err != nil {
		return nil, err
	}

	// Load site-specific configurations from config file.
	// If user explicitly specified a config file path, error if not found.
	// If no path specified, silently use empty config if no file found.
	explicitConfigPath := cfg.ConfigFilePath != ""
	configPath := config.FindConfigFile(cfg.ConfigFilePath)

	if configPath != "" {
		cfg.SiteConfigs, err = config.LoadConfigFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
	} else if explicitConfigPath {
		return nil, fmt.Errorf("configuration file not found: %s", cfg.ConfigFilePath)
	} else {
		cfg.SiteConfigs = &config.File{
			Sites: make(map[string]config.SiteConfig),
		}
	}

	cfg.ApplySiteOverrides()

	// Explicit flags win over config file entries.
	if cmd.Flags().Changed("user-agent") {
		cfg.UserAgent, err = cmd.Flags().GetString("user-agent")
		if err != nil {
			return nil, err
		}
	}

	if cmd.Flags().Changed("delay") {
		cfg.Delay, err = cmd.Flags().GetDuration("delay")
		if err != nil {
			return nil, err
		}
	}

	if cmd.Flags().Changed("output") {
		cfg.Output, err = cmd.Flags().GetString("output")
		if err != nil {
			return nil, err
		}
	}

	cfg.Timeout, err = cmd.Flags().GetDuration("timeout")
	if err != nil {
		return nil, err
	}

	cfg.MaxBodySize, err = cmd.Flags().GetInt64("max-body-size")
	if err != nil {
		return nil, err
	}

	cfg.SaveToDB, err = cmd.Flags().GetBool("save-db")
	if err != nil {
		return nil, err
	}

	cfg.DBDir, err = cmd.Flags().GetString("db-dir")
	if err != nil {
		return nil, err
	}

	return cfg, nil
}

// runCrawl executes the crawl.
func runCrawl(ctx context.Context, cmd *cobra.Command, cfg *config.Config, logger *slog.Logger) error {
	gate := robots.NewGate(cfg.UserAgent,
		robots.WithTimeout(cfg.Timeout),
		robots.WithLogger(logger),
	)

	fetchOpts := []fetcher.Option{
		fetcher.WithTimeout(cfg.Timeout),
		fetcher.WithMaxBodySize(cfg.MaxBodySize),
	}
	for key, value := range siteHeaders(cfg) {
		fetchOpts = append(fetchOpts, fetcher.WithHeader(key, value))
	}
	client := fetcher.New(cfg.UserAgent, fetchOpts...)

	c := crawler.New(gate, client,
		crawler.WithDelay(cfg.Delay),
		crawler.WithLogger(logger),
	)

	logger.Info("starting crawl",
		slog.String("seed_url", cfg.SeedURL),
		slog.String("user_agent", cfg.UserAgent),
		slog.Duration("delay", cfg.Delay))

	result := c.Run(ctx, cfg.SeedURL)

	switch result.Outcome {
	case crawler.OutcomeDenied:
		fmt.Fprintf(cmd.OutOrStdout(),
			"robots.txt disallows crawling %s; nothing was fetched\n", cfg.SeedURL)
		return nil

	case crawler.OutcomeFetchFailed:
		// Preserve whatever was extracted before the failure. A failure
		// on the first page still produces a header-only output file.
		if err := saveResults(ctx, cfg, result, logger); err != nil {
			return err
		}
		if len(result.Products) > 0 {
			fmt.Fprintf(cmd.OutOrStdout(),
				"partial results: %d record(s) from %d page(s) written to %s\n",
				len(result.Products), result.Pages, cfg.Output)
		}
		return fmt.Errorf("crawl stopped on page %d: %w", result.Pages+1, result.Err)

	default:
		if err := saveResults(ctx, cfg, result, logger); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(),
			"crawl complete: %d record(s) from %d page(s) written to %s\n",
			len(result.Products), result.Pages, cfg.Output)
		return nil
	}
}

// saveResults writes extracted records to the CSV output and, when
// requested, to the local database.
func saveResults(ctx context.Context, cfg *config.Config, result *crawler.Result, logger *slog.Logger) error {
	if err := export.SaveCSV(cfg.Output, result.Products); err != nil {
		return fmt.Errorf("failed to write CSV output: %w", err)
	}

	if !cfg.SaveToDB {
		return nil
	}

	db, err := database.Open(cfg.DBDir, database.DefaultOptions())
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer func() {
		if closeErr := db.Close(); closeErr != nil {
			logger.Warn("failed to close database", slog.String("error", closeErr.Error()))
		}
	}()

	if err := db.SaveProducts(ctx, cfg.SeedURL, result.Products); err != nil {
		return fmt.Errorf("failed to save records to database: %w", err)
	}

	logger.Info("saved records to database",
		slog.String("path", db.Path()),
		slog.Int("records", len(result.Products)))
	return nil
}

// siteHeaders returns custom headers configured for the seed URL's host.
func siteHeaders(cfg *config.Config) map[string]string {
	if cfg.SiteConfigs == nil {
		return nil
	}
	u, err := url.Parse(cfg.SeedURL)
	if err != nil {
		return nil
	}
	return cfg.SiteConfigs.GetSiteConfig(u.Hostname()).Headers
}
