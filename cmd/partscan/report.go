package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/azubair/partscan/internal/config"
	"github.com/azubair/partscan/internal/database"
	"github.com/azubair/partscan/internal/report"
	"github.com/spf13/cobra"
)

// NewReportCmd creates the report command.
func NewReportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report [dataset.csv]",
		Short: "Generate an analysis report from a spare-parts dataset",
		Long: `Report aggregates a spare-parts dataset and prints an analysis:

- Average price by manufacturer
- Average price by category
- Part count by car model
- Top 10 most expensive parts
- Top 10 lowest-stock parts

The dataset is read from a CSV file, or from the local database with
--from-db. By default the report is rendered as console tables; use
--markdown or --csv for machine-friendly formats.

Examples:
  # Report on a CSV dataset
  partscan report spare_parts.csv

  # Report on parts stored in the local database
  partscan report --from-db

  # Write a Markdown report to a file
  partscan report -m -o report.md spare_parts.csv`,
		Args: cobra.MaximumNArgs(1),
		RunE: runReportCmd,
	}

	cmd.Flags().Bool("from-db", false,
		"Read the dataset from the local database instead of a CSV file")
	cmd.Flags().String("db-dir", config.XDGDataDir(),
		"Directory for the SQLite database")
	cmd.Flags().BoolP("markdown", "m", false,
		"Render the report as Markdown (mutually exclusive with --csv)")
	cmd.Flags().Bool("csv", false,
		"Render the report as sectioned CSV (mutually exclusive with --markdown)")
	cmd.Flags().StringP("output", "o", "",
		"Write report to specified file path (creates directories if needed)")

	return cmd
}

// runReportCmd executes the report command.
func runReportCmd(cmd *cobra.Command, args []string) error {
	markdown, err := cmd.Flags().GetBool("markdown")
	if err != nil {
		return err
	}

	asCSV, err := cmd.Flags().GetBool("csv")
	if err != nil {
		return err
	}

	if markdown && asCSV {
		return errors.New("--markdown and --csv are mutually exclusive")
	}

	verbose := getVerboseFlag(cmd)
	logger := setupLogger(verbose)
	slog.SetDefault(logger)

	rows, err := loadDataset(cmd, args, logger)
	if err != nil {
		return err
	}
	if len(rows) == 0 {
		return errors.New("dataset contains no parts")
	}

	analysis := report.Analyze(rows)

	output, closeOutput, err := reportOutput(cmd)
	if err != nil {
		return err
	}
	defer closeOutput()

	var w report.Writer
	switch {
	case markdown:
		w = report.NewMarkdownWriter(output)
	case asCSV:
		w = report.NewCSVWriter(output)
	default:
		w = report.NewConsoleWriter(output)
	}

	if _, err := w.Write(analysis); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}

	logger.Info("report generated", slog.Int("parts", analysis.TotalParts))
	return nil
}

// loadDataset reads part rows from a CSV file or from the database.
func loadDataset(cmd *cobra.Command, args []string, logger *slog.Logger) ([]report.PartRow, error) {
	fromDB, err := cmd.Flags().GetBool("from-db")
	if err != nil {
		return nil, err
	}

	if fromDB {
		if len(args) > 0 {
			return nil, errors.New("--from-db cannot be combined with a dataset file")
		}
		return loadDatasetFromDB(cmd, logger)
	}

	if len(args) == 0 {
		return nil, errors.New("no dataset provided (specify a CSV file or use --from-db)")
	}

	f, err := os.Open(args[0]) //nolint:gosec // User-provided dataset path is intentional
	if err != nil {
		return nil, fmt.Errorf("failed to open dataset: %w", err)
	}
	defer f.Close() //nolint:errcheck // Read-only file

	rows, err := report.ReadDataset(f)
	if err != nil {
		return nil, fmt.Errorf("failed to read dataset %s: %w", args[0], err)
	}
	return rows, nil
}

// loadDatasetFromDB reads all spare parts stored in the local database.
func loadDatasetFromDB(cmd *cobra.Command, logger *slog.Logger) ([]report.PartRow, error) {
	dbDir, err := cmd.Flags().GetString("db-dir")
	if err != nil {
		return nil, err
	}

	opts := database.DefaultOptions()
	opts.CreateIfNotExists = false

	db, err := database.Open(dbDir, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	defer func() {
		if closeErr := db.Close(); closeErr != nil {
			logger.Warn("failed to close database", slog.String("error", closeErr.Error()))
		}
	}()

	parts, err := db.ListSpareParts(context.Background(), database.PartFilter{})
	if err != nil {
		return nil, fmt.Errorf("failed to list spare parts: %w", err)
	}
	return report.FromParts(parts), nil
}

// reportOutput returns the writer the report is rendered to. The
// returned close function is a no-op for stdout.
func reportOutput(cmd *cobra.Command) (io.Writer, func(), error) {
	outputPath, err := cmd.Flags().GetString("output")
	if err != nil {
		return nil, nil, err
	}

	if outputPath == "" {
		return cmd.OutOrStdout(), func() {}, nil
	}

	dir := filepath.Dir(outputPath)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return nil, nil, fmt.Errorf("failed to create directory: %w", err)
		}
	}

	f, err := os.Create(outputPath) //nolint:gosec // User-provided output path is intentional
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create report file: %w", err)
	}
	return f, func() { f.Close() }, nil //nolint:errcheck // Best effort close
}
