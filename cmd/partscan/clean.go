package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/azubair/partscan/internal/report"
	"github.com/spf13/cobra"
)

// NewCleanCmd creates the clean command.
func NewCleanCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "clean <dataset.csv>",
		Short: "Remove duplicate rows from a CSV dataset",
		Long: `Clean reads a CSV dataset, drops exact duplicate rows, and writes the
deduplicated rows to a new file. The header and the first occurrence of
each row are kept; row order is preserved.

Examples:
  # Write deduplicated rows to spare_parts_cleaned.csv
  partscan clean spare_parts.csv

  # Choose the output file explicitly
  partscan clean -o parts.csv spare_parts.csv`,
		Args: cobra.ExactArgs(1),
		RunE: runCleanCmd,
	}

	cmd.Flags().StringP("output", "o", "",
		"Output file path (default: <input>_cleaned.csv)")

	return cmd
}

// runCleanCmd executes the clean command.
func runCleanCmd(cmd *cobra.Command, args []string) error {
	inputPath := args[0]

	outputPath, err := cmd.Flags().GetString("output")
	if err != nil {
		return err
	}
	if outputPath == "" {
		outputPath = cleanedPath(inputPath)
	}

	verbose := getVerboseFlag(cmd)
	logger := setupLogger(verbose)
	slog.SetDefault(logger)

	in, err := os.Open(inputPath) //nolint:gosec // User-provided dataset path is intentional
	if err != nil {
		return fmt.Errorf("failed to open dataset: %w", err)
	}
	defer in.Close() //nolint:errcheck // Read-only file

	out, err := os.Create(outputPath) //nolint:gosec // User-provided output path is intentional
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}

	removed, err := report.Dedupe(in, out)
	if err != nil {
		out.Close() //nolint:errcheck,gosec // Already failing
		return fmt.Errorf("failed to deduplicate %s: %w", inputPath, err)
	}
	if err := out.Close(); err != nil {
		return fmt.Errorf("failed to finalize output file: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "removed %d duplicate row(s); cleaned dataset written to %s\n",
		removed, outputPath)
	return nil
}

// cleanedPath derives the default output path from the input path,
// e.g. spare_parts.csv -> spare_parts_cleaned.csv.
func cleanedPath(inputPath string) string {
	const suffix = ".csv"
	if len(inputPath) > len(suffix) && inputPath[len(inputPath)-len(suffix):] == suffix {
		return inputPath[:len(inputPath)-len(suffix)] + "_cleaned" + suffix
	}
	return inputPath + "_cleaned"
}
