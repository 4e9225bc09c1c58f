package report

import (
	"io"
	"strconv"
)

// Writer defines the interface for report output.
// Implementations render the same analysis in different formats.
//
// Design decision: We use an interface to allow different output formats
// and destinations. This enables writing to files, stdout, or network
// connections with the same API.
type Writer interface {
	// Write renders the analysis to the configured destination.
	// Returns the number of bytes written and any error encountered.
	Write(a *Analysis) (int, error)
}

// Section titles shared by every writer, in render order.
const (
	titleAvgByManufacturer = "Average Price by Manufacturer"
	titleAvgByCategory     = "Average Price by Category"
	titleCountByCarModel   = "Part Count by Car Model"
	titleTopExpensive      = "Top 10 Most Expensive Parts"
	titleLowestStock       = "Top 10 Lowest-Stock Parts"
)

// baseWriter provides common functionality for report writers.
type baseWriter struct {
	output io.Writer
}

// newBaseWriter creates a baseWriter with the given output destination.
func newBaseWriter(output io.Writer) baseWriter {
	return baseWriter{output: output}
}

// formatPrice renders a price with two decimal places.
func formatPrice(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
