package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// CSVWriter outputs the analysis as a sectioned CSV file: each section
// is a title line, a header row, data rows, then a blank line. The
// layout matches the report file the original tooling produced, so
// spreadsheets ingest it section by section.
type CSVWriter struct {
	baseWriter
}

// NewCSVWriter creates a CSVWriter that outputs to the given writer.
func NewCSVWriter(output io.Writer) *CSVWriter {
	return &CSVWriter{
		baseWriter: newBaseWriter(output),
	}
}

// Write renders every analysis section into one CSV document.
func (w *CSVWriter) Write(a *Analysis) (int, error) {
	var sb strings.Builder

	writeSection := func(title string, header []string, rows [][]string) error {
		sb.WriteString(title)
		sb.WriteString("\n")

		cw := csv.NewWriter(&sb)
		if err := cw.Write(header); err != nil {
			return err
		}
		for _, row := range rows {
			if err := cw.Write(row); err != nil {
				return err
			}
		}
		cw.Flush()
		if err := cw.Error(); err != nil {
			return err
		}

		sb.WriteString("\n")
		return nil
	}

	sections := []struct {
		title  string
		header []string
		rows   [][]string
	}{
		{titleAvgByManufacturer, []string{"manufacturer", "average_price"}, statRows(a.AvgPriceByManufacturer)},
		{titleAvgByCategory, []string{"category", "average_price"}, statRows(a.AvgPriceByCategory)},
		{titleCountByCarModel, []string{"car_model", "spare_part_count"}, countCSVRows(a.CountByCarModel)},
		{titleTopExpensive, []string{"part_name", "category", "car_model", "price"}, priceRows(a.TopExpensive)},
		{titleLowestStock, []string{"part_name", "quantity", "category", "car_model", "price"}, stockRows(a.LowestStock)},
	}

	for _, s := range sections {
		if err := writeSection(s.title, s.header, s.rows); err != nil {
			return 0, fmt.Errorf("write report section %q: %w", s.title, err)
		}
	}

	return w.output.Write([]byte(sb.String()))
}

// countCSVRows converts car-model counts to CSV rows.
func countCSVRows(counts []GroupCount) [][]string {
	rows := make([][]string, 0, len(counts))
	for _, g := range counts {
		rows = append(rows, []string{g.Key, strconv.Itoa(g.Count)})
	}
	return rows
}
