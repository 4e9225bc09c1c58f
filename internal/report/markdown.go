package report

import (
	"io"
	"strconv"

	"github.com/nao1215/markdown"
)

// MarkdownWriter outputs the analysis in Markdown format.
// This format is designed for documentation and sharing.
//
// Design decision: We use the nao1215/markdown library for fluent markdown
// generation which provides:
//  1. Type-safe markdown generation
//  2. Support for tables, lists, and code blocks
//  3. GitHub-flavored markdown output
type MarkdownWriter struct {
	baseWriter
}

// NewMarkdownWriter creates a MarkdownWriter that outputs to the given writer.
func NewMarkdownWriter(output io.Writer) *MarkdownWriter {
	return &MarkdownWriter{
		baseWriter: newBaseWriter(output),
	}
}

// Write renders every analysis section as a Markdown table.
func (w *MarkdownWriter) Write(a *Analysis) (int, error) {
	md := markdown.NewMarkdown(w.output)

	md.H1("Spare Parts Dataset Report")
	md.PlainText("")
	md.PlainTextf("Parts analyzed: %d", a.TotalParts)
	md.PlainText("")

	md.H2(titleAvgByManufacturer)
	md.Table(markdown.TableSet{
		Header: []string{"Manufacturer", "Average Price"},
		Rows:   statRows(a.AvgPriceByManufacturer),
	})

	md.H2(titleAvgByCategory)
	md.Table(markdown.TableSet{
		Header: []string{"Category", "Average Price"},
		Rows:   statRows(a.AvgPriceByCategory),
	})

	md.H2(titleCountByCarModel)
	countRows := make([][]string, 0, len(a.CountByCarModel))
	for _, g := range a.CountByCarModel {
		countRows = append(countRows, []string{g.Key, strconv.Itoa(g.Count)})
	}
	md.Table(markdown.TableSet{
		Header: []string{"Car Model", "Parts"},
		Rows:   countRows,
	})

	md.H2(titleTopExpensive)
	md.Table(markdown.TableSet{
		Header: []string{"Part", "Category", "Car Model", "Price"},
		Rows:   priceRows(a.TopExpensive),
	})

	md.H2(titleLowestStock)
	md.Table(markdown.TableSet{
		Header: []string{"Part", "Stock", "Category", "Car Model", "Price"},
		Rows:   stockRows(a.LowestStock),
	})

	return len(md.String()), md.Build()
}

// statRows converts group averages to table rows.
func statRows(stats []GroupStat) [][]string {
	rows := make([][]string, 0, len(stats))
	for _, g := range stats {
		rows = append(rows, []string{g.Key, formatPrice(g.AveragePrice)})
	}
	return rows
}

// priceRows converts a price ranking to table rows.
func priceRows(parts []PartRow) [][]string {
	rows := make([][]string, 0, len(parts))
	for _, r := range parts {
		rows = append(rows, []string{r.PartName, r.Category, r.CarModel, formatPrice(r.Price)})
	}
	return rows
}

// stockRows converts a stock ranking to table rows.
func stockRows(parts []PartRow) [][]string {
	rows := make([][]string, 0, len(parts))
	for _, r := range parts {
		rows = append(rows, []string{
			r.PartName,
			strconv.Itoa(r.Quantity),
			r.Category,
			r.CarModel,
			formatPrice(r.Price),
		})
	}
	return rows
}
