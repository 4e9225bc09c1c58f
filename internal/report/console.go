package report

import (
	"io"
	"strconv"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
)

// ConsoleWriter renders the analysis as bordered terminal tables.
//
// Design decision: We use github.com/jedib0t/go-pretty for the terminal
// output because it handles column widths and unicode correctly, which
// part names and currency strings routinely break with naive padding.
type ConsoleWriter struct {
	baseWriter
}

// NewConsoleWriter creates a ConsoleWriter that outputs to the given writer.
func NewConsoleWriter(output io.Writer) *ConsoleWriter {
	return &ConsoleWriter{
		baseWriter: newBaseWriter(output),
	}
}

// Write renders every analysis section as a titled table.
func (w *ConsoleWriter) Write(a *Analysis) (int, error) {
	var sb strings.Builder

	sb.WriteString("Spare parts dataset report (" + strconv.Itoa(a.TotalParts) + " parts)\n\n")

	w.writeGroupStats(&sb, titleAvgByManufacturer, "Manufacturer", a.AvgPriceByManufacturer)
	w.writeGroupStats(&sb, titleAvgByCategory, "Category", a.AvgPriceByCategory)

	counts := table.NewWriter()
	counts.SetStyle(table.StyleLight)
	counts.SetTitle(titleCountByCarModel)
	counts.AppendHeader(table.Row{"Car Model", "Parts"})
	for _, g := range a.CountByCarModel {
		counts.AppendRow(table.Row{g.Key, g.Count})
	}
	sb.WriteString(counts.Render())
	sb.WriteString("\n\n")

	w.writeRanking(&sb, titleTopExpensive, a.TopExpensive)
	w.writeRanking(&sb, titleLowestStock, a.LowestStock)

	return w.output.Write([]byte(sb.String()))
}

// writeGroupStats renders one average-price table.
func (w *ConsoleWriter) writeGroupStats(sb *strings.Builder, title, keyHeader string, stats []GroupStat) {
	t := table.NewWriter()
	t.SetStyle(table.StyleLight)
	t.SetTitle(title)
	t.AppendHeader(table.Row{keyHeader, "Average Price"})
	for _, g := range stats {
		t.AppendRow(table.Row{g.Key, formatPrice(g.AveragePrice)})
	}
	sb.WriteString(t.Render())
	sb.WriteString("\n\n")
}

// writeRanking renders one top-10 table.
func (w *ConsoleWriter) writeRanking(sb *strings.Builder, title string, rows []PartRow) {
	t := table.NewWriter()
	t.SetStyle(table.StyleLight)
	t.SetTitle(title)
	t.AppendHeader(table.Row{"Part", "Category", "Car Model", "Price", "Stock"})
	for _, r := range rows {
		t.AppendRow(table.Row{r.PartName, r.Category, r.CarModel, formatPrice(r.Price), r.Quantity})
	}
	sb.WriteString(t.Render())
	sb.WriteString("\n\n")
}
