package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/azubair/partscan/internal/model"
)

// PartRow is one dataset row: a spare part with the fields the analysis
// consumes. Extra dataset columns are ignored on read.
type PartRow struct {
	PartName     string
	Category     string
	Manufacturer string
	CarModel     string
	Price        float64
	Quantity     int
}

// requiredColumns are the dataset columns the analysis needs.
var requiredColumns = []string{
	"part_name",
	"category",
	"manufacturer",
	"car_model",
	"price",
	"quantity",
}

// ReadDataset reads a spare-parts dataset CSV. Columns are located by
// header name, so column order and extra columns don't matter.
func ReadDataset(r io.Reader) ([]PartRow, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("read dataset header: %w", err)
	}

	index := make(map[string]int, len(header))
	for i, name := range header {
		index[name] = i
	}
	for _, name := range requiredColumns {
		if _, ok := index[name]; !ok {
			return nil, fmt.Errorf("dataset missing required column %q", name)
		}
	}

	rows := make([]PartRow, 0)
	for line := 2; ; line++ {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read dataset row: %w", err)
		}

		cell := func(name string) string {
			i := index[name]
			if i >= len(record) {
				return ""
			}
			return record[i]
		}

		price, err := strconv.ParseFloat(cell("price"), 64)
		if err != nil {
			return nil, fmt.Errorf("dataset line %d: invalid price %q", line, cell("price"))
		}
		quantity, err := strconv.Atoi(cell("quantity"))
		if err != nil {
			return nil, fmt.Errorf("dataset line %d: invalid quantity %q", line, cell("quantity"))
		}

		rows = append(rows, PartRow{
			PartName:     cell("part_name"),
			Category:     cell("category"),
			Manufacturer: cell("manufacturer"),
			CarModel:     cell("car_model"),
			Price:        price,
			Quantity:     quantity,
		})
	}

	return rows, nil
}

// FromParts converts stored inventory records into dataset rows, so the
// analysis can run straight from the database instead of a CSV export.
// The car model is flattened to "Manufacturer Model Year".
func FromParts(parts []model.SparePart) []PartRow {
	rows := make([]PartRow, 0, len(parts))
	for i := range parts {
		p := &parts[i]
		rows = append(rows, PartRow{
			PartName:     p.PartName,
			Category:     p.Category,
			Manufacturer: p.Manufacturer,
			CarModel:     fmt.Sprintf("%s %s %d", p.CarModel.Manufacturer, p.CarModel.Model, p.CarModel.Year),
			Price:        p.Price,
			Quantity:     p.Quantity,
		})
	}
	return rows
}
