package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/azubair/partscan/internal/model"
)

// Columns is the fixed output column order.
var Columns = []string{
	"title",
	"product_url",
	"categories",
	"discount",
	"current_price",
	"original_price",
	"rating",
	"image_url",
}

// WriteCSV writes a header row followed by one row per product, in the
// order given. The writer is flushed before returning.
func WriteCSV(w io.Writer, products []model.Product) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(Columns); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}

	row := make([]string, len(Columns))
	for i := range products {
		for j, field := range products[i].Fields() {
			if field == nil {
				row[j] = ""
				continue
			}
			row[j] = *field
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write csv row %d: %w", i+1, err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("flush csv: %w", err)
	}
	return nil
}

// SaveCSV writes the products to a file at path, creating parent
// directories as needed. An existing file is overwritten.
func SaveCSV(path string, products []model.Product) error {
	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return fmt.Errorf("create output directory: %w", err)
		}
	}

	f, err := os.Create(path) //nolint:gosec // User-provided output path is intentional
	if err != nil {
		return fmt.Errorf("create output file: %w", err)
	}

	if err := WriteCSV(f, products); err != nil {
		_ = f.Close()
		return err
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("close output file: %w", err)
	}
	return nil
}

// ReadCSV reads a file previously written by WriteCSV. Empty cells map
// back to nil fields; the header row is validated against Columns.
func ReadCSV(r io.Reader) ([]model.Product, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = len(Columns)

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("read csv header: %w", err)
	}
	for i, name := range Columns {
		if header[i] != name {
			return nil, fmt.Errorf("unexpected csv header: got %q in column %d, want %q", header[i], i, name)
		}
	}

	products := make([]model.Product, 0)
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read csv row: %w", err)
		}

		fields := make([]*string, len(Columns))
		for i, cell := range row {
			if cell == "" {
				continue
			}
			fields[i] = model.String(cell)
		}
		products = append(products, model.Product{
			Title:         fields[0],
			ProductURL:    fields[1],
			Categories:    fields[2],
			Discount:      fields[3],
			CurrentPrice:  fields[4],
			OriginalPrice: fields[5],
			Rating:        fields[6],
			ImageURL:      fields[7],
		})
	}

	return products, nil
}
