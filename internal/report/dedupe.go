package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
)

// Dedupe copies a dataset CSV from r to w, dropping rows that are exact
// duplicates of an earlier row. The header row is always kept, the first
// occurrence of each row wins, and row order is otherwise preserved.
// Returns the number of rows removed.
func Dedupe(r io.Reader, w io.Writer) (int, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cw := csv.NewWriter(w)

	header, err := cr.Read()
	if err != nil {
		return 0, fmt.Errorf("read dataset header: %w", err)
	}
	if err := cw.Write(header); err != nil {
		return 0, fmt.Errorf("write dataset header: %w", err)
	}

	seen := make(map[string]bool)
	removed := 0
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return removed, fmt.Errorf("read dataset row: %w", err)
		}

		// Join with an unlikely separator so ("a,b") and ("a","b")
		// don't collide.
		key := strings.Join(record, "\x1f")
		if seen[key] {
			removed++
			continue
		}
		seen[key] = true

		if err := cw.Write(record); err != nil {
			return removed, fmt.Errorf("write dataset row: %w", err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return removed, fmt.Errorf("flush cleaned dataset: %w", err)
	}
	return removed, nil
}
