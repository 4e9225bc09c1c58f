package report

import (
	"strings"
	"testing"
)

func TestFormatPrice(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   float64
		want string
	}{
		{39.99, "39.99"},
		{10, "10.00"},
		{9.005, "9.01"},
		{0, "0.00"},
	}

	for _, tt := range tests {
		if got := formatPrice(tt.in); got != tt.want {
			t.Errorf("formatPrice(%v): expected %q, got %q", tt.in, tt.want, got)
		}
	}
}

func TestConsoleWriter(t *testing.T) {
	t.Parallel()

	var sb strings.Builder
	w := NewConsoleWriter(&sb)

	n, err := w.Write(Analyze(sampleRows()))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n != len(sb.String()) {
		t.Errorf("reported %d bytes, wrote %d", n, len(sb.String()))
	}

	out := sb.String()
	for _, want := range []string{
		"Spare parts dataset report (4 parts)",
		titleAvgByManufacturer,
		titleAvgByCategory,
		titleCountByCarModel,
		titleTopExpensive,
		titleLowestStock,
		"Bosch",
		"50.00",
		"Toyota Camry 2020",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("expected output to contain %q", want)
		}
	}
}

func TestMarkdownWriter(t *testing.T) {
	t.Parallel()

	var sb strings.Builder
	w := NewMarkdownWriter(&sb)

	if _, err := w.Write(Analyze(sampleRows())); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	out := sb.String()
	for _, want := range []string{
		"# Spare Parts Dataset Report",
		"Parts analyzed: 4",
		"## " + titleAvgByManufacturer,
		"## " + titleLowestStock,
		"| Bosch",
		"50.00",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("expected output to contain %q", want)
		}
	}
}

func TestCSVWriter(t *testing.T) {
	t.Parallel()

	var sb strings.Builder
	w := NewCSVWriter(&sb)

	if _, err := w.Write(Analyze(sampleRows())); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	out := sb.String()

	t.Run("sections appear in order", func(t *testing.T) {
		t.Parallel()

		last := -1
		for _, title := range []string{
			titleAvgByManufacturer,
			titleAvgByCategory,
			titleCountByCarModel,
			titleTopExpensive,
			titleLowestStock,
		} {
			idx := strings.Index(out, title)
			if idx < 0 {
				t.Fatalf("expected section %q", title)
			}
			if idx < last {
				t.Errorf("section %q out of order", title)
			}
			last = idx
		}
	})

	t.Run("sections carry headers and rows", func(t *testing.T) {
		t.Parallel()

		for _, want := range []string{
			"manufacturer,average_price",
			"Bosch,50.00",
			"car_model,spare_part_count",
			"Toyota Camry 2020,2",
			"part_name,category,car_model,price",
			"Brake Disc,Brakes,Toyota Camry 2020,60.00",
		} {
			if !strings.Contains(out, want) {
				t.Errorf("expected output to contain %q", want)
			}
		}
	})

	t.Run("sections are separated by blank lines", func(t *testing.T) {
		t.Parallel()

		if !strings.Contains(out, "\n\n") {
			t.Error("expected blank line between sections")
		}
	})
}
