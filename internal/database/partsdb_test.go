package database

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/azubair/partscan/internal/model"
)

// openTestDB creates a fresh database in a temporary directory.
func openTestDB(t *testing.T) *PartsDB {
	t.Helper()

	pdb, err := Open(t.TempDir(), DefaultOptions())
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	t.Cleanup(func() {
		if err := pdb.Close(); err != nil {
			t.Errorf("failed to close database: %v", err)
		}
	})
	return pdb
}

func TestOpen(t *testing.T) {
	t.Parallel()

	t.Run("creates database file and directory", func(t *testing.T) {
		t.Parallel()

		dbDir := filepath.Join(t.TempDir(), "nested", "data")
		pdb, err := Open(dbDir, DefaultOptions())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		defer pdb.Close() //nolint:errcheck // Test cleanup

		if _, err := os.Stat(pdb.Path()); err != nil {
			t.Errorf("expected database file to exist: %v", err)
		}
	})

	t.Run("refuses missing database without create option", func(t *testing.T) {
		t.Parallel()

		opts := Options{CreateIfNotExists: false}
		if _, err := Open(t.TempDir(), opts); err == nil {
			t.Fatal("expected error for missing database")
		}
	})

	t.Run("reopens existing database", func(t *testing.T) {
		t.Parallel()

		dbDir := t.TempDir()
		pdb, err := Open(dbDir, DefaultOptions())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if err := pdb.Close(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		opts := Options{CreateIfNotExists: false, EnableWAL: true}
		pdb2, err := Open(dbDir, opts)
		if err != nil {
			t.Fatalf("unexpected error reopening: %v", err)
		}
		defer pdb2.Close() //nolint:errcheck // Test cleanup
	})
}

func TestSaveProducts(t *testing.T) {
	t.Parallel()

	const seedURL = "https://parts.example.com/shop/"
	ctx := context.Background()

	t.Run("round trip preserves nil fields", func(t *testing.T) {
		t.Parallel()

		pdb := openTestDB(t)
		products := []model.Product{
			{
				Title:        model.String("Brake Pad Set"),
				ProductURL:   model.String("https://parts.example.com/product/brake-pad/"),
				Categories:   model.String("Brakes, Front Axle"),
				CurrentPrice: model.String("$39.99"),
			},
			{
				Title:      model.String("Oil Filter"),
				Categories: model.String(""), // span present, zero links
			},
			{}, // all fields absent
		}

		if err := pdb.SaveProducts(ctx, seedURL, products); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		got, err := pdb.ListProducts(ctx, seedURL)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got) != 3 {
			t.Fatalf("expected 3 products, got %d", len(got))
		}

		if got[0].Title == nil || *got[0].Title != "Brake Pad Set" {
			t.Errorf("unexpected first title %v", got[0].Title)
		}
		if got[0].Discount != nil {
			t.Errorf("expected nil discount, got %q", *got[0].Discount)
		}

		// Empty non-nil categories survive the round trip
		if got[1].Categories == nil {
			t.Error("expected non-nil empty categories")
		} else if *got[1].Categories != "" {
			t.Errorf("expected empty categories, got %q", *got[1].Categories)
		}

		if !got[2].IsEmpty() {
			t.Errorf("expected all-nil record, got %+v", got[2])
		}
	})

	t.Run("records are scoped to their seed URL", func(t *testing.T) {
		t.Parallel()

		pdb := openTestDB(t)
		if err := pdb.SaveProducts(ctx, seedURL, []model.Product{{Title: model.String("Brake Pad")}}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if err := pdb.SaveProducts(ctx, "https://other.example.com/", []model.Product{{Title: model.String("Wiper")}}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		got, err := pdb.ListProducts(ctx, seedURL)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got) != 1 {
			t.Fatalf("expected 1 product, got %d", len(got))
		}
		if *got[0].Title != "Brake Pad" {
			t.Errorf("unexpected title %q", *got[0].Title)
		}
	})

	t.Run("empty save is a no-op", func(t *testing.T) {
		t.Parallel()

		pdb := openTestDB(t)
		if err := pdb.SaveProducts(ctx, seedURL, nil); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		got, err := pdb.ListProducts(ctx, seedURL)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got) != 0 {
			t.Errorf("expected no products, got %d", len(got))
		}
	})
}
