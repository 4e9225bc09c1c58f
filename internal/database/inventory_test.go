package database

import (
	"context"
	"errors"
	"testing"

	"github.com/azubair/partscan/internal/model"
)

// testCarModel inserts a car model and returns it with its ID set.
func testCarModel(t *testing.T, pdb *PartsDB, manufacturer, modelName string, year int) model.CarModel {
	t.Helper()

	cm := model.CarModel{Manufacturer: manufacturer, Model: modelName, Year: year}
	if err := pdb.CreateCarModel(context.Background(), &cm); err != nil {
		t.Fatalf("failed to create car model: %v", err)
	}
	return cm
}

// testPart returns a valid spare part referencing the given car model.
func testPart(cm model.CarModel, partNumber string, price float64) *model.SparePart {
	return &model.SparePart{
		PartName:     "Brake Pad Set",
		Category:     "Brakes",
		PartNumber:   partNumber,
		Manufacturer: "Bosch",
		Description:  "Front axle brake pads",
		Price:        price,
		Quantity:     10,
		MinStock:     2,
		CarModel:     cm,
		Supplier:     "ACME Parts",
	}
}

func TestCreateCarModel(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("assigns an ID", func(t *testing.T) {
		t.Parallel()

		pdb := openTestDB(t)
		cm := testCarModel(t, pdb, "Toyota", "Camry", 2020)
		if cm.ID == 0 {
			t.Error("expected non-zero ID")
		}
	})

	t.Run("duplicate triple is rejected", func(t *testing.T) {
		t.Parallel()

		pdb := openTestDB(t)
		testCarModel(t, pdb, "Toyota", "Camry", 2020)

		dup := model.CarModel{Manufacturer: "Toyota", Model: "Camry", Year: 2020}
		if err := pdb.CreateCarModel(ctx, &dup); !errors.Is(err, ErrDuplicateCarModel) {
			t.Errorf("expected ErrDuplicateCarModel, got %v", err)
		}
	})

	t.Run("duplicate check is case-insensitive", func(t *testing.T) {
		t.Parallel()

		pdb := openTestDB(t)
		testCarModel(t, pdb, "Toyota", "Camry", 2020)

		dup := model.CarModel{Manufacturer: "toyota", Model: "CAMRY", Year: 2020}
		if err := pdb.CreateCarModel(ctx, &dup); !errors.Is(err, ErrDuplicateCarModel) {
			t.Errorf("expected ErrDuplicateCarModel, got %v", err)
		}
	})

	t.Run("same model in a different year is distinct", func(t *testing.T) {
		t.Parallel()

		pdb := openTestDB(t)
		testCarModel(t, pdb, "Toyota", "Camry", 2020)
		testCarModel(t, pdb, "Toyota", "Camry", 2021)

		models, err := pdb.ListCarModels(ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(models) != 2 {
			t.Errorf("expected 2 models, got %d", len(models))
		}
	})
}

func TestCreateSparePart(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("assigns ID, timestamps, and availability", func(t *testing.T) {
		t.Parallel()

		pdb := openTestDB(t)
		cm := testCarModel(t, pdb, "Toyota", "Camry", 2020)

		p := testPart(cm, "BP-1001", 39.99)
		if err := pdb.CreateSparePart(ctx, p); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if p.ID == 0 {
			t.Error("expected non-zero ID")
		}
		if p.AddedOn.IsZero() || p.UpdatedOn.IsZero() {
			t.Error("expected timestamps to be set")
		}
		if !p.IsAvailable {
			t.Error("expected part with stock to be available")
		}
	})

	t.Run("zero quantity means unavailable", func(t *testing.T) {
		t.Parallel()

		pdb := openTestDB(t)
		cm := testCarModel(t, pdb, "Toyota", "Camry", 2020)

		p := testPart(cm, "BP-1002", 39.99)
		p.Quantity = 0
		if err := pdb.CreateSparePart(ctx, p); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if p.IsAvailable {
			t.Error("expected zero-quantity part to be unavailable")
		}
	})

	t.Run("unknown car model is rejected", func(t *testing.T) {
		t.Parallel()

		pdb := openTestDB(t)
		ghost := model.CarModel{Manufacturer: "Nonexistent", Model: "Phantom", Year: 1999}

		err := pdb.CreateSparePart(ctx, testPart(ghost, "BP-1003", 10))
		if !errors.Is(err, ErrCarModelNotFound) {
			t.Errorf("expected ErrCarModelNotFound, got %v", err)
		}
	})

	t.Run("duplicate part number is rejected", func(t *testing.T) {
		t.Parallel()

		pdb := openTestDB(t)
		cm := testCarModel(t, pdb, "Toyota", "Camry", 2020)

		if err := pdb.CreateSparePart(ctx, testPart(cm, "BP-1004", 10)); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		err := pdb.CreateSparePart(ctx, testPart(cm, "BP-1004", 20))
		if !errors.Is(err, ErrDuplicatePartNumber) {
			t.Errorf("expected ErrDuplicatePartNumber, got %v", err)
		}
	})

	t.Run("car model lookup is case-insensitive", func(t *testing.T) {
		t.Parallel()

		pdb := openTestDB(t)
		cm := testCarModel(t, pdb, "Toyota", "Camry", 2020)

		ref := model.CarModel{Manufacturer: "toyota", Model: "camry", Year: 2020}
		p := testPart(ref, "BP-1005", 10)
		if err := pdb.CreateSparePart(ctx, p); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		// The stored canonical spelling replaces the request's spelling
		if p.CarModel.ID != cm.ID || p.CarModel.Model != "Camry" {
			t.Errorf("expected canonical car model, got %+v", p.CarModel)
		}
	})
}

func TestGetSparePart(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("returns stored part with its car model", func(t *testing.T) {
		t.Parallel()

		pdb := openTestDB(t)
		cm := testCarModel(t, pdb, "Toyota", "Camry", 2020)
		created := testPart(cm, "BP-2001", 39.99)
		if err := pdb.CreateSparePart(ctx, created); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		got, err := pdb.GetSparePart(ctx, created.ID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.PartName != "Brake Pad Set" || got.PartNumber != "BP-2001" {
			t.Errorf("unexpected part %+v", got)
		}
		if got.CarModel.Model != "Camry" || got.CarModel.Year != 2020 {
			t.Errorf("unexpected car model %+v", got.CarModel)
		}
	})

	t.Run("unknown ID returns ErrPartNotFound", func(t *testing.T) {
		t.Parallel()

		pdb := openTestDB(t)
		if _, err := pdb.GetSparePart(ctx, 9999); !errors.Is(err, ErrPartNotFound) {
			t.Errorf("expected ErrPartNotFound, got %v", err)
		}
	})
}

func TestListSpareParts(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	// seedInventory creates two car models and four parts with distinct prices.
	seedInventory := func(t *testing.T, pdb *PartsDB) {
		t.Helper()
		camry := testCarModel(t, pdb, "Toyota", "Camry", 2020)
		civic := testCarModel(t, pdb, "Honda", "Civic", 2019)

		for _, part := range []*model.SparePart{
			testPart(camry, "P-10", 10),
			testPart(camry, "P-25", 25),
			testPart(civic, "P-50", 50),
			testPart(civic, "P-80", 80),
		} {
			if err := pdb.CreateSparePart(ctx, part); err != nil {
				t.Fatalf("failed to seed part %s: %v", part.PartNumber, err)
			}
		}
	}

	price := func(v float64) *float64 { return &v }

	partNumbers := func(parts []model.SparePart) []string {
		nums := make([]string, 0, len(parts))
		for _, p := range parts {
			nums = append(nums, p.PartNumber)
		}
		return nums
	}

	equal := func(a, b []string) bool {
		if len(a) != len(b) {
			return false
		}
		for i := range a {
			if a[i] != b[i] {
				return false
			}
		}
		return true
	}

	t.Run("no filter returns everything in added order", func(t *testing.T) {
		t.Parallel()

		pdb := openTestDB(t)
		seedInventory(t, pdb)

		parts, err := pdb.ListSpareParts(ctx, PartFilter{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got := partNumbers(parts); !equal(got, []string{"P-10", "P-25", "P-50", "P-80"}) {
			t.Errorf("unexpected parts %v", got)
		}
	})

	t.Run("car model filter is case-insensitive", func(t *testing.T) {
		t.Parallel()

		pdb := openTestDB(t)
		seedInventory(t, pdb)

		parts, err := pdb.ListSpareParts(ctx, PartFilter{CarModel: "camry"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got := partNumbers(parts); !equal(got, []string{"P-10", "P-25"}) {
			t.Errorf("unexpected parts %v", got)
		}
	})

	t.Run("min price is a lower bound", func(t *testing.T) {
		t.Parallel()

		pdb := openTestDB(t)
		seedInventory(t, pdb)

		parts, err := pdb.ListSpareParts(ctx, PartFilter{MinPrice: price(25)})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got := partNumbers(parts); !equal(got, []string{"P-25", "P-50", "P-80"}) {
			t.Errorf("unexpected parts %v", got)
		}
	})

	t.Run("max price is a real upper bound", func(t *testing.T) {
		t.Parallel()

		pdb := openTestDB(t)
		seedInventory(t, pdb)

		parts, err := pdb.ListSpareParts(ctx, PartFilter{MaxPrice: price(50)})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got := partNumbers(parts); !equal(got, []string{"P-10", "P-25", "P-50"}) {
			t.Errorf("unexpected parts %v", got)
		}
	})

	t.Run("combined filters intersect", func(t *testing.T) {
		t.Parallel()

		pdb := openTestDB(t)
		seedInventory(t, pdb)

		parts, err := pdb.ListSpareParts(ctx, PartFilter{
			CarModel: "Civic",
			MinPrice: price(25),
			MaxPrice: price(60),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got := partNumbers(parts); !equal(got, []string{"P-50"}) {
			t.Errorf("unexpected parts %v", got)
		}
	})

	t.Run("no matches is an empty slice", func(t *testing.T) {
		t.Parallel()

		pdb := openTestDB(t)
		seedInventory(t, pdb)

		parts, err := pdb.ListSpareParts(ctx, PartFilter{CarModel: "Corolla"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if parts == nil || len(parts) != 0 {
			t.Errorf("expected empty slice, got %v", parts)
		}
	})
}

func TestUpdateSparePart(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("updates fields and recomputes availability", func(t *testing.T) {
		t.Parallel()

		pdb := openTestDB(t)
		cm := testCarModel(t, pdb, "Toyota", "Camry", 2020)
		p := testPart(cm, "BP-3001", 39.99)
		if err := pdb.CreateSparePart(ctx, p); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		p.Price = 29.99
		p.Quantity = 0
		if err := pdb.UpdateSparePart(ctx, p); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		got, err := pdb.GetSparePart(ctx, p.ID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Price != 29.99 {
			t.Errorf("expected price 29.99, got %v", got.Price)
		}
		if got.IsAvailable {
			t.Error("expected zero-quantity part to become unavailable")
		}
	})

	t.Run("unknown ID returns ErrPartNotFound", func(t *testing.T) {
		t.Parallel()

		pdb := openTestDB(t)
		cm := testCarModel(t, pdb, "Toyota", "Camry", 2020)

		ghost := testPart(cm, "BP-3002", 10)
		ghost.ID = 9999
		if err := pdb.UpdateSparePart(ctx, ghost); !errors.Is(err, ErrPartNotFound) {
			t.Errorf("expected ErrPartNotFound, got %v", err)
		}
	})

	t.Run("unknown car model is rejected", func(t *testing.T) {
		t.Parallel()

		pdb := openTestDB(t)
		cm := testCarModel(t, pdb, "Toyota", "Camry", 2020)
		p := testPart(cm, "BP-3003", 10)
		if err := pdb.CreateSparePart(ctx, p); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		p.CarModel = model.CarModel{Manufacturer: "Nonexistent", Model: "Phantom", Year: 1999}
		if err := pdb.UpdateSparePart(ctx, p); !errors.Is(err, ErrCarModelNotFound) {
			t.Errorf("expected ErrCarModelNotFound, got %v", err)
		}
	})
}

func TestDeleteSparePart(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("deleted part is gone", func(t *testing.T) {
		t.Parallel()

		pdb := openTestDB(t)
		cm := testCarModel(t, pdb, "Toyota", "Camry", 2020)
		p := testPart(cm, "BP-4001", 10)
		if err := pdb.CreateSparePart(ctx, p); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if err := pdb.DeleteSparePart(ctx, p.ID); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, err := pdb.GetSparePart(ctx, p.ID); !errors.Is(err, ErrPartNotFound) {
			t.Errorf("expected ErrPartNotFound after delete, got %v", err)
		}
	})

	t.Run("unknown ID returns ErrPartNotFound", func(t *testing.T) {
		t.Parallel()

		pdb := openTestDB(t)
		if err := pdb.DeleteSparePart(ctx, 9999); !errors.Is(err, ErrPartNotFound) {
			t.Errorf("expected ErrPartNotFound, got %v", err)
		}
	})
}
