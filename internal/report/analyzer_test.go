package report

import (
	"fmt"
	"testing"
)

// sampleRows returns a small dataset with known aggregates.
func sampleRows() []PartRow {
	return []PartRow{
		{PartName: "Brake Pad Set", Category: "Brakes", Manufacturer: "Bosch", CarModel: "Toyota Camry 2020", Price: 40, Quantity: 10},
		{PartName: "Brake Disc", Category: "Brakes", Manufacturer: "Bosch", CarModel: "Toyota Camry 2020", Price: 60, Quantity: 4},
		{PartName: "Oil Filter", Category: "Engine", Manufacturer: "Mann", CarModel: "Honda Civic 2019", Price: 10, Quantity: 30},
		{PartName: "Spark Plug", Category: "Engine", Manufacturer: "NGK", CarModel: "Honda Civic 2019", Price: 8, Quantity: 2},
	}
}

func TestAnalyze(t *testing.T) {
	t.Parallel()

	a := Analyze(sampleRows())

	t.Run("total parts", func(t *testing.T) {
		t.Parallel()
		if a.TotalParts != 4 {
			t.Errorf("expected 4 parts, got %d", a.TotalParts)
		}
	})

	t.Run("average price by manufacturer sorted by name", func(t *testing.T) {
		t.Parallel()

		want := []GroupStat{
			{Key: "Bosch", AveragePrice: 50},
			{Key: "Mann", AveragePrice: 10},
			{Key: "NGK", AveragePrice: 8},
		}
		if len(a.AvgPriceByManufacturer) != len(want) {
			t.Fatalf("expected %d groups, got %d", len(want), len(a.AvgPriceByManufacturer))
		}
		for i, w := range want {
			got := a.AvgPriceByManufacturer[i]
			if got.Key != w.Key || got.AveragePrice != w.AveragePrice {
				t.Errorf("group %d: expected %+v, got %+v", i, w, got)
			}
		}
	})

	t.Run("average price by category", func(t *testing.T) {
		t.Parallel()

		want := []GroupStat{
			{Key: "Brakes", AveragePrice: 50},
			{Key: "Engine", AveragePrice: 9},
		}
		if len(a.AvgPriceByCategory) != len(want) {
			t.Fatalf("expected %d groups, got %d", len(want), len(a.AvgPriceByCategory))
		}
		for i, w := range want {
			got := a.AvgPriceByCategory[i]
			if got.Key != w.Key || got.AveragePrice != w.AveragePrice {
				t.Errorf("group %d: expected %+v, got %+v", i, w, got)
			}
		}
	})

	t.Run("count by car model", func(t *testing.T) {
		t.Parallel()

		want := []GroupCount{
			{Key: "Honda Civic 2019", Count: 2},
			{Key: "Toyota Camry 2020", Count: 2},
		}
		if len(a.CountByCarModel) != len(want) {
			t.Fatalf("expected %d groups, got %d", len(want), len(a.CountByCarModel))
		}
		for i, w := range want {
			got := a.CountByCarModel[i]
			if got.Key != w.Key || got.Count != w.Count {
				t.Errorf("group %d: expected %+v, got %+v", i, w, got)
			}
		}
	})

	t.Run("most expensive ranking descends by price", func(t *testing.T) {
		t.Parallel()

		if len(a.TopExpensive) != 4 {
			t.Fatalf("expected 4 ranked parts, got %d", len(a.TopExpensive))
		}
		want := []string{"Brake Disc", "Brake Pad Set", "Oil Filter", "Spark Plug"}
		for i, w := range want {
			if a.TopExpensive[i].PartName != w {
				t.Errorf("rank %d: expected %q, got %q", i, w, a.TopExpensive[i].PartName)
			}
		}
	})

	t.Run("lowest stock ranking ascends by quantity", func(t *testing.T) {
		t.Parallel()

		want := []string{"Spark Plug", "Brake Disc", "Brake Pad Set", "Oil Filter"}
		for i, w := range want {
			if a.LowestStock[i].PartName != w {
				t.Errorf("rank %d: expected %q, got %q", i, w, a.LowestStock[i].PartName)
			}
		}
	})
}

func TestAnalyzeRankingsCapped(t *testing.T) {
	t.Parallel()

	rows := make([]PartRow, 0, 25)
	for i := 0; i < 25; i++ {
		rows = append(rows, PartRow{
			PartName:     fmt.Sprintf("Part %d", i),
			Category:     "Misc",
			Manufacturer: "ACME",
			CarModel:     "Toyota Camry 2020",
			Price:        float64(i),
			Quantity:     i,
		})
	}

	a := Analyze(rows)
	if len(a.TopExpensive) != topN {
		t.Errorf("expected %d expensive parts, got %d", topN, len(a.TopExpensive))
	}
	if len(a.LowestStock) != topN {
		t.Errorf("expected %d low-stock parts, got %d", topN, len(a.LowestStock))
	}
	if a.TopExpensive[0].Price != 24 {
		t.Errorf("expected highest price first, got %v", a.TopExpensive[0].Price)
	}
	if a.LowestStock[0].Quantity != 0 {
		t.Errorf("expected lowest quantity first, got %d", a.LowestStock[0].Quantity)
	}
}

func TestAnalyzeStableTies(t *testing.T) {
	t.Parallel()

	rows := []PartRow{
		{PartName: "First", Price: 10, Quantity: 5},
		{PartName: "Second", Price: 10, Quantity: 5},
		{PartName: "Third", Price: 10, Quantity: 5},
	}

	a := Analyze(rows)
	want := []string{"First", "Second", "Third"}
	for i, w := range want {
		if a.TopExpensive[i].PartName != w {
			t.Errorf("expensive rank %d: expected %q, got %q", i, w, a.TopExpensive[i].PartName)
		}
		if a.LowestStock[i].PartName != w {
			t.Errorf("stock rank %d: expected %q, got %q", i, w, a.LowestStock[i].PartName)
		}
	}
}

func TestAnalyzeEmptyDataset(t *testing.T) {
	t.Parallel()

	a := Analyze(nil)
	if a.TotalParts != 0 {
		t.Errorf("expected 0 parts, got %d", a.TotalParts)
	}
	if len(a.AvgPriceByManufacturer) != 0 || len(a.TopExpensive) != 0 {
		t.Error("expected empty aggregates")
	}
}
