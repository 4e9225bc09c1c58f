package report

import "sort"

// topN is how many parts the "most expensive" and "lowest stock"
// rankings keep.
const topN = 10

// GroupStat is an aggregated average for one group key.
type GroupStat struct {
	// Key is the group value (a manufacturer or category name).
	Key string

	// AveragePrice is the mean price over the group's rows.
	AveragePrice float64
}

// GroupCount is a row count for one group key.
type GroupCount struct {
	// Key is the group value (a car model name).
	Key string

	// Count is the number of rows in the group.
	Count int
}

// Analysis holds the full set of summary statistics over a dataset.
type Analysis struct {
	// TotalParts is the number of dataset rows analyzed.
	TotalParts int

	// AvgPriceByManufacturer averages part prices per manufacturer,
	// sorted by manufacturer name.
	AvgPriceByManufacturer []GroupStat

	// AvgPriceByCategory averages part prices per category, sorted by
	// category name.
	AvgPriceByCategory []GroupStat

	// CountByCarModel counts parts per compatible car model, sorted by
	// model name.
	CountByCarModel []GroupCount

	// TopExpensive holds up to ten parts by descending price.
	TopExpensive []PartRow

	// LowestStock holds up to ten parts by ascending quantity.
	LowestStock []PartRow
}

// Analyze computes all summary statistics over the dataset.
// Group results are sorted by key so output is deterministic; rankings
// sort stably so equal values keep their dataset order.
func Analyze(rows []PartRow) *Analysis {
	a := &Analysis{
		TotalParts:             len(rows),
		AvgPriceByManufacturer: averageBy(rows, func(r PartRow) string { return r.Manufacturer }),
		AvgPriceByCategory:     averageBy(rows, func(r PartRow) string { return r.Category }),
		CountByCarModel:        countBy(rows, func(r PartRow) string { return r.CarModel }),
	}

	expensive := make([]PartRow, len(rows))
	copy(expensive, rows)
	sort.SliceStable(expensive, func(i, j int) bool {
		return expensive[i].Price > expensive[j].Price
	})
	a.TopExpensive = headRows(expensive)

	lowStock := make([]PartRow, len(rows))
	copy(lowStock, rows)
	sort.SliceStable(lowStock, func(i, j int) bool {
		return lowStock[i].Quantity < lowStock[j].Quantity
	})
	a.LowestStock = headRows(lowStock)

	return a
}

// averageBy computes the mean price per group key, sorted by key.
func averageBy(rows []PartRow, key func(PartRow) string) []GroupStat {
	sums := make(map[string]float64)
	counts := make(map[string]int)
	for _, r := range rows {
		k := key(r)
		sums[k] += r.Price
		counts[k]++
	}

	stats := make([]GroupStat, 0, len(sums))
	for k, sum := range sums {
		stats = append(stats, GroupStat{
			Key:          k,
			AveragePrice: sum / float64(counts[k]),
		})
	}
	sort.Slice(stats, func(i, j int) bool { return stats[i].Key < stats[j].Key })
	return stats
}

// countBy counts rows per group key, sorted by key.
func countBy(rows []PartRow, key func(PartRow) string) []GroupCount {
	counts := make(map[string]int)
	for _, r := range rows {
		counts[key(r)]++
	}

	result := make([]GroupCount, 0, len(counts))
	for k, n := range counts {
		result = append(result, GroupCount{Key: k, Count: n})
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Key < result[j].Key })
	return result
}

// headRows returns up to topN rows.
func headRows(rows []PartRow) []PartRow {
	if len(rows) > topN {
		rows = rows[:topN]
	}
	return rows
}
