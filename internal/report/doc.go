// Package report aggregates a finished spare-parts dataset into summary
// statistics and renders them in several formats.
//
// The analysis is pure batch aggregation over already-clean data:
//   - average price by manufacturer
//   - average price by category
//   - part count by compatible car model
//   - top 10 most expensive parts
//   - top 10 lowest-stock parts
//
// Writers share one interface so the CLI can target the terminal
// (go-pretty tables), Markdown, or a sectioned CSV file with the same
// analysis pass. The package also removes exact-duplicate rows from a
// raw dataset, which is the only cleaning step the report pipeline owns.
package report
