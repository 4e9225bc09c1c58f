// Package database provides SQLite-based storage for partscan.
//
// It holds two kinds of data:
//   - products: raw records from crawl runs, with every field nullable,
//     persisted when a run is asked to keep its results beyond the CSV file
//   - spare_parts / car_models: the clean inventory the HTTP API manages
//
// Design decision: We use modernc.org/sqlite (a pure-Go SQLite port)
// because:
//  1. No cgo, so the binary cross-compiles trivially
//  2. A single-file database matches the single-operator CLI deployment
//  3. The inventory API's query needs (filters over one table) don't
//     justify a server database
package database
