// Package model defines the core data structures used throughout partscan.
//
// This package contains the following main types:
//   - Product: One extracted catalog listing item with tolerant, nullable fields
//   - SparePart: An inventory record managed by the HTTP API
//   - CarModel: A vehicle a spare part is compatible with
//
// Design decision: We separate models into their own package to avoid circular
// dependencies. Multiple packages (scraper, crawler, export, database, api,
// report) need to use these types, so centralizing them prevents import cycles.
//
// The models are designed to be serializable to JSON for API responses and
// database storage.
package model
