// Package export serializes extracted product records to CSV.
//
// The column order is fixed and part of the output contract:
// title, product_url, categories, discount, current_price,
// original_price, rating, image_url. Rows appear in accumulation order —
// page order, then in-page document order — never sorted. Nil fields
// become empty cells, not a literal "null" marker.
//
// A reader is also provided so downstream tooling (and the round-trip
// tests) can load a previously written file. CSV cannot distinguish an
// empty cell from an absent field, so reading maps empty cells back to
// nil.
package export
