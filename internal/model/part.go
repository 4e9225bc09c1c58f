package model

import "time"

// CarModel identifies a vehicle a spare part is compatible with.
// The (Manufacturer, Model, Year) triple is unique in the database.
type CarModel struct {
	// ID is the database row identifier. Zero for unsaved models.
	ID int64 `json:"id,omitempty"`

	// Manufacturer is the vehicle maker (e.g. "Toyota").
	Manufacturer string `json:"manufacturer"`

	// Model is the vehicle model name (e.g. "Camry").
	Model string `json:"model"`

	// Year is the model year.
	Year int `json:"year"`
}

// SparePart is an inventory record exposed by the HTTP API.
// It mirrors the catalog items the crawler extracts, but with clean,
// typed fields suitable for storage and querying.
type SparePart struct {
	// ID is the database row identifier. Zero for unsaved parts.
	ID int64 `json:"id,omitempty"`

	// PartName is the human-readable part name.
	PartName string `json:"part_name"`

	// Category is the part category (e.g. "Brakes", "Suspension").
	Category string `json:"category"`

	// PartNumber is the manufacturer part number. Unique per part.
	PartNumber string `json:"part_number"`

	// Manufacturer is the part maker, not the vehicle maker.
	Manufacturer string `json:"manufacturer"`

	// Description is optional free text.
	Description string `json:"description,omitempty"`

	// Price is the unit price.
	Price float64 `json:"price"`

	// Quantity is the units currently in stock.
	Quantity int `json:"quantity"`

	// MinStock is the restocking threshold.
	MinStock int `json:"min_stock"`

	// CarModel is the compatible vehicle. Must reference an existing
	// car model when the part is created or updated.
	CarModel CarModel `json:"car_model"`

	// Supplier is the supplying vendor.
	Supplier string `json:"supplier"`

	// AddedOn is when the record was first stored.
	AddedOn time.Time `json:"added_on"`

	// UpdatedOn is when the record was last modified.
	UpdatedOn time.Time `json:"updated_on"`

	// IsAvailable is derived from Quantity on every write; it is never
	// set directly by clients.
	IsAvailable bool `json:"is_available"`
}

// NeedsRestocking reports whether the stock level has reached the
// restocking threshold.
func (s *SparePart) NeedsRestocking() bool {
	return s.Quantity <= s.MinStock
}

// RefreshAvailability recomputes IsAvailable from the current quantity.
// Called by the storage layer before every insert or update.
func (s *SparePart) RefreshAvailability() {
	s.IsAvailable = s.Quantity > 0
}
