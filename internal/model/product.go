package model

// Product represents one listing item extracted from a catalog page.
// Every field is independently optional: the source markup is not
// contractually stable, and a missing element is a data-quality fact,
// not an error. A Product with all fields nil is still a valid record.
//
// Design decision: We use *string rather than string for each field
// because the CSV sink and the database must distinguish "absent"
// (empty cell, NULL column) from "present but empty". The categories
// field in particular can legitimately be an empty non-nil string when
// the metadata span exists but contains no category links.
type Product struct {
	// Title is the listing title from the heading anchor's visible text.
	Title *string `json:"title"`

	// ProductURL is the heading anchor's href. It may be absolute or
	// site-relative; it is stored as found, not resolved.
	ProductURL *string `json:"product_url"`

	// Categories is the ", "-joined text of every category link inside
	// the metadata span. Nil when the span is absent; empty when the
	// span exists but holds no links.
	Categories *string `json:"categories"`

	// Discount is the text of the sale badge (e.g. "-20%").
	Discount *string `json:"discount"`

	// CurrentPrice is the text of the inserted (new) price element.
	CurrentPrice *string `json:"current_price"`

	// OriginalPrice is the text of the struck-through price element.
	// Present only when a discount strikes through a prior price.
	OriginalPrice *string `json:"original_price"`

	// Rating is the text of the star-rating container's inner span
	// (e.g. "Rated 4.50 out of 5").
	Rating *string `json:"rating"`

	// ImageURL is the src of the featured-image thumbnail.
	ImageURL *string `json:"image_url"`
}

// Fields returns the product's fields in the canonical column order:
// title, product_url, categories, discount, current_price, original_price,
// rating, image_url. The CSV sink and the database rely on this order.
func (p *Product) Fields() []*string {
	return []*string{
		p.Title,
		p.ProductURL,
		p.Categories,
		p.Discount,
		p.CurrentPrice,
		p.OriginalPrice,
		p.Rating,
		p.ImageURL,
	}
}

// IsEmpty returns true if every field is nil.
// Empty products are still recorded; this exists for observability only.
func (p *Product) IsEmpty() bool {
	for _, f := range p.Fields() {
		if f != nil {
			return false
		}
	}
	return true
}

// String returns a pointer to s. Helper for building Products in tests
// and extraction code.
func String(s string) *string {
	return &s
}
