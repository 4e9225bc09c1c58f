package scraper

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/azubair/partscan/internal/model"
)

// Selectors for the catalog theme's listing markup.
// These are fixed class markers, not configuration: the extraction rules
// are coupled to this markup and changing one without the others would
// silently produce all-nil records.
const (
	// ItemSelector matches one product listing item.
	ItemSelector = "div.porto-tb-item"

	// headingSelector matches the title heading inside an item.
	// The title text and product URL both live on its inner anchor.
	headingSelector = "h3.porto-heading"

	// metaSelector matches the category metadata span.
	metaSelector = "span.porto-tb-meta"

	// saleBadgeSelector matches the discount badge.
	saleBadgeSelector = "div.onsale"

	// priceSelector matches the price container. The current price is
	// its <ins> child, the struck-through original price its <del> child.
	priceSelector = "div.tb-woo-price"

	// ratingSelector matches the star-rating container.
	ratingSelector = "div.star-rating"

	// imageAnchorSelector matches the featured-image link by its
	// accessibility label; the thumbnail URL is on its inner <img>.
	imageAnchorSelector = "a[aria-label='post featured image']"
)

// Parse builds a queryable document tree from raw markup.
// Parsing is lenient: missing closing tags and stray attributes do not
// fail, because the source pages are not guaranteed well-formed.
func Parse(body []byte) (*goquery.Document, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("parse page: %w", err)
	}
	return doc, nil
}

// Products extracts every listing item on the page, in document order.
// A page with zero listing items yields an empty slice, not an error.
func Products(doc *goquery.Document) []model.Product {
	products := make([]model.Product, 0)
	doc.Find(ItemSelector).Each(func(_ int, item *goquery.Selection) {
		products = append(products, Extract(item))
	})
	return products
}

// Extract recovers the eight product fields from one listing item.
// It never fails; every field is independently guarded and defaults to
// nil when its element is absent.
func Extract(item *goquery.Selection) model.Product {
	var p model.Product

	// Title and product URL share one heading lookup: if the heading or
	// its anchor is absent, both stay nil together.
	if heading := item.Find(headingSelector).First(); heading.Length() > 0 {
		if anchor := heading.Find("a").First(); anchor.Length() > 0 {
			p.Title = model.String(strings.TrimSpace(anchor.Text()))
			if href, ok := anchor.Attr("href"); ok {
				p.ProductURL = model.String(href)
			}
		}
	}

	// Categories: every anchor inside the metadata span, joined with ", ".
	// A span with zero anchors yields an empty joined string, not nil.
	if meta := item.Find(metaSelector).First(); meta.Length() > 0 {
		names := make([]string, 0)
		meta.Find("a").Each(func(_ int, link *goquery.Selection) {
			names = append(names, strings.TrimSpace(link.Text()))
		})
		p.Categories = model.String(strings.Join(names, ", "))
	}

	// Discount badge.
	if badge := item.Find(saleBadgeSelector).First(); badge.Length() > 0 {
		p.Discount = model.String(strings.TrimSpace(badge.Text()))
	}

	// Prices: the inserted (new) price and the struck-through original
	// price, both scoped to the price container.
	if price := item.Find(priceSelector).First(); price.Length() > 0 {
		if ins := price.Find("ins").First(); ins.Length() > 0 {
			p.CurrentPrice = model.String(strings.TrimSpace(ins.Text()))
		}
		if del := price.Find("del").First(); del.Length() > 0 {
			p.OriginalPrice = model.String(strings.TrimSpace(del.Text()))
		}
	}

	// Rating: the inner span of the star-rating container.
	if rating := item.Find(ratingSelector).First(); rating.Length() > 0 {
		if span := rating.Find("span").First(); span.Length() > 0 {
			p.Rating = model.String(strings.TrimSpace(span.Text()))
		}
	}

	// Thumbnail: the inner image of the featured-image link.
	if anchor := item.Find(imageAnchorSelector).First(); anchor.Length() > 0 {
		if img := anchor.Find("img").First(); img.Length() > 0 {
			if src, ok := img.Attr("src"); ok {
				p.ImageURL = model.String(src)
			}
		}
	}

	return p
}
