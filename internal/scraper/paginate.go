package scraper

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// nextLinkSelector matches the relation-marked pagination anchor.
const nextLinkSelector = "a[rel='next']"

// NextPage locates the rel="next" anchor on the page and resolves its
// href against currentURL. Relative paths, protocol-relative paths, and
// already-absolute URLs all resolve uniformly.
//
// The empty return value is the crawl loop's sole termination signal:
// it means no relation-marked anchor with a resolvable href exists.
func NextPage(doc *goquery.Document, currentURL string) string {
	link := doc.Find(nextLinkSelector).First()
	if link.Length() == 0 {
		return ""
	}

	href, ok := link.Attr("href")
	href = strings.TrimSpace(href)
	if !ok || href == "" {
		return ""
	}

	base, err := url.Parse(currentURL)
	if err != nil {
		return ""
	}

	ref, err := url.Parse(href)
	if err != nil {
		return ""
	}

	return base.ResolveReference(ref).String()
}
