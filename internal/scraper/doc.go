// Package scraper turns raw catalog markup into product records.
//
// # Architecture
//
//   - Parse: builds a queryable document tree from raw bytes
//   - Products / Extract: recovers the eight product fields from each
//     listing item, tolerating any subset being absent
//   - NextPage: resolves the rel="next" pagination link
//
// # Tolerant extraction
//
// The target site's markup is not contractually stable, so extraction is
// eight independent optional lookups rather than one schema validation.
// Every lookup follows the same pattern: locate the element; if absent,
// the field is nil; otherwise take its trimmed text or attribute. A
// missing element never aborts the remaining lookups or sibling items,
// and Extract never fails — a record with all fields nil is still a
// valid record.
//
// Design decision: We use github.com/PuerkitoBio/goquery rather than
// walking x/net/html nodes directly because:
//  1. The extraction rules are class- and attribute-selector shaped;
//     goquery expresses them one line each
//  2. Its html parser is lenient, which the not-guaranteed-well-formed
//     source pages require
//  3. Scoped sub-queries (Find within a listing item) mirror the
//     two-level lookups exactly
package scraper
