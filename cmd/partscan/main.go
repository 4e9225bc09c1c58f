// Package main provides the entry point for the partscan CLI.
//
// partscan is a polite catalog crawler and spare-parts inventory tool.
// It extracts product listings from paginated catalog pages, respecting
// robots.txt, and serves a small inventory API over the collected data.
//
// Usage:
//
//	partscan crawl <listing-url>
//	partscan serve
//	partscan report <dataset.csv>
//
// See --help for all available options.
package main

// main is the entry point for partscan.
func main() {
	Execute()
}
