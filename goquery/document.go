// Package goquery implements the scraper's HTML parsing on top of
// github.com/PuerkitoBio/goquery.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/scraper"
)

// parseHTML builds a document tree from raw HTML.
func parseHTML(html string) (*goquery.Document, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, scraper.Errorf(scraper.EINVALID, "failed to parse HTML: %v", err)
	}
	return doc, nil
}

// trimmedText returns the selection's combined text without surrounding
// whitespace.
func trimmedText(sel *goquery.Selection) string {
	return strings.TrimSpace(sel.Text())
}
