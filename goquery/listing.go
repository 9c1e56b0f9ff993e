package goquery

import (
	"sort"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/scraper"
)

// Listing page markup.
const (
	containerSelector = "article"
	typeSelector      = `span[data-test="article.type"]`
	actionSelector    = `a[data-track-action="view article"]`
)

// Ensure ListingParser implements scraper.ListingParser at compile time.
var _ scraper.ListingParser = (*ListingParser)(nil)

// ListingParser reads article containers from a listing page.
type ListingParser struct {
	baseURL string
}

// NewListingParser creates a ListingParser that prefixes relative article
// links with baseURL.
func NewListingParser(baseURL string) *ListingParser {
	return &ListingParser{baseURL: baseURL}
}

// Categories returns the distinct category labels on the page, sorted.
func (p *ListingParser) Categories(html string) ([]string, error) {
	doc, err := parseHTML(html)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{})
	doc.Find(containerSelector).Each(func(_ int, container *goquery.Selection) {
		marker := container.Find(typeSelector).First()
		if marker.Length() == 0 {
			return
		}
		seen[trimmedText(marker)] = struct{}{}
	})

	categories := make([]string, 0, len(seen))
	for c := range seen {
		categories = append(categories, c)
	}
	sort.Strings(categories)
	return categories, nil
}

// ArticleLinks returns the absolute links of the containers labeled
// category, in document order. Containers with another label, no label or
// no article link are skipped.
func (p *ListingParser) ArticleLinks(html string, category string) ([]string, error) {
	doc, err := parseHTML(html)
	if err != nil {
		return nil, err
	}

	var links []string
	doc.Find(containerSelector).Each(func(_ int, container *goquery.Selection) {
		marker := container.Find(typeSelector).First()
		if marker.Length() == 0 || trimmedText(marker) != category {
			return
		}
		href, ok := container.Find(actionSelector).First().Attr("href")
		if !ok || href == "" {
			return
		}
		links = append(links, p.baseURL+href)
	})
	return links, nil
}
