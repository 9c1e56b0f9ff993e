package mock

import "github.com/fwojciec/scraper"

var _ scraper.ListingParser = (*ListingParser)(nil)

// ListingParser is a mock implementation of scraper.ListingParser.
type ListingParser struct {
	CategoriesFn   func(html string) ([]string, error)
	ArticleLinksFn func(html string, category string) ([]string, error)
}

func (p *ListingParser) Categories(html string) ([]string, error) {
	return p.CategoriesFn(html)
}

func (p *ListingParser) ArticleLinks(html string, category string) ([]string, error) {
	return p.ArticleLinksFn(html, category)
}
