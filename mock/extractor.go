package mock

import "github.com/fwojciec/scraper"

var _ scraper.ArticleExtractor = (*ArticleExtractor)(nil)

// ArticleExtractor is a mock implementation of scraper.ArticleExtractor.
type ArticleExtractor struct {
	ExtractFn func(html string) (*scraper.ExtractResult, error)
}

func (e *ArticleExtractor) Extract(html string) (*scraper.ExtractResult, error) {
	return e.ExtractFn(html)
}
