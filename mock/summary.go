package mock

import "github.com/fwojciec/scraper"

var _ scraper.Summarizer = (*Summarizer)(nil)

// Summarizer is a mock implementation of scraper.Summarizer.
type Summarizer struct {
	SummarizeFn func(html string) (*scraper.PageSummary, error)
}

func (s *Summarizer) Summarize(html string) (*scraper.PageSummary, error) {
	return s.SummarizeFn(html)
}
