package goquery

import (
	"strings"

	"github.com/fwojciec/scraper"
)

// Ensure Summarizer implements scraper.Summarizer at compile time.
var _ scraper.Summarizer = (*Summarizer)(nil)

// Summarizer reads a page's <title> and description meta tag.
type Summarizer struct{}

// NewSummarizer creates a new Summarizer.
func NewSummarizer() *Summarizer {
	return &Summarizer{}
}

// Summarize returns the trimmed title and description of the page.
func (s *Summarizer) Summarize(html string) (*scraper.PageSummary, error) {
	doc, err := parseHTML(html)
	if err != nil {
		return nil, err
	}

	title := trimmedText(doc.Find("title").First())
	if title == "" {
		return nil, scraper.Errorf(scraper.ENOTFOUND, "page has no title")
	}

	description, ok := doc.Find(`meta[name="description"]`).First().Attr("content")
	if !ok {
		return nil, scraper.Errorf(scraper.ENOTFOUND, "page has no description")
	}

	return &scraper.PageSummary{
		Title:       title,
		Description: strings.TrimSpace(description),
	}, nil
}
