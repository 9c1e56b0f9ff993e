package scraper

// PageSummary is the title and meta description of a single page.
type PageSummary struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// Summarizer reads the title and description from page HTML.
type Summarizer interface {
	// Summarize returns ENOTFOUND when the page lacks a non-empty title or a
	// description meta tag.
	Summarize(html string) (*PageSummary, error)
}
