package scraper

// ListingParser reads a paginated article index page.
type ListingParser interface {
	// Categories returns the distinct category labels present on the page.
	// Order carries no meaning; implementations sort for stable display.
	Categories(html string) ([]string, error)

	// ArticleLinks returns absolute links to the articles labeled with
	// category, in document order. Matching is exact and case-sensitive.
	// Entries without a label or without an article link are skipped.
	ArticleLinks(html string, category string) ([]string, error)
}
