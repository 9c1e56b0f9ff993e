package scraper

// ExtractStatus describes what an extractor found on an article page.
type ExtractStatus int

// Extraction outcomes. Only ExtractOK results are saved.
const (
	// ExtractOK means a title and non-empty body text were found.
	ExtractOK ExtractStatus = iota

	// ExtractEmptyBody means a title was found but no paragraph text.
	ExtractEmptyBody

	// ExtractNoTitle means the page has no usable heading. Title, Filename
	// and Content are always empty for this status.
	ExtractNoTitle
)

// String returns a short label used in logs and progress output.
func (s ExtractStatus) String() string {
	switch s {
	case ExtractOK:
		return "ok"
	case ExtractEmptyBody:
		return "empty body"
	case ExtractNoTitle:
		return "no title"
	default:
		return "unknown"
	}
}

// ExtractResult holds the text extracted from a single article page.
type ExtractResult struct {
	Status ExtractStatus

	// Title is the heading text cut at the first "|".
	Title string

	// Filename is the sanitized title with the .txt extension.
	Filename string

	// Content is the trimmed paragraph text joined with newlines.
	Content string
}

// NoTitle reports whether the page was rejected for lacking a heading.
func (r *ExtractResult) NoTitle() bool {
	return r.Status == ExtractNoTitle
}

// Saveable reports whether the result carries both a filename and content.
func (r *ExtractResult) Saveable() bool {
	return r.Status == ExtractOK
}

// ArticleExtractor extracts the title and body text from article HTML.
type ArticleExtractor interface {
	// Extract parses html and returns the article text.
	// A missing title is reported through ExtractResult.Status, not an error.
	Extract(html string) (*ExtractResult, error)
}
