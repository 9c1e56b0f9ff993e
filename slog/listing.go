package slog

import (
	"log/slog"

	"github.com/fwojciec/scraper"
)

// Ensure LoggingListingParser implements scraper.ListingParser.
var _ scraper.ListingParser = (*LoggingListingParser)(nil)

// LoggingListingParser wraps a ListingParser with debug logging.
type LoggingListingParser struct {
	next   scraper.ListingParser
	logger *slog.Logger
}

// NewLoggingListingParser creates a new LoggingListingParser.
func NewLoggingListingParser(next scraper.ListingParser, logger *slog.Logger) *LoggingListingParser {
	return &LoggingListingParser{next: next, logger: logger}
}

// Categories delegates to the wrapped parser and logs the labels found.
func (p *LoggingListingParser) Categories(html string) (categories []string, err error) {
	defer func() {
		p.logger.Debug("listing categories",
			"count", len(categories),
			"categories", categories,
			"err", err,
		)
	}()
	return p.next.Categories(html)
}

// ArticleLinks delegates to the wrapped parser and logs the match count.
func (p *LoggingListingParser) ArticleLinks(html string, category string) (links []string, err error) {
	defer func() {
		p.logger.Debug("listing links",
			"category", category,
			"count", len(links),
			"err", err,
		)
	}()
	return p.next.ArticleLinks(html, category)
}
