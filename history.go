package scraper

import (
	"context"
	"time"
)

// SavedArticle records one article written to disk during a crawl.
// History is an audit trail only; crawls never consult it.
type SavedArticle struct {
	ID          string    `json:"id"`
	URL         string    `json:"url"`
	Category    string    `json:"category"`
	Page        int       `json:"page"`
	Path        string    `json:"path"`
	Title       string    `json:"title"`
	ContentHash string    `json:"contentHash"`
	SavedAt     time.Time `json:"savedAt"`
}

// Validate returns an error if the record contains invalid fields.
func (a *SavedArticle) Validate() error {
	if a.URL == "" {
		return Errorf(EINVALID, "saved article URL required")
	}
	if a.Path == "" {
		return Errorf(EINVALID, "saved article path required")
	}
	if a.Page < 1 {
		return Errorf(EINVALID, "saved article page must be positive")
	}
	return nil
}

// SavedArticleFilter represents a filter for FindSavedArticles.
type SavedArticleFilter struct {
	Category *string `json:"category"`
	URL      *string `json:"url"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

// HistoryService records and lists saved articles.
type HistoryService interface {
	// RecordArticle stores a saved article. ID, ContentHash and SavedAt are
	// assigned by the service.
	RecordArticle(ctx context.Context, article *SavedArticle, content string) error

	// FindSavedArticles returns records matching the filter, newest first.
	FindSavedArticles(ctx context.Context, filter SavedArticleFilter) ([]*SavedArticle, error)
}
