package mock

import (
	"context"

	"github.com/fwojciec/scraper"
)

var _ scraper.HistoryService = (*HistoryService)(nil)

// HistoryService is a mock implementation of scraper.HistoryService.
type HistoryService struct {
	RecordArticleFn     func(ctx context.Context, article *scraper.SavedArticle, content string) error
	FindSavedArticlesFn func(ctx context.Context, filter scraper.SavedArticleFilter) ([]*scraper.SavedArticle, error)
}

func (s *HistoryService) RecordArticle(ctx context.Context, article *scraper.SavedArticle, content string) error {
	return s.RecordArticleFn(ctx, article, content)
}

func (s *HistoryService) FindSavedArticles(ctx context.Context, filter scraper.SavedArticleFilter) ([]*scraper.SavedArticle, error) {
	return s.FindSavedArticlesFn(ctx, filter)
}
