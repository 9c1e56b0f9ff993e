package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/scraper"
)

// Ensure LoggingArticleStore implements scraper.ArticleStore.
var _ scraper.ArticleStore = (*LoggingArticleStore)(nil)

// LoggingArticleStore wraps an ArticleStore with write logging.
type LoggingArticleStore struct {
	next   scraper.ArticleStore
	logger *slog.Logger
}

// NewLoggingArticleStore creates a new LoggingArticleStore.
func NewLoggingArticleStore(next scraper.ArticleStore, logger *slog.Logger) *LoggingArticleStore {
	return &LoggingArticleStore{next: next, logger: logger}
}

// EnsureDir delegates to the wrapped store and logs failures.
func (s *LoggingArticleStore) EnsureDir(ctx context.Context, dir string) error {
	err := s.next.EnsureDir(ctx, dir)
	if err != nil {
		s.logger.Error("create directory", "dir", dir, "err", err)
	}
	return err
}

// Save delegates to the wrapped store and logs the write.
func (s *LoggingArticleStore) Save(ctx context.Context, dir, filename, content string) (path string, err error) {
	defer func(begin time.Time) {
		s.logger.Info("save article",
			"path", path,
			"bytes", len(content),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Save(ctx, dir, filename, content)
}
