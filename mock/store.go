package mock

import (
	"context"

	"github.com/fwojciec/scraper"
)

var _ scraper.ArticleStore = (*ArticleStore)(nil)

// ArticleStore is a mock implementation of scraper.ArticleStore.
type ArticleStore struct {
	EnsureDirFn func(ctx context.Context, dir string) error
	SaveFn      func(ctx context.Context, dir, filename, content string) (string, error)
}

func (s *ArticleStore) EnsureDir(ctx context.Context, dir string) error {
	return s.EnsureDirFn(ctx, dir)
}

func (s *ArticleStore) Save(ctx context.Context, dir, filename, content string) (string, error) {
	return s.SaveFn(ctx, dir, filename, content)
}
