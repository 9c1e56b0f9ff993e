package scraper

import "context"

// ArticleStore persists extracted article text.
type ArticleStore interface {
	// EnsureDir creates dir and any parents. It is safe to call when the
	// directory already exists.
	EnsureDir(ctx context.Context, dir string) error

	// Save writes content as UTF-8 to dir/filename, replacing any existing
	// file, and returns the written path.
	Save(ctx context.Context, dir, filename, content string) (path string, err error)
}
