// Package fs provides file-based storage for extracted articles.
package fs

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/fwojciec/scraper"
)

// Ensure ArticleStore implements scraper.ArticleStore at compile time.
var _ scraper.ArticleStore = (*ArticleStore)(nil)

// ArticleStore writes article text to plain files.
// Writes are not atomic; an interrupted write can leave a partial file.
type ArticleStore struct{}

// NewArticleStore creates a new ArticleStore.
func NewArticleStore() *ArticleStore {
	return &ArticleStore{}
}

// EnsureDir creates dir and any missing parents.
func (s *ArticleStore) EnsureDir(ctx context.Context, dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("create directory %s: %w", dir, err)
	}
	return nil
}

// Save writes content to dir/filename, truncating any existing file.
func (s *ArticleStore) Save(ctx context.Context, dir, filename, content string) (string, error) {
	if filename == "" {
		return "", scraper.Errorf(scraper.EINVALID, "filename required")
	}
	if err := s.EnsureDir(ctx, dir); err != nil {
		return "", err
	}

	path := filepath.Join(dir, filename)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return "", fmt.Errorf("write %s: %w", path, err)
	}
	return path, nil
}
