package sqlite

import (
	"context"
	"encoding/binary"
	"encoding/hex"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/scraper"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ scraper.HistoryService = (*HistoryService)(nil)

// HistoryService implements scraper.HistoryService using SQLite.
type HistoryService struct {
	db *DB
}

// NewHistoryService creates a new HistoryService.
func NewHistoryService(db *DB) *HistoryService {
	return &HistoryService{db: db}
}

// hashContent computes xxHash of content and returns hex string.
func hashContent(content string) string {
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], xxhash.Sum64String(content))
	return hex.EncodeToString(b[:])
}

// RecordArticle stores a saved article with a generated ID, content hash
// and timestamp.
func (s *HistoryService) RecordArticle(ctx context.Context, article *scraper.SavedArticle, content string) error {
	if err := article.Validate(); err != nil {
		return err
	}

	article.ID = uuid.New().String()
	article.ContentHash = hashContent(content)
	article.SavedAt = time.Now().UTC().Truncate(time.Second)

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO saved_articles (id, url, category, page, path, title, content_hash, saved_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, article.ID, article.URL, article.Category, article.Page, article.Path, article.Title,
		article.ContentHash, article.SavedAt.Format(time.RFC3339))

	return err
}

// FindSavedArticles retrieves records matching the filter, newest first.
func (s *HistoryService) FindSavedArticles(ctx context.Context, filter scraper.SavedArticleFilter) ([]*scraper.SavedArticle, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT id, url, category, page, path, title, content_hash, saved_at FROM saved_articles WHERE 1=1")

	if filter.Category != nil {
		query.WriteString(" AND category = ?")
		args = append(args, *filter.Category)
	}
	if filter.URL != nil {
		query.WriteString(" AND url = ?")
		args = append(args, *filter.URL)
	}

	query.WriteString(" ORDER BY saved_at DESC, rowid DESC")
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var articles []*scraper.SavedArticle
	for rows.Next() {
		var a scraper.SavedArticle
		var savedAt string

		if err := rows.Scan(&a.ID, &a.URL, &a.Category, &a.Page, &a.Path, &a.Title,
			&a.ContentHash, &savedAt); err != nil {
			return nil, err
		}

		if a.SavedAt, err = parseRFC3339(savedAt, "saved_at"); err != nil {
			return nil, err
		}

		articles = append(articles, &a)
	}

	return articles, rows.Err()
}
