// Package crawl provides article crawling orchestration.
// It walks listing pages, filters article links by category, extracts
// each article and saves the ones that have both a title and a body.
package crawl

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/fwojciec/scraper"
)

// Crawler orchestrates a sequential crawl of paginated article listings.
type Crawler struct {
	Fetcher   scraper.Fetcher
	Listings  scraper.ListingParser
	Extractor scraper.ArticleExtractor
	Store     scraper.ArticleStore

	// History is optional. When set, every saved article is recorded.
	History scraper.HistoryService

	// ListingURL returns the listing address for a 1-indexed page.
	ListingURL func(page int) string

	// OutputDir is the parent of the Page_<n> directories.
	OutputDir string

	// KeepGoing counts failed article fetches instead of aborting the crawl.
	KeepGoing bool
}

// Result holds the outcome of a crawl operation.
type Result struct {
	Saved   []string
	Skipped int
	Failed  int
	Bytes   int
}

// ProgressEvent reports progress during a crawl operation.
type ProgressEvent struct {
	Type   ProgressType
	Page   int
	Total  int
	URL    string
	Path   string
	Status scraper.ExtractStatus
	Error  error
}

// ProgressType indicates the type of progress event.
type ProgressType int

const (
	ProgressPageStarted ProgressType = iota
	ProgressSaved
	ProgressSkipped
	ProgressFailed
	ProgressFinished
)

// ProgressFunc is a callback for reporting crawl progress.
type ProgressFunc func(event ProgressEvent)

// Categories returns the distinct article categories on a listing page.
func (c *Crawler) Categories(ctx context.Context, page int) ([]string, error) {
	html, err := c.Fetcher.Fetch(ctx, c.ListingURL(page))
	if err != nil {
		return nil, err
	}
	return c.Listings.Categories(html)
}

// ArticleLinks returns the absolute URLs of articles on a listing page
// whose category equals category exactly.
func (c *Crawler) ArticleLinks(ctx context.Context, page int, category string) ([]string, error) {
	html, err := c.Fetcher.Fetch(ctx, c.ListingURL(page))
	if err != nil {
		return nil, err
	}
	return c.Listings.ArticleLinks(html, category)
}

// ExtractArticle fetches and extracts a single article.
// Fetch errors are returned as-is; extraction misses are reported
// through the result status.
func (c *Crawler) ExtractArticle(ctx context.Context, url string) (*scraper.ExtractResult, error) {
	html, err := c.Fetcher.Fetch(ctx, url)
	if err != nil {
		return nil, err
	}
	return c.Extractor.Extract(html)
}

// Crawl processes listing pages 1 through pages in order, saving matching
// articles under OutputDir/Page_<n>. Each page directory is created even
// when no article on it matches. On error the partial result is returned
// alongside it.
func (c *Crawler) Crawl(ctx context.Context, pages int, category string, progress ProgressFunc) (*Result, error) {
	if pages < 1 {
		return nil, scraper.Errorf(scraper.EINVALID, "page count must be positive, got %d", pages)
	}

	result := &Result{}
	for page := 1; page <= pages; page++ {
		if err := c.crawlPage(ctx, page, category, result, progress); err != nil {
			return result, err
		}
	}

	if progress != nil {
		progress(ProgressEvent{Type: ProgressFinished, Total: len(result.Saved)})
	}
	return result, nil
}

func (c *Crawler) crawlPage(ctx context.Context, page int, category string, result *Result, progress ProgressFunc) error {
	links, err := c.ArticleLinks(ctx, page, category)
	if err != nil {
		return fmt.Errorf("listing page %d: %w", page, err)
	}

	dir := filepath.Join(c.OutputDir, scraper.PageDir(page))
	if err := c.Store.EnsureDir(ctx, dir); err != nil {
		return err
	}

	if progress != nil {
		progress(ProgressEvent{Type: ProgressPageStarted, Page: page, Total: len(links)})
	}

	for _, link := range links {
		if err := ctx.Err(); err != nil {
			return err
		}

		article, err := c.ExtractArticle(ctx, link)
		if err != nil {
			if !c.KeepGoing {
				return fmt.Errorf("article %s: %w", link, err)
			}
			result.Failed++
			if progress != nil {
				progress(ProgressEvent{Type: ProgressFailed, Page: page, URL: link, Error: err})
			}
			continue
		}

		if !article.Saveable() {
			result.Skipped++
			if progress != nil {
				progress(ProgressEvent{Type: ProgressSkipped, Page: page, URL: link, Status: article.Status})
			}
			continue
		}

		path, err := c.Store.Save(ctx, dir, article.Filename, article.Content)
		if err != nil {
			return err
		}
		result.Saved = append(result.Saved, article.Filename)
		result.Bytes += len(article.Content)

		if c.History != nil {
			rec := &scraper.SavedArticle{
				URL:      link,
				Category: category,
				Page:     page,
				Path:     path,
				Title:    article.Title,
			}
			if err := c.History.RecordArticle(ctx, rec, article.Content); err != nil {
				return fmt.Errorf("record history: %w", err)
			}
		}

		if progress != nil {
			progress(ProgressEvent{Type: ProgressSaved, Page: page, URL: link, Path: path, Status: article.Status})
		}
	}
	return nil
}
