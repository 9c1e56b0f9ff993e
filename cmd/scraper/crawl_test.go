package main_test

import (
	"context"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/fwojciec/scraper"
	main "github.com/fwojciec/scraper/cmd/scraper"
	"github.com/fwojciec/scraper/crawl"
	"github.com/fwojciec/scraper/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestCrawler serves one "News" article per listing page.
func newTestCrawler(fetched *[]string, dirs *[]string) *crawl.Crawler {
	return &crawl.Crawler{
		Fetcher: &mock.Fetcher{
			FetchFn: func(_ context.Context, url string) (string, error) {
				*fetched = append(*fetched, url)
				return url, nil
			},
		},
		Listings: &mock.ListingParser{
			CategoriesFn: func(_ string) ([]string, error) {
				return []string{"News", "Research Highlight"}, nil
			},
			ArticleLinksFn: func(html string, category string) ([]string, error) {
				if category != "News" {
					return nil, nil
				}
				page := strings.TrimPrefix(html, "listing?page=")
				return []string{"article/" + page}, nil
			},
		},
		Extractor: &mock.ArticleExtractor{
			ExtractFn: func(html string) (*scraper.ExtractResult, error) {
				title := "Story " + strings.TrimPrefix(html, "article/")
				return &scraper.ExtractResult{
					Status:   scraper.ExtractOK,
					Title:    title,
					Filename: scraper.ArticleFilename(title),
					Content:  "body",
				}, nil
			},
		},
		Store: &mock.ArticleStore{
			EnsureDirFn: func(_ context.Context, dir string) error {
				*dirs = append(*dirs, dir)
				return nil
			},
			SaveFn: func(_ context.Context, dir, filename, _ string) (string, error) {
				return filepath.Join(dir, filename), nil
			},
		},
		ListingURL: func(page int) string { return "listing?page=" + strconv.Itoa(page) },
		OutputDir:  "out",
	}
}

func TestCrawlCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("prompts for pages and category", func(t *testing.T) {
		t.Parallel()

		var fetched, dirs []string
		deps, stdout, _ := newDeps("2\nNews\n")
		deps.Crawler = newTestCrawler(&fetched, &dirs)

		err := (&main.CrawlCmd{}).Run(deps)

		require.NoError(t, err)
		assert.Equal(t, "Input number of pages to search:\n"+
			"Available article types on page 1:\n"+
			"{News, Research Highlight}\n"+
			"Enter which type of articles are you interested:\n"+
			"Saved all articles.\n", stdout.String())
		assert.Equal(t, []string{filepath.Join("out", "Page_1"), filepath.Join("out", "Page_2")}, dirs)
	})

	t.Run("re-prompts until a positive number is entered", func(t *testing.T) {
		t.Parallel()

		var fetched, dirs []string
		deps, stdout, _ := newDeps("two\n0\n 1 \nNews\n")
		deps.Crawler = newTestCrawler(&fetched, &dirs)

		err := (&main.CrawlCmd{}).Run(deps)

		require.NoError(t, err)
		assert.Equal(t, 2, strings.Count(stdout.String(), "Enter number!\n"))
		assert.Equal(t, 3, strings.Count(stdout.String(), "Input number of pages to search:\n"))
		assert.Len(t, dirs, 1)
	})

	t.Run("flags skip the prompts", func(t *testing.T) {
		t.Parallel()

		var fetched, dirs []string
		deps, stdout, _ := newDeps("")
		deps.Crawler = newTestCrawler(&fetched, &dirs)

		err := (&main.CrawlCmd{Pages: 2, Category: "News", Out: "elsewhere", List: true}).Run(deps)

		require.NoError(t, err)
		assert.Equal(t, "Saved all articles.\nSaved articles: [Story_1.txt, Story_2.txt]\n", stdout.String())
		assert.Equal(t, []string{filepath.Join("elsewhere", "Page_1"), filepath.Join("elsewhere", "Page_2")}, dirs)
		assert.Equal(t, "out", deps.Crawler.OutputDir)
	})

	t.Run("category lookup fetches page one", func(t *testing.T) {
		t.Parallel()

		var fetched, dirs []string
		deps, _, _ := newDeps("Research Highlight\n")
		deps.Crawler = newTestCrawler(&fetched, &dirs)

		err := (&main.CrawlCmd{Pages: 1}).Run(deps)

		require.NoError(t, err)
		assert.Equal(t, []string{"listing?page=1", "listing?page=1"}, fetched)
	})

	t.Run("crawl failure is returned", func(t *testing.T) {
		t.Parallel()

		var fetched, dirs []string
		deps, stdout, stderr := newDeps("")
		deps.Crawler = newTestCrawler(&fetched, &dirs)
		deps.Crawler.Fetcher = &mock.Fetcher{
			FetchFn: func(_ context.Context, url string) (string, error) {
				return "", &scraper.FetchError{URL: url, StatusCode: 500}
			},
		}

		err := (&main.CrawlCmd{Pages: 1, Category: "News"}).Run(deps)

		require.Error(t, err)
		assert.NotContains(t, stdout.String(), "Saved all articles.")
		assert.Contains(t, stderr.String(), "HTTP 500")
	})

	t.Run("rejects negative page flag", func(t *testing.T) {
		t.Parallel()

		deps, _, _ := newDeps("")

		err := (&main.CrawlCmd{Pages: -1}).Run(deps)

		assert.Equal(t, scraper.EINVALID, scraper.ErrorCode(err))
	})
}
