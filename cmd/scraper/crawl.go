package main

import (
	"fmt"
	"strings"

	"github.com/fwojciec/scraper"
	"github.com/fwojciec/scraper/crawl"
)

// Run executes the crawl command. Flags answer the prompts they cover;
// anything left unset is asked for on stdin.
func (c *CrawlCmd) Run(deps *Dependencies) error {
	if c.Pages < 0 {
		return scraper.Errorf(scraper.EINVALID, "--pages must be positive, got %d", c.Pages)
	}

	p := newPrompter(deps.Stdin, deps.Stdout)

	pages := c.Pages
	if pages == 0 {
		var err error
		if pages, err = p.askPageCount(); err != nil {
			return err
		}
	}

	category := c.Category
	if category == "" {
		categories, err := deps.Crawler.Categories(deps.Ctx, 1)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", scraper.ErrorMessage(err))
			return err
		}
		fmt.Fprintln(deps.Stdout, "Available article types on page 1:")
		fmt.Fprintln(deps.Stdout, formatCategories(categories))

		if category, err = p.ask("Enter which type of articles are you interested:\n"); err != nil {
			return err
		}
	}

	crawler := *deps.Crawler
	if c.Out != "" {
		crawler.OutputDir = c.Out
	}
	crawler.KeepGoing = c.KeepGoing

	result, err := crawler.Crawl(deps.Ctx, pages, category, crawlProgress(deps))
	if err != nil {
		if result != nil {
			deps.Logger.Warn("crawl stopped", "summary", crawl.FormatSummary(result))
		}
		fmt.Fprintf(deps.Stderr, "error: %s\n", scraper.ErrorMessage(err))
		return err
	}

	fmt.Fprintln(deps.Stdout, "Saved all articles.")
	if c.List {
		fmt.Fprintf(deps.Stdout, "Saved articles: [%s]\n", strings.Join(result.Saved, ", "))
	}
	deps.Logger.Info("crawl finished", "summary", crawl.FormatSummary(result))
	return nil
}

func formatCategories(categories []string) string {
	return "{" + strings.Join(categories, ", ") + "}"
}

func crawlProgress(deps *Dependencies) crawl.ProgressFunc {
	return func(e crawl.ProgressEvent) {
		switch e.Type {
		case crawl.ProgressPageStarted:
			deps.Logger.Info("page", "page", e.Page, "articles", e.Total)
		case crawl.ProgressSkipped:
			deps.Logger.Debug("skip article", "url", crawl.TruncateURL(e.URL, 60), "reason", e.Status)
		case crawl.ProgressFailed:
			deps.Logger.Warn("skip article", "url", crawl.TruncateURL(e.URL, 60), "err", e.Error)
		}
	}
}
