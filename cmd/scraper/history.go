package main

import (
	"fmt"

	"github.com/fwojciec/scraper"
)

// Run executes the history command.
func (c *HistoryCmd) Run(deps *Dependencies) error {
	filter := scraper.SavedArticleFilter{Limit: c.Limit}
	if c.Category != "" {
		filter.Category = &c.Category
	}

	articles, err := deps.History.FindSavedArticles(deps.Ctx, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", scraper.ErrorMessage(err))
		return err
	}

	if len(articles) == 0 {
		fmt.Fprintln(deps.Stdout, "No saved articles found. Use 'scraper crawl' to save some.")
		return nil
	}

	for _, a := range articles {
		fmt.Fprintf(deps.Stdout, "%s  %s  %s  %s\n",
			a.SavedAt.Format("2006-01-02 15:04:05"), a.Category, a.Path, a.URL)
	}
	return nil
}
