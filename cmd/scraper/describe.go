package main

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Run executes the describe command.
func (c *DescribeCmd) Run(deps *Dependencies) error {
	if !strings.Contains(c.URL, deps.Config.ArticleMarker) {
		fmt.Fprintln(deps.Stdout, "Invalid page!")
		return nil
	}

	html, err := deps.Fetcher.Fetch(deps.Ctx, c.URL)
	if err != nil {
		deps.Logger.Warn("describe fetch failed", "url", c.URL, "err", err)
		fmt.Fprintln(deps.Stdout, "Invalid page!")
		return nil
	}

	summary, err := deps.Summarizer.Summarize(html)
	if err != nil {
		deps.Logger.Debug("describe parse failed", "url", c.URL, "err", err)
		fmt.Fprintln(deps.Stdout, "Invalid page!")
		return nil
	}

	out, err := json.Marshal(summary)
	if err != nil {
		return fmt.Errorf("encode summary: %w", err)
	}
	fmt.Fprintln(deps.Stdout, string(out))
	return nil
}
