package main

import (
	"fmt"
	"path/filepath"

	"github.com/fwojciec/scraper"
)

// Run executes the source command. Write failures are reported but do not
// fail the command.
func (c *SourceCmd) Run(deps *Dependencies) error {
	html, err := deps.Fetcher.Fetch(deps.Ctx, c.URL)
	if err != nil {
		if code := scraper.StatusCode(err); code != 0 {
			fmt.Fprintf(deps.Stdout, "The URL returned %d!\n", code)
			return nil
		}
		fmt.Fprintf(deps.Stderr, "error: %s\n", scraper.ErrorMessage(err))
		return err
	}

	dir, name := filepath.Split(c.Out)
	if _, err := deps.Store.Save(deps.Ctx, filepath.Clean(dir), name, html); err != nil {
		deps.Logger.Warn("save source failed", "path", c.Out, "err", err)
		fmt.Fprintln(deps.Stdout, "Error during saving file")
		return nil
	}
	fmt.Fprintln(deps.Stdout, "Content saved.")
	return nil
}
