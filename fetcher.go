package scraper

import "context"

// Fetcher retrieves HTML from URLs.
type Fetcher interface {
	// Fetch issues a single GET and returns the response body decoded as
	// UTF-8. Error statuses are reported as *FetchError.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (html string, err error)

	// Close releases any resources held by the fetcher.
	Close() error
}
