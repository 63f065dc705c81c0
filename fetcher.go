package rtfm

import "context"

// PageFetcher retrieves documentation page HTML.
type PageFetcher interface {
	// FetchPage returns the HTML source of the page at url.
	FetchPage(ctx context.Context, url string) (string, error)
}
