package mock

import (
	"context"

	"github.com/fwojciec/rtfm"
)

var _ rtfm.PageFetcher = (*PageFetcher)(nil)

// PageFetcher is a mock implementation of rtfm.PageFetcher.
type PageFetcher struct {
	FetchPageFn func(ctx context.Context, url string) (string, error)
}

func (f *PageFetcher) FetchPage(ctx context.Context, url string) (string, error) {
	return f.FetchPageFn(ctx, url)
}
