package http

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/fwojciec/rtfm"
	lru "github.com/hashicorp/golang-lru/v2"
)

// DefaultFetchTimeout is the default timeout for HTTP requests.
const DefaultFetchTimeout = 10 * time.Second

// DefaultPageCacheSize is the default number of fetched page bodies kept in
// memory. The scraper caches parsed documents separately and indefinitely;
// this cache only spares refetching raw HTML across scraper instances.
const DefaultPageCacheSize = 64

// Ensure Fetcher implements rtfm.PageFetcher at compile time.
var _ rtfm.PageFetcher = (*Fetcher)(nil)

// Fetcher retrieves documentation page HTML using plain HTTP requests. It
// does not execute JavaScript, which is fine for Sphinx sites: their content
// is fully server-rendered.
type Fetcher struct {
	client    *http.Client
	timeout   time.Duration
	cacheSize int
	cache     *lru.Cache[string, string]
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the timeout for HTTP requests.
// Defaults to DefaultFetchTimeout (10s) if not specified.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithPageCacheSize sets how many page bodies are retained.
func WithPageCacheSize(n int) Option {
	return func(f *Fetcher) {
		f.cacheSize = n
	}
}

// NewFetcher creates a new HTTP-based Fetcher.
func NewFetcher(opts ...Option) (*Fetcher, error) {
	f := &Fetcher{
		timeout:   DefaultFetchTimeout,
		cacheSize: DefaultPageCacheSize,
	}
	for _, opt := range opts {
		opt(f)
	}

	cache, err := lru.New[string, string](f.cacheSize)
	if err != nil {
		return nil, fmt.Errorf("failed to create page cache: %w", err)
	}
	f.cache = cache

	f.client = &http.Client{
		Timeout: f.timeout,
	}

	return f, nil
}

// FetchPage retrieves the HTML content of the page at url, serving repeated
// requests from the LRU cache.
func (f *Fetcher) FetchPage(ctx context.Context, url string) (string, error) {
	if body, ok := f.cache.Get(url); ok {
		return body, nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", err
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", rtfm.Errorf(rtfm.EUNAVAILABLE, "HTTP %d for %s", resp.StatusCode, url)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	f.cache.Add(url, string(body))
	return string(body), nil
}

// Close releases resources. For the HTTP fetcher this is a no-op since
// http.Client doesn't require explicit cleanup.
func (f *Fetcher) Close() error {
	return nil
}
