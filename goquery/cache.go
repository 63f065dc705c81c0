package goquery

import (
	"sort"
	"strings"
	"sync"

	"github.com/PuerkitoBio/goquery"
	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/rtfm"
)

// DocumentInfo describes one cached document for diagnostics.
type DocumentInfo struct {
	// URL is the cache key the document was parsed under.
	URL string

	// ContentHash is the xxhash digest of the HTML the document was parsed
	// from. Useful for spotting stale cache entries when a page changed
	// upstream.
	ContentHash uint64
}

type cachedDocument struct {
	doc  *goquery.Document
	hash uint64
}

// Cache memoizes parsed documents by source URL so repeated scrapes of the
// same page never re-parse. Entries are never evicted: the cache grows with
// the number of distinct pages scraped over the process lifetime, which is
// acceptable for the intended one-fetch-per-page call pattern but worth
// knowing about in long-running hosts.
type Cache struct {
	mu   sync.Mutex
	docs map[string]*cachedDocument
}

// NewCache creates an empty document cache.
func NewCache() *Cache {
	return &Cache{docs: make(map[string]*cachedDocument)}
}

// Has reports whether a document for url is already cached. It never
// parses and never performs I/O.
func (c *Cache) Has(url string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, ok := c.docs[url]
	return ok
}

// GetOrParse returns the cached document for url, parsing and inserting
// html on first access. Parsing happens at most once per URL: a second call
// with different html for an already-cached url is ignored and the first
// parse wins.
func (c *Cache) GetOrParse(url, html string) (*goquery.Document, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if cached, ok := c.docs[url]; ok {
		return cached.doc, nil
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, rtfm.Errorf(rtfm.EINVALID, "failed to parse HTML for %s: %v", url, err)
	}

	c.docs[url] = &cachedDocument{doc: doc, hash: xxhash.Sum64String(html)}
	return doc, nil
}

// Documents lists cached documents sorted by URL.
func (c *Cache) Documents() []DocumentInfo {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]DocumentInfo, 0, len(c.docs))
	for url, cached := range c.docs {
		out = append(out, DocumentInfo{URL: url, ContentHash: cached.hash})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].URL < out[j].URL })
	return out
}
