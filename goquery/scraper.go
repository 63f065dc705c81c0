package goquery

import (
	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/rtfm"
	"golang.org/x/net/html"
)

// Ensure Scraper implements rtfm.Scraper at compile time.
var _ rtfm.Scraper = (*Scraper)(nil)

// Scraper extracts structured documentation from Sphinx-generated HTML.
// It is safe for concurrent use; parsed documents are shared through the
// underlying Cache.
type Scraper struct {
	cache *Cache
}

// NewScraper creates a Scraper with an empty document cache.
func NewScraper() *Scraper {
	return &Scraper{cache: NewCache()}
}

// Cache returns the scraper's document cache for diagnostics.
func (s *Scraper) Cache() *Cache {
	return s.cache
}

// HasDocument reports whether the page at url has already been parsed.
func (s *Scraper) HasDocument(url string) bool {
	return s.cache.Has(url)
}

// ScrapeDocument extracts the documentation for the symbol anchored at
// target. Sphinx assigns the symbol's fully qualified name as the id of its
// dt signature element; the sibling dd under the same definition list holds
// the description.
func (s *Scraper) ScrapeDocument(url, htmlSource, target string) (*rtfm.ScrapeResult, error) {
	doc, err := s.cache.GetOrParse(url, htmlSource)
	if err != nil {
		return nil, err
	}

	signature := findSignature(doc, target)
	if signature == nil {
		return nil, rtfm.Errorf(rtfm.ENOTFOUND, "signature not found for %q", target)
	}

	description := findFirst(signature.Parent, "dd")
	if description == nil {
		return nil, rtfm.Errorf(rtfm.ENOTFOUND, "description not found for %q", target)
	}

	text, fields := parseNode(description, url)

	return &rtfm.ScrapeResult{
		Description: text,
		Signature:   parseSignatureNode(signature),
		Fields:      fields,
	}, nil
}

// findSignature locates the dt element whose id equals target. Anchor ids
// contain dots and other CSS-significant characters, so this matches on the
// raw attribute rather than through a selector.
func findSignature(doc *goquery.Document, target string) *html.Node {
	var found *html.Node
	doc.Find("dt").EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		if id, ok := sel.Attr("id"); ok && id == target {
			found = sel.Nodes[0]
			return false
		}
		return true
	})
	return found
}
