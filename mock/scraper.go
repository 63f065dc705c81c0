package mock

import "github.com/fwojciec/rtfm"

var _ rtfm.Scraper = (*Scraper)(nil)

// Scraper is a mock implementation of rtfm.Scraper.
type Scraper struct {
	HasDocumentFn    func(url string) bool
	ScrapeDocumentFn func(url, html, target string) (*rtfm.ScrapeResult, error)
}

func (s *Scraper) HasDocument(url string) bool {
	return s.HasDocumentFn(url)
}

func (s *Scraper) ScrapeDocument(url, html, target string) (*rtfm.ScrapeResult, error) {
	return s.ScrapeDocumentFn(url, html, target)
}
