// Package slog provides logging decorators around rtfm domain interfaces.
package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/rtfm"
)

// Ensure LoggingScraper implements rtfm.Scraper.
var _ rtfm.Scraper = (*LoggingScraper)(nil)

// LoggingScraper wraps a Scraper with debug logging of scrape outcomes.
type LoggingScraper struct {
	next   rtfm.Scraper
	logger *slog.Logger
}

// NewLoggingScraper creates a new LoggingScraper.
func NewLoggingScraper(next rtfm.Scraper, logger *slog.Logger) *LoggingScraper {
	return &LoggingScraper{next: next, logger: logger}
}

// HasDocument delegates to the wrapped scraper.
func (s *LoggingScraper) HasDocument(url string) bool {
	return s.next.HasDocument(url)
}

// ScrapeDocument logs the scrape and delegates to the wrapped scraper.
func (s *LoggingScraper) ScrapeDocument(url, html, target string) (*rtfm.ScrapeResult, error) {
	begin := time.Now()
	cached := s.next.HasDocument(url)

	result, err := s.next.ScrapeDocument(url, html, target)
	if err != nil {
		s.logger.Info("scrape failed",
			"url", url,
			"target", target,
			"code", rtfm.ErrorCode(err),
			"duration", time.Since(begin),
		)
		return nil, err
	}

	s.logger.Info("scraped document",
		"url", url,
		"target", target,
		"cached", cached,
		"fields", len(result.Fields),
		"duration", time.Since(begin),
	)
	return result, nil
}
