package main

import (
	"fmt"
	"strings"

	"github.com/fwojciec/rtfm"
)

// maxDescriptionRunes caps the printed description length; pages with very
// long prose get cut off with an ellipsis.
const maxDescriptionRunes = 2048

// Run executes the doc command.
func (c *DocCmd) Run(deps *Dependencies) error {
	source, err := rtfm.FindSource(c.Source)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", rtfm.ErrorMessage(err))
		return err
	}

	inv, err := deps.Inventories.FetchInventory(deps.Ctx, source)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", rtfm.ErrorMessage(err))
		return err
	}

	result, entry, err := resolveEntry(deps, inv, c.Name)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", rtfm.ErrorMessage(err))
		return err
	}

	if sig := rtfm.FormatSignature(result.Signature); sig != "" {
		fmt.Fprintln(deps.Stdout, sig)
	}

	description := strings.TrimSpace(rtfm.Cutoff(rtfm.CollapseNewlines(result.Description), maxDescriptionRunes))
	if description != "" {
		fmt.Fprintf(deps.Stdout, "\n%s\n", description)
	}

	for _, field := range result.Fields {
		fmt.Fprintf(deps.Stdout, "\n%s\n%s\n", field.Name, field.Value)
	}

	fmt.Fprintf(deps.Stdout, "\n%s\n", entry.URL)
	return nil
}

// resolveEntry scrapes the named entry, falling back to search results when
// the name is not an exact match. Search candidates whose pages no longer
// carry the expected anchor are skipped; stale inventories reference
// symbols that have since moved or been removed.
func resolveEntry(deps *Dependencies, inv *rtfm.Inventory, name string) (*rtfm.ScrapeResult, rtfm.Entry, error) {
	if entry, ok := inv.Lookup(name); ok {
		result, err := scrapeEntry(deps, entry)
		return result, entry, err
	}

	for _, entry := range inv.Search(name) {
		result, err := scrapeEntry(deps, entry)
		if rtfm.ErrorCode(err) == rtfm.ENOTFOUND {
			continue
		}
		if err != nil {
			return nil, rtfm.Entry{}, err
		}
		return result, entry, nil
	}

	return nil, rtfm.Entry{}, rtfm.Errorf(rtfm.ENOTFOUND, "no documentation found for %q", name)
}

// scrapeEntry fetches the entry's page (unless the scraper already holds a
// parsed copy) and scrapes the entry's anchor from it.
func scrapeEntry(deps *Dependencies, entry rtfm.Entry) (*rtfm.ScrapeResult, error) {
	pageURL := entry.PageURL()

	var html string
	if !deps.Scraper.HasDocument(pageURL) {
		var err error
		html, err = deps.Pages.FetchPage(deps.Ctx, pageURL)
		if err != nil {
			return nil, err
		}
	}

	return deps.Scraper.ScrapeDocument(pageURL, html, entry.Key)
}
