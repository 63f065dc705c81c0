package rtfm

import (
	"context"
	"net/url"
	"regexp"
	"sort"
	"strings"
)

// Entry is a single symbol in a Sphinx object inventory.
type Entry struct {
	// Name is the display name used for searching, possibly shortened or
	// prefixed with its standard-domain subdirective (e.g. "label:intro").
	Name string `json:"name"`

	// Key is the original object name, which doubles as the anchor id of
	// the symbol's signature element on the documentation page.
	Key string `json:"key"`

	// URL is the full address of the symbol's documentation, including the
	// fragment pointing at its anchor.
	URL string `json:"url"`
}

// PageURL returns the address of the page documenting the entry, with query
// parameters and fragment stripped. This is the scraper's cache key and the
// base for resolving relative links.
func (e Entry) PageURL() string {
	u, err := url.Parse(e.URL)
	if err != nil {
		return e.URL
	}
	u.RawQuery = ""
	u.Fragment = ""
	return u.String()
}

// Inventory is the parsed object inventory of a documentation site.
type Inventory struct {
	Project string  `json:"project"`
	Version string  `json:"version"`
	Entries []Entry `json:"entries"`
}

// Lookup returns the entry whose display name matches name exactly.
func (inv *Inventory) Lookup(name string) (Entry, bool) {
	for _, e := range inv.Entries {
		if e.Name == name {
			return e, true
		}
	}
	return Entry{}, false
}

// Search performs a case-insensitive subsequence match of query against
// entry display names. Results are ranked by match length, then match
// position, then name, so tighter and earlier matches come first.
func (inv *Inventory) Search(query string) []Entry {
	if query == "" {
		return nil
	}

	parts := make([]string, 0, len(query))
	for _, r := range query {
		parts = append(parts, regexp.QuoteMeta(string(r)))
	}
	re, err := regexp.Compile("(?i)" + strings.Join(parts, ".*?"))
	if err != nil {
		return nil
	}

	type match struct {
		length int
		start  int
		entry  Entry
	}
	var matches []match
	for _, e := range inv.Entries {
		if loc := re.FindStringIndex(e.Name); loc != nil {
			matches = append(matches, match{length: loc[1] - loc[0], start: loc[0], entry: e})
		}
	}

	sort.Slice(matches, func(i, j int) bool {
		if matches[i].length != matches[j].length {
			return matches[i].length < matches[j].length
		}
		if matches[i].start != matches[j].start {
			return matches[i].start < matches[j].start
		}
		return matches[i].entry.Name < matches[j].entry.Name
	})

	out := make([]Entry, 0, len(matches))
	for _, m := range matches {
		out = append(out, m.entry)
	}
	return out
}

// InventoryService fetches and parses Sphinx object inventories.
type InventoryService interface {
	// FetchInventory retrieves source's objects.inv and parses it.
	// Returns EUNAVAILABLE if the inventory cannot be fetched and EINVALID
	// if it cannot be parsed.
	FetchInventory(ctx context.Context, source Source) (*Inventory, error)
}
