package rtfm

import "regexp"

var newlineRuns = regexp.MustCompile(`\n{3,}`)

// CollapseNewlines reduces runs of three or more newlines to exactly two.
// Scraped descriptions occasionally accumulate extra blank lines where
// wrapper markup was flattened; this normalizes paragraph spacing.
func CollapseNewlines(s string) string {
	return newlineRuns.ReplaceAllString(s, "\n\n")
}

// Cutoff truncates s to at most max runes, replacing the final rune with an
// ellipsis when truncation occurs.
func Cutoff(s string, max int) string {
	if max <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-1]) + "…"
}
