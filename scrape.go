package rtfm

// SpanColor identifies the display color of a signature span.
type SpanColor string

// Colors assigned to signature tokens. The set is closed: the scraper never
// emits a span with a color outside of it.
const (
	SpanColorGray   SpanColor = "gray"
	SpanColorGreen  SpanColor = "green"
	SpanColorYellow SpanColor = "yellow"
	SpanColorCyan   SpanColor = "cyan"
	SpanColorWhite  SpanColor = "white"
	SpanColorRed    SpanColor = "red"
)

// SignatureSpan is one colored token of a rendered signature. Spans are
// ordered by traversal order of the original signature markup.
type SignatureSpan struct {
	Content string    `json:"content"`
	Bold    bool      `json:"bold"`
	Color   SpanColor `json:"color"`
}

// Field is one labeled chunk of content extracted from a documentation
// page: a parameter, an admonition, a code sample, or a "supported
// operations" summary. Inline is always false for fields produced by the
// scraper; fields render full-width.
type Field struct {
	Name   string `json:"name"`
	Value  string `json:"value"`
	Inline bool   `json:"inline"`
}

// ScrapeResult holds the extracted documentation for a single symbol: a
// markdown-flavored description, the colorized signature, and the ordered
// list of fields discovered while parsing the description.
type ScrapeResult struct {
	Description string          `json:"description"`
	Signature   []SignatureSpan `json:"signature"`
	Fields      []Field         `json:"fields"`
}

// Scraper extracts structured documentation from Sphinx-generated HTML.
type Scraper interface {
	// HasDocument reports whether a parsed document for url is already
	// cached. It never parses and never performs I/O; callers use it to
	// skip fetching pages that have already been scraped.
	HasDocument(url string) bool

	// ScrapeDocument extracts the documentation for the symbol whose
	// signature element carries the id target. The url is used both as the
	// cache key and as the base for resolving relative links; html is the
	// full page source, ignored when the document is already cached.
	//
	// Returns ENOTFOUND when the signature or its description cannot be
	// located. There are no partial results: every other structural
	// irregularity in the page is absorbed by omitting the offending item.
	ScrapeDocument(url, html, target string) (*ScrapeResult, error)
}
