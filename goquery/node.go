// Package goquery implements the Sphinx documentation scraper on top of
// github.com/PuerkitoBio/goquery. It parses pages once per URL, walks the
// subtree describing a single symbol, and converts it into markdown text,
// labeled fields, and a colorized signature token stream.
//
// Sphinx HTML has no schema; the parsing rules here are heuristics over the
// tag/class conventions its writers emit, validated against ReadTheDocs and
// classic themes.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// attrVal returns the value of the named attribute and whether it exists.
func attrVal(n *html.Node, key string) (string, bool) {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}

// classList returns the whitespace-split class list of n and whether the
// class attribute is present at all. An empty class attribute is present
// but yields an empty list.
func classList(n *html.Node) ([]string, bool) {
	raw, ok := attrVal(n, "class")
	if !ok {
		return nil, false
	}
	return strings.Fields(raw), true
}

// hasClass reports whether the class list contains name.
func hasClass(classes []string, name string) bool {
	for _, c := range classes {
		if c == name {
			return true
		}
	}
	return false
}

// hasAnyClass reports whether the class list contains any of the names.
func hasAnyClass(classes []string, names ...string) bool {
	for _, name := range names {
		if hasClass(classes, name) {
			return true
		}
	}
	return false
}

// findAll returns the descendants of n matching the CSS selector, in
// document order.
func findAll(n *html.Node, selector string) []*html.Node {
	return goquery.NewDocumentFromNode(n).Find(selector).Nodes
}

// findFirst returns the first descendant of n matching the CSS selector,
// or nil if there is none.
func findFirst(n *html.Node, selector string) *html.Node {
	if nodes := findAll(n, selector); len(nodes) > 0 {
		return nodes[0]
	}
	return nil
}

// nodeText returns the concatenated text content of n's subtree.
func nodeText(n *html.Node) string {
	if n.Type == html.TextNode {
		return n.Data
	}
	return goquery.NewDocumentFromNode(n).Text()
}
