package goquery

import (
	"strings"

	"golang.org/x/net/html"
)

// contentNode is one structurally-significant child produced by walkNodes:
// either a raw text run or an element for the content parser to interpret.
// Exactly one of text/elem is set.
type contentNode struct {
	text string
	elem *html.Node
}

// contentTags are elements the content parser handles directly; the walker
// emits them without recursing into them.
var contentTags = map[string]bool{
	"p": true, "a": true, "b": true, "i": true, "em": true,
	"strong": true, "u": true, "ul": true, "ol": true, "code": true,
}

// divContentClasses mark divisions whose internals the content parser
// interprets by class.
var divContentClasses = []string{"admonition", "operations", "highlight-python3", "highlight-default"}

// walkNodes classifies the immediate children of n into the ordered list of
// nodes the content parser should see, flattening decorative wrapper markup.
//
// A definition list without the "field-list" class terminates the walk of
// the current sibling set: the remaining siblings are dropped, not skipped.
// Sphinx uses such lists to open the next symbol's documentation, so one
// marks the end of the current content region.
func walkNodes(n *html.Node) []contentNode {
	var result []contentNode

	for child := n.FirstChild; child != nil; child = child.NextSibling {
		switch child.Type {
		case html.TextNode:
			if child.Data != "" {
				result = append(result, contentNode{text: child.Data})
			}

		case html.ElementNode:
			tag := child.Data

			if contentTags[tag] {
				result = append(result, contentNode{elem: child})
				continue
			}

			// Headings have no dedicated formatting; they are captured
			// whole and flattened by the generic text extraction later.
			if strings.HasPrefix(tag, "h") {
				result = append(result, contentNode{elem: child})
				continue
			}

			classes, ok := classList(child)
			if !ok {
				continue
			}

			if tag == "dl" {
				if !hasClass(classes, "field-list") {
					return result
				}
				result = append(result, contentNode{elem: child})
				continue
			}

			if tag == "div" && hasAnyClass(classes, divContentClasses...) {
				result = append(result, contentNode{elem: child})
				continue
			}

			result = append(result, walkNodes(child)...)
		}
	}

	return result
}
