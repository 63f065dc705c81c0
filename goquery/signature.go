package goquery

import (
	"github.com/fwojciec/rtfm"
	"golang.org/x/net/html"
)

// parseSignatureNode classifies the direct children of a signature element
// into colored spans. Signature markup is flat; each child is matched
// against the tag/class combinations Sphinx emits for signature tokens, in
// priority order. Children outside the recognized set produce no span.
func parseSignatureNode(n *html.Node) []rtfm.SignatureSpan {
	var spans []rtfm.SignatureSpan

	for child := n.FirstChild; child != nil; child = child.NextSibling {
		switch child.Type {
		case html.TextNode:
			spans = append(spans, rtfm.SignatureSpan{Content: child.Data, Bold: true, Color: rtfm.SpanColorGray})

		case html.ElementNode:
			classes, _ := classList(child)

			switch {
			// Emphasis outside a parameter wrapper renders annotations
			// and defaults.
			case child.Data == "em" && !hasClass(classes, "sig-param"):
				spans = append(spans, rtfm.SignatureSpan{Content: nodeText(child), Bold: false, Color: rtfm.SpanColorGreen})

			case hasClass(classes, "sig-paren") || hasClass(classes, "o"):
				spans = append(spans, rtfm.SignatureSpan{Content: nodeText(child), Bold: true, Color: rtfm.SpanColorGray})

			case hasClass(classes, "n"):
				spans = append(spans, rtfm.SignatureSpan{Content: nodeText(child), Bold: false, Color: rtfm.SpanColorYellow})

			case hasClass(classes, "default_value"):
				spans = append(spans, rtfm.SignatureSpan{Content: nodeText(child), Bold: false, Color: rtfm.SpanColorCyan})

			// The defining-class qualifier renders white, the owning-module
			// qualifier red.
			case hasClass(classes, "sig-prename"):
				color := rtfm.SpanColorRed
				if hasClass(classes, "descclassname") {
					color = rtfm.SpanColorWhite
				}
				spans = append(spans, rtfm.SignatureSpan{Content: nodeText(child), Bold: false, Color: color})

			case hasClass(classes, "descname") || hasClass(classes, "sig-name"):
				spans = append(spans, rtfm.SignatureSpan{Content: nodeText(child), Bold: true, Color: rtfm.SpanColorWhite})

			// Parameters are themselves composed of name/default/annotation
			// tokens.
			case hasClass(classes, "sig-param"):
				spans = append(spans, parseSignatureNode(child)...)
			}
		}
	}

	return spans
}
