package goquery

import (
	"fmt"
	"strings"

	"github.com/fwojciec/rtfm"
	"golang.org/x/net/html"
)

// parseNode recursively converts a content element into markdown text plus
// the fields discovered along the way. Fields bubble up through recursive
// calls in discovery order. Structural gaps (an admonition missing its
// content, a describe block missing dt/dd) drop the offending item and keep
// going; only the orchestrator surfaces hard errors.
//
// baseURL prefixes relative link targets. A pending rubric title is scoped
// to a single invocation: it labels the next python code block at the same
// nesting level.
func parseNode(n *html.Node, baseURL string) (string, []rtfm.Field) {
	if n.Type == html.TextNode {
		return n.Data, nil
	}

	var sb strings.Builder
	var fields []rtfm.Field
	var pendingRubric string
	var hasRubric bool

	recur := func(el *html.Node) string {
		text, f := parseNode(el, baseURL)
		fields = append(fields, f...)
		return text
	}

	for _, child := range walkNodes(n) {
		if child.elem == nil {
			sb.WriteString(child.text)
			continue
		}

		el := child.elem
		classes, _ := classList(el)

		switch el.Data {
		case "p":
			if hasClass(classes, "rubric") {
				pendingRubric = strings.TrimSpace(nodeText(el))
				hasRubric = true
				continue
			}
			sb.WriteString(recur(el))

		case "a":
			href, ok := attrVal(el, "href")
			if !ok {
				// An anchor without a target contributes nothing.
				continue
			}
			inner := recur(el)
			if !strings.Contains(href, "://") {
				href = baseURL + href
			}
			fmt.Fprintf(&sb, "[%s](%s)", inner, href)

		case "b", "strong":
			fmt.Fprintf(&sb, "**%s**", recur(el))

		case "i", "em":
			fmt.Fprintf(&sb, "*%s*", recur(el))

		case "u":
			fmt.Fprintf(&sb, "__%s__", recur(el))

		case "code":
			fmt.Fprintf(&sb, "`%s`", recur(el))

		case "ul":
			sb.WriteByte('\n')
			for _, li := range findAll(el, "li") {
				fmt.Fprintf(&sb, "• %s\n", recur(li))
			}

		case "ol":
			for i, li := range findAll(el, "li") {
				fmt.Fprintf(&sb, "%d. %s\n", i, recur(li))
			}

		case "div":
			if hasClass(classes, "admonition") {
				first := findFirst(el, "p")
				if first == nil {
					continue
				}
				title := strings.TrimSpace(recur(first))

				content := first.NextSibling
				if content == nil {
					continue
				}
				body := strings.TrimSpace(recur(content))

				// An empty title or body suppresses the field entirely.
				if title == "" || body == "" {
					continue
				}
				fields = append(fields, rtfm.Field{Name: title, Value: body})
			} else if hasRubric && hasClass(classes, "highlight-python3") {
				fields = append(fields, rtfm.Field{
					Name:  pendingRubric,
					Value: fmt.Sprintf("```py\n%s```", nodeText(el)),
				})
				pendingRubric, hasRubric = "", false
			} else if hasClass(classes, "highlight-default") {
				fmt.Fprintf(&sb, "```\n%s```", nodeText(el))
			}

			// Any division may carry nested describe blocks documenting
			// the protocol operations a type supports.
			var chunks []string
			for _, dl := range findAll(el, "dl.describe") {
				dt := findFirst(dl, "dt")
				dd := findFirst(dl, "dd")
				if dt == nil || dd == nil {
					continue
				}
				operation := recur(dt)
				description := recur(dd)
				chunks = append(chunks, fmt.Sprintf(
					"**`%s`** - %s",
					strings.TrimSpace(operation),
					strings.TrimSpace(strings.ReplaceAll(description, "\n", " ")),
				))
			}
			if len(chunks) > 0 {
				fields = append(fields, rtfm.Field{
					Name:  "Supported Operations",
					Value: strings.Join(chunks, "\n"),
				})
			}

		case "dl":
			dts := findAll(el, "dt")
			dds := findAll(el, "dd")
			for i := 0; i < len(dts) && i < len(dds); i++ {
				dt := recur(dts[i])
				dd := recur(dds[i])

				switch {
				case dt != "" && dd != "":
					fields = append(fields, rtfm.Field{Name: dt, Value: dd})
				case dt != "":
					fields = append(fields, rtfm.Field{Name: dt, Value: "No content provided."})
				}
			}
		}
	}

	return sb.String(), fields
}
