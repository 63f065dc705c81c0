package rtfm

import (
	"strconv"
	"strings"
)

// sgrColors maps span colors to SGR foreground color codes. Gray uses the
// bright-black code so it stays visible on dark terminals.
var sgrColors = map[SpanColor]int{
	SpanColorGray:   90,
	SpanColorGreen:  32,
	SpanColorYellow: 33,
	SpanColorCyan:   36,
	SpanColorWhite:  37,
	SpanColorRed:    31,
}

// FormatSignature renders signature spans as a single ANSI-colorized line.
// Newlines are trimmed from span content so multi-line signature markup
// collapses into one line; spans left empty after trimming are dropped.
func FormatSignature(spans []SignatureSpan) string {
	var sb strings.Builder
	for _, span := range spans {
		content := strings.Trim(span.Content, "\n")
		if content == "" {
			continue
		}

		sb.WriteString("\x1b[")
		if span.Bold {
			sb.WriteString("1;")
		}
		sb.WriteString(strconv.Itoa(sgrColors[span.Color]))
		sb.WriteByte('m')
		sb.WriteString(content)
		sb.WriteString("\x1b[0m")
	}
	return sb.String()
}
