package rtfm_test

import (
	"testing"

	"github.com/fwojciec/rtfm"
	"github.com/stretchr/testify/assert"
)

func TestFormatSignature(t *testing.T) {
	t.Parallel()

	t.Run("renders bold and plain spans with color codes", func(t *testing.T) {
		t.Parallel()

		spans := []rtfm.SignatureSpan{
			{Content: "run", Bold: true, Color: rtfm.SpanColorWhite},
			{Content: "(", Bold: true, Color: rtfm.SpanColorGray},
			{Content: "token", Bold: false, Color: rtfm.SpanColorYellow},
			{Content: ")", Bold: true, Color: rtfm.SpanColorGray},
		}

		result := rtfm.FormatSignature(spans)

		assert.Equal(t, "\x1b[1;37mrun\x1b[0m\x1b[1;90m(\x1b[0m\x1b[33mtoken\x1b[0m\x1b[1;90m)\x1b[0m", result)
	})

	t.Run("trims newlines from span content", func(t *testing.T) {
		t.Parallel()

		spans := []rtfm.SignatureSpan{
			{Content: "\nasync \n", Bold: false, Color: rtfm.SpanColorGreen},
		}

		result := rtfm.FormatSignature(spans)

		assert.Equal(t, "\x1b[32masync \x1b[0m", result)
	})

	t.Run("drops spans that are empty after trimming", func(t *testing.T) {
		t.Parallel()

		spans := []rtfm.SignatureSpan{
			{Content: "\n", Bold: true, Color: rtfm.SpanColorGray},
		}

		assert.Empty(t, rtfm.FormatSignature(spans))
	})

	t.Run("returns empty string for no spans", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, rtfm.FormatSignature(nil))
	})
}
