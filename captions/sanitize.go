package captions

import "strings"

var quoteReplacer = strings.NewReplacer(
	"‘", "'",
	"’", "'",
	"“", `"`,
	"”", `"`,
	"\u2028", "\n",
	"\u2029", "\n",
	"\r\n", "\n",
	"\r", "\n",
	"\t", " ",
)

// Sanitize normalizes raw text before any structural processing:
// curly quotes become straight ASCII quotes, Unicode line separators and
// CR/CRLF become "\n", tabs become spaces, runs of spaces collapse to one,
// runs of newlines collapse to one, and surrounding whitespace is trimmed.
// Empty input yields the empty string. Sanitizing twice is a no-op.
func Sanitize(text string) string {
	if text == "" {
		return ""
	}

	s := quoteReplacer.Replace(text)

	var b strings.Builder
	b.Grow(len(s))
	var lastSpace, lastNewline bool
	for _, r := range s {
		switch r {
		case ' ':
			if lastSpace || lastNewline {
				continue
			}
			lastSpace = true
			b.WriteRune(r)
		case '\n':
			if lastNewline {
				continue
			}
			// A space right before a newline is dropped in favor of the break.
			if lastSpace {
				out := b.String()
				b.Reset()
				b.WriteString(out[:len(out)-1])
			}
			lastNewline = true
			lastSpace = false
			b.WriteRune(r)
		default:
			lastSpace = false
			lastNewline = false
			b.WriteRune(r)
		}
	}

	return strings.TrimSpace(b.String())
}
