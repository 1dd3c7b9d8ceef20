package compose

import "strings"

// EscapeText makes text safe to embed as a quoted parameter value inside a
// drawtext filter. Backslash must be escaped first or the later escapes
// would be double-escaped. Embedded newlines become the drawtext literal
// newline sequence.
func EscapeText(text string) string {
	s := strings.ReplaceAll(text, `\`, `\\`)
	s = strings.ReplaceAll(s, `'`, `\'`)
	s = strings.ReplaceAll(s, `:`, `\:`)
	s = strings.ReplaceAll(s, `%`, `\%`)
	s = strings.ReplaceAll(s, `,`, `\,`)
	s = strings.ReplaceAll(s, `;`, `\;`)
	s = strings.ReplaceAll(s, `[`, `\[`)
	s = strings.ReplaceAll(s, `]`, `\]`)
	s = strings.ReplaceAll(s, "\n", `\n`)
	return s
}

// EscapePath makes a filesystem path safe for filter options such as
// textfile and fontfile, which only need backslash and colon escaped.
func EscapePath(path string) string {
	s := strings.ReplaceAll(path, `\`, `\\`)
	return strings.ReplaceAll(s, `:`, `\:`)
}

// quote wraps a filter option value in single quotes so commas inside
// expressions survive the filter-graph parser.
func quote(s string) string {
	return "'" + s + "'"
}
