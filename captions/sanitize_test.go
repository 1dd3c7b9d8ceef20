package captions

import "testing"

func TestSanitize(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", ""},
		{"curly quotes", "It’s “here”", `It's "here"`},
		{"crlf and cr", "a\r\nb\rc", "a\nb\nc"},
		{"unicode separators", "a\u2028b\u2029c", "a\nb\nc"},
		{"tabs", "a\tb", "a b"},
		{"space runs", "a   b  c", "a b c"},
		{"newline runs", "a\n\n\nb", "a\nb"},
		{"space before newline", "a  \n b", "a\nb"},
		{"trim", "  padded  ", "padded"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := Sanitize(c.in)
			if got != c.want {
				t.Fatalf("Sanitize(%q) = %q; want %q", c.in, got, c.want)
			}
		})
	}
}

func TestSanitizeIdempotent(t *testing.T) {
	inputs := []string{
		"It’s  “quoted”\r\n\ttext",
		"plain already-clean text",
		"multi\n\nline input",
	}
	for _, in := range inputs {
		once := Sanitize(in)
		twice := Sanitize(once)
		if once != twice {
			t.Fatalf("Sanitize not idempotent: %q -> %q -> %q", in, once, twice)
		}
	}
}
