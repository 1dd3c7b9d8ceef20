package compose

import (
	"strings"
	"testing"
)

// unescapeText decodes drawtext escaping the way the backend does: a
// backslash makes the next character literal, except \n which is a line
// break.
func unescapeText(s string) string {
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		if s[i] != '\\' || i == len(s)-1 {
			b.WriteByte(s[i])
			continue
		}
		i++
		if s[i] == 'n' {
			b.WriteByte('\n')
		} else {
			b.WriteByte(s[i])
		}
	}
	return b.String()
}

func TestEscapeText(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"plain", "hello world", "hello world"},
		{"colon", "RRSP vs TFSA: Which Wins", `RRSP vs TFSA\: Which Wins`},
		{"quote", "it's here", `it\'s here`},
		{"percent", "save 18%", `save 18\%`},
		{"backslash first", `a\:b`, `a\\\:b`},
		{"newline", "line one\nline two", `line one\nline two`},
		{"brackets and separators", "a,b;c[d]", `a\,b\;c\[d\]`},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := EscapeText(c.in)
			if got != c.want {
				t.Fatalf("EscapeText(%q) = %q; want %q", c.in, got, c.want)
			}
		})
	}
}

func TestEscapeTextRoundTrip(t *testing.T) {
	inputs := []string{
		"plain text",
		`path\with\backslashes`,
		"100% of returns, eh?",
		"a:b;c,d[e]'f'\ng",
		`already \n escaped`,
	}
	for _, in := range inputs {
		if got := unescapeText(EscapeText(in)); got != in {
			t.Fatalf("round trip of %q gave %q", in, got)
		}
	}
}

func TestEscapePath(t *testing.T) {
	got := EscapePath(`C:\captions\title.txt`)
	want := `C\:\\captions\\title.txt`
	if got != want {
		t.Fatalf("EscapePath = %q; want %q", got, want)
	}
	if p := "/tmp/title.txt"; EscapePath(p) != p {
		t.Fatalf("EscapePath altered a plain unix path: %q", EscapePath(p))
	}
}
