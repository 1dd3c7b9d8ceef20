package captions

import (
	"strings"
	"testing"
)

func TestWrap(t *testing.T) {
	cases := []struct {
		name     string
		in       string
		maxChars int
		maxLines int
		want     string
	}{
		{"empty", "", 28, 3, ""},
		{"single word", "Hello", 28, 3, "Hello"},
		{"fits one line", "RRSP basics", 28, 3, "RRSP basics"},
		{
			"title scenario",
			"RRSP vs TFSA: Which Wins in 2025?",
			28, 3,
			"RRSP vs TFSA: Which Wins in\n2025?",
		},
		{
			"overflow merges tail",
			"one two three four five six seven eight nine ten",
			8, 3,
			"one two\nthree\nfour five six seven eight nine ten",
		},
		{"long word keeps own line", "hi extraordinarily no", 6, 3, "hi\nextraordinarily\nno"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := Wrap(c.in, c.maxChars, c.maxLines)
			if got != c.want {
				t.Fatalf("Wrap(%q, %d, %d) = %q; want %q", c.in, c.maxChars, c.maxLines, got, c.want)
			}
		})
	}
}

func TestWrapBounds(t *testing.T) {
	inputs := []string{
		"RRSP vs TFSA: Which Wins in 2025?",
		"The quick brown fox jumps over the lazy dog again and again until the clip runs out of time entirely",
		"word",
		"a b c d e f g h i j k l m n o p q r s t u v w x y z",
	}

	for _, in := range inputs {
		for _, maxChars := range []int{12, 28, 36} {
			out := Wrap(in, maxChars, 3)
			lines := strings.Split(out, "\n")
			if len(lines) > 3 {
				t.Fatalf("Wrap(%q, %d, 3) produced %d lines", in, maxChars, len(lines))
			}
			// All but the final overflow line must respect maxChars unless a
			// single word exceeds the limit on its own.
			for i, line := range lines {
				if i == len(lines)-1 {
					continue
				}
				if len(line) > maxChars && strings.Contains(line, " ") {
					t.Fatalf("line %d of Wrap(%q, %d, 3) is %d chars: %q", i, in, maxChars, len(line), line)
				}
			}
			// No words lost or reordered.
			if got, want := strings.Fields(strings.ReplaceAll(out, "\n", " ")), strings.Fields(in); !equalStrings(got, want) {
				t.Fatalf("Wrap(%q, %d, 3) altered words: %v != %v", in, maxChars, got, want)
			}
		}
	}
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
