package generate

import (
	"encoding/json"
	"testing"
)

func TestStripCodeFence(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"bare json", `{"a":1}`, `{"a":1}`},
		{"fenced", "```\n{\"a\":1}\n```", `{"a":1}`},
		{"fenced with language", "```json\n{\"a\":1}\n```", `{"a":1}`},
		{"surrounding whitespace", "  {\"a\":1}\n", `{"a":1}`},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := stripCodeFence(c.in)
			if got != c.want {
				t.Fatalf("stripCodeFence(%q) = %q; want %q", c.in, got, c.want)
			}
			if !json.Valid([]byte(got)) {
				t.Fatalf("stripped output is not valid JSON: %q", got)
			}
		})
	}
}
