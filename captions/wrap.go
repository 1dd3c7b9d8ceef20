package captions

import "strings"

// Wrap word-wraps text into at most maxLines lines of at most maxChars
// characters, returning the lines joined with "\n".
//
// Words are packed greedily: a word joins the current line when the line,
// a separating space, and the word still fit within maxChars. Words are
// never split, so a single word longer than maxChars occupies its own line
// unshortened. If greedy packing produces more than maxLines lines, the
// first maxLines-1 are kept verbatim and the remainder is merged,
// space-separated, into one final overflow line.
func Wrap(text string, maxChars, maxLines int) string {
	s := Sanitize(text)
	if s == "" {
		return ""
	}

	var lines []string
	cur := ""
	for _, word := range strings.Fields(s) {
		sep := 0
		if cur != "" {
			sep = 1
		}
		if len(cur)+sep+len(word) <= maxChars {
			if cur == "" {
				cur = word
			} else {
				cur += " " + word
			}
			continue
		}
		if cur != "" {
			lines = append(lines, cur)
		}
		cur = word
	}
	if cur != "" {
		lines = append(lines, cur)
	}

	if len(lines) > maxLines {
		tail := strings.Join(lines[maxLines-1:], " ")
		lines = append(lines[:maxLines-1], tail)
	}

	return strings.Join(lines, "\n")
}
