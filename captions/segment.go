package captions

import "strings"

// Chunk is a contiguous span of script text assigned one on-screen
// appearance window. WordCount is floored at MinChunkWords so trivially
// short chunks are not starved of screen time during allocation.
type Chunk struct {
	Text      string
	WordCount int
}

// MinChunkWords is the lower bound applied to a chunk's word count.
const MinChunkWords = 3

// Segment splits a script into at most targetChunks caption chunks.
// targetChunks is a soft upper bound: fewer chunks are returned when the
// script is short.
//
// The script is split into sentences on ".", "?" and "!", the sentences are
// packed greedily into chunks of at most packLimit characters (a sentence is
// never split across chunks), and while more than targetChunks chunks remain
// the adjacent pair with the smallest combined length is merged. An empty
// script yields no chunks; a script with at most one sentence yields a
// single chunk holding the whole sanitized script.
func Segment(script string, targetChunks, packLimit int) []Chunk {
	s := Sanitize(script)
	if s == "" {
		return nil
	}

	sentences := splitSentences(s)
	if len(sentences) <= 1 {
		return []Chunk{newChunk(s)}
	}

	var texts []string
	cur := ""
	for _, sent := range sentences {
		candidate := strings.TrimSpace(cur + " " + sent)
		if len(candidate) <= packLimit {
			cur = candidate
			continue
		}
		if cur != "" {
			texts = append(texts, cur)
		}
		cur = sent
	}
	if cur != "" {
		texts = append(texts, cur)
	}

	texts = mergeToTarget(texts, targetChunks)

	chunks := make([]Chunk, len(texts))
	for i, t := range texts {
		chunks[i] = newChunk(t)
	}
	return chunks
}

func newChunk(text string) Chunk {
	return Chunk{Text: text, WordCount: max(MinChunkWords, len(strings.Fields(text)))}
}

// splitSentences treats ".", "?" and "!" as sentence terminators. Question
// and exclamation marks are first doubled with a period marker so one split
// pass handles all three; the question/statement distinction is deliberately
// discarded.
func splitSentences(s string) []string {
	marked := strings.ReplaceAll(s, "?", "?.")
	marked = strings.ReplaceAll(marked, "!", "!.")

	var sentences []string
	for _, part := range strings.Split(marked, ".") {
		part = strings.TrimSpace(part)
		if part != "" {
			sentences = append(sentences, part)
		}
	}
	return sentences
}

// mergeToTarget repeatedly merges the adjacent pair with the smallest
// combined character length until at most target chunks remain. Ties go to
// the leftmost pair. Quadratic per merge, which is fine at caption scale.
func mergeToTarget(texts []string, target int) []string {
	for len(texts) > target {
		best := 0
		bestLen := -1
		for i := 0; i < len(texts)-1; i++ {
			merged := len(texts[i]) + len(texts[i+1])
			if bestLen < 0 || merged < bestLen {
				bestLen = merged
				best = i
			}
		}
		texts[best] = strings.TrimSpace(texts[best] + " " + texts[best+1])
		texts = append(texts[:best+1], texts[best+2:]...)
	}
	return texts
}
