package captions

// Timed is a caption chunk with its visibility window in seconds.
// Invariant: 0 <= Start < End <= total duration, and consecutive captions
// have strictly increasing starts with no overlap.
type Timed struct {
	Text  string  `json:"text"`
	Start float64 `json:"start"`
	End   float64 `json:"end"`
}

// lastCaptionMargin keeps the final caption from persisting into the very
// last frames of the clip regardless of rounding.
const lastCaptionMargin = 0.05

// Allocate assigns each chunk a back-to-back interval inside total seconds
// of audio, weighted by word count. The first interval starts at leadIn and
// tailOut seconds are reserved at the end; the usable window is floored at
// 0.5s so a degenerate duration still yields positive widths. The final
// interval's end is clamped to total-0.05.
func Allocate(chunks []Chunk, total, leadIn, tailOut float64) []Timed {
	if len(chunks) == 0 {
		return nil
	}

	available := total - leadIn - tailOut
	if available < 0.5 {
		available = 0.5
	}

	weightSum := 0
	for _, c := range chunks {
		weightSum += c.WordCount
	}

	timed := make([]Timed, len(chunks))
	t := leadIn
	for i, c := range chunks {
		dt := available * float64(c.WordCount) / float64(weightSum)
		timed[i] = Timed{Text: c.Text, Start: t, End: t + dt}
		t += dt
	}

	if last := &timed[len(timed)-1]; last.End > total-lastCaptionMargin {
		last.End = total - lastCaptionMargin
	}
	return timed
}
