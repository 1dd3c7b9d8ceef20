package video

import (
	"fmt"
	"log"

	"shortforge/captions"
	"shortforge/compose"
)

// Profile is the one immutable configuration structure the pipeline runs
// under: composition style plus the text segmentation and timing knobs.
type Profile struct {
	Style compose.Style

	// Title and caption wrapping limits.
	TitleMaxChars   int
	TitleMaxLines   int
	CaptionMaxChars int
	CaptionMaxLines int

	// Segmentation: soft upper bound on chunk count and the greedy packing
	// character limit.
	TargetChunks   int
	ChunkPackLimit int

	// Timing: seconds reserved before the first caption and after the
	// last, and the floor applied to probed audio durations.
	LeadIn      float64
	TailOut     float64
	MinDuration float64
}

// DefaultProfile matches the standard shorts look and pacing.
func DefaultProfile() Profile {
	return Profile{
		Style:           compose.DefaultStyle(),
		TitleMaxChars:   28,
		TitleMaxLines:   3,
		CaptionMaxChars: 36,
		CaptionMaxLines: 3,
		TargetChunks:    8,
		ChunkPackLimit:  170,
		LeadIn:          0.4,
		TailOut:         0.2,
		MinDuration:     8.0,
	}
}

// Pipeline turns generated content and a voiceover into a rendered clip.
// It is stateless apart from the profile; invocations are independent and
// may run concurrently.
type Pipeline struct {
	profile Profile
}

func NewPipeline(profile Profile) *Pipeline {
	return &Pipeline{profile: profile}
}

// Plan performs every pure step: sanitize and wrap the title, segment the
// script, allocate caption timings over the (already floored) duration, and
// assemble the layer graph. An empty script produces a graph with zero
// caption layers.
func (p *Pipeline) Plan(content Content, duration float64) compose.Graph {
	cfg := p.profile

	title := content.Title
	if title == "" {
		title = DefaultTitle
	}
	wrappedTitle := captions.Wrap(title, cfg.TitleMaxChars, cfg.TitleMaxLines)

	chunks := captions.Segment(content.Script, cfg.TargetChunks, cfg.ChunkPackLimit)
	timed := captions.Allocate(chunks, duration, cfg.LeadIn, cfg.TailOut)
	for i := range timed {
		timed[i].Text = captions.Wrap(timed[i].Text, cfg.CaptionMaxChars, cfg.CaptionMaxLines)
	}

	return compose.Build(wrappedTitle, timed, duration, cfg.Style)
}

// Render probes the voiceover duration (floored at MinDuration), plans the
// composition, and invokes the rendering backend.
func (p *Pipeline) Render(content Content, audioPath, outPath string) error {
	duration, err := compose.ProbeDuration(audioPath)
	if err != nil {
		return fmt.Errorf("probe audio: %w", err)
	}
	if duration < p.profile.MinDuration {
		duration = p.profile.MinDuration
	}

	graph := p.Plan(content, duration)
	log.Printf("Composition: %d layers over %.2fs", len(graph.Layers), duration)

	if err := compose.Render(graph, audioPath, outPath, p.profile.Style); err != nil {
		return err
	}
	return nil
}
