package video

// Content is the package produced by the generation collaborator.
type Content struct {
	Title       string `json:"youtube_title"`
	Description string `json:"youtube_description"`
	Script      string `json:"script"`
}

// DefaultTitle is used when the generated package carries no title.
const DefaultTitle = "Canadian Finance"

// Job is one render request: generated content plus the voiceover audio.
// Audio may be a local path or an http(s) URL. Output is optional; when
// empty the processor derives it from the job file name.
type Job struct {
	Content
	Audio  string `json:"audio"`
	Output string `json:"output,omitempty"`
}
