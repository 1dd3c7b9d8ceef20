package compose

import (
	"encoding/json"
	"fmt"
	"strconv"

	ffmpeg "github.com/u2takey/ffmpeg-go"
)

// ProbeDuration returns the duration of a media file in seconds, as
// reported by ffprobe. Callers decide their own floor; see video.Pipeline.
func ProbeDuration(path string) (float64, error) {
	out, err := ffmpeg.Probe(path)
	if err != nil {
		return 0, fmt.Errorf("probe %s: %w", path, err)
	}

	var probed struct {
		Format struct {
			Duration string `json:"duration"`
		} `json:"format"`
	}
	if err := json.Unmarshal([]byte(out), &probed); err != nil {
		return 0, fmt.Errorf("parse probe output: %w", err)
	}

	d, err := strconv.ParseFloat(probed.Format.Duration, 64)
	if err != nil {
		return 0, fmt.Errorf("parse probed duration %q: %w", probed.Format.Duration, err)
	}
	return d, nil
}
