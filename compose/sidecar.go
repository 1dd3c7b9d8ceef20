package compose

import (
	"fmt"
	"os"
	"path/filepath"

	ffmpeg "github.com/u2takey/ffmpeg-go"
)

// textDelivery hands a layer's text to drawtext, either inline (escaped in
// the filter graph) or through a side-channel text file, per Style. Side
// files use deterministic names inside one directory, so a rerun of the
// same job overwrites leftovers from an aborted run.
type textDelivery struct {
	inline bool
	dir    string
}

func newTextDelivery(st Style) (*textDelivery, error) {
	if st.InlineText {
		return &textDelivery{inline: true}, nil
	}

	dir := st.SidecarDir
	if dir == "" {
		tmp, err := os.MkdirTemp("", "shortforge-text-")
		if err != nil {
			return nil, fmt.Errorf("create sidecar dir: %w", err)
		}
		dir = tmp
	} else if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create sidecar dir: %w", err)
	}
	return &textDelivery{dir: dir}, nil
}

// apply sets either text= or textfile= on the drawtext options.
func (d *textDelivery) apply(kw ffmpeg.KwArgs, name, text string) error {
	if d.inline {
		kw["text"] = quote(EscapeText(text))
		return nil
	}

	path := filepath.Join(d.dir, name)
	if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
		return fmt.Errorf("write sidecar %s: %w", name, err)
	}
	kw["textfile"] = EscapePath(path)
	return nil
}
