package compose

import (
	"bytes"
	"fmt"
	"strconv"

	ffmpeg "github.com/u2takey/ffmpeg-go"
)

// Render lowers the graph onto an ffmpeg filter chain and invokes the
// backend with two generated color sources, the audio track, and encoder
// parameters from Style. The output is truncated to the shortest stream so
// its length matches the audio. A non-zero backend exit is returned as an
// error carrying the captured diagnostics; there is no retry at this layer.
func Render(g Graph, audioPath, outPath string, st Style) error {
	video, err := lower(g, st)
	if err != nil {
		return fmt.Errorf("graph assembly: %w", err)
	}
	audio := ffmpeg.Input(audioPath)

	var stderr bytes.Buffer
	cmd := ffmpeg.Output([]*ffmpeg.Stream{video, audio}, outPath, ffmpeg.KwArgs{
		"c:v":      st.VideoCodec,
		"pix_fmt":  st.PixelFormat,
		"r":        st.FPS,
		"c:a":      st.AudioCodec,
		"preset":   st.EncodePreset,
		"shortest": "",
	}).OverWriteOutput().Compile()
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("backend invocation: %w: %s", err, stderr.String())
	}
	return nil
}

// lower walks the layer stack back to front, chaining each layer's output
// into the next as an explicit stream reference. The chain, not any global
// ordering the backend might apply, fixes the stacking.
func lower(g Graph, st Style) (*ffmpeg.Stream, error) {
	delivery, err := newTextDelivery(st)
	if err != nil {
		return nil, err
	}

	var cur *ffmpeg.Stream
	captionIndex := 0
	for _, layer := range g.Layers {
		if cur == nil {
			bg, ok := layer.(Background)
			if !ok {
				return nil, fmt.Errorf("graph must start with a background layer, got %T", layer)
			}
			cur = lowerBackground(bg, g.Duration, st)
			continue
		}

		switch l := layer.(type) {
		case Background:
			return nil, fmt.Errorf("duplicate background layer")
		case TitleCard:
			kw := drawtextOptions(l.FontFile, l.FontSize, l.Y, l.LineSpacing, l.BoxOpacity, l.BoxBorder)
			if err := delivery.apply(kw, "title.txt", l.Text); err != nil {
				return nil, err
			}
			cur = cur.Filter("drawtext", ffmpeg.Args{}, kw)
		case Caption:
			kw := drawtextOptions(l.FontFile, l.FontSize, l.Y, l.LineSpacing, l.BoxOpacity, l.BoxBorder)
			kw["enable"] = quote(fmt.Sprintf("between(t,%.3f,%.3f)", l.Window.Start, l.Window.End))
			name := fmt.Sprintf("caption_%02d.txt", captionIndex)
			captionIndex++
			if err := delivery.apply(kw, name, l.Text); err != nil {
				return nil, err
			}
			cur = cur.Filter("drawtext", ffmpeg.Args{}, kw)
		case ProgressBar:
			cur = lowerProgress(cur, l, g.Duration)
		default:
			return nil, fmt.Errorf("unknown layer type %T", layer)
		}
	}

	if cur == nil {
		return nil, fmt.Errorf("graph has no layers")
	}
	return cur, nil
}

func lowerBackground(l Background, duration float64, st Style) *ffmpeg.Stream {
	a := colorSource(l.ColorA, st)
	b := colorSource(l.ColorB, st)

	d := ffnum(duration)
	blend := fmt.Sprintf("A*(0.55+0.15*sin(2*PI*t/%[1]s))+B*(0.45-0.15*sin(2*PI*t/%[1]s))", d)

	return ffmpeg.Filter([]*ffmpeg.Stream{a, b}, "blend", ffmpeg.Args{}, ffmpeg.KwArgs{
		"all_expr": quote(blend),
	}).
		Filter("noise", ffmpeg.Args{}, ffmpeg.KwArgs{"alls": l.NoiseStrength, "allf": "t+u"}).
		Filter("scale", ffmpeg.Args{fmt.Sprintf("%d:%d", st.Width+l.Overscan, st.Height+l.Overscan)}).
		Filter("crop", ffmpeg.Args{
			strconv.Itoa(st.Width),
			strconv.Itoa(st.Height),
			quote(fmt.Sprintf("%d+%d*sin(2*PI*t/%s)", l.Overscan/2, l.Drift, d)),
			quote(fmt.Sprintf("%d+%d*cos(2*PI*t/%s)", l.Overscan/2, l.Drift, d)),
		})
}

func lowerProgress(cur *ffmpeg.Stream, l ProgressBar, duration float64) *ffmpeg.Stream {
	y := fmt.Sprintf("h-%d", l.BottomOffset)
	track := ffmpeg.KwArgs{
		"x":     l.Margin,
		"y":     y,
		"w":     fmt.Sprintf("w-%d", 2*l.Margin),
		"h":     l.Height,
		"color": fmt.Sprintf("white@%.2f", l.TrackOpacity),
		"t":     "fill",
	}
	fill := ffmpeg.KwArgs{
		"x":     l.Margin,
		"y":     y,
		"w":     quote(fmt.Sprintf("(w-%d)*t/%s", 2*l.Margin, ffnum(duration))),
		"h":     l.Height,
		"color": fmt.Sprintf("%s@%.2f", l.FillColor, l.FillOpacity),
		"t":     "fill",
	}
	return cur.
		Filter("drawbox", ffmpeg.Args{}, track).
		Filter("drawbox", ffmpeg.Args{}, fill)
}

func drawtextOptions(fontFile string, fontSize, y, lineSpacing int, boxOpacity float64, boxBorder int) ffmpeg.KwArgs {
	return ffmpeg.KwArgs{
		"fontfile":     EscapePath(fontFile),
		"fontcolor":    "white",
		"fontsize":     fontSize,
		"x":            "(w-text_w)/2",
		"y":            y,
		"line_spacing": lineSpacing,
		"box":          1,
		"boxcolor":     fmt.Sprintf("black@%.2f", boxOpacity),
		"boxborderw":   boxBorder,
	}
}

func colorSource(color string, st Style) *ffmpeg.Stream {
	return ffmpeg.Input(
		fmt.Sprintf("color=c=%s:s=%dx%d:r=%d", color, st.Width, st.Height, st.FPS),
		ffmpeg.KwArgs{"f": "lavfi"},
	)
}

// ffnum formats a duration for use inside a filter expression.
func ffnum(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
