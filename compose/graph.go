package compose

import "shortforge/captions"

// Window is the [Start, End) interval in seconds during which a layer is
// shown. Layers without a window are always visible.
type Window struct {
	Start float64
	End   float64
}

// Layer is one visual element of the composition. The concrete variants are
// Background, TitleCard, Caption and ProgressBar.
type Layer interface {
	// Visibility returns the layer's window, or nil when always visible.
	Visibility() *Window
}

// Background is a two-tone animated field: an oscillating blend of two base
// colors at angular frequency 2*pi/duration, noise texture, and a slow pan
// from overscanning the canvas and cropping at a drifting offset.
type Background struct {
	ColorA        string
	ColorB        string
	NoiseStrength int
	Overscan      int
	Drift         int
}

func (Background) Visibility() *Window { return nil }

// TitleCard is the wrapped title text, centered near the top in bold over a
// semi-opaque backing box.
type TitleCard struct {
	Text        string
	FontFile    string
	FontSize    int
	Y           int
	LineSpacing int
	BoxOpacity  float64
	BoxBorder   int
}

func (TitleCard) Visibility() *Window { return nil }

// Caption is one timed caption block, centered near the bottom-middle in
// regular weight over a semi-opaque backing box.
type Caption struct {
	Text        string
	Window      Window
	FontFile    string
	FontSize    int
	Y           int
	LineSpacing int
	BoxOpacity  float64
	BoxBorder   int
}

func (c Caption) Visibility() *Window { return &c.Window }

// ProgressBar is a static translucent track plus an overlay bar whose width
// grows linearly with time, composited topmost.
type ProgressBar struct {
	Margin       int
	Height       int
	BottomOffset int
	TrackOpacity float64
	FillColor    string
	FillOpacity  float64
}

func (ProgressBar) Visibility() *Window { return nil }

// Graph is the ordered back-to-front stack of layers for one clip. Stacking
// is expressed by position in Layers; the renderer chains each layer's
// output into the next explicitly rather than relying on any evaluation
// order of the backend.
type Graph struct {
	Duration float64
	Layers   []Layer
}

// Build assembles the composition for a clip: background, title card, one
// caption layer per timed chunk in order, then the progress bar. A title or
// caption text is expected pre-wrapped; an empty caption list (empty script)
// still yields a valid graph.
func Build(title string, caps []captions.Timed, duration float64, st Style) Graph {
	layers := make([]Layer, 0, len(caps)+3)

	layers = append(layers, Background{
		ColorA:        st.BackgroundA,
		ColorB:        st.BackgroundB,
		NoiseStrength: st.NoiseStrength,
		Overscan:      st.Overscan,
		Drift:         st.Drift,
	})

	layers = append(layers, TitleCard{
		Text:        title,
		FontFile:    st.FontBold,
		FontSize:    st.TitleFontSize,
		Y:           st.TitleY,
		LineSpacing: st.TitleLineSpacing,
		BoxOpacity:  st.TitleBoxOpacity,
		BoxBorder:   st.TitleBoxBorder,
	})

	for _, tc := range caps {
		layers = append(layers, Caption{
			Text:        tc.Text,
			Window:      Window{Start: tc.Start, End: tc.End},
			FontFile:    st.FontRegular,
			FontSize:    st.CaptionFontSize,
			Y:           st.CaptionY,
			LineSpacing: st.CaptionLineSpacing,
			BoxOpacity:  st.CaptionBoxOpacity,
			BoxBorder:   st.CaptionBoxBorder,
		})
	}

	layers = append(layers, ProgressBar{
		Margin:       st.ProgressMargin,
		Height:       st.ProgressHeight,
		BottomOffset: st.ProgressBottomOffset,
		TrackOpacity: st.ProgressTrackOpacity,
		FillColor:    st.ProgressFillColor,
		FillOpacity:  st.ProgressFillOpacity,
	})

	return Graph{Duration: duration, Layers: layers}
}
