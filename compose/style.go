package compose

// Style fixes every rendering parameter of the composition: frame geometry,
// fonts, colors, layer placement, codecs, and the text delivery strategy.
// It is immutable once handed to Build/Render, so varied configurations can
// be exercised without shared state.
type Style struct {
	// Frame geometry (vertical video).
	Width  int
	Height int
	FPS    int

	// Font roles.
	FontBold    string
	FontRegular string

	// Background: two base colors blended with a slow oscillation, plus
	// noise and a subtle pan achieved by overscanning and cropping.
	BackgroundA   string
	BackgroundB   string
	NoiseStrength int
	Overscan      int
	Drift         int

	// Title card (top, bold, boxed).
	TitleFontSize    int
	TitleY           int
	TitleLineSpacing int
	TitleBoxOpacity  float64
	TitleBoxBorder   int

	// Captions (bottom-middle, regular weight, boxed).
	CaptionFontSize    int
	CaptionY           int
	CaptionLineSpacing int
	CaptionBoxOpacity  float64
	CaptionBoxBorder   int

	// Progress bar (translucent track plus filling overlay, topmost).
	ProgressMargin       int
	ProgressHeight       int
	ProgressBottomOffset int
	ProgressTrackOpacity float64
	ProgressFillColor    string
	ProgressFillOpacity  float64

	// Encoder parameters.
	VideoCodec   string
	AudioCodec   string
	PixelFormat  string
	EncodePreset string

	// InlineText embeds escaped text directly in the filter graph instead
	// of writing side-channel text files. Side files are the default: they
	// reduce the escaping surface to the file path itself.
	InlineText bool

	// SidecarDir receives the side-channel text files. Empty means a fresh
	// temporary directory per render.
	SidecarDir string
}

// DefaultStyle returns the standard 1080x1920@30 shorts look.
func DefaultStyle() Style {
	return Style{
		Width:  1080,
		Height: 1920,
		FPS:    30,

		FontBold:    "/usr/share/fonts/truetype/dejavu/DejaVuSans-Bold.ttf",
		FontRegular: "/usr/share/fonts/truetype/dejavu/DejaVuSans.ttf",

		BackgroundA:   "#0B1F33",
		BackgroundB:   "#081827",
		NoiseStrength: 12,
		Overscan:      40,
		Drift:         10,

		TitleFontSize:    64,
		TitleY:           180,
		TitleLineSpacing: 12,
		TitleBoxOpacity:  0.35,
		TitleBoxBorder:   28,

		CaptionFontSize:    48,
		CaptionY:           1120,
		CaptionLineSpacing: 10,
		CaptionBoxOpacity:  0.28,
		CaptionBoxBorder:   22,

		ProgressMargin:       120,
		ProgressHeight:       10,
		ProgressBottomOffset: 140,
		ProgressTrackOpacity: 0.10,
		ProgressFillColor:    "#FF7A18",
		ProgressFillOpacity:  0.95,

		VideoCodec:   "libx264",
		AudioCodec:   "aac",
		PixelFormat:  "yuv420p",
		EncodePreset: "fast",
	}
}
