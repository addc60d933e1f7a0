package sketch

import "image/color"

// AspectRatio is one of the fixed canvas shapes the user can pick.
type AspectRatio int

const (
	RatioSquare AspectRatio = iota // 1:1
	RatioLandscape43               // 4:3
	RatioPortrait34                // 3:4
	RatioWide169                   // 16:9
	RatioTall916                   // 9:16
)

// baseDim is the pixel size of the canvas's long side for every ratio.
const baseDim = 640

func (r AspectRatio) String() string {
	switch r {
	case RatioLandscape43:
		return "4:3"
	case RatioPortrait34:
		return "3:4"
	case RatioWide169:
		return "16:9"
	case RatioTall916:
		return "9:16"
	default:
		return "1:1"
	}
}

// Dimensions maps the ratio to canvas pixel dimensions. The long side is
// always baseDim.
func (r AspectRatio) Dimensions() (w, h int) {
	switch r {
	case RatioLandscape43:
		return baseDim, baseDim * 3 / 4
	case RatioPortrait34:
		return baseDim * 3 / 4, baseDim
	case RatioWide169:
		return baseDim, baseDim * 9 / 16
	case RatioTall916:
		return baseDim * 9 / 16, baseDim
	default:
		return baseDim, baseDim
	}
}

// AspectRatios lists the selectable ratios in display order.
func AspectRatios() []AspectRatio {
	return []AspectRatio{RatioSquare, RatioLandscape43, RatioPortrait34, RatioWide169, RatioTall916}
}

// Width bounds shared by brush and eraser.
const (
	MinWidth = 1
	MaxWidth = 80
)

// Config holds the user-selectable parameters that govern future strokes.
// Changing it never touches strokes already committed to the log.
type Config struct {
	Ratio       AspectRatio
	ActiveTool  Tool
	BrushColor  color.Color
	BrushWidth  float32
	EraserWidth float32
}

// DefaultConfig matches the state drawing starts in: square canvas, red
// brush (character 1's pose color).
func DefaultConfig() Config {
	return Config{
		Ratio:       RatioSquare,
		ActiveTool:  ToolBrush,
		BrushColor:  color.NRGBA{R: 220, G: 50, B: 47, A: 255},
		BrushWidth:  4,
		EraserWidth: 24,
	}
}

func clampWidth(w float32) float32 {
	if w < MinWidth {
		return MinWidth
	}
	if w > MaxWidth {
		return MaxWidth
	}
	return w
}

// SetBrushWidth clamps out-of-range input instead of rejecting it, so a
// slider can feed values straight through.
func (c *Config) SetBrushWidth(w float32) {
	c.BrushWidth = clampWidth(w)
}

func (c *Config) SetEraserWidth(w float32) {
	c.EraserWidth = clampWidth(w)
}

func (c *Config) SetTool(t Tool) {
	c.ActiveTool = t
}

func (c *Config) SetColor(col color.Color) {
	if col == nil {
		return
	}
	c.BrushColor = col
}

// ActiveWidth is the width a stroke begun right now would get.
func (c *Config) ActiveWidth() float32 {
	if c.ActiveTool == ToolEraser {
		return c.EraserWidth
	}
	return c.BrushWidth
}
