package sketch

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/draw"
	"image/png"
)

// ErrNoSurface is returned when export is requested before a drawing surface
// exists. The caller shows a message and skips the downstream request.
var ErrNoSurface = errors.New("sketch: drawing surface not initialized")

// PaperColor is the opaque fill composited under the strokes on export. The
// generation service receives a white sheet, never transparency.
var PaperColor = color.NRGBA{R: 255, G: 255, B: 255, A: 255}

// Exporter flattens the live surface over an opaque background and encodes
// it as PNG. It reads the surface's already-rendered bitmap, so whatever is
// visible at call time is what gets exported, the in-progress stroke
// included if one is mid-draw.
type Exporter struct {
	surface *RasterSurface
}

func NewExporter(surface *RasterSurface) *Exporter {
	return &Exporter{surface: surface}
}

// Flatten returns the current drawing as PNG bytes: paper-colored fill with
// the surface bitmap drawn over it, unscaled, at the surface's dimensions.
// With nothing drawn the result is the flat paper image.
func (e *Exporter) Flatten() ([]byte, error) {
	img, err := e.FlattenImage()
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// FlattenImage is Flatten without the PNG encode, for callers that keep
// compositing (PDF sheet, previews).
func (e *Exporter) FlattenImage() (*image.RGBA, error) {
	if e == nil || e.surface == nil {
		return nil, ErrNoSurface
	}
	src := e.surface.ImageCopy()
	out := image.NewRGBA(src.Bounds())
	draw.Draw(out, out.Bounds(), image.NewUniform(PaperColor), image.Point{}, draw.Src)
	draw.Draw(out, out.Bounds(), src, image.Point{}, draw.Over)
	return out, nil
}
