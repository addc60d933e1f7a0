package sketch

import (
	"image"
	"image/color"
)

// Pad wires the core together: configuration, stroke log, tracker, raster
// surface, renderer and exporter. Every mutation repaints synchronously, so
// the bitmap the UI (and the exporter) sees is never stale relative to the
// model. OnChange, if set, fires after each repaint so the widget can
// refresh.
type Pad struct {
	Config   Config
	log      *Log
	tracker  *Tracker
	surface  *RasterSurface
	renderer *Renderer
	exporter *Exporter

	OnChange func()
}

func NewPad() *Pad {
	p := &Pad{Config: DefaultConfig()}
	p.log = NewLog()
	p.tracker = NewTracker(&p.Config, p.log)
	w, h := p.Config.Ratio.Dimensions()
	p.surface = NewRasterSurface(w, h)
	p.renderer = NewRenderer(p.log, p.surface)
	p.exporter = NewExporter(p.surface)
	return p
}

func (p *Pad) repaint() {
	p.renderer.Repaint(p.tracker.Open())
	if p.OnChange != nil {
		p.OnChange()
	}
}

// Pointer path. Coordinates are canvas-local pixels.

func (p *Pad) PointerDown(pt Point) {
	p.tracker.Begin(pt)
	p.repaint()
}

func (p *Pad) PointerMove(pt Point) {
	if !p.tracker.Drawing() {
		return
	}
	p.tracker.Move(pt)
	p.repaint()
}

func (p *Pad) PointerUp() {
	p.tracker.End()
	p.repaint()
}

// Model mutations.

func (p *Pad) Undo() {
	p.log.Undo()
	p.repaint()
}

func (p *Pad) Clear() {
	p.log.Clear()
	p.repaint()
}

// Configuration. Tool and width changes only affect strokes begun afterwards.

func (p *Pad) SetTool(t Tool)           { p.Config.SetTool(t) }
func (p *Pad) SetColor(c color.Color)   { p.Config.SetColor(c) }
func (p *Pad) SetBrushWidth(w float32)  { p.Config.SetBrushWidth(w) }
func (p *Pad) SetEraserWidth(w float32) { p.Config.SetEraserWidth(w) }

// SetRatio resizes the surface per the ratio's fixed dimensions and
// repaints. Committed strokes keep their coordinates in the old pixel space.
func (p *Pad) SetRatio(r AspectRatio) {
	p.Config.Ratio = r
	w, h := r.Dimensions()
	p.surface.Resize(w, h)
	p.repaint()
}

func (p *Pad) Size() (w, h int) {
	return p.surface.Width(), p.surface.Height()
}

// Image is the live bitmap for display.
func (p *Pad) Image() *image.RGBA {
	return p.surface.Image()
}

// Exporter returns the flattening exporter bound to this pad's surface.
func (p *Pad) Exporter() *Exporter {
	return p.exporter
}

// Log exposes the committed stroke log (read paths: PDF sheet, tests).
func (p *Pad) Log() *Log {
	return p.log
}

// StrokeCount is a convenience for status displays.
func (p *Pad) StrokeCount() int {
	return p.log.Len()
}
