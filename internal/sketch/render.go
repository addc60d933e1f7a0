package sketch

import "image/color"

// PaintMode is how a polyline combines with paint already on the surface.
type PaintMode int

const (
	// PaintOver is normal source-over alpha blending.
	PaintOver PaintMode = iota
	// PaintErase removes existing paint back to transparency, regardless of
	// the color passed alongside it.
	PaintErase
)

// Surface is the rendering port the renderer draws through. Implementations
// must draw polylines with round caps and round joins, and must render a
// single-point polyline as a filled dot.
type Surface interface {
	// Clear wipes the surface fully transparent.
	Clear()
	// PaintPolyline draws a connected line through points in order.
	PaintPolyline(points []Point, width float32, col color.Color, mode PaintMode)
	// Present publishes the frame built since Clear. Readers of the surface
	// see only presented frames, never a half-built one.
	Present()
}

// Renderer repaints a Surface from the committed log plus the open
// (in-progress) stroke. The repaint is a full pass in commit order every
// time; at hand-sketch scale that is cheap and it keeps the pass trivially
// deterministic.
type Renderer struct {
	log     *Log
	surface Surface
}

func NewRenderer(log *Log, surface Surface) *Renderer {
	return &Renderer{log: log, surface: surface}
}

// Repaint clears the surface and replays every committed stroke in order,
// then the open stroke if there is one. Brush strokes paint over, eraser
// strokes punch through whatever is already down, so commit order decides
// what survives at overlaps.
func (r *Renderer) Repaint(open *Stroke) {
	r.surface.Clear()
	for _, s := range r.log.Snapshot() {
		r.paint(s)
	}
	if open != nil {
		r.paint(*open)
	}
	r.surface.Present()
}

func (r *Renderer) paint(s Stroke) {
	if len(s.Points) == 0 {
		return
	}
	mode := PaintOver
	if s.Tool == ToolEraser {
		mode = PaintErase
	}
	r.surface.PaintPolyline(s.Points, s.Width, s.Color, mode)
}
