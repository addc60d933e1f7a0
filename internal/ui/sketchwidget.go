package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/driver/mobile"
	"fyne.io/fyne/v2/widget"

	"posepad/internal/sketch"
)

// SketchWidget hosts the drawing surface. Mouse and touch events are mapped
// through the same widget-to-canvas coordinate translation and fed to the
// pad's tracker; the pad repaints synchronously and the widget redraws its
// bitmap. The canvas is letterboxed inside the widget area, so the
// translation subtracts the letterbox offset and divides by the display
// scale before points reach the tracker.
type SketchWidget struct {
	widget.BaseWidget
	pad   *sketch.Pad
	img   *canvas.Image
	paper *canvas.Rectangle
}

var _ fyne.Widget = (*SketchWidget)(nil)
var _ desktop.Mouseable = (*SketchWidget)(nil)
var _ fyne.Draggable = (*SketchWidget)(nil)
var _ mobile.Touchable = (*SketchWidget)(nil)

func NewSketchWidget(pad *sketch.Pad) *SketchWidget {
	s := &SketchWidget{pad: pad}
	s.paper = canvas.NewRectangle(sketch.PaperColor)
	s.img = canvas.NewImageFromImage(pad.Image())
	s.img.FillMode = canvas.ImageFillStretch
	pad.OnChange = s.Refresh
	s.ExtendBaseWidget(s)
	return s
}

// viewport is the scale and offset the canvas is displayed at inside the
// widget. The same numbers drive both layout and input translation.
func (s *SketchWidget) viewport() (scale, ox, oy float32) {
	sz := s.Size()
	w, h := s.pad.Size()
	if w == 0 || h == 0 || sz.Width <= 0 || sz.Height <= 0 {
		return 1, 0, 0
	}
	scale = sz.Width / float32(w)
	if v := sz.Height / float32(h); v < scale {
		scale = v
	}
	ox = (sz.Width - float32(w)*scale) / 2
	oy = (sz.Height - float32(h)*scale) / 2
	return scale, ox, oy
}

func (s *SketchWidget) toCanvas(pos fyne.Position) sketch.Point {
	scale, ox, oy := s.viewport()
	return sketch.Point{X: (pos.X - ox) / scale, Y: (pos.Y - oy) / scale}
}

// Mouse path.

func (s *SketchWidget) MouseDown(e *desktop.MouseEvent) {
	if e.Button != desktop.MouseButtonPrimary {
		return
	}
	s.pad.PointerDown(s.toCanvas(e.Position))
}

func (s *SketchWidget) MouseUp(e *desktop.MouseEvent) {
	if e.Button != desktop.MouseButtonPrimary {
		return
	}
	s.pad.PointerUp()
}

// Drag path, shared by mouse and touch drivers.

func (s *SketchWidget) Dragged(e *fyne.DragEvent) {
	s.pad.PointerMove(s.toCanvas(e.Position))
}

func (s *SketchWidget) DragEnd() {
	s.pad.PointerUp()
}

// Touch path. The tracker ignores a second concurrent down, so extra
// fingers are no-ops.

func (s *SketchWidget) TouchDown(e *mobile.TouchEvent) {
	s.pad.PointerDown(s.toCanvas(e.Position))
}

func (s *SketchWidget) TouchUp(e *mobile.TouchEvent) {
	s.pad.PointerUp()
}

func (s *SketchWidget) TouchCancel(e *mobile.TouchEvent) {
	s.pad.PointerUp()
}

func (s *SketchWidget) CreateRenderer() fyne.WidgetRenderer {
	return &sketchRenderer{w: s}
}

type sketchRenderer struct {
	w *SketchWidget
}

func (r *sketchRenderer) Layout(fyne.Size) {
	scale, ox, oy := r.w.viewport()
	w, h := r.w.pad.Size()
	area := fyne.NewSize(float32(w)*scale, float32(h)*scale)
	pos := fyne.NewPos(ox, oy)
	r.w.paper.Move(pos)
	r.w.paper.Resize(area)
	r.w.img.Move(pos)
	r.w.img.Resize(area)
}

func (r *sketchRenderer) MinSize() fyne.Size {
	return fyne.NewSize(360, 360)
}

func (r *sketchRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.w.paper, r.w.img}
}

func (r *sketchRenderer) Refresh() {
	// Ratio changes swap the pad's bitmap, so re-point and re-letterbox.
	r.w.img.Image = r.w.pad.Image()
	r.Layout(r.w.Size())
	canvas.Refresh(r.w.img)
}

func (r *sketchRenderer) Destroy() {}
