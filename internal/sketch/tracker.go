package sketch

// Tracker assembles pointer events into strokes. It is a two-state machine:
// idle until Begin opens an in-progress stroke, drawing until End commits it.
// Mouse and touch input both feed it the same way, already translated to
// canvas-local coordinates by the widget layer.
type Tracker struct {
	cfg  *Config
	log  *Log
	open *Stroke
}

func NewTracker(cfg *Config, log *Log) *Tracker {
	return &Tracker{cfg: cfg, log: log}
}

// Begin opens a new in-progress stroke seeded with p, tagged with the
// current tool, color and the width that tool uses. A second Begin while a
// stroke is already open is ignored.
func (t *Tracker) Begin(p Point) {
	if t.open != nil {
		return
	}
	t.open = &Stroke{
		Points: []Point{p},
		Color:  t.cfg.BrushColor,
		Width:  t.cfg.ActiveWidth(),
		Tool:   t.cfg.ActiveTool,
	}
}

// Move appends one point to the open stroke. Every move while the pointer is
// down records exactly one point; there is no decimation or smoothing. No-op
// when no stroke is open.
func (t *Tracker) Move(p Point) {
	if t.open == nil {
		return
	}
	t.open.Points = append(t.open.Points, p)
}

// End commits the open stroke to the log and clears the in-progress slot.
// No-op when nothing is open. Pointer-leave is handled identically.
func (t *Tracker) End() {
	if t.open == nil {
		return
	}
	if len(t.open.Points) > 0 {
		t.log.Append(*t.open)
	}
	t.open = nil
}

// Drawing reports whether a stroke is currently open.
func (t *Tracker) Drawing() bool {
	return t.open != nil
}

// Open returns the in-progress stroke for rendering, or nil. The renderer
// treats it as the last entry of the combined paint order.
func (t *Tracker) Open() *Stroke {
	return t.open
}
