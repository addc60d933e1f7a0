package sketch

import (
	"image/color"
	"testing"
)

func newTestTracker() (*Tracker, *Log, *Config) {
	cfg := DefaultConfig()
	l := NewLog()
	return NewTracker(&cfg, l), l, &cfg
}

func TestTracker_BeginMoveEnd(t *testing.T) {
	tr, l, _ := newTestTracker()

	tr.Begin(Point{X: 10, Y: 10})
	if !tr.Drawing() {
		t.Fatal("Drawing() = false after Begin")
	}
	if got := len(tr.Open().Points); got != 1 {
		t.Fatalf("open stroke has %d points after Begin, want 1", got)
	}

	// Each move appends exactly one point.
	const moves = 7
	for i := 1; i <= moves; i++ {
		tr.Move(Point{X: 10 + float32(i), Y: 10})
		if got := len(tr.Open().Points); got != 1+i {
			t.Fatalf("open stroke has %d points after move %d, want %d", got, i, 1+i)
		}
	}

	tr.End()
	if tr.Drawing() {
		t.Error("Drawing() = true after End")
	}
	if l.Len() != 1 {
		t.Fatalf("log has %d strokes after End, want 1", l.Len())
	}
	// Committed point count = moves observed + the initiating point.
	if got := len(l.Snapshot()[0].Points); got != moves+1 {
		t.Errorf("committed stroke has %d points, want %d", got, moves+1)
	}
}

func TestTracker_EndWithoutBegin(t *testing.T) {
	tr, l, _ := newTestTracker()
	tr.End()
	if l.Len() != 0 {
		t.Errorf("log has %d strokes after End without Begin, want 0", l.Len())
	}
}

func TestTracker_MoveWithoutBegin(t *testing.T) {
	tr, _, _ := newTestTracker()
	tr.Move(Point{X: 5, Y: 5})
	if tr.Open() != nil {
		t.Error("Move without Begin opened a stroke")
	}
}

func TestTracker_SecondBeginIgnored(t *testing.T) {
	tr, _, _ := newTestTracker()
	tr.Begin(Point{X: 1, Y: 1})
	tr.Begin(Point{X: 50, Y: 50})

	open := tr.Open()
	if len(open.Points) != 1 || open.Points[0].X != 1 {
		t.Errorf("second Begin altered the open stroke: %+v", open.Points)
	}
}

func TestTracker_TagsStrokeWithConfig(t *testing.T) {
	tr, l, cfg := newTestTracker()

	blue := color.NRGBA{B: 255, A: 255}
	cfg.SetColor(blue)
	cfg.SetBrushWidth(9)

	tr.Begin(Point{X: 1, Y: 1})
	tr.End()

	s := l.Snapshot()[0]
	if s.Tool != ToolBrush {
		t.Errorf("stroke tool = %v, want brush", s.Tool)
	}
	if s.Color != color.Color(blue) {
		t.Errorf("stroke color = %v, want %v", s.Color, blue)
	}
	if s.Width != 9 {
		t.Errorf("stroke width = %v, want 9", s.Width)
	}
}

func TestTracker_EraserUsesEraserWidth(t *testing.T) {
	tr, l, cfg := newTestTracker()
	cfg.SetTool(ToolEraser)
	cfg.SetEraserWidth(33)
	cfg.SetBrushWidth(2)

	tr.Begin(Point{X: 1, Y: 1})
	tr.End()

	s := l.Snapshot()[0]
	if s.Tool != ToolEraser {
		t.Errorf("stroke tool = %v, want eraser", s.Tool)
	}
	if s.Width != 33 {
		t.Errorf("eraser stroke width = %v, want 33", s.Width)
	}
}

func TestTracker_ConfigChangeDoesNotTouchCommitted(t *testing.T) {
	tr, l, cfg := newTestTracker()

	tr.Begin(Point{X: 1, Y: 1})
	tr.End()
	before := l.Snapshot()[0]

	cfg.SetColor(color.NRGBA{G: 255, A: 255})
	cfg.SetBrushWidth(40)
	cfg.SetTool(ToolEraser)

	after := l.Snapshot()[0]
	if after.Color != before.Color || after.Width != before.Width || after.Tool != before.Tool {
		t.Error("config change retroactively altered a committed stroke")
	}
}
