package sketch

import (
	"image/color"
	"testing"
)

func stroke(points ...Point) Stroke {
	return Stroke{Points: points, Color: color.NRGBA{R: 255, A: 255}, Width: 4, Tool: ToolBrush}
}

func TestLog_AppendUndo(t *testing.T) {
	l := NewLog()

	const n = 5
	for i := 0; i < n; i++ {
		l.Append(stroke(Point{X: float32(i), Y: 0}))
	}
	if l.Len() != n {
		t.Fatalf("Len() = %d, want %d", l.Len(), n)
	}

	// Undo applied N times returns the log to empty.
	for i := 0; i < n; i++ {
		l.Undo()
	}
	if l.Len() != 0 {
		t.Errorf("Len() after %d undos = %d, want 0", n, l.Len())
	}

	// Undo on an empty log is a silent no-op.
	l.Undo()
	if l.Len() != 0 {
		t.Errorf("Len() after undo on empty log = %d, want 0", l.Len())
	}
}

func TestLog_UndoRemovesMostRecent(t *testing.T) {
	l := NewLog()
	l.Append(stroke(Point{X: 1, Y: 1}))
	l.Append(stroke(Point{X: 2, Y: 2}))

	l.Undo()

	snap := l.Snapshot()
	if len(snap) != 1 {
		t.Fatalf("Snapshot() length = %d, want 1", len(snap))
	}
	if snap[0].Points[0].X != 1 {
		t.Errorf("remaining stroke starts at X=%v, want 1 (undo must remove the last stroke)", snap[0].Points[0].X)
	}
}

func TestLog_Clear(t *testing.T) {
	l := NewLog()
	for i := 0; i < 3; i++ {
		l.Append(stroke(Point{X: float32(i), Y: 0}))
	}

	l.Clear()
	if l.Len() != 0 {
		t.Errorf("Len() after Clear = %d, want 0", l.Len())
	}

	// Clear on an already-empty log stays a no-op.
	l.Clear()
	if l.Len() != 0 {
		t.Errorf("Len() after second Clear = %d, want 0", l.Len())
	}
}

func TestLog_RejectsEmptyStroke(t *testing.T) {
	l := NewLog()
	l.Append(Stroke{Tool: ToolBrush, Width: 4})
	if l.Len() != 0 {
		t.Errorf("Len() after appending zero-point stroke = %d, want 0", l.Len())
	}
}

func TestLog_AppendAssignsID(t *testing.T) {
	l := NewLog()
	l.Append(stroke(Point{X: 1, Y: 1}))
	if id := l.Snapshot()[0].ID; id == "" {
		t.Error("committed stroke has empty ID")
	}
}

func TestLog_SnapshotIsACopy(t *testing.T) {
	l := NewLog()
	l.Append(stroke(Point{X: 1, Y: 1}))

	snap := l.Snapshot()
	snap[0] = stroke(Point{X: 99, Y: 99})

	if got := l.Snapshot()[0].Points[0].X; got != 1 {
		t.Errorf("log stroke X = %v after mutating snapshot, want 1", got)
	}
}
