package sketch

import "testing"

func TestPad_PointerFlow(t *testing.T) {
	p := NewPad()

	p.PointerDown(Point{X: 10, Y: 10})
	p.PointerMove(Point{X: 20, Y: 10})
	p.PointerMove(Point{X: 30, Y: 10})
	p.PointerUp()

	if p.StrokeCount() != 1 {
		t.Fatalf("StrokeCount = %d, want 1", p.StrokeCount())
	}
	if got := len(p.Log().Snapshot()[0].Points); got != 3 {
		t.Errorf("committed stroke has %d points, want 3", got)
	}

	// A lone tap still commits a one-point stroke (rendered as a dot).
	p.PointerDown(Point{X: 50, Y: 50})
	p.PointerUp()
	if p.StrokeCount() != 2 {
		t.Errorf("StrokeCount after tap = %d, want 2", p.StrokeCount())
	}
}

func TestPad_MoveWithoutDown(t *testing.T) {
	p := NewPad()
	p.PointerMove(Point{X: 5, Y: 5})
	p.PointerUp()
	if p.StrokeCount() != 0 {
		t.Errorf("StrokeCount = %d after stray move/up, want 0", p.StrokeCount())
	}
}

func TestPad_UndoClear(t *testing.T) {
	p := NewPad()
	for i := 0; i < 3; i++ {
		p.PointerDown(Point{X: float32(10 * i), Y: 10})
		p.PointerUp()
	}

	p.Undo()
	if p.StrokeCount() != 2 {
		t.Errorf("StrokeCount after undo = %d, want 2", p.StrokeCount())
	}
	p.Clear()
	if p.StrokeCount() != 0 {
		t.Errorf("StrokeCount after clear = %d, want 0", p.StrokeCount())
	}
	// Both stay no-ops on the empty log.
	p.Undo()
	p.Clear()
	if p.StrokeCount() != 0 {
		t.Errorf("StrokeCount after no-op undo/clear = %d, want 0", p.StrokeCount())
	}
}

func TestPad_RatioChangeKeepsStrokes(t *testing.T) {
	p := NewPad()
	p.PointerDown(Point{X: 10, Y: 10})
	p.PointerMove(Point{X: 600, Y: 600})
	p.PointerUp()

	before := p.Log().Snapshot()
	p.SetRatio(RatioWide169)

	if w, h := p.Size(); w != 640 || h != 360 {
		t.Fatalf("Size after ratio change = %dx%d, want 640x360", w, h)
	}
	after := p.Log().Snapshot()
	if len(after) != len(before) {
		t.Fatalf("stroke count changed across ratio change: %d -> %d", len(before), len(after))
	}
	for i := range after {
		if len(after[i].Points) != len(before[i].Points) {
			t.Fatalf("stroke %d point count changed across ratio change", i)
		}
		for j := range after[i].Points {
			if after[i].Points[j] != before[i].Points[j] {
				t.Errorf("stroke %d point %d moved: %+v -> %+v", i, j, before[i].Points[j], after[i].Points[j])
			}
		}
	}
}

func TestPad_OnChangeFires(t *testing.T) {
	p := NewPad()
	var fired int
	p.OnChange = func() { fired++ }

	p.PointerDown(Point{X: 1, Y: 1})
	p.PointerMove(Point{X: 2, Y: 2})
	p.PointerUp()
	p.Undo()
	p.Clear()
	p.SetRatio(RatioPortrait34)

	if fired != 6 {
		t.Errorf("OnChange fired %d times, want 6 (one per mutation)", fired)
	}
}
