package sketch

import (
	"image/color"
	"sync"

	"github.com/google/uuid"
)

// Point is a coordinate in canvas pixel space.
type Point struct{ X, Y float32 }

// Tool selects how a stroke composites onto the surface.
type Tool int

const (
	ToolBrush Tool = iota
	ToolEraser
)

func (t Tool) String() string {
	if t == ToolEraser {
		return "eraser"
	}
	return "brush"
}

// Stroke is one continuous pointer-down-to-pointer-up gesture. Once committed
// to a Log its points are never modified; corrections happen only as
// whole-stroke undo.
type Stroke struct {
	ID     string
	Points []Point
	Color  color.Color // ignored for eraser strokes
	Width  float32
	Tool   Tool
}

// Log is the ordered record of committed strokes. Later strokes paint over
// (or erase) earlier ones, so insertion order is significant. The mutex lets
// the share server snapshot while the UI goroutine is drawing.
type Log struct {
	mu      sync.RWMutex
	strokes []Stroke
}

func NewLog() *Log {
	return &Log{strokes: make([]Stroke, 0)}
}

// Append commits a fully-formed stroke to the end of the log. Strokes with no
// points are dropped; the tracker never produces one, but the log keeps the
// invariant on its own too.
func (l *Log) Append(s Stroke) {
	if len(s.Points) == 0 {
		return
	}
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	l.mu.Lock()
	l.strokes = append(l.strokes, s)
	l.mu.Unlock()
}

// Undo removes the most recently committed stroke. No-op on an empty log.
func (l *Log) Undo() {
	l.mu.Lock()
	if n := len(l.strokes); n > 0 {
		l.strokes = l.strokes[:n-1]
	}
	l.mu.Unlock()
}

// Clear empties the log.
func (l *Log) Clear() {
	l.mu.Lock()
	l.strokes = l.strokes[:0]
	l.mu.Unlock()
}

// Len reports the number of committed strokes.
func (l *Log) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.strokes)
}

// Snapshot returns the committed strokes in commit order. The slice is a
// copy, so callers can iterate while the UI keeps drawing.
func (l *Log) Snapshot() []Stroke {
	l.mu.RLock()
	defer l.mu.RUnlock()
	out := make([]Stroke, len(l.strokes))
	copy(out, l.strokes)
	return out
}
