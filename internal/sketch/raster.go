package sketch

import (
	"image"
	"image/color"
	"image/draw"
	"sync"

	"github.com/gogpu/gg"
)

// RasterSurface implements Surface on the gogpu/gg software renderer. gg
// contexts are used as stroke rasterizers (round caps and joins) and the
// result is composited onto an RGBA back buffer with image/draw; erasing is
// a per-pixel destination-out pass, since gg exposes no such blend mode and
// image/draw has no operator for it. The surface is double-buffered:
// Present publishes the back buffer, and readers (UI, export, share server)
// only ever see completed frames.
type RasterSurface struct {
	mu      sync.Mutex
	back    *image.RGBA
	front   *image.RGBA
	scratch *gg.Context
	w, h    int
}

func NewRasterSurface(w, h int) *RasterSurface {
	s := &RasterSurface{}
	s.reset(w, h)
	return s
}

func (s *RasterSurface) reset(w, h int) {
	s.w, s.h = w, h
	s.back = image.NewRGBA(image.Rect(0, 0, w, h))
	s.front = image.NewRGBA(image.Rect(0, 0, w, h))
	s.scratch = gg.NewContext(w, h)
}

// Resize reallocates the surface at new dimensions. Committed strokes keep
// their old pixel coordinates; the next repaint simply draws them onto the
// new surface as-is.
func (s *RasterSurface) Resize(w, h int) {
	s.mu.Lock()
	s.reset(w, h)
	s.mu.Unlock()
}

func (s *RasterSurface) Width() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.w
}

func (s *RasterSurface) Height() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.h
}

// Clear wipes the back buffer fully transparent.
func (s *RasterSurface) Clear() {
	s.mu.Lock()
	for i := range s.back.Pix {
		s.back.Pix[i] = 0
	}
	s.mu.Unlock()
}

// PaintPolyline rasterizes one stroke and composites it onto the back
// buffer. A single point renders as a filled dot of diameter width.
func (s *RasterSurface) PaintPolyline(points []Point, width float32, col color.Color, mode PaintMode) {
	if len(points) == 0 {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	s.scratch.Clear()
	if mode == PaintErase {
		// Color is irrelevant for erasing; only the mask's alpha matters.
		col = color.NRGBA{A: 255}
	}
	if col == nil {
		col = color.NRGBA{A: 255}
	}
	s.scratch.SetColor(col)
	if len(points) == 1 {
		s.scratch.DrawPoint(float64(points[0].X), float64(points[0].Y), float64(width)/2)
		_ = s.scratch.Fill()
	} else {
		s.scratch.SetStroke(gg.RoundStroke().WithWidth(float64(width)))
		s.scratch.MoveTo(float64(points[0].X), float64(points[0].Y))
		for _, p := range points[1:] {
			s.scratch.LineTo(float64(p.X), float64(p.Y))
		}
		_ = s.scratch.Stroke()
	}

	src := s.scratch.Image()
	if mode == PaintErase {
		s.eraseWith(src.(*image.RGBA))
	} else {
		draw.Draw(s.back, s.back.Bounds(), src, image.Point{}, draw.Over)
	}
}

// eraseWith applies destination-out: every back-buffer pixel is scaled by
// one minus the mask's alpha, so paint disappears only under the mask and
// everything else is untouched.
func (s *RasterSurface) eraseWith(mask *image.RGBA) {
	dp, mp := s.back.Pix, mask.Pix
	n := len(dp)
	if len(mp) < n {
		n = len(mp)
	}
	for i := 3; i < n; i += 4 {
		ma := uint32(mp[i])
		if ma == 0 {
			continue
		}
		inv := 255 - ma
		dp[i-3] = uint8(uint32(dp[i-3]) * inv / 255)
		dp[i-2] = uint8(uint32(dp[i-2]) * inv / 255)
		dp[i-1] = uint8(uint32(dp[i-1]) * inv / 255)
		dp[i] = uint8(uint32(dp[i]) * inv / 255)
	}
}

// Present publishes the back buffer as the new front. The renderer calls it
// once per completed repaint; every frame is fully rebuilt, so the buffers
// just swap.
func (s *RasterSurface) Present() {
	s.mu.Lock()
	s.front, s.back = s.back, s.front
	s.mu.Unlock()
}

// Image returns the last presented frame for display.
func (s *RasterSurface) Image() *image.RGBA {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.front
}

// ImageCopy returns a snapshot of the last presented frame, safe to use
// from other goroutines (export, share server).
func (s *RasterSurface) ImageCopy() *image.RGBA {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := image.NewRGBA(s.front.Bounds())
	copy(out.Pix, s.front.Pix)
	return out
}
