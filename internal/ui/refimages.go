package ui

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	"image/png"
	"log"
	"os"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/widget"
	"github.com/fsnotify/fsnotify"
	xdraw "golang.org/x/image/draw"
)

const thumbSize = 120

// ImageSlot is one optional image input: reference 1, reference 2 or the
// background. It loads a file, keeps PNG bytes for the outbound request, and
// watches the source file so edits made in an external editor show up
// without reloading by hand.
type ImageSlot struct {
	label   string
	win     fyne.Window
	data    []byte
	path    string
	thumb   *canvas.Image
	status  *widget.Label
	watcher *fsnotify.Watcher
}

func NewImageSlot(label string, win fyne.Window) *ImageSlot {
	s := &ImageSlot{label: label, win: win}
	s.thumb = canvas.NewImageFromImage(image.NewRGBA(image.Rect(0, 0, thumbSize, thumbSize)))
	s.thumb.FillMode = canvas.ImageFillContain
	s.thumb.SetMinSize(fyne.NewSize(thumbSize, thumbSize))
	s.status = widget.NewLabel("empty")
	return s
}

// Data returns the slot's image as PNG bytes, or nil when empty.
func (s *ImageSlot) Data() []byte {
	return s.data
}

// Object builds the slot's UI: label, thumbnail, pick and clear buttons.
func (s *ImageSlot) Object() fyne.CanvasObject {
	pick := widget.NewButton("Pick…", func() {
		fd := dialog.NewFileOpen(func(rc fyne.URIReadCloser, err error) {
			if err != nil || rc == nil {
				return
			}
			defer rc.Close()
			if err := s.loadPath(rc.URI().Path()); err != nil {
				dialog.ShowError(err, s.win)
			}
		}, s.win)
		fd.SetFilter(storage.NewExtensionFileFilter([]string{".png", ".jpg", ".jpeg", ".gif"}))
		fd.Show()
	})
	clearBtn := widget.NewButton("Clear", s.Clear)

	return container.NewVBox(
		widget.NewLabel(s.label),
		s.thumb,
		container.NewHBox(pick, clearBtn, s.status),
	)
}

// Clear empties the slot and stops watching its file.
func (s *ImageSlot) Clear() {
	s.stopWatch()
	s.data = nil
	s.path = ""
	s.thumb.Image = image.NewRGBA(image.Rect(0, 0, thumbSize, thumbSize))
	s.thumb.Refresh()
	s.status.SetText("empty")
}

func (s *ImageSlot) loadPath(path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}
	img, _, err := image.Decode(bytes.NewReader(raw))
	if err != nil {
		return fmt.Errorf("decoding %s: %w", path, err)
	}

	// Normalize to PNG so downstream consumers see one format.
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return fmt.Errorf("encoding %s: %w", path, err)
	}
	s.data = buf.Bytes()
	s.path = path
	s.thumb.Image = thumbnail(img)
	s.thumb.Refresh()
	s.status.SetText(fmt.Sprintf("%dx%d", img.Bounds().Dx(), img.Bounds().Dy()))

	s.watch(path)
	return nil
}

// watch reloads the slot when the file changes on disk.
func (s *ImageSlot) watch(path string) {
	s.stopWatch()
	w, err := fsnotify.NewWatcher()
	if err != nil {
		log.Printf("[ui] watch %s: %v", path, err)
		return
	}
	if err := w.Add(path); err != nil {
		log.Printf("[ui] watch %s: %v", path, err)
		w.Close()
		return
	}
	s.watcher = w
	go func() {
		for {
			select {
			case ev, ok := <-w.Events:
				if !ok {
					return
				}
				if ev.Op&(fsnotify.Write|fsnotify.Create) == 0 {
					continue
				}
				log.Printf("[ui] %s changed, reloading", ev.Name)
				fyne.Do(func() {
					if err := s.loadPath(path); err != nil {
						log.Printf("[ui] reload %s: %v", path, err)
					}
				})
			case err, ok := <-w.Errors:
				if !ok {
					return
				}
				log.Printf("[ui] watcher: %v", err)
			}
		}
	}()
}

func (s *ImageSlot) stopWatch() {
	if s.watcher != nil {
		s.watcher.Close()
		s.watcher = nil
	}
}

// thumbnail scales img down to fit the thumbnail box, preserving aspect.
func thumbnail(img image.Image) image.Image {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if w <= thumbSize && h <= thumbSize {
		return img
	}
	scale := float64(thumbSize) / float64(w)
	if s := float64(thumbSize) / float64(h); s < scale {
		scale = s
	}
	dst := image.NewRGBA(image.Rect(0, 0, int(float64(w)*scale), int(float64(h)*scale)))
	xdraw.ApproxBiLinear.Scale(dst, dst.Bounds(), img, b, xdraw.Over, nil)
	return dst
}
