package ui

import (
	"bytes"
	"fmt"
	"image"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"posepad/internal/export"
	"posepad/internal/gen"
	"posepad/internal/sketch"
)

// RunApp assembles the window and blocks until it closes. serviceAddr is
// the generation service ("host:port"); empty means generation is disabled
// and the rest of the tool still works.
func RunApp(pad *sketch.Pad, serviceAddr string) {
	a := app.New()
	win := a.NewWindow("posepad")
	win.Resize(fyne.NewSize(1100, 720))

	board := NewSketchWidget(pad)
	toolbar := NewToolbar(pad)

	ref1 := NewImageSlot("Reference 1", win)
	ref2 := NewImageSlot("Reference 2", win)
	bg := NewImageSlot("Background", win)
	prompts := NewPrompts()

	status := widget.NewLabel("Ready")
	progress := widget.NewProgressBar()
	progress.Hide()

	var client *gen.Client
	if serviceAddr != "" {
		client = gen.NewClient(serviceAddr)
		client.OnProgress = func(p gen.Progress) {
			fyne.Do(func() {
				if p.Total > 0 {
					progress.SetValue(float64(p.Step) / float64(p.Total))
				}
				if p.Status != "" {
					status.SetText(p.Status)
				}
			})
		}
	}

	var generateBtn *widget.Button
	generateBtn = widget.NewButton("Generate", func() {
		sketchPNG, err := pad.Exporter().Flatten()
		if err != nil {
			dialog.ShowError(fmt.Errorf("nothing to send: %w", err), win)
			return
		}
		if client == nil {
			dialog.ShowError(fmt.Errorf("no generation service configured"), win)
			return
		}
		req := gen.Request{
			Character1:  prompts.Character1.Text,
			Character2:  prompts.Character2.Text,
			Composition: prompts.Composition.Text,
			Sketch:      sketchPNG,
			Reference1:  ref1.Data(),
			Reference2:  ref2.Data(),
			Background:  bg.Data(),
		}

		generateBtn.Disable()
		progress.SetValue(0)
		progress.Show()
		status.SetText("Generating…")

		go func() {
			img, err := client.Generate(req)
			fyne.Do(func() {
				generateBtn.Enable()
				progress.Hide()
				if err != nil {
					status.SetText("Generation failed")
					dialog.ShowError(err, win)
					return
				}
				status.SetText("Done")
				showResult(win, img)
			})
		}()
	})

	pdfBtn := widget.NewButton("Save session PDF", func() {
		sketchPNG, err := pad.Exporter().Flatten()
		if err != nil {
			dialog.ShowError(fmt.Errorf("nothing to save: %w", err), win)
			return
		}
		dialog.ShowFileSave(func(wc fyne.URIWriteCloser, err error) {
			if err != nil || wc == nil {
				return
			}
			path := wc.URI().Path()
			wc.Close()
			sheet := export.Sheet{
				Sketch:      sketchPNG,
				Reference1:  ref1.Data(),
				Reference2:  ref2.Data(),
				Background:  bg.Data(),
				Character1:  prompts.Character1.Text,
				Character2:  prompts.Character2.Text,
				Composition: prompts.Composition.Text,
			}
			if err := export.WritePDF(path, sheet); err != nil {
				dialog.ShowError(err, win)
				return
			}
			status.SetText("Saved " + path)
		}, win)
	})

	side := container.NewVBox(
		ref1.Object(),
		ref2.Object(),
		bg.Object(),
		prompts.Object(),
		generateBtn,
		pdfBtn,
		progress,
	)

	left := container.NewBorder(toolbar, status, nil, nil, board)
	win.SetContent(container.NewBorder(nil, nil, nil, container.NewVScroll(side), left))
	win.ShowAndRun()
}

func showResult(win fyne.Window, data []byte) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		log.Printf("[ui] result decode: %v", err)
		dialog.ShowError(fmt.Errorf("decoding result image: %w", err), win)
		return
	}
	view := canvas.NewImageFromImage(img)
	view.FillMode = canvas.ImageFillContain
	view.SetMinSize(fyne.NewSize(512, 512))
	dialog.ShowCustom("Result", "Close", view, win)
}
