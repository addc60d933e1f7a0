package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"

	"posepad/internal/sketch"
)

// Pose colors: red is character 1, blue is character 2. Black is for
// annotations that belong to neither.
var poseColors = []struct {
	name string
	col  color.NRGBA
}{
	{"character 1", color.NRGBA{R: 220, G: 50, B: 47, A: 255}},
	{"character 2", color.NRGBA{R: 38, G: 139, B: 210, A: 255}},
	{"notes", color.NRGBA{A: 255}},
}

// colorSwatch is a tappable square of one pose color.
type colorSwatch struct {
	widget.BaseWidget
	Color    color.Color
	OnTapped func(color.Color)
}

func newColorSwatch(c color.Color, tapped func(color.Color)) *colorSwatch {
	s := &colorSwatch{Color: c, OnTapped: tapped}
	s.ExtendBaseWidget(s)
	return s
}

func (s *colorSwatch) CreateRenderer() fyne.WidgetRenderer {
	rect := canvas.NewRectangle(s.Color)
	rect.SetMinSize(fyne.NewSize(28, 28))

	border := canvas.NewRectangle(color.Transparent)
	border.StrokeColor = color.Gray{Y: 150}
	border.StrokeWidth = 1

	return widget.NewSimpleRenderer(container.NewStack(rect, border))
}

func (s *colorSwatch) Tapped(_ *fyne.PointEvent) {
	if s.OnTapped != nil {
		s.OnTapped(s.Color)
	}
}

// NewToolbar builds the tool strip: brush/eraser toggle, pose color
// swatches, the two width sliders, aspect ratio selector, undo and clear.
func NewToolbar(pad *sketch.Pad) fyne.CanvasObject {
	tools := widget.NewRadioGroup([]string{"Brush", "Eraser"}, func(sel string) {
		if sel == "Eraser" {
			pad.SetTool(sketch.ToolEraser)
		} else {
			pad.SetTool(sketch.ToolBrush)
		}
	})
	tools.Horizontal = true
	tools.SetSelected("Brush")

	swatches := container.NewHBox()
	for _, pc := range poseColors {
		swatches.Add(newColorSwatch(pc.col, func(c color.Color) {
			pad.SetColor(c)
			pad.SetTool(sketch.ToolBrush)
			tools.SetSelected("Brush")
		}))
	}

	brushSlider := widget.NewSlider(sketch.MinWidth, sketch.MaxWidth)
	brushSlider.SetValue(float64(pad.Config.BrushWidth))
	brushSlider.OnChanged = func(v float64) { pad.SetBrushWidth(float32(v)) }

	eraserSlider := widget.NewSlider(sketch.MinWidth, sketch.MaxWidth)
	eraserSlider.SetValue(float64(pad.Config.EraserWidth))
	eraserSlider.OnChanged = func(v float64) { pad.SetEraserWidth(float32(v)) }

	ratios := sketch.AspectRatios()
	names := make([]string, len(ratios))
	for i, r := range ratios {
		names[i] = r.String()
	}
	ratioSelect := widget.NewSelect(names, func(sel string) {
		for i, n := range names {
			if n == sel {
				pad.SetRatio(ratios[i])
				return
			}
		}
	})
	ratioSelect.SetSelected(pad.Config.Ratio.String())

	undoBtn := widget.NewButton("Undo", pad.Undo)
	clearBtn := widget.NewButton("Clear", pad.Clear)

	sliderBox := func(s *widget.Slider) fyne.CanvasObject {
		return container.New(layout.NewGridWrapLayout(fyne.NewSize(110, 35)), s)
	}

	return container.NewHBox(
		tools,
		widget.NewSeparator(),
		swatches,
		widget.NewSeparator(),
		widget.NewLabel("Brush:"), sliderBox(brushSlider),
		widget.NewLabel("Eraser:"), sliderBox(eraserSlider),
		widget.NewSeparator(),
		widget.NewLabel("Canvas:"), ratioSelect,
		layout.NewSpacer(),
		undoBtn, clearBtn,
	)
}
