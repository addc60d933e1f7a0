package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// Prompts holds the three free-text descriptions. The core never interprets
// them; they go to the service verbatim.
type Prompts struct {
	Character1  *widget.Entry
	Character2  *widget.Entry
	Composition *widget.Entry
}

func NewPrompts() *Prompts {
	p := &Prompts{
		Character1:  widget.NewMultiLineEntry(),
		Character2:  widget.NewMultiLineEntry(),
		Composition: widget.NewMultiLineEntry(),
	}
	p.Character1.SetPlaceHolder("Character 1 (red pose)…")
	p.Character2.SetPlaceHolder("Character 2 (blue pose)…")
	p.Composition.SetPlaceHolder("Overall composition…")
	p.Character1.Wrapping = fyne.TextWrapWord
	p.Character2.Wrapping = fyne.TextWrapWord
	p.Composition.Wrapping = fyne.TextWrapWord
	return p
}

func (p *Prompts) Object() fyne.CanvasObject {
	return container.NewVBox(
		widget.NewLabel("Prompts"),
		p.Character1,
		p.Character2,
		p.Composition,
	)
}
