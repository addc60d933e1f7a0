// Package export writes a session contact sheet: the flattened sketch, the
// reference images and the three prompts on one PDF page, for keeping a
// record of what was sent to the generation service.
package export

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"
)

// Sheet is one session's worth of material. Image slots hold PNG bytes and
// may be nil.
type Sheet struct {
	Sketch     []byte
	Reference1 []byte
	Reference2 []byte
	Background []byte

	Character1  string
	Character2  string
	Composition string
}

// WritePDF renders the sheet to path as a single A4 portrait page.
func WritePDF(path string, s Sheet) error {
	if len(s.Sketch) == 0 {
		return fmt.Errorf("export: sheet has no sketch")
	}

	p := gofpdf.New("P", "mm", "A4", "")
	p.AddPage()
	p.SetFont("Helvetica", "B", 14)
	p.Cell(0, 10, "posepad session")
	p.Ln(12)

	placeImage(p, "sketch", s.Sketch, 10, 25, 110)

	// Reference thumbnails down the right edge.
	y := 25.0
	for _, ref := range []struct {
		name string
		data []byte
	}{
		{"reference1", s.Reference1},
		{"reference2", s.Reference2},
		{"background", s.Background},
	} {
		if len(ref.data) == 0 {
			continue
		}
		placeImage(p, ref.name, ref.data, 130, y, 60)
		y += 45
	}

	p.SetY(150)
	for _, line := range []struct {
		label, text string
	}{
		{"Character 1", s.Character1},
		{"Character 2", s.Character2},
		{"Composition", s.Composition},
	} {
		p.SetFont("Helvetica", "B", 10)
		p.Cell(30, 6, line.label)
		p.SetFont("Helvetica", "", 10)
		p.MultiCell(0, 6, line.text, "", "L", false)
		p.Ln(2)
	}

	if p.Err() {
		return fmt.Errorf("export: building pdf: %v", p.Error())
	}
	return p.OutputFileAndClose(path)
}

// placeImage registers raw PNG bytes under name and draws them at width w,
// height scaled to keep aspect.
func placeImage(p *gofpdf.Fpdf, name string, data []byte, x, y, w float64) {
	opts := gofpdf.ImageOptions{ImageType: "PNG"}
	p.RegisterImageOptionsReader(name, opts, bytes.NewReader(data))
	p.ImageOptions(name, x, y, w, 0, false, opts, 0, "")
}
