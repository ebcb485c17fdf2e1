package render

import (
	"bytes"
	"log"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/goregular"
)

// Fonts holds the faces shared by the diagram, the eye panel and the info
// panel.
type Fonts struct {
	Region text.Face
	Label  text.Face
	Panel  text.Face
	Title  text.Face
}

// NewFonts builds Go Regular faces, falling back to the fixed 7x13 bitmap
// face when the TTF cannot be parsed.
func NewFonts() *Fonts {
	src, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		log.Printf("render: go regular font unavailable, using basicfont: %v", err)
		face := text.NewGoXFace(basicfont.Face7x13)
		return &Fonts{Region: face, Label: face, Panel: face, Title: face}
	}
	return &Fonts{
		Region: &text.GoTextFace{Source: src, Size: 18},
		Label:  &text.GoTextFace{Source: src, Size: 10},
		Panel:  &text.GoTextFace{Source: src, Size: 14},
		Title:  &text.GoTextFace{Source: src, Size: 20},
	}
}
