package gui

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

var (
	fontSource *opentype.Font
	faceCache  = map[int]font.Face{}
)

// fontFace returns a Go Regular face of the given point size, parsed
// once and cached per size. Faces are only ever requested from the
// game loop goroutine.
func fontFace(size int) font.Face {
	if face, ok := faceCache[size]; ok {
		return face
	}
	if fontSource == nil {
		tt, err := opentype.Parse(goregular.TTF)
		if err != nil {
			panic(err)
		}
		fontSource = tt
	}
	face, err := opentype.NewFace(fontSource, &opentype.FaceOptions{
		Size:    float64(size),
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		panic(err)
	}
	faceCache[size] = face
	return face
}

func drawCenteredLabel(target *ebiten.Image, face font.Face, label string, cx, cy float64) {
	bounds := text.BoundString(face, label)
	w := bounds.Max.X - bounds.Min.X
	h := bounds.Max.Y - bounds.Min.Y
	text.Draw(target, label, face, int(cx)-w/2, int(cy)+h/2, colorLabel)
}
