package gui

import (
	"image/color"

	"github.com/vancomm/hexsweeper/internal/mines"
)

// Board palette, mirroring classic X11 color names.
var (
	colorBackground = color.RGBA{R: 255, G: 255, B: 255, A: 255} // white
	colorHidden     = color.RGBA{R: 173, G: 216, B: 230, A: 255} // light blue
	colorFlagged    = color.RGBA{R: 160, G: 32, B: 240, A: 255}  // purple
	colorSafe       = color.RGBA{R: 144, G: 238, B: 144, A: 255} // light green
	colorAdjacent   = color.RGBA{R: 255, G: 165, B: 0, A: 255}   // orange
	colorMine       = color.RGBA{R: 255, G: 0, B: 0, A: 255}     // red
	colorOutline    = color.RGBA{A: 255}
	colorLabel      = color.RGBA{A: 255}

	colorOverlay  = color.RGBA{A: 160}
	colorModalBox = color.RGBA{R: 240, G: 240, B: 240, A: 255}
	colorHint     = color.RGBA{R: 110, G: 110, B: 110, A: 255}

	colorTrack = color.RGBA{R: 211, G: 211, B: 211, A: 255}
	colorKnob  = color.RGBA{R: 160, G: 32, B: 240, A: 255}
)

func fillColorFor(state mines.RenderState) color.RGBA {
	switch state {
	case mines.StateFlagged:
		return colorFlagged
	case mines.StateMine:
		return colorMine
	case mines.StateAdjacent:
		return colorAdjacent
	case mines.StateSafe:
		return colorSafe
	default:
		return colorHidden
	}
}

// fontSizeFor scales tile labels with the hexagons. Small boards get
// slightly oversized digits so they stay legible, huge ones are capped.
func fontSizeFor(apothem float64) int {
	switch {
	case apothem < 15:
		return int(apothem * 1.1)
	case apothem > 50:
		return 30
	default:
		return int(apothem * 0.7)
	}
}
