package gui

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const outlineWidth = 2

var whiteImage *ebiten.Image

func whitePixel() *ebiten.Image {
	if whiteImage == nil {
		whiteImage = ebiten.NewImage(1, 1)
		whiteImage.Fill(color.White)
	}
	return whiteImage
}

// hexagonPath traces a pointy-top hexagon around a center point. The
// radius is the center-to-vertex distance; vertices sit at 30 + 60k
// degrees, which leaves the left and right edges vertical.
func hexagonPath(cx, cy, radius float64) vector.Path {
	var path vector.Path
	for i := range 6 {
		angle := math.Pi/3*float64(i) + math.Pi/6
		px := cx + radius*math.Cos(angle)
		py := cy + radius*math.Sin(angle)
		if i == 0 {
			path.MoveTo(float32(px), float32(py))
		} else {
			path.LineTo(float32(px), float32(py))
		}
	}
	path.Close()
	return path
}

// hexPainter draws filled, outlined hexagons, reusing its vertex and
// index buffers between tiles.
type hexPainter struct {
	vs []ebiten.Vertex
	is []uint16
}

func (p *hexPainter) draw(target *ebiten.Image, cx, cy, radius float64, fill color.RGBA) {
	path := hexagonPath(cx, cy, radius)

	p.vs, p.is = path.AppendVerticesAndIndicesForFilling(p.vs[:0], p.is[:0])
	p.paint(target, fill)

	p.vs, p.is = path.AppendVerticesAndIndicesForStroke(p.vs[:0], p.is[:0], &vector.StrokeOptions{
		Width: outlineWidth,
	})
	p.paint(target, colorOutline)
}

func (p *hexPainter) paint(target *ebiten.Image, col color.RGBA) {
	for i := range p.vs {
		p.vs[i].ColorR = float32(col.R) / 255
		p.vs[i].ColorG = float32(col.G) / 255
		p.vs[i].ColorB = float32(col.B) / 255
		p.vs[i].ColorA = float32(col.A) / 255
	}
	target.DrawTriangles(p.vs, p.is, whitePixel(), &ebiten.DrawTrianglesOptions{
		AntiAlias: true,
	})
}
