package mines

import (
	"time"

	"github.com/sirupsen/logrus"
)

// PlaceMines places the session's mines as if the first reveal had
// happened at the anchor, revealing nothing. No-op once mines exist.
func (g *Game) PlaceMines(anchorX, anchorY int) {
	g.tryGenerateMines(anchorX, anchorY)
}

// tryGenerateMines places the board's mines on the first click. The
// clicked cell is excluded from the draw so the opening move can never
// lose. No-op once mines exist; the layout is then fixed until restart.
func (g *Game) tryGenerateMines(x, y int) {
	if g.minesGenerated {
		return
	}

	/*
	 * Write down every coordinate except the clicked one...
	 */
	candidates := make([]Coord, 0, TotalTiles(g.size)-1)
	for _, c := range AllValidCoords(g.size) {
		if c.X != x || c.Y != y {
			candidates = append(candidates, c)
		}
	}

	/*
	 * ...then draw mineCount of them at random, without replacement.
	 */
	k := len(candidates)
	for range g.mineCount {
		i := g.rand.IntN(k)
		g.tileAt(candidates[i]).changeIntoMine()
		k--
		candidates[i] = candidates[k]
	}

	g.minesGenerated = true
	g.sessionStart = time.Now()

	Log.WithFields(logrus.Fields{
		"size":      g.size,
		"mineCount": g.mineCount,
		"anchorX":   x,
		"anchorY":   y,
	}).Debug("mines generated")
}
