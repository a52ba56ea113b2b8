package mines

import (
	"math/rand/v2"
	"time"

	"github.com/sirupsen/logrus"
)

var Log = logrus.New()

// GameParams describe a board: its size (the number of cells along one
// edge) and the number of mines hidden on it.
type GameParams struct {
	Size      int
	MineCount int
}

func (p GameParams) validate() error {
	if limit := HighestPossibleMineCount(p.Size); p.MineCount > limit {
		return ConfigError{
			Size:               p.Size,
			RequestedMineCount: p.MineCount,
			MaxAllowed:         limit,
		}
	}
	return nil
}

// UI receives the engine's presentation callbacks. Redraw is invoked
// whenever visible state may have changed; Alert surfaces a modal
// message. The engine never touches a rendering facility directly.
type UI interface {
	Redraw()
	Alert(title, message string)
}

// Game holds one running session of minesweeper on a hexagonal board.
// All methods are synchronous; callers dispatch them from a single
// event loop, so Game does no locking.
type Game struct {
	size      int
	mineCount int

	rows [][]Tile

	minesGenerated bool
	sessionStart   time.Time

	rand *rand.Rand
}

// NewGame validates params and builds a blank board. Mines are not
// placed until the first click, so the opening reveal can never lose.
func NewGame(params GameParams, r *rand.Rand) (*Game, error) {
	if err := params.validate(); err != nil {
		return nil, err
	}
	g := &Game{rand: r}
	g.init(params.Size, params.MineCount)
	return g, nil
}

func (g *Game) init(size, mineCount int) {
	g.size = size
	g.mineCount = mineCount
	g.rows = make([][]Tile, RowCount(size))
	for y := range g.rows {
		g.rows[y] = make([]Tile, CellCountInRow(size, y))
	}
	g.minesGenerated = false
	g.sessionStart = time.Now()
}

// Restart discards every tile and begins a fresh session with the same
// size and mine count.
func (g *Game) Restart() {
	g.init(g.size, g.mineCount)
}

// Reconfigure validates new params and, when they are acceptable,
// begins a fresh session with them. On error the running session is
// left untouched.
func (g *Game) Reconfigure(size, mineCount int) error {
	params := GameParams{Size: size, MineCount: mineCount}
	if err := params.validate(); err != nil {
		return err
	}
	g.init(size, mineCount)
	return nil
}

func (g *Game) Size() int      { return g.size }
func (g *Game) MineCount() int { return g.mineCount }

func (g *Game) Params() GameParams {
	return GameParams{Size: g.size, MineCount: g.mineCount}
}

// MinesGenerated reports whether the first click has placed the mines.
func (g *Game) MinesGenerated() bool {
	return g.minesGenerated
}

// IsPositionValid reports whether (x, y) addresses a tile.
func (g *Game) IsPositionValid(x, y int) bool {
	return CoordInBounds(g.size, x, y)
}

// Tile returns the addressed tile, or nil when (x, y) is off the board.
func (g *Game) Tile(x, y int) *Tile {
	if !g.IsPositionValid(x, y) {
		return nil
	}
	return &g.rows[y][x]
}

func (g *Game) tileAt(c Coord) *Tile {
	return &g.rows[c.Y][c.X]
}

// AllValidCoords enumerates every tile position on the board.
func (g *Game) AllValidCoords() []Coord {
	return AllValidCoords(g.size)
}

// AdjacentMineCount returns the number of mines around (x, y), 0 to 6.
func (g *Game) AdjacentMineCount(x, y int) int {
	count := 0
	for _, c := range AdjacentCoords(g.size, x, y) {
		if g.tileAt(c).mine {
			count++
		}
	}
	return count
}

// TileView returns the render-facing state of (x, y). Off-board
// positions yield the zero view.
func (g *Game) TileView(x, y int) TileView {
	t := g.Tile(x, y)
	if t == nil {
		return TileView{}
	}
	return makeTileView(t, g.AdjacentMineCount(x, y))
}

// TotalFlagCount counts the flags currently planted.
func (g *Game) TotalFlagCount() int {
	count := 0
	for y := range g.rows {
		for x := range g.rows[y] {
			if g.rows[y][x].flagged {
				count++
			}
		}
	}
	return count
}

// FlagLimitReached reports whether the number of planted flags has
// reached the mine count, which is the most the player may place.
func (g *Game) FlagLimitReached() bool {
	return g.TotalFlagCount() >= g.mineCount
}
