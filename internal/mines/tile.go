package mines

import "strconv"

// Tile is one cell of the board. Tiles are owned by their Game and do
// not survive a restart.
type Tile struct {
	revealed bool
	mine     bool
	flagged  bool
}

func (t *Tile) IsRevealed() bool { return t.revealed }
func (t *Tile) HasMine() bool    { return t.mine }
func (t *Tile) HasFlag() bool    { return t.flagged }

// Reveal uncovers the tile. Flags guard against accidental reveals, so
// a flagged tile stays hidden and the call is a no-op.
func (t *Tile) Reveal() {
	if !t.flagged {
		t.revealed = true
	}
}

// CanToggleFlag reports whether the flag state may change: revealed
// tiles never accept flag changes, hidden tiles always do.
func (t *Tile) CanToggleFlag() bool {
	return !t.revealed
}

// SetFlag plants a flag. No-op if one is already planted or the tile
// does not accept flag changes.
func (t *Tile) SetFlag() {
	if !t.flagged && t.CanToggleFlag() {
		t.flagged = true
	}
}

// UnsetFlag removes a planted flag, under the same rules as SetFlag.
func (t *Tile) UnsetFlag() {
	if t.flagged && t.CanToggleFlag() {
		t.flagged = false
	}
}

// changeIntoMine is only called by mine generation; every tile starts
// blank. Idempotent.
func (t *Tile) changeIntoMine() {
	t.mine = true
}

// RenderState is the semantic display class of a tile, consumed by the
// frontends. It deliberately carries no color or glyph choices.
type RenderState int8

const (
	StateHidden   RenderState = iota
	StateFlagged              /* hidden, flag planted */
	StateSafe                 /* revealed, no adjacent mines */
	StateAdjacent             /* revealed, 1+ adjacent mines */
	StateMine                 /* revealed mine */
)

func (s RenderState) String() string {
	switch s {
	case StateFlagged:
		return "flagged"
	case StateSafe:
		return "safe"
	case StateAdjacent:
		return "adjacent"
	case StateMine:
		return "mine"
	default:
		return "hidden"
	}
}

// TileView is the render-facing snapshot of one tile. Label holds the
// adjacent mine count when State is StateAdjacent, otherwise "".
type TileView struct {
	Revealed bool
	Mine     bool
	Flagged  bool
	State    RenderState
	Label    string
}

func makeTileView(t *Tile, adjacentMines int) TileView {
	v := TileView{Revealed: t.revealed, Mine: t.mine, Flagged: t.flagged}
	switch {
	case !t.revealed && t.flagged:
		v.State = StateFlagged
	case !t.revealed:
		v.State = StateHidden
	case t.mine:
		v.State = StateMine
	case adjacentMines > 0:
		v.State = StateAdjacent
		v.Label = strconv.Itoa(adjacentMines)
	default:
		v.State = StateSafe
	}
	return v
}
