package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vancomm/hexsweeper/internal/mines"
)

/*
 * Board layout. Every tile is a single glyph on a two-column pitch, and
 * a row that is n tiles narrower than the center row is indented n
 * columns, which reproduces the half-hexagon stagger of the windowed
 * board. tileAt relies on this layout staying in lockstep with
 * renderBoard and with the fixed header View puts above the board.
 */
const (
	boardLeft = 2 // columns before the widest row
	boardTop  = 4 // terminal rows above the board: title, status, spacing
)

var (
	styleTitle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	styleStatus = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	styleHelp   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	styleCursor = lipgloss.NewStyle().
			Foreground(lipgloss.Color("229")).
			Background(lipgloss.Color("57"))

	styleHidden  = lipgloss.NewStyle().Foreground(lipgloss.Color("13"))
	styleFlagged = lipgloss.NewStyle().Foreground(lipgloss.Color("208"))
	styleSafe    = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	styleMine    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))

	// Adjacent-mine counts get the classic per-digit coloring. Six
	// neighbors is the most a tile can have.
	styleCounts = map[string]lipgloss.Style{
		"1": lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
		"2": lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
		"3": lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
		"4": lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
		"5": lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
		"6": lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
	}

	styleAlertBox = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 2)
	styleAlertHint = lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("241"))
)

// glyphFor picks the single-column glyph for a tile.
func glyphFor(v mines.TileView) string {
	switch v.State {
	case mines.StateFlagged:
		return "F"
	case mines.StateMine:
		return "*"
	case mines.StateAdjacent:
		return v.Label
	case mines.StateSafe:
		return "·"
	default:
		return "#"
	}
}

// styleFor picks the style matching glyphFor.
func styleFor(v mines.TileView) lipgloss.Style {
	switch v.State {
	case mines.StateFlagged:
		return styleFlagged
	case mines.StateMine:
		return styleMine
	case mines.StateAdjacent:
		if s, ok := styleCounts[v.Label]; ok {
			return s
		}
		return styleSafe
	case mines.StateSafe:
		return styleSafe
	default:
		return styleHidden
	}
}

// rowIndent is the column offset of a row against the widest row.
func rowIndent(size, y int) int {
	return mines.RowCount(size) - mines.CellCountInRow(size, y)
}

// renderBoard draws the whole board, optionally highlighting the tile
// under the cursor.
func renderBoard(g *mines.Game, cursor mines.Coord, showCursor bool) string {
	size := g.Size()

	var b strings.Builder
	for y := 0; y < mines.RowCount(size); y++ {
		if y > 0 {
			b.WriteString("\n")
		}
		b.WriteString(strings.Repeat(" ", boardLeft+rowIndent(size, y)))
		for x := 0; x < mines.CellCountInRow(size, y); x++ {
			if x > 0 {
				b.WriteString(" ")
			}
			v := g.TileView(x, y)
			style := styleFor(v)
			if showCursor && cursor.X == x && cursor.Y == y {
				style = styleCursor
			}
			b.WriteString(style.Render(glyphFor(v)))
		}
	}
	return b.String()
}

// tileAt maps a terminal cell to the tile rendered there. The bool is
// false for cells between tiles and cells off the board.
func tileAt(size, col, row int) (mines.Coord, bool) {
	y := row - boardTop
	if y < 0 || y >= mines.RowCount(size) {
		return mines.Coord{}, false
	}
	dx := col - boardLeft - rowIndent(size, y)
	if dx < 0 || dx%2 != 0 {
		return mines.Coord{}, false
	}
	x := dx / 2
	if x >= mines.CellCountInRow(size, y) {
		return mines.Coord{}, false
	}
	return mines.Coord{X: x, Y: y}, true
}
