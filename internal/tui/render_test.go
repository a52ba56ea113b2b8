package tui

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vancomm/hexsweeper/internal/mines"
)

func TestGlyphForStates(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		view mines.TileView
		want string
	}{
		{"hidden", mines.TileView{State: mines.StateHidden}, "#"},
		{"flagged", mines.TileView{State: mines.StateFlagged}, "F"},
		{"safe", mines.TileView{State: mines.StateSafe}, "·"},
		{"adjacent", mines.TileView{State: mines.StateAdjacent, Label: "3"}, "3"},
		{"mine", mines.TileView{State: mines.StateMine}, "*"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, glyphFor(tt.view))
		})
	}
}

func TestRowIndent(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 2, rowIndent(3, 0))
	assert.Equal(t, 1, rowIndent(3, 1))
	assert.Equal(t, 0, rowIndent(3, 2))
	assert.Equal(t, 2, rowIndent(3, 4))
	assert.Equal(t, 4, rowIndent(5, 0))
	assert.Equal(t, 0, rowIndent(5, 4))
}

func TestRenderBoardLayout(t *testing.T) {
	t.Parallel()

	g, err := mines.NewGame(mines.GameParams{Size: 3, MineCount: 2}, testRand())
	require.NoError(t, err)

	lines := strings.Split(renderBoard(g, mines.Coord{}, false), "\n")
	require.Len(t, lines, mines.RowCount(3))

	for y, line := range lines {
		indent := boardLeft + rowIndent(3, y)
		assert.Equal(t, strings.Repeat(" ", indent), line[:indent], "row %d indent", y)
		assert.NotEqual(t, byte(' '), line[indent], "row %d starts late", y)
		assert.Equal(t, mines.CellCountInRow(3, y), strings.Count(line, "#"), "row %d glyphs", y)
	}
}

// Every tile must be reachable at exactly the cell renderBoard puts its
// glyph in, with View's fixed header above.
func TestTileAtRoundTrip(t *testing.T) {
	t.Parallel()

	const size = 3
	for _, c := range mines.AllValidCoords(size) {
		col := boardLeft + rowIndent(size, c.Y) + 2*c.X
		row := boardTop + c.Y
		got, ok := tileAt(size, col, row)
		if !ok || got != c {
			t.Fatalf("tileAt(%d, %d) = %v, %t, want %v", col, row, got, ok, c)
		}
	}
}

func TestTileAtMisses(t *testing.T) {
	t.Parallel()

	const size = 3
	tests := []struct {
		name     string
		col, row int
	}{
		{"header", 4, boardTop - 1},
		{"below board", 4, boardTop + mines.RowCount(size)},
		{"left margin", 0, boardTop},
		{"gap between tiles", boardLeft + rowIndent(size, 0) + 1, boardTop},
		{"past row end", boardLeft + rowIndent(size, 0) + 2*mines.CellCountInRow(size, 0), boardTop},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, ok := tileAt(size, tt.col, tt.row)
			assert.False(t, ok)
		})
	}
}
