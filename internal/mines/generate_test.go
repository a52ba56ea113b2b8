package mines

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func countMines(g *Game) int {
	mines := 0
	for _, c := range g.AllValidCoords() {
		if g.Tile(c.X, c.Y).HasMine() {
			mines++
		}
	}
	return mines
}

func mineSet(g *Game) map[Coord]bool {
	set := make(map[Coord]bool)
	for _, c := range g.AllValidCoords() {
		if g.Tile(c.X, c.Y).HasMine() {
			set[c] = true
		}
	}
	return set
}

func TestMineGeneration(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		params GameParams
	}{
		{name: "5(8)", params: GameParams{Size: 5, MineCount: 8}},
		{name: "10(45)", params: GameParams{Size: 10, MineCount: 45}},
		{name: "13(80)", params: GameParams{Size: 13, MineCount: 80}},
		{name: "3(18)", params: GameParams{Size: 3, MineCount: 18}},
		{name: "4(0)", params: GameParams{Size: 4, MineCount: 0}},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()
			g, err := NewGame(test.params, testRand())
			if err != nil {
				t.Fatal(err)
			}

			g.PlaceMines(0, 0)

			if !g.MinesGenerated() {
				t.Fatal("mines were not generated")
			}
			if g.Tile(0, 0).HasMine() {
				t.Error("the clicked tile must never hold a mine")
			}
			if mines := countMines(g); mines != test.params.MineCount {
				t.Errorf("placed %d mines, want %d", mines, test.params.MineCount)
			}
		})
	}
}

func TestGenerationIsIdempotent(t *testing.T) {
	t.Parallel()

	g, err := NewGame(GameParams{Size: 5, MineCount: 8}, testRand())
	if err != nil {
		t.Fatal(err)
	}

	g.PlaceMines(0, 0)
	before := mineSet(g)

	// a second click anywhere must not move the mines
	g.PlaceMines(4, 4)
	assert.Equal(t, before, mineSet(g))
}

func TestGenerationSweep(t *testing.T) {
	if testing.Short() {
		t.Skip()
	}

	t.Parallel()

	tests := []struct {
		name   string
		params GameParams
	}{
		{name: "2(6)", params: GameParams{Size: 2, MineCount: 6}},
		{name: "3(18)", params: GameParams{Size: 3, MineCount: 18}},
		{name: "5(60)", params: GameParams{Size: 5, MineCount: 60}},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()
			// on a saturated board the anchor is the only safe tile,
			// so anchoring at every position exercises the exclusion
			for _, anchor := range AllValidCoords(test.params.Size) {
				g, err := NewGame(test.params, testRand())
				if err != nil {
					t.Fatal(err)
				}
				g.PlaceMines(anchor.X, anchor.Y)
				if g.Tile(anchor.X, anchor.Y).HasMine() {
					t.Errorf("anchor %v received a mine", anchor)
				}
				if mines := countMines(g); mines != test.params.MineCount {
					t.Errorf("anchor %v: placed %d mines, want %d",
						anchor, mines, test.params.MineCount)
				}
			}
		})
	}
}
