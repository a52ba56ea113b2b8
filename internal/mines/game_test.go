package mines

import (
	"errors"
	"math/rand/v2"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func TestMain(m *testing.M) {
	Log.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
	})
	m.Run()
}

type recordedAlert struct {
	title, message string
}

// recordingUI captures the engine's callbacks. onAlert, when set, runs
// inside the Alert call, before the engine restarts the session.
type recordingUI struct {
	redraws int
	alerts  []recordedAlert
	onAlert func()
}

func (ui *recordingUI) Redraw() { ui.redraws++ }

func (ui *recordingUI) Alert(title, message string) {
	ui.alerts = append(ui.alerts, recordedAlert{title, message})
	if ui.onAlert != nil {
		ui.onAlert()
	}
}

func testRand() *rand.Rand {
	return rand.New(rand.NewPCG(1, 2))
}

func TestNewGameStartsBlank(t *testing.T) {
	t.Parallel()

	g, err := NewGame(GameParams{Size: 5, MineCount: 8}, testRand())
	if err != nil {
		t.Fatal(err)
	}

	if g.MinesGenerated() {
		t.Error("mines must not exist before the first click")
	}
	coords := g.AllValidCoords()
	if len(coords) != 61 {
		t.Errorf("size 5 board has %d tiles, want 61", len(coords))
	}
	for _, c := range coords {
		tile := g.Tile(c.X, c.Y)
		if tile.IsRevealed() || tile.HasFlag() || tile.HasMine() {
			t.Errorf("tile %v is not blank", c)
		}
	}
}

func TestNewGameRejectsTooManyMines(t *testing.T) {
	t.Parallel()

	_, err := NewGame(GameParams{Size: 2, MineCount: 7}, testRand())

	var configErr ConfigError
	if !errors.As(err, &configErr) {
		t.Fatalf("want ConfigError, got %v", err)
	}
	assert.Equal(t, 2, configErr.Size)
	assert.Equal(t, 7, configErr.RequestedMineCount)
	assert.Equal(t, 6, configErr.MaxAllowed)
}

func TestNewGameAcceptsSaturatedBoard(t *testing.T) {
	t.Parallel()

	// one safe tile left is still a playable game
	_, err := NewGame(GameParams{Size: 2, MineCount: 6}, testRand())
	assert.NoError(t, err)
}

func TestReconfigure(t *testing.T) {
	t.Parallel()

	g, err := NewGame(GameParams{Size: 5, MineCount: 8}, testRand())
	if err != nil {
		t.Fatal(err)
	}
	g.Tile(0, 0).SetFlag()

	// a rejected reconfigure must not disturb the running session
	err = g.Reconfigure(3, 19)
	var configErr ConfigError
	assert.ErrorAs(t, err, &configErr)
	assert.Equal(t, 5, g.Size())
	assert.Equal(t, 8, g.MineCount())
	assert.True(t, g.Tile(0, 0).HasFlag())

	// an accepted one replaces every tile
	err = g.Reconfigure(10, 45)
	assert.NoError(t, err)
	assert.Equal(t, GameParams{Size: 10, MineCount: 45}, g.Params())
	assert.Equal(t, 0, g.TotalFlagCount())
	assert.False(t, g.MinesGenerated())
}

func TestRestartDiscardsEveryTile(t *testing.T) {
	t.Parallel()

	g, err := NewGame(GameParams{Size: 3, MineCount: 4}, testRand())
	if err != nil {
		t.Fatal(err)
	}
	g.PlaceMines(2, 2)
	g.Tile(0, 0).SetFlag()
	g.Tile(2, 2).Reveal()

	g.Restart()

	assert.Equal(t, GameParams{Size: 3, MineCount: 4}, g.Params())
	assert.False(t, g.MinesGenerated())
	for _, c := range g.AllValidCoords() {
		tile := g.Tile(c.X, c.Y)
		if tile.IsRevealed() || tile.HasFlag() || tile.HasMine() {
			t.Errorf("tile %v survived the restart", c)
		}
	}
}

func TestTileAccessorBoundsChecks(t *testing.T) {
	t.Parallel()

	g, err := NewGame(GameParams{Size: 3, MineCount: 0}, testRand())
	if err != nil {
		t.Fatal(err)
	}

	assert.NotNil(t, g.Tile(0, 0))
	assert.NotNil(t, g.Tile(4, 2))
	assert.Nil(t, g.Tile(3, 0), "row 0 is only 3 wide")
	assert.Nil(t, g.Tile(0, 5))
	assert.Nil(t, g.Tile(-1, 0))
	assert.Nil(t, g.Tile(0, -1))
}

func TestTileViewStates(t *testing.T) {
	t.Parallel()

	g, err := NewGame(GameParams{Size: 3, MineCount: 1}, testRand())
	if err != nil {
		t.Fatal(err)
	}
	g.tileAt(Coord{0, 0}).changeIntoMine()
	g.minesGenerated = true

	hidden := g.TileView(1, 2)
	assert.Equal(t, StateHidden, hidden.State)
	assert.Empty(t, hidden.Label)

	g.Tile(0, 1).SetFlag()
	assert.Equal(t, StateFlagged, g.TileView(0, 1).State)

	g.Tile(1, 0).Reveal() // borders the mine
	numbered := g.TileView(1, 0)
	assert.Equal(t, StateAdjacent, numbered.State)
	assert.Equal(t, "1", numbered.Label)

	g.Tile(2, 2).Reveal() // far from the mine
	assert.Equal(t, StateSafe, g.TileView(2, 2).State)
	assert.Empty(t, g.TileView(2, 2).Label)

	g.Tile(0, 0).Reveal()
	assert.Equal(t, StateMine, g.TileView(0, 0).State)

	assert.Equal(t, TileView{}, g.TileView(99, 99))
}

func TestFlagLimit(t *testing.T) {
	t.Parallel()

	g, err := NewGame(GameParams{Size: 3, MineCount: 2}, testRand())
	if err != nil {
		t.Fatal(err)
	}
	g.PlaceMines(2, 2)

	ui := &recordingUI{}
	const apothem = 20.0
	flagAt := func(x, y int) {
		sx, sy := ToScreen(g.Size(), x, y, apothem)
		g.SecondaryClick(sx, sy, apothem, ui)
	}

	flagAt(0, 0)
	flagAt(1, 0)
	assert.Equal(t, 2, g.TotalFlagCount())
	assert.True(t, g.FlagLimitReached())

	// a third flag is refused with an alert and no state change
	flagAt(0, 1)
	assert.Equal(t, 2, g.TotalFlagCount())
	assert.False(t, g.Tile(0, 1).HasFlag())
	if assert.Len(t, ui.alerts, 1) {
		assert.Equal(t, "Minesweeper", ui.alerts[0].title)
		assert.Contains(t, ui.alerts[0].message, "flag limit of 2")
	}

	// unsetting one frees a slot
	flagAt(1, 0)
	assert.Equal(t, 1, g.TotalFlagCount())
	assert.False(t, g.FlagLimitReached())

	flagAt(0, 1)
	assert.Equal(t, 2, g.TotalFlagCount())
	assert.True(t, g.Tile(0, 1).HasFlag())
}

func TestFlagOnRevealedTileIsNoop(t *testing.T) {
	t.Parallel()

	g, err := NewGame(GameParams{Size: 3, MineCount: 2}, testRand())
	if err != nil {
		t.Fatal(err)
	}
	g.PlaceMines(2, 2)
	g.Tile(2, 2).Reveal()

	ui := &recordingUI{}
	sx, sy := ToScreen(g.Size(), 2, 2, 20)
	g.SecondaryClick(sx, sy, 20, ui)

	assert.False(t, g.Tile(2, 2).HasFlag())
	assert.Zero(t, ui.redraws)
	assert.Empty(t, ui.alerts)
}
