package gui

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"

	"github.com/vancomm/hexsweeper/internal/mines"
)

// customScene lets the player compose a board. Two sliders pick the
// size and mine count, a fully disclosed preview shows the resulting
// density, and Select starts a fresh session with those parameters.
type customScene struct {
	ui *ui

	size      *slider
	mineCount *slider
	selectBtn button

	painter hexPainter
	preview *mines.Game
}

func newCustomScene(u *ui) *customScene {
	minSize := max(2, u.cfg.Game.MinBoardSize)
	maxSize := max(minSize, u.cfg.Game.MaxBoardSize)

	s := &customScene{ui: u}
	s.size = newSlider("Board size", minSize, maxSize, u.engine.Size())
	s.mineCount = newSlider("Mines", 1,
		mines.HighestPossibleMineCount(u.engine.Size()), u.engine.MineCount())
	s.selectBtn = button{label: "Select"}
	return s
}

// enter re-syncs the sliders with the live session, so reopening the
// editor always starts from what is actually being played.
func (s *customScene) enter() {
	ebiten.SetWindowTitle("HexSweeper - Choose Difficulty")
	s.size.setValue(s.ui.engine.Size())
	s.mineCount.max = mines.HighestPossibleMineCount(s.size.value)
	s.mineCount.setValue(s.ui.engine.MineCount())
	s.rebuildPreview()
}

func (s *customScene) update() error {
	s.layoutWidgets()

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		s.ui.setScene(s.ui.board)
		return nil
	}

	if s.size.handleMouse() {
		old := s.mineCount.max
		s.mineCount.max = mines.HighestPossibleMineCount(s.size.value)
		s.mineCount.setValue(rescaleMines(s.mineCount.value, old, s.mineCount.max))
		s.rebuildPreview()
	} else if s.mineCount.handleMouse() {
		s.rebuildPreview()
	}

	if s.selectBtn.clicked() {
		if err := s.ui.engine.Reconfigure(s.size.value, s.mineCount.value); err == nil {
			s.ui.setScene(s.ui.board)
		}
	}
	return nil
}

// rescaleMines keeps the mine fraction constant as board capacity
// changes, never dropping below a single mine.
func rescaleMines(value, oldMax, newMax int) int {
	if oldMax <= 0 {
		return 1
	}
	frac := float64(value) / float64(oldMax)
	v := int(math.Round(frac * float64(newMax)))
	return min(max(v, 1), newMax)
}

func (s *customScene) layoutWidgets() {
	w, h := float64(s.ui.width), float64(s.ui.height)
	margin := s.ui.cfg.Window.Border + 20

	trackWidth := w/2 - 2*margin
	s.size.x, s.size.y, s.size.width = margin, 110, trackWidth
	s.mineCount.x, s.mineCount.y, s.mineCount.width = margin, 190, trackWidth

	s.selectBtn.width, s.selectBtn.height = 160, 44
	s.selectBtn.x = margin
	s.selectBtn.y = h - margin - s.selectBtn.height
}

func (s *customScene) rebuildPreview() {
	params := mines.GameParams{Size: s.size.value, MineCount: s.mineCount.value}
	preview, err := mines.NewGame(params, createRand())
	if err != nil {
		return
	}
	center := params.Size - 1
	preview.PlaceMines(center, center)
	for _, c := range preview.AllValidCoords() {
		preview.Tile(c.X, c.Y).Reveal() /* the preview hides nothing */
	}
	s.preview = preview
}

func (s *customScene) draw(screen *ebiten.Image) {
	screen.Fill(colorBackground)

	titleFace := fontFace(22)
	title := "Custom game"
	tw := text.BoundString(titleFace, title).Dx()
	text.Draw(screen, title, titleFace, (s.ui.width-tw)/2, 48, colorLabel)

	s.size.draw(screen)
	s.mineCount.draw(screen)
	s.selectBtn.draw(screen)
	s.drawPreview(screen)
}

// drawPreview paints the sample board with every tile disclosed, mines
// and adjacency counts both, through the same renderer and palette as
// the real game.
func (s *customScene) drawPreview(screen *ebiten.Image) {
	if s.preview == nil {
		return
	}

	w, h := float64(s.ui.width), float64(s.ui.height)
	margin := s.ui.cfg.Window.Border
	rx, ry := w/2, 70.0
	rw, rh := w/2-margin, h-ry-margin

	apothem, hshift := mines.Fit(rw, rh, 10, s.preview.Size())
	d := 2 * apothem / math.Sqrt(3)
	face := fontFace(fontSizeFor(apothem))

	for _, c := range s.preview.AllValidCoords() {
		view := s.preview.TileView(c.X, c.Y)
		sx, sy := mines.ToScreen(s.preview.Size(), c.X, c.Y, apothem)
		cx := rx + 10 + hshift + sx
		cy := ry + 10 + sy

		s.painter.draw(screen, cx, cy, d, fillColorFor(view.State))
		if view.Label != "" {
			drawCenteredLabel(screen, face, view.Label, cx, cy)
		}
	}
}
