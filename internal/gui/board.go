package gui

import (
	"image"
	"math"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vancomm/hexsweeper/internal/config"
	"github.com/vancomm/hexsweeper/internal/mines"
)

// boardScene is the playing field. It doubles as the engine's callback
// surface: reveals and flag toggles land here as Redraw and Alert
// calls while a click is still being processed.
type boardScene struct {
	ui *ui

	painter hexPainter
	board   *ebiten.Image
	dirty   bool

	apothem float64
	hshift  float64

	alertActive   bool
	alertTitle    string
	alertLines    []string
	pendingRedraw bool
}

func newBoardScene(u *ui) *boardScene {
	return &boardScene{ui: u, dirty: true}
}

func (s *boardScene) enter() {
	ebiten.SetWindowTitle("HexSweeper")
	s.dirty = true
}

// Redraw implements [mines.UI]. While an alert is on display the board
// image stays frozen, so the player studies the disclosed end position
// rather than the already-restarted session behind it.
func (s *boardScene) Redraw() {
	if s.alertActive {
		s.pendingRedraw = true
		return
	}
	s.dirty = true
}

// Alert implements [mines.UI]. The board is rendered immediately: by
// the time the current frame is drawn the engine may have restarted
// the session, and this snapshot is what belongs under the modal.
func (s *boardScene) Alert(title, message string) {
	s.renderBoard()
	s.alertActive = true
	s.alertTitle = title
	s.alertLines = strings.Split(message, "\n")
}

func (s *boardScene) update() error {
	s.updateTransform()

	if s.alertActive {
		if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) ||
			inpututil.IsKeyJustPressed(ebiten.KeyEnter) ||
			inpututil.IsKeyJustPressed(ebiten.KeySpace) ||
			inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
			s.alertActive = false
			if s.pendingRedraw {
				s.pendingRedraw = false
				s.dirty = true
			}
		}
		return nil
	}

	switch {
	case inpututil.IsKeyJustPressed(ebiten.Key1):
		s.applyPreset(config.DifficultyEasy)
	case inpututil.IsKeyJustPressed(ebiten.Key2):
		s.applyPreset(config.DifficultyIntermediate)
	case inpututil.IsKeyJustPressed(ebiten.Key3):
		s.applyPreset(config.DifficultyAdvanced)
	case inpututil.IsKeyJustPressed(ebiten.Key4):
		s.ui.setScene(s.ui.custom)
		return nil
	case inpututil.IsKeyJustPressed(ebiten.KeyN):
		s.ui.engine.Restart()
		s.dirty = true
	case inpututil.IsKeyJustPressed(ebiten.KeyEscape):
		return ebiten.Termination
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		mx, my := ebiten.CursorPosition()
		s.ui.engine.PrimaryClick(s.boardX(mx), s.boardY(my), s.apothem, s)
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) {
		mx, my := ebiten.CursorPosition()
		s.ui.engine.SecondaryClick(s.boardX(mx), s.boardY(my), s.apothem, s)
	}
	return nil
}

// boardX and boardY strip the window border and centering shift off a
// cursor position, leaving coordinates relative to the board corner.
func (s *boardScene) boardX(mx int) float64 {
	return float64(mx) - s.ui.cfg.Window.Border - s.hshift
}

func (s *boardScene) boardY(my int) float64 {
	return float64(my) - s.ui.cfg.Window.Border
}

func (s *boardScene) updateTransform() {
	apothem, hshift := mines.Fit(
		float64(s.ui.width), float64(s.ui.height),
		s.ui.cfg.Window.Border, s.ui.engine.Size(),
	)
	if apothem != s.apothem || hshift != s.hshift {
		s.apothem, s.hshift = apothem, hshift
		s.dirty = true
	}
}

func (s *boardScene) applyPreset(d config.Difficulty) {
	size, mineCount := d.Board()
	if err := s.ui.engine.Reconfigure(size, mineCount); err != nil {
		return
	}
	s.dirty = true
}

func (s *boardScene) draw(screen *ebiten.Image) {
	screen.Fill(colorBackground)
	if s.dirty {
		s.renderBoard()
	}
	if s.board != nil {
		screen.DrawImage(s.board, nil)
	}
	if s.alertActive {
		s.drawAlert(screen)
	}
}

func (s *boardScene) renderBoard() {
	w, h := s.ui.width, s.ui.height
	if w <= 0 || h <= 0 {
		return
	}
	if s.board == nil || !s.board.Bounds().Size().Eq(image.Pt(w, h)) {
		s.board = ebiten.NewImage(w, h)
	}
	s.board.Clear()

	engine := s.ui.engine
	border := s.ui.cfg.Window.Border
	d := 2 * s.apothem / math.Sqrt(3)
	face := fontFace(fontSizeFor(s.apothem))

	for _, c := range engine.AllValidCoords() {
		view := engine.TileView(c.X, c.Y)
		sx, sy := mines.ToScreen(engine.Size(), c.X, c.Y, s.apothem)
		cx := border + s.hshift + sx
		cy := border + sy
		s.painter.draw(s.board, cx, cy, d, fillColorFor(view.State))
		if view.Label != "" {
			drawCenteredLabel(s.board, face, view.Label, cx, cy)
		}
	}
	s.dirty = false
}

func (s *boardScene) drawAlert(screen *ebiten.Image) {
	const (
		pad        = 24
		lineHeight = 24
		hint       = "Click anywhere to continue"
	)
	titleFace := fontFace(22)
	bodyFace := fontFace(16)
	hintFace := fontFace(12)

	vector.DrawFilledRect(screen, 0, 0,
		float32(s.ui.width), float32(s.ui.height), colorOverlay, false)

	boxW := text.BoundString(titleFace, s.alertTitle).Dx()
	for _, line := range s.alertLines {
		if w := text.BoundString(bodyFace, line).Dx(); w > boxW {
			boxW = w
		}
	}
	if w := text.BoundString(hintFace, hint).Dx(); w > boxW {
		boxW = w
	}
	boxW += 2 * pad
	boxH := 2*pad + lineHeight*(len(s.alertLines)+2)

	bx := (s.ui.width - boxW) / 2
	by := (s.ui.height - boxH) / 2
	vector.DrawFilledRect(screen,
		float32(bx), float32(by), float32(boxW), float32(boxH), colorModalBox, false)
	vector.StrokeRect(screen,
		float32(bx), float32(by), float32(boxW), float32(boxH), outlineWidth, colorOutline, false)

	yy := by + pad + 16
	tw := text.BoundString(titleFace, s.alertTitle).Dx()
	text.Draw(screen, s.alertTitle, titleFace, bx+(boxW-tw)/2, yy, colorLabel)
	for _, line := range s.alertLines {
		yy += lineHeight
		lw := text.BoundString(bodyFace, line).Dx()
		text.Draw(screen, line, bodyFace, bx+(boxW-lw)/2, yy, colorLabel)
	}
	yy += lineHeight
	hw := text.BoundString(hintFace, hint).Dx()
	text.Draw(screen, hint, hintFace, bx+(boxW-hw)/2, yy, colorHint)
}
