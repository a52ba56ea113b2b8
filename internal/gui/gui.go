// Package gui renders the game in a desktop window.
package gui

import (
	"hash/maphash"
	"math/rand/v2"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vancomm/hexsweeper/internal/config"
	"github.com/vancomm/hexsweeper/internal/mines"
)

// scene is one full-window view. enter runs each time the scene
// becomes current.
type scene interface {
	enter()
	update() error
	draw(screen *ebiten.Image)
}

type ui struct {
	cfg    config.Config
	engine *mines.Game

	current scene
	board   *boardScene
	custom  *customScene

	width, height int
}

func (u *ui) setScene(s scene) {
	u.current = s
	s.enter()
}

func (u *ui) Update() error {
	return u.current.update()
}

func (u *ui) Draw(screen *ebiten.Image) {
	u.current.draw(screen)
}

func (u *ui) Layout(outsideWidth, outsideHeight int) (int, int) {
	u.width, u.height = outsideWidth, outsideHeight
	return outsideWidth, outsideHeight
}

// Run opens the game window and blocks until it is closed.
func Run(cfg config.Config, game *mines.Game) error {
	u := &ui{cfg: cfg, engine: game}
	u.board = newBoardScene(u)
	u.custom = newCustomScene(u)
	u.setScene(u.board)

	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle("HexSweeper")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	return ebiten.RunGame(u)
}

func createRand() *rand.Rand {
	return rand.New(rand.NewPCG(
		new(maphash.Hash).Sum64(), new(maphash.Hash).Sum64(),
	))
}
