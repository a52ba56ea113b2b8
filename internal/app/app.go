// Package app wires configuration, logging and the game engine
// together for whichever frontend the command line picks.
package app

import (
	"fmt"
	"hash/maphash"
	"io"
	"math/rand/v2"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/snowzach/rotatefilehook"

	"github.com/vancomm/hexsweeper/internal/config"
	"github.com/vancomm/hexsweeper/internal/gui"
	"github.com/vancomm/hexsweeper/internal/mines"
	"github.com/vancomm/hexsweeper/internal/tui"
)

var log = logrus.New()

// App owns the engine instance shared by every frontend.
type App struct {
	cfg  config.Config
	game *mines.Game
}

// New configures logging and builds the opening game session from the
// configured difficulty preset.
func New(cfg config.Config) (*App, error) {
	if err := setupLogging(cfg.Log); err != nil {
		return nil, err
	}

	size, mineCount := config.ParseDifficulty(cfg.Game.Difficulty).Board()
	game, err := mines.NewGame(mines.GameParams{
		Size:      size,
		MineCount: mineCount,
	}, createRand())
	if err != nil {
		return nil, fmt.Errorf("failed to create game: %w", err)
	}

	log.WithFields(logrus.Fields{
		"difficulty": cfg.Game.Difficulty,
		"size":       size,
		"mineCount":  mineCount,
	}).Info("game ready")

	return &App{cfg: cfg, game: game}, nil
}

// RunGUI opens the desktop window and blocks until it closes.
func (a *App) RunGUI() error {
	return gui.Run(a.cfg, a.game)
}

// RunTUI takes over the terminal and blocks until the player quits.
// Console logging is silenced first so entries cannot tear the
// alternate screen; the rotating file hook, when configured, still
// receives them.
func (a *App) RunTUI() error {
	log.SetOutput(io.Discard)
	return tui.Run(a.cfg, a.game)
}

func setupLogging(cfg config.LogConfig) error {
	level, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		return fmt.Errorf("failed to parse log level %q: %w", cfg.Level, err)
	}
	log.SetLevel(level)
	log.SetFormatter(&logrus.TextFormatter{ForceColors: true})

	if cfg.File != "" {
		hook, err := rotatefilehook.NewRotateFileHook(rotatefilehook.RotateFileConfig{
			Filename:   cfg.File,
			MaxSize:    cfg.MaxSizeMB,
			MaxBackups: cfg.MaxBackups,
			MaxAge:     cfg.MaxAgeDays,
			Level:      level,
			Formatter: &logrus.JSONFormatter{
				TimestampFormat: time.RFC3339,
			},
		})
		if err != nil {
			return fmt.Errorf("failed to initialize file log hook: %w", err)
		}
		log.AddHook(hook)
	}

	// the engine logs through its own package-level logger
	mines.Log = log

	return nil
}

func createRand() *rand.Rand {
	return rand.New(rand.NewPCG(
		new(maphash.Hash).Sum64(), new(maphash.Hash).Sum64(),
	))
}
