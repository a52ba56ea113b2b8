package config

import (
	_ "embed"
)

//go:embed default.yaml
var defaultYAML []byte

// DefaultConfig returns the built-in configuration.
func DefaultConfig() Config {
	return Config{
		Window: WindowConfig{
			Width:  800,
			Height: 615,
			Border: 20,
		},
		Log: LogConfig{
			Level:      "info",
			File:       "",
			MaxSizeMB:  50,
			MaxBackups: 3,
			MaxAgeDays: 28,
		},
		Game: GameConfig{
			Difficulty:   "easy",
			MinBoardSize: 2,
			MaxBoardSize: 15,
		},
	}
}
