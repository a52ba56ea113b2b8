// Package config provides YAML-based application configuration loading
// for the desktop and terminal frontends.
package config

// Config holds everything the frontends read at startup.
type Config struct {
	Window WindowConfig `yaml:"window"`
	Log    LogConfig    `yaml:"log"`
	Game   GameConfig   `yaml:"game"`
}

// WindowConfig defines the desktop window geometry. Border is the gap
// in pixels kept between the board and every window edge.
type WindowConfig struct {
	Width  int     `yaml:"width"`
	Height int     `yaml:"height"`
	Border float64 `yaml:"border"`
}

// LogConfig defines log verbosity and optional rotating file output.
// An empty File disables file logging entirely.
type LogConfig struct {
	Level      string `yaml:"level"`
	File       string `yaml:"file"`
	MaxSizeMB  int    `yaml:"max_size_mb"`
	MaxBackups int    `yaml:"max_backups"`
	MaxAgeDays int    `yaml:"max_age_days"`
}

// GameConfig defines the preset the game opens with and the board size
// range offered by the custom difficulty editor.
type GameConfig struct {
	Difficulty   string `yaml:"difficulty"`
	MinBoardSize int    `yaml:"min_board_size"`
	MaxBoardSize int    `yaml:"max_board_size"`
}
