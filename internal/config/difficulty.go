package config

import "strings"

// Difficulty names a board preset.
type Difficulty string

const (
	DifficultyEasy         Difficulty = "easy"
	DifficultyIntermediate Difficulty = "intermediate"
	DifficultyAdvanced     Difficulty = "advanced"
)

// Board returns the grid size and mine count the preset plays with.
func (d Difficulty) Board() (size, mineCount int) {
	switch d {
	case DifficultyIntermediate:
		return 10, 45
	case DifficultyAdvanced:
		return 13, 80
	default:
		return 5, 8
	}
}

// ParseDifficulty maps a config string onto a preset, defaulting to
// easy for anything unrecognized.
func ParseDifficulty(s string) Difficulty {
	switch Difficulty(strings.ToLower(s)) {
	case DifficultyIntermediate:
		return DifficultyIntermediate
	case DifficultyAdvanced:
		return DifficultyAdvanced
	default:
		return DifficultyEasy
	}
}
