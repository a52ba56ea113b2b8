package app

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vancomm/hexsweeper/internal/config"
)

func TestNewBuildsConfiguredPreset(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Game.Difficulty = "advanced"

	a, err := New(cfg)
	require.NoError(t, err)

	assert.Equal(t, 13, a.game.Size())
	assert.Equal(t, 80, a.game.MineCount())
	assert.False(t, a.game.MinesGenerated())
}

func TestNewRejectsBadLogLevel(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Log.Level = "chatty"

	_, err := New(cfg)
	assert.Error(t, err)
}

func TestSetupLoggingWithFileHook(t *testing.T) {
	cfg := config.DefaultConfig().Log
	cfg.File = filepath.Join(t.TempDir(), "hexsweeper.log")

	assert.NoError(t, setupLogging(cfg))
}

func TestCreateRandInstancesDiverge(t *testing.T) {
	a, b := createRand(), createRand()

	same := true
	for range 16 {
		if a.Uint64() != b.Uint64() {
			same = false
			break
		}
	}
	assert.False(t, same, "independently seeded generators repeat each other")
}
