package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/tictactoe/internal/config"
	"github.com/lox/tictactoe/internal/tui"
)

func TestResolveConfigDefaults(t *testing.T) {
	cli := CLI{Config: filepath.Join(t.TempDir(), "missing.hcl")}

	cfg, err := cli.resolveConfig()
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}

func TestResolveConfigFlagsOverrideFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tictactoe.hcl")
	require.NoError(t, os.WriteFile(path, []byte(`
game {
  seed       = 7
  turn_delay = "5s"
}
ui {
  mode  = "plain"
  color = true
}
`), 0o644))

	cli := CLI{
		Config:   path,
		Seed:     42,
		TUI:      true,
		NoClear:  true,
		NoColor:  true,
		LogLevel: "debug",
		LogFile:  "game.log",
		Fast:     true,
	}

	cfg, err := cli.resolveConfig()
	require.NoError(t, err)
	assert.Equal(t, int64(42), cfg.Seed)
	assert.Equal(t, config.ModeTUI, cfg.Mode)
	assert.False(t, cfg.ClearScreen)
	assert.False(t, cfg.Color)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "game.log", cfg.LogFile)
	assert.Zero(t, cfg.RetryDelay)
	assert.Zero(t, cfg.TurnDelay)
	assert.Zero(t, cfg.FinalDelay)
}

func TestResolveConfigRejectsBadLevel(t *testing.T) {
	cli := CLI{
		Config:   filepath.Join(t.TempDir(), "missing.hcl"),
		LogLevel: "loud",
	}

	_, err := cli.resolveConfig()
	assert.ErrorContains(t, err, "invalid log level")
}

func TestIsQuit(t *testing.T) {
	assert.True(t, isQuit(io.EOF))
	assert.True(t, isQuit(fmt.Errorf("read cell: %w", io.EOF)))
	assert.True(t, isQuit(context.Canceled))
	assert.True(t, isQuit(fmt.Errorf("read side: %w", tui.ErrQuit)))
	assert.False(t, isQuit(nil))
	assert.False(t, isQuit(io.ErrUnexpectedEOF))
}
