package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/tictactoe/internal/game"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	config, err := Load(filepath.Join(t.TempDir(), "nope.hcl"))
	require.NoError(t, err)
	assert.Equal(t, Default(), config)
	assert.NoError(t, config.Validate())
	assert.Equal(t, game.DefaultDelays(), config.Delays())
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tictactoe.hcl")
	require.NoError(t, os.WriteFile(path, []byte(`
game {
  seed        = 99
  retry_delay = "250ms"
  turn_delay  = "0s"
}

ui {
  mode         = "tui"
  clear_screen = false
  log_level    = "debug"
}
`), 0o644))

	config, err := Load(path)
	require.NoError(t, err)
	require.NoError(t, config.Validate())

	assert.Equal(t, int64(99), config.Seed)
	assert.Equal(t, game.Delays{
		Retry: 250 * time.Millisecond,
		Turn:  0,
		Final: time.Second,
	}, config.Delays())
	assert.Equal(t, ModeTUI, config.Mode)
	assert.False(t, config.ClearScreen)
	assert.True(t, config.Color, "unset booleans keep their default")
	assert.Equal(t, "debug", config.LogLevel)
	assert.Equal(t, "tictactoe.log", config.LogFile)
}

func TestParseOnlyUIBlock(t *testing.T) {
	config, err := Parse([]byte(`ui { color = false }`), "inline.hcl")
	require.NoError(t, err)

	assert.False(t, config.Color)
	assert.Equal(t, game.DefaultDelays(), config.Delays())
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want string
	}{
		{"syntax", `game {`, "failed to parse HCL file"},
		{"unknown attribute", `game { speed = 3 }`, "failed to decode HCL"},
		{"bad duration", `game { turn_delay = "soon" }`, "invalid turn_delay"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.src), "test.hcl")
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{"negative seed", func(c *Config) { c.Seed = -1 }, "seed"},
		{"negative delay", func(c *Config) { c.RetryDelay = -time.Second }, "retry_delay"},
		{"mode", func(c *Config) { c.Mode = "gui" }, "invalid ui mode"},
		{"log level", func(c *Config) { c.LogLevel = "trace" }, "invalid log level"},
		{"log file", func(c *Config) { c.LogFile = "" }, "log file"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Default()
			tt.mutate(c)
			err := c.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}
