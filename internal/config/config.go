// Package config loads the optional HCL settings file for the game binary.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/lox/tictactoe/internal/game"
)

// UI modes
const (
	ModePlain = "plain"
	ModeTUI   = "tui"
)

// Config is the resolved configuration with defaults applied.
type Config struct {
	Seed       int64
	RetryDelay time.Duration
	TurnDelay  time.Duration
	FinalDelay time.Duration

	Mode        string
	ClearScreen bool
	Color       bool
	LogLevel    string
	LogFile     string
}

// fileConfig mirrors the HCL file. Every block and attribute is optional.
type fileConfig struct {
	Game *GameSettings `hcl:"game,block"`
	UI   *UISettings   `hcl:"ui,block"`
}

// GameSettings contains pacing and randomness settings
type GameSettings struct {
	Seed       int64  `hcl:"seed,optional"`
	RetryDelay string `hcl:"retry_delay,optional"`
	TurnDelay  string `hcl:"turn_delay,optional"`
	FinalDelay string `hcl:"final_delay,optional"`
}

// UISettings contains user interface settings
type UISettings struct {
	Mode        string `hcl:"mode,optional"`
	ClearScreen *bool  `hcl:"clear_screen,optional"`
	Color       *bool  `hcl:"color,optional"`
	LogLevel    string `hcl:"log_level,optional"`
	LogFile     string `hcl:"log_file,optional"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	delays := game.DefaultDelays()
	return &Config{
		RetryDelay:  delays.Retry,
		TurnDelay:   delays.Turn,
		FinalDelay:  delays.Final,
		Mode:        ModePlain,
		ClearScreen: true,
		Color:       true,
		LogLevel:    "info",
		LogFile:     "tictactoe.log",
	}
}

// Load reads filename. A missing file is not an error and yields Default().
func Load(filename string) (*Config, error) {
	src, err := os.ReadFile(filename)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	return Parse(src, filename)
}

// Parse decodes HCL source and applies defaults for anything left unset.
func Parse(src []byte, filename string) (*Config, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var fc fileConfig
	diags = gohcl.DecodeBody(file.Body, nil, &fc)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	config := Default()

	if g := fc.Game; g != nil {
		config.Seed = g.Seed
		for _, d := range []struct {
			name string
			raw  string
			dst  *time.Duration
		}{
			{"retry_delay", g.RetryDelay, &config.RetryDelay},
			{"turn_delay", g.TurnDelay, &config.TurnDelay},
			{"final_delay", g.FinalDelay, &config.FinalDelay},
		} {
			if d.raw == "" {
				continue
			}
			v, err := time.ParseDuration(d.raw)
			if err != nil {
				return nil, fmt.Errorf("%s: invalid %s %q: %w", filename, d.name, d.raw, err)
			}
			*d.dst = v
		}
	}

	if ui := fc.UI; ui != nil {
		if ui.Mode != "" {
			config.Mode = ui.Mode
		}
		if ui.ClearScreen != nil {
			config.ClearScreen = *ui.ClearScreen
		}
		if ui.Color != nil {
			config.Color = *ui.Color
		}
		if ui.LogLevel != "" {
			config.LogLevel = ui.LogLevel
		}
		if ui.LogFile != "" {
			config.LogFile = ui.LogFile
		}
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Seed < 0 {
		return fmt.Errorf("seed cannot be negative")
	}

	for name, d := range map[string]time.Duration{
		"retry_delay": c.RetryDelay,
		"turn_delay":  c.TurnDelay,
		"final_delay": c.FinalDelay,
	} {
		if d < 0 {
			return fmt.Errorf("%s cannot be negative", name)
		}
	}

	validModes := map[string]bool{
		ModePlain: true,
		ModeTUI:   true,
	}
	if !validModes[c.Mode] {
		return fmt.Errorf("invalid ui mode: %s", c.Mode)
	}

	validLogLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLogLevels[c.LogLevel] {
		return fmt.Errorf("invalid log level: %s", c.LogLevel)
	}

	if c.LogFile == "" {
		return fmt.Errorf("log file is required")
	}

	return nil
}

// Delays returns the pacing delays for the game loop.
func (c *Config) Delays() game.Delays {
	return game.Delays{
		Retry: c.RetryDelay,
		Turn:  c.TurnDelay,
		Final: c.FinalDelay,
	}
}
