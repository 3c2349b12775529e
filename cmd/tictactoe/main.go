package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/log"

	"github.com/lox/tictactoe/internal/config"
)

// version is set by ldflags during build
var version = "dev"

type CLI struct {
	Version  kong.VersionFlag `short:"v" help:"Show version"`
	Config   string           `short:"c" help:"Path to an HCL config file" default:"tictactoe.hcl"`
	Seed     int64            `help:"Random seed for the computer player (0 picks one)"`
	TUI      bool             `name:"tui" help:"Play in the full-screen interface"`
	NoClear  bool             `help:"Do not clear the screen between frames"`
	NoColor  bool             `help:"Disable colour output"`
	LogFile  string           `help:"Debug log file"`
	LogLevel string           `help:"Log level (debug, info, warn, error)"`
	Fast     bool             `help:"Skip the pauses between turns"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("tictactoe"),
		kong.Description("Play tic-tac-toe against a random computer player"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
	)

	cfg, err := cli.resolveConfig()
	ctx.FatalIfErrorf(err)

	err = run(cfg)
	ctx.FatalIfErrorf(err)
	ctx.Exit(0)
}

// resolveConfig loads the config file and applies command line overrides
func (c *CLI) resolveConfig() (*config.Config, error) {
	cfg, err := config.Load(c.Config)
	if err != nil {
		return nil, err
	}

	if c.Seed != 0 {
		cfg.Seed = c.Seed
	}
	if c.TUI {
		cfg.Mode = config.ModeTUI
	}
	if c.NoClear {
		cfg.ClearScreen = false
	}
	if c.NoColor {
		cfg.Color = false
	}
	if c.LogFile != "" {
		cfg.LogFile = c.LogFile
	}
	if c.LogLevel != "" {
		cfg.LogLevel = c.LogLevel
	}
	if c.Fast {
		cfg.RetryDelay = 0
		cfg.TurnDelay = 0
		cfg.FinalDelay = 0
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func run(cfg *config.Config) error {
	// Set up debug logging
	debugFile, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0666)
	if err != nil {
		return fmt.Errorf("failed to create debug log: %w", err)
	}
	defer func() {
		if err := debugFile.Close(); err != nil {
			log.Error("Failed to close debug file", "error", err)
		}
	}()

	level, err := log.ParseLevel(cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("invalid log level: %w", err)
	}

	logger := log.NewWithOptions(debugFile, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05",
		Prefix:          "GAME",
		Level:           level,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return play(ctx, cfg, logger)
}
