package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"golang.org/x/sync/errgroup"

	"github.com/lox/tictactoe/internal/config"
	"github.com/lox/tictactoe/internal/display"
	"github.com/lox/tictactoe/internal/game"
	"github.com/lox/tictactoe/internal/randutil"
	"github.com/lox/tictactoe/internal/tui"
)

func play(ctx context.Context, cfg *config.Config, logger *log.Logger) error {
	rng, seed := randutil.Resolve(cfg.Seed)
	logger.Info("Starting game", "seed", seed, "mode", cfg.Mode)

	computer := game.NewComputer(rng, logger)
	opts := game.LoopOptions{
		Clock:  quartz.NewReal(),
		Delays: cfg.Delays(),
		Logger: logger,
	}

	term := display.NewTerminal(os.Stdin, os.Stdout, display.Options{
		ClearScreen: cfg.ClearScreen,
		Color:       cfg.Color,
		Logger:      logger,
	})

	var (
		loop *game.Loop
		err  error
	)
	switch cfg.Mode {
	case config.ModeTUI:
		loop, err = playTUI(ctx, computer, opts, logger)
	default:
		loop = game.NewLoop(term, computer, opts)
		_, err = loop.Run(ctx)
	}

	var startupErr *game.StartupError
	switch {
	case errors.As(err, &startupErr):
		logger.Warn("Game not started", "error", err)
		term.Goodbye(err)
		return nil
	case isQuit(err):
		logger.Info("Player quit", "reason", err)
		term.Goodbye(nil)
		return nil
	case err != nil:
		return err
	}

	outcome := loop.Engine().Evaluate()
	logger.Info("Game finished",
		"game_id", loop.ID(),
		"status", outcome.Status,
		"winner", outcome.Winner,
		"moves", loop.Engine().Moves())
	return nil
}

// playTUI runs the Bubble Tea program and the game loop side by side. The
// program stays up after the game ends until the player dismisses it.
func playTUI(ctx context.Context, computer *game.Computer, opts game.LoopOptions, logger *log.Logger) (*game.Loop, error) {
	model, bridge := tui.New(logger)
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	bridge.Attach(p)

	loop := game.NewLoop(bridge, computer, opts)

	var loopErr error
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
			return fmt.Errorf("tui: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		_, loopErr = loop.Run(gctx)

		var startupErr *game.StartupError
		if errors.As(loopErr, &startupErr) || isQuit(loopErr) {
			p.Quit()
			return nil
		}
		bridge.Done(loopErr)
		return nil
	})

	if err := g.Wait(); err != nil {
		return loop, err
	}
	return loop, loopErr
}

// isQuit reports whether err means the player left rather than something failing
func isQuit(err error) bool {
	return errors.Is(err, io.EOF) ||
		errors.Is(err, context.Canceled) ||
		errors.Is(err, tui.ErrQuit)
}
