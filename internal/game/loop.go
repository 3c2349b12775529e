package game

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/google/uuid"
)

// State is a phase of the game loop.
type State int

const (
	ChoosingSides State = iota
	AwaitingHumanMove
	AwaitingComputerMove
	Terminal
)

// String returns the string representation of a loop state
func (s State) String() string {
	switch s {
	case ChoosingSides:
		return "choosing sides"
	case AwaitingHumanMove:
		return "awaiting human move"
	case AwaitingComputerMove:
		return "awaiting computer move"
	case Terminal:
		return "terminal"
	default:
		return "unknown"
	}
}

// Delays pace the game so a human can read transient messages.
type Delays struct {
	Retry time.Duration // after an invalid cell
	Turn  time.Duration // after the computer has moved
	Final time.Duration // before the final board
}

// DefaultDelays returns the pacing used by the interactive binary.
func DefaultDelays() Delays {
	return Delays{
		Retry: time.Second,
		Turn:  2 * time.Second,
		Final: time.Second,
	}
}

// LoopOptions configures a Loop. Zero values fall back to a real clock,
// no delays and a discarding logger.
type LoopOptions struct {
	Clock  quartz.Clock
	Delays Delays
	Logger *log.Logger
}

// Loop drives one game: it asks the human for a side, then alternates human and
// computer moves through the engine until the outcome is terminal.
type Loop struct {
	ui       Frontend
	computer *Computer
	clock    quartz.Clock
	delays   Delays
	logger   *log.Logger
	id       string

	state   State
	engine  *Engine
	outcome Outcome
}

// NewLoop creates a loop for a single game
func NewLoop(ui Frontend, computer *Computer, opts LoopOptions) *Loop {
	if opts.Clock == nil {
		opts.Clock = quartz.NewReal()
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}

	id := uuid.NewString()
	return &Loop{
		ui:       ui,
		computer: computer,
		clock:    opts.Clock,
		delays:   opts.Delays,
		logger:   opts.Logger.WithPrefix("loop").With("game_id", id),
		id:       id,
		state:    ChoosingSides,
	}
}

// ID returns the identifier attached to this game's log lines.
func (l *Loop) ID() string {
	return l.id
}

// State returns the current loop state.
func (l *Loop) State() State {
	return l.state
}

// Engine returns the engine once sides are chosen, nil before.
func (l *Loop) Engine() *Engine {
	return l.engine
}

// Run plays the game to completion and returns the final outcome.
//
// An invalid side choice is returned as a *StartupError. Errors from the
// collaborators (EOF, a cancelled context) end the game early and are returned
// wrapped.
func (l *Loop) Run(ctx context.Context) (Outcome, error) {
	l.logger.Info("Starting game")

	for {
		var (
			next State
			err  error
		)

		switch l.state {
		case ChoosingSides:
			next, err = l.chooseSides(ctx)
		case AwaitingHumanMove:
			next, err = l.humanTurn(ctx)
		case AwaitingComputerMove:
			next, err = l.computerTurn(ctx)
		case Terminal:
			return l.finish(ctx)
		default:
			return Outcome{}, fmt.Errorf("unknown loop state %d", l.state)
		}

		if err != nil {
			l.logger.Error("Game stopped", "state", l.state, "error", err)
			return l.outcome, err
		}
		if next != l.state {
			l.logger.Debug("Transition", "from", l.state, "to", next)
		}
		l.state = next
	}
}

func (l *Loop) chooseSides(ctx context.Context) (State, error) {
	raw, err := l.ui.RequestSide(ctx)
	if err != nil {
		return ChoosingSides, fmt.Errorf("read side: %w", err)
	}

	mark, err := ParseMark(raw)
	if err != nil {
		return ChoosingSides, &StartupError{Err: err}
	}
	assignment, err := NewAssignment(mark)
	if err != nil {
		return ChoosingSides, &StartupError{Err: err}
	}

	l.engine = NewEngine(assignment)
	l.outcome = l.engine.Evaluate()
	l.logger.Info("Sides chosen", "human", assignment.Human, "computer", assignment.Computer)
	l.notify(Event{Type: EventTypeSidesAssigned, Mark: assignment.Human})
	return AwaitingHumanMove, nil
}

func (l *Loop) humanTurn(ctx context.Context) (State, error) {
	mark := l.engine.Assignment().Human
	l.ui.Render(l.engine.Board(), l.outcome)

	input, err := l.ui.RequestCell(ctx, Prompt{Mark: mark, FreeCells: l.engine.FreeCells()})
	if err != nil {
		return AwaitingHumanMove, fmt.Errorf("read cell: %w", err)
	}

	if err := l.engine.ApplyMove(input, mark); err != nil {
		if !errors.Is(err, ErrInvalidCell) {
			return AwaitingHumanMove, err
		}
		l.logger.Warn("Rejected move", "input", input, "error", err)
		l.notify(Event{Type: EventTypeInvalidMove, Input: input, Err: err})
		return AwaitingHumanMove, l.pause(ctx, l.delays.Retry)
	}

	// ApplyMove already accepted the label, so it parses.
	cell, _ := ParseCoord(input)
	l.logger.Info("Human moved", "cell", cell, "mark", mark)
	l.notify(Event{Type: EventTypeHumanMove, Cell: cell, Mark: mark})

	return l.evaluate(AwaitingComputerMove), nil
}

func (l *Loop) computerTurn(ctx context.Context) (State, error) {
	mark := l.engine.Assignment().Computer

	if l.engine.HasFreeCells() {
		cell := l.computer.ChooseCell(l.engine)
		if err := l.engine.Apply(cell, mark); err != nil {
			return AwaitingComputerMove, fmt.Errorf("computer move: %w", err)
		}
		l.logger.Info("Computer moved", "cell", cell, "mark", mark)
		l.notify(Event{Type: EventTypeComputerMove, Cell: cell, Mark: mark})
	}

	next := l.evaluate(AwaitingHumanMove)
	if next == AwaitingHumanMove {
		return next, l.pause(ctx, l.delays.Turn)
	}
	return next, nil
}

// evaluate recomputes the outcome after a move and picks the next state.
func (l *Loop) evaluate(next State) State {
	l.outcome = l.engine.Evaluate()
	if l.outcome.Terminal() {
		l.logger.Info("Game over", "status", l.outcome.Status, "winner", l.outcome.Winner, "moves", l.engine.Moves())
		return Terminal
	}
	return next
}

func (l *Loop) finish(ctx context.Context) (Outcome, error) {
	if err := l.pause(ctx, l.delays.Final); err != nil {
		return l.outcome, err
	}
	l.ui.Render(l.engine.Board(), l.outcome)
	return l.outcome, nil
}

func (l *Loop) notify(event Event) {
	if n, ok := l.ui.(Notifier); ok {
		n.Notify(event)
	}
}

// pause waits d on the loop clock. Zero or negative durations return immediately.
func (l *Loop) pause(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}

	done := make(chan struct{})
	timer := l.clock.AfterFunc(d, func() {
		close(done)
	}, "loop", "pause")
	defer timer.Stop()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
