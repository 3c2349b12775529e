package tui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/lox/tictactoe/internal/game"
)

// ErrQuit is returned from a pending prompt when the user closes the TUI.
var ErrQuit = errors.New("user quit")

// Sender delivers messages to a running program. *tea.Program satisfies it.
type Sender interface {
	Send(msg tea.Msg)
}

// Bridge connects the game loop to the Bubble Tea model. Prompts are sent to
// the program as messages and answers come back on a channel.
type Bridge struct {
	sender  Sender
	answers chan string
	quit    chan struct{}
	logger  *log.Logger
}

var (
	_ game.Frontend = (*Bridge)(nil)
	_ game.Notifier = (*Bridge)(nil)
)

// New creates a model and the bridge that drives it. Call Attach with the
// program running the model before starting the game loop.
func New(logger *log.Logger) (*Model, *Bridge) {
	answers := make(chan string, 1)
	quit := make(chan struct{})

	b := &Bridge{
		answers: answers,
		quit:    quit,
		logger:  logger.WithPrefix("bridge"),
	}
	return newModel(logger, answers, quit), b
}

// Attach sets the program that receives display messages
func (b *Bridge) Attach(s Sender) {
	b.sender = s
}

// RequestSide asks the model for x or o and waits for the answer
func (b *Bridge) RequestSide(ctx context.Context) (string, error) {
	b.sender.Send(sidePromptMsg{})
	return b.await(ctx)
}

// RequestCell asks the model for a cell label and waits for the answer
func (b *Bridge) RequestCell(ctx context.Context, p game.Prompt) (string, error) {
	b.sender.Send(cellPromptMsg{prompt: p})
	return b.await(ctx)
}

// Render sends the current board to the model
func (b *Bridge) Render(board game.Board, outcome game.Outcome) {
	b.sender.Send(boardMsg{board: board, outcome: outcome})
}

// Notify appends an event to the model's log pane
func (b *Bridge) Notify(event game.Event) {
	b.sender.Send(eventMsg{event: event})
}

// Done tells the model the loop has finished so it can offer to exit
func (b *Bridge) Done(err error) {
	b.sender.Send(gameOverMsg{err: err})
}

func (b *Bridge) await(ctx context.Context) (string, error) {
	select {
	case answer := <-b.answers:
		b.logger.Debug("Received input", "input", answer)
		return answer, nil
	case <-b.quit:
		return "", ErrQuit
	case <-ctx.Done():
		return "", ctx.Err()
	}
}
