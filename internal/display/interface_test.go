package display

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/tictactoe/internal/game"
	"github.com/lox/tictactoe/internal/randutil"
)

func newTestTerminal(input string) (*Terminal, *bytes.Buffer) {
	var out bytes.Buffer
	logger := log.NewWithOptions(io.Discard, log.Options{})
	return NewTerminal(strings.NewReader(input), &out, Options{Logger: logger}), &out
}

func TestRequestSide(t *testing.T) {
	term, out := newTestTerminal("X\n")

	side, err := term.RequestSide(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "X", side)
	assert.Contains(t, out.String(), "TIC TAC TOE")
	assert.Contains(t, out.String(), "Choose [x/o]: ")
}

func TestRequestCellListsFreeCells(t *testing.T) {
	term, out := newTestTerminal("  b2  \n")

	cell, err := term.RequestCell(context.Background(), game.Prompt{
		Mark:      game.O,
		FreeCells: []game.Coord{game.MustParseCoord("a1"), game.MustParseCoord("b2")},
	})
	require.NoError(t, err)

	assert.Equal(t, "b2", cell)
	assert.Contains(t, out.String(), "Your move (O). Free cells [a1 b2]: ")
}

func TestReadLineWithoutTrailingNewline(t *testing.T) {
	term, _ := newTestTerminal("c3")

	cell, err := term.RequestCell(context.Background(), game.Prompt{Mark: game.X})
	require.NoError(t, err)
	assert.Equal(t, "c3", cell)

	_, err = term.RequestCell(context.Background(), game.Prompt{Mark: game.X})
	assert.ErrorIs(t, err, io.EOF)
}

func TestReadLineHonoursContext(t *testing.T) {
	r, w := io.Pipe()
	defer w.Close()

	var out bytes.Buffer
	term := NewTerminal(r, &out, Options{})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := term.RequestSide(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRenderBoard(t *testing.T) {
	term, out := newTestTerminal("")

	var b game.Board
	b[0][0] = game.X
	b[1][1] = game.O
	b[2][2] = game.X
	term.Render(b, game.Outcome{Status: game.InProgress})

	lines := strings.Split(out.String(), "\n")
	assert.Contains(t, lines, "    1   2   3  ")
	assert.Contains(t, lines, "a | X | _ | _ |")
	assert.Contains(t, lines, "b | _ | O | _ |")
	assert.Contains(t, lines, "c | _ | _ | X |")
	assert.NotContains(t, out.String(), "won!")
}

func TestRenderFinalOutcome(t *testing.T) {
	term, out := newTestTerminal("")
	term.Render(game.Board{}, game.Outcome{Status: game.Win, Winner: game.O})
	assert.Contains(t, out.String(), "O won!")

	term, out = newTestTerminal("")
	term.Render(game.Board{}, game.Outcome{Status: game.Draw})
	assert.Contains(t, out.String(), "It's a draw!")
}

func TestNotify(t *testing.T) {
	term, out := newTestTerminal("")

	term.Notify(game.Event{Type: game.EventTypeHumanMove, Cell: game.MustParseCoord("a1"), Mark: game.X})
	term.Notify(game.Event{Type: game.EventTypeComputerMove, Cell: game.MustParseCoord("c2"), Mark: game.O})
	term.Notify(game.Event{Type: game.EventTypeInvalidMove, Input: "zz"})
	term.Notify(game.Event{Type: "unknown"})

	assert.Equal(t, "You chose: a1\nComputer chose: c2\nErr: Wrong input, Try again.\n", out.String())
}

func TestGoodbye(t *testing.T) {
	term, out := newTestTerminal("")
	term.Goodbye(&game.StartupError{Err: game.ErrInvalidSideChoice})
	assert.Contains(t, out.String(), "Input not in choices [x/o]! Bye.")
}

// TestTerminalPlaysFullGame drives a whole game through the line-based front end.
// The human tries every cell in label order; cells already taken are rejected
// and re-prompted, so nine answers always finish the game.
func TestTerminalPlaysFullGame(t *testing.T) {
	input := "x\n" + strings.Join([]string{"a1", "a2", "a3", "b1", "b2", "b3", "c1", "c2", "c3"}, "\n") + "\n"

	for seed := range int64(20) {
		term, out := newTestTerminal(input)
		logger := log.NewWithOptions(io.Discard, log.Options{})
		loop := game.NewLoop(term, game.NewComputer(randutil.New(seed), logger), game.LoopOptions{
			Clock:  quartz.NewMock(t),
			Logger: logger,
		})

		outcome, err := loop.Run(context.Background())
		require.NoError(t, err, "seed %d", seed)
		require.True(t, outcome.Terminal())

		assert.Contains(t, out.String(), "You chose: a1")
		assert.Contains(t, out.String(), outcome.Message())
	}
}
