package display

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/muesli/termenv"

	"github.com/lox/tictactoe/internal/game"
)

// Options configures a Terminal.
type Options struct {
	ClearScreen bool
	Color       bool
	Logger      *log.Logger
}

// Terminal is the line-based front end: it prompts on out, reads answers from
// in and redraws the board between turns.
type Terminal struct {
	in     *bufio.Reader
	out    io.Writer
	output *termenv.Output
	styles *Styles
	clear  bool
	logger *log.Logger
}

var (
	_ game.Frontend = (*Terminal)(nil)
	_ game.Notifier = (*Terminal)(nil)
)

// NewTerminal creates a terminal front end
func NewTerminal(in io.Reader, out io.Writer, opts Options) *Terminal {
	var termOpts []termenv.OutputOption
	if !opts.Color {
		termOpts = append(termOpts, termenv.WithProfile(termenv.Ascii))
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}

	return &Terminal{
		in:     bufio.NewReader(in),
		out:    out,
		output: termenv.NewOutput(out, termOpts...),
		styles: NewStyles(lipgloss.NewRenderer(out, termOpts...)),
		clear:  opts.ClearScreen,
		logger: opts.Logger.WithPrefix("terminal"),
	}
}

// RequestSide shows the title and instructions and asks which mark to play.
func (t *Terminal) RequestSide(ctx context.Context) (string, error) {
	t.header()
	fmt.Fprintln(t.out, t.styles.Info.Render("- This is a simple tic tac toe game (3x3)."))
	fmt.Fprintln(t.out, t.styles.Info.Render("- Cells are named by row and column, e.g. a1 or c3."))
	fmt.Fprintln(t.out, t.styles.Info.Render("- Good luck!"))
	fmt.Fprintln(t.out)
	fmt.Fprint(t.out, t.styles.Prompt.Render("Choose [x/o]: "))

	return t.readLine(ctx)
}

// RequestCell asks the human for a cell, listing the free ones.
func (t *Terminal) RequestCell(ctx context.Context, p game.Prompt) (string, error) {
	fmt.Fprintln(t.out)
	fmt.Fprint(t.out, t.styles.Prompt.Render(
		fmt.Sprintf("Your move (%s). Free cells %s: ", p.Mark, FreeCells(p.FreeCells))))

	line, err := t.readLine(ctx)
	if err != nil {
		return "", err
	}
	t.logger.Debug("Read cell", "input", line)
	return line, nil
}

// Render redraws the board, followed by the result once the game is over.
func (t *Terminal) Render(board game.Board, outcome game.Outcome) {
	t.header()
	fmt.Fprintln(t.out, t.styles.Board(board))
	if outcome.Terminal() {
		fmt.Fprintln(t.out, t.styles.Outcome(outcome))
		fmt.Fprintln(t.out)
	}
}

// Notify prints a one-line announcement for the event.
func (t *Terminal) Notify(event game.Event) {
	msg := event.Message()
	if msg == "" {
		return
	}
	fmt.Fprintln(t.out, t.styles.Event(event))
}

// Goodbye prints the farewell for a game that never started.
func (t *Terminal) Goodbye(err error) {
	fmt.Fprintln(t.out)
	if errors.Is(err, game.ErrInvalidSideChoice) {
		fmt.Fprintln(t.out, t.styles.Error.Render("Input not in choices [x/o]! Bye."))
	} else {
		fmt.Fprintln(t.out, t.styles.Info.Render("Bye."))
	}
	fmt.Fprintln(t.out)
}

func (t *Terminal) header() {
	if t.clear {
		t.output.ClearScreen()
	}
	fmt.Fprintln(t.out)
	fmt.Fprintln(t.out, t.styles.Header.Render("TIC TAC TOE"))
	fmt.Fprintln(t.out)
}

// readLine blocks until a full line is read or ctx is cancelled. A final line
// without a trailing newline is still returned.
func (t *Terminal) readLine(ctx context.Context) (string, error) {
	type result struct {
		line string
		err  error
	}

	ch := make(chan result, 1)
	go func() {
		line, err := t.in.ReadString('\n')
		ch <- result{line: line, err: err}
	}()

	select {
	case r := <-ch:
		if r.err != nil && (!errors.Is(r.err, io.EOF) || r.line == "") {
			return "", r.err
		}
		return strings.TrimSpace(r.line), nil
	case <-ctx.Done():
		return "", ctx.Err()
	}
}
