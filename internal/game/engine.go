package game

import (
	"fmt"
	"math/rand/v2"
	"slices"
)

// Engine owns the state of a single game: the board, the cells still free and
// which mark each side plays. It performs no I/O. An Engine is single-use.
type Engine struct {
	board      Board
	free       []Coord
	assignment Assignment
	moves      int
}

// NewEngine creates an engine with an empty board and every cell free.
func NewEngine(assignment Assignment) *Engine {
	return &Engine{
		free:       AllCoords(),
		assignment: assignment,
	}
}

// ApplyMove decodes a raw cell label and places mark there.
// Any failure returns an error wrapping ErrInvalidCell and leaves the engine unchanged.
func (e *Engine) ApplyMove(label string, mark Mark) error {
	c, err := ParseCoord(label)
	if err != nil {
		return err
	}
	return e.Apply(c, mark)
}

// Apply places mark at c. The cell must currently be free.
func (e *Engine) Apply(c Coord, mark Mark) error {
	if !mark.IsPlayer() {
		return fmt.Errorf("%w: cannot place %s", ErrInvalidCell, mark)
	}

	idx := slices.Index(e.free, c)
	if idx < 0 {
		return fmt.Errorf("%w: %s is not free", ErrInvalidCell, c)
	}

	e.board[c.Row][c.Col] = mark
	e.free = slices.Delete(e.free, idx, idx+1)
	e.moves++
	return nil
}

// Evaluate derives the outcome from the current board. The first completed line
// wins (rows, then columns, then diagonals); a full board without one is a draw.
func (e *Engine) Evaluate() Outcome {
	if m, ok := e.board.completedLine(); ok {
		return Outcome{Status: Win, Winner: m}
	}
	if len(e.free) == 0 {
		return Outcome{Status: Draw}
	}
	return Outcome{Status: InProgress}
}

// ChooseRandomFreeCell picks a free cell uniformly at random.
// The caller must ensure at least one cell is free.
func (e *Engine) ChooseRandomFreeCell(rng *rand.Rand) Coord {
	return e.free[rng.IntN(len(e.free))]
}

// HasFreeCells reports whether any move is still possible.
func (e *Engine) HasFreeCells() bool {
	return len(e.free) > 0
}

// Board returns a copy of the board.
func (e *Engine) Board() Board {
	return e.board
}

// FreeCells returns a copy of the free cells in label order.
func (e *Engine) FreeCells() []Coord {
	return slices.Clone(e.free)
}

// Assignment returns the marks played by each side.
func (e *Engine) Assignment() Assignment {
	return e.assignment
}

// Moves returns the number of successful moves so far.
func (e *Engine) Moves() int {
	return e.moves
}
