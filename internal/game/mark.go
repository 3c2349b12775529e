package game

import (
	"fmt"
	"strings"
)

// Mark is the symbol a player places in a cell. The zero value is an empty cell.
type Mark uint8

const (
	Empty Mark = iota
	X
	O
)

// String returns the string representation of a mark
func (m Mark) String() string {
	switch m {
	case X:
		return "X"
	case O:
		return "O"
	default:
		return "_"
	}
}

// IsPlayer reports whether m is X or O.
func (m Mark) IsPlayer() bool {
	return m == X || m == O
}

// Opponent returns the other player's mark. Empty has no opponent.
func (m Mark) Opponent() Mark {
	switch m {
	case X:
		return O
	case O:
		return X
	default:
		return Empty
	}
}

// ParseMark parses a side choice ("x" or "o", case-insensitive).
func ParseMark(s string) (Mark, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "x":
		return X, nil
	case "o":
		return O, nil
	default:
		return Empty, fmt.Errorf("%w: %q", ErrInvalidSideChoice, s)
	}
}

// Assignment fixes which mark the human and the computer play for a whole game.
type Assignment struct {
	Human    Mark
	Computer Mark
}

// NewAssignment gives the human the chosen mark and the computer the other one.
func NewAssignment(human Mark) (Assignment, error) {
	if !human.IsPlayer() {
		return Assignment{}, fmt.Errorf("%w: %s", ErrInvalidSideChoice, human)
	}
	return Assignment{Human: human, Computer: human.Opponent()}, nil
}
