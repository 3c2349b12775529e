package game

import "fmt"

// Status is the coarse state of a game.
type Status int

const (
	InProgress Status = iota
	Win
	Draw
)

// String returns the string representation of a status
func (s Status) String() string {
	switch s {
	case InProgress:
		return "in progress"
	case Win:
		return "win"
	case Draw:
		return "draw"
	default:
		return "unknown"
	}
}

// Outcome is the evaluated result of a board. Winner is only set when Status is Win.
type Outcome struct {
	Status Status
	Winner Mark
}

// Terminal reports whether the game is over.
func (o Outcome) Terminal() bool {
	return o.Status != InProgress
}

// Message returns the line shown to the player for this outcome.
func (o Outcome) Message() string {
	switch o.Status {
	case Win:
		return fmt.Sprintf("%s won!", o.Winner)
	case Draw:
		return "It's a draw!"
	default:
		return ""
	}
}
