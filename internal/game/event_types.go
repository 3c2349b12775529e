package game

import "fmt"

// EventType represents a game event type with type safety
type EventType string

// EventType constants for things a front end may want to announce
const (
	EventTypeInvalidMove   EventType = "invalid_move"
	EventTypeHumanMove     EventType = "human_move"
	EventTypeComputerMove  EventType = "computer_move"
	EventTypeSidesAssigned EventType = "sides_assigned"
)

// String returns the string representation of the event type
func (et EventType) String() string {
	return string(et)
}

// Event describes something that happened during the loop. Cell and Mark are
// set for moves; Input and Err are set for rejected input.
type Event struct {
	Type  EventType
	Cell  Coord
	Mark  Mark
	Input string
	Err   error
}

// Message returns the line a front end prints for the event.
func (e Event) Message() string {
	switch e.Type {
	case EventTypeInvalidMove:
		return "Err: Wrong input, Try again."
	case EventTypeHumanMove:
		return fmt.Sprintf("You chose: %s", e.Cell)
	case EventTypeComputerMove:
		return fmt.Sprintf("Computer chose: %s", e.Cell)
	case EventTypeSidesAssigned:
		return fmt.Sprintf("You play %s, the computer plays %s.", e.Mark, e.Mark.Opponent())
	default:
		return ""
	}
}
