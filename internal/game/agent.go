package game

import "context"

// Prompt is the context handed to the human when a cell is requested.
type Prompt struct {
	Mark      Mark
	FreeCells []Coord
}

// HumanInput supplies raw cell labels typed by the human. The engine validates them.
type HumanInput interface {
	RequestCell(ctx context.Context, prompt Prompt) (string, error)
}

// SidePrompt asks the human which mark to play. Anything other than x or o is fatal.
type SidePrompt interface {
	RequestSide(ctx context.Context) (string, error)
}

// Renderer displays the board and status. It never feeds back into engine state.
type Renderer interface {
	Render(board Board, outcome Outcome)
}

// Notifier is implemented by renderers that want to announce individual events
// such as "Computer chose: b2". The loop discovers it with a type assertion.
type Notifier interface {
	Notify(event Event)
}

// Frontend bundles the collaborators the loop needs from a user interface.
type Frontend interface {
	SidePrompt
	HumanInput
	Renderer
}
