package game

import (
	"errors"
	"fmt"
)

// Errors returned by engine and loop operations.
var (
	// ErrInvalidCell is recoverable: the caller re-prompts and the turn does not advance.
	ErrInvalidCell = errors.New("invalid cell")

	// ErrInvalidSideChoice is fatal and only ever produced before a game exists.
	ErrInvalidSideChoice = errors.New("input not in choices [x/o]")
)

// StartupError is returned by Loop.Run when the game could not be started at all.
// The binary treats it as unrecoverable and exits without playing.
type StartupError struct {
	Err error
}

func (e *StartupError) Error() string {
	return fmt.Sprintf("startup: %v", e.Err)
}

func (e *StartupError) Unwrap() error {
	return e.Err
}
