// Package game implements tic-tac-toe for a human playing a random-move computer.
//
// Engine holds the state of a single game: the board, the set of free cells and
// the mark each side plays. It validates and applies moves and evaluates the
// outcome, and performs no I/O.
//
// # Basic Usage
//
//	assignment, _ := game.NewAssignment(game.X)
//	e := game.NewEngine(assignment)
//	if err := e.ApplyMove("b2", game.X); errors.Is(err, game.ErrInvalidCell) {
//	    // re-prompt
//	}
//	if out := e.Evaluate(); out.Terminal() {
//	    fmt.Println(out.Message())
//	}
//
// # Game Loop
//
// Loop drives a game through a Frontend (side prompt, cell input and renderer),
// moving through ChoosingSides, AwaitingHumanMove, AwaitingComputerMove and
// Terminal. The outcome is evaluated after every single move.
//
// # Deterministic Testing
//
// The computer draws from an injected *rand.Rand, so a fixed seed from
// internal/randutil reproduces a game, and pacing delays run on a quartz.Clock:
//
//	rng := randutil.New(42)
//	loop := game.NewLoop(ui, game.NewComputer(rng, logger), game.LoopOptions{
//	    Clock: quartz.NewMock(t),
//	})
package game
