package game

import (
	"io"
	"math/rand/v2"

	"github.com/charmbracelet/log"
)

// Computer is the random-move opponent.
type Computer struct {
	rng    *rand.Rand
	logger *log.Logger
}

// NewComputer creates a computer player drawing from rng
func NewComputer(rng *rand.Rand, logger *log.Logger) *Computer {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Computer{
		rng:    rng,
		logger: logger.WithPrefix("computer"),
	}
}

// ChooseCell picks the computer's next cell. The engine must have a free cell.
func (c *Computer) ChooseCell(e *Engine) Coord {
	cell := e.ChooseRandomFreeCell(c.rng)
	c.logger.Debug("Chose cell", "cell", cell, "free", len(e.free))
	return cell
}
