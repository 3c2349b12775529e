package display

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/lox/tictactoe/internal/game"
)

// Styles contains styling for board and message rendering
type Styles struct {
	Header  lipgloss.Style
	Info    lipgloss.Style
	Prompt  lipgloss.Style
	Label   lipgloss.Style
	Grid    lipgloss.Style
	MarkX   lipgloss.Style
	MarkO   lipgloss.Style
	Empty   lipgloss.Style
	Success lipgloss.Style
	Error   lipgloss.Style
	Winner  lipgloss.Style
}

// NewStyles creates styles bound to a renderer, so colour is only emitted when
// the renderer's output supports it.
func NewStyles(r *lipgloss.Renderer) *Styles {
	return &Styles{
		Header: r.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1).
			Bold(true),
		Info:    r.NewStyle().Foreground(lipgloss.Color("#626262")),
		Prompt:  r.NewStyle().Foreground(lipgloss.Color("#04B575")).Bold(true),
		Label:   r.NewStyle().Foreground(lipgloss.Color("#FFD700")).Bold(true),
		Grid:    r.NewStyle().Foreground(lipgloss.Color("#626262")),
		MarkX:   r.NewStyle().Foreground(lipgloss.Color("#74B9FF")).Bold(true),
		MarkO:   r.NewStyle().Foreground(lipgloss.Color("#FF6B6B")).Bold(true),
		Empty:   r.NewStyle().Foreground(lipgloss.Color("#626262")),
		Success: r.NewStyle().Foreground(lipgloss.Color("#96CEB4")).Bold(true),
		Error:   r.NewStyle().Foreground(lipgloss.Color("#FF6B6B")).Bold(true),
		Winner:  r.NewStyle().Foreground(lipgloss.Color("#FFD700")).Bold(true),
	}
}

// Mark renders a single cell value
func (s *Styles) Mark(m game.Mark) string {
	switch m {
	case game.X:
		return s.MarkX.Render(m.String())
	case game.O:
		return s.MarkO.Render(m.String())
	default:
		return s.Empty.Render(m.String())
	}
}

// Board renders the grid with column labels 1-3 across the top and row labels
// a-c down the side:
//
//	    1   2   3
//	a | X | _ | O |
//	b | _ | X | _ |
//	c | _ | _ | O |
func (s *Styles) Board(b game.Board) string {
	var sb strings.Builder
	sb.WriteString("   ")
	for c := range game.Size {
		sb.WriteString(" ")
		sb.WriteString(s.Label.Render(game.ColLabel(c)))
		sb.WriteString("  ")
	}
	sb.WriteString("\n")

	bar := s.Grid.Render("|")
	for r := range game.Size {
		sb.WriteString(s.Label.Render(game.RowLabel(r)))
		sb.WriteString(" ")
		sb.WriteString(bar)
		for c := range game.Size {
			fmt.Fprintf(&sb, " %s %s", s.Mark(b[r][c]), bar)
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

// Outcome renders the status line for a finished game.
func (s *Styles) Outcome(o game.Outcome) string {
	switch o.Status {
	case game.Win:
		return s.Winner.Render(o.Message())
	case game.Draw:
		return s.Success.Render(o.Message())
	default:
		return ""
	}
}

// Event renders an event line.
func (s *Styles) Event(e game.Event) string {
	if e.Type == game.EventTypeInvalidMove {
		return s.Error.Render(e.Message())
	}
	return s.Info.Render(e.Message())
}

// FreeCells renders the free cells as "[a1 a3 b2]".
func FreeCells(cells []game.Coord) string {
	labels := make([]string, len(cells))
	for i, c := range cells {
		labels[i] = c.String()
	}
	return "[" + strings.Join(labels, " ") + "]"
}
