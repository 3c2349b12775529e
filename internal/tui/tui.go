package tui

import (
	"fmt"
	"strings"
	"sync"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/lox/tictactoe/internal/display"
	"github.com/lox/tictactoe/internal/game"
)

type phase int

const (
	phaseWaiting phase = iota
	phaseSide
	phaseCell
	phaseOver
)

// Messages sent into the program by the Bridge.
type (
	sidePromptMsg struct{}
	cellPromptMsg struct{ prompt game.Prompt }
	boardMsg      struct {
		board   game.Board
		outcome game.Outcome
	}
	eventMsg    struct{ event game.Event }
	gameOverMsg struct{ err error }
)

// Model is the Bubble Tea model for a single game. It never touches the
// engine: it draws what the Bridge sends it and hands typed answers back.
type Model struct {
	styles *display.Styles
	logger *log.Logger

	// UI components
	logViewport viewport.Model
	input       textinput.Model

	// State
	board    game.Board
	outcome  game.Outcome
	prompt   game.Prompt
	phase    phase
	events   []game.Event
	finalErr error

	answers  chan<- string
	quit     chan struct{}
	quitOnce sync.Once
	quitting bool

	// Dimensions
	width  int
	height int
}

func newModel(logger *log.Logger, answers chan<- string, quit chan struct{}) *Model {
	vp := viewport.New(30, 7)
	vp.SetContent("")

	ti := textinput.New()
	ti.Placeholder = "x or o"
	ti.Focus()
	ti.CharLimit = 16
	ti.Width = 20
	ti.PromptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#04B575")).Bold(true)
	ti.TextStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FAFAFA"))
	ti.Prompt = "> "

	return &Model{
		styles:      display.NewStyles(lipgloss.DefaultRenderer()),
		logger:      logger.WithPrefix("tui"),
		logViewport: vp,
		input:       ti,
		answers:     answers,
		quit:        quit,
	}
}

// Init initializes the TUI model
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages in the TUI
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.logger.Debug("Updating dimensions", "width", m.width, "height", m.height)

	case sidePromptMsg:
		m.phase = phaseSide
		m.input.Placeholder = "x or o"
		m.input.SetValue("")

	case cellPromptMsg:
		m.phase = phaseCell
		m.prompt = msg.prompt
		m.input.Placeholder = "cell, e.g. b2"
		m.input.SetValue("")

	case boardMsg:
		m.board = msg.board
		m.outcome = msg.outcome

	case eventMsg:
		m.events = append(m.events, msg.event)
		m.refreshLog()

	case gameOverMsg:
		m.phase = phaseOver
		m.finalErr = msg.err
		m.input.Blur()

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, m.shutdown()
		case "enter":
			switch m.phase {
			case phaseOver:
				return m, m.shutdown()
			case phaseSide, phaseCell:
				m.submit(strings.TrimSpace(m.input.Value()))
				m.input.SetValue("")
				return m, nil
			}
		case "pgup":
			m.logViewport.HalfPageUp()
		case "pgdown":
			m.logViewport.HalfPageDown()
		}
	}

	var cmd tea.Cmd
	if m.phase == phaseSide || m.phase == phaseCell {
		m.input, cmd = m.input.Update(msg)
		cmds = append(cmds, cmd)
	}

	m.logViewport, cmd = m.logViewport.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

// submit hands an answer to the waiting Bridge. The channel holds one answer
// and only one prompt is ever outstanding, so this never blocks the UI.
func (m *Model) submit(value string) {
	select {
	case m.answers <- value:
		m.phase = phaseWaiting
	default:
		m.logger.Warn("Dropped input, no prompt waiting", "input", value)
	}
}

func (m *Model) shutdown() tea.Cmd {
	m.quitting = true
	m.quitOnce.Do(func() { close(m.quit) })
	return tea.Sequence(tea.ClearScreen, tea.Quit)
}

func (m *Model) refreshLog() {
	lines := make([]string, 0, len(m.events))
	for _, e := range m.events {
		if e.Message() != "" {
			lines = append(lines, m.styles.Event(e))
		}
	}
	m.logViewport.SetContent(strings.Join(lines, "\n"))
	m.logViewport.GotoBottom()
}

// View renders the TUI
func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	header := m.styles.Header.Render("TIC TAC TOE")

	boardContent := m.styles.Board(m.board) + "\n" + m.renderStatus()
	boardPane := BoardPaneStyle.Render(boardContent)

	logWidth := 30
	if m.width > 0 {
		logWidth = max(20, m.width-lipgloss.Width(boardPane)-4)
	}
	m.logViewport.Width = logWidth
	m.logViewport.Height = max(3, lipgloss.Height(boardContent))
	logPane := LogPaneStyle.Render(m.logViewport.View())

	topRow := lipgloss.JoinHorizontal(lipgloss.Top, boardPane, logPane)

	inputWidth := lipgloss.Width(topRow) - 2
	inputPane := InputPaneStyle.Width(max(1, inputWidth)).Render(m.renderInputPane())

	return lipgloss.JoinVertical(lipgloss.Left, header, topRow, inputPane)
}

// renderStatus describes whose turn it is, or the result once the game ends
func (m *Model) renderStatus() string {
	switch {
	case m.outcome.Terminal():
		return m.styles.Outcome(m.outcome)
	case m.phase == phaseOver && m.finalErr != nil:
		return m.styles.Error.Render(m.finalErr.Error())
	case m.phase == phaseSide:
		return StatusStyle.Render("Choose your side")
	case m.phase == phaseCell:
		return StatusStyle.Render(fmt.Sprintf("Your move (%s)", m.prompt.Mark))
	default:
		return StatusStyle.Render("Waiting...")
	}
}

// renderInputPane renders the prompt, input field and key help
func (m *Model) renderInputPane() string {
	var content strings.Builder

	switch m.phase {
	case phaseSide:
		content.WriteString(m.styles.Prompt.Render("Choose [x/o]:"))
		content.WriteString("\n")
		content.WriteString(m.input.View())
		content.WriteString("\n")
		content.WriteString(HelpStyle.Render("Enter to submit • Esc to quit"))
	case phaseCell:
		content.WriteString(m.styles.Prompt.Render("Free cells " + display.FreeCells(m.prompt.FreeCells)))
		content.WriteString("\n")
		content.WriteString(m.input.View())
		content.WriteString("\n")
		content.WriteString(HelpStyle.Render("Enter to submit • PgUp/PgDn scroll log • Esc to quit"))
	case phaseOver:
		content.WriteString(HelpStyle.Render("Press enter to exit"))
	default:
		content.WriteString(HelpStyle.Render("Ctrl+C to quit"))
	}

	return content.String()
}

// Events returns the events the model has logged, oldest first
func (m *Model) Events() []game.Event {
	return append([]game.Event(nil), m.events...)
}
