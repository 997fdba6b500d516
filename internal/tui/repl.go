package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/sfm61319/dye/internal/config"
	"github.com/sfm61319/dye/internal/palette"
)

// ReplModel is the Bubble Tea model for the interactive session.
type ReplModel struct {
	input    textinput.Model
	eval     *Evaluator
	lines    []string // scrollback, newest last
	history  int      // max scrollback lines kept
	width    int
	height   int
	quitting bool
}

// NewReplModel creates a REPL model bound to the given palette store and
// configuration. The store may be nil; palette commands then report that the
// database is unavailable.
func NewReplModel(store *palette.Store, cfg config.Config) ReplModel {
	input := textinput.New()
	input.Prompt = promptStyle.Render(cfg.REPL.Prompt)
	input.Placeholder = "try: show windowsblue"
	input.Focus()

	history := cfg.REPL.HistorySize
	if history <= 0 {
		history = config.Default().REPL.HistorySize
	}

	return ReplModel{
		input:   input,
		eval:    NewEvaluator(store, cfg),
		history: history,
	}
}

// Init initializes the REPL model.
func (m ReplModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages for the REPL.
func (m ReplModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.quitting = true
			return m, tea.Quit

		case "enter":
			return m.submit()
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.input.Width = msg.Width - len(m.eval.Cfg.REPL.Prompt) - 1
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// submit evaluates the current input line and appends the result to the
// scrollback.
func (m ReplModel) submit() (tea.Model, tea.Cmd) {
	line := strings.TrimSpace(m.input.Value())
	m.input.Reset()

	if line == "" {
		return m, nil
	}
	if line == "quit" || line == "exit" {
		m.quitting = true
		return m, tea.Quit
	}

	m.lines = append(m.lines, promptStyle.Render(m.eval.Cfg.REPL.Prompt)+line)

	out, err := m.eval.Eval(line)
	if err != nil {
		m.lines = append(m.lines, errorStyle.Render(" "+err.Error()+" "))
	} else if out != "" {
		m.lines = append(m.lines, strings.Split(out, "\n")...)
	}

	if len(m.lines) > m.history {
		m.lines = m.lines[len(m.lines)-m.history:]
	}

	return m, nil
}

// View renders the REPL.
func (m ReplModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render("dye"))
	b.WriteString("\n\n")

	visible := m.lines
	if m.height > 0 {
		// Leave room for the title, input line and footer.
		budget := m.height - 6
		if budget < 0 {
			budget = 0
		}
		if len(visible) > budget {
			visible = visible[len(visible)-budget:]
		}
	}
	for _, line := range visible {
		b.WriteString(line)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.input.View())
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("Enter: run  |  help: commands  |  Esc: quit"))

	return b.String()
}

// RunRepl starts the interactive session on the local terminal and blocks
// until the user quits.
func RunRepl(store *palette.Store, cfg config.Config) error {
	p := tea.NewProgram(
		NewReplModel(store, cfg),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
