package main

import (
	"fmt"
	"strings"

	"github.com/alexanderspevak/calculator"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// historyLimit bounds how many evaluated entries the view keeps.
const historyLimit = 10

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("62"))
	hintStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	exprStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	notationStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("99"))
	resultStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("35"))
	errorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
)

// entry is one evaluated expression in the session history.
type entry struct {
	src      string
	notation string
	result   string
	err      error
}

// model is the interactive calculator: a single-line input over a rolling
// history of results.
type model struct {
	input   textinput.Model
	history []entry
	cfg     config
	opts    []calculator.ParseOption
}

func newModel(cfg config, opts []calculator.ParseOption) model {
	ti := textinput.New()
	ti.Prompt = cfg.Prompt
	ti.Placeholder = "2+3*(4-1)"
	ti.CharLimit = 256
	ti.Focus()
	return model{input: ti, cfg: cfg, opts: opts}
}

func (m model) Init() tea.Cmd {
	return textinput.Blink
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyCtrlD, tea.KeyEsc:
			return m, tea.Quit
		case tea.KeyEnter:
			src := strings.TrimSpace(m.input.Value())
			if src == "" {
				return m, nil
			}
			m.history = append(m.history, m.eval(src))
			if len(m.history) > historyLimit {
				m.history = m.history[len(m.history)-historyLimit:]
			}
			m.input.Reset()
			return m, nil
		}
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// eval runs one expression through the calculator and records what the view
// needs to display.
func (m model) eval(src string) entry {
	e := entry{src: src}
	p, err := calculator.Parse(src, m.opts...)
	if err != nil {
		e.err = err
		return e
	}
	e.notation = p.String()
	e.result = fmt.Sprintf(m.cfg.Format, p.Eval())
	return e
}

func (m model) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Calculator"))
	b.WriteString("  ")
	b.WriteString(hintStyle.Render("Press Ctrl+C to exit"))
	b.WriteString("\n\n")
	for _, e := range m.history {
		b.WriteString(exprStyle.Render(e.src))
		b.WriteByte('\n')
		if e.err != nil {
			b.WriteString(errorStyle.Render(e.err.Error()))
			b.WriteString("\n\n")
			continue
		}
		if m.cfg.Echo {
			b.WriteString(notationStyle.Render("Notation: " + e.notation))
			b.WriteByte('\n')
		}
		b.WriteString(resultStyle.Render("Result: " + e.result))
		b.WriteString("\n\n")
	}
	b.WriteString(m.input.View())
	b.WriteByte('\n')
	return b.String()
}
