package prompt

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/iksnae/arca-booking/internal"
)

var (
	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("62")).
			Bold(true)

	cursorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("212")).
			Bold(true)

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))
)

// TUI runs each question as a small bubbletea program
type TUI struct {
	in  io.Reader
	out io.Writer
}

// NewTUI creates a terminal UI prompter
func NewTUI(in io.Reader, out io.Writer) *TUI {
	return &TUI{in: in, out: out}
}

// Input implements internal.Prompter
func (t *TUI) Input(label string) (string, error) {
	return t.run(newInputModel(label, false))
}

// Password implements internal.Prompter
func (t *TUI) Password(label string) (string, error) {
	return t.run(newInputModel(label, true))
}

// Select implements internal.Prompter. Without choices it falls back to a
// free-text answer.
func (t *TUI) Select(label string, choices []internal.Choice) (string, error) {
	if len(choices) == 0 {
		return t.run(newInputModel(label, false))
	}
	return t.run(newSelectModel(label, choices))
}

type answerModel interface {
	tea.Model
	answer() string
}

func (t *TUI) run(m answerModel) (string, error) {
	final, err := tea.NewProgram(m, tea.WithInput(t.in), tea.WithOutput(t.out)).Run()
	if err != nil {
		return "", fmt.Errorf("prompt: %w", err)
	}
	return final.(answerModel).answer(), nil
}

// inputModel asks for a single line of text
type inputModel struct {
	label string
	input textinput.Model
	keys  keyMap
	value string
	done  bool
}

func newInputModel(label string, secret bool) inputModel {
	ti := textinput.New()
	ti.Prompt = ""
	ti.CharLimit = 256
	ti.Width = 40
	if secret {
		ti.EchoMode = textinput.EchoPassword
	}
	ti.Focus()
	return inputModel{label: label, input: ti, keys: defaultKeyMap()}
}

func (m inputModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m inputModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, m.keys.Submit):
			m.value = m.input.Value()
			m.done = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Cancel):
			m.value = ""
			m.done = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m inputModel) View() string {
	if m.done {
		return ""
	}
	return labelStyle.Render(m.label) + m.input.View() + "\n" +
		helpStyle.Render("enter confirm • esc skip") + "\n"
}

func (m inputModel) answer() string {
	return m.value
}

// selectModel picks one of a fixed list of choices
type selectModel struct {
	label   string
	choices []internal.Choice
	cursor  int
	keys    keyMap
	value   string
	done    bool
}

func newSelectModel(label string, choices []internal.Choice) selectModel {
	return selectModel{label: label, choices: choices, keys: defaultKeyMap()}
}

func (m selectModel) Init() tea.Cmd {
	return nil
}

func (m selectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(keyMsg, m.keys.Down):
		if m.cursor < len(m.choices)-1 {
			m.cursor++
		}
	case key.Matches(keyMsg, m.keys.Submit):
		m.value = m.choices[m.cursor].Value
		m.done = true
		return m, tea.Quit
	case key.Matches(keyMsg, m.keys.Cancel):
		m.value = ""
		m.done = true
		return m, tea.Quit
	}
	return m, nil
}

func (m selectModel) View() string {
	if m.done {
		return ""
	}

	var b strings.Builder
	b.WriteString(labelStyle.Render(m.label))
	b.WriteString("\n")
	for i, c := range m.choices {
		if i == m.cursor {
			b.WriteString(cursorStyle.Render("> " + c.Label))
		} else {
			b.WriteString("  " + c.Label)
		}
		b.WriteString("\n")
	}
	b.WriteString(helpStyle.Render("↑/↓ move • enter select • esc skip"))
	b.WriteString("\n")
	return b.String()
}

func (m selectModel) answer() string {
	return m.value
}
