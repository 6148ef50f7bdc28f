package prompt

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type textModel struct {
	base
	input    textinput.Model
	required bool
	validate func(string) error
	problem  string
	value    string
}

func newTextModel(b base, p TextPrompt, width int) textModel {
	ti := textinput.New()
	ti.Placeholder = p.Placeholder
	ti.PlaceholderStyle = b.styles.Placeholder
	ti.CharLimit = 256
	ti.Width = max(20, width-4)
	ti.SetValue(p.Default)
	ti.Focus()
	return textModel{base: b, input: ti, required: p.Required, validate: p.Validate}
}

func (m textModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m textModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, m.keys.Cancel):
			m.aborted = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Confirm):
			value := strings.TrimSpace(m.input.Value())
			if value == "" && m.required {
				m.problem = "an answer is required"
				return m, nil
			}
			if m.validate != nil {
				if err := m.validate(value); err != nil {
					m.problem = err.Error()
					return m, nil
				}
			}
			m.value = value
			m.done = true
			return m, tea.Quit
		}
		m.problem = ""
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m textModel) View() string {
	if m.done || m.aborted {
		return m.answered(m.value)
	}
	var b strings.Builder
	b.WriteString(m.styles.Prompt.Render("? "+m.label) + "\n")
	b.WriteString(m.input.View() + "\n")
	if m.problem != "" {
		b.WriteString(m.styles.Error.Render("✗ "+m.problem) + "\n")
	}
	b.WriteString(m.helpView(m.keys.Confirm, m.keys.Cancel) + "\n")
	return b.String()
}

type editorModel struct {
	base
	area  textarea.Model
	value string
}

func newEditorModel(b base, initial string, width int) editorModel {
	ta := textarea.New()
	ta.ShowLineNumbers = false
	ta.CharLimit = 0
	ta.SetWidth(max(20, width-4))
	ta.SetHeight(8)
	ta.SetValue(initial)
	ta.Focus()
	return editorModel{base: b, area: ta}
}

func (m editorModel) Init() tea.Cmd {
	return textarea.Blink
}

func (m editorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, m.keys.Cancel):
			m.aborted = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Submit):
			m.value = strings.TrimSpace(m.area.Value())
			m.done = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.area, cmd = m.area.Update(msg)
	return m, cmd
}

func (m editorModel) View() string {
	if m.done || m.aborted {
		lines := strings.Count(m.value, "\n") + 1
		summary := strings.SplitN(m.value, "\n", 2)[0]
		if lines > 1 {
			summary += m.styles.Muted.Render(" (+more lines)")
		}
		return m.answered(summary)
	}
	return m.styles.Prompt.Render("? "+m.label) + "\n" +
		m.area.View() + "\n" +
		m.helpView(m.keys.Submit, m.keys.Cancel) + "\n"
}

type confirmModel struct {
	base
	def   bool
	value bool
}

func newConfirmModel(b base, def bool) confirmModel {
	return confirmModel{base: b, def: def}
}

func (m confirmModel) Init() tea.Cmd { return nil }

func (m confirmModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	km, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch {
	case key.Matches(km, m.keys.Cancel):
		m.aborted = true
	case key.Matches(km, m.keys.Yes):
		m.value = true
	case key.Matches(km, m.keys.No):
		m.value = false
	case key.Matches(km, m.keys.Confirm):
		m.value = m.def
	default:
		return m, nil
	}
	m.done = !m.aborted
	return m, tea.Quit
}

func (m confirmModel) View() string {
	if m.done || m.aborted {
		answer := "No"
		if m.value {
			answer = "Yes"
		}
		return m.answered(answer)
	}
	hint := "(y/N)"
	if m.def {
		hint = "(Y/n)"
	}
	return m.styles.Prompt.Render("? "+m.label) + " " + m.styles.Muted.Render(hint) + "\n"
}
