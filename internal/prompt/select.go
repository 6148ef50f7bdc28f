package prompt

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// visibleItems bounds how many rows a list shows at once.
const visibleItems = 10

type selectModel struct {
	base
	items    []Item
	multi    bool
	cursor   int
	offset   int
	selected map[int]bool
}

func newSelectModel(b base, items []Item, multi bool) selectModel {
	m := selectModel{base: b, items: items, multi: multi, selected: make(map[int]bool)}
	for i, it := range items {
		if it.Selected && !it.Disabled {
			m.selected[i] = true
		}
	}
	m.cursor = m.next(-1, 1)
	if m.cursor < 0 {
		m.cursor = 0
	}
	return m
}

// next returns the first enabled item after from in direction dir, or -1.
func (m selectModel) next(from, dir int) int {
	for i := from + dir; i >= 0 && i < len(m.items); i += dir {
		if !m.items[i].Disabled {
			return i
		}
	}
	return -1
}

func (m *selectModel) moveTo(i int) {
	if i < 0 {
		return
	}
	m.cursor = i
	if m.cursor < m.offset {
		m.offset = m.cursor
	}
	if m.cursor >= m.offset+visibleItems {
		m.offset = m.cursor - visibleItems + 1
	}
}

func (m selectModel) chosen() []int {
	var out []int
	for i := range m.items {
		if m.selected[i] {
			out = append(out, i)
		}
	}
	return out
}

func (m selectModel) Init() tea.Cmd { return nil }

func (m selectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	km, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch {
	case key.Matches(km, m.keys.Cancel):
		m.aborted = true
		return m, tea.Quit
	case key.Matches(km, m.keys.Up):
		m.moveTo(m.next(m.cursor, -1))
	case key.Matches(km, m.keys.Down):
		m.moveTo(m.next(m.cursor, 1))
	case key.Matches(km, m.keys.Top):
		m.moveTo(m.next(-1, 1))
	case key.Matches(km, m.keys.Bottom):
		m.moveTo(m.next(len(m.items), -1))
	case m.multi && key.Matches(km, m.keys.Toggle):
		if m.cursor < len(m.items) && !m.items[m.cursor].Disabled {
			m.selected[m.cursor] = !m.selected[m.cursor]
		}
	case m.multi && key.Matches(km, m.keys.SelectAll):
		all := true
		for i, it := range m.items {
			if !it.Disabled && !m.selected[i] {
				all = false
				break
			}
		}
		for i, it := range m.items {
			if !it.Disabled {
				m.selected[i] = !all
			}
		}
	case key.Matches(km, m.keys.Confirm):
		if !m.multi && (m.cursor >= len(m.items) || m.items[m.cursor].Disabled) {
			return m, nil
		}
		m.done = true
		return m, tea.Quit
	}
	return m, nil
}

func (m selectModel) View() string {
	if m.done || m.aborted {
		if !m.multi {
			if m.aborted {
				return m.answered("")
			}
			return m.answered(m.items[m.cursor].Label)
		}
		var labels []string
		for _, i := range m.chosen() {
			labels = append(labels, m.items[i].Label)
		}
		if len(labels) == 0 {
			return m.answered("none")
		}
		return m.answered(strings.Join(labels, ", "))
	}

	var b strings.Builder
	b.WriteString(m.styles.Prompt.Render("? "+m.label) + "\n")
	end := min(len(m.items), m.offset+visibleItems)
	for i := m.offset; i < end; i++ {
		it := m.items[i]
		pointer := "  "
		if i == m.cursor {
			pointer = m.styles.Cursor.Render("> ")
		}
		label := it.Label
		if m.multi {
			box := "[ ]"
			if m.selected[i] {
				box = "[x]"
			}
			label = box + " " + label
		}
		switch {
		case it.Disabled:
			label = m.styles.Muted.Render(label)
		case i == m.cursor || m.selected[i]:
			label = m.styles.Selected.Render(label)
		}
		if it.Note != "" {
			label += " " + m.styles.Muted.Render(it.Note)
		}
		b.WriteString(pointer + label + "\n")
	}
	if len(m.items) > visibleItems {
		b.WriteString(m.styles.Muted.Render(fmt.Sprintf("  %d-%d of %d", m.offset+1, end, len(m.items))) + "\n")
	}
	if m.multi {
		b.WriteString(m.helpView(m.keys.Up, m.keys.Down, m.keys.Toggle, m.keys.SelectAll, m.keys.Confirm, m.keys.Cancel) + "\n")
	} else {
		b.WriteString(m.helpView(m.keys.Up, m.keys.Down, m.keys.Confirm, m.keys.Cancel) + "\n")
	}
	return b.String()
}
