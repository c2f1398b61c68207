// Package search is the autocomplete input with its suggestion dropdown.
package search

import (
	"strings"

	"charm.land/bubbles/v2/key"
	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"

	"github.com/andyrewlee/gridpad/internal/messages"
	"github.com/andyrewlee/gridpad/internal/suggest"
	"github.com/andyrewlee/gridpad/internal/ui/common"
)

var (
	nextKey   = key.NewBinding(key.WithKeys("down", "ctrl+n"))
	prevKey   = key.NewBinding(key.WithKeys("up", "ctrl+p"))
	chooseKey = key.NewBinding(key.WithKeys("enter"))
	closeKey  = key.NewBinding(key.WithKeys("esc"))
)

// Model is the Bubbletea model for the search box
type Model struct {
	input  textinput.Model
	source *suggest.Source

	suggestions []string
	active      int

	focused bool
	width   int
	styles  common.Styles
}

// New creates a search box over source.
func New(source *suggest.Source) *Model {
	ti := textinput.New()
	ti.Placeholder = "Search fruit..."
	ti.CharLimit = 100
	ti.SetWidth(30)
	return &Model{
		input:  ti,
		source: source,
		styles: common.DefaultStyles(),
	}
}

// SetStyles updates the styles (for theme changes).
func (m *Model) SetStyles(styles common.Styles) { m.styles = styles }

// SetSize sets the outer box width.
func (m *Model) SetSize(width int) {
	m.width = width
	m.input.SetWidth(max(1, width-4-len(m.input.Prompt)))
}

// Focus sets the focus state
func (m *Model) Focus() tea.Cmd {
	m.focused = true
	return m.input.Focus()
}

// Blur removes focus and closes the dropdown.
func (m *Model) Blur() {
	m.focused = false
	m.input.Blur()
	m.suggestions = nil
}

// Focused returns whether the search box is focused
func (m *Model) Focused() bool { return m.focused }

// Value returns the input text.
func (m *Model) Value() string { return m.input.Value() }

// Suggestions returns the visible suggestions.
func (m *Model) Suggestions() []string { return append([]string(nil), m.suggestions...) }

// Active returns the highlighted suggestion index.
func (m *Model) Active() int { return m.active }

// Open reports whether the dropdown is showing.
func (m *Model) Open() bool { return len(m.suggestions) > 0 }

// ItemAt maps a row of the dropdown box (border included) to a suggestion
// index.
func (m *Model) ItemAt(row int) (int, bool) {
	i := row - 1
	if !m.Open() || i < 0 || i >= len(m.suggestions) {
		return 0, false
	}
	return i, true
}

// Choose fills the input with suggestion i and closes the dropdown.
func (m *Model) Choose(i int) tea.Cmd {
	if i < 0 || i >= len(m.suggestions) {
		return nil
	}
	value := m.suggestions[i]
	m.input.SetValue(value)
	m.input.CursorEnd()
	m.suggestions = nil
	m.active = 0
	return func() tea.Msg { return messages.SuggestionChosen{Value: value} }
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (*Model, tea.Cmd) {
	if !m.focused {
		return m, nil
	}
	if msg, ok := msg.(tea.KeyPressMsg); ok && m.Open() {
		switch {
		case key.Matches(msg, nextKey):
			m.active = (m.active + 1) % len(m.suggestions)
			return m, nil
		case key.Matches(msg, prevKey):
			m.active = (m.active - 1 + len(m.suggestions)) % len(m.suggestions)
			return m, nil
		case key.Matches(msg, chooseKey):
			return m, m.Choose(m.active)
		case key.Matches(msg, closeKey):
			m.suggestions = nil
			return m, nil
		}
	}

	switch msg.(type) {
	case tea.KeyPressMsg, tea.PasteMsg:
		before := m.input.Value()
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		if m.input.Value() != before {
			m.refresh()
		}
		return m, cmd
	}
	return m, nil
}

func (m *Model) refresh() {
	m.suggestions = m.source.Filter(m.input.Value())
	m.active = 0
}

// View renders the input box, border included.
func (m *Model) View() string {
	style := m.styles.Pane
	if m.focused {
		style = m.styles.FocusedPane
	}
	return style.Width(m.width).Render(" " + m.input.View())
}

// DropdownView renders the suggestion list, or "" when closed.
func (m *Model) DropdownView() string {
	if !m.Open() {
		return ""
	}
	width := max(8, m.width-4)
	lines := make([]string, len(m.suggestions))
	for i, s := range m.suggestions {
		text := " " + s + strings.Repeat(" ", max(0, width-len([]rune(s))-1))
		style := m.styles.Suggestion
		if i == m.active {
			style = m.styles.ActiveSuggestion
		}
		lines[i] = style.Render(text)
	}
	return m.styles.Menu.Padding(0).Render(strings.Join(lines, "\n"))
}
