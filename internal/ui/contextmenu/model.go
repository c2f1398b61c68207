// Package contextmenu is the grid's right-click menu: a single text input.
package contextmenu

import (
	"charm.land/bubbles/v2/key"
	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/andyrewlee/gridpad/internal/messages"
	"github.com/andyrewlee/gridpad/internal/ui/common"
)

const inputWidth = 24

var (
	submitKey = key.NewBinding(key.WithKeys("enter"))
	cancelKey = key.NewBinding(key.WithKeys("esc"))
)

// Model is the Bubbletea model for the context menu
type Model struct {
	input   textinput.Model
	visible bool
	x, y    int
	styles  common.Styles
}

// New creates a hidden context menu.
func New() *Model {
	ti := textinput.New()
	ti.Placeholder = "Type here..."
	ti.CharLimit = 200
	ti.SetWidth(inputWidth)
	return &Model{input: ti, styles: common.DefaultStyles()}
}

// SetStyles updates the styles (for theme changes).
func (m *Model) SetStyles(styles common.Styles) { m.styles = styles }

// Open shows an empty menu at screen position (x, y).
func (m *Model) Open(x, y int) tea.Cmd {
	m.visible = true
	m.x, m.y = x, y
	m.input.SetValue("")
	return m.input.Focus()
}

// Close hides the menu.
func (m *Model) Close() {
	m.visible = false
	m.input.Blur()
}

// Visible reports whether the menu is showing.
func (m *Model) Visible() bool { return m.visible }

// Position returns the menu's top-left screen position.
func (m *Model) Position() (int, int) { return m.x, m.y }

// Fit moves the menu so it lies within a width x height screen.
func (m *Model) Fit(width, height int) {
	if !m.visible {
		return
	}
	view := m.View()
	w, h := lipgloss.Width(view), lipgloss.Height(view)
	m.x = max(0, min(m.x, width-w))
	m.y = max(0, min(m.y, height-h))
}

// Contains reports whether the screen point lies on the menu.
func (m *Model) Contains(x, y int) bool {
	if !m.visible {
		return false
	}
	view := m.View()
	w, h := lipgloss.Width(view), lipgloss.Height(view)
	return x >= m.x && x < m.x+w && y >= m.y && y < m.y+h
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (*Model, tea.Cmd) {
	if !m.visible {
		return m, nil
	}
	if msg, ok := msg.(tea.KeyPressMsg); ok {
		switch {
		case key.Matches(msg, submitKey):
			value := m.input.Value()
			m.Close()
			return m, func() tea.Msg { return messages.ContextMenuSubmitted{Value: value} }
		case key.Matches(msg, cancelKey):
			m.Close()
			return m, func() tea.Msg { return messages.ContextMenuClosed{} }
		}
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View renders the menu box.
func (m *Model) View() string {
	if !m.visible {
		return ""
	}
	body := lipgloss.JoinVertical(lipgloss.Left,
		m.styles.Muted.Render("Type something:"),
		m.input.View(),
	)
	return m.styles.Menu.Render(body)
}
