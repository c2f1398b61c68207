// Package gridview renders the sheet and turns mouse and keyboard gestures
// into selections.
package gridview

import (
	tea "charm.land/bubbletea/v2"

	"github.com/andyrewlee/gridpad/internal/config"
	"github.com/andyrewlee/gridpad/internal/grid"
	"github.com/andyrewlee/gridpad/internal/keymap"
	"github.com/andyrewlee/gridpad/internal/messages"
	"github.com/andyrewlee/gridpad/internal/selection"
	"github.com/andyrewlee/gridpad/internal/ui/common"
)

// borderSize is the pane border width on each side.
const borderSize = 1

// Model is the Bubbletea model for the grid pane
type Model struct {
	sheet *grid.Sheet
	sel   grid.Selector

	// UI state
	focused   bool
	width     int
	height    int
	rowOffset int
	colOffset int

	colWidth       int
	showRowNumbers bool

	keymap keymap.KeyMap
	styles common.Styles
}

// New creates a grid pane showing sheet.
func New(sheet *grid.Sheet, cfg config.GridConfig, km keymap.KeyMap) *Model {
	if sheet == nil {
		sheet = grid.NewSheet(nil, nil)
	}
	colWidth := cfg.ColumnWidth
	if colWidth < 3 {
		colWidth = 3
	}
	return &Model{
		sheet:          sheet,
		colWidth:       colWidth,
		showRowNumbers: cfg.ShowRowNumbers,
		keymap:         km,
		styles:         common.DefaultStyles(),
	}
}

// SetStyles updates the styles (for theme changes).
func (m *Model) SetStyles(styles common.Styles) { m.styles = styles }

// SetSize sets the outer pane size, borders included.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	if cur, ok := m.sel.Cursor(); ok {
		m.ensureVisible(cur)
	}
}

// Focus sets the focus state
func (m *Model) Focus() { m.focused = true }

// Blur removes focus
func (m *Model) Blur() { m.focused = false }

// Focused returns whether the pane is focused
func (m *Model) Focused() bool { return m.focused }

// Sheet returns the displayed sheet.
func (m *Model) Sheet() *grid.Sheet { return m.sheet }

// SetSheet replaces the sheet and clears the selection.
func (m *Model) SetSheet(sheet *grid.Sheet) {
	if sheet == nil {
		sheet = grid.NewSheet(nil, nil)
	}
	m.sheet = sheet
	m.sel.Clear()
	m.rowOffset = 0
	m.colOffset = 0
}

// Selected returns the raw current selection.
func (m *Model) Selected() selection.Selection {
	return m.sel.Cells(m.sheet)
}

// HasSelection reports whether any range is selected.
func (m *Model) HasSelection() bool { return !m.sel.Empty() }

// Dragging reports whether a mouse selection is in progress.
func (m *Model) Dragging() bool { return m.sel.Dragging() }

// EndDrag stops a mouse selection without reporting a selection stop. The
// ranges stay highlighted.
func (m *Model) EndDrag() { m.sel.Finish() }

// Ranges returns the selected ranges.
func (m *Model) Ranges() []grid.Range { return m.sel.Ranges() }

// Update handles messages. Mouse coordinates are relative to the pane's
// outer box.
func (m *Model) Update(msg tea.Msg) (*Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.MouseClickMsg:
		if msg.Button != tea.MouseLeft {
			return m, nil
		}
		p, ok := m.CellAt(msg.X, msg.Y)
		if !ok {
			return m, nil
		}
		m.sel.Begin(p, msg.Mod&tea.ModCtrl != 0)
		return m, nil

	case tea.MouseMotionMsg:
		if !m.sel.Dragging() {
			return m, nil
		}
		m.sel.Extend(m.dragTarget(msg.X, msg.Y))
		if cur, ok := m.sel.Cursor(); ok {
			m.ensureVisible(cur)
		}
		return m, nil

	case tea.MouseReleaseMsg:
		if !m.sel.Finish() {
			return m, nil
		}
		return m, m.selectionStopped()

	case tea.MouseWheelMsg:
		delta := common.ScrollDeltaForHeight(m.visibleRows(), 5)
		switch msg.Button {
		case tea.MouseWheelUp:
			m.scrollRows(-delta)
		case tea.MouseWheelDown:
			m.scrollRows(delta)
		case tea.MouseWheelLeft:
			m.scrollCols(-1)
		case tea.MouseWheelRight:
			m.scrollCols(1)
		}
		return m, nil

	case tea.KeyPressMsg:
		if !m.focused {
			return m, nil
		}
		return m, m.handleKey(msg)
	}
	return m, nil
}

func (m *Model) selectionStopped() tea.Cmd {
	cells := m.Selected()
	return func() tea.Msg {
		return messages.SelectionStopped{Cells: cells}
	}
}
