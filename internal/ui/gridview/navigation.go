package gridview

import (
	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"

	"github.com/andyrewlee/gridpad/internal/grid"
)

func (m *Model) handleKey(msg tea.KeyPressMsg) tea.Cmd {
	km := m.keymap
	switch {
	case key.Matches(msg, km.ExtendUp):
		return m.extendBy(-1, 0)
	case key.Matches(msg, km.ExtendDown):
		return m.extendBy(1, 0)
	case key.Matches(msg, km.ExtendLeft):
		return m.extendBy(0, -1)
	case key.Matches(msg, km.ExtendRight):
		return m.extendBy(0, 1)
	case key.Matches(msg, km.GridUp):
		return m.moveBy(-1, 0)
	case key.Matches(msg, km.GridDown):
		return m.moveBy(1, 0)
	case key.Matches(msg, km.GridLeft):
		return m.moveBy(0, -1)
	case key.Matches(msg, km.GridRight):
		return m.moveBy(0, 1)
	case key.Matches(msg, km.ClearSelection):
		m.sel.Clear()
	}
	return nil
}

// moveBy collapses the selection to the single cell next to the cursor.
func (m *Model) moveBy(dRow, dCol int) tea.Cmd {
	if m.sheet.Rows() == 0 || m.sheet.Cols() == 0 {
		return nil
	}
	cur, ok := m.sel.Cursor()
	target := grid.Pos{}
	if ok {
		target = m.sheet.Clamp(grid.Pos{Row: cur.Row + dRow, Col: cur.Col + dCol})
	}
	m.sel.Begin(target, false)
	m.sel.Finish()
	m.ensureVisible(target)
	return m.selectionStopped()
}

// extendBy moves the head of the active range.
func (m *Model) extendBy(dRow, dCol int) tea.Cmd {
	if m.sheet.Rows() == 0 || m.sheet.Cols() == 0 {
		return nil
	}
	cur, ok := m.sel.Cursor()
	if !ok {
		return m.moveBy(0, 0)
	}
	target := m.sheet.Clamp(grid.Pos{Row: cur.Row + dRow, Col: cur.Col + dCol})
	m.sel.Extend(target)
	m.ensureVisible(target)
	return m.selectionStopped()
}

func (m *Model) scrollRows(delta int) {
	m.rowOffset = clamp(m.rowOffset+delta, 0, max(0, m.sheet.Rows()-m.visibleRows()))
}

func (m *Model) scrollCols(delta int) {
	m.colOffset = clamp(m.colOffset+delta, 0, max(0, m.sheet.Cols()-m.visibleCols()))
}

func (m *Model) ensureVisible(p grid.Pos) {
	rows, cols := m.visibleRows(), m.visibleCols()
	if p.Row < m.rowOffset {
		m.rowOffset = p.Row
	} else if rows > 0 && p.Row >= m.rowOffset+rows {
		m.rowOffset = p.Row - rows + 1
	}
	if p.Col < m.colOffset {
		m.colOffset = p.Col
	} else if cols > 0 && p.Col >= m.colOffset+cols {
		m.colOffset = p.Col - cols + 1
	}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
