package gridview

import (
	"strconv"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"

	"github.com/andyrewlee/gridpad/internal/grid"
)

// View renders the pane, border included.
func (m *Model) View() string {
	if m.width <= 2*borderSize || m.height <= 2*borderSize {
		return ""
	}
	w, h := m.contentSize()
	lines := make([]string, 0, h)
	lines = append(lines, m.renderHeader(w))
	for i := 0; i < h-1; i++ {
		row := m.rowOffset + i
		if row >= m.sheet.Rows() {
			lines = append(lines, strings.Repeat(" ", w))
			continue
		}
		lines = append(lines, m.renderRow(row, w))
	}

	style := m.styles.Pane
	if m.focused {
		style = m.styles.FocusedPane
	}
	return style.Render(strings.Join(lines, "\n"))
}

func (m *Model) renderHeader(width int) string {
	var b strings.Builder
	if gw := m.gutterWidth(); gw > 0 {
		b.WriteString(m.styles.GridRowNumber.Render(strings.Repeat(" ", gw)))
	}
	for c := m.colOffset; c < m.sheet.Cols() && c < m.colOffset+m.visibleCols(); c++ {
		b.WriteString(m.styles.GridHeader.Render(fit(m.sheet.Header(c), m.colWidth)))
		b.WriteByte(' ')
	}
	return fitLine(b.String(), width)
}

func (m *Model) renderRow(row, width int) string {
	var b strings.Builder
	if gw := m.gutterWidth(); gw > 0 {
		num := strconv.Itoa(row + 1)
		b.WriteString(m.styles.GridRowNumber.Render(runewidth.FillLeft(num, gw-1) + " "))
	}
	cursor, hasCursor := m.sel.Cursor()
	for c := m.colOffset; c < m.sheet.Cols() && c < m.colOffset+m.visibleCols(); c++ {
		p := grid.Pos{Row: row, Col: c}
		cell := m.sheet.At(p)
		text := fit(cell.String(), m.colWidth)

		var style lipgloss.Style
		switch {
		case hasCursor && p == cursor:
			style = m.styles.GridCursor
		case m.sel.Contains(p):
			style = m.styles.GridSelected
		case cell.IsEmpty():
			style = m.styles.GridEmpty
		default:
			style = m.styles.GridCell
		}
		b.WriteString(style.Render(text))
		b.WriteByte(' ')
	}
	return fitLine(b.String(), width)
}

// fit truncates or pads s to exactly width display cells.
func fit(s string, width int) string {
	if runewidth.StringWidth(s) > width {
		s = runewidth.Truncate(s, width, "…")
	}
	return runewidth.FillRight(s, width)
}

// fitLine truncates or pads a styled line to width display cells.
func fitLine(line string, width int) string {
	if ansi.StringWidth(line) > width {
		return ansi.Truncate(line, width, "")
	}
	return line + strings.Repeat(" ", width-ansi.StringWidth(line))
}
