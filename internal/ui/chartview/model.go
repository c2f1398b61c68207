// Package chartview shows the line chart in a pane and a tooltip for the
// point under the mouse.
package chartview

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/andyrewlee/gridpad/internal/chart"
	"github.com/andyrewlee/gridpad/internal/ui/common"
)

const borderSize = 1

// Model is the Bubbletea model for the chart pane
type Model struct {
	spec   chart.Spec
	frame  chart.Frame
	hover  *chart.Marker
	width  int
	height int
	styles common.Styles
}

// New creates a chart pane for spec.
func New(spec chart.Spec) *Model {
	return &Model{spec: spec, styles: common.DefaultStyles()}
}

// SetStyles updates the styles (for theme changes).
func (m *Model) SetStyles(styles common.Styles) { m.styles = styles }

// SetSize sets the outer pane size and re-lays the chart.
func (m *Model) SetSize(width, height int) {
	if width == m.width && height == m.height {
		return
	}
	m.width, m.height = width, height
	m.frame = chart.Render(m.spec, max(0, width-2*borderSize), max(0, height-2*borderSize))
	m.hover = nil
}

// Hovered returns the point under the mouse, if any.
func (m *Model) Hovered() (chart.Point, bool) {
	if m.hover == nil {
		return chart.Point{}, false
	}
	return m.hover.Point, true
}

// ClearHover hides the tooltip.
func (m *Model) ClearHover() { m.hover = nil }

// Update handles messages. Mouse coordinates are relative to the pane's
// outer box.
func (m *Model) Update(msg tea.Msg) (*Model, tea.Cmd) {
	if msg, ok := msg.(tea.MouseMotionMsg); ok {
		m.hoverAt(msg.X-borderSize, msg.Y-borderSize)
	}
	return m, nil
}

func (m *Model) hoverAt(col, row int) {
	if mk, ok := m.frame.MarkerAt(col, row); ok {
		m.hover = &mk
		return
	}
	m.hover = nil
}

// View renders the pane, border included.
func (m *Model) View() string {
	if len(m.frame.Lines) == 0 {
		return ""
	}
	w := m.width - 2*borderSize
	tipRow, tipCol, tip := -1, 0, ""
	if m.hover != nil {
		tip = chart.Tooltip(m.hover.Point)
		tipRow, tipCol = m.tooltipPosition(len(tip)+2, w)
	}

	lines := make([]string, len(m.frame.Lines))
	for i, line := range m.frame.Lines {
		if i == 0 {
			lines[i] = m.styles.ChartTitle.Render(line)
			continue
		}
		runes := []rune(line)
		if i != tipRow {
			lines[i] = m.styleRuns(runes)
			continue
		}
		end := min(len(runes), tipCol+len(tip)+2)
		lines[i] = m.styleRuns(runes[:tipCol]) + m.styles.Tooltip.Render(tip) + m.styleRuns(runes[end:])
	}
	return m.styles.Pane.Render(strings.Join(lines, "\n"))
}

// tooltipPosition places a tooltip of width tw beside the hovered marker,
// on the row above it when there is one.
func (m *Model) tooltipPosition(tw, width int) (row, col int) {
	row = m.hover.Row - 1
	if row < 1 {
		row = m.hover.Row + 1
	}
	col = m.hover.Col + 2
	if col+tw > width {
		col = m.hover.Col - tw - 1
	}
	return row, max(0, col)
}

type runeClass int

const (
	classText runeClass = iota
	classCurve
	classPoint
	classAxis
)

func classify(r rune) runeClass {
	switch {
	case r >= 0x2800 && r <= 0x28ff:
		return classCurve
	case r == '●':
		return classPoint
	case r >= 0x2500 && r <= 0x257f:
		return classAxis
	default:
		return classText
	}
}

func (m *Model) styleFor(c runeClass) lipgloss.Style {
	switch c {
	case classCurve:
		return m.styles.ChartCurve
	case classPoint:
		return m.styles.ChartPoint
	case classAxis:
		return m.styles.ChartAxis
	default:
		return m.styles.Body
	}
}

// styleRuns colors consecutive runes of the same class together.
func (m *Model) styleRuns(runes []rune) string {
	var b strings.Builder
	start := 0
	for i := 1; i <= len(runes); i++ {
		if i < len(runes) && classify(runes[i]) == classify(runes[start]) {
			continue
		}
		b.WriteString(m.styleFor(classify(runes[start])).Render(string(runes[start:i])))
		start = i
	}
	return b.String()
}
