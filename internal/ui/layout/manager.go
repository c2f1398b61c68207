package layout

// LayoutMode determines how many panes are visible
type LayoutMode int

const (
	LayoutTwoColumn LayoutMode = iota // Grid column + chart/code column
	LayoutOneColumn                   // Grid only
)

// Rect is a pane's outer box in screen cells, borders included.
type Rect struct {
	X, Y int
	W, H int
}

// Empty reports whether the rect has no area.
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// Inner returns the content area inside a one-cell border.
func (r Rect) Inner() Rect {
	in := Rect{X: r.X + 1, Y: r.Y + 1, W: r.W - 2, H: r.H - 2}
	if in.W < 0 {
		in.W = 0
	}
	if in.H < 0 {
		in.H = 0
	}
	return in
}

// Contains reports whether the screen point lies inside the rect.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Local converts a screen point into coordinates relative to the rect.
func (r Rect) Local(x, y int) (int, int) {
	return x - r.X, y - r.Y
}

// Manager handles the pane layout
type Manager struct {
	mode LayoutMode

	totalWidth  int
	totalHeight int

	toolbar Rect
	search  Rect
	grid    Rect
	chart   Rect
	code    Rect
	console Rect
	help    Rect

	// Configuration
	minGridWidth  int
	minSideWidth  int
	maxSideWidth  int
	searchHeight  int
	minConsole    int
	maxConsole    int
	minChartRows  int
	consoleCutoff int
}

// NewManager creates a new layout manager
func NewManager() *Manager {
	return &Manager{
		minGridWidth:  40,
		minSideWidth:  36,
		maxSideWidth:  72,
		searchHeight:  3,
		minConsole:    4,
		maxConsole:    8,
		minChartRows:  10,
		consoleCutoff: 16,
	}
}

// Resize recalculates layout based on new dimensions
func (m *Manager) Resize(width, height int) {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	m.totalWidth = width
	m.totalHeight = height

	m.toolbar = Rect{X: 0, Y: 0, W: width, H: min(1, height)}
	m.help = Rect{}
	if height > 1 {
		m.help = Rect{X: 0, Y: height - 1, W: width, H: 1}
	}

	bodyTop := m.toolbar.H
	bodyH := height - m.toolbar.H - m.help.H
	if bodyH < 0 {
		bodyH = 0
	}

	consoleH := 0
	if bodyH >= m.consoleCutoff {
		consoleH = clamp(bodyH/4, m.minConsole, m.maxConsole)
	}
	mainH := bodyH - consoleH
	m.console = Rect{X: 0, Y: bodyTop + mainH, W: width, H: consoleH}

	if width >= m.minGridWidth+m.minSideWidth {
		m.mode = LayoutTwoColumn
	} else {
		m.mode = LayoutOneColumn
	}

	gridW := width
	if m.mode == LayoutTwoColumn {
		sideW := clamp(width*2/5, m.minSideWidth, m.maxSideWidth)
		gridW = width - sideW

		chartH := mainH * 3 / 5
		if chartH < m.minChartRows {
			chartH = min(m.minChartRows, mainH)
		}
		m.chart = Rect{X: gridW, Y: bodyTop, W: sideW, H: chartH}
		m.code = Rect{X: gridW, Y: bodyTop + chartH, W: sideW, H: mainH - chartH}
	} else {
		m.chart = Rect{}
		m.code = Rect{}
	}

	searchH := min(m.searchHeight, mainH)
	m.search = Rect{X: 0, Y: bodyTop, W: gridW, H: searchH}
	m.grid = Rect{X: 0, Y: bodyTop + searchH, W: gridW, H: mainH - searchH}
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

// Mode returns the current layout mode
func (m *Manager) Mode() LayoutMode {
	return m.mode
}

// Width returns the total width
func (m *Manager) Width() int { return m.totalWidth }

// Height returns the total height
func (m *Manager) Height() int { return m.totalHeight }

// Toolbar returns the button row.
func (m *Manager) Toolbar() Rect { return m.toolbar }

// Search returns the autocomplete input box.
func (m *Manager) Search() Rect { return m.search }

// Grid returns the sheet pane.
func (m *Manager) Grid() Rect { return m.grid }

// Chart returns the chart pane. It is empty in one-column mode.
func (m *Manager) Chart() Rect { return m.chart }

// Code returns the keyed JSON pane. It is empty in one-column mode.
func (m *Manager) Code() Rect { return m.code }

// Console returns the log pane. It is empty on short terminals.
func (m *Manager) Console() Rect { return m.console }

// Help returns the bottom hint row.
func (m *Manager) Help() Rect { return m.help }

// ShowSide returns whether the chart and code panes are shown
func (m *Manager) ShowSide() bool {
	return m.mode == LayoutTwoColumn
}

// ShowConsole returns whether the console pane is shown
func (m *Manager) ShowConsole() bool {
	return !m.console.Empty()
}
