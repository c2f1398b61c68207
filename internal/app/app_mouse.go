package app

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/andyrewlee/gridpad/internal/messages"
	"github.com/andyrewlee/gridpad/internal/ui/layout"
)

// Toolbar button zone IDs.
const (
	zoneCopyJSON  = "toolbar-copy-json"
	zoneExportRaw = "toolbar-export-raw"
	zoneShowData  = "toolbar-show-data"
)

func (a *App) handleMouseMsg(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.MouseClickMsg:
		return a.routeMouseClick(msg)
	case tea.MouseMotionMsg:
		return a.routeMouseMotion(msg)
	case tea.MouseReleaseMsg:
		return a.routeMouseRelease(msg)
	case tea.MouseWheelMsg:
		return a.routeMouseWheel(msg)
	}
	return nil
}

func (a *App) routeMouseClick(msg tea.MouseClickMsg) tea.Cmd {
	if a.menu.Visible() {
		if !a.menu.Contains(msg.X, msg.Y) {
			a.menu.Close()
			return send(messages.ContextMenuClosed{})
		}
		return nil
	}

	if msg.Button == tea.MouseLeft {
		if i, ok := a.dropdownItemAt(msg.X, msg.Y); ok {
			return a.search.Choose(i)
		}
		if cmd := a.toolbarClick(msg.X, msg.Y); cmd != nil {
			return cmd
		}
	}

	gridRect := a.layout.Grid()
	if gridRect.Contains(msg.X, msg.Y) {
		if msg.Button == tea.MouseRight {
			return send(messages.ContextMenuOpen{X: msg.X, Y: msg.Y})
		}
		focusCmd := a.focusPane(messages.PaneGrid)
		return tea.Batch(focusCmd, a.updateGrid(localMouse(msg, gridRect)))
	}

	if msg.Button != tea.MouseLeft {
		return nil
	}
	for _, target := range []struct {
		rect layout.Rect
		pane messages.PaneType
	}{
		{a.layout.Search(), messages.PaneSearch},
		{a.layout.Chart(), messages.PaneChart},
		{a.layout.Code(), messages.PaneCode},
		{a.layout.Console(), messages.PaneConsole},
	} {
		if target.rect.Contains(msg.X, msg.Y) {
			return a.focusPane(target.pane)
		}
	}
	return nil
}

func (a *App) routeMouseMotion(msg tea.MouseMotionMsg) tea.Cmd {
	// Drags keep following the pointer outside the grid.
	if a.grid.Dragging() {
		return a.updateGrid(localMouse(msg, a.layout.Grid()))
	}
	chartRect := a.layout.Chart()
	if a.layout.ShowSide() && chartRect.Contains(msg.X, msg.Y) {
		newChart, cmd := a.chart.Update(localMouse(msg, chartRect))
		a.chart = newChart
		return cmd
	}
	a.chart.ClearHover()
	return nil
}

// routeMouseRelease ends a grid drag. Only a release over the grid counts as
// a selection stop.
func (a *App) routeMouseRelease(msg tea.MouseReleaseMsg) tea.Cmd {
	if !a.grid.Dragging() {
		return nil
	}
	gridRect := a.layout.Grid()
	if !gridRect.Contains(msg.X, msg.Y) {
		a.grid.EndDrag()
		return nil
	}
	return a.updateGrid(localMouse(msg, gridRect))
}

func (a *App) routeMouseWheel(msg tea.MouseWheelMsg) tea.Cmd {
	switch {
	case a.layout.Grid().Contains(msg.X, msg.Y):
		return a.updateGrid(localMouse(msg, a.layout.Grid()))
	case a.layout.ShowSide() && a.layout.Code().Contains(msg.X, msg.Y):
		var cmd tea.Cmd
		a.code, cmd = a.code.Update(msg)
		return cmd
	case a.layout.ShowConsole() && a.layout.Console().Contains(msg.X, msg.Y):
		var cmd tea.Cmd
		a.console, cmd = a.console.Update(msg)
		return cmd
	}
	return nil
}

func (a *App) updateGrid(msg tea.Msg) tea.Cmd {
	newGrid, cmd := a.grid.Update(msg)
	a.grid = newGrid
	return cmd
}

// localMouse shifts a mouse message into rect-relative coordinates.
func localMouse(msg tea.Msg, rect layout.Rect) tea.Msg {
	switch m := msg.(type) {
	case tea.MouseClickMsg:
		m.X, m.Y = rect.Local(m.X, m.Y)
		return m
	case tea.MouseMotionMsg:
		m.X, m.Y = rect.Local(m.X, m.Y)
		return m
	case tea.MouseReleaseMsg:
		m.X, m.Y = rect.Local(m.X, m.Y)
		return m
	case tea.MouseWheelMsg:
		m.X, m.Y = rect.Local(m.X, m.Y)
		return m
	}
	return msg
}

// dropdownOrigin is where the suggestion list is drawn: right under the
// search box.
func (a *App) dropdownOrigin() (int, int) {
	r := a.layout.Search()
	return r.X, r.Y + r.H
}

func (a *App) dropdownItemAt(x, y int) (int, bool) {
	if !a.search.Open() {
		return 0, false
	}
	ox, oy := a.dropdownOrigin()
	if x < ox || x >= ox+lipgloss.Width(a.search.DropdownView()) {
		return 0, false
	}
	return a.search.ItemAt(y - oy)
}

// toolbarClick maps a click on a toolbar button to its request.
func (a *App) toolbarClick(x, y int) tea.Cmd {
	switch {
	case a.zoneHit(zoneCopyJSON, x, y):
		return send(messages.ShowKeyedRequested{})
	case a.zoneHit(zoneExportRaw, x, y):
		return send(messages.ExportRequested{})
	case a.zoneHit(zoneShowData, x, y):
		return send(messages.ShowDataRequested{})
	}
	return nil
}

func (a *App) zoneHit(id string, x, y int) bool {
	z := a.zone.Get(id)
	if z.IsZero() {
		return false
	}
	return x >= z.StartX && x <= z.EndX && y >= z.StartY && y <= z.EndY
}
