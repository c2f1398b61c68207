package app

import (
	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"

	"github.com/andyrewlee/gridpad/internal/messages"
)

func send(msg tea.Msg) tea.Cmd {
	return func() tea.Msg { return msg }
}

// handleKeyPress routes a key to the context menu, the search box, the global
// bindings or the focused pane, in that order.
func (a *App) handleKeyPress(msg tea.KeyPressMsg) tea.Cmd {
	if a.menu.Visible() {
		newMenu, cmd := a.menu.Update(msg)
		a.menu = newMenu
		return cmd
	}

	if key.Matches(msg, a.keymap.Quit) {
		a.quitting = true
		return tea.Quit
	}
	if key.Matches(msg, a.keymap.FocusNext) {
		return a.cycleFocus(1)
	}
	if key.Matches(msg, a.keymap.FocusPrev) {
		return a.cycleFocus(-1)
	}

	// The search box owns printable keys; only ctrl chords act globally there.
	if a.focusedPane == messages.PaneSearch {
		if msg.Mod&tea.ModCtrl != 0 && key.Matches(msg, a.keymap.Copy) {
			return send(messages.CopyRequested{})
		}
		if msg.Code == tea.KeyEscape && !a.search.Open() {
			return a.focusPane(messages.PaneGrid)
		}
		newSearch, cmd := a.search.Update(msg)
		a.search = newSearch
		return cmd
	}

	switch {
	case key.Matches(msg, a.keymap.Copy):
		return send(messages.CopyRequested{})
	case key.Matches(msg, a.keymap.Paste):
		return send(messages.PasteReceived{})
	case key.Matches(msg, a.keymap.ExportRaw):
		return send(messages.ExportRequested{})
	case key.Matches(msg, a.keymap.ShowKeyed):
		return send(messages.ShowKeyedRequested{})
	case key.Matches(msg, a.keymap.ShowData):
		return send(messages.ShowDataRequested{})
	case key.Matches(msg, a.keymap.Search):
		return a.focusPane(messages.PaneSearch)
	case key.Matches(msg, a.keymap.Help):
		a.showHelp = !a.showHelp
		return nil
	case key.Matches(msg, a.keymap.Theme):
		return a.cycleTheme()
	}

	switch a.focusedPane {
	case messages.PaneGrid:
		newGrid, cmd := a.grid.Update(msg)
		a.grid = newGrid
		return cmd
	case messages.PaneCode:
		var cmd tea.Cmd
		a.code, cmd = a.code.Update(msg)
		return cmd
	case messages.PaneConsole:
		var cmd tea.Cmd
		a.console, cmd = a.console.Update(msg)
		return cmd
	}
	return nil
}

// handlePaste sends bracketed paste text to the focused input, or treats it
// as a paste over the grid.
func (a *App) handlePaste(msg tea.PasteMsg) tea.Cmd {
	if a.menu.Visible() {
		newMenu, cmd := a.menu.Update(msg)
		a.menu = newMenu
		return cmd
	}
	if a.focusedPane == messages.PaneSearch {
		newSearch, cmd := a.search.Update(msg)
		a.search = newSearch
		return cmd
	}
	return send(messages.PasteReceived{Text: msg.Content})
}

func (a *App) visiblePanes() []messages.PaneType {
	panes := []messages.PaneType{messages.PaneGrid, messages.PaneSearch}
	if a.layout.ShowSide() {
		panes = append(panes, messages.PaneChart, messages.PaneCode)
	}
	if a.layout.ShowConsole() {
		panes = append(panes, messages.PaneConsole)
	}
	return panes
}

func (a *App) cycleFocus(step int) tea.Cmd {
	panes := a.visiblePanes()
	idx := 0
	for i, p := range panes {
		if p == a.focusedPane {
			idx = i
			break
		}
	}
	idx = (idx + step + len(panes)) % len(panes)
	return a.focusPane(panes[idx])
}

// focusPane moves keyboard focus. Only the grid and the search box track it.
func (a *App) focusPane(pane messages.PaneType) tea.Cmd {
	a.focusedPane = pane
	a.grid.Blur()
	a.search.Blur()
	switch pane {
	case messages.PaneGrid:
		a.grid.Focus()
	case messages.PaneSearch:
		return a.search.Focus()
	}
	return nil
}

// FocusedPane returns the pane with keyboard focus.
func (a *App) FocusedPane() messages.PaneType { return a.focusedPane }
