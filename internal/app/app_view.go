package app

import (
	"strconv"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/andyrewlee/gridpad/internal/keymap"
	"github.com/andyrewlee/gridpad/internal/messages"
	"github.com/andyrewlee/gridpad/internal/perf"
	"github.com/andyrewlee/gridpad/internal/ui/common"
	"github.com/andyrewlee/gridpad/internal/ui/compositor"
	"github.com/andyrewlee/gridpad/internal/ui/layout"
)

// Synchronized Output Mode 2026 sequences
// https://gist.github.com/christianparpart/d8a62cc1ab659194337d73e399004036
const (
	syncBegin = "\x1b[?2026h"
	syncEnd   = "\x1b[?2026l"
)

// View renders the application.
func (a *App) View() tea.View {
	defer perf.Time("view")()

	view := tea.View{
		AltScreen:       true,
		MouseMode:       tea.MouseModeCellMotion,
		BackgroundColor: common.ColorBackground(),
		ForegroundColor: common.ColorForeground(),
	}
	switch {
	case a.quitting:
		view.SetContent("Goodbye!\n")
	case !a.ready:
		view.SetContent("Loading...")
	default:
		view.SetContent(syncBegin + a.render() + syncEnd)
	}
	return view
}

// render composes the panes and then the popups on top of them.
func (a *App) render() string {
	layers := []*compositor.Layer{
		compositor.NewLayer(a.zone.Scan(a.renderToolbar()), 0, 0),
		layerAt(a.search.View(), a.layout.Search()),
		layerAt(a.grid.View(), a.layout.Grid()),
	}
	if a.layout.ShowSide() {
		layers = append(layers,
			layerAt(a.chart.View(), a.layout.Chart()),
			layerAt(a.renderTextPane("Keyed JSON", a.code.View(), a.layout.Code(), a.focusedPane == messages.PaneCode), a.layout.Code()),
		)
	}
	if a.layout.ShowConsole() {
		layers = append(layers,
			layerAt(a.renderTextPane("Console", a.console.View(), a.layout.Console(), a.focusedPane == messages.PaneConsole), a.layout.Console()),
		)
	}
	if help := a.layout.Help(); !help.Empty() && a.config.UI.ShowKeymapHints {
		layers = append(layers, layerAt(common.RenderHelpBar(a.styles, a.helpItems(), help.W), help))
	}

	// Overlays
	if dropdown := a.search.DropdownView(); dropdown != "" {
		x, y := a.dropdownOrigin()
		layers = append(layers, compositor.NewLayer(dropdown, x, y))
	}
	if a.menu.Visible() {
		a.menu.Fit(a.width, a.height)
		x, y := a.menu.Position()
		layers = append(layers, compositor.NewLayer(a.menu.View(), x, y))
	}
	if a.showHelp {
		layers = append(layers, a.helpOverlay())
	}
	if toast := a.toast.View(); toast != "" {
		x := max(0, a.width-lipgloss.Width(toast)-1)
		y := max(0, a.height-2)
		layers = append(layers, compositor.NewLayer(toast, x, y))
	}
	return a.screen.Render(a.width, a.height, layers...)
}

func layerAt(content string, r layout.Rect) *compositor.Layer {
	if r.Empty() {
		return nil
	}
	return compositor.NewLayer(content, r.X, r.Y)
}

func (a *App) renderToolbar() string {
	buttons := []struct {
		id    string
		label string
	}{
		{zoneCopyJSON, "[Copy JSON]"},
		{zoneExportRaw, "[Export raw]"},
		{zoneShowData, "[Show data]"},
	}
	parts := []string{a.styles.Title.Render(" gridpad")}
	for _, b := range buttons {
		parts = append(parts, a.zone.Mark(b.id, a.styles.Button.Render(b.label)))
	}
	if keyed, ok := a.store.Latest(); ok {
		parts = append(parts, a.styles.Muted.Render(pluralCells(keyed.Len())+" keyed"))
	}
	return strings.Join(parts, " ")
}

func pluralCells(n int) string {
	if n == 1 {
		return "1 cell"
	}
	return strconv.Itoa(n) + " cells"
}

func (a *App) renderTextPane(title, body string, r layout.Rect, focused bool) string {
	style := a.styles.Pane
	if focused {
		style = a.styles.FocusedPane
	}
	content := a.styles.PaneTitle.Render(title) + "\n" + body
	return style.
		Width(r.W).
		Height(r.H).
		MaxWidth(r.W).
		MaxHeight(r.H).
		Render(content)
}

func (a *App) helpItems() []common.HelpItem {
	item := func(action keymap.Action, desc string) common.HelpItem {
		return common.HelpItem{Key: keymap.PrimaryKey(keymap.BindingForAction(a.keymap, action)), Desc: desc}
	}
	return []common.HelpItem{
		item(keymap.ActionCopy, "copy"),
		item(keymap.ActionExportRaw, "export"),
		item(keymap.ActionShowKeyed, "show JSON"),
		item(keymap.ActionShowData, "data"),
		item(keymap.ActionSearch, "search"),
		item(keymap.ActionFocusNext, "pane"),
		item(keymap.ActionHelp, "help"),
		item(keymap.ActionTheme, "theme"),
		item(keymap.ActionQuit, "quit"),
	}
}

// helpOverlay lists every binding, grouped, centred on screen.
func (a *App) helpOverlay() *compositor.Layer {
	var b strings.Builder
	group := ""
	for _, info := range keymap.ActionInfos() {
		if info.Group != group {
			if group != "" {
				b.WriteString("\n")
			}
			group = info.Group
			b.WriteString(a.styles.Title.Render(group) + "\n")
		}
		hint := keymap.BindingHint(keymap.BindingForAction(a.keymap, info.Action))
		b.WriteString(a.styles.HelpKey.Render(padRight(hint, 12)) + a.styles.HelpDesc.Render(info.Desc) + "\n")
	}
	box := a.styles.Menu.Render(strings.TrimRight(b.String(), "\n"))
	w, h := lipgloss.Width(box), lipgloss.Height(box)
	return compositor.NewLayer(box, max(0, (a.width-w)/2), max(0, (a.height-h)/2))
}

func padRight(s string, width int) string {
	if n := lipgloss.Width(s); n < width {
		return s + strings.Repeat(" ", width-n)
	}
	return s
}
