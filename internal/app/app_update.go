package app

import (
	"fmt"
	"runtime/debug"

	tea "charm.land/bubbletea/v2"

	"github.com/andyrewlee/gridpad/internal/logging"
	"github.com/andyrewlee/gridpad/internal/messages"
	"github.com/andyrewlee/gridpad/internal/perf"
	"github.com/andyrewlee/gridpad/internal/ui/common"
)

// Update handles all messages with panic recovery.
func (a *App) Update(msg tea.Msg) (model tea.Model, cmd tea.Cmd) {
	defer func() {
		if r := recover(); r != nil {
			logging.Error("panic in app.Update: %v\n%s", r, debug.Stack())
			model = a
			cmd = common.ReportError("update", fmt.Errorf("internal error: %v", r), "")
		}
	}()
	return a.update(msg)
}

func (a *App) update(msg tea.Msg) (tea.Model, tea.Cmd) {
	defer perf.Time("update")()

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.handleWindowSize(msg.Width, msg.Height)
		return a, nil

	case tea.KeyPressMsg:
		return a, common.SafeCmd(a.handleKeyPress(msg))

	case tea.PasteMsg:
		return a, common.SafeCmd(a.handlePaste(msg))

	case tea.MouseClickMsg, tea.MouseMotionMsg, tea.MouseReleaseMsg, tea.MouseWheelMsg:
		return a, common.SafeCmd(a.handleMouseMsg(msg))

	case common.ToastDismissed:
		newToast, cmd := a.toast.Update(msg)
		a.toast = newToast
		return a, cmd

	case messages.Toast:
		return a, a.toast.ShowLevel(msg.Message, msg.Level)

	case messages.Error:
		if !msg.Logged {
			logging.Error("%s", msg.Error())
		}
		return a, nil

	case messages.FocusPane:
		return a, a.focusPane(msg.Pane)

	case messages.ToggleHelp:
		a.showHelp = !a.showHelp
		return a, nil

	case messages.SelectionStopped:
		a.handleSelectionStopped(msg)
		return a, nil

	case messages.CopyRequested:
		return a, common.SafeCmd(a.handleCopy())

	case messages.ClipboardWritten:
		return a, a.handleClipboardWritten(msg)

	case messages.PasteReceived:
		a.handlePasteReceived(msg)
		return a, nil

	case messages.ExportRequested:
		return a, common.SafeCmd(a.handleExport())

	case messages.Exported:
		return a, a.handleExported(msg)

	case messages.ShowKeyedRequested:
		return a, a.handleShowKeyed()

	case messages.ShowDataRequested:
		return a, a.handleShowData()

	case messages.ContextMenuOpen:
		cmd := a.menu.Open(msg.X, msg.Y)
		a.menu.Fit(a.width, a.height)
		return a, cmd

	case messages.ContextMenuSubmitted:
		logging.Info("You typed: %s", msg.Value)
		return a, a.toast.ShowInfo("You typed: " + msg.Value)

	case messages.ContextMenuClosed:
		return a, nil

	case messages.SuggestionChosen:
		logging.Debug("Suggestion chosen: %s", msg.Value)
		return a, nil

	case messages.PollTick:
		// The next tick is armed before the fetch so a slow or failed request
		// never stretches the period.
		return a, common.SafeBatch(a.startPollTicker(), a.fetchPoll())

	case messages.PollResult:
		a.handlePollResult(msg)
		return a, nil

	case messages.DataFileChanged:
		return a, common.SafeBatch(a.reloadData(msg.Path), a.waitForDataFile())

	case messages.DataReloaded:
		return a, a.handleDataReloaded(msg)

	case messages.ConsoleTick:
		a.refreshConsole()
		return a, a.startConsoleTicker()
	}
	return a, nil
}

func (a *App) handleWindowSize(width, height int) {
	a.ready = true
	a.width = width
	a.height = height
	a.layout.Resize(width, height)

	a.grid.SetSize(a.layout.Grid().W, a.layout.Grid().H)
	a.search.SetSize(a.layout.Search().W)
	if a.layout.ShowSide() {
		a.chart.SetSize(a.layout.Chart().W, a.layout.Chart().H)
		code := a.layout.Code().Inner()
		a.code.SetWidth(code.W)
		a.code.SetHeight(max(0, code.H-1))
	}
	if a.layout.ShowConsole() {
		console := a.layout.Console().Inner()
		a.console.SetWidth(console.W)
		a.console.SetHeight(max(0, console.H-1))
		a.consoleSeq = 0
		a.refreshConsole()
	}
}
