package app

import (
	"encoding/json"
	"fmt"

	tea "charm.land/bubbletea/v2"

	"github.com/andyrewlee/gridpad/internal/export"
	"github.com/andyrewlee/gridpad/internal/grid"
	"github.com/andyrewlee/gridpad/internal/logging"
	"github.com/andyrewlee/gridpad/internal/messages"
	"github.com/andyrewlee/gridpad/internal/perf"
	"github.com/andyrewlee/gridpad/internal/poll"
	"github.com/andyrewlee/gridpad/internal/selection"
	"github.com/andyrewlee/gridpad/internal/ui/common"
)

// handleSelectionStopped keys the finished selection and replaces the cached
// result.
func (a *App) handleSelectionStopped(msg messages.SelectionStopped) {
	keyed := selection.Key(msg.Cells)
	a.store.Set(keyed)
	if out, err := keyed.Compact(); err == nil {
		logging.Debug("Keyed selection: %s", out)
	}
}

// handleCopy puts the cached keyed selection on the clipboard. Without one it
// does nothing.
func (a *App) handleCopy() tea.Cmd {
	keyed, ok := a.store.Latest()
	if !ok {
		return nil
	}
	text, err := keyed.Compact()
	if err != nil {
		return common.ReportError("copy", err, "Copy failed")
	}
	logging.Info("Copy detected")
	clip := a.clipboard
	return func() tea.Msg {
		err := clip.WriteAll(text)
		return messages.ClipboardWritten{Bytes: len(text), Err: err}
	}
}

func (a *App) handleClipboardWritten(msg messages.ClipboardWritten) tea.Cmd {
	if msg.Err != nil {
		return common.ReportError("clipboard", msg.Err, "Failed to copy to clipboard")
	}
	return a.toast.ShowSuccess("Copied keyed JSON to clipboard")
}

// handlePasteReceived logs the raw selection, like the grid's paste hook.
func (a *App) handlePasteReceived(msg messages.PasteReceived) {
	data, err := json.Marshal(a.grid.Selected())
	if err != nil {
		logging.WithError(err, "encode selection")
		return
	}
	if msg.Text != "" {
		logging.Debug("Pasted %d bytes", len(msg.Text))
	}
	logging.Info("Paste detected: %s", data)
}

// handleExport writes the raw selection, nulls included, off the update loop.
func (a *App) handleExport() tea.Cmd {
	cells := a.grid.Selected()
	dir := a.config.Paths.ExportDir
	return func() tea.Msg {
		path, err := export.WriteRaw(dir, cells)
		return messages.Exported{Path: path, Err: err}
	}
}

func (a *App) handleExported(msg messages.Exported) tea.Cmd {
	if msg.Err != nil {
		return common.ReportError("export", msg.Err, "Export failed")
	}
	logging.Info("Exported selection to %s", msg.Path)
	return a.toast.ShowSuccess("Saved " + msg.Path)
}

// handleShowKeyed renders the cached keyed selection in the code pane.
func (a *App) handleShowKeyed() tea.Cmd {
	keyed, ok := a.store.Latest()
	if !ok {
		return nil
	}
	text, err := keyed.Indented()
	if err != nil {
		return common.ReportError("show keyed", err, "")
	}
	a.keyedJSON = text
	a.code.SetContent(common.HighlightJSON(text))
	a.code.GotoTop()
	return nil
}

// KeyedJSON returns the text shown in the code pane.
func (a *App) KeyedJSON() string { return a.keyedJSON }

func (a *App) handleShowData() tea.Cmd {
	data, err := a.grid.Sheet().MarshalJSON()
	if err != nil {
		return common.ReportError("show data", err, "")
	}
	logging.Info("Grid data: %s", data)
	return nil
}

func (a *App) fetchPoll() tea.Cmd {
	client := a.poller
	ctx := a.supervisor.Context()
	return func() tea.Msg {
		return messages.PollResult{Result: client.Fetch(ctx)}
	}
}

// handlePollResult logs the outcome. Poll results never touch selection state.
func (a *App) handlePollResult(msg messages.PollResult) {
	perf.Count("poll", 1)
	line := poll.LogLine(msg.Result)
	if msg.Result.Err != nil {
		logging.Error("%s", line)
		return
	}
	logging.Info("%s", line)
}

func (a *App) reloadData(path string) tea.Cmd {
	return func() tea.Msg {
		sheet, err := grid.LoadFile(path)
		return messages.DataReloaded{Path: path, Sheet: sheet, Err: err}
	}
}

// handleDataReloaded swaps in the new sheet. The cached keyed selection stays
// until the next selection stop.
func (a *App) handleDataReloaded(msg messages.DataReloaded) tea.Cmd {
	if msg.Err != nil {
		return common.ReportError("reload data", msg.Err, fmt.Sprintf("Could not reload %s", msg.Path))
	}
	a.grid.SetSheet(msg.Sheet)
	logging.Info("Reloaded %s", msg.Path)
	return a.toast.ShowInfo("Data reloaded")
}

func (a *App) refreshConsole() {
	if !a.layout.ShowConsole() {
		return
	}
	seq := logging.Seq()
	if seq == a.consoleSeq {
		return
	}
	a.consoleSeq = seq
	entries := logging.Recent(consoleHistory)
	lines := make([]string, len(entries))
	for i, e := range entries {
		lines[i] = e.Line()
	}
	a.console.SetContentLines(lines)
	a.console.GotoBottom()
}

// cycleTheme switches to the next palette and saves it to the config file.
func (a *App) cycleTheme() tea.Cmd {
	next := common.NextTheme(common.CurrentTheme().ID)
	common.SetCurrentTheme(next)
	a.config.UI.Theme = string(next)
	a.styles = common.DefaultStyles()
	a.applyStyles()

	// Save a copy so a later cycle cannot change what this write sees.
	cfg := *a.config
	return common.SafeBatch(
		a.toast.ShowInfo("Theme: "+common.CurrentTheme().Name),
		func() tea.Msg {
			if err := cfg.SaveUISettings(); err != nil {
				return messages.Error{Err: err, Context: "save theme"}
			}
			return nil
		},
	)
}
