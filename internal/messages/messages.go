package messages

import (
	"time"

	"github.com/andyrewlee/gridpad/internal/grid"
	"github.com/andyrewlee/gridpad/internal/poll"
	"github.com/andyrewlee/gridpad/internal/selection"
)

// PaneType identifies the focused pane
type PaneType int

const (
	PaneGrid PaneType = iota
	PaneSearch
	PaneChart
	PaneCode
	PaneConsole
)

func (p PaneType) String() string {
	switch p {
	case PaneGrid:
		return "grid"
	case PaneSearch:
		return "search"
	case PaneChart:
		return "chart"
	case PaneCode:
		return "code"
	case PaneConsole:
		return "console"
	default:
		return "unknown"
	}
}

// FocusPane requests focus change to a specific pane
type FocusPane struct {
	Pane PaneType
}

// SelectionStopped is sent once when a grid selection gesture completes.
type SelectionStopped struct {
	Cells selection.Selection
}

// CopyRequested asks the app to place the cached keyed selection on the clipboard.
type CopyRequested struct{}

// PasteReceived carries pasted text, or is empty for a paste keystroke.
type PasteReceived struct {
	Text string
}

// ExportRequested asks for the raw selection to be written to disk.
type ExportRequested struct{}

// Exported reports a finished export.
type Exported struct {
	Path string
	Err  error
}

// ShowKeyedRequested asks for the keyed JSON to be shown in the code pane.
type ShowKeyedRequested struct{}

// ShowDataRequested asks for the whole sheet to be logged.
type ShowDataRequested struct{}

// ClipboardWritten reports the outcome of a clipboard write.
type ClipboardWritten struct {
	Bytes int
	Err   error
}

// ContextMenuOpen asks for the context menu at screen position X, Y.
type ContextMenuOpen struct {
	X int
	Y int
}

// ContextMenuSubmitted carries the text typed into the context menu.
type ContextMenuSubmitted struct {
	Value string
}

// ContextMenuClosed is sent when the context menu closes without input.
type ContextMenuClosed struct{}

// SuggestionChosen is sent when a suggestion is picked.
type SuggestionChosen struct {
	Value string
}

// PollTick triggers one background fetch.
type PollTick struct {
	At time.Time
}

// PollResult carries the outcome of a background fetch.
type PollResult struct {
	Result poll.Result
}

// DataFileChanged is sent by the file watcher when the data file changes.
type DataFileChanged struct {
	Path string
}

// DataReloaded carries a freshly parsed sheet.
type DataReloaded struct {
	Path  string
	Sheet *grid.Sheet
	Err   error
}

// ConsoleTick refreshes the console pane from the log history.
type ConsoleTick struct{}

// ToggleHelp requests toggling the help overlay
type ToggleHelp struct{}

// ToastLevel identifies the type of toast notification to display.
type ToastLevel string

const (
	ToastInfo    ToastLevel = "info"
	ToastSuccess ToastLevel = "success"
	ToastError   ToastLevel = "error"
	ToastWarning ToastLevel = "warning"
)

// Toast requests a toast notification in the UI.
type Toast struct {
	Message string
	Level   ToastLevel
}

// Error represents an application error
type Error struct {
	Err     error
	Context string
	// Logged is set when the error was already written to the log.
	Logged bool
}

func (e Error) Error() string {
	if e.Context != "" {
		return e.Context + ": " + e.Err.Error()
	}
	return e.Err.Error()
}
