package app

import (
	"context"
	"sync"
	"time"

	"charm.land/bubbles/v2/viewport"
	tea "charm.land/bubbletea/v2"
	zone "github.com/lrstanley/bubblezone"

	"github.com/andyrewlee/gridpad/internal/chart"
	"github.com/andyrewlee/gridpad/internal/config"
	"github.com/andyrewlee/gridpad/internal/grid"
	"github.com/andyrewlee/gridpad/internal/keymap"
	"github.com/andyrewlee/gridpad/internal/logging"
	"github.com/andyrewlee/gridpad/internal/messages"
	"github.com/andyrewlee/gridpad/internal/poll"
	"github.com/andyrewlee/gridpad/internal/selection"
	"github.com/andyrewlee/gridpad/internal/suggest"
	"github.com/andyrewlee/gridpad/internal/supervisor"
	"github.com/andyrewlee/gridpad/internal/ui/chartview"
	"github.com/andyrewlee/gridpad/internal/ui/common"
	"github.com/andyrewlee/gridpad/internal/ui/compositor"
	"github.com/andyrewlee/gridpad/internal/ui/contextmenu"
	"github.com/andyrewlee/gridpad/internal/ui/gridview"
	"github.com/andyrewlee/gridpad/internal/ui/layout"
	"github.com/andyrewlee/gridpad/internal/ui/search"
)

const (
	consoleTickInterval = 250 * time.Millisecond
	consoleHistory      = 100
	watcherBackoff      = 500 * time.Millisecond
)

// App is the root Bubbletea model.
type App struct {
	// Configuration
	config  *config.Config
	version string

	// State
	store       *selection.Store
	focusedPane messages.PaneType
	showHelp    bool
	keyedJSON   string
	consoleSeq  uint64

	// UI Components
	layout  *layout.Manager
	grid    *gridview.Model
	chart   *chartview.Model
	search  *search.Model
	menu    *contextmenu.Model
	code    viewport.Model
	console viewport.Model
	toast   *common.ToastModel
	screen  *compositor.Screen
	zone    *zone.Manager

	// Services
	clipboard common.Clipboard
	poller    *poll.Client

	// Data file watching
	fileWatcher   *grid.FileWatcher
	fileWatcherCh chan messages.DataFileChanged
	supervisor    *supervisor.Supervisor

	// Layout
	width, height int
	keymap        keymap.KeyMap
	styles        common.Styles

	// Lifecycle
	ready        bool
	quitting     bool
	ctx          context.Context
	shutdownOnce sync.Once
}

// New creates the app for cfg. The sheet comes from cfg.DataPath when set,
// otherwise the built-in sample is shown.
func New(cfg *config.Config, version string) (*App, error) {
	sheet := grid.SampleSheet()
	if cfg.DataPath != "" {
		loaded, err := grid.LoadFile(cfg.DataPath)
		if err != nil {
			return nil, err
		}
		sheet = loaded
	}

	// Apply saved theme before creating styles
	common.SetCurrentTheme(common.ThemeID(cfg.UI.Theme))
	km := keymap.New(cfg.KeyMap)

	ctx := context.Background()
	app := &App{
		config:      cfg,
		version:     version,
		store:       selection.NewStore(),
		focusedPane: messages.PaneGrid,
		layout:      layout.NewManager(),
		grid:        gridview.New(sheet, cfg.Grid, km),
		chart:       chartview.New(chart.Default()),
		search:      search.New(suggest.New(cfg.Search.Items, suggest.ParseMode(cfg.Search.Mode))),
		menu:        contextmenu.New(),
		code:        viewport.New(),
		console:     viewport.New(),
		toast:       common.NewToastModel(),
		screen:      &compositor.Screen{},
		zone:        zone.New(),
		clipboard:   common.SystemClipboard{},
		poller:      poll.NewClient(cfg.Poll.URL, cfg.Poll.Timeout),
		keymap:      km,
		styles:      common.DefaultStyles(),
		ctx:         ctx,
		supervisor:  supervisor.New(ctx),
	}
	app.applyStyles()
	app.grid.Focus()

	if cfg.Poll.Enabled {
		token, err := poll.LoadTokenOptional(cfg.Poll.TokenAccount)
		if err != nil {
			logging.Warn("Poll token unavailable: %v", err)
		}
		app.poller.Token = token
	}

	if cfg.DataPath != "" {
		app.startWatching(cfg.DataPath)
	}
	return app, nil
}

// startWatching hands data file change events to the update loop.
func (a *App) startWatching(path string) {
	ch := make(chan messages.DataFileChanged, 1)
	fw, err := grid.NewFileWatcher(path, func(p string) {
		select {
		case ch <- messages.DataFileChanged{Path: p}:
		default:
			// A reload is already pending.
		}
	})
	if err != nil {
		logging.Warn("Data file watcher disabled: %v", err)
		return
	}
	a.fileWatcher = fw
	a.fileWatcherCh = ch
	a.supervisor.Start("grid.file_watcher", fw.Run, supervisor.WithBackoff(watcherBackoff, 5*watcherBackoff))
}

// SetClipboard replaces the system clipboard.
func (a *App) SetClipboard(c common.Clipboard) {
	if c != nil {
		a.clipboard = c
	}
}

// Store exposes the cached keyed selection.
func (a *App) Store() *selection.Store { return a.store }

func (a *App) applyStyles() {
	a.grid.SetStyles(a.styles)
	a.chart.SetStyles(a.styles)
	a.search.SetStyles(a.styles)
	a.menu.SetStyles(a.styles)
	a.toast.SetStyles(a.styles)
}

// Init initializes the application.
func (a *App) Init() tea.Cmd {
	cmds := []tea.Cmd{
		a.startConsoleTicker(),
		a.waitForDataFile(),
	}
	if a.config.Poll.Enabled {
		cmds = append(cmds, a.startPollTicker())
	}
	if !common.ClipboardAvailable() {
		cmds = append(cmds, a.toast.ShowWarning("No system clipboard found; copy will fail"))
	}
	return common.SafeBatch(cmds...)
}

func (a *App) startConsoleTicker() tea.Cmd {
	return common.SafeTick(consoleTickInterval, func(time.Time) tea.Msg {
		return messages.ConsoleTick{}
	})
}

func (a *App) startPollTicker() tea.Cmd {
	return common.SafeTick(a.config.Poll.Interval, func(t time.Time) tea.Msg {
		return messages.PollTick{At: t}
	})
}

// waitForDataFile blocks until the watcher reports a change.
func (a *App) waitForDataFile() tea.Cmd {
	if a.fileWatcherCh == nil {
		return nil
	}
	ch := a.fileWatcherCh
	ctx := a.supervisor.Context()
	return func() tea.Msg {
		select {
		case msg := <-ch:
			return msg
		case <-ctx.Done():
			return nil
		}
	}
}

// Shutdown stops background workers. It is safe to call more than once.
func (a *App) Shutdown() {
	a.shutdownOnce.Do(func() {
		a.supervisor.Stop()
		if a.fileWatcher != nil {
			_ = a.fileWatcher.Close()
		}
		a.zone.Close()
	})
}
