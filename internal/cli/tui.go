package cli

import (
	"fmt"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/spf13/cobra"

	"github.com/andyrewlee/gridpad/internal/app"
	"github.com/andyrewlee/gridpad/internal/config"
	"github.com/andyrewlee/gridpad/internal/logging"
	"github.com/andyrewlee/gridpad/internal/messages"
	"github.com/andyrewlee/gridpad/internal/perf"
	"github.com/andyrewlee/gridpad/internal/safego"
)

func buildTUICommand(info BuildInfo) *cobra.Command {
	var dataPath string
	cmd := &cobra.Command{
		Use:   "tui",
		Short: "Start the interactive spreadsheet",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(info, dataPath)
		},
	}
	cmd.Flags().StringVar(&dataPath, "data", "", "Data file to open (.json, .yaml, .csv)")
	return cmd
}

func runTUI(info BuildInfo, dataPath string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if dataPath != "" {
		cfg.DataPath = dataPath
	}
	if err := cfg.Paths.EnsureDirectories(); err != nil {
		return fmt.Errorf("create directories: %w", err)
	}

	if err := logging.Initialize(cfg.Paths.LogDir, logging.ParseLevel(cfg.LogLevel)); err != nil {
		return fmt.Errorf("initialize logging: %w", err)
	}
	defer logging.Close()
	logging.Info("Starting %s", info)

	a, err := app.New(cfg, info.Version)
	if err != nil {
		logging.Error("Failed to initialize app: %v", err)
		return fmt.Errorf("initialize app: %w", err)
	}
	defer a.Shutdown()

	p := tea.NewProgram(a, tea.WithFilter(mouseEventFilter))
	safego.SetPanicHandler(func(name string, recovered any, _ []byte) {
		p.Send(messages.Toast{
			Message: fmt.Sprintf("Internal error in %s", name),
			Level:   messages.ToastError,
		})
	})
	defer safego.SetPanicHandler(nil)

	if _, err := p.Run(); err != nil {
		logging.Error("App exited with error: %v", err)
		return fmt.Errorf("run app: %w", err)
	}
	perf.Flush("exit")
	logging.Info("gridpad shutdown complete")
	return nil
}

var (
	lastMouseMotionEvent   time.Time
	lastMouseWheelEvent    time.Time
	lastMouseX, lastMouseY int
)

// mouseEventFilter drops repeated motion at the same cell and wheel bursts.
// Drags that move to a new cell always pass.
func mouseEventFilter(m tea.Model, msg tea.Msg) tea.Msg {
	switch msg := msg.(type) {
	case tea.MouseMotionMsg:
		if msg.X != lastMouseX || msg.Y != lastMouseY {
			lastMouseX = msg.X
			lastMouseY = msg.Y
			lastMouseMotionEvent = time.Now()
			return msg
		}
		now := time.Now()
		if now.Sub(lastMouseMotionEvent) < 15*time.Millisecond {
			return nil
		}
		lastMouseMotionEvent = now
	case tea.MouseWheelMsg:
		now := time.Now()
		if now.Sub(lastMouseWheelEvent) < 15*time.Millisecond {
			return nil
		}
		lastMouseWheelEvent = now
	}
	return msg
}
