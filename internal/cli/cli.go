// Package cli is gridpad's headless command line: keying and exporting
// selections, rendering the chart, polling the endpoint and managing the poll
// token without starting the TUI.
package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/andyrewlee/gridpad/internal/config"
	"github.com/andyrewlee/gridpad/internal/logging"
)

// BuildInfo is the version stamp set through ldflags.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// String formats the stamp the way --version prints it.
func (b BuildInfo) String() string {
	return fmt.Sprintf("gridpad %s (commit: %s, built: %s)", b.Version, b.Commit, b.Date)
}

// Run executes the CLI. It returns a process exit code.
func Run(args []string, version, commit, date string) int {
	return run(args, os.Stdin, os.Stdout, os.Stderr, BuildInfo{Version: version, Commit: commit, Date: date})
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer, info BuildInfo) int {
	root := buildRootCommand(info)
	root.SetArgs(args)
	root.SetIn(stdin)
	root.SetOut(stdout)
	root.SetErr(stderr)
	if err := root.Execute(); err != nil {
		var exitErr exitError
		if errors.As(err, &exitErr) {
			return exitErr.code
		}
		fmt.Fprintln(stderr, "Error:", err)
		return 1
	}
	return 0
}

func buildRootCommand(info BuildInfo) *cobra.Command {
	root := &cobra.Command{
		Use:   "gridpad",
		Short: "Terminal spreadsheet that keys selections into JSON",
		Long: `gridpad - select cells, get keyed JSON

Interactive:
  gridpad                  Start the TUI (when attached to a terminal)
  gridpad tui              Start the TUI unconditionally

Headless:
  gridpad key [file]       Key a raw selection JSON array
  gridpad export           Write a range of the sheet as selectedCells.json
  gridpad chart --out f    Render the chart as a PNG
  gridpad poll             Poll the backend endpoint and log responses
  gridpad token set|get|delete
                           Manage the poll bearer token
  gridpad passages add|list
                           Store passages with their embeddings
  gridpad query <q>...     Rank stored passages against queries
  gridpad embed <text>...  Print embeddings as JSON`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.Version = info.Version
	root.SetVersionTemplate(info.String() + "\n")
	root.SetHelpCommand(&cobra.Command{Hidden: true})
	root.CompletionOptions.DisableDefaultCmd = true

	root.AddCommand(buildTUICommand(info))
	root.AddCommand(buildKeyCommand())
	root.AddCommand(buildExportCommand())
	root.AddCommand(buildChartCommand())
	root.AddCommand(buildPollCommand())
	root.AddCommand(buildTokenCommand())
	root.AddCommand(buildPassagesCommand())
	root.AddCommand(buildQueryCommand())
	root.AddCommand(buildEmbedCommand())
	root.AddCommand(buildVersionCommand(info))
	return root
}

type exitError struct {
	code int
}

func (e exitError) Error() string {
	return fmt.Sprintf("exit with code %d", e.code)
}

// loadConfig reads the user config. Headless commands log to stderr at the
// configured level rather than to the log file.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	logging.InitializeWriter(cmd.ErrOrStderr(), logging.ParseLevel(cfg.LogLevel))
	return cfg, nil
}
