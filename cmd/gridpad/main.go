package main

import (
	"fmt"
	"net/http"
	_ "net/http/pprof"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/x/term"

	"github.com/andyrewlee/gridpad/internal/cli"
	"github.com/andyrewlee/gridpad/internal/logging"
	"github.com/andyrewlee/gridpad/internal/safego"
)

// Version info set by GoReleaser via ldflags
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	// Handle --version flag
	if len(os.Args) > 1 && (os.Args[1] == "--version" || os.Args[1] == "-v") {
		fmt.Printf("gridpad %s (commit: %s, built: %s)\n", version, commit, date)
		os.Exit(0)
	}

	args := routeArgs(os.Args[1:], shouldLaunchTUI(
		term.IsTerminal(os.Stdin.Fd()),
		term.IsTerminal(os.Stdout.Fd()),
		term.IsTerminal(os.Stderr.Fd()),
	))
	if len(args) > 0 && args[0] == "tui" {
		startPprof()
	}
	os.Exit(cli.Run(args, version, commit, date))
}

func shouldLaunchTUI(stdinIsTTY, stdoutIsTTY, stderrIsTTY bool) bool {
	return stdinIsTTY && stdoutIsTTY && stderrIsTTY
}

// routeArgs maps a bare invocation to the TUI on a terminal and to help
// otherwise. Everything else goes to the CLI untouched.
func routeArgs(args []string, launchTUI bool) []string {
	if len(args) > 0 {
		return args
	}
	if launchTUI {
		return []string{"tui"}
	}
	return []string{"--help"}
}

func startPprof() {
	raw := strings.TrimSpace(os.Getenv("GRIDPAD_PPROF"))
	if raw == "" {
		return
	}
	switch strings.ToLower(raw) {
	case "0", "false", "no":
		return
	}

	addr := raw
	if raw == "1" || strings.ToLower(raw) == "true" {
		addr = "127.0.0.1:6060"
	} else if _, err := strconv.Atoi(raw); err == nil {
		addr = "127.0.0.1:" + raw
	}

	safego.Go("pprof", func() {
		logging.Info("pprof listening on %s", addr)
		if err := http.ListenAndServe(addr, nil); err != nil {
			logging.Warn("pprof server stopped: %v", err)
		}
	})
}
