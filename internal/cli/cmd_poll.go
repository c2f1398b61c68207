package cli

import (
	"context"
	"errors"
	"fmt"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/andyrewlee/gridpad/internal/grid"
	"github.com/andyrewlee/gridpad/internal/logging"
	"github.com/andyrewlee/gridpad/internal/poll"
	"github.com/andyrewlee/gridpad/internal/safego"
)

type pollOptions struct {
	url      string
	interval time.Duration
	timeout  time.Duration
	count    int
	once     bool
	watch    bool
}

func buildPollCommand() *cobra.Command {
	var opts pollOptions
	cmd := &cobra.Command{
		Use:   "poll",
		Short: "Poll the backend endpoint and print each response",
		Long: `Fetch the configured endpoint every interval and print one line per result:
"Server response: <body>" or "Error: <reason>". Failures are reported and the
loop carries on; there is no retry or backoff. Stops on Ctrl-C or after
--count results.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			if opts.url == "" {
				opts.url = cfg.Poll.URL
			}
			if opts.interval <= 0 {
				opts.interval = cfg.Poll.Interval
			}
			if opts.timeout <= 0 {
				opts.timeout = cfg.Poll.Timeout
			}

			client := poll.NewClient(opts.url, opts.timeout)
			token, err := poll.LoadTokenOptional(cfg.Poll.TokenAccount)
			if err != nil {
				logging.Warn("Poll token unavailable: %v", err)
			}
			client.Token = token

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			if opts.once {
				res := client.Fetch(ctx)
				fmt.Fprintln(cmd.OutOrStdout(), poll.LogLine(res))
				if res.Err != nil {
					return exitError{code: 1}
				}
				return nil
			}

			watchPath := ""
			if opts.watch {
				watchPath = cfg.DataPath
			}
			return runPoll(ctx, cmd, client, opts, watchPath)
		},
	}
	cmd.Flags().StringVar(&opts.url, "url", "", "Endpoint URL (default from config)")
	cmd.Flags().DurationVar(&opts.interval, "interval", 0, "Time between polls (default from config)")
	cmd.Flags().DurationVar(&opts.timeout, "timeout", 0, "Per-request timeout (default from config)")
	cmd.Flags().IntVar(&opts.count, "count", 0, "Stop after this many results (0 runs until interrupted)")
	cmd.Flags().BoolVar(&opts.once, "once", false, "Fetch once and exit non-zero on failure")
	cmd.Flags().BoolVar(&opts.watch, "watch", false, "Also log reloads of the configured data file")
	return cmd
}

// runPoll drives the poll loop, and optionally the data file watcher, under
// one errgroup. Cancellation is a clean exit.
func runPoll(ctx context.Context, cmd *cobra.Command, client *poll.Client, opts pollOptions, watchPath string) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	out := cmd.OutOrStdout()
	var (
		mu   sync.Mutex
		seen int
	)
	onResult := func(res poll.Result) {
		mu.Lock()
		defer mu.Unlock()
		fmt.Fprintln(out, poll.LogLine(res))
		seen++
		if opts.count > 0 && seen >= opts.count {
			cancel()
		}
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return safego.RunE("cli.poll", func() error {
			return poll.Run(gctx, opts.interval, client.Fetch, onResult)
		})
	})

	if watchPath != "" {
		fw, err := grid.NewFileWatcher(watchPath, func(path string) {
			if _, err := grid.LoadFile(path); err != nil {
				logging.Warn("Reload %s failed: %v", path, err)
				return
			}
			logging.Info("Reloaded %s", path)
		})
		if err != nil {
			return fmt.Errorf("watch %s: %w", watchPath, err)
		}
		defer fw.Close()
		g.Go(func() error {
			return safego.RunE("cli.file_watcher", func() error {
				return fw.Run(gctx)
			})
		})
	}

	err := g.Wait()
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
