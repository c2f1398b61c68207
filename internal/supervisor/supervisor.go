// Package supervisor keeps the TUI's background workers (the data file
// watcher, mainly) alive until shutdown.
package supervisor

import (
	"context"
	"sync"
	"time"

	"github.com/andyrewlee/gridpad/internal/logging"
	"github.com/andyrewlee/gridpad/internal/safego"
)

// RestartPolicy controls when a worker is restarted.
type RestartPolicy int

const (
	RestartNever RestartPolicy = iota
	RestartOnError
	RestartAlways
)

type options struct {
	policy      RestartPolicy
	maxRestarts int
	backoff     time.Duration
	maxBackoff  time.Duration
}

// Option configures a worker.
type Option func(*options)

// WithRestartPolicy sets the restart policy.
func WithRestartPolicy(policy RestartPolicy) Option {
	return func(o *options) { o.policy = policy }
}

// WithMaxRestarts limits the number of restarts (0 = unlimited).
func WithMaxRestarts(n int) Option {
	return func(o *options) { o.maxRestarts = n }
}

// WithBackoff sets the first delay between restarts and its cap.
func WithBackoff(initial, limit time.Duration) Option {
	return func(o *options) {
		o.backoff = initial
		o.maxBackoff = limit
	}
}

// Supervisor runs workers under a shared context.
type Supervisor struct {
	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup

	mu      sync.Mutex
	onError func(name string, err error)
}

// New creates a supervisor bound to parent.
func New(parent context.Context) *Supervisor {
	ctx, cancel := context.WithCancel(parent)
	return &Supervisor{ctx: ctx, cancel: cancel}
}

// Context returns the supervisor context.
func (s *Supervisor) Context() context.Context {
	return s.ctx
}

// SetErrorHandler registers a handler for worker errors.
func (s *Supervisor) SetErrorHandler(handler func(name string, err error)) {
	if s == nil {
		return
	}
	s.mu.Lock()
	s.onError = handler
	s.mu.Unlock()
}

// Stop cancels all workers and waits for them to exit.
func (s *Supervisor) Stop() {
	if s == nil {
		return
	}
	s.cancel()
	s.wg.Wait()
}

// Start runs fn in a goroutine, restarting it per the options. Panics count as
// errors.
func (s *Supervisor) Start(name string, fn func(context.Context) error, opts ...Option) {
	if s == nil || fn == nil {
		return
	}
	cfg := options{
		policy:     RestartOnError,
		backoff:    200 * time.Millisecond,
		maxBackoff: 3 * time.Second,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.maxBackoff < cfg.backoff {
		cfg.maxBackoff = cfg.backoff
	}

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		s.loop(name, fn, cfg)
	}()
}

func (s *Supervisor) loop(name string, fn func(context.Context) error, cfg options) {
	delay := cfg.backoff
	for restarts := 0; ; restarts++ {
		if s.ctx.Err() != nil {
			return
		}
		err := safego.RunE(name, func() error { return fn(s.ctx) })
		if s.ctx.Err() != nil {
			return
		}
		if err != nil {
			s.report(name, err)
		}
		if !shouldRestart(err, cfg.policy) {
			return
		}
		if cfg.maxRestarts > 0 && restarts >= cfg.maxRestarts {
			logging.Error("supervisor: %s exceeded max restarts (%d)", name, cfg.maxRestarts)
			return
		}
		if !s.sleep(delay) {
			return
		}
		delay = min(delay*2, cfg.maxBackoff)
	}
}

func (s *Supervisor) report(name string, err error) {
	s.mu.Lock()
	handler := s.onError
	s.mu.Unlock()
	if handler != nil {
		handler(name, err)
		return
	}
	logging.Warn("supervisor: %s failed: %v", name, err)
}

// sleep waits d or until shutdown; it reports whether to keep going.
func (s *Supervisor) sleep(d time.Duration) bool {
	if d <= 0 {
		return true
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-s.ctx.Done():
		return false
	case <-t.C:
		return true
	}
}

func shouldRestart(err error, policy RestartPolicy) bool {
	switch policy {
	case RestartAlways:
		return true
	case RestartOnError:
		return err != nil
	default:
		return false
	}
}
