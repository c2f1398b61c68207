package safego

import (
	"fmt"
	"runtime/debug"
	"sync"

	"github.com/andyrewlee/gridpad/internal/logging"
)

// PanicHandler receives panic details from recovered goroutines.
type PanicHandler func(name string, recovered any, stack []byte)

var (
	panicHandlerMu sync.RWMutex
	panicHandler   PanicHandler
)

// SetPanicHandler registers a global handler for recovered panics.
func SetPanicHandler(handler PanicHandler) {
	panicHandlerMu.Lock()
	panicHandler = handler
	panicHandlerMu.Unlock()
}

// PanicError is returned by RunE when fn panicked.
type PanicError struct {
	Name      string
	Recovered any
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("panic in %s: %v", e.Name, e.Recovered)
}

func label(name string) string {
	if name == "" {
		return "goroutine"
	}
	return name
}

// report logs a recovered panic and forwards it to the registered handler.
func report(name string, r any) {
	stack := debug.Stack()
	logging.Error("panic in %s: %v\n%s", name, r, stack)
	panicHandlerMu.RLock()
	handler := panicHandler
	panicHandlerMu.RUnlock()
	if handler != nil {
		func() {
			defer func() { _ = recover() }()
			handler(name, r, stack)
		}()
	}
}

// Run executes fn and converts panics into logged errors.
// This does not recover from runtime-fatal errors (e.g., concurrent map writes).
func Run(name string, fn func()) {
	defer func() {
		if r := recover(); r != nil {
			report(label(name), r)
		}
	}()
	fn()
}

// RunE executes fn, returning its error or a *PanicError if it panicked.
// It fits errgroup.Group.Go for background loops that must not crash the process.
func RunE(name string, fn func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			report(label(name), r)
			err = &PanicError{Name: label(name), Recovered: r}
		}
	}()
	return fn()
}

// Go runs fn in a new goroutine with panic recovery.
func Go(name string, fn func()) {
	go Run(name, fn)
}
