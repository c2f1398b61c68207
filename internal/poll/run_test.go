package poll

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"go.uber.org/goleak"
)

func TestRunDeliversResultsUntilCancelled(t *testing.T) {
	defer goleak.VerifyNone(t)

	ctx, cancel := context.WithCancel(context.Background())
	var calls atomic.Int32
	results := make(chan Result, 8)

	fetch := func(context.Context) Result {
		n := calls.Add(1)
		if n == 2 {
			return Result{Err: errors.New("boom")}
		}
		return Result{Body: "ok"}
	}

	done := make(chan error, 1)
	go func() {
		done <- Run(ctx, 5*time.Millisecond, fetch, func(r Result) {
			select {
			case results <- r:
			default:
			}
		})
	}()

	first := <-results
	second := <-results
	if first.Body != "ok" || second.Err == nil {
		t.Fatalf("unexpected results %+v %+v", first, second)
	}

	cancel()
	select {
	case err := <-done:
		if !errors.Is(err, context.Canceled) {
			t.Fatalf("Run returned %v", err)
		}
	case <-time.After(time.Second):
		t.Fatalf("Run did not stop after cancel")
	}
}

func TestRunStopsBeforeFirstTick(t *testing.T) {
	defer goleak.VerifyNone(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	called := false
	err := Run(ctx, time.Hour, func(context.Context) Result {
		called = true
		return Result{}
	}, nil)
	if !errors.Is(err, context.Canceled) || called {
		t.Fatalf("err=%v called=%v", err, called)
	}
}
