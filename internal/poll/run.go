package poll

import (
	"context"
	"time"
)

// FetchFunc performs one poll.
type FetchFunc func(ctx context.Context) Result

// Run calls fetch every interval until ctx is cancelled, handing each result
// to onResult. The first fetch happens after one interval. Run returns
// ctx.Err() on cancellation.
func Run(ctx context.Context, interval time.Duration, fetch FetchFunc, onResult func(Result)) error {
	if interval <= 0 {
		interval = 5 * time.Second
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			res := fetch(ctx)
			if ctx.Err() != nil {
				return ctx.Err()
			}
			if onResult != nil {
				onResult(res)
			}
		}
	}
}
