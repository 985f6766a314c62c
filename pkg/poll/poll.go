// ABOUTME: Polling helper for waiting on a condition with a deadline
// ABOUTME: Replaces ad hoc sleep-and-retry loops with a cancellable ticker loop

package poll

import (
	"context"
	"errors"
	"time"
)

// ErrTimeout is returned when the condition is not met before the deadline
var ErrTimeout = errors.New("poll: condition not met before timeout")

// Predicate reports whether the awaited condition holds
type Predicate func(ctx context.Context) bool

// UntilReady evaluates ready immediately and then every interval until it
// returns true, the timeout elapses, or ctx is cancelled.
func UntilReady(ctx context.Context, interval, timeout time.Duration, ready Predicate) error {
	if interval <= 0 {
		return errors.New("poll: interval must be positive")
	}

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	if ready(ctx) {
		return nil
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			if errors.Is(ctx.Err(), context.DeadlineExceeded) {
				return ErrTimeout
			}
			return ctx.Err()
		case <-ticker.C:
			if ready(ctx) {
				return nil
			}
		}
	}
}
