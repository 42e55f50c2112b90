// Package clock provides helpers for time-related operations.
package clock

import (
	"context"
	"time"
)

// NowFunc returns the current time; swapped in tests.
type NowFunc func() time.Time

// SleepFunc waits for d or until ctx is done.
type SleepFunc func(ctx context.Context, d time.Duration) error

// SleepWithContext waits for the duration or returns early if the context is canceled.
func SleepWithContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// UTCNow returns the current time in UTC.
func UTCNow() time.Time {
	return time.Now().UTC()
}
