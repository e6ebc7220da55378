// Package scheduler paces the simulation and hosts it on its own goroutine.
package scheduler

//go:generate go tool mockgen -source=scheduler.go -destination=mocks/mock_scheduler.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"time"
)

// ErrStopped is returned by a Scheduler once its context is done.
var ErrStopped = errors.New("scheduler stopped")

// Scheduler decides when the next tick may run.
type Scheduler interface {
	// Next blocks until the next tick is due, interval after the previous
	// one. A zero interval only yields to other goroutines.
	Next(ctx context.Context, interval time.Duration) error
}

// Interval converts a tick rate to the delay between ticks. Rates of zero
// or below mean no delay at all.
func Interval(fps int) time.Duration {
	if fps <= 0 {
		return 0
	}
	return time.Second / time.Duration(fps)
}

// Timer is the wall-clock Scheduler. Time spent outside Next counts toward
// the interval, so ticks keep a steady rate while the tick itself is slow.
type Timer struct {
	last time.Time
}

var _ Scheduler = (*Timer)(nil)

// NewTimer creates a Timer whose first interval starts now.
func NewTimer() *Timer {
	return &Timer{last: time.Now()}
}

// Next implements Scheduler.
func (t *Timer) Next(ctx context.Context, interval time.Duration) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%w: %w", ErrStopped, err)
	}

	if interval <= 0 {
		runtime.Gosched()
		t.last = time.Now()
		return nil
	}

	wait := interval - time.Since(t.last)
	if wait > 0 {
		timer := time.NewTimer(wait)
		defer timer.Stop()

		select {
		case <-ctx.Done():
			return fmt.Errorf("%w: %w", ErrStopped, ctx.Err())
		case <-timer.C:
		}
	}

	t.last = time.Now()
	return nil
}
