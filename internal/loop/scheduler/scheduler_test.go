package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestInterval(t *testing.T) {
	tests := []struct {
		fps      int
		expected time.Duration
	}{
		{-1, 0},
		{0, 0},
		{10, 100 * time.Millisecond},
		{90, time.Second / 90},
		{1000, time.Millisecond},
	}

	for _, tt := range tests {
		if got := Interval(tt.fps); got != tt.expected {
			t.Errorf("Interval(%d) = %v, want %v", tt.fps, got, tt.expected)
		}
	}
}

func TestTimer_Waits(t *testing.T) {
	timer := NewTimer()

	start := time.Now()
	if err := timer.Next(context.Background(), 20*time.Millisecond); err != nil {
		t.Fatalf("Next: %v", err)
	}
	if elapsed := time.Since(start); elapsed < 15*time.Millisecond {
		t.Errorf("returned after %v, want about 20ms", elapsed)
	}
}

func TestTimer_ZeroIntervalDoesNotBlock(t *testing.T) {
	timer := NewTimer()

	start := time.Now()
	for range 100 {
		if err := timer.Next(context.Background(), 0); err != nil {
			t.Fatalf("Next: %v", err)
		}
	}
	if elapsed := time.Since(start); elapsed > time.Second {
		t.Errorf("100 zero-delay ticks took %v", elapsed)
	}
}

func TestTimer_SlowTickCountsTowardInterval(t *testing.T) {
	timer := NewTimer()
	time.Sleep(30 * time.Millisecond)

	start := time.Now()
	if err := timer.Next(context.Background(), 20*time.Millisecond); err != nil {
		t.Fatalf("Next: %v", err)
	}
	if elapsed := time.Since(start); elapsed > 15*time.Millisecond {
		t.Errorf("overdue tick waited %v", elapsed)
	}
}

func TestTimer_Stopped(t *testing.T) {
	t.Run("already_cancelled", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		err := NewTimer().Next(ctx, 0)
		if !errors.Is(err, ErrStopped) || !errors.Is(err, context.Canceled) {
			t.Errorf("got %v, want ErrStopped wrapping context.Canceled", err)
		}
	})

	t.Run("cancelled_while_waiting", func(t *testing.T) {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
		defer cancel()

		start := time.Now()
		err := NewTimer().Next(ctx, time.Hour)
		if !errors.Is(err, ErrStopped) {
			t.Errorf("got %v, want ErrStopped", err)
		}
		if elapsed := time.Since(start); elapsed > 5*time.Second {
			t.Errorf("cancellation took %v", elapsed)
		}
	})
}
