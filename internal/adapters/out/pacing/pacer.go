// Package pacing implements ports.Pacer on the wall clock.
package pacing

import (
	"context"
	"time"
)

// TimerPacer sleeps for the requested duration unless ctx ends first.
type TimerPacer struct{}

func NewTimerPacer() TimerPacer {
	return TimerPacer{}
}

func (TimerPacer) Pause(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
