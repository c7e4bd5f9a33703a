// Package scheduler runs a job at a fixed interval until its context ends.
package scheduler

import (
	"context"
	"sync"
	"time"

	"github.com/bnema/deskutil/internal/logging"
)

const defaultInterval = time.Hour

// Job is one scheduled unit of work. Jobs never overlap.
type Job func(ctx context.Context)

// Ticker runs a Job once immediately, then every interval measured from the
// start of the previous run. A run that outlasts the interval delays the next
// one instead of stacking up.
type Ticker struct {
	mu       sync.Mutex
	interval time.Duration

	trigger chan struct{}
	reset   chan struct{}
}

// NewTicker creates a ticker. Non-positive intervals fall back to one hour.
func NewTicker(interval time.Duration) *Ticker {
	if interval <= 0 {
		interval = defaultInterval
	}
	return &Ticker{
		interval: interval,
		trigger:  make(chan struct{}, 1),
		reset:    make(chan struct{}, 1),
	}
}

// Interval returns the current interval.
func (t *Ticker) Interval() time.Duration {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.interval
}

// SetInterval changes the interval. The pending wait is rescheduled from the
// start of the last run.
func (t *Ticker) SetInterval(d time.Duration) {
	if d <= 0 {
		return
	}
	t.mu.Lock()
	t.interval = d
	t.mu.Unlock()

	select {
	case t.reset <- struct{}{}:
	default:
	}
}

// Trigger requests an extra run as soon as the current one (if any) finishes.
// Multiple pending triggers collapse into one.
func (t *Ticker) Trigger() {
	select {
	case t.trigger <- struct{}{}:
	default:
	}
}

// Run blocks until ctx is done. It returns nil on cancellation.
func (t *Ticker) Run(ctx context.Context, job Job) error {
	log := logging.FromContext(ctx)
	log.Debug().Dur("interval", t.Interval()).Msg("scheduler started")

	for {
		lastStart := time.Now()
		job(ctx)

		if err := t.wait(ctx, lastStart); err != nil {
			log.Debug().Msg("scheduler stopped")
			return nil
		}
	}
}

// wait returns when the next run is due, or ctx.Err() when cancelled.
func (t *Ticker) wait(ctx context.Context, lastStart time.Time) error {
	for {
		timer := time.NewTimer(time.Until(lastStart.Add(t.Interval())))

		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-t.trigger:
			timer.Stop()
			return nil
		case <-timer.C:
			return nil
		case <-t.reset:
			timer.Stop()
		}
	}
}
