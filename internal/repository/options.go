package repository

import (
	"context"
	"time"
)

// DefaultLatency mimics a round trip to a remote API.
const DefaultLatency = 300 * time.Millisecond

type Option func(*options)

type options struct {
	latency time.Duration
	now     func() time.Time
}

func newOptions(opts []Option) options {
	o := options{
		latency: DefaultLatency,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithLatency sets the simulated delay before every call. Zero disables it.
func WithLatency(d time.Duration) Option {
	return func(o *options) {
		o.latency = d
	}
}

// WithClock sets the time source used for "today" and for timestamps.
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		o.now = now
	}
}

// delay blocks for the simulated latency or until ctx is done.
func (o options) delay(ctx context.Context) error {
	if o.latency <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(o.latency)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
