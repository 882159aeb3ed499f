package backoff

import (
	"context"
	"math"
	"time"
)

// Strategy computes the wait before the n-th retry
type Strategy interface {
	Duration(attempt int, start time.Duration) time.Duration
}

type Backoff struct {
	strategy Strategy
	start    time.Duration
	limit    time.Duration
	attempt  int
	next     time.Duration
}

func New(strategy Strategy, start, limit time.Duration) *Backoff {
	b := &Backoff{strategy: strategy, start: start, limit: limit}
	b.Reset()
	return b
}

func NewExponential(start, limit time.Duration) *Backoff {
	return New(exponential{}, start, limit)
}

func (b *Backoff) Reset() {
	b.attempt = 0
	b.next = b.duration()
}

// Attempts is the number of completed waits since the last Reset
func (b *Backoff) Attempts() int {
	return b.attempt
}

// Next is the duration the following Wait will sleep
func (b *Backoff) Next() time.Duration {
	return b.next
}

// Wait sleeps for the next duration or until ctx is done, whichever comes first
func (b *Backoff) Wait(ctx context.Context) error {
	t := time.NewTimer(b.next)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
	}
	b.attempt++
	b.next = b.duration()
	return nil
}

func (b *Backoff) duration() time.Duration {
	d := b.strategy.Duration(b.attempt, b.start)
	if b.limit > 0 && d > b.limit {
		d = b.limit
	}
	return d
}

type exponential struct{}

func (exponential) Duration(attempt int, start time.Duration) time.Duration {
	return time.Duration(math.Pow(2, float64(attempt))) * start
}
