package ctx

import (
	"context"
	"time"

	log "github.com/x-xyz/rentableft/base/log"
)

// Ctx couples a context.Context with a field logger so that values stored
// through WithValue also show up in every log line written downstream.
type Ctx struct {
	context.Context
	log.Logger
}

func Background() Ctx {
	return Ctx{
		Context: context.Background(),
		Logger:  log.Log(),
	}
}

// From wraps a plain context, e.g. the one carried by an *http.Request
func From(parent context.Context) Ctx {
	if c, ok := parent.(Ctx); ok {
		return c
	}
	return Ctx{
		Context: parent,
		Logger:  log.Log(),
	}
}

func WithValue(parent Ctx, key string, val interface{}) Ctx {
	return Ctx{
		Context: context.WithValue(parent.Context, key, val),
		Logger:  parent.Logger.WithField(key, val),
	}
}

func WithValues(parent Ctx, kvs map[string]interface{}) Ctx {
	c := parent
	for k, v := range kvs {
		c = WithValue(c, k, v)
	}
	return c
}

func WithCancel(parent Ctx) (Ctx, context.CancelFunc) {
	ctx, cancel := context.WithCancel(parent.Context)
	return Ctx{
		Context: ctx,
		Logger:  parent.Logger,
	}, cancel
}

// WithTimeout returns parent unchanged with a no-op cancel when timeout <= 0
func WithTimeout(parent Ctx, timeout time.Duration) (Ctx, context.CancelFunc) {
	if timeout <= 0 {
		return parent, func() {}
	}
	ctx, cancel := context.WithTimeout(parent.Context, timeout)
	return Ctx{
		Context: ctx,
		Logger:  parent.Logger,
	}, cancel
}

// Detach keeps the logger and values of parent but drops its deadline and cancellation.
func Detach(parent Ctx) Ctx {
	return Ctx{
		Context: detached{parent.Context},
		Logger:  parent.Logger,
	}
}

type detached struct {
	parent context.Context
}

func (detached) Deadline() (time.Time, bool) { return time.Time{}, false }

func (detached) Done() <-chan struct{} { return nil }

func (detached) Err() error { return nil }

func (d detached) Value(key interface{}) interface{} { return d.parent.Value(key) }
