package goroutine

import (
	"runtime/debug"

	"github.com/x-xyz/rentableft/base/log"
)

// PanicEvent is delivered on the channel returned by RecoverableGo when f panics
type PanicEvent struct {
	Panic interface{}
	Stack []byte
}

type options struct {
	logger         log.Logger
	name           string
	beforeStart    func()
	afterEnded     func()
	afterRecovered func(panic interface{}, stack []byte)
}

type Option func(*options)

func WithLogger(l log.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// WithName tags the panic log line
func WithName(name string) Option {
	return func(o *options) {
		o.name = name
	}
}

func WithBeforeStart(f func()) Option {
	return func(o *options) {
		o.beforeStart = f
	}
}

func WithAfterEnded(f func()) Option {
	return func(o *options) {
		o.afterEnded = f
	}
}

func WithAfterRecovered(f func(panic interface{}, stack []byte)) Option {
	return func(o *options) {
		o.afterRecovered = f
	}
}

// RecoverableGo runs f in a new goroutine. The returned channel receives one
// PanicEvent if f panics, otherwise it is closed once f returns.
func RecoverableGo(f func(), opts ...Option) <-chan *PanicEvent {
	o := options{logger: log.Log()}
	for _, opt := range opts {
		opt(&o)
	}

	panicChan := make(chan *PanicEvent, 1)

	go func() {
		defer func() {
			if o.afterEnded != nil {
				o.afterEnded()
			}

			p := recover()
			if p == nil {
				close(panicChan)
				return
			}

			stack := debug.Stack()
			o.logger.WithFields(log.Fields{
				"goroutine": o.name,
				"err":       p,
				"stack":     string(stack),
			}).Error("panic")

			if o.afterRecovered != nil {
				o.afterRecovered(p, stack)
			}
			panicChan <- &PanicEvent{p, stack}
		}()

		if o.beforeStart != nil {
			o.beforeStart()
		}

		f()
	}()

	return panicChan
}
