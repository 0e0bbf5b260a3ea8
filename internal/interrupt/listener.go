// Package interrupt turns OS interrupt notifications into context cancellation.
package interrupt

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

// Signal is the cancellation cause recorded when an interrupt arrives.
type Signal struct {
	Sig os.Signal
}

func (s *Signal) Error() string {
	return fmt.Sprintf("interrupted by %v", s.Sig)
}

// Listener watches for SIGINT and SIGTERM.
type Listener struct {
	signals []os.Signal
	notify  func(c chan<- os.Signal, sig ...os.Signal)
	stop    func(c chan<- os.Signal)
}

// NewListener returns a Listener bound to the process signal facility.
func NewListener() *Listener {
	return NewListenerWith(signal.Notify, signal.Stop)
}

// NewListenerWith returns a Listener for SIGINT and SIGTERM that registers
// through notify and releases through stop.
func NewListenerWith(notify func(c chan<- os.Signal, sig ...os.Signal), stop func(c chan<- os.Signal)) *Listener {
	return &Listener{
		signals: []os.Signal{os.Interrupt, syscall.SIGTERM},
		notify:  notify,
		stop:    stop,
	}
}

// Listen returns a context canceled by the first interrupt. The returned
// func releases the registration and must be called once the caller is done.
func (l *Listener) Listen(parent context.Context) (context.Context, func()) {
	ctx, cancel := context.WithCancelCause(parent)
	ch := make(chan os.Signal, 1)
	l.notify(ch, l.signals...)
	go func() {
		select {
		case sig := <-ch:
			cancel(&Signal{Sig: sig})
		case <-ctx.Done():
		}
	}()
	return ctx, func() {
		l.stop(ch)
		cancel(context.Canceled)
	}
}

// Interrupted reports whether ctx ended because of an interrupt signal.
func Interrupted(ctx context.Context) bool {
	var sig *Signal
	return errors.As(context.Cause(ctx), &sig)
}
