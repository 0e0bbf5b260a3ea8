package interrupt

import (
	"context"
	"os"
	"testing"
	"time"
)

func fakeListener() (*Listener, chan chan<- os.Signal, chan chan<- os.Signal) {
	registered := make(chan chan<- os.Signal, 1)
	stopped := make(chan chan<- os.Signal, 1)
	l := NewListenerWith(func(c chan<- os.Signal, _ ...os.Signal) {
		registered <- c
	}, func(c chan<- os.Signal) {
		stopped <- c
	})
	return l, registered, stopped
}

func TestListenCancelsOnSignal(t *testing.T) {
	l, registered, _ := fakeListener()
	ctx, stop := l.Listen(context.Background())
	defer stop()

	ch := <-registered
	ch <- os.Interrupt

	select {
	case <-ctx.Done():
	case <-time.After(2 * time.Second):
		t.Fatalf("expected context to be canceled by signal")
	}
	if !Interrupted(ctx) {
		t.Fatalf("expected Interrupted to report true, cause=%v", context.Cause(ctx))
	}
}

func TestStopIsNotAnInterrupt(t *testing.T) {
	l, _, stopped := fakeListener()
	ctx, stop := l.Listen(context.Background())
	stop()

	select {
	case <-stopped:
	case <-time.After(2 * time.Second):
		t.Fatalf("expected signal registration to be released")
	}
	<-ctx.Done()
	if Interrupted(ctx) {
		t.Fatalf("expected plain cancellation, got interrupt")
	}
}

func TestInterruptedBackground(t *testing.T) {
	if Interrupted(context.Background()) {
		t.Fatalf("background context is never interrupted")
	}
}
