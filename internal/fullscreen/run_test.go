package fullscreen

import (
	"context"
	"errors"
	"io"
	"os"
	"testing"
	"time"

	"github.com/verte-zerg/numeracal/internal/interrupt"
)

type echoIterator struct{}

func (echoIterator) Iterate(w io.Writer, _ []string) error {
	_, err := io.WriteString(w, "ok\n")
	return err
}

func newTestRunner(t *testing.T) (*Runner, chan chan<- os.Signal, *io.PipeWriter) {
	t.Helper()
	registered := make(chan chan<- os.Signal, 1)
	listener := interrupt.NewListenerWith(func(c chan<- os.Signal, _ ...os.Signal) {
		registered <- c
	}, func(chan<- os.Signal) {})
	in, keys := io.Pipe()
	t.Cleanup(func() {
		_ = keys.Close()
	})
	return NewRunner(echoIterator{}, plainDecorator{}, listener, in, io.Discard), registered, keys
}

func runAsync(r *Runner, ctx context.Context) <-chan error {
	done := make(chan error, 1)
	go func() {
		done <- r.Run(ctx, []string{"cab"})
	}()
	return done
}

func waitRun(t *testing.T, done <-chan error) error {
	t.Helper()
	select {
	case err := <-done:
		return err
	case <-time.After(5 * time.Second):
		t.Fatalf("full-screen session did not stop")
		return nil
	}
}

func TestRunInterruptExitsCleanly(t *testing.T) {
	r, registered, _ := newTestRunner(t)
	done := runAsync(r, context.Background())

	ch := <-registered
	ch <- os.Interrupt

	if err := waitRun(t, done); err != nil {
		t.Fatalf("expected interrupt to end the session without error, got %v", err)
	}
}

func TestRunParentCancelIsAnError(t *testing.T) {
	r, registered, _ := newTestRunner(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	done := runAsync(r, ctx)

	<-registered
	cancel()

	err := waitRun(t, done)
	if err == nil {
		t.Fatalf("expected plain cancellation to be reported")
	}
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled in chain, got %v", err)
	}
}

func TestRunCtrlCKeyExitsCleanly(t *testing.T) {
	r, registered, keys := newTestRunner(t)
	done := runAsync(r, context.Background())

	<-registered
	go func() {
		_, _ = keys.Write([]byte{0x03})
	}()

	if err := waitRun(t, done); err != nil {
		t.Fatalf("expected Ctrl+C key to end the session without error, got %v", err)
	}
}
