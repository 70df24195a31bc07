package async

import (
	"context"
	"time"
)

// ExecFuture represents an asynchronous computation that only reports an error.
// It is the lighter sibling of Future for side-effecting work.
type ExecFuture struct {
	err  error
	done chan struct{}
}

// Await blocks until the computation completes and returns its error.
func (f *ExecFuture) Await() error {
	<-f.done
	return f.err
}

// AwaitWithTimeout blocks until the computation completes or the timeout
// elapses, returning ErrTimeout in the latter case.
func (f *ExecFuture) AwaitWithTimeout(timeout time.Duration) error {
	select {
	case <-f.done:
		return f.err
	case <-time.After(timeout):
		return ErrTimeout
	}
}

// IsComplete reports whether the computation has finished, without blocking.
func (f *ExecFuture) IsComplete() bool {
	select {
	case <-f.done:
		return true
	default:
		return false
	}
}

// Exec runs fn on its own goroutine and returns an ExecFuture for its error.
// If ctx is already cancelled, fn never runs and the future completes
// immediately with the context's error.
func Exec[P any](ctx context.Context, param P, fn func(context.Context, P) error) *ExecFuture {
	f := &ExecFuture{done: make(chan struct{})}

	go func() {
		defer close(f.done)

		select {
		case <-ctx.Done():
			f.err = ctx.Err()
			return
		default:
		}

		f.err = fn(ctx, param)
	}()

	return f
}

// ExecAll awaits every future and returns the first error encountered.
// All futures are awaited regardless of earlier failures.
func ExecAll(futures ...*ExecFuture) error {
	var firstErr error
	for _, f := range futures {
		if err := f.Await(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
