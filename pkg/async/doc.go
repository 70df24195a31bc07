// Package async provides future primitives for asynchronous work with Go generics.
//
// Two shapes cover the common cases: Future[T] for computations producing a
// value, ExecFuture for side-effecting computations that only report an error.
// Both support blocking waits, waits with timeout, and non-blocking completion
// checks.
//
// # Usage
//
// Value-producing computation:
//
//	future := async.Async(ctx, userID, func(ctx context.Context, id int) (User, error) {
//		return loadUser(ctx, id)
//	})
//
//	// Do other work...
//
//	user, err := future.Await()
//
// Side-effecting computation:
//
//	future := async.Exec(ctx, payload, func(ctx context.Context, p Payload) error {
//		return store.Save(ctx, p)
//	})
//
//	if err := future.Await(); err != nil {
//		log.Printf("save failed: %v", err)
//	}
//
// Waiting with a deadline:
//
//	err := future.AwaitWithTimeout(50 * time.Millisecond)
//	if errors.Is(err, async.ErrTimeout) {
//		// computation still running, wait abandoned
//	}
//
// # Concurrency
//
// Each Async and Exec call spawns exactly one goroutine. Completion is
// signalled by closing an internal channel, so any number of goroutines may
// Await the same future. If the passed context is already cancelled the
// function never runs and the future completes with the context's error;
// functions that run are expected to honor ctx cancellation themselves.
package async
