package response

import (
	"net/http"

	"github.com/dmitrymomot/dispatch/core/handler"
	"github.com/dmitrymomot/dispatch/pkg/async"
)

// Await waits for an asynchronous computation before rendering.
// On success the `then` response renders as usual; on failure the future's
// error propagates to the centralized error handler, producing a response
// identical to the same error returned synchronously via Error.
func Await(f *async.ExecFuture, then handler.Response) handler.Response {
	return func(w http.ResponseWriter, r *http.Request) error {
		if err := f.Await(); err != nil {
			return err
		}
		return then(w, r)
	}
}

// AwaitJSON waits for a value-producing computation and renders the value
// as a JSON response. Failures propagate like Await.
func AwaitJSON[T any](f *async.Future[T]) handler.Response {
	return func(w http.ResponseWriter, r *http.Request) error {
		v, err := f.Await()
		if err != nil {
			return err
		}
		return JSON(v)(w, r)
	}
}
