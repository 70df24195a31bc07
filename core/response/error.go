package response

import (
	"net/http"

	"github.com/dmitrymomot/dispatch/core/handler"
)

// Error returns a handler response that propagates the given error to the
// dispatcher's error handler instead of writing anything itself. Handlers
// use it to fail a request through the centralized error path.
func Error(err error) handler.Response {
	return func(w http.ResponseWriter, r *http.Request) error {
		return err
	}
}
