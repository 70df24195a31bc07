package response

import (
	"errors"
	"net/http"

	"github.com/dmitrymomot/dispatch/core/handler"
)

// statusCode is an interface that errors can implement
// to provide a custom HTTP status code.
type statusCode interface {
	StatusCode() int
}

// convertToHTTPError normalizes any error into an HTTPError.
// HTTPError values pass through unchanged, errors carrying a StatusCode
// keep their status, everything else becomes a 500. The original error's
// message always becomes the envelope message.
func convertToHTTPError(err error) HTTPError {
	var httpErr HTTPError
	if errors.As(err, &httpErr) {
		return httpErr
	}

	status := http.StatusInternalServerError
	if sc, ok := err.(statusCode); ok {
		status = sc.StatusCode()
	}

	return HTTPError{Status: status, Message: err.Error()}
}

// JSONErrorHandler renders errors as the standard JSON failure envelope.
// Every pipeline failure, regardless of origin, serializes here so that
// equivalent failures produce identical responses.
func JSONErrorHandler[C handler.Context](ctx C, err error) {
	httpErr := convertToHTTPError(err)
	Render(ctx, JSONWithStatus(httpErr, httpErr.Status))
}
