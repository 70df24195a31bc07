package router

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/dmitrymomot/dispatch/core/binder"
	"github.com/dmitrymomot/dispatch/core/response"
)

var (
	// ErrDuplicateRoute is returned when two routes declare the same method and path.
	ErrDuplicateRoute = errors.New("duplicate route")
	// ErrInvalidMethod is returned for methods outside GET, POST, PUT and DELETE.
	ErrInvalidMethod = errors.New("invalid method")
	// ErrInvalidPattern is returned when a route path cannot be compiled.
	ErrInvalidPattern = errors.New("invalid route pattern")
	// ErrDuplicateParam is returned when a pattern names the same parameter twice.
	ErrDuplicateParam = errors.New("duplicate path parameter")
	// ErrNilHandler is returned when a route declares no handler.
	ErrNilHandler = errors.New("nil route handler")
	// ErrNilRegistry is returned when a dispatcher is created without a registry.
	ErrNilRegistry = errors.New("nil registry")
	// ErrNoContextFactory is returned when a custom context type is used
	// without providing WithContextFactory.
	ErrNoContextFactory = errors.New("context factory not provided for custom context type")
	// ErrNilResponse is returned when a handler returns a nil response.
	ErrNilResponse = errors.New("handler returned nil response")
	// ErrGuardDecision is returned when a guard denies a request without a
	// usable status code.
	ErrGuardDecision = errors.New("guard denied request without a valid status code")
)

// ErrUnknownRoute is rendered when no declared route matches the request.
// It carries the 404 status and the exact message clients observe.
var ErrUnknownRoute = response.NewHTTPError(http.StatusNotFound, "Unknown route")

// ErrOriginNotAllowed is rendered when a cross-origin request carries an
// origin outside the allow list.
var ErrOriginNotAllowed = response.NewHTTPError(http.StatusForbidden, "Origin not allowed")

// statusCode is implemented by errors that carry an HTTP status.
type statusCode interface {
	StatusCode() int
}

// statusOf extracts the HTTP status an error maps to, defaulting to 500.
func statusOf(err error) int {
	var sc statusCode
	if errors.As(err, &sc) {
		return sc.StatusCode()
	}
	return http.StatusInternalServerError
}

// normalizeError translates body-stage failures into status-carrying errors
// so the central error handler renders the correct code. Other errors pass
// through untouched.
func normalizeError(err error) error {
	switch {
	case errors.Is(err, binder.ErrBodyTooLarge):
		return response.NewHTTPError(http.StatusRequestEntityTooLarge, err.Error())
	case errors.Is(err, binder.ErrUnsupportedMediaType), errors.Is(err, binder.ErrMissingContentType):
		return response.NewHTTPError(http.StatusUnsupportedMediaType, err.Error())
	case errors.Is(err, binder.ErrFailedToParseJSON):
		return response.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return err
}

// PanicError exposes the recovered value and stack trace of a handler panic.
type PanicError interface {
	error
	Value() any
	Stack() []byte
}

type panicError struct {
	value any
	stack []byte
}

func (e *panicError) Error() string {
	return fmt.Sprintf("panic: %v", e.value)
}

func (e *panicError) Value() any {
	return e.value
}

func (e *panicError) Stack() []byte {
	return e.stack
}

func (e *panicError) Unwrap() error {
	if err, ok := e.value.(error); ok {
		return err
	}
	return nil
}
