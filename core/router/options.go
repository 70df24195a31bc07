package router

import (
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/dispatch/core/handler"
)

// Option configures a Dispatcher during construction.
type Option[C handler.Context] func(*Dispatcher[C])

// WithErrorHandler replaces the default JSON error handler. The handler
// receives every failure the pipeline forwards: handler errors, guard
// denials, body parsing failures, unknown routes and recovered panics.
func WithErrorHandler[C handler.Context](h handler.ErrorHandler[C]) Option[C] {
	return func(d *Dispatcher[C]) {
		if h != nil {
			d.errorHandler = h
		}
	}
}

// WithMiddleware appends middleware that runs between the access log and the
// guard evaluation, in the order given.
func WithMiddleware[C handler.Context](mw ...handler.Middleware[C]) Option[C] {
	return func(d *Dispatcher[C]) {
		for _, m := range mw {
			if m != nil {
				d.middlewares = append(d.middlewares, m)
			}
		}
	}
}

// WithContextFactory sets the constructor for custom context types. Required
// whenever C is not *Context.
func WithContextFactory[C handler.Context](factory func(w http.ResponseWriter, r *http.Request, params map[string]string) C) Option[C] {
	return func(d *Dispatcher[C]) {
		if factory != nil {
			d.newContext = factory
		}
	}
}

// WithLogger sets the logger for access records, rejected origins and
// pipeline failures. Without it logs are discarded.
func WithLogger[C handler.Context](logger *slog.Logger) Option[C] {
	return func(d *Dispatcher[C]) {
		if logger != nil {
			d.logger = logger
		}
	}
}

// WithCORS sets the cross-origin policy evaluated on every request.
func WithCORS[C handler.Context](cfg CORSConfig) Option[C] {
	return func(d *Dispatcher[C]) {
		d.cors = newCORSPolicy(cfg)
	}
}

// WithMaxBodySize caps accepted request bodies in bytes. Requests declaring
// a larger Content-Length are rejected with 413 before any read; bodies of
// unknown length are cut off at the limit while parsing. Non-positive values
// keep the default.
func WithMaxBodySize[C handler.Context](limit int64) Option[C] {
	return func(d *Dispatcher[C]) {
		if limit > 0 {
			d.maxBodySize = limit
		}
	}
}
