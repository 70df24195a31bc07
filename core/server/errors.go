package server

import "errors"

var (
	// ErrMissingHandler is returned by Start when the server was created
	// without a handler.
	ErrMissingHandler = errors.New("server handler is required")

	// ErrFailedToListen is returned by Start when the address cannot be bound.
	ErrFailedToListen = errors.New("failed to listen on server address")

	// ErrHTTPServer wraps unexpected serve loop failures surfaced by Run.
	ErrHTTPServer = errors.New("HTTP server error")

	// ErrHTTPShutdown wraps graceful shutdown failures.
	ErrHTTPShutdown = errors.New("HTTP shutdown error")
)
