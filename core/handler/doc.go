// Package handler provides the types and interfaces for HTTP request
// processing with type-safe context handling, guard chains, and middleware
// support. It defines the core abstractions the router dispatches through.
//
// # Features
//
//   - Type-safe HTTP handlers using Go generics
//   - Custom context interface for request-specific data
//   - Guard protocol for pre-handler access decisions
//   - Composable middleware system with type safety
//   - Clean separation between response generation and rendering
//   - Error handling abstraction funneling all failures to one place
//
// # Core Types
//
//	import "github.com/dmitrymomot/dispatch/core/handler"
//
//	// Response function renders HTTP responses
//	type Response func(w http.ResponseWriter, r *http.Request) error
//
//	// Type-safe handler with custom context
//	type HandlerFunc[C Context] func(ctx C) Response
//
//	// Access decision made before the handler runs
//	type Guard[C Context] func(ctx C) Decision
//
//	// Error handling function
//	type ErrorHandler[C Context] func(ctx C, err error)
//
//	// Middleware function for handler composition
//	type Middleware[C Context] func(next HandlerFunc[C]) HandlerFunc[C]
//
// # Context Interface
//
// The Context interface extends Go's standard context.Context with
// HTTP-specific methods:
//
//	type Context interface {
//		context.Context                      // Standard context methods
//		Request() *http.Request              // Access to HTTP request
//		ResponseWriter() http.ResponseWriter // Access to response writer
//		Param(key string) string             // Get path parameters
//		SetValue(key, val any)               // Store request-scoped values
//	}
//
// # Basic Handler Implementation
//
//	func helloHandler(ctx handler.Context) handler.Response {
//		name := ctx.Param("name")
//		if name == "" {
//			name = "World"
//		}
//
//		return func(w http.ResponseWriter, r *http.Request) error {
//			w.Header().Set("Content-Type", "text/plain")
//			w.WriteHeader(http.StatusOK)
//			_, err := w.Write([]byte("Hello, " + name + "!"))
//			return err
//		}
//	}
//
// # Guards
//
// A guard inspects the request context and either lets processing continue
// or rejects it with a status code and message. Guards attach to routes and
// run in declaration order; the first denial wins and later guards never
// execute:
//
//	func requireAPIKey[C handler.Context](valid string) handler.Guard[C] {
//		return func(ctx C) handler.Decision {
//			if ctx.Request().Header.Get("X-API-Key") != valid {
//				return handler.Deny(http.StatusForbidden, "invalid api key")
//			}
//			return handler.Allow()
//		}
//	}
//
// A denial renders through the same error envelope as every other pipeline
// failure. Guards performing I/O (token lookups, credential checks) should
// honor ctx cancellation and translate their own infrastructure failures
// into denials with an appropriate status.
//
// # Middleware
//
// Middleware wraps handlers for cross-cutting behavior:
//
//	func noCache[C handler.Context]() handler.Middleware[C] {
//		return func(next handler.HandlerFunc[C]) handler.HandlerFunc[C] {
//			return func(ctx C) handler.Response {
//				resp := next(ctx)
//				return func(w http.ResponseWriter, r *http.Request) error {
//					w.Header().Set("Cache-Control", "no-store")
//					return resp(w, r)
//				}
//			}
//		}
//	}
//
// # Testing Handlers
//
// The separation between producing a Response and rendering it makes
// handlers testable without a running server:
//
//	req := httptest.NewRequest("GET", "/users/123", nil)
//	w := httptest.NewRecorder()
//	resp := userHandler(testContext(req, w))
//	require.NoError(t, resp(w, req))
//	assert.Equal(t, http.StatusOK, w.Code)
package handler
