// Package response provides HTTP response utilities for the dispatch
// pipeline: JSON and plain-text renderers, a status-carrying HTTPError that
// serializes to the standard failure envelope, and the centralized JSON
// error handler every pipeline failure funnels through.
//
// # Features
//
//   - JSON responses with proper Content-Type headers
//   - Status-carrying errors rendering as {"error": "<message>"}
//   - One error handler as the single serialization point for failures
//   - Await helpers that fold asynchronous failures into the same path
//
// # Basic Usage
//
// The package provides functions that return handler.Response for use in
// HTTP handlers:
//
//	import "github.com/dmitrymomot/dispatch/core/response"
//
//	// JSON responses
//	func statusHandler(ctx handler.Context) handler.Response {
//		return response.JSON(map[string]string{"status": "ok"})
//	}
//
//	// Failing through the central error path
//	func brokenHandler(ctx handler.Context) handler.Response {
//		return response.Error(errors.New("database unavailable"))
//	}
//
// # Failure Envelope
//
// Every failure renders as a single JSON object with one field:
//
//	{"error": "database unavailable"}
//
// The status code comes from the error when it carries one (HTTPError or
// any error implementing StatusCode() int) and defaults to 500 otherwise.
// JSONErrorHandler performs this conversion; wiring it as the dispatcher's
// error handler guarantees every failure, synchronous or asynchronous,
// serializes identically.
//
// # Deferred Work
//
// Handlers that start work asynchronously fold the result back into the
// response with Await:
//
//	func createHandler(ctx handler.Context) handler.Response {
//		fut := async.Exec(ctx, payload, store.Save)
//		return response.Await(fut, response.Status(http.StatusAccepted))
//	}
//
// If the future fails, the error reaches the same error handler that a
// synchronous response.Error(err) would, byte for byte.
package response
