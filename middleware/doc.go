// Package middleware provides pipeline middleware for cross-cutting request
// concerns. Middleware slots between the dispatcher's access log and guard
// evaluation and follows one pattern: a generic constructor over the
// handler.Context type, a config struct with a Skip hook, and a context
// helper for reading stored values.
//
// # Request ID
//
// RequestID tags every request with an identifier for correlation across
// logs and services:
//
//	import "github.com/dmitrymomot/dispatch/middleware"
//
//	d := router.New(registry,
//		router.WithMiddleware(middleware.RequestID[*router.Context]()),
//	)
//
//	func myHandler(ctx *router.Context) handler.Response {
//		id, _ := middleware.GetRequestID(ctx)
//		...
//	}
//
// Behind a trusted proxy the inbound header can be reused:
//
//	middleware.RequestIDWithConfig[*router.Context](middleware.RequestIDConfig{
//		TrustInbound: true,
//	})
package middleware
