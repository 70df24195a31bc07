// Package router dispatches HTTP requests through a declared route table and
// a fixed processing pipeline. Routes are compiled once at startup; requests
// then pass through cross-origin policy, access logging, registered
// middleware, route guards and body validation before the handler runs.
// Failures from any step converge on one error handler, so clients always
// receive the same JSON envelope regardless of where a request died.
//
// # Features
//
//   - Declarative route table compiled and validated at startup
//   - First-match routing in declaration order with {name} path parameters
//   - Duplicate (method, path) declarations fail registration
//   - Cross-origin policy with localhost always permitted and every OPTIONS
//     request answered before guards run
//   - Route guards with allow/deny decisions and short-circuit evaluation
//   - JSON-only request bodies with size limits enforced before parsing
//   - Single error path: handler errors, guard denials, panics and body
//     failures all render the {"error": "..."} envelope
//   - Type-safe custom contexts through generics
//
// # Basic Usage
//
// Declare routes, compile them into a registry and serve:
//
//	import (
//		"github.com/dmitrymomot/dispatch/core/handler"
//		"github.com/dmitrymomot/dispatch/core/response"
//		"github.com/dmitrymomot/dispatch/core/router"
//	)
//
//	registry := router.MustRegistry(
//		router.Route[*router.Context]{
//			Method: "GET", Path: "/users/{id}",
//			Handler: func(ctx *router.Context) handler.Response {
//				return response.JSON(map[string]string{"id": ctx.Param("id")})
//			},
//		},
//	)
//
//	d := router.New(registry,
//		router.WithLogger(log),
//		router.WithCORS(router.CORSConfig{AllowOrigins: []string{"https://app.example.com"}}),
//	)
//	http.ListenAndServe(":8080", d)
//
// Routing is first-match: declare specific paths before overlapping
// parameterized ones. A request whose method matches no declaration gets the
// same 404 as an unknown path.
//
// # Guards
//
// Guards run in declaration order before the handler and stop at the first
// denial. OPTIONS requests never reach them:
//
//	router.Route[*router.Context]{
//		Method: "POST", Path: "/admin/reports",
//		Guards: []handler.Guard[*router.Context]{requireSession, requireAdmin},
//		Handler: createReport,
//	}
//
// A denial renders its status and message through the standard envelope. A
// guard that denies without a valid status is a bug and surfaces as a 500.
//
// # Custom Contexts
//
// Any type satisfying handler.Context can flow through the pipeline; provide
// a factory when C is not *router.Context:
//
//	d := router.New(registry,
//		router.WithContextFactory(func(w http.ResponseWriter, r *http.Request, params map[string]string) *AppContext {
//			return &AppContext{Context: router.NewContext(w, r, params)}
//		}),
//	)
package router
