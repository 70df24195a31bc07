package router

import "github.com/dmitrymomot/dispatch/core/handler"

// chain wraps endpoint with the given middleware so the first middleware in
// the slice is the outermost at execution time.
func chain[C handler.Context](middlewares []handler.Middleware[C], endpoint handler.HandlerFunc[C]) handler.HandlerFunc[C] {
	fn := endpoint
	for i := len(middlewares) - 1; i >= 0; i-- {
		fn = middlewares[i](fn)
	}
	return fn
}
