package app

import (
	"net/http"

	"github.com/dmitrymomot/dispatch/core/guard"
	"github.com/dmitrymomot/dispatch/core/router"
	"github.com/dmitrymomot/dispatch/middleware"
)

// Context is the per-request context used by application handlers. It
// embeds the router context and adds accessors for values stored by
// guards and middleware.
type Context struct {
	*router.Context
}

// Subject returns the authenticated subject when the request passed the
// bearer guard, or an empty string.
func (c *Context) Subject() string {
	sub, _ := guard.GetSubject(c)
	return sub
}

// RequestID returns the request identifier assigned by the middleware,
// or an empty string.
func (c *Context) RequestID() string {
	id, _ := middleware.GetRequestID(c)
	return id
}

func newContext(w http.ResponseWriter, r *http.Request, params map[string]string) *Context {
	return &Context{Context: router.NewContext(w, r, params)}
}
