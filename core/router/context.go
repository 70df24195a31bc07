package router

import (
	"context"
	"net/http"
	"time"
)

// Context is the default request context. It satisfies handler.Context by
// delegating deadline and cancellation to the request's context and exposing
// captured path parameters.
type Context struct {
	w      http.ResponseWriter
	r      *http.Request
	params map[string]string
}

// NewContext builds the default context. Custom context types typically
// embed *Context and construct it here inside their WithContextFactory.
func NewContext(w http.ResponseWriter, r *http.Request, params map[string]string) *Context {
	return &Context{w: w, r: r, params: params}
}

func (c *Context) Deadline() (time.Time, bool) {
	return c.r.Context().Deadline()
}

func (c *Context) Done() <-chan struct{} {
	return c.r.Context().Done()
}

func (c *Context) Err() error {
	return c.r.Context().Err()
}

func (c *Context) Value(key any) any {
	return c.r.Context().Value(key)
}

// Request returns the underlying HTTP request.
func (c *Context) Request() *http.Request {
	return c.r
}

// ResponseWriter returns the underlying response writer.
func (c *Context) ResponseWriter() http.ResponseWriter {
	return c.w
}

// Param returns the captured path parameter for key, or "" when the route
// declares no such parameter.
func (c *Context) Param(key string) string {
	return c.params[key]
}

// SetValue stores a value in the request context, visible to later pipeline
// steps through Value.
func (c *Context) SetValue(key, val any) {
	c.r = c.r.WithContext(context.WithValue(c.r.Context(), key, val))
}
