package middleware

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/dmitrymomot/dispatch/core/handler"
)

type requestIDContextKey struct{}

// maxInboundIDLength caps accepted inbound request IDs so a hostile header
// cannot bloat logs.
const maxInboundIDLength = 64

// RequestIDConfig configures the request ID middleware.
type RequestIDConfig struct {
	// Skip disables the middleware for requests where it returns true.
	Skip func(ctx handler.Context) bool

	// Generator creates new request IDs. Defaults to UUID v4.
	Generator func() string

	// HeaderName is the request and response header carrying the ID.
	// Defaults to "X-Request-ID".
	HeaderName string

	// TrustInbound reuses an ID already present on the incoming request
	// instead of generating one. Enable only behind a proxy that sets or
	// sanitizes the header.
	TrustInbound bool
}

// RequestID tags each request with a generated UUID, stores it in the
// context and echoes it in the response headers.
func RequestID[C handler.Context]() handler.Middleware[C] {
	return RequestIDWithConfig[C](RequestIDConfig{})
}

// RequestIDWithConfig is RequestID with explicit configuration.
func RequestIDWithConfig[C handler.Context](cfg RequestIDConfig) handler.Middleware[C] {
	if cfg.HeaderName == "" {
		cfg.HeaderName = "X-Request-ID"
	}
	if cfg.Generator == nil {
		cfg.Generator = func() string {
			return uuid.New().String()
		}
	}

	return func(next handler.HandlerFunc[C]) handler.HandlerFunc[C] {
		return func(ctx C) handler.Response {
			if cfg.Skip != nil && cfg.Skip(ctx) {
				return next(ctx)
			}

			id := ""
			if cfg.TrustInbound {
				if inbound := ctx.Request().Header.Get(cfg.HeaderName); inbound != "" && len(inbound) <= maxInboundIDLength {
					id = inbound
				}
			}
			if id == "" {
				id = cfg.Generator()
			}

			ctx.SetValue(requestIDContextKey{}, id)

			resp := next(ctx)
			if resp == nil {
				return nil
			}
			return func(w http.ResponseWriter, r *http.Request) error {
				w.Header().Set(cfg.HeaderName, id)
				return resp(w, r)
			}
		}
	}
}

// GetRequestID returns the request ID stored by the middleware, if any.
func GetRequestID(ctx handler.Context) (string, bool) {
	id, ok := ctx.Value(requestIDContextKey{}).(string)
	return id, ok
}
