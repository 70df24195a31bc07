package guard

import (
	"net/http"

	"github.com/dmitrymomot/dispatch/core/handler"
)

// Allow passes every request. Useful as a placeholder while a real policy is
// under a feature flag.
func Allow[C handler.Context]() handler.Guard[C] {
	return func(ctx C) handler.Decision {
		return handler.Allow()
	}
}

// DenyAll refuses every request with 403 and the given message. Acts as a
// kill switch for routes that must stay declared but unreachable, e.g.
// during maintenance.
func DenyAll[C handler.Context](message string) handler.Guard[C] {
	return func(ctx C) handler.Decision {
		return handler.Deny(http.StatusForbidden, message)
	}
}
