package router

import (
	"net/http"
	"strconv"
	"strings"
)

// CORSConfig declares the cross-origin policy enforced on every request.
type CORSConfig struct {
	// AllowOrigins lists exact origins permitted for cross-origin requests,
	// e.g. "https://app.example.com". Origins starting with
	// http://localhost are always permitted regardless of this list, as are
	// requests carrying no Origin header.
	AllowOrigins []string

	// MaxAge is the number of seconds browsers may cache a preflight
	// result. Zero omits the header.
	MaxAge int
}

// corsPolicy is the compiled form of CORSConfig with the allow list
// flattened into a set.
type corsPolicy struct {
	allowOrigins map[string]struct{}
	maxAge       int
}

func newCORSPolicy(cfg CORSConfig) corsPolicy {
	p := corsPolicy{maxAge: cfg.MaxAge}
	if len(cfg.AllowOrigins) > 0 {
		p.allowOrigins = make(map[string]struct{}, len(cfg.AllowOrigins))
		for _, origin := range cfg.AllowOrigins {
			origin = strings.TrimSuffix(strings.TrimSpace(origin), "/")
			if origin != "" {
				p.allowOrigins[origin] = struct{}{}
			}
		}
	}
	return p
}

const localOriginPrefix = "http://localhost"

// permits reports whether a request carrying the given Origin header may
// proceed. An empty origin means same-origin or non-browser traffic and
// always passes; local development origins pass on any port.
func (p corsPolicy) permits(origin string) bool {
	if origin == "" {
		return true
	}
	if strings.HasPrefix(origin, localOriginPrefix) {
		return true
	}
	_, ok := p.allowOrigins[strings.TrimSuffix(origin, "/")]
	return ok
}

var corsAllowMethods = strings.Join([]string{
	http.MethodGet,
	http.MethodPost,
	http.MethodPut,
	http.MethodDelete,
	http.MethodOptions,
}, ", ")

const corsAllowHeaders = "Origin, Content-Type, Accept, Authorization, X-Request-ID"

// writePreflight answers an OPTIONS request for a permitted origin with 204
// and the Access-Control headers browsers expect. An OPTIONS request without
// an Origin header gets a bare 204.
func (p corsPolicy) writePreflight(w http.ResponseWriter, r *http.Request, origin string) {
	if origin != "" {
		h := w.Header()
		h.Set("Access-Control-Allow-Origin", origin)
		h.Set("Access-Control-Allow-Methods", corsAllowMethods)
		if requested := r.Header.Get("Access-Control-Request-Headers"); requested != "" {
			h.Set("Access-Control-Allow-Headers", requested)
		} else {
			h.Set("Access-Control-Allow-Headers", corsAllowHeaders)
		}
		if p.maxAge > 0 {
			h.Set("Access-Control-Max-Age", strconv.Itoa(p.maxAge))
		}
		h.Add("Vary", "Origin")
		h.Add("Vary", "Access-Control-Request-Method")
		h.Add("Vary", "Access-Control-Request-Headers")
	}
	w.WriteHeader(http.StatusNoContent)
}

// allowOrigin marks a permitted cross-origin response so browsers expose it
// to the calling script. Headers set here land on whatever is written later,
// including error envelopes.
func (p corsPolicy) allowOrigin(h http.Header, origin string) {
	h.Set("Access-Control-Allow-Origin", origin)
	h.Add("Vary", "Origin")
}
