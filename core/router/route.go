package router

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/dmitrymomot/dispatch/core/handler"
)

// Route declares one dispatchable endpoint. Path may contain {name}
// parameter segments. Guards run in declaration order before the handler;
// the first denial wins.
type Route[C handler.Context] struct {
	Path        string
	Method      string
	Description string
	Handler     handler.HandlerFunc[C]
	Guards      []handler.Guard[C]
}

// RouteInfo describes a registered route for introspection.
type RouteInfo struct {
	Method      string
	Path        string
	Description string
}

// route pairs a declaration with its compiled matcher.
type route[C handler.Context] struct {
	Route[C]
	pattern *pattern
}

var allowedMethods = map[string]struct{}{
	http.MethodGet:    {},
	http.MethodPost:   {},
	http.MethodPut:    {},
	http.MethodDelete: {},
}

// Registry holds compiled routes in declaration order. Lookup walks the
// declarations and the first route whose pattern and method both match wins,
// so more specific paths should be declared before overlapping parameterized
// ones. A registry is immutable after construction and safe for concurrent
// use.
type Registry[C handler.Context] struct {
	routes []route[C]
}

// NewRegistry compiles the given declarations into a registry. It fails on
// the first invalid declaration: unsupported method, uncompilable path,
// missing handler, or a (method, path) pair that was already declared.
func NewRegistry[C handler.Context](declarations ...Route[C]) (*Registry[C], error) {
	reg := &Registry[C]{routes: make([]route[C], 0, len(declarations))}
	seen := make(map[string]struct{}, len(declarations))

	for _, decl := range declarations {
		method := strings.ToUpper(strings.TrimSpace(decl.Method))
		if _, ok := allowedMethods[method]; !ok {
			return nil, fmt.Errorf("%w: %q %s", ErrInvalidMethod, decl.Method, decl.Path)
		}
		decl.Method = method

		if decl.Handler == nil {
			return nil, fmt.Errorf("%w: %s %s", ErrNilHandler, method, decl.Path)
		}

		p, err := compile(decl.Path)
		if err != nil {
			return nil, err
		}

		key := method + " " + decl.Path
		if _, dup := seen[key]; dup {
			return nil, fmt.Errorf("%w: %s %s", ErrDuplicateRoute, method, decl.Path)
		}
		seen[key] = struct{}{}

		reg.routes = append(reg.routes, route[C]{Route: decl, pattern: p})
	}

	return reg, nil
}

// MustRegistry is like NewRegistry but panics on error. Route tables are
// static, so a bad declaration is a programming error that should stop the
// process before it starts serving.
func MustRegistry[C handler.Context](declarations ...Route[C]) *Registry[C] {
	reg, err := NewRegistry(declarations...)
	if err != nil {
		panic(err)
	}
	return reg
}

// lookup returns the first declared route matching both method and path,
// along with captured path parameters.
func (reg *Registry[C]) lookup(method, path string) (*route[C], map[string]string, bool) {
	for i := range reg.routes {
		rt := &reg.routes[i]
		if rt.Method != method {
			continue
		}
		if params, ok := rt.pattern.match(path); ok {
			return rt, params, true
		}
	}
	return nil, nil, false
}

// Routes lists the registered routes in declaration order.
func (reg *Registry[C]) Routes() []RouteInfo {
	infos := make([]RouteInfo, len(reg.routes))
	for i := range reg.routes {
		infos[i] = RouteInfo{
			Method:      reg.routes[i].Method,
			Path:        reg.routes[i].Path,
			Description: reg.routes[i].Description,
		}
	}
	return infos
}
