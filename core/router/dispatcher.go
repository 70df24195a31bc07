package router

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"runtime/debug"
	"strings"
	"time"

	"github.com/dmitrymomot/dispatch/core/binder"
	"github.com/dmitrymomot/dispatch/core/handler"
	"github.com/dmitrymomot/dispatch/core/logger"
	"github.com/dmitrymomot/dispatch/core/response"
	"github.com/dmitrymomot/dispatch/pkg/clientip"
)

// Dispatcher routes requests through a fixed pipeline: cross-origin policy,
// access logging, registered middleware, route guards, body validation and
// finally the route handler. Every failure, from any step, funnels into a
// single error handler so clients always see the same envelope.
type Dispatcher[C handler.Context] struct {
	registry     *Registry[C]
	cors         corsPolicy
	middlewares  []handler.Middleware[C]
	errorHandler handler.ErrorHandler[C]
	newContext   func(w http.ResponseWriter, r *http.Request, params map[string]string) C
	logger       *slog.Logger
	maxBodySize  int64
}

// New creates a dispatcher over the given registry. Defaults: JSON error
// envelope, discarded logs, a 1MB body limit and a cross-origin policy that
// only admits same-origin and localhost traffic. Panics when registry is nil
// or when C is a custom context type and no WithContextFactory is given;
// both are wiring bugs that must not survive startup.
func New[C handler.Context](registry *Registry[C], opts ...Option[C]) *Dispatcher[C] {
	if registry == nil {
		panic(ErrNilRegistry)
	}

	d := &Dispatcher[C]{
		registry:     registry,
		errorHandler: response.JSONErrorHandler[C],
		logger:       slog.New(slog.NewTextHandler(io.Discard, nil)),
		maxBodySize:  binder.DefaultMaxJSONSize,
	}

	for _, opt := range opts {
		if opt != nil {
			opt(d)
		}
	}

	if d.newContext == nil {
		var zero C
		if _, ok := any(zero).(*Context); !ok {
			panic(ErrNoContextFactory)
		}
		d.newContext = func(w http.ResponseWriter, r *http.Request, params map[string]string) C {
			return any(NewContext(w, r, params)).(C)
		}
	}

	return d
}

// Use appends middleware to the pipeline. Middleware runs between the access
// log and guard evaluation, in registration order. Not safe to call once the
// dispatcher is serving.
func (d *Dispatcher[C]) Use(mw ...handler.Middleware[C]) {
	for _, m := range mw {
		if m != nil {
			d.middlewares = append(d.middlewares, m)
		}
	}
}

// Routes lists the registered routes in declaration order.
func (d *Dispatcher[C]) Routes() []RouteInfo {
	return d.registry.Routes()
}

// ServeHTTP implements http.Handler.
func (d *Dispatcher[C]) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ww := newResponseWriter(w)

	path := r.URL.EscapedPath()
	if path == "" {
		path = "/"
	}

	origin := r.Header.Get("Origin")
	ip := clientip.GetIP(r)
	start := time.Now()

	rt, params, found := d.registry.lookup(r.Method, path)
	ctx := d.newContext(ww, r, params)

	logAccess := false
	defer func() {
		if rec := recover(); rec != nil {
			perr := &panicError{value: rec, stack: debug.Stack()}
			if ww.Written() {
				d.logger.LogAttrs(r.Context(), slog.LevelError, "panic after response written",
					logger.Method(r.Method), logger.Path(path),
					logger.Error(perr), slog.String("stack", string(perr.Stack())))
			} else {
				d.fail(ctx, ww, r, path, perr)
			}
		}
		if logAccess {
			d.logger.LogAttrs(r.Context(), accessLevel(ww.Status()), "request completed",
				logger.Method(r.Method), logger.Path(path), logger.ClientIP(ip),
				logger.StatusCode(ww.Status()), logger.Duration(time.Since(start)))
		}
	}()

	// Cross-origin policy comes first: rejected origins never reach the
	// access log, guards or handlers, and get no CORS headers back.
	if !d.cors.permits(origin) {
		d.logger.LogAttrs(r.Context(), slog.LevelError, "cross-origin request rejected",
			logger.Origin(origin), logger.Method(r.Method), logger.Path(path), logger.ClientIP(ip))
		d.fail(ctx, ww, r, path, ErrOriginNotAllowed)
		return
	}

	// Every OPTIONS request is answered here, so guards never see one.
	if r.Method == http.MethodOptions {
		d.cors.writePreflight(ww, r, origin)
		return
	}

	if origin != "" {
		d.cors.allowOrigin(ww.Header(), origin)
	}

	logAccess = true

	fn := d.dispatch(rt, found)
	if len(d.middlewares) > 0 {
		fn = chain(d.middlewares, fn)
	}

	resp := fn(ctx)
	if resp == nil {
		d.fail(ctx, ww, r, path, ErrNilResponse)
		return
	}
	if err := resp(ww, r); err != nil {
		d.fail(ctx, ww, r, path, err)
	}
}

// dispatch builds the innermost pipeline step for one request: route
// resolution outcome, guard evaluation, body validation, handler.
func (d *Dispatcher[C]) dispatch(rt *route[C], found bool) handler.HandlerFunc[C] {
	return func(ctx C) handler.Response {
		r := ctx.Request()

		// OPTIONS is answered before dispatch; this holds even if a
		// middleware rewrites the method.
		if r.Method == http.MethodOptions {
			return response.NoContent()
		}

		if !found {
			return response.Error(ErrUnknownRoute)
		}

		for _, guard := range rt.Guards {
			decision := guard(ctx)
			if decision.Allowed {
				continue
			}
			if decision.Status < 100 || decision.Status > 599 {
				return response.Error(fmt.Errorf("%w: got %d", ErrGuardDecision, decision.Status))
			}
			message := decision.Message
			if message == "" {
				message = http.StatusText(decision.Status)
			}
			return response.Error(response.NewHTTPError(decision.Status, message))
		}

		if err := d.checkBody(r); err != nil {
			return response.Error(err)
		}

		return rt.Handler(ctx)
	}
}

// checkBody enforces the body contract once guards have passed: JSON is the
// only accepted media type, declared oversizes are rejected before any read,
// and bodies of unknown length are capped so no later read can exceed the
// limit.
func (d *Dispatcher[C]) checkBody(r *http.Request) error {
	if r.Body == nil || r.Body == http.NoBody || r.ContentLength == 0 {
		return nil
	}

	if r.ContentLength > d.maxBodySize {
		return fmt.Errorf("%w: declared %d bytes, limit is %d bytes",
			binder.ErrBodyTooLarge, r.ContentLength, d.maxBodySize)
	}

	contentType := r.Header.Get("Content-Type")
	if contentType == "" {
		return fmt.Errorf("%w: expected application/json", binder.ErrMissingContentType)
	}
	mediaType := contentType
	if idx := strings.Index(contentType, ";"); idx != -1 {
		mediaType = strings.TrimSpace(contentType[:idx])
	}
	if mediaType != "application/json" {
		return fmt.Errorf("%w: got %s, expected application/json", binder.ErrUnsupportedMediaType, mediaType)
	}

	binder.LimitBody(r, d.maxBodySize)
	return nil
}

// fail is the single error path for the whole pipeline. It normalizes body
// failures to their HTTP statuses, logs by severity and renders the JSON
// envelope, unless a partial response already went out.
func (d *Dispatcher[C]) fail(ctx C, ww *responseWriter, r *http.Request, path string, err error) {
	err = normalizeError(err)
	status := statusOf(err)

	if status >= http.StatusInternalServerError {
		attrs := []slog.Attr{logger.Method(r.Method), logger.Path(path), logger.Error(err)}
		var perr PanicError
		if errors.As(err, &perr) {
			attrs = append(attrs, slog.String("stack", string(perr.Stack())))
		}
		d.logger.LogAttrs(r.Context(), slog.LevelError, "request failed", attrs...)
	} else {
		d.logger.LogAttrs(r.Context(), slog.LevelDebug, "request failed",
			logger.Method(r.Method), logger.Path(path), logger.StatusCode(status), logger.Error(err))
	}

	if ww.Written() {
		d.logger.LogAttrs(r.Context(), slog.LevelError, "error after response written",
			logger.Method(r.Method), logger.Path(path), logger.StatusCode(ww.Status()), logger.Error(err))
		return
	}

	d.errorHandler(ctx, err)
}

// accessLevel maps a final response status to its access log level.
func accessLevel(status int) slog.Level {
	switch {
	case status >= http.StatusInternalServerError:
		return slog.LevelError
	case status >= http.StatusBadRequest:
		return slog.LevelWarn
	default:
		return slog.LevelInfo
	}
}
