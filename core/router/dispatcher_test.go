package router_test

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/dispatch/core/binder"
	"github.com/dmitrymomot/dispatch/core/handler"
	"github.com/dmitrymomot/dispatch/core/response"
	"github.com/dmitrymomot/dispatch/core/router"
	"github.com/dmitrymomot/dispatch/pkg/async"
)

func serve(h http.Handler, r *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, r)
	return rec
}

func singleRoute(method, path string, fn handler.HandlerFunc[*router.Context], guards ...handler.Guard[*router.Context]) *router.Registry[*router.Context] {
	return router.MustRegistry(
		router.Route[*router.Context]{Method: method, Path: path, Handler: fn, Guards: guards},
	)
}

func TestDispatcherRouting(t *testing.T) {
	t.Parallel()

	t.Run("dispatches by method and path with params", func(t *testing.T) {
		t.Parallel()

		reg := router.MustRegistry(
			router.Route[*router.Context]{Method: "GET", Path: "/users/{id}", Handler: func(ctx *router.Context) handler.Response {
				return response.JSON(map[string]string{"id": ctx.Param("id")})
			}},
		)
		d := router.New(reg)

		rec := serve(d, httptest.NewRequest(http.MethodGet, "/users/42", nil))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"id":"42"}`, rec.Body.String())
		assert.Contains(t, rec.Header().Get("Content-Type"), "application/json")
	})

	t.Run("declaration order decides overlapping matches", func(t *testing.T) {
		t.Parallel()

		reg := router.MustRegistry(
			router.Route[*router.Context]{Method: "GET", Path: "/users/me", Handler: func(ctx *router.Context) handler.Response {
				return response.String("static")
			}},
			router.Route[*router.Context]{Method: "GET", Path: "/users/{id}", Handler: func(ctx *router.Context) handler.Response {
				return response.String("param:" + ctx.Param("id"))
			}},
		)
		d := router.New(reg)

		rec := serve(d, httptest.NewRequest(http.MethodGet, "/users/me", nil))
		assert.Equal(t, "static", rec.Body.String())

		rec = serve(d, httptest.NewRequest(http.MethodGet, "/users/42", nil))
		assert.Equal(t, "param:42", rec.Body.String())
	})

	t.Run("earlier parameterized route shadows later static one", func(t *testing.T) {
		t.Parallel()

		reg := router.MustRegistry(
			router.Route[*router.Context]{Method: "GET", Path: "/users/{id}", Handler: func(ctx *router.Context) handler.Response {
				return response.String("param:" + ctx.Param("id"))
			}},
			router.Route[*router.Context]{Method: "GET", Path: "/users/me", Handler: func(ctx *router.Context) handler.Response {
				return response.String("static")
			}},
		)
		d := router.New(reg)

		rec := serve(d, httptest.NewRequest(http.MethodGet, "/users/me", nil))
		assert.Equal(t, "param:me", rec.Body.String())
	})

	t.Run("method mismatch is an unknown route", func(t *testing.T) {
		t.Parallel()

		d := router.New(singleRoute("GET", "/users", okHandler))

		rec := serve(d, httptest.NewRequest(http.MethodPost, "/users", nil))
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.JSONEq(t, `{"error":"Unknown route"}`, rec.Body.String())
		assert.Empty(t, rec.Header().Get("Allow"))
	})

	t.Run("unknown path renders the 404 envelope", func(t *testing.T) {
		t.Parallel()

		d := router.New(singleRoute("GET", "/users", okHandler))

		rec := serve(d, httptest.NewRequest(http.MethodGet, "/missing", nil))
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.JSONEq(t, `{"error":"Unknown route"}`, rec.Body.String())
	})

	t.Run("trailing slash does not match", func(t *testing.T) {
		t.Parallel()

		d := router.New(singleRoute("GET", "/users", okHandler))

		rec := serve(d, httptest.NewRequest(http.MethodGet, "/users/", nil))
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("encoded segments decode before dispatch", func(t *testing.T) {
		t.Parallel()

		d := router.New(singleRoute("GET", "/files/{name}", func(ctx *router.Context) handler.Response {
			return response.String(ctx.Param("name"))
		}))

		rec := serve(d, httptest.NewRequest(http.MethodGet, "/files/report%202.pdf", nil))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "report 2.pdf", rec.Body.String())
	})
}

func TestDispatcherErrors(t *testing.T) {
	t.Parallel()

	t.Run("status-carrying error renders its code and message", func(t *testing.T) {
		t.Parallel()

		d := router.New(singleRoute("GET", "/x", func(ctx *router.Context) handler.Response {
			return response.Error(response.ErrConflict.WithMessage("email already taken"))
		}))

		rec := serve(d, httptest.NewRequest(http.MethodGet, "/x", nil))
		assert.Equal(t, http.StatusConflict, rec.Code)
		assert.JSONEq(t, `{"error":"email already taken"}`, rec.Body.String())
	})

	t.Run("plain error renders 500 with its message", func(t *testing.T) {
		t.Parallel()

		d := router.New(singleRoute("GET", "/x", func(ctx *router.Context) handler.Response {
			return response.Error(errors.New("database gone"))
		}))

		rec := serve(d, httptest.NewRequest(http.MethodGet, "/x", nil))
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.JSONEq(t, `{"error":"database gone"}`, rec.Body.String())
	})

	t.Run("nil response renders 500", func(t *testing.T) {
		t.Parallel()

		d := router.New(singleRoute("GET", "/x", func(ctx *router.Context) handler.Response {
			return nil
		}))

		rec := serve(d, httptest.NewRequest(http.MethodGet, "/x", nil))
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})

	t.Run("panic recovers into the envelope", func(t *testing.T) {
		t.Parallel()

		d := router.New(singleRoute("GET", "/x", func(ctx *router.Context) handler.Response {
			panic("boom")
		}))

		rec := serve(d, httptest.NewRequest(http.MethodGet, "/x", nil))
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.JSONEq(t, `{"error":"panic: boom"}`, rec.Body.String())
	})

	t.Run("custom error handler replaces rendering", func(t *testing.T) {
		t.Parallel()

		d := router.New(
			singleRoute("GET", "/x", func(ctx *router.Context) handler.Response {
				return response.Error(errors.New("nope"))
			}),
			router.WithErrorHandler(func(ctx *router.Context, err error) {
				ctx.ResponseWriter().WriteHeader(http.StatusTeapot)
				_, _ = ctx.ResponseWriter().Write([]byte("custom: " + err.Error()))
			}),
		)

		rec := serve(d, httptest.NewRequest(http.MethodGet, "/x", nil))
		assert.Equal(t, http.StatusTeapot, rec.Code)
		assert.Equal(t, "custom: nope", rec.Body.String())
	})

	t.Run("error after partial write leaves the response alone", func(t *testing.T) {
		t.Parallel()

		var buf strings.Builder
		log := slog.New(slog.NewTextHandler(&buf, nil))

		d := router.New(
			singleRoute("GET", "/x", func(ctx *router.Context) handler.Response {
				return func(w http.ResponseWriter, r *http.Request) error {
					w.WriteHeader(http.StatusOK)
					_, _ = w.Write([]byte("partial"))
					return errors.New("stream broke")
				}
			}),
			router.WithLogger[*router.Context](log),
		)

		rec := serve(d, httptest.NewRequest(http.MethodGet, "/x", nil))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "partial", rec.Body.String())
		assert.Contains(t, buf.String(), "error after response written")
	})
}

func TestDispatcherGuards(t *testing.T) {
	t.Parallel()

	recordGuard := func(name string, calls *[]string, decision handler.Decision) handler.Guard[*router.Context] {
		return func(ctx *router.Context) handler.Decision {
			*calls = append(*calls, name)
			return decision
		}
	}

	t.Run("guards run in order before the handler", func(t *testing.T) {
		t.Parallel()

		var calls []string
		d := router.New(singleRoute("GET", "/x",
			func(ctx *router.Context) handler.Response {
				calls = append(calls, "handler")
				return response.NoContent()
			},
			recordGuard("first", &calls, handler.Allow()),
			recordGuard("second", &calls, handler.Allow()),
		))

		rec := serve(d, httptest.NewRequest(http.MethodGet, "/x", nil))
		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.Equal(t, []string{"first", "second", "handler"}, calls)
	})

	t.Run("first denial short-circuits the rest", func(t *testing.T) {
		t.Parallel()

		var calls []string
		d := router.New(singleRoute("GET", "/x",
			func(ctx *router.Context) handler.Response {
				calls = append(calls, "handler")
				return response.NoContent()
			},
			recordGuard("first", &calls, handler.Allow()),
			recordGuard("second", &calls, handler.Deny(http.StatusUnauthorized, "no session")),
			recordGuard("third", &calls, handler.Allow()),
		))

		rec := serve(d, httptest.NewRequest(http.MethodGet, "/x", nil))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.JSONEq(t, `{"error":"no session"}`, rec.Body.String())
		assert.Equal(t, []string{"first", "second"}, calls)
	})

	t.Run("denial without message uses the status text", func(t *testing.T) {
		t.Parallel()

		d := router.New(singleRoute("GET", "/x", okHandler,
			func(ctx *router.Context) handler.Decision {
				return handler.Deny(http.StatusForbidden, "")
			},
		))

		rec := serve(d, httptest.NewRequest(http.MethodGet, "/x", nil))
		assert.Equal(t, http.StatusForbidden, rec.Code)
		assert.JSONEq(t, `{"error":"Forbidden"}`, rec.Body.String())
	})

	t.Run("denial without status is a server error", func(t *testing.T) {
		t.Parallel()

		d := router.New(singleRoute("GET", "/x", okHandler,
			func(ctx *router.Context) handler.Decision {
				return handler.Decision{}
			},
		))

		rec := serve(d, httptest.NewRequest(http.MethodGet, "/x", nil))
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})

	t.Run("options requests bypass guards", func(t *testing.T) {
		t.Parallel()

		var calls []string
		d := router.New(singleRoute("GET", "/x", okHandler,
			recordGuard("guard", &calls, handler.Deny(http.StatusUnauthorized, "no session")),
		))

		rec := serve(d, httptest.NewRequest(http.MethodOptions, "/x", nil))
		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.Empty(t, calls)
	})
}

func TestDispatcherCORS(t *testing.T) {
	t.Parallel()

	newDispatcher := func(log *slog.Logger) *router.Dispatcher[*router.Context] {
		opts := []router.Option[*router.Context]{
			router.WithCORS[*router.Context](router.CORSConfig{AllowOrigins: []string{"https://app.example.com"}, MaxAge: 600}),
		}
		if log != nil {
			opts = append(opts, router.WithLogger[*router.Context](log))
		}
		return router.New(singleRoute("GET", "/data", okHandler), opts...)
	}

	t.Run("preflight for a permitted origin", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest(http.MethodOptions, "/data", nil)
		req.Header.Set("Origin", "https://app.example.com")
		req.Header.Set("Access-Control-Request-Method", http.MethodGet)

		rec := serve(newDispatcher(nil), req)
		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.Equal(t, "https://app.example.com", rec.Header().Get("Access-Control-Allow-Origin"))
		assert.Contains(t, rec.Header().Get("Access-Control-Allow-Methods"), http.MethodGet)
		assert.Equal(t, "600", rec.Header().Get("Access-Control-Max-Age"))
		assert.Contains(t, rec.Header().Values("Vary"), "Origin")
	})

	t.Run("localhost origins pass on any port", func(t *testing.T) {
		t.Parallel()

		for _, origin := range []string{"http://localhost", "http://localhost:3000", "http://localhost:5173"} {
			req := httptest.NewRequest(http.MethodOptions, "/data", nil)
			req.Header.Set("Origin", origin)

			rec := serve(newDispatcher(nil), req)
			assert.Equal(t, http.StatusNoContent, rec.Code, "origin %s", origin)
			assert.Equal(t, origin, rec.Header().Get("Access-Control-Allow-Origin"))
		}
	})

	t.Run("options without origin gets a bare 204", func(t *testing.T) {
		t.Parallel()

		rec := serve(newDispatcher(nil), httptest.NewRequest(http.MethodOptions, "/data", nil))
		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("options is answered even for unknown paths", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest(http.MethodOptions, "/never/registered", nil)
		req.Header.Set("Origin", "https://app.example.com")

		rec := serve(newDispatcher(nil), req)
		assert.Equal(t, http.StatusNoContent, rec.Code)
	})

	t.Run("rejected origin gets 403 without cors headers", func(t *testing.T) {
		t.Parallel()

		var buf strings.Builder
		log := slog.New(slog.NewTextHandler(&buf, nil))

		req := httptest.NewRequest(http.MethodOptions, "/data", nil)
		req.Header.Set("Origin", "https://evil.example.com")

		rec := serve(newDispatcher(log), req)
		assert.Equal(t, http.StatusForbidden, rec.Code)
		assert.JSONEq(t, `{"error":"Origin not allowed"}`, rec.Body.String())
		assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))

		out := buf.String()
		assert.Contains(t, out, "cross-origin request rejected")
		assert.Contains(t, out, "origin=https://evil.example.com")
		assert.Contains(t, out, "level=ERROR")
	})

	t.Run("rejected origin blocks non-options requests too", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest(http.MethodGet, "/data", nil)
		req.Header.Set("Origin", "https://evil.example.com")

		rec := serve(newDispatcher(nil), req)
		assert.Equal(t, http.StatusForbidden, rec.Code)
		assert.JSONEq(t, `{"error":"Origin not allowed"}`, rec.Body.String())
		assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("permitted origin decorates the response", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest(http.MethodGet, "/data", nil)
		req.Header.Set("Origin", "https://app.example.com")

		rec := serve(newDispatcher(nil), req)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "https://app.example.com", rec.Header().Get("Access-Control-Allow-Origin"))
		assert.Contains(t, rec.Header().Values("Vary"), "Origin")
	})

	t.Run("permitted origin marks error responses as well", func(t *testing.T) {
		t.Parallel()

		d := router.New(
			singleRoute("GET", "/fail", func(ctx *router.Context) handler.Response {
				return response.Error(response.ErrForbidden)
			}),
			router.WithCORS[*router.Context](router.CORSConfig{AllowOrigins: []string{"https://app.example.com"}}),
		)

		req := httptest.NewRequest(http.MethodGet, "/fail", nil)
		req.Header.Set("Origin", "https://app.example.com")

		rec := serve(d, req)
		assert.Equal(t, http.StatusForbidden, rec.Code)
		assert.Equal(t, "https://app.example.com", rec.Header().Get("Access-Control-Allow-Origin"))
	})
}

func TestDispatcherBodyStage(t *testing.T) {
	t.Parallel()

	echoHandler := func(ctx *router.Context) handler.Response {
		var payload map[string]any
		if err := binder.JSON()(ctx.Request(), &payload); err != nil {
			return response.Error(err)
		}
		return response.JSON(payload)
	}

	t.Run("accepts json bodies", func(t *testing.T) {
		t.Parallel()

		d := router.New(singleRoute("POST", "/x", echoHandler))

		req := httptest.NewRequest(http.MethodPost, "/x", strings.NewReader(`{"name":"ada"}`))
		req.Header.Set("Content-Type", "application/json")

		rec := serve(d, req)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"name":"ada"}`, rec.Body.String())
	})

	t.Run("rejects non-json media types", func(t *testing.T) {
		t.Parallel()

		d := router.New(singleRoute("POST", "/x", okHandler))

		req := httptest.NewRequest(http.MethodPost, "/x", strings.NewReader("name=ada"))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

		rec := serve(d, req)
		assert.Equal(t, http.StatusUnsupportedMediaType, rec.Code)
	})

	t.Run("rejects a body without content type", func(t *testing.T) {
		t.Parallel()

		d := router.New(singleRoute("POST", "/x", okHandler))

		rec := serve(d, httptest.NewRequest(http.MethodPost, "/x", strings.NewReader(`{}`)))
		assert.Equal(t, http.StatusUnsupportedMediaType, rec.Code)
	})

	t.Run("rejects declared oversize before reading", func(t *testing.T) {
		t.Parallel()

		handlerRan := false
		d := router.New(
			singleRoute("POST", "/x", func(ctx *router.Context) handler.Response {
				handlerRan = true
				return response.NoContent()
			}),
			router.WithMaxBodySize[*router.Context](16),
		)

		req := httptest.NewRequest(http.MethodPost, "/x", strings.NewReader(`{"padding":"aaaaaaaaaaaaaaaaaaaaaaaa"}`))
		req.Header.Set("Content-Type", "application/json")

		rec := serve(d, req)
		assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
		assert.False(t, handlerRan)
	})

	t.Run("caps bodies of unknown length", func(t *testing.T) {
		t.Parallel()

		d := router.New(
			singleRoute("POST", "/x", echoHandler),
			router.WithMaxBodySize[*router.Context](16),
		)

		req := httptest.NewRequest(http.MethodPost, "/x", strings.NewReader(`{"padding":"aaaaaaaaaaaaaaaaaaaaaaaa"}`))
		req.Header.Set("Content-Type", "application/json")
		req.ContentLength = -1

		rec := serve(d, req)
		assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
	})

	t.Run("malformed json renders 400", func(t *testing.T) {
		t.Parallel()

		d := router.New(singleRoute("POST", "/x", echoHandler))

		req := httptest.NewRequest(http.MethodPost, "/x", strings.NewReader(`{"name":`))
		req.Header.Set("Content-Type", "application/json")

		rec := serve(d, req)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("guard denial wins over body checks", func(t *testing.T) {
		t.Parallel()

		d := router.New(singleRoute("POST", "/x", okHandler,
			func(ctx *router.Context) handler.Decision {
				return handler.Deny(http.StatusUnauthorized, "no session")
			},
		))

		req := httptest.NewRequest(http.MethodPost, "/x", strings.NewReader("not json"))
		req.Header.Set("Content-Type", "text/plain")

		rec := serve(d, req)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("bodyless requests skip the checks", func(t *testing.T) {
		t.Parallel()

		d := router.New(singleRoute("GET", "/x", okHandler))

		rec := serve(d, httptest.NewRequest(http.MethodGet, "/x", nil))
		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestDispatcherAsyncParity(t *testing.T) {
	t.Parallel()

	failure := response.NewHTTPError(http.StatusBadGateway, "upstream exploded")

	reg := router.MustRegistry(
		router.Route[*router.Context]{Method: "GET", Path: "/sync", Handler: func(ctx *router.Context) handler.Response {
			return response.Error(failure)
		}},
		router.Route[*router.Context]{Method: "GET", Path: "/async", Handler: func(ctx *router.Context) handler.Response {
			fut := async.Exec(ctx, struct{}{}, func(context.Context, struct{}) error {
				return failure
			})
			return response.Await(fut, response.NoContent())
		}},
	)
	d := router.New(reg)

	recSync := serve(d, httptest.NewRequest(http.MethodGet, "/sync", nil))
	recAsync := serve(d, httptest.NewRequest(http.MethodGet, "/async", nil))

	assert.Equal(t, http.StatusBadGateway, recSync.Code)
	assert.Equal(t, recSync.Code, recAsync.Code)
	assert.Equal(t, recSync.Body.String(), recAsync.Body.String())
	assert.Equal(t, recSync.Header().Get("Content-Type"), recAsync.Header().Get("Content-Type"))
}

func TestDispatcherLogging(t *testing.T) {
	t.Parallel()

	t.Run("access log records the request", func(t *testing.T) {
		t.Parallel()

		var buf strings.Builder
		log := slog.New(slog.NewTextHandler(&buf, nil))

		d := router.New(singleRoute("GET", "/users/{id}", okHandler), router.WithLogger[*router.Context](log))

		req := httptest.NewRequest(http.MethodGet, "/users/7", nil)
		req.RemoteAddr = "[::ffff:203.0.113.5]:8080"
		serve(d, req)

		out := buf.String()
		assert.Contains(t, out, "request completed")
		assert.Contains(t, out, "method=GET")
		assert.Contains(t, out, "path=/users/7")
		assert.Contains(t, out, "client_ip=203.0.113.5", "mapped IPv4 addresses are logged in dotted form")
		assert.Contains(t, out, "status_code=200")
	})

	t.Run("failures log at error and keep the access record", func(t *testing.T) {
		t.Parallel()

		var buf strings.Builder
		log := slog.New(slog.NewTextHandler(&buf, nil))

		d := router.New(
			singleRoute("GET", "/x", func(ctx *router.Context) handler.Response {
				return response.Error(errors.New("database gone"))
			}),
			router.WithLogger[*router.Context](log),
		)

		serve(d, httptest.NewRequest(http.MethodGet, "/x", nil))

		out := buf.String()
		assert.Contains(t, out, "request failed")
		assert.Contains(t, out, "level=ERROR")
		assert.Contains(t, out, "database gone")
		assert.Contains(t, out, "request completed")
		assert.Contains(t, out, "status_code=500")
	})

	t.Run("preflights skip the access log", func(t *testing.T) {
		t.Parallel()

		var buf strings.Builder
		log := slog.New(slog.NewTextHandler(&buf, nil))

		d := router.New(singleRoute("GET", "/x", okHandler), router.WithLogger[*router.Context](log))

		req := httptest.NewRequest(http.MethodOptions, "/x", nil)
		req.Header.Set("Origin", "http://localhost:3000")
		serve(d, req)

		assert.NotContains(t, buf.String(), "request completed")
	})

	t.Run("rejected origins skip the access log", func(t *testing.T) {
		t.Parallel()

		var buf strings.Builder
		log := slog.New(slog.NewTextHandler(&buf, nil))

		d := router.New(singleRoute("GET", "/x", okHandler), router.WithLogger[*router.Context](log))

		req := httptest.NewRequest(http.MethodGet, "/x", nil)
		req.Header.Set("Origin", "https://evil.example.com")
		serve(d, req)

		out := buf.String()
		assert.Contains(t, out, "cross-origin request rejected")
		assert.NotContains(t, out, "request completed")
	})
}

func TestDispatcherMiddleware(t *testing.T) {
	t.Parallel()

	named := func(name string, calls *[]string) handler.Middleware[*router.Context] {
		return func(next handler.HandlerFunc[*router.Context]) handler.HandlerFunc[*router.Context] {
			return func(ctx *router.Context) handler.Response {
				*calls = append(*calls, name)
				return next(ctx)
			}
		}
	}

	t.Run("middleware runs before guards in registration order", func(t *testing.T) {
		t.Parallel()

		var calls []string
		d := router.New(
			singleRoute("GET", "/x",
				func(ctx *router.Context) handler.Response {
					calls = append(calls, "handler")
					return response.NoContent()
				},
				func(ctx *router.Context) handler.Decision {
					calls = append(calls, "guard")
					return handler.Allow()
				},
			),
			router.WithMiddleware(named("first", &calls), named("second", &calls)),
		)

		serve(d, httptest.NewRequest(http.MethodGet, "/x", nil))
		assert.Equal(t, []string{"first", "second", "guard", "handler"}, calls)
	})

	t.Run("use appends to the chain", func(t *testing.T) {
		t.Parallel()

		var calls []string
		d := router.New(
			singleRoute("GET", "/x", okHandler),
			router.WithMiddleware(named("option", &calls)),
		)
		d.Use(named("use", &calls))

		serve(d, httptest.NewRequest(http.MethodGet, "/x", nil))
		assert.Equal(t, []string{"option", "use"}, calls)
	})

	t.Run("middleware can replace the response", func(t *testing.T) {
		t.Parallel()

		d := router.New(
			singleRoute("GET", "/x", okHandler),
			router.WithMiddleware[*router.Context](func(next handler.HandlerFunc[*router.Context]) handler.HandlerFunc[*router.Context] {
				return func(ctx *router.Context) handler.Response {
					if ctx.Request().Header.Get("X-Block") != "" {
						return response.Error(response.ErrTooManyRequests)
					}
					return next(ctx)
				}
			}),
		)

		req := httptest.NewRequest(http.MethodGet, "/x", nil)
		req.Header.Set("X-Block", "1")

		rec := serve(d, req)
		assert.Equal(t, http.StatusTooManyRequests, rec.Code)
		assert.JSONEq(t, `{"error":"Too Many Requests"}`, rec.Body.String())
	})
}

type adminContext struct {
	*router.Context
	Role string
}

func TestDispatcherCustomContext(t *testing.T) {
	t.Parallel()

	t.Run("factory builds the custom context", func(t *testing.T) {
		t.Parallel()

		reg := router.MustRegistry(
			router.Route[*adminContext]{Method: "GET", Path: "/whoami", Handler: func(ctx *adminContext) handler.Response {
				return response.JSON(map[string]string{"role": ctx.Role})
			}},
		)
		d := router.New(reg,
			router.WithContextFactory(func(w http.ResponseWriter, r *http.Request, params map[string]string) *adminContext {
				return &adminContext{Context: router.NewContext(w, r, params), Role: "admin"}
			}),
		)

		rec := serve(d, httptest.NewRequest(http.MethodGet, "/whoami", nil))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"role":"admin"}`, rec.Body.String())
	})

	t.Run("missing factory for a custom type panics", func(t *testing.T) {
		t.Parallel()

		reg := router.MustRegistry(
			router.Route[*adminContext]{Method: "GET", Path: "/whoami", Handler: func(ctx *adminContext) handler.Response {
				return response.NoContent()
			}},
		)

		assert.Panics(t, func() {
			router.New(reg)
		})
	})
}
