package app

import (
	"context"
	"runtime"
	"time"

	"github.com/dmitrymomot/dispatch/core/binder"
	"github.com/dmitrymomot/dispatch/core/handler"
	"github.com/dmitrymomot/dispatch/core/response"
	"github.com/dmitrymomot/dispatch/pkg/async"
)

func (a *App) handleStatus(ctx *Context) handler.Response {
	return response.JSON(map[string]string{"status": "ok"})
}

type echoRequest struct {
	Message string `json:"message"`
}

type echoResponse struct {
	Echo      string `json:"echo"`
	RequestID string `json:"request_id,omitempty"`
}

func (a *App) handleEcho(ctx *Context) handler.Response {
	var req echoRequest
	if err := binder.JSON()(ctx.Request(), &req); err != nil {
		return response.Error(err)
	}
	return response.JSON(echoResponse{
		Echo:      req.Message,
		RequestID: ctx.RequestID(),
	})
}

type profileResponse struct {
	Subject   string `json:"subject"`
	RequestID string `json:"request_id,omitempty"`
}

func (a *App) handleProfile(ctx *Context) handler.Response {
	return response.JSON(profileResponse{
		Subject:   ctx.Subject(),
		RequestID: ctx.RequestID(),
	})
}

type report struct {
	ID          string    `json:"id"`
	Service     string    `json:"service"`
	GeneratedAt time.Time `json:"generated_at"`
	RouteCount  int       `json:"route_count"`
}

// handleReport assembles the report off the request goroutine. The
// response renders once the future resolves; failures surface through the
// same error path as synchronous ones.
func (a *App) handleReport(ctx *Context) handler.Response {
	fut := async.Async(ctx, ctx.Param("id"), func(ctx context.Context, id string) (report, error) {
		return report{
			ID:          id,
			Service:     a.cfg.AppName,
			GeneratedAt: time.Now().UTC(),
			RouteCount:  len(a.registry.Routes()),
		}, nil
	})
	return response.AwaitJSON(fut)
}

type statsResponse struct {
	Routes     int    `json:"routes"`
	Goroutines int    `json:"goroutines"`
	Uptime     string `json:"uptime"`
}

func (a *App) handleStats(ctx *Context) handler.Response {
	return response.JSON(statsResponse{
		Routes:     len(a.registry.Routes()),
		Goroutines: runtime.NumGoroutine(),
		Uptime:     time.Since(a.startedAt).Round(time.Millisecond).String(),
	})
}
