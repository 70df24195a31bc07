package healthcheck

import (
	"context"
	"log/slog"

	"github.com/dmitrymomot/dispatch/core/handler"
	"github.com/dmitrymomot/dispatch/core/logger"
	"github.com/dmitrymomot/dispatch/core/response"
)

// Probe reports the health of one dependency.
type Probe func(ctx context.Context) error

// Liveness reports the process as running. Always 200 "ALIVE", no
// dependency checks, safe for aggressive probe intervals.
//
//	router.Route[*app.Context]{Method: "GET", Path: "/health/live", Handler: healthcheck.Liveness[*app.Context]}
func Liveness[C handler.Context](C) handler.Response {
	return response.String("ALIVE")
}

// Ping returns 204 without a body, for load balancers that only care about
// the status line.
func Ping[C handler.Context](C) handler.Response {
	return response.NoContent()
}

// Readiness verifies every named probe and returns "READY" when all pass.
// The first failure logs the probe name at error level and responds 503;
// details stay out of the response body.
//
//	readiness := healthcheck.Readiness[*app.Context](log, map[string]healthcheck.Probe{
//		"redis": redis.Healthcheck(client),
//	})
func Readiness[C handler.Context](log *slog.Logger, probes map[string]Probe) handler.HandlerFunc[C] {
	return func(ctx C) handler.Response {
		for name, probe := range probes {
			if err := probe(ctx); err != nil {
				log.ErrorContext(ctx, "readiness probe failed",
					logger.Component("healthcheck"), logger.Key("probe", name), logger.Error(err))
				return response.Error(response.ErrServiceUnavailable)
			}
		}
		return response.String("READY")
	}
}
