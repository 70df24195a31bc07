package app

import (
	"net/http"

	"github.com/dmitrymomot/dispatch/core/guard"
	"github.com/dmitrymomot/dispatch/core/handler"
	"github.com/dmitrymomot/dispatch/core/healthcheck"
	"github.com/dmitrymomot/dispatch/core/router"
	"github.com/dmitrymomot/dispatch/integration/database/redis"
)

// routes declares the application route table. Lookup is first-match in
// declaration order.
func (a *App) routes() []router.Route[*Context] {
	routes := []router.Route[*Context]{
		{
			Method:      http.MethodGet,
			Path:        "/",
			Description: "Service status",
			Handler:     a.handleStatus,
		},
		{
			Method:      http.MethodGet,
			Path:        "/health/live",
			Description: "Liveness probe",
			Handler:     healthcheck.Liveness[*Context],
		},
		{
			Method:      http.MethodGet,
			Path:        "/health/ready",
			Description: "Readiness probe",
			Handler:     healthcheck.Readiness[*Context](a.log, a.probes()),
		},
		{
			Method:      http.MethodPost,
			Path:        "/echo",
			Description: "Echo a JSON message",
			Handler:     a.handleEcho,
		},
		{
			Method:      http.MethodGet,
			Path:        "/reports/{id}",
			Description: "Generate a report",
			Handler:     a.handleReport,
			Guards: []handler.Guard[*Context]{
				guard.APIKey[*Context](a.cfg.APIKeyHashes...),
			},
		},
		{
			Method:      http.MethodGet,
			Path:        "/internal/stats",
			Description: "Runtime statistics",
			Handler:     a.handleStats,
			Guards: []handler.Guard[*Context]{
				guard.Token[*Context](a.tokens),
			},
		},
	}

	// The profile route needs a verification key, so it only exists when
	// one is configured.
	if a.cfg.BearerSigningKey != "" {
		routes = append(routes, router.Route[*Context]{
			Method:      http.MethodGet,
			Path:        "/profile",
			Description: "Authenticated profile",
			Handler:     a.handleProfile,
			Guards: []handler.Guard[*Context]{
				guard.Bearer[*Context](a.cfg.BearerSigningKey),
			},
		})
	}

	return routes
}

func (a *App) probes() map[string]healthcheck.Probe {
	probes := make(map[string]healthcheck.Probe)
	if a.rdb != nil {
		probes["redis"] = redis.Healthcheck(a.rdb)
	}
	return probes
}
