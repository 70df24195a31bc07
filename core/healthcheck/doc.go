// Package healthcheck provides liveness and readiness handlers for
// orchestrator probes.
//
// Liveness answers whether the process runs; it never checks dependencies,
// so a slow database cannot get the pod restarted. Readiness walks named
// dependency probes and turns the first failure into a 503, logging which
// probe failed while keeping the detail out of the response.
//
//	routes := []router.Route[*app.Context]{
//		{Method: "GET", Path: "/health/live", Handler: healthcheck.Liveness[*app.Context]},
//		{Method: "GET", Path: "/health/ready", Handler: healthcheck.Readiness[*app.Context](log, map[string]healthcheck.Probe{
//			"redis": redis.Healthcheck(client),
//		})},
//	}
package healthcheck
