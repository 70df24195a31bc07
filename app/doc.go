// Package app assembles the dispatch components into a runnable HTTP
// service: environment-backed configuration, structured logging, the
// route registry with its guards, the dispatch pipeline and the server
// lifecycle.
//
// The route table is declared in routes.go. Public routes (status,
// health probes, echo) sit next to guarded ones: the reports route
// expects an API key matching one of the configured bcrypt hashes, the
// internal stats route expects a service token known to the token store,
// and the profile route appears only when a bearer signing key is
// configured. With REDIS_ENABLED the token store and a readiness probe
// move to Redis.
//
// Usage:
//
//	application, err := app.New()
//	if err != nil {
//		log.Fatal(err)
//	}
//	if err := application.Run(ctx); err != nil {
//		log.Fatal(err)
//	}
package app
