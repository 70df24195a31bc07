// Package server provides a restartable HTTP server with graceful shutdown
// and production-ready defaults on top of the standard http.Server.
//
// # Features
//
//   - Start returns once the listener is bound, serving in the background
//   - Idempotent Start and Stop; Start after Stop binds a fresh listener
//   - Graceful shutdown that waits for the serve loop to fully exit
//   - TLS support with secure defaults
//   - Environment-based configuration via caarlos0/env tags
//
// # Basic Usage
//
// Run a server until the context is canceled:
//
//	import (
//		"context"
//		"os/signal"
//		"syscall"
//
//		"github.com/dmitrymomot/dispatch/core/server"
//	)
//
//	func main() {
//		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
//		defer stop()
//
//		if err := server.Run(ctx, ":8080", handler); err != nil {
//			log.Fatal(err)
//		}
//	}
//
// # Lifecycle Control
//
// Start and Stop give explicit control over the serve loop. Start returns
// as soon as the socket accepts connections, which makes ":0" addresses
// usable in tests:
//
//	srv := server.New("127.0.0.1:0", handler)
//	if err := srv.Start(ctx); err != nil {
//		return err
//	}
//	addr := srv.Addr() // bound address, port assigned by the kernel
//	...
//	if err := srv.Stop(ctx); err != nil {
//		return err
//	}
//
// Stop waits for in-flight requests up to the configured shutdown timeout
// and for the serve goroutine to exit before returning, so a subsequent
// Start never races the old listener.
//
// # Configuration
//
// Build a server from environment-backed configuration:
//
//	var cfg server.Config
//	if err := config.Load(&cfg); err != nil {
//		log.Fatal(err)
//	}
//
//	srv, err := server.NewFromConfig(cfg, handler,
//		server.WithLogger(log),
//	)
package server
