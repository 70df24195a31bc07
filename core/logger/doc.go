// Package logger provides structured logging utilities built on Go's standard slog package.
// It offers a small constructor with environment presets and a set of pre-built,
// nil-safe attribute helpers for common request-handling scenarios.
//
// # Features
//
//   - Built on Go's standard slog for compatibility and performance
//   - Environment presets (development, production)
//   - Support for both JSON and text output formats
//   - Type-safe attribute creation with nil safety
//
// # Basic Usage
//
// Create loggers using the factory function with configuration options:
//
//	import "github.com/dmitrymomot/dispatch/core/logger"
//
//	// Development: text format, debug level
//	log := logger.New(logger.WithDevelopment("myapp"))
//
//	// Production: JSON format, info level
//	log := logger.New(logger.WithProduction("myapp"))
//
//	// Custom configuration
//	log := logger.New(
//		logger.WithLevel(slog.LevelWarn),
//		logger.WithJSONFormatter(),
//		logger.WithAttr(slog.String("service", "api")),
//		logger.WithOutput(os.Stderr),
//	)
//
//	log.Info("Server starting",
//		logger.Component("server"),
//		logger.Event("startup"),
//	)
//
// # Attribute Helpers
//
// Helpers cover errors, timing, and HTTP request fields:
//
//	log.Error("Request rejected",
//		logger.Error(err),
//		logger.Method("POST"),
//		logger.Path("/api/users"),
//		logger.StatusCode(403),
//		logger.ClientIP("192.168.1.1"),
//		logger.Origin("https://evil.example"),
//	)
//
//	start := time.Now()
//	// ... handle request ...
//	log.Info("Request processed",
//		logger.StatusCode(200),
//		logger.Elapsed(start),
//	)
//
// Helpers taking values that may legitimately be absent (errors, request IDs,
// origins) return an empty slog.Attr for the zero value, which slog drops from
// the record. Call sites never need nil checks.
//
// # Testing with Custom Output
//
// Capture logs during testing:
//
//	var buf bytes.Buffer
//	log := logger.New(
//		logger.WithJSONFormatter(),
//		logger.WithOutput(&buf),
//	)
//
//	log.Info("Test message", logger.Component("test"))
//	assert.Contains(t, buf.String(), `"component":"test"`)
package logger
