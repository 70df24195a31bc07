package app

import (
	"github.com/dmitrymomot/dispatch/core/server"
	"github.com/dmitrymomot/dispatch/integration/database/redis"
)

// Config aggregates application settings loaded from the environment.
type Config struct {
	Server server.Config
	Redis  redis.Config

	AppName  string `env:"APP_NAME" envDefault:"dispatch"`
	Env      string `env:"APP_ENV" envDefault:"development"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	// Cross-origin access. Origins are exact matches after trailing-slash
	// normalization; http://localhost is always permitted.
	AllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS" envSeparator:","`
	CORSMaxAge     int      `env:"CORS_MAX_AGE" envDefault:"600"`

	// MaxBodySize caps JSON request bodies in bytes. Zero keeps the
	// dispatcher default (1MB).
	MaxBodySize int64 `env:"MAX_BODY_SIZE" envDefault:"0"`

	// BearerSigningKey enables the authenticated profile route when set.
	BearerSigningKey string `env:"BEARER_SIGNING_KEY" envDefault:""`

	// APIKeyHashes holds bcrypt hashes of keys accepted by the reports
	// route. Generate hashes with guard.HashAPIKey.
	APIKeyHashes []string `env:"API_KEY_HASHES" envSeparator:","`

	// ServiceTokens seeds the in-memory token store that protects the
	// internal routes when Redis is disabled.
	ServiceTokens []string `env:"SERVICE_TOKENS" envSeparator:","`

	// RedisEnabled switches the token store to Redis and registers the
	// readiness probe for it.
	RedisEnabled bool `env:"REDIS_ENABLED" envDefault:"false"`
}
