// Package redis wraps go-redis client initialization with connection
// verification, retry logic and a health probe. Connect validates the URL,
// pings the server with a doubling backoff and only returns a client that
// answered, so a misconfigured address fails at startup instead of on the
// first request.
//
// # Configuration
//
// Settings load from the environment through the config package:
//
//	type Config struct {
//		ConnectionURL  string        `env:"REDIS_URL,required" envDefault:"redis://localhost:6379/0"`
//		RetryAttempts  int           `env:"REDIS_RETRY_ATTEMPTS" envDefault:"3"`
//		RetryInterval  time.Duration `env:"REDIS_RETRY_INTERVAL" envDefault:"5s"`
//		ConnectTimeout time.Duration `env:"REDIS_CONNECT_TIMEOUT" envDefault:"30s"`
//	}
//
// Both redis:// and rediss:// (TLS) URL schemes are accepted.
//
// # Usage
//
//	var cfg redis.Config
//	config.MustLoad(&cfg)
//
//	client, err := redis.Connect(ctx, cfg)
//	if err != nil {
//		return err
//	}
//	defer client.Close()
//
// The health probe plugs into the readiness endpoint:
//
//	healthcheck.Readiness[*app.Context](log, map[string]healthcheck.Probe{
//		"redis": redis.Healthcheck(client),
//	})
package redis
