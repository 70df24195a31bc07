package app

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/dmitrymomot/dispatch/core/config"
	"github.com/dmitrymomot/dispatch/core/guard"
	"github.com/dmitrymomot/dispatch/core/logger"
	"github.com/dmitrymomot/dispatch/core/router"
	"github.com/dmitrymomot/dispatch/core/server"
	"github.com/dmitrymomot/dispatch/integration/database/redis"
	"github.com/dmitrymomot/dispatch/middleware"
)

// App wires the route registry, dispatch pipeline and HTTP server into a
// runnable service.
type App struct {
	cfg        Config
	log        *slog.Logger
	registry   *router.Registry[*Context]
	dispatcher *router.Dispatcher[*Context]
	srv        *server.Server
	rdb        *goredis.Client
	tokens     guard.TokenStore
	startedAt  time.Time
}

// Option overrides a collaborator before the app is assembled.
type Option func(*App) error

// WithLogger replaces the logger built from configuration.
func WithLogger(log *slog.Logger) Option {
	return func(a *App) error {
		if log == nil {
			return errors.New("logger cannot be nil")
		}
		a.log = log
		return nil
	}
}

// WithRedis injects an already-connected Redis client instead of dialing
// one from configuration.
func WithRedis(client *goredis.Client) Option {
	return func(a *App) error {
		if client == nil {
			return errors.New("redis client cannot be nil")
		}
		a.rdb = client
		return nil
	}
}

// WithTokenStore replaces the token store protecting internal routes.
func WithTokenStore(store guard.TokenStore) Option {
	return func(a *App) error {
		if store == nil {
			return errors.New("token store cannot be nil")
		}
		a.tokens = store
		return nil
	}
}

// New loads configuration from the environment and assembles the app.
func New(opts ...Option) (*App, error) {
	var cfg Config
	if err := config.Load(&cfg); err != nil {
		return nil, err
	}
	return NewFromConfig(cfg, opts...)
}

// NewFromConfig assembles the app from an explicit configuration.
func NewFromConfig(cfg Config, opts ...Option) (*App, error) {
	a := &App{
		cfg:       cfg,
		startedAt: time.Now(),
	}

	for _, opt := range opts {
		if err := opt(a); err != nil {
			return nil, err
		}
	}

	if a.log == nil {
		a.log = newLogger(cfg)
	}

	if a.rdb == nil && cfg.RedisEnabled {
		client, err := redis.Connect(context.Background(), cfg.Redis)
		if err != nil {
			return nil, err
		}
		a.rdb = client
	}

	if a.tokens == nil {
		if a.rdb != nil {
			a.tokens = guard.NewRedisStore(a.rdb, "")
		} else {
			a.tokens = guard.NewMemoryStore(cfg.ServiceTokens...)
		}
	}

	registry, err := router.NewRegistry(a.routes()...)
	if err != nil {
		return nil, err
	}
	a.registry = registry

	routerOpts := []router.Option[*Context]{
		router.WithContextFactory(newContext),
		router.WithLogger[*Context](a.log),
		router.WithCORS[*Context](router.CORSConfig{
			AllowOrigins: cfg.AllowedOrigins,
			MaxAge:       cfg.CORSMaxAge,
		}),
	}
	if cfg.MaxBodySize > 0 {
		routerOpts = append(routerOpts, router.WithMaxBodySize[*Context](cfg.MaxBodySize))
	}

	a.dispatcher = router.New(registry, routerOpts...)
	a.dispatcher.Use(middleware.RequestID[*Context]())

	srv, err := server.NewFromConfig(cfg.Server, a.dispatcher, server.WithLogger(a.log))
	if err != nil {
		return nil, err
	}
	a.srv = srv

	return a, nil
}

// Run starts the HTTP server and blocks until the context is canceled.
// The Redis connection, when present, is closed on the way out.
func (a *App) Run(ctx context.Context) error {
	a.log.InfoContext(ctx, "application starting",
		logger.Key("app", a.cfg.AppName),
		logger.Key("env", a.cfg.Env),
		logger.Key("addr", a.cfg.Server.Addr),
	)

	defer func() {
		if a.rdb != nil {
			if err := a.rdb.Close(); err != nil {
				a.log.Error("failed to close redis connection", logger.Error(err))
			}
		}
	}()

	return a.srv.Run(ctx)
}

// Handler exposes the dispatch pipeline, primarily for tests.
func (a *App) Handler() http.Handler {
	return a.dispatcher
}

// Routes lists the registered route table.
func (a *App) Routes() []router.RouteInfo {
	return a.registry.Routes()
}

// Addr reports the bound server address while running, or nil.
func (a *App) Addr() net.Addr {
	return a.srv.Addr()
}

func newLogger(cfg Config) *slog.Logger {
	opts := make([]logger.Option, 0, 2)
	if cfg.Env == "production" {
		opts = append(opts, logger.WithProduction(cfg.AppName))
	} else {
		opts = append(opts, logger.WithDevelopment(cfg.AppName))
	}

	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(cfg.LogLevel)); err == nil {
		opts = append(opts, logger.WithLevel(lvl))
	}

	return logger.New(opts...)
}
