package guard

import (
	"context"
	"net/http"
	"sync"

	"github.com/redis/go-redis/v9"

	"github.com/dmitrymomot/dispatch/core/handler"
)

// TokenStore validates opaque bearer credentials, e.g. service tokens issued
// out of band.
type TokenStore interface {
	Validate(ctx context.Context, token string) (bool, error)
}

// TokenConfig configures the opaque token guard.
type TokenConfig struct {
	// Store checks presented tokens. Required.
	Store TokenStore

	// Extract overrides how the token is taken from the request. Defaults
	// to the Authorization header with the Bearer scheme.
	Extract func(ctx handler.Context) string
}

// Token admits requests presenting a credential the store recognizes. A
// store failure denies with 503 rather than letting the request through.
func Token[C handler.Context](store TokenStore) handler.Guard[C] {
	return TokenWithConfig[C](TokenConfig{Store: store})
}

// TokenWithConfig is Token with explicit configuration. Panics without a
// store.
func TokenWithConfig[C handler.Context](cfg TokenConfig) handler.Guard[C] {
	if cfg.Store == nil {
		panic("guard: token requires a store")
	}
	if cfg.Extract == nil {
		cfg.Extract = FromAuthHeader
	}

	return func(ctx C) handler.Decision {
		token := cfg.Extract(ctx)
		if token == "" {
			return handler.Deny(http.StatusUnauthorized, "missing token")
		}
		ok, err := cfg.Store.Validate(ctx, token)
		if err != nil {
			return handler.Deny(http.StatusServiceUnavailable, "authorization unavailable")
		}
		if !ok {
			return handler.Deny(http.StatusUnauthorized, "invalid token")
		}
		return handler.Allow()
	}
}

// MemoryStore is a TokenStore over an in-process set. Safe for concurrent
// use; fits tests and single-node deployments.
type MemoryStore struct {
	mu     sync.RWMutex
	tokens map[string]struct{}
}

// NewMemoryStore creates a MemoryStore preloaded with tokens.
func NewMemoryStore(tokens ...string) *MemoryStore {
	ms := &MemoryStore{tokens: make(map[string]struct{}, len(tokens))}
	for _, t := range tokens {
		ms.tokens[t] = struct{}{}
	}
	return ms
}

// Add registers a token.
func (ms *MemoryStore) Add(token string) {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	ms.tokens[token] = struct{}{}
}

// Remove revokes a token.
func (ms *MemoryStore) Remove(token string) {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	delete(ms.tokens, token)
}

// Validate implements TokenStore.
func (ms *MemoryStore) Validate(_ context.Context, token string) (bool, error) {
	ms.mu.RLock()
	defer ms.mu.RUnlock()
	_, ok := ms.tokens[token]
	return ok, nil
}

// RedisStore is a TokenStore over Redis keys, shared across instances. A
// token is valid while the key <prefix><token> exists, so issuance and
// revocation are plain SET and DEL, and expiry rides on Redis TTLs.
type RedisStore struct {
	client redis.UniversalClient
	prefix string
}

// NewRedisStore creates a RedisStore. An empty prefix defaults to "token:".
func NewRedisStore(client redis.UniversalClient, prefix string) *RedisStore {
	if prefix == "" {
		prefix = "token:"
	}
	return &RedisStore{client: client, prefix: prefix}
}

// Validate implements TokenStore.
func (rs *RedisStore) Validate(ctx context.Context, token string) (bool, error) {
	n, err := rs.client.Exists(ctx, rs.prefix+token).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
