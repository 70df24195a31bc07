package guard

import (
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"

	"github.com/dmitrymomot/dispatch/core/handler"
)

type claimsContextKey struct{}

// BearerConfig configures the JWT bearer guard.
type BearerConfig struct {
	// SigningKey verifies HMAC-SHA256 token signatures. Required.
	SigningKey []byte

	// Issuer, when set, must match the token's iss claim.
	Issuer string

	// Audience, when set, must be present in the token's aud claim.
	Audience string

	// Extract overrides how the token is taken from the request. Defaults
	// to the Authorization header with the Bearer scheme.
	Extract func(ctx handler.Context) string
}

// Bearer admits requests carrying a valid HS256 JWT in the Authorization
// header and stores the parsed claims in the context.
func Bearer[C handler.Context](signingKey string) handler.Guard[C] {
	return BearerWithConfig[C](BearerConfig{SigningKey: []byte(signingKey)})
}

// BearerWithConfig is Bearer with explicit configuration. Panics without a
// signing key: a guard that cannot verify anything must not reach serving.
func BearerWithConfig[C handler.Context](cfg BearerConfig) handler.Guard[C] {
	if len(cfg.SigningKey) == 0 {
		panic("guard: bearer requires a signing key")
	}
	if cfg.Extract == nil {
		cfg.Extract = FromAuthHeader
	}

	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	}
	if cfg.Issuer != "" {
		opts = append(opts, jwt.WithIssuer(cfg.Issuer))
	}
	if cfg.Audience != "" {
		opts = append(opts, jwt.WithAudience(cfg.Audience))
	}

	return func(ctx C) handler.Decision {
		raw := cfg.Extract(ctx)
		if raw == "" {
			return handler.Deny(http.StatusUnauthorized, "missing bearer token")
		}

		claims := &jwt.RegisteredClaims{}
		token, err := jwt.ParseWithClaims(raw, claims, func(*jwt.Token) (any, error) {
			return cfg.SigningKey, nil
		}, opts...)
		if err != nil || !token.Valid {
			return handler.Deny(http.StatusUnauthorized, "invalid or expired token")
		}

		ctx.SetValue(claimsContextKey{}, claims)
		return handler.Allow()
	}
}

// FromAuthHeader extracts a bearer credential from the Authorization header.
// Returns "" when the header is absent or uses a different scheme.
func FromAuthHeader(ctx handler.Context) string {
	auth := ctx.Request().Header.Get("Authorization")
	const scheme = "bearer "
	if len(auth) > len(scheme) && strings.EqualFold(auth[:len(scheme)], scheme) {
		return strings.TrimSpace(auth[len(scheme):])
	}
	return ""
}

// GetClaims returns the JWT claims stored by the Bearer guard.
func GetClaims(ctx handler.Context) (*jwt.RegisteredClaims, bool) {
	claims, ok := ctx.Value(claimsContextKey{}).(*jwt.RegisteredClaims)
	return claims, ok
}

// GetSubject returns the sub claim stored by the Bearer guard.
func GetSubject(ctx handler.Context) (string, bool) {
	claims, ok := GetClaims(ctx)
	if !ok || claims.Subject == "" {
		return "", false
	}
	return claims.Subject, true
}
