package guard

import (
	"net/http"

	"golang.org/x/crypto/bcrypt"

	"github.com/dmitrymomot/dispatch/core/handler"
)

// APIKeyConfig configures the API key guard.
type APIKeyConfig struct {
	// Header is the request header carrying the key. Defaults to "X-API-Key".
	Header string

	// Hashes holds bcrypt hashes of the accepted keys. Plaintext keys never
	// appear in configuration or memory dumps.
	Hashes []string
}

// APIKey admits requests presenting a key whose bcrypt hash is in hashes.
// The key is read from the X-API-Key header.
func APIKey[C handler.Context](hashes ...string) handler.Guard[C] {
	return APIKeyWithConfig[C](APIKeyConfig{Hashes: hashes})
}

// APIKeyWithConfig is APIKey with explicit configuration.
func APIKeyWithConfig[C handler.Context](cfg APIKeyConfig) handler.Guard[C] {
	if cfg.Header == "" {
		cfg.Header = "X-API-Key"
	}

	return func(ctx C) handler.Decision {
		key := ctx.Request().Header.Get(cfg.Header)
		if key == "" {
			return handler.Deny(http.StatusUnauthorized, "missing API key")
		}
		for _, hash := range cfg.Hashes {
			if bcrypt.CompareHashAndPassword([]byte(hash), []byte(key)) == nil {
				return handler.Allow()
			}
		}
		return handler.Deny(http.StatusUnauthorized, "invalid API key")
	}
}

// HashAPIKey produces the bcrypt hash of a key for APIKeyConfig.Hashes.
func HashAPIKey(key string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(key), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
