package server_test

import (
	"crypto/tls"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/dispatch/core/server"
)

func TestDefaultTLSConfig(t *testing.T) {
	t.Parallel()

	cfg := server.DefaultTLSConfig()
	require.NotNil(t, cfg)
	assert.Equal(t, uint16(tls.VersionTLS12), cfg.MinVersion)
	assert.NotEmpty(t, cfg.CipherSuites)
	assert.Contains(t, cfg.CurvePreferences, tls.X25519)
	assert.Empty(t, cfg.Certificates)
}
