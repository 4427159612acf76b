package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	unsetenv(t, "PORT", "LOG_LEVEL", "DEFAULT_TENANT_ID", "MAX_REQUEST_BODY_BYTES", "READ_TIMEOUT", "WRITE_TIMEOUT")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, ":8080", cfg.Addr())
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "local", cfg.DefaultTenantID)
	assert.Equal(t, 1<<20, cfg.MaxRequestBodyBytes)
	assert.Equal(t, 5*time.Second, cfg.ReadTimeout)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("DEFAULT_TENANT_ID", "acme")
	t.Setenv("WRITE_TIMEOUT", "250ms")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.Addr())
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "acme", cfg.DefaultTenantID)
	assert.Equal(t, 250*time.Millisecond, cfg.WriteTimeout)
}

func TestLoadRejectsBadDuration(t *testing.T) {
	t.Setenv("READ_TIMEOUT", "soon")

	_, err := Load()
	assert.Error(t, err)
}

// unsetenv clears keys for the duration of the test.
func unsetenv(t *testing.T, keys ...string) {
	t.Helper()
	for _, k := range keys {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}
}
