package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags_AllFields(t *testing.T) {
	cfg, err := ParseFlags([]string{
		"-env", "production",
		"-port", "8080",
		"-base-dir", "/srv/app",
		"-log-level", "info",
		"-tz", "UTC",
		"-jwt-secret", "secret",
		"-jwt-expires-in-days", "3",
		"-request-timeout", "30s",
		"-rate-limit", "2.5",
		"-rate-burst", "5",
		"-metrics",
		"-compress",
		"-redis-addr", "127.0.0.1:6379",
	})
	require.NoError(t, err)

	assert.Equal(t, App{Env: "production", Port: 8080, BaseDir: "/srv/app", LogLevel: "info"}, cfg.App)
	assert.Equal(t, "UTC", cfg.TZ)
	assert.Equal(t, JWT{Secret: "secret", ExpiresInDays: 3}, cfg.JWT)
	assert.Equal(t, Server{RequestTimeout: 30 * time.Second, RateLimit: 2.5, RateBurst: 5, MetricsEnabled: true, Compress: true}, cfg.Server)
	assert.Equal(t, "127.0.0.1:6379", cfg.Redis.Addr)
}

func TestParseFlags_Empty(t *testing.T) {
	cfg, err := ParseFlags([]string{})
	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestParseFlags_Invalid(t *testing.T) {
	tests := [][]string{
		{"-port", "abc"},
		{"-request-timeout", "forever"},
		{"-unknown"},
	}

	for _, args := range tests {
		_, err := ParseFlags(args)
		assert.Error(t, err, "args %v", args)
	}
}
