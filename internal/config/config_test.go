package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, "8080", cfg.ServerPort)
	assert.Equal(t, ":8080", cfg.Addr())
	assert.True(t, cfg.IsDevelopment())

	assert.Equal(t, 7*24*time.Hour, cfg.Session.Lifetime)
	assert.Equal(t, 24*time.Hour, cfg.Session.RefreshAge)

	assert.Equal(t, time.Minute, cfg.RateLimit.Window)
	assert.Equal(t, 100, cfg.RateLimit.MaxRequests)

	assert.Empty(t, cfg.EnabledProviders())
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("APP_ENV", "production")
	t.Setenv("RATE_LIMIT_MAX", "10")
	t.Setenv("SESSION_LIFETIME", "48h")

	cfg := Load()

	assert.Equal(t, ":9090", cfg.Addr())
	assert.False(t, cfg.IsDevelopment())
	assert.Equal(t, 10, cfg.RateLimit.MaxRequests)
	assert.Equal(t, 48*time.Hour, cfg.Session.Lifetime)
}

func TestProvidersEnabledByClientID(t *testing.T) {
	t.Setenv("GOOGLE_CLIENT_ID", "google-id")
	t.Setenv("GITHUB_CLIENT_ID", "github-id")

	cfg := Load()

	assert.ElementsMatch(t, []string{"google", "github"}, cfg.EnabledProviders())

	for _, p := range cfg.Providers {
		if p.ID == "microsoft" {
			assert.False(t, p.Enabled)
		}
	}
}
