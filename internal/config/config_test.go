package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	for _, k := range []string{"PORT", "GIN_MODE", "SMTP_PORT", "TRACKING_ENABLED", "SESSION_TTL_MINUTES", "ADMIN_USERNAME"} {
		t.Setenv(k, "")
	}
	cfg := Load()

	assert.Equal(t, "8080", cfg.App.Port)
	assert.Equal(t, 587, cfg.SMTP.Port)
	assert.True(t, cfg.App.TrackingEnabled)
	assert.Equal(t, 120*time.Minute, cfg.Session.TTL)
	assert.False(t, cfg.IsProduction())
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("GIN_MODE", "release")
	t.Setenv("SMTP_PORT", "2525")
	t.Setenv("TRACKING_ENABLED", "false")
	t.Setenv("SESSION_TTL_MINUTES", "15")
	t.Setenv("ADMIN_USERNAME", "owner")

	cfg := Load()

	assert.Equal(t, "9000", cfg.App.Port)
	assert.True(t, cfg.IsProduction())
	assert.Equal(t, 2525, cfg.SMTP.Port)
	assert.False(t, cfg.App.TrackingEnabled)
	assert.Equal(t, 15*time.Minute, cfg.Session.TTL)
	assert.Equal(t, "owner", cfg.Admin.Username)
}

func TestGetEnvAsIntFallsBackOnGarbage(t *testing.T) {
	t.Setenv("SMTP_PORT", "not-a-number")
	assert.Equal(t, 587, getEnvAsInt("SMTP_PORT", 587))
}
