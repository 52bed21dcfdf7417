package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("SERVER_PORT", "")
	t.Setenv("TOKEN_TTL", "")

	cfg := Load()

	assert.Equal(t, ":5000", cfg.Addr())
	assert.Equal(t, 7*24*time.Hour, cfg.TokenTTL)
	assert.Equal(t, "food_order_session", cfg.SessionCookieName)
	assert.False(t, cfg.IsProduction())
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("TOKEN_TTL", "2h")
	t.Setenv("CORS_ORIGINS", "http://localhost:3000, http://127.0.0.1:5500,")
	t.Setenv("APP_ENV", "production")

	cfg := Load()

	assert.Equal(t, ":9090", cfg.Addr())
	assert.Equal(t, 2*time.Hour, cfg.TokenTTL)
	assert.Equal(t, []string{"http://localhost:3000", "http://127.0.0.1:5500"}, cfg.CORSOrigins)
	assert.True(t, cfg.IsProduction())
}

func TestInvalidDurationFallsBack(t *testing.T) {
	t.Setenv("SESSION_TTL", "soon")

	cfg := Load()

	assert.Equal(t, 7*24*time.Hour, cfg.SessionTTL)
}
