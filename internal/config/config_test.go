package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "development", cfg.Env)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "dev-secret-key", cfg.SessionSecret)
	assert.Equal(t, 24*time.Hour, cfg.SessionTTL)
	assert.Equal(t, 30*time.Second, cfg.TriageTimeout)
	assert.Equal(t, 512, cfg.TriageMaxTokens)
	assert.False(t, cfg.UseMemoryStores)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("SESSION_SECRET", "prod-secret")
	t.Setenv("SESSION_TTL", "1h")
	t.Setenv("TRIAGE_TIMEOUT", "5s")
	t.Setenv("TRIAGE_MAX_TOKENS", "256")
	t.Setenv("USE_MEMORY_STORES", "true")
	t.Setenv("REDIS_TLS", "true")

	cfg := Load()

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "prod-secret", cfg.SessionSecret)
	assert.Equal(t, time.Hour, cfg.SessionTTL)
	assert.Equal(t, 5*time.Second, cfg.TriageTimeout)
	assert.Equal(t, 256, cfg.TriageMaxTokens)
	assert.True(t, cfg.UseMemoryStores)
	assert.True(t, cfg.RedisTLS)
}

func TestLoadIgnoresMalformedValues(t *testing.T) {
	t.Setenv("TRIAGE_MAX_TOKENS", "lots")
	t.Setenv("SESSION_TTL", "soon")
	t.Setenv("USE_MEMORY_STORES", "perhaps")

	cfg := Load()

	assert.Equal(t, 512, cfg.TriageMaxTokens)
	assert.Equal(t, 24*time.Hour, cfg.SessionTTL)
	assert.False(t, cfg.UseMemoryStores)
}
