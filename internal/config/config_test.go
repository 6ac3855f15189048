package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("APP_PORT", "9090")
	t.Setenv("OUTBOX_BATCH_SIZE", "not-a-number")
	t.Setenv("OTEL_ENABLED", "true")

	cfg := Load()

	assert.Equal(t, "9090", cfg.App.Port)
	assert.True(t, cfg.App.OtelEnabled)
	assert.Equal(t, 100, cfg.Outbox.BatchSize)
	assert.Equal(t, 5*time.Minute, cfg.Auth.TempTokenTTL)
}

func TestGetEnvAsDuration(t *testing.T) {
	t.Setenv("D_GO", "1500ms")
	t.Setenv("D_SECS", "30")
	t.Setenv("D_BAD", "soon")

	assert.Equal(t, 1500*time.Millisecond, getEnvAsDuration("D_GO", time.Second))
	assert.Equal(t, 30*time.Second, getEnvAsDuration("D_SECS", time.Second))
	assert.Equal(t, time.Second, getEnvAsDuration("D_BAD", time.Second))
	assert.Equal(t, time.Second, getEnvAsDuration("D_UNSET", time.Second))
}
