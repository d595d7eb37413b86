package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("APP_ENV", "")
	t.Setenv("STORAGE_DRIVER", "")
	t.Setenv("SIMULATED_LATENCY", "")
	t.Setenv("REFRESH_INTERVAL", "")
	t.Setenv("WRITE_RATE_LIMIT", "")

	cfg := Load()

	assert.Equal(t, "development", cfg.AppEnv)
	assert.True(t, cfg.IsDevelopment())
	assert.Equal(t, "file", cfg.StorageDriver)
	assert.Equal(t, 300*time.Millisecond, cfg.SimulatedLatency)
	assert.Equal(t, 30*time.Second, cfg.RefreshInterval)
	assert.Equal(t, 120, cfg.WriteRateLimit)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("STORAGE_DRIVER", "memory")
	t.Setenv("SIMULATED_LATENCY", "0s")
	t.Setenv("REFRESH_INTERVAL", "5s")
	t.Setenv("S3_PATH_STYLE", "true")

	cfg := Load()

	assert.True(t, cfg.IsProduction())
	assert.Equal(t, "memory", cfg.StorageDriver)
	assert.Equal(t, time.Duration(0), cfg.SimulatedLatency)
	assert.Equal(t, 5*time.Second, cfg.RefreshInterval)
	assert.True(t, cfg.S3PathStyle)
}

func TestEnvHelpers_InvalidFallsBack(t *testing.T) {
	t.Setenv("X_DURATION", "soon")
	t.Setenv("X_BOOL", "maybe")
	t.Setenv("X_INT", "lots")

	assert.Equal(t, time.Minute, envDuration("X_DURATION", time.Minute))
	assert.True(t, envBool("X_BOOL", true))
	assert.Equal(t, 7, envInt("X_INT", 7))
}
