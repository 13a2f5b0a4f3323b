package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadServerConfig(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		cfg := LoadServerConfig()
		assert.Equal(t, "8080", cfg.Port)
		assert.Equal(t, 15*time.Second, cfg.ReadTimeout)
		assert.Equal(t, 5*time.Minute, cfg.ReportCacheTTL)
	})

	t.Run("environment overrides", func(t *testing.T) {
		t.Setenv("PORT", "9090")
		t.Setenv("REPORT_CACHE_TTL", "30s")
		t.Setenv("SERVER_SHUTDOWN_TIMEOUT", "not-a-duration")

		cfg := LoadServerConfig()
		assert.Equal(t, "9090", cfg.Port)
		assert.Equal(t, 30*time.Second, cfg.ReportCacheTTL)
		assert.Equal(t, 30*time.Second, cfg.ShutdownTimeout)
	})
}
