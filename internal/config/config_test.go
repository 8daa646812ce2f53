package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromEnviron(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		cfg, err := FromEnviron()
		require.NoError(t, err)

		assert.Equal(t, ":8080", cfg.GetAppAddr())
		assert.Equal(t, "ADHD Hub", cfg.GetAppName())
		assert.Equal(t, DevSessionSecret, cfg.GetSessionSecret())
		assert.Equal(t, 30*time.Minute, cfg.GetBoardIdleTTL())
		assert.Equal(t, time.Minute, cfg.GetBoardSweepInterval())
		assert.Equal(t, 30, cfg.GetAPIRateLimit())
		assert.False(t, cfg.GetContentWatch())
		assert.False(t, cfg.GetTracingEnabled())
	})

	t.Run("overrides", func(t *testing.T) {
		t.Setenv("APP_ADDR", ":9090")
		t.Setenv("SESSION_SECRET", "s3cr3t")
		t.Setenv("BOARD_IDLE_TTL", "5m")
		t.Setenv("API_RATE_LIMIT", "3")
		t.Setenv("CONTENT_DIR", "/srv/content")
		t.Setenv("CONTENT_WATCH", "true")

		cfg, err := FromEnviron()
		require.NoError(t, err)

		assert.Equal(t, ":9090", cfg.GetAppAddr())
		assert.Equal(t, "s3cr3t", cfg.GetSessionSecret())
		assert.Equal(t, 5*time.Minute, cfg.GetBoardIdleTTL())
		assert.Equal(t, 3, cfg.GetAPIRateLimit())
		assert.Equal(t, "/srv/content", cfg.GetContentDir())
		assert.True(t, cfg.GetContentWatch())
	})

	t.Run("watch without directory", func(t *testing.T) {
		t.Setenv("CONTENT_WATCH", "true")

		_, err := FromEnviron()
		assert.ErrorContains(t, err, "CONTENT_WATCH requires CONTENT_DIR")
	})

	t.Run("non-positive rate limit", func(t *testing.T) {
		t.Setenv("API_RATE_LIMIT", "0")

		_, err := FromEnviron()
		assert.Error(t, err)
	})
}
