package testutils

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/mediabeam/video-link-bot/internal/config"
)

// TestConfig creates a configuration suitable for testing.
func TestConfig(t *testing.T) *config.Config {
	t.Helper()
	return &config.Config{
		BotToken:     "test-bot-token",
		DatabasePath: filepath.Join(t.TempDir(), "test.db"),
		Lang:         "en",
		LogLevel:     "debug",
		AllowedHosts: []string{"youtube.com", "youtu.be"},

		CatalogDelay:   0, // keep tests fast
		RequestTimeout: 5 * time.Second,

		RateSettings: config.RateConfig{
			RequestsPerWindow: 100,
			RefillInterval:    time.Minute,
		},
	}
}
