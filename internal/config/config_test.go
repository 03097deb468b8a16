package config

import (
	"testing"
	"time"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("BOT_TOKEN", "test-token")
	t.Setenv("DATABASE_PATH", "/tmp/test.db")
}

func TestNewConfigDefaults(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := NewConfig()
	if err != nil {
		t.Fatalf("NewConfig returned error: %v", err)
	}

	if cfg.CatalogDelay != DefaultCatalogDelay {
		t.Errorf("expected default catalog delay %v, got %v", DefaultCatalogDelay, cfg.CatalogDelay)
	}
	if cfg.RequestTimeout != DefaultRequestTimeout {
		t.Errorf("expected default request timeout %v, got %v", DefaultRequestTimeout, cfg.RequestTimeout)
	}
	if cfg.RateSettings.RequestsPerWindow != DefaultRateLimit {
		t.Errorf("expected default rate limit %d, got %d", DefaultRateLimit, cfg.RateSettings.RequestsPerWindow)
	}
	if len(cfg.AllowedHosts) != 2 || cfg.AllowedHosts[0] != "youtube.com" || cfg.AllowedHosts[1] != "youtu.be" {
		t.Errorf("unexpected default hosts: %v", cfg.AllowedHosts)
	}
}

func TestNewConfigReadsEnvironment(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("ALLOWED_HOSTS", "Youtube.com, vimeo.com ,")
	t.Setenv("CATALOG_DELAY", "250ms")
	t.Setenv("RATE_LIMIT", "10")
	t.Setenv("SHORTENER_URL", "https://sho.rt")
	t.Setenv("SHORTENER_API_KEY", "secret")

	cfg, err := NewConfig()
	if err != nil {
		t.Fatalf("NewConfig returned error: %v", err)
	}

	if len(cfg.AllowedHosts) != 2 || cfg.AllowedHosts[0] != "youtube.com" || cfg.AllowedHosts[1] != "vimeo.com" {
		t.Errorf("host list must be trimmed and lowercased: %v", cfg.AllowedHosts)
	}
	if cfg.CatalogDelay != 250*time.Millisecond {
		t.Errorf("expected 250ms catalog delay, got %v", cfg.CatalogDelay)
	}
	if cfg.RateSettings.RequestsPerWindow != 10 {
		t.Errorf("expected rate limit 10, got %d", cfg.RateSettings.RequestsPerWindow)
	}
	if cfg.ShortenerURL != "https://sho.rt" || cfg.ShortenerAPIKey != "secret" {
		t.Errorf("shortener settings not read: %q %q", cfg.ShortenerURL, cfg.ShortenerAPIKey)
	}
}

func TestNewConfigValidation(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{
			name: "missing bot token",
			env:  map[string]string{"DATABASE_PATH": "/tmp/test.db"},
		},
		{
			name: "empty host list",
			env: map[string]string{
				"BOT_TOKEN":     "test-token",
				"DATABASE_PATH": "/tmp/test.db",
				"ALLOWED_HOSTS": " , ",
			},
		},
		{
			name: "negative catalog delay",
			env: map[string]string{
				"BOT_TOKEN":     "test-token",
				"DATABASE_PATH": "/tmp/test.db",
				"CATALOG_DELAY": "-1s",
			},
		},
		{
			name: "zero rate limit",
			env: map[string]string{
				"BOT_TOKEN":     "test-token",
				"DATABASE_PATH": "/tmp/test.db",
				"RATE_LIMIT":    "0",
			},
		},
		{
			name: "api key without shortener url",
			env: map[string]string{
				"BOT_TOKEN":         "test-token",
				"DATABASE_PATH":     "/tmp/test.db",
				"SHORTENER_API_KEY": "secret",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("BOT_TOKEN", "")
			t.Setenv("DATABASE_PATH", "")
			for key, value := range tt.env {
				t.Setenv(key, value)
			}
			if _, err := NewConfig(); err == nil {
				t.Error("expected a validation error")
			}
		})
	}
}
