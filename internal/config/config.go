package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/mediabeam/video-link-bot/internal/utils"
)

const (
	DefaultCatalogDelay   = time.Second
	DefaultRequestTimeout = 30 * time.Second
	DefaultRateLimit      = 5
	DefaultRateRefill     = time.Minute
)

type Config struct {
	BotToken     string
	DatabasePath string
	Lang         string
	LogLevel     string

	// AllowedHosts is the recognized video-host list. It is configuration
	// data, not code: the set of supported hosts drifts with the extraction
	// engine and must be adjustable without a rebuild.
	AllowedHosts []string

	ShortenerURL    string
	ShortenerAPIKey string

	// CatalogDelay is a fixed pause before each catalog fetch to stay under
	// the source's request thresholds.
	CatalogDelay   time.Duration
	RequestTimeout time.Duration

	RateSettings RateConfig
}

type RateConfig struct {
	RequestsPerWindow int
	RefillInterval    time.Duration
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

func getEnvList(key, defaultValue string) []string {
	raw := getEnv(key, defaultValue)
	parts := strings.Split(raw, ",")
	hosts := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.ToLower(strings.TrimSpace(p)); trimmed != "" {
			hosts = append(hosts, trimmed)
		}
	}
	return hosts
}

func NewConfig() (*Config, error) {
	config := &Config{
		BotToken:     getEnv("BOT_TOKEN", ""),
		DatabasePath: getEnv("DATABASE_PATH", "video-links.db"),
		Lang:         getEnv("LANG", "en"),
		LogLevel:     getEnv("LOG_LEVEL", "info"),

		AllowedHosts: getEnvList("ALLOWED_HOSTS", "youtube.com,youtu.be"),

		ShortenerURL:    getEnv("SHORTENER_URL", ""),
		ShortenerAPIKey: getEnv("SHORTENER_API_KEY", ""),

		CatalogDelay:   getEnvDuration("CATALOG_DELAY", DefaultCatalogDelay),
		RequestTimeout: getEnvDuration("REQUEST_TIMEOUT", DefaultRequestTimeout),

		RateSettings: RateConfig{
			RequestsPerWindow: getEnvInt("RATE_LIMIT", DefaultRateLimit),
			RefillInterval:    getEnvDuration("RATE_REFILL_INTERVAL", DefaultRateRefill),
		},
	}

	if err := config.validate(); err != nil {
		return nil, utils.WrapError(err, "configuration validation failed", map[string]any{
			"database_path": config.DatabasePath,
		})
	}

	return config, nil
}

func (c *Config) validate() error {
	var missingFields []string

	if c.BotToken == "" {
		missingFields = append(missingFields, "BOT_TOKEN")
	}
	if c.DatabasePath == "" {
		missingFields = append(missingFields, "DATABASE_PATH")
	}
	if len(missingFields) > 0 {
		return utils.WrapError(utils.ErrConfigurationError, "missing required environment variables", map[string]any{
			"missing_fields": missingFields,
		})
	}

	if len(c.AllowedHosts) == 0 {
		return utils.WrapError(utils.ErrConfigurationError, "ALLOWED_HOSTS must name at least one video host", nil)
	}

	if c.CatalogDelay < 0 {
		return utils.WrapError(utils.ErrConfigurationError, "catalog delay cannot be negative", nil)
	}
	if c.RequestTimeout <= 0 {
		return utils.WrapError(utils.ErrConfigurationError, "request timeout must be positive", nil)
	}

	if c.RateSettings.RequestsPerWindow <= 0 {
		return utils.WrapError(utils.ErrConfigurationError, "rate limit must be positive", nil)
	}
	if c.RateSettings.RefillInterval <= 0 {
		return utils.WrapError(utils.ErrConfigurationError, "rate refill interval must be positive", nil)
	}

	// The shortener is optional, but a key without an endpoint is a broken setup.
	if c.ShortenerAPIKey != "" && c.ShortenerURL == "" {
		return utils.WrapError(utils.ErrConfigurationError, "SHORTENER_URL is required when SHORTENER_API_KEY is set", nil)
	}

	return nil
}
