package config

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
)

// ValidationError represents a configuration validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Cache backends
const (
	CacheMemory = "memory"
	CacheRedis  = "redis"
	CacheNone   = "none"
)

// ValidateConfig checks that every setting is usable
func ValidateConfig(cfg *Config) error {
	var errors []string
	fail := func(field, format string, args ...any) {
		errors = append(errors, ValidationError{Field: field, Message: fmt.Sprintf(format, args...)}.Error())
	}

	if port, err := strconv.Atoi(cfg.ServerPort); err != nil || port < 1 || port > 65535 {
		fail("SERVER_PORT", "must be a port number, got %q", cfg.ServerPort)
	}
	if cfg.ShutdownTimeout <= 0 {
		fail("SHUTDOWN_TIMEOUT", "must be positive")
	}
	for _, origin := range cfg.AllowedOrigins {
		if origin != "*" && !strings.HasPrefix(origin, "http://") && !strings.HasPrefix(origin, "https://") {
			fail("ALLOWED_ORIGINS", "origin %q must start with http:// or https://", origin)
		}
	}

	if u, err := url.Parse(cfg.MealDBBaseURL); err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		fail("MEALDB_BASE_URL", "must be an absolute http(s) URL, got %q", cfg.MealDBBaseURL)
	}
	if cfg.MealDBTimeout <= 0 {
		fail("MEALDB_TIMEOUT", "must be positive")
	}
	if cfg.MealDBRateLimit < 0 {
		fail("MEALDB_RATE_LIMIT", "must not be negative")
	}
	if cfg.MealDBRateBurst < 0 {
		fail("MEALDB_RATE_BURST", "must not be negative")
	}

	switch cfg.CacheBackend {
	case CacheMemory, CacheNone:
	case CacheRedis:
		if cfg.RedisURL == "" && cfg.RedisHost == "" {
			fail("REDIS_HOST", "REDIS_HOST or REDIS_URL is required with the redis cache backend")
		}
	default:
		fail("CACHE_BACKEND", "must be one of memory, redis, none; got %q", cfg.CacheBackend)
	}
	if cfg.CacheBackend != CacheNone && cfg.CacheTTL <= 0 {
		fail("CACHE_TTL", "must be positive")
	}

	if cfg.MatchRateLimit < 0 {
		fail("MATCH_RATE_LIMIT", "must not be negative")
	}
	if cfg.MatchRateLimit > 0 && cfg.MatchRateWindow <= 0 {
		fail("MATCH_RATE_WINDOW", "must be positive when MATCH_RATE_LIMIT is set")
	}

	if _, err := logrus.ParseLevel(cfg.LogLevel); err != nil {
		fail("LOG_LEVEL", "unknown level %q", cfg.LogLevel)
	}
	if cfg.LogFormat != "json" && cfg.LogFormat != "text" {
		fail("LOG_FORMAT", "must be json or text, got %q", cfg.LogFormat)
	}

	if len(errors) > 0 {
		return fmt.Errorf("configuration validation failed:\n%s", strings.Join(errors, "\n"))
	}

	return nil
}
