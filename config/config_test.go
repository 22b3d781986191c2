package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var configKeys = []string{
	"ENV", "CI", "SECRETS_DIR",
	"SERVER_PORT", "SERVER_HOST", "SHUTDOWN_TIMEOUT", "ALLOWED_ORIGINS",
	"MEALDB_BASE_URL", "MEALDB_TIMEOUT", "MEALDB_RATE_LIMIT", "MEALDB_RATE_BURST",
	"CACHE_BACKEND", "CACHE_TTL",
	"REDIS_HOST", "REDIS_PORT", "REDIS_PASSWORD", "REDIS_DB", "REDIS_URL",
	"MATCH_RATE_LIMIT", "MATCH_RATE_WINDOW", "LOG_LEVEL", "LOG_FORMAT",
}

// clearEnv blanks every config variable for the duration of the test
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range configKeys {
		t.Setenv(key, "")
	}
}

func TestLoadConfigWithDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, Development, cfg.Environment)
	assert.Equal(t, "0.0.0.0:8080", cfg.Addr())
	assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
	assert.Equal(t, []string{"http://localhost:5173", "http://localhost:3000"}, cfg.AllowedOrigins)
	assert.Equal(t, "https://www.themealdb.com/api/json/v1/1", cfg.MealDBBaseURL)
	assert.Equal(t, 10*time.Second, cfg.MealDBTimeout)
	assert.Equal(t, 10.0, cfg.MealDBRateLimit)
	assert.Equal(t, 5, cfg.MealDBRateBurst)
	assert.Equal(t, CacheMemory, cfg.CacheBackend)
	assert.Equal(t, time.Hour, cfg.CacheTTL)
	assert.Equal(t, "localhost", cfg.RedisHost)
	assert.Equal(t, "6379", cfg.RedisPort)
	assert.Equal(t, 30, cfg.MatchRateLimit)
	assert.Equal(t, time.Minute, cfg.MatchRateWindow)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
}

func TestLoadConfig(t *testing.T) {
	clearEnv(t)
	t.Setenv("ENV", "test")
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("ALLOWED_ORIGINS", "https://meals.example.com, http://localhost:5173 ,")
	t.Setenv("MEALDB_TIMEOUT", "3s")
	t.Setenv("MEALDB_RATE_LIMIT", "2.5")
	t.Setenv("CACHE_BACKEND", "Redis")
	t.Setenv("CACHE_TTL", "15m")
	t.Setenv("REDIS_URL", "redis://localhost:6379/1")
	t.Setenv("REDIS_DB", "2")
	t.Setenv("MATCH_RATE_LIMIT", "0")
	t.Setenv("LOG_LEVEL", "DEBUG")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, Test, cfg.Environment)
	assert.Equal(t, "9090", cfg.ServerPort)
	assert.Equal(t, []string{"https://meals.example.com", "http://localhost:5173"}, cfg.AllowedOrigins)
	assert.Equal(t, 3*time.Second, cfg.MealDBTimeout)
	assert.Equal(t, 2.5, cfg.MealDBRateLimit)
	assert.Equal(t, CacheRedis, cfg.CacheBackend)
	assert.Equal(t, 15*time.Minute, cfg.CacheTTL)
	assert.Equal(t, "redis://localhost:6379/1", cfg.RedisURL)
	assert.Equal(t, 2, cfg.RedisDB)
	assert.Equal(t, 0, cfg.MatchRateLimit)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
}

func TestLoadConfigParseErrors(t *testing.T) {
	clearEnv(t)
	t.Setenv("MEALDB_TIMEOUT", "soon")
	t.Setenv("REDIS_DB", "zero")

	cfg, err := LoadConfig()

	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "MEALDB_TIMEOUT")
	assert.Contains(t, err.Error(), "REDIS_DB")
}

func TestLoadConfigProductionSecrets(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "redis_password"), []byte("s3cret\n"), 0o600))
	t.Setenv("ENV", "production")
	t.Setenv("SECRETS_DIR", dir)
	t.Setenv("REDIS_PASSWORD", "from-env")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, Production, cfg.Environment)
	assert.Equal(t, "s3cret", cfg.RedisPassword)
	assert.True(t, IsProduction())
}

func TestGetEnvironment(t *testing.T) {
	clearEnv(t)
	assert.Equal(t, Development, GetEnvironment())

	t.Setenv("ENV", "test")
	assert.Equal(t, Test, GetEnvironment())

	t.Setenv("CI", "true")
	assert.Equal(t, CI, GetEnvironment())
}

func validConfig() *Config {
	return &Config{
		ServerPort:      "8080",
		ServerHost:      "0.0.0.0",
		ShutdownTimeout: time.Second,
		AllowedOrigins:  []string{"*"},
		MealDBBaseURL:   "https://www.themealdb.com/api/json/v1/1",
		MealDBTimeout:   time.Second,
		MealDBRateLimit: 1,
		CacheBackend:    CacheMemory,
		CacheTTL:        time.Minute,
		MatchRateLimit:  10,
		MatchRateWindow: time.Minute,
		LogLevel:        "info",
		LogFormat:       "json",
	}
}

func TestValidateConfig(t *testing.T) {
	assert.NoError(t, ValidateConfig(validConfig()))

	tests := map[string]struct {
		mutate func(*Config)
		field  string
	}{
		"bad port":          {func(c *Config) { c.ServerPort = "http" }, "SERVER_PORT"},
		"port out of range": {func(c *Config) { c.ServerPort = "70000" }, "SERVER_PORT"},
		"bad origin":        {func(c *Config) { c.AllowedOrigins = []string{"localhost:5173"} }, "ALLOWED_ORIGINS"},
		"relative base url": {func(c *Config) { c.MealDBBaseURL = "/api" }, "MEALDB_BASE_URL"},
		"zero timeout":      {func(c *Config) { c.MealDBTimeout = 0 }, "MEALDB_TIMEOUT"},
		"unknown cache":     {func(c *Config) { c.CacheBackend = "memcached" }, "CACHE_BACKEND"},
		"zero cache ttl":    {func(c *Config) { c.CacheTTL = 0 }, "CACHE_TTL"},
		"redis without host": {func(c *Config) {
			c.CacheBackend = CacheRedis
			c.RedisHost = ""
		}, "REDIS_HOST"},
		"negative match limit": {func(c *Config) { c.MatchRateLimit = -1 }, "MATCH_RATE_LIMIT"},
		"zero match window":    {func(c *Config) { c.MatchRateWindow = 0 }, "MATCH_RATE_WINDOW"},
		"bad log level":        {func(c *Config) { c.LogLevel = "loud" }, "LOG_LEVEL"},
		"bad log format":       {func(c *Config) { c.LogFormat = "xml" }, "LOG_FORMAT"},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)

			err := ValidateConfig(cfg)

			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.field)
		})
	}

	t.Run("no cache ignores ttl", func(t *testing.T) {
		cfg := validConfig()
		cfg.CacheBackend = CacheNone
		cfg.CacheTTL = 0
		assert.NoError(t, ValidateConfig(cfg))
	})
}
