package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

// Config holds all configuration for the application
type Config struct {
	Environment Environment

	// Server configuration
	ServerPort      string
	ServerHost      string
	ShutdownTimeout time.Duration
	AllowedOrigins  []string

	// Upstream recipe database
	MealDBBaseURL   string
	MealDBTimeout   time.Duration
	MealDBRateLimit float64
	MealDBRateBurst int

	// Response cache
	CacheBackend string
	CacheTTL     time.Duration

	// Redis configuration
	RedisHost     string
	RedisPort     string
	RedisPassword string
	RedisDB       int
	RedisURL      string

	// Rate limiting of ingredient matching, per client IP. Zero disables it.
	MatchRateLimit  int
	MatchRateWindow time.Duration

	// Logging
	LogLevel  string
	LogFormat string
}

// Addr returns the host:port the HTTP server listens on
func (c *Config) Addr() string {
	return c.ServerHost + ":" + c.ServerPort
}

// LoadConfig creates a new Config instance with values from environment variables or secrets
func LoadConfig() (*Config, error) {
	env := GetEnvironment()
	r := &envReader{}

	cfg := &Config{
		Environment:     env,
		ServerPort:      r.getEnv("SERVER_PORT", "8080"),
		ServerHost:      r.getEnv("SERVER_HOST", "0.0.0.0"),
		ShutdownTimeout: r.getDurationEnv("SHUTDOWN_TIMEOUT", 10*time.Second),
		AllowedOrigins:  r.getListEnv("ALLOWED_ORIGINS", "http://localhost:5173,http://localhost:3000"),
		MealDBBaseURL:   r.getEnv("MEALDB_BASE_URL", "https://www.themealdb.com/api/json/v1/1"),
		MealDBTimeout:   r.getDurationEnv("MEALDB_TIMEOUT", 10*time.Second),
		MealDBRateLimit: r.getFloatEnv("MEALDB_RATE_LIMIT", 10),
		MealDBRateBurst: r.getIntEnv("MEALDB_RATE_BURST", 5),
		CacheBackend:    strings.ToLower(r.getEnv("CACHE_BACKEND", "memory")),
		CacheTTL:        r.getDurationEnv("CACHE_TTL", time.Hour),
		RedisHost:       r.getEnv("REDIS_HOST", "localhost"),
		RedisPort:       r.getEnv("REDIS_PORT", "6379"),
		RedisPassword:   r.getEnv("REDIS_PASSWORD", ""),
		RedisDB:         r.getIntEnv("REDIS_DB", 0),
		RedisURL:        r.getEnv("REDIS_URL", ""),
		MatchRateLimit:  r.getIntEnv("MATCH_RATE_LIMIT", 30),
		MatchRateWindow: r.getDurationEnv("MATCH_RATE_WINDOW", time.Minute),
		LogLevel:        strings.ToLower(r.getEnv("LOG_LEVEL", "info")),
		LogFormat:       strings.ToLower(r.getEnv("LOG_FORMAT", defaultLogFormat(env))),
	}

	// Production deployments hand credentials over as Docker secrets
	if env == Production {
		if secret := readSecret("redis_password"); secret != "" {
			cfg.RedisPassword = secret
		}
		if secret := readSecret("redis_url"); secret != "" {
			cfg.RedisURL = secret
		}
	}

	if len(r.errs) > 0 {
		return nil, fmt.Errorf("failed to load %s configuration:\n%s", env, strings.Join(r.errs, "\n"))
	}

	// Validate the configuration
	if err := ValidateConfig(cfg); err != nil {
		return nil, fmt.Errorf("invalid %s configuration: %w", env, err)
	}

	return cfg, nil
}

func defaultLogFormat(env Environment) string {
	if env == Development {
		return "text"
	}
	return "json"
}

// envReader reads typed environment variables, collecting parse errors
type envReader struct {
	errs []string
}

func (r *envReader) getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && strings.TrimSpace(value) != "" {
		return strings.TrimSpace(value)
	}
	return fallback
}

func (r *envReader) getIntEnv(key string, fallback int) int {
	value := r.getEnv(key, "")
	if value == "" {
		return fallback
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		r.errs = append(r.errs, fmt.Sprintf("%s: %q is not an integer", key, value))
		return fallback
	}
	return n
}

func (r *envReader) getFloatEnv(key string, fallback float64) float64 {
	value := r.getEnv(key, "")
	if value == "" {
		return fallback
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		r.errs = append(r.errs, fmt.Sprintf("%s: %q is not a number", key, value))
		return fallback
	}
	return f
}

func (r *envReader) getDurationEnv(key string, fallback time.Duration) time.Duration {
	value := r.getEnv(key, "")
	if value == "" {
		return fallback
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		r.errs = append(r.errs, fmt.Sprintf("%s: %q is not a duration", key, value))
		return fallback
	}
	return d
}

func (r *envReader) getListEnv(key, fallback string) []string {
	var out []string
	for _, item := range strings.Split(r.getEnv(key, fallback), ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}

// readSecret reads a Docker secret from the secrets directory
func readSecret(name string) string {
	secretsDir := os.Getenv("SECRETS_DIR")
	if secretsDir == "" {
		secretsDir = "/run/secrets"
	}
	secretPath := filepath.Join(secretsDir, name)
	if data, err := os.ReadFile(secretPath); err == nil {
		return strings.TrimSpace(string(data))
	}
	return ""
}
