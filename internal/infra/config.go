package infra

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config represents application configuration loaded from environment variables.
type Config struct {
	AppEnv           string
	Port             string
	DatabaseURL      string
	TuziAPIKey       string
	TuziBaseURL      string
	TuziModel        string
	DBMaxConns       int
	DBMinConns       int
	HTTPReadTimeout  time.Duration
	HTTPWriteTimeout time.Duration
	HTTPIdleTimeout  time.Duration
	UpstreamTimeout  time.Duration
}

// LoadConfig loads configuration from environment variables and applies
// defaults where needed. Secrets (DATABASE_URL, TUZI_API_KEY) have no
// fallback and must be provided.
func LoadConfig() (*Config, error) {
	cfg := &Config{
		AppEnv:           getEnv("APP_ENV", "development"),
		Port:             getEnv("PORT", "8080"),
		DatabaseURL:      os.Getenv("DATABASE_URL"),
		TuziAPIKey:       os.Getenv("TUZI_API_KEY"),
		TuziBaseURL:      getEnv("TUZI_BASE_URL", "https://api.tu-zi.com/v1"),
		TuziModel:        getEnv("TUZI_MODEL", "gemini-3-pro-image-preview"),
		DBMaxConns:       getEnvInt("DB_MAX_CONNS", 8),
		DBMinConns:       getEnvInt("DB_MIN_CONNS", 1),
		HTTPReadTimeout:  time.Second * time.Duration(getEnvInt("HTTP_READ_TIMEOUT_SECONDS", 15)),
		HTTPWriteTimeout: time.Second * time.Duration(getEnvInt("HTTP_WRITE_TIMEOUT_SECONDS", 120)),
		HTTPIdleTimeout:  time.Second * time.Duration(getEnvInt("HTTP_IDLE_TIMEOUT_SECONDS", 60)),
		UpstreamTimeout:  time.Second * time.Duration(getEnvInt("UPSTREAM_TIMEOUT_SECONDS", 90)),
	}

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is required")
	}

	if cfg.TuziAPIKey == "" {
		return nil, fmt.Errorf("TUZI_API_KEY is required")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return fallback
}
