package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

type Config struct {
	DatabaseURL string
	RedisAddr   string
	HTTPPort    string

	SessionTTL        time.Duration
	PasswordMinLength int
}

func Load() (*Config, error) {
	cfg := &Config{
		DatabaseURL:       os.Getenv("DATABASE_URL"),
		RedisAddr:         getenv("REDIS_ADDR", "localhost:6379"),
		HTTPPort:          getenv("HTTP_PORT", "8080"),
		SessionTTL:        7 * 24 * time.Hour,
		PasswordMinLength: 12,
	}

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is not set")
	}

	if v := os.Getenv("SESSION_TTL"); v != "" {
		ttl, err := time.ParseDuration(v)
		if err != nil {
			return nil, fmt.Errorf("SESSION_TTL: %w", err)
		}
		cfg.SessionTTL = ttl
	}

	if v := os.Getenv("PASSWORD_MIN_LENGTH"); v != "" {
		minLength, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("PASSWORD_MIN_LENGTH: %w", err)
		}
		cfg.PasswordMinLength = minLength
	}

	return cfg, nil
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
