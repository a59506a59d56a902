package main

import (
	"fmt"
	"os"
)

// Config holds all environment variables for the service.
type Config struct {
	JWTSecret string // Secret for signing access and refresh tokens
	Port      string // Service port (default: 8080)
	RedisURL  string // Redis connection URL for the list cache
}

// LoadConfig loads environment variables into a Config and validates them.
func LoadConfig() (*Config, error) {
	cfg := &Config{
		JWTSecret: os.Getenv("JWT_SECRET"),
		Port:      os.Getenv("PORT"),
		RedisURL:  os.Getenv("REDIS_URL"),
	}

	if cfg.Port == "" {
		cfg.Port = "8080"
	}
	if cfg.RedisURL == "" {
		cfg.RedisURL = "redis://localhost:6379"
	}

	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}

	return cfg, nil
}
