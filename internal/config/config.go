package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
)

// Storage backends accepted in STORAGE_TYPE
const (
	StorageMemory = "memory"
	StorageRedis  = "redis"
)

// Server holds the server settings read from the environment
type Server struct {
	Host string `env:"PUZZLESOLVER_HOST"`
	Port int    `env:"PUZZLESOLVER_PORT" envDefault:"8080"`

	StorageType string `env:"STORAGE_TYPE" envDefault:"memory"`
	RedisURL    string `env:"REDIS_URL"`

	// ResultTTL bounds how long cached answers live in Redis; zero keeps them
	ResultTTL time.Duration `env:"PUZZLESOLVER_RESULT_TTL" envDefault:"0s"`
	RunTTL    time.Duration `env:"PUZZLESOLVER_RUN_TTL"    envDefault:"168h"`

	LogLevel string `env:"PUZZLESOLVER_LOG_LEVEL" envDefault:"info"`
}

// Load parses server settings from the environment and validates them
func Load() (Server, error) {
	var cfg Server
	if err := env.Parse(&cfg); err != nil {
		return Server{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Server{}, err
	}
	return cfg, nil
}

// Validate checks cross-field constraints env tags cannot express
func (c Server) Validate() error {
	switch c.StorageType {
	case StorageMemory:
	case StorageRedis:
		if c.RedisURL == "" {
			return errors.New("REDIS_URL required when STORAGE_TYPE=redis")
		}
	default:
		return fmt.Errorf("invalid STORAGE_TYPE %q: must be 'memory' or 'redis'", c.StorageType)
	}

	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("invalid PUZZLESOLVER_PORT %d", c.Port)
	}
	if c.ResultTTL < 0 || c.RunTTL < 0 {
		return errors.New("TTLs must not be negative")
	}
	if _, err := parseLevel(c.LogLevel); err != nil {
		return err
	}
	return nil
}

// SlogLevel returns the configured log level, defaulting to Info
func (c Server) SlogLevel() slog.Level {
	level, err := parseLevel(c.LogLevel)
	if err != nil {
		return slog.LevelInfo
	}
	return level
}

func parseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("invalid PUZZLESOLVER_LOG_LEVEL %q", s)
	}
}
