// Package config provides application configuration.
package config

import (
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/rs/zerolog"
)

// DefaultJWTSecret is the development signing secret; production refuses it.
const DefaultJWTSecret = "dev_secret_change_me"

// Config holds all application configuration, read from the environment.
type Config struct {
	Port      string `env:"PORT" envDefault:"5175"`
	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogPretty bool   `env:"LOG_PRETTY" envDefault:"false"`
	LogFile   string `env:"LOG_FILE"`
	AppEnv    string `env:"APP_ENV" envDefault:"development"`

	HistoryBackend     string `env:"HISTORY_BACKEND" envDefault:"sqlite"`
	HistoryPath        string `env:"HISTORY_PATH" envDefault:"./data/history.db"`
	SnapshotEveryGuess bool   `env:"SNAPSHOT_EVERY_GUESS" envDefault:"true"`

	AnswersFile string `env:"WORDS_ANSWERS_FILE"`
	AllowedFile string `env:"WORDS_ALLOWED_FILE"`

	ClientOrigin   string  `env:"CLIENT_ORIGIN" envDefault:"http://localhost:5173"`
	JWTSecret      string  `env:"JWT_SECRET" envDefault:"dev_secret_change_me"`
	JWTExpiresDays int     `env:"JWT_EXPIRES_DAYS" envDefault:"14"`
	PasswordHash   string  `env:"PASSWORD_HASH"`
	CookieName     string  `env:"COOKIE_NAME" envDefault:"runwords_token"`
	RateLimitRPS   float64 `env:"RATE_LIMIT_RPS" envDefault:"20"`
	RateLimitBurst int     `env:"RATE_LIMIT_BURST" envDefault:"40"`
}

// Load parses the environment and validates the result.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	if c.Port == "" {
		return fmt.Errorf("PORT cannot be empty")
	}
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("LOG_LEVEL: %w", err)
	}
	switch strings.ToLower(c.HistoryBackend) {
	case "sqlite", "file":
		if c.HistoryPath == "" {
			return fmt.Errorf("HISTORY_PATH cannot be empty for %s backend", c.HistoryBackend)
		}
	case "memory":
	default:
		return fmt.Errorf("HISTORY_BACKEND must be sqlite, file or memory, got %q", c.HistoryBackend)
	}
	if c.JWTExpiresDays <= 0 {
		return fmt.Errorf("JWT_EXPIRES_DAYS must be > 0")
	}
	if c.PasswordHash != "" && c.JWTSecret == "" {
		return fmt.Errorf("JWT_SECRET cannot be empty when PASSWORD_HASH is set")
	}
	if c.PasswordHash != "" && c.IsProduction() && c.JWTSecret == DefaultJWTSecret {
		return fmt.Errorf("JWT_SECRET must be changed from the default in production")
	}
	if c.CookieName == "" {
		return fmt.Errorf("COOKIE_NAME cannot be empty")
	}
	if c.RateLimitRPS <= 0 || c.RateLimitBurst <= 0 {
		return fmt.Errorf("RATE_LIMIT_RPS and RATE_LIMIT_BURST must be > 0")
	}
	return nil
}

// IsProduction reports whether APP_ENV is production.
func (c *Config) IsProduction() bool {
	return strings.EqualFold(c.AppEnv, "production")
}

// AuthEnabled reports whether the owner password gate is configured.
func (c *Config) AuthEnabled() bool { return c.PasswordHash != "" }
