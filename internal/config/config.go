package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

const PROD_STRING = "prod"

// Config holds all application configuration loaded from environment.
type Config struct {
	AppEnv            string        `env:"APP_ENV" envDefault:"dev"`
	ProdOrigins       string        `env:"PROD_ORIGINS" envDefault:""`
	HTTPAddr          string        `env:"HTTP_ADDR" envDefault:":8080"`
	DBDSN             string        `env:"DB_DSN,notEmpty"`
	JWTSecret         string        `env:"JWT_SECRET,notEmpty"`
	JWTAccessTokenTTL time.Duration `env:"JWT_ACCESS_TOKEN_TTL" envDefault:"15m"`
	DefaultPageSize   int           `env:"DEFAULT_PAGE_SIZE" envDefault:"10"`
	LogLevel          string        `env:"LOG_LEVEL" envDefault:"info"`
	// json or console
	LogFormat string `env:"LOG_FORMAT" envDefault:"json"`
}

// IsProduction reports whether APP_ENV selects the production environment.
func (c *Config) IsProduction() bool {
	return c.AppEnv == PROD_STRING
}

// Load loads configuration from .env (optional) and environment variables.
func Load() (*Config, error) {
	// A missing .env file is fine; the environment may be set directly.
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if cfg.DefaultPageSize < 1 {
		return nil, fmt.Errorf("invalid DEFAULT_PAGE_SIZE: %d", cfg.DefaultPageSize)
	}

	return cfg, nil
}
