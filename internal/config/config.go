// Package config loads server configuration from the environment. A .env
// file, if present, is loaded first so local development needs no exported
// variables.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config is the full runtime configuration.
type Config struct {
	Port            string        `env:"MUZADS_PORT" envDefault:"8080"`
	DBPath          string        `env:"MUZADS_DB_PATH" envDefault:"muzads.db"`
	APIBaseURL      string        `env:"MUZADS_API_URL" envDefault:"https://adsbackend-ruddy.vercel.app"`
	CookieSecure    bool          `env:"MUZADS_COOKIE_SECURE" envDefault:"true"`
	LogLevel        string        `env:"MUZADS_LOG_LEVEL" envDefault:"info"`
	MetricsInterval time.Duration `env:"MUZADS_METRICS_INTERVAL" envDefault:"5s"`
	TemplateDir     string        `env:"MUZADS_TEMPLATE_DIR" envDefault:"web/templates"`
	StaticDir       string        `env:"MUZADS_STATIC_DIR" envDefault:"web/static"`
}

// Load reads .env (ignored if absent) and parses the environment.
func Load() (Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
