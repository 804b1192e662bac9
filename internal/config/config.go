// Package config loads the backend configuration from the environment.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v8"
	"github.com/joho/godotenv"
)

type Config struct {
	// Path to the sqlite database file
	DBFile string `env:"DB_FILE" envDefault:"data/backend.db"`

	// Address the HTTP server listens on
	ListenAddr string `env:"LISTEN_ADDR" envDefault:":8080"`

	// "human" forces console output, everything else logs JSON
	LogFormat string `env:"LOG_FORMAT"`

	GinMode string `env:"GIN_MODE" envDefault:"release"`

	// Origins allowed for CORS, space separated. Empty disables CORS.
	CORSAllowOrigins []string `env:"CORS_ALLOW_ORIGINS" envSeparator:" "`

	// Expose the pprof endpoints under /debug/pprof
	EnablePprof bool `env:"ENABLE_PPROF" envDefault:"false"`
}

// Load reads a .env file if one exists and parses the environment.
func Load() (Config, error) {
	// A missing .env file is fine, the environment may be set directly
	_ = godotenv.Load()

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("could not parse configuration: %w", err)
	}

	return cfg, nil
}
