// Package config loads process configuration from the environment.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config carries the injectable knobs. The admin secret defaults to the
// machine's factory value but must never be a literal inside the packages
// that use it.
type Config struct {
	AdminSecret  string `env:"VEND_ADMIN_SECRET" envDefault:"ilovecybersecurity"`
	RestockLevel int    `env:"VEND_RESTOCK_LEVEL" envDefault:"10"`
}

// Load parses the environment and validates the result.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse env: %w", err)
	}
	if cfg.AdminSecret == "" {
		return Config{}, fmt.Errorf("config: admin secret must not be empty")
	}
	if cfg.RestockLevel < 0 {
		return Config{}, fmt.Errorf("config: negative restock level %d", cfg.RestockLevel)
	}
	return cfg, nil
}
