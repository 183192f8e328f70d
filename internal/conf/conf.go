// Package conf loads runtime settings from the environment.
package conf

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Settings holds everything the web binary needs at startup. Flags on the
// command may override individual fields after Load.
type Settings struct {
	Port        int    `env:"PORT" envDefault:"8080"`
	BaseURL     string `env:"BASE_URL"`
	CatalogPath string `env:"CATALOG_PATH"`
	AnalyticsDB string `env:"ANALYTICS_DB" envDefault:"chirpquiz.db"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`
}

// Load parses settings from the environment.
func Load() (Settings, error) {
	var s Settings
	if err := env.Parse(&s); err != nil {
		return Settings{}, fmt.Errorf("parse environment: %w", err)
	}
	return s, nil
}

// Addr returns the listen address for the HTTP server.
func (s Settings) Addr() string {
	return fmt.Sprintf(":%d", s.Port)
}
