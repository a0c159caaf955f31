// Package config loads application settings from an optional yaml file
// and environment variables.
package config

import (
	"fmt"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config is the root application configuration.
type Config struct {
	Database DatabaseConfig `yaml:"database"`
	Reports  ReportsConfig  `yaml:"reports"`
	Log      LogConfig      `yaml:"log"`
}

// DatabaseConfig holds sqlite settings.
type DatabaseConfig struct {
	Path string `yaml:"path" env:"ANP_DATABASE_PATH" env-default:"data/anp-sightings.db"`
}

// ReportsConfig holds summary/anomaly thresholds.
type ReportsConfig struct {
	TopVesselLimit int `yaml:"top_vessel_limit" env:"ANP_TOP_VESSEL_LIMIT" env-default:"10"`
	MinInfractions int `yaml:"min_infractions"  env:"ANP_MIN_INFRACTIONS"  env-default:"2"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level string `yaml:"level" env:"ANP_LOG_LEVEL" env-default:"info"`
}

// Load reads configuration from the given yaml file when it exists, then
// from the environment. An empty path skips the file step.
func Load(path string) (*Config, error) {
	var cfg Config
	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if err := cleanenv.ReadConfig(path, &cfg); err != nil {
				return nil, fmt.Errorf("reading config %s: %w", path, err)
			}
			return &cfg, nil
		}
	}
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("reading config from environment: %w", err)
	}
	return &cfg, nil
}
