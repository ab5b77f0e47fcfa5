package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"

	"github.com/GriffinCanCode/done/internal/shared/paths"
)

// Config holds all host configuration.
type Config struct {
	Script  ScriptConfig
	Logging LogConfig
	Metrics MetricsConfig
}

// ScriptConfig locates the scripts the host runs.
type ScriptConfig struct {
	Entry       string `envconfig:"DONE_ENTRY" default:"./done.js"`
	ModulesDir  string `envconfig:"DONE_MODULES_DIR" default:"./src/modules"`
	StrictReads bool   `envconfig:"DONE_STRICT_READS" default:"false"`
	// MaxCallStack caps script call depth; deeper recursion throws RangeError
	MaxCallStack int `envconfig:"DONE_MAX_CALL_STACK" default:"1024"`
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level       string `envconfig:"LOG_LEVEL" default:"warn"`
	Development bool   `envconfig:"LOG_DEV" default:"false"`
}

// MetricsConfig holds run metrics configuration. An empty File disables export.
type MetricsConfig struct {
	File string `envconfig:"DONE_METRICS_FILE" default:""`
}

// Load loads configuration from environment variables.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return &cfg, nil
}

// Default returns default configuration.
func Default() *Config {
	return &Config{
		Script: ScriptConfig{
			Entry:        paths.Entry,
			ModulesDir:   paths.Modules,
			StrictReads:  false,
			MaxCallStack: 1024,
		},
		Logging: LogConfig{
			Level:       "warn",
			Development: false,
		},
		Metrics: MetricsConfig{
			File: "",
		},
	}
}
