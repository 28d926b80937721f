package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

// Config holds all toolkit configuration.
type Config struct {
	Logging    LogConfig
	Preprocess PreprocessConfig
	Balance    BalanceConfig
	Extract    ExtractConfig
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level       string `envconfig:"LOG_LEVEL" default:"info"`
	Development bool   `envconfig:"LOG_DEV" default:"false"`
}

// PreprocessConfig holds dataset preprocessing configuration.
type PreprocessConfig struct {
	PositiveCountry string `envconfig:"PREPROCESS_COUNTRY" default:"UNITED STATES"`
}

// BalanceConfig holds class balancing configuration.
type BalanceConfig struct {
	// Seed makes sampling repeatable. Nil means a random seed per balancer.
	Seed *uint64 `envconfig:"BALANCE_SEED"`
}

// ExtractConfig holds HTML text extraction configuration.
type ExtractConfig struct {
	MaxBytes  int    `envconfig:"EXTRACT_MAX_BYTES" default:"10485760"`
	Separator string `envconfig:"EXTRACT_SEPARATOR" default:" "`
}

// Load loads configuration from environment variables.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if cfg.Extract.MaxBytes < 0 {
		return nil, fmt.Errorf("failed to load config: EXTRACT_MAX_BYTES must be >= 0, got %d", cfg.Extract.MaxBytes)
	}
	return &cfg, nil
}

// LoadOrDefault loads configuration from environment or returns default.
func LoadOrDefault() *Config {
	cfg, err := Load()
	if err != nil {
		return Default()
	}
	return cfg
}

// Default returns default configuration.
func Default() *Config {
	return &Config{
		Logging: LogConfig{
			Level:       "info",
			Development: false,
		},
		Preprocess: PreprocessConfig{
			PositiveCountry: "UNITED STATES",
		},
		Extract: ExtractConfig{
			MaxBytes:  10 * 1024 * 1024,
			Separator: " ",
		},
	}
}
