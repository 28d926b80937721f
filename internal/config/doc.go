// Package config provides 12-factor configuration for the domain preparation
// toolkit.
//
// Configuration is loaded from environment variables with sensible defaults.
//
// Configuration Sections:
//   - Logging: Log level and output format
//   - Preprocess: Registrant country encoded as 1
//   - Balance: Optional sampling seed
//   - Extract: HTML size limit and text separator
//
// Example Usage:
//
//	cfg := config.LoadOrDefault()
//	toolkit, err := domainprep.New(cfg)
//
// Environment Variables:
//   - LOG_LEVEL, LOG_DEV
//   - PREPROCESS_COUNTRY
//   - BALANCE_SEED
//   - EXTRACT_MAX_BYTES, EXTRACT_SEPARATOR
package config
