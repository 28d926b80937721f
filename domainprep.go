// Package domainprep bundles the data-preparation helpers of the domain
// reputation workflow: the analyst dataset preprocessor, the class balancer
// and the HTML visible-text extractor.
//
// The three components are independent; Toolkit only builds them from one
// configuration and logger.
//
// Example Usage:
//
//	tk, err := domainprep.NewFromEnv()
//	if err != nil {
//		return err
//	}
//	clean, err := tk.Preprocessor.Preprocess(frame)
//	valuable, nonValuable, err := tk.Balancer.Balance(clean)
//	text, err := tk.Extractor.Text(page)
package domainprep

import (
	"fmt"

	"github.com/GriffinCanCode/domainprep/internal/balance"
	"github.com/GriffinCanCode/domainprep/internal/config"
	"github.com/GriffinCanCode/domainprep/internal/dataset"
	"github.com/GriffinCanCode/domainprep/internal/htmltext"
	"github.com/GriffinCanCode/domainprep/internal/logging"
	"github.com/GriffinCanCode/domainprep/internal/preprocess"
)

// Re-exported so callers outside this module can build and inspect frames.
type (
	Config      = config.Config
	Frame       = dataset.Frame
	Schema      = dataset.Schema
	Field       = dataset.Field
	SchemaError = dataset.SchemaError
)

var (
	// NewFrame builds a frame from a header and row-major values.
	NewFrame = dataset.New
	// DefaultConfig returns the default configuration.
	DefaultConfig = config.Default

	ErrSchemaMismatch    = dataset.ErrSchemaMismatch
	ErrClassSizeMismatch = balance.ErrClassSizeMismatch
	ErrTooLarge          = htmltext.ErrTooLarge
)

// Toolkit holds one instance of each preparation component.
type Toolkit struct {
	Preprocessor *preprocess.Preprocessor
	Balancer     *balance.Balancer
	Extractor    *htmltext.Extractor
	Logger       *logging.Logger
}

// New builds a toolkit from cfg. A nil cfg means defaults.
func New(cfg *Config) (*Toolkit, error) {
	if cfg == nil {
		cfg = config.Default()
	}

	logCfg := logging.DefaultConfig()
	logCfg.Level = cfg.Logging.Level
	logCfg.Development = cfg.Logging.Development
	logger, err := logging.New(logCfg)
	if err != nil {
		return nil, fmt.Errorf("domainprep: %w", err)
	}

	return newToolkit(cfg, logger), nil
}

// NewFromEnv loads the configuration from the environment and builds a toolkit.
func NewFromEnv() (*Toolkit, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("domainprep: %w", err)
	}
	return New(cfg)
}

func newToolkit(cfg *Config, logger *logging.Logger) *Toolkit {
	balanceOpts := []balance.Option{balance.WithLogger(logger.Component("balance"))}
	if cfg.Balance.Seed != nil {
		balanceOpts = append(balanceOpts, balance.WithSeed(*cfg.Balance.Seed))
	}

	return &Toolkit{
		Preprocessor: preprocess.New(
			preprocess.WithPositiveCountry(cfg.Preprocess.PositiveCountry),
			preprocess.WithLogger(logger.Component("preprocess")),
		),
		Balancer: balance.New(balanceOpts...),
		Extractor: htmltext.New(
			htmltext.WithMaxBytes(cfg.Extract.MaxBytes),
			htmltext.WithSeparator(cfg.Extract.Separator),
			htmltext.WithLogger(logger.Component("htmltext")),
		),
		Logger: logger,
	}
}

// Sync flushes buffered log entries.
func (t *Toolkit) Sync() error {
	return t.Logger.Sync()
}
