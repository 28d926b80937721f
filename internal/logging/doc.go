// Package logging provides structured logging using uber/zap.
//
// Two modes are offered:
//   - Production: JSON output for machine parsing
//   - Development: Colored console output for human readability
//
// Components receive a named child logger:
//
//	logger := logging.NewDefault()
//	p := preprocess.New(preprocess.WithLogger(logger.Component("preprocess")))
package logging
