// Package logging provides structured logging using uber/zap.
//
// Two modes are available:
//   - Production: JSON output for machine parsing
//   - Development: Colored console output for human readability
//
// Both write to stderr by default; stdout carries script output only.
//
// Example Usage:
//
//	logger, err := logging.New(logging.NewConfig("warn", false))
//	log := logger.ForRun(runID)
//	log.Debug("Engine initialized")
//	log.Error("Entry script failed", zap.Error(err))
package logging
