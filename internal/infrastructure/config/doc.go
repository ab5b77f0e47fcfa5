// Package config provides 12-factor configuration for the done host.
//
// Configuration is loaded from environment variables. The defaults
// reproduce the fixed behaviour of the host: run ./src/modules/require.js,
// console.js and colors.js, then ./done.js, with no metrics written.
//
// Configuration Sections:
//   - Script: entry file, bootstrap module directory, read and recursion limits
//   - Logging: log level and output format
//   - Metrics: optional Prometheus text file written at exit
//
// Example Usage:
//
//	cfg, err := config.Load()
//	if err != nil {
//		return err
//	}
//	fmt.Printf("Running %s\n", cfg.Script.Entry)
//
// Environment Variables:
//   - DONE_ENTRY, DONE_MODULES_DIR, DONE_STRICT_READS, DONE_MAX_CALL_STACK
//   - LOG_LEVEL, LOG_DEV
//   - DONE_METRICS_FILE
package config
