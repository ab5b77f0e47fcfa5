// Package host drives a run of the done scripting host.
//
// Run Lifecycle:
//  1. Initialize the engine
//  2. Build the execution context with the native bindings
//  3. Run the bootstrap modules (require.js, console.js, colors.js) in order
//  4. Compile and run the entry script
//  5. Print any diagnostic to stderr
//  6. Shut the engine down and, if configured, write run metrics
//
// Every script, bootstrap or entry, goes through the same compile, run and
// report path. The first failure stops the run.
//
// Exit Codes:
//   - 0: every script ran
//   - 1: a script could not be read, compiled or ran into an uncaught exception
//   - 2: the host itself could not start or stop
//
// Example Usage:
//
//	cfg, err := config.Load()
//	logger, err := logging.New(logging.NewConfig(cfg.Logging.Level, cfg.Logging.Development))
//	h := host.New(cfg, logger)
//	os.Exit(h.Run(ctx))
package host
