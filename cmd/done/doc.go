// Package main is the entry point of the done scripting host.
//
// done embeds a JavaScript engine, exposes a small native surface
// (Done.core.print, Done.core.println, fs.readFileSync), runs the bootstrap
// modules and then the entry script, relative to the working directory:
//
//	./src/modules/require.js
//	./src/modules/console.js
//	./src/modules/colors.js
//	./done.js
//
// Configuration:
//   - Environment variables only, all optional (see internal/infrastructure/config)
//   - No flags or subcommands
//
// Usage:
//
//	# Run ./done.js
//	./done
//
//	# Debug logging on stderr
//	LOG_LEVEL=debug LOG_DEV=true ./done
//
// Signals:
//   - SIGINT, SIGTERM: interrupt the running script and exit non-zero
package main
