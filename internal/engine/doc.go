/*
Package engine embeds the goja JavaScript engine and exposes the small
native surface that host scripts run against.

# Overview

An Engine moves through three states: created, running and shut down.
While running it owns exactly one Context, the global environment every
script executes in. The context is built once and carries two namespace
objects:

  - Done.core: print and println, writing to the configured stdout
  - fs: readFileSync, returning a file's contents as a string

# Pipeline

 1. Initialize the engine
 2. BuildContext installs the binding table
 3. Compile turns a source file into a Unit, or returns a Diagnostic
 4. Run executes a Unit in the context that compiled it

Compile and Run never panic on script faults. Syntax errors and uncaught
exceptions come back as *Diagnostic; unreadable sources come back as
*filesystem.IOError. Misuse of the lifecycle (running before Initialize,
after Shutdown, or a second context) returns an error wrapping
ErrLifecycle.

# Usage Example

	eng := engine.New(engine.Options{Stdout: os.Stdout})
	if err := eng.Initialize(); err != nil {
		return err
	}
	defer eng.Shutdown()

	ctx, err := eng.BuildContext()
	if err != nil {
		return err
	}

	unit, err := ctx.Compile("./done.js")
	if err != nil {
		return err
	}
	_, err = ctx.Run(unit)

# Concurrency

Nothing in this package is safe for concurrent use, with the single
exception of Context.Interrupt.
*/
package engine
