package engine

import (
	"go.uber.org/zap"
)

// Engine owns the script runtime for the lifetime of the host
type Engine struct {
	opts   Options
	logger *zap.Logger
	state  State
	ctx    *Context
}

// New creates an engine in the created state
func New(opts Options) *Engine {
	opts = opts.withDefaults()
	return &Engine{
		opts:   opts,
		logger: opts.Logger.Named("engine"),
		state:  StateCreated,
	}
}

// Initialize moves the engine to the running state. It must be called once.
func (e *Engine) Initialize() error {
	switch e.state {
	case StateRunning:
		return ErrAlreadyInitialized
	case StateShutdown:
		return ErrShutdown
	}

	e.state = StateRunning
	e.logger.Debug("Engine initialized")
	return nil
}

// Shutdown interrupts and releases the context, then moves the engine to the
// shutdown state. Any Compile or Run afterwards fails with ErrShutdown.
func (e *Engine) Shutdown() error {
	if err := e.checkRunning(); err != nil {
		return err
	}

	if e.ctx != nil {
		e.ctx.release()
		e.ctx = nil
	}
	e.state = StateShutdown
	e.logger.Debug("Engine shut down")
	return nil
}

// State returns the current lifecycle state
func (e *Engine) State() State {
	return e.state
}

func (e *Engine) checkRunning() error {
	switch e.state {
	case StateCreated:
		return ErrNotRunning
	case StateShutdown:
		return ErrShutdown
	}
	return nil
}
