package host

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"sync"

	"go.uber.org/zap"

	"github.com/GriffinCanCode/done/internal/bootstrap"
	"github.com/GriffinCanCode/done/internal/engine"
	"github.com/GriffinCanCode/done/internal/infrastructure/config"
	"github.com/GriffinCanCode/done/internal/infrastructure/logging"
	"github.com/GriffinCanCode/done/internal/infrastructure/monitoring"
	"github.com/GriffinCanCode/done/internal/shared/id"
)

// Process exit codes
const (
	ExitOK            = 0
	ExitScriptFailure = 1
	ExitFatal         = 2
)

// Host sequences one run: engine, context, bootstrap modules, entry script
type Host struct {
	cfg      *config.Config
	logger   *zap.Logger
	metrics  *monitoring.Metrics
	runID    id.RunID
	stdout   io.Writer
	stderr   io.Writer
	bindings []engine.Binding
}

// Option customizes a Host
type Option func(*Host)

// WithOutput redirects script output and diagnostics
func WithOutput(stdout, stderr io.Writer) Option {
	return func(h *Host) {
		h.stdout = stdout
		h.stderr = stderr
	}
}

// WithBindings installs extra native bindings after the default ones
func WithBindings(bindings ...engine.Binding) Option {
	return func(h *Host) {
		h.bindings = append(h.bindings, bindings...)
	}
}

// New creates a host
func New(cfg *config.Config, logger *logging.Logger, opts ...Option) *Host {
	if cfg == nil {
		cfg = config.Default()
	}
	if logger == nil {
		logger = &logging.Logger{Logger: zap.NewNop()}
	}

	runID := id.NewRunID()
	h := &Host{
		cfg:     cfg,
		logger:  logger.ForRun(runID.String()),
		metrics: monitoring.NewMetrics(),
		runID:   runID,
		stdout:  os.Stdout,
		stderr:  os.Stderr,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// RunID returns the identifier attached to this host's logs
func (h *Host) RunID() id.RunID {
	return h.runID
}

// Metrics returns the run metrics
func (h *Host) Metrics() *monitoring.Metrics {
	return h.metrics
}

// Run executes the whole pipeline and returns the process exit code.
// Cancelling ctx interrupts the script that is running.
func (h *Host) Run(ctx context.Context) int {
	defer h.finish()

	eng := engine.New(engine.Options{
		Stdout:           h.stdout,
		StrictReads:      h.cfg.Script.StrictReads,
		Bindings:         h.bindings,
		Logger:           h.logger,
		Recorder:         h.metrics,
		MaxCallStackSize: h.cfg.Script.MaxCallStack,
	})

	if err := eng.Initialize(); err != nil {
		return h.fatal("initialize engine", err)
	}

	code := h.execute(ctx, eng)

	if err := eng.Shutdown(); err != nil {
		return h.fatal("shut down engine", err)
	}
	return code
}

func (h *Host) execute(ctx context.Context, eng *engine.Engine) int {
	c, err := eng.BuildContext()
	if err != nil {
		return h.fatal("build context", err)
	}

	stop := h.watch(ctx, c)
	defer stop()

	loader := bootstrap.New(c, bootstrap.DefaultModules(h.cfg.Script.ModulesDir), h.logger)
	if err := loader.Load(); err != nil {
		return h.fail(err)
	}

	if err := loader.Exec(h.cfg.Script.Entry); err != nil {
		return h.fail(err)
	}

	h.logger.Debug("Entry script completed", zap.String("entry", h.cfg.Script.Entry))
	return ExitOK
}

// watch interrupts c when ctx is done. The returned func stops watching and
// waits for the watcher to exit.
func (h *Host) watch(ctx context.Context, c *engine.Context) func() {
	done := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(1)

	go func() {
		defer wg.Done()
		select {
		case <-ctx.Done():
			h.logger.Debug("Interrupting script", zap.Error(ctx.Err()))
			c.Interrupt(ctx.Err())
		case <-done:
		}
	}()

	return func() {
		close(done)
		wg.Wait()
	}
}

// fail reports a script fault on stderr
func (h *Host) fail(err error) int {
	h.logger.Debug("Script failure", zap.Error(err))
	fmt.Fprintln(h.stderr, Report(err))
	return ExitScriptFailure
}

// fatal reports a host fault on stderr
func (h *Host) fatal(stage string, err error) int {
	h.logger.Error("Fatal initialization failure", zap.String("stage", stage), zap.Error(err))
	fmt.Fprintf(h.stderr, "done: %s: %v\n", stage, err)
	return ExitFatal
}

func (h *Host) finish() {
	h.metrics.Finish()
	snap := h.metrics.Snapshot()
	h.logger.Debug("Run finished",
		zap.Int64("compiled", snap.Compiled),
		zap.Int64("runs", snap.Runs),
		zap.Int64("native_calls", snap.NativeCalls),
	)

	if h.cfg.Metrics.File == "" {
		return
	}
	if err := h.metrics.WriteTextfile(h.cfg.Metrics.File); err != nil {
		h.logger.Warn("Metrics not written", zap.Error(err))
	}
}

// Report returns the text shown to the user for a script failure: the
// diagnostic's stack trace when there is one, the error message otherwise.
func Report(err error) string {
	var diag *engine.Diagnostic
	if errors.As(err, &diag) {
		return diag.Report()
	}
	return err.Error()
}
