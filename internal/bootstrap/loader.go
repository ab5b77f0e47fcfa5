// Package bootstrap runs the setup scripts that establish baseline globals
// before the entry script, and the entry script itself.
package bootstrap

import (
	"fmt"

	"github.com/dop251/goja"
	"go.uber.org/zap"

	"github.com/GriffinCanCode/done/internal/engine"
	"github.com/GriffinCanCode/done/internal/shared/paths"
)

// DefaultModules returns the bootstrap module paths under dir, in run order
func DefaultModules(dir string) []string {
	return paths.InDir(dir, paths.BootstrapModules())
}

// Runner compiles and runs scripts. *engine.Context satisfies it.
type Runner interface {
	Compile(path string) (*engine.Unit, error)
	Run(u *engine.Unit) (goja.Value, error)
}

// Loader executes a fixed list of modules through one compile, run and
// report path.
type Loader struct {
	runner  Runner
	modules []string
	logger  *zap.Logger
}

// New creates a loader for modules, run in the given order
func New(runner Runner, modules []string, logger *zap.Logger) *Loader {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Loader{
		runner:  runner,
		modules: append([]string(nil), modules...),
		logger:  logger.Named("bootstrap"),
	}
}

// Modules returns the module paths in run order
func (l *Loader) Modules() []string {
	return append([]string(nil), l.modules...)
}

// Load executes every module in order and stops at the first failure
func (l *Loader) Load() error {
	for i, path := range l.modules {
		if err := l.Exec(path); err != nil {
			return fmt.Errorf("bootstrap module %d (%s): %w", i+1, path, err)
		}
	}
	l.logger.Debug("Bootstrap complete", zap.Int("modules", len(l.modules)))
	return nil
}

// Exec compiles and runs one script. Read failures, compile diagnostics and
// run diagnostics are all returned to the caller unchanged.
func (l *Loader) Exec(path string) error {
	unit, err := l.runner.Compile(path)
	if err != nil {
		l.logger.Debug("Script did not compile", zap.String("path", path), zap.Error(err))
		return err
	}

	if _, err := l.runner.Run(unit); err != nil {
		l.logger.Debug("Script failed", zap.String("path", path), zap.Error(err))
		return err
	}

	l.logger.Debug("Script executed", zap.String("path", path))
	return nil
}
