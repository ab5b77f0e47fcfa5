package engine

import (
	"path/filepath"
	"time"

	"github.com/dop251/goja"
	"go.uber.org/zap"

	"github.com/GriffinCanCode/done/internal/providers/filesystem"
)

// Compile reads path and compiles it against c. A read failure returns
// *filesystem.IOError and a syntax error returns *Diagnostic.
func (c *Context) Compile(path string) (*Unit, error) {
	if err := c.check(); err != nil {
		return nil, err
	}

	start := time.Now()
	unit, err := c.compile(path)
	c.recorder.ObserveCompile(path, time.Since(start), err)
	if err != nil {
		c.logger.Debug("Compile failed", zap.String("path", path), zap.Error(err))
		return nil, err
	}

	c.logger.Debug("Compiled", zap.String("path", path), zap.Duration("duration", time.Since(start)))
	return unit, nil
}

func (c *Context) compile(path string) (*Unit, error) {
	src, err := filesystem.ReadText(path)
	if err != nil {
		return nil, err
	}

	unit := &Unit{
		Name:  filepath.Base(path),
		Path:  path,
		owner: c,
	}

	program, err := goja.Compile(unit.Name, src, false)
	if err != nil {
		return nil, &Diagnostic{Stage: StageCompile, Path: path, Text: err.Error()}
	}
	unit.program = program
	return unit, nil
}
