package engine

import (
	"errors"
	"time"

	"github.com/dop251/goja"
	"go.uber.org/zap"
)

// Run executes u in c. An uncaught exception or an interrupt is returned as
// *Diagnostic; the produced value is returned otherwise.
func (c *Context) Run(u *Unit) (goja.Value, error) {
	if err := c.check(); err != nil {
		return nil, err
	}
	if u == nil || u.owner != c {
		return nil, ErrForeignUnit
	}

	start := time.Now()
	val, err := c.vm.RunProgram(u.program)
	if err != nil {
		err = diagnose(u.Path, err)
	}
	c.recorder.ObserveRun(u.Path, time.Since(start), err)

	if err != nil {
		c.logger.Debug("Run failed", zap.String("path", u.Path), zap.Error(err))
		return nil, err
	}

	c.logger.Debug("Ran", zap.String("path", u.Path), zap.Duration("duration", time.Since(start)))
	return val, nil
}

const stackOverflowMessage = "RangeError: Maximum call stack size exceeded"

// diagnose flattens an engine error into a Diagnostic carrying the message
// and the full stack trace.
func diagnose(path string, err error) *Diagnostic {
	d := &Diagnostic{Stage: StageRun, Path: path, Text: err.Error()}

	var exc *goja.Exception
	var interrupted *goja.InterruptedError
	var overflow *goja.StackOverflowError
	switch {
	case errors.As(err, &interrupted):
		d.Stage = StageInterrupt
		d.Text = interrupted.String()
	case errors.As(err, &overflow):
		d.Text = stackOverflowMessage + "\n" + overflow.String()
	case errors.As(err, &exc):
		d.Text = exc.String()
	}
	return d
}
