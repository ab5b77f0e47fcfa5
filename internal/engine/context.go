package engine

import (
	"fmt"
	"io"

	"github.com/dop251/goja"
	"go.uber.org/zap"
)

// Context is the single global environment scripts run in
type Context struct {
	vm       *goja.Runtime
	engine   *Engine
	stdout   io.Writer
	strict   bool
	logger   *zap.Logger
	recorder Recorder
	released bool
}

// BuildContext creates the global object graph and installs the default
// bindings followed by Options.Bindings. Only one context may be built per
// engine; the caller owns the returned value.
func (e *Engine) BuildContext() (*Context, error) {
	if err := e.checkRunning(); err != nil {
		return nil, err
	}
	if e.ctx != nil {
		return nil, ErrContextExists
	}

	vm := goja.New()
	vm.SetFieldNameMapper(goja.TagFieldNameMapper("json", true))
	vm.SetMaxCallStackSize(e.opts.MaxCallStackSize)

	c := &Context{
		vm:       vm,
		engine:   e,
		stdout:   e.opts.Stdout,
		strict:   e.opts.StrictReads,
		logger:   e.logger,
		recorder: e.opts.Recorder,
	}

	bindings := append(DefaultBindings(), e.opts.Bindings...)
	if err := c.installAll(bindings); err != nil {
		return nil, err
	}

	e.ctx = c
	e.logger.Debug("Execution context built", zap.Int("bindings", len(bindings)))
	return c, nil
}

// Namespace resolves a property path from the global object, creating plain
// objects for missing segments. An empty path returns the global object.
func (c *Context) Namespace(path ...string) (*goja.Object, error) {
	if err := c.check(); err != nil {
		return nil, err
	}

	obj := c.vm.GlobalObject()
	for _, name := range path {
		v := obj.Get(name)
		if v != nil && !goja.IsUndefined(v) && !goja.IsNull(v) {
			child, ok := v.(*goja.Object)
			if !ok {
				return nil, fmt.Errorf("%w: %q is not an object", ErrContextBuild, name)
			}
			obj = child
			continue
		}

		child := c.vm.NewObject()
		if err := obj.Set(name, child); err != nil {
			return nil, fmt.Errorf("%w: set %q: %v", ErrContextBuild, name, err)
		}
		obj = child
	}
	return obj, nil
}

// Global returns the value of a global property, or nil when it is not set
func (c *Context) Global(name string) goja.Value {
	v := c.vm.Get(name)
	if v == nil || goja.IsUndefined(v) {
		return nil
	}
	return v
}

// Interrupt aborts the script currently running, or the next one to run.
// It is safe to call from another goroutine.
func (c *Context) Interrupt(reason interface{}) {
	c.vm.Interrupt(reason)
}

func (c *Context) installAll(bindings []Binding) error {
	for _, b := range bindings {
		ns, err := c.Namespace(b.Namespace...)
		if err != nil {
			return err
		}
		if err := Install(c, ns, b.Name, b.Handler); err != nil {
			return err
		}
	}
	return nil
}

func (c *Context) check() error {
	if c.released {
		return ErrShutdown
	}
	return c.engine.checkRunning()
}

// release marks the context unusable and interrupts any script still running
func (c *Context) release() {
	c.released = true
	c.vm.Interrupt(ErrShutdown)
}
