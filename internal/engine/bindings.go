package engine

import (
	"fmt"
	"io"
	"strings"

	"github.com/dop251/goja"

	"github.com/GriffinCanCode/done/internal/providers/filesystem"
)

// Handler implements a native function callable from scripts
type Handler func(c *Context, call goja.FunctionCall) goja.Value

// Binding places a handler at Namespace.Name, relative to the global object
type Binding struct {
	Namespace []string
	Name      string
	Handler   Handler
}

// Path returns the dotted script-side name of the binding
func (b Binding) Path() string {
	return strings.Join(append(append([]string{}, b.Namespace...), b.Name), ".")
}

// DefaultBindings returns the native surface every context starts with
func DefaultBindings() []Binding {
	return []Binding{
		{Namespace: []string{"Done", "core"}, Name: "print", Handler: corePrint},
		{Namespace: []string{"Done", "core"}, Name: "println", Handler: corePrintln},
		{Namespace: []string{"fs"}, Name: "readFileSync", Handler: fsReadFileSync},
	}
}

// Install wraps h in a script function and sets it as ns[name]. The property
// is a plain writable, configurable value; installing the same name again
// replaces it.
func Install(c *Context, ns *goja.Object, name string, h Handler) error {
	if err := c.check(); err != nil {
		return err
	}

	fn := func(call goja.FunctionCall) goja.Value {
		c.recorder.IncNativeCall(name)
		return h(c, call)
	}
	if err := ns.Set(name, fn); err != nil {
		return fmt.Errorf("%w: install %q: %v", ErrContextBuild, name, err)
	}
	return nil
}

func corePrint(c *Context, call goja.FunctionCall) goja.Value {
	c.write(c.toText(call.Argument(0)))
	return goja.Undefined()
}

func corePrintln(c *Context, call goja.FunctionCall) goja.Value {
	c.write(c.toText(call.Argument(0)) + "\n")
	return goja.Undefined()
}

// fsReadFileSync returns the file text. On failure the error message is
// returned as the result, or thrown when strict reads are enabled.
func fsReadFileSync(c *Context, call goja.FunctionCall) goja.Value {
	path := c.toText(call.Argument(0))

	text, err := filesystem.ReadText(path)
	if err != nil {
		if c.strict {
			panic(c.vm.NewGoError(err))
		}
		return c.vm.ToValue(err.Error())
	}
	return c.vm.ToValue(text)
}

// toText converts v the way string concatenation does: objects go through
// toString and Symbols throw a TypeError.
func (c *Context) toText(v goja.Value) string {
	if _, ok := v.(*goja.Symbol); ok {
		panic(c.vm.NewTypeError("Cannot convert a Symbol value to a string"))
	}
	return v.String()
}

func (c *Context) write(s string) {
	if _, err := io.WriteString(c.stdout, s); err != nil {
		panic(c.vm.NewGoError(err))
	}
}
