package engine

import (
	"errors"
	"io"
	"os"
	"time"

	"github.com/dop251/goja"
	"go.uber.org/zap"
)

var (
	// ErrLifecycle is the parent of every lifecycle misuse error
	ErrLifecycle = errors.New("engine lifecycle violation")

	ErrAlreadyInitialized = lifecycleError("engine already initialized")
	ErrNotRunning         = lifecycleError("engine not initialized")
	ErrShutdown           = lifecycleError("engine already shut down")
	ErrContextExists      = lifecycleError("execution context already built")

	// ErrForeignUnit is returned when a unit runs outside the context that compiled it
	ErrForeignUnit = errors.New("compiled unit belongs to another context")

	// ErrContextBuild wraps failures while constructing the global object graph
	ErrContextBuild = errors.New("failed to build execution context")
)

type lifecycleErr struct{ msg string }

func (e *lifecycleErr) Error() string        { return e.msg }
func (e *lifecycleErr) Is(target error) bool { return target == ErrLifecycle }

func lifecycleError(msg string) error { return &lifecycleErr{msg: msg} }

// State is the lifecycle state of an Engine
type State int

const (
	StateCreated State = iota
	StateRunning
	StateShutdown
)

func (s State) String() string {
	switch s {
	case StateCreated:
		return "created"
	case StateRunning:
		return "running"
	case StateShutdown:
		return "shutdown"
	default:
		return "unknown"
	}
}

// Recorder receives per-script measurements. monitoring.Metrics satisfies it.
type Recorder interface {
	ObserveCompile(path string, d time.Duration, err error)
	ObserveRun(path string, d time.Duration, err error)
	IncNativeCall(name string)
}

type nopRecorder struct{}

func (nopRecorder) ObserveCompile(string, time.Duration, error) {}
func (nopRecorder) ObserveRun(string, time.Duration, error)     {}
func (nopRecorder) IncNativeCall(string)                        {}

// Options configures an Engine
type Options struct {
	Stdout      io.Writer   // Destination of Done.core.print/println
	StrictReads bool        // fs.readFileSync throws instead of returning the error text
	Bindings    []Binding   // Installed after DefaultBindings, in order
	Logger      *zap.Logger // Defaults to a no-op logger
	Recorder    Recorder    // Defaults to a no-op recorder

	// MaxCallStackSize caps function call depth. Deeper recursion fails with
	// a RangeError diagnostic. Defaults to DefaultMaxCallStackSize.
	MaxCallStackSize int
}

// DefaultMaxCallStackSize is the call depth limit used when Options leaves it unset
const DefaultMaxCallStackSize = 1024

func (o Options) withDefaults() Options {
	if o.Stdout == nil {
		o.Stdout = os.Stdout
	}
	if o.Logger == nil {
		o.Logger = zap.NewNop()
	}
	if o.Recorder == nil {
		o.Recorder = nopRecorder{}
	}
	if o.MaxCallStackSize <= 0 {
		o.MaxCallStackSize = DefaultMaxCallStackSize
	}
	return o
}

// Unit is one compiled source file, bound to the context that compiled it
type Unit struct {
	Name   string // Base name of the file, used in stack traces
	Path   string // Path as given to Compile
	Line   int
	Column int

	program *goja.Program
	owner   *Context
}
