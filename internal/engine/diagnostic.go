package engine

import (
	"fmt"
	"strings"
)

// Stage names where a Diagnostic was produced
type Stage string

const (
	StageCompile   Stage = "compile"
	StageRun       Stage = "run"
	StageInterrupt Stage = "interrupt"
)

// Diagnostic is the flattened message and stack trace of a script fault.
// It is meant for display only.
type Diagnostic struct {
	Stage Stage
	Path  string
	Text  string
}

func (d *Diagnostic) Error() string {
	return fmt.Sprintf("%s %s: %s", d.Stage, d.Path, d.Message())
}

// Message returns the first line of the diagnostic text
func (d *Diagnostic) Message() string {
	msg, _, _ := strings.Cut(strings.TrimSpace(d.Text), "\n")
	return msg
}

// Report returns the text written to stderr for this diagnostic
func (d *Diagnostic) Report() string {
	return strings.TrimRight(d.Text, "\n")
}
