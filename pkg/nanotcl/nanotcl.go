// Package nanotcl is the public embedding facade for the interpreter
// implemented under internal/, grounded on the shape of go-dws/pkg/dwscript's
// Engine: a constructor with functional options, a single Eval entry
// point returning a result value alongside an error, and a Register*
// surface for host extension (spec.md §6).
package nanotcl

import (
	"fmt"

	"github.com/nanotcl/nanotcl/internal/alloc"
	"github.com/nanotcl/nanotcl/internal/builtins"
	"github.com/nanotcl/nanotcl/internal/ifaceerr"
	"github.com/nanotcl/nanotcl/internal/interp"
)

// ReturnCode mirrors interp.Code at the embedding boundary.
type ReturnCode = interp.Code

// Re-exported return code constants, so hosts never need to import
// internal/interp directly.
const (
	CodeError    = interp.Error
	CodeOK       = interp.OK
	CodeReturn   = interp.Return
	CodeBreak    = interp.Break
	CodeContinue = interp.Continue
)

// CommandFunc is the embedding callback signature (spec.md §6): argv[0] is
// the invoked name; the callback must set the result before returning.
type CommandFunc = interp.CommandFunc

// Interp is the embeddable interpreter handle.
type Interp struct {
	i *interp.Interpreter
}

// Option configures an Interp at construction.
type Option func(*interp.Interpreter)

// WithAllocator installs a host-supplied allocator (spec.md §4.1's
// Allocator vtable), e.g. a budgeted arena for memory-constrained hosts.
func WithAllocator(a alloc.Allocator) Option {
	return func(i *interp.Interpreter) { interp.WithAllocator(a)(i) }
}

// WithLimits overrides the interpreter's recursion/argument/bucket
// ceilings.
func WithLimits(limits interp.Limits) Option {
	return func(i *interp.Interpreter) { interp.WithLimits(limits)(i) }
}

// WithTrace installs a per-dispatch trace callback (argv, code), used by
// cmd/nanotcl's --trace flag.
func WithTrace(fn func(argv []string, code ReturnCode)) Option {
	return func(i *interp.Interpreter) { interp.WithTrace(fn)(i) }
}

// New creates an Interp with the full built-in command set registered.
func New(opts ...Option) (*Interp, error) {
	interpOpts := make([]interp.Option, 0, len(opts))
	for _, o := range opts {
		interpOpts = append(interpOpts, interp.Option(o))
	}
	core := interp.New(interpOpts...)
	if err := builtins.Register(core); err != nil {
		return nil, fmt.Errorf("nanotcl: registering builtins: %w", err)
	}
	return &Interp{i: core}, nil
}

// Close releases the interpreter's frames and command table.
func (e *Interp) Close() { e.i.Close() }

// Unwrap returns the underlying *interp.Interpreter, an escape hatch for
// packages that register commands directly against the core (such as
// internal/hostlib's OS-facing built-ins, which cmd/nanotcl installs but
// the embeddable facade itself never does).
func (e *Interp) Unwrap() *interp.Interpreter { return e.i }

// Eval evaluates script and returns its return code, result string, and an
// error when the code is anything other than OK (spec.md §6's eval).
func (e *Interp) Eval(script string) (ReturnCode, string, error) {
	code := e.i.Eval(script)
	result := e.i.GetResultString()
	if code == interp.OK {
		return code, result, nil
	}
	if rerr := e.i.LastError(); rerr != nil {
		return code, result, rerr
	}
	return code, result, fmt.Errorf("nanotcl: evaluation stopped with code %s", code)
}

// RegisterCommand registers a host-provided command, failing if the name
// is already bound (spec.md §6's register_command).
func (e *Interp) RegisterCommand(name string, fn CommandFunc, data any) error {
	return e.i.RegisterCommand(name, fn, data)
}

// RenameCommand renames a command; an empty newName removes it.
func (e *Interp) RenameCommand(oldName, newName string) error {
	return e.i.RenameCommand(oldName, newName)
}

// SetVarString assigns value to name in the top-level frame.
func (e *Interp) SetVarString(name, value string) { e.i.SetVarString(name, value) }

// GetVarString reads name from the top-level frame.
func (e *Interp) GetVarString(name string) (string, bool) { return e.i.GetVar(name) }

// SetVarInt is the integer convenience form of SetVarString.
func (e *Interp) SetVarInt(name string, value int64) { e.i.SetVarInt(name, value) }

// GetVarInt reads name and parses it as a strict base-10 integer.
func (e *Interp) GetVarInt(name string) (int64, bool) {
	v, ok, err := e.i.GetVarInt(name)
	if err != nil {
		return 0, false
	}
	return v, ok
}

// SetResultString sets the interpreter's current result.
func (e *Interp) SetResultString(s string) { e.i.SetResultString(s) }

// SetResultError formats an error result and returns CodeError, grounded
// on spec.md §6's set_result_error.
func (e *Interp) SetResultError(format string, args ...any) ReturnCode {
	return e.i.Fail(ifaceerr.KindResource, format, args...)
}

// SetResultErrorArity reports a wrong-argument-count error for a
// host-provided command.
func (e *Interp) SetResultErrorArity(expected int, argv []string) ReturnCode {
	return e.i.FailArity(expected, argv)
}

// GetResultString returns the current result text.
func (e *Interp) GetResultString() string { return e.i.GetResultString() }
