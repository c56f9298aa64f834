package interp

import (
	"github.com/nanotcl/nanotcl/internal/alloc"
	"github.com/nanotcl/nanotcl/internal/ifaceerr"
)

// defaultBuckets is the command table's bucket count absent an override.
// `info limits` does not report it.
const defaultBuckets = 512

// defaultMaxRecursion bounds proc-call nesting, grounded on
// PICKLE_MAX_RECURSION in pickle.c; exceeding it is a KindResource error.
const defaultMaxRecursion = 128

// defaultMaxArgs is the largest argv accepted by a single command
// invocation; Eval fails a command whose argv is longer.
const defaultMaxArgs = 1 << 20

// Limits bundles the interpreter's configurable ceilings. MaxRecursion,
// MaxString and MaxArgs are readable via `info limits`; Buckets is not.
type Limits struct {
	MaxRecursion int
	MaxArgs      int
	Buckets      int
	MaxString    int
}

func defaultLimits() Limits {
	return Limits{
		MaxRecursion: defaultMaxRecursion,
		MaxArgs:      defaultMaxArgs,
		Buckets:      defaultBuckets,
	}
}

// Interpreter is the whole of nanotcl's runtime state (spec.md §3): the
// active call frame chain, the command table, the current result, the
// allocator, and the position of the statement currently being evaluated
// (for error reporting and `info line`).
type Interpreter struct {
	frame    *Frame
	top      *Frame
	commands *commandTable
	result   Result
	alloc    alloc.Allocator
	depth    int
	line     int
	source   string
	lastErr  *ifaceerr.RuntimeError
	limits   Limits
	trace    func(argv []string, code Code)
}

// Option configures an Interpreter at construction time, mirroring the
// functional-option pattern used throughout this codebase (see
// lexer.Option).
type Option func(*Interpreter)

// WithAllocator installs a to replace the default no-op allocator, letting
// a host impose a byte budget (spec.md §4.1's Allocator vtable).
func WithAllocator(a alloc.Allocator) Option {
	return func(i *Interpreter) { i.alloc = a }
}

// WithTrace installs a callback invoked after every command dispatch
// (including commands run inside `[...]` substitutions and proc bodies)
// with its argument vector and resulting code, letting a host
// (cmd/nanotcl's --trace flag) observe evaluation without the core
// evaluator depending on any particular logging library.
func WithTrace(fn func(argv []string, code Code)) Option {
	return func(i *Interpreter) { i.trace = fn }
}

// WithLimits overrides the interpreter's recursion/arg/bucket ceilings.
// Zero fields in limits fall back to the default for that field.
func WithLimits(limits Limits) Option {
	return func(i *Interpreter) {
		if limits.MaxRecursion > 0 {
			i.limits.MaxRecursion = limits.MaxRecursion
		}
		if limits.MaxArgs > 0 {
			i.limits.MaxArgs = limits.MaxArgs
		}
		if limits.Buckets > 0 {
			i.limits.Buckets = limits.Buckets
		}
		if limits.MaxString > 0 {
			i.limits.MaxString = limits.MaxString
		}
	}
}

// New creates an Interpreter with an empty top-level frame and an empty
// command table, grounded on pickle_new/picol_initialize. It registers no
// commands of its own: the built-in set lives in internal/builtins to keep
// that 40%-of-the-surface command catalogue out of this package, so callers
// (normally pkg/nanotcl.New) install it with internal/builtins.Register(i)
// immediately after construction. The caller is responsible for calling
// Close when done.
func New(opts ...Option) *Interpreter {
	i := &Interpreter{
		alloc:  alloc.Default{},
		limits: defaultLimits(),
	}
	for _, opt := range opts {
		opt(i)
	}
	i.commands = newCommandTable(i.limits.Buckets)
	i.top = &Frame{}
	i.frame = i.top
	return i
}

// Close releases the interpreter's frames and command table, satisfying
// spec.md §8's call-frame/command-table balance invariant on teardown.
// Subsequent use of the Interpreter is not supported.
func (i *Interpreter) Close() {
	for i.frame != nil {
		i.popFrame()
	}
	i.commands = nil
	if i.result.allocated > 0 {
		i.alloc.Free(i.result.allocated)
		i.result.allocated = 0
	}
}

// Depth returns the current call-frame nesting depth (0 at top level),
// exposed to `info level` with no arguments.
func (i *Interpreter) Depth() int { return i.depth }

// Line returns the source line of the statement currently being
// evaluated, exposed by `info line`.
func (i *Interpreter) Line() int { return i.line }

// GetLimits returns the interpreter's configured ceilings, exposed by
// `info limits`.
func (i *Interpreter) GetLimits() Limits { return i.limits }
