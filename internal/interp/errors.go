package interp

import (
	"strings"

	"github.com/nanotcl/nanotcl/internal/ifaceerr"
)

// Fail formats an error of the given kind, stores "line N: msg" as the
// result (spec.md §4.6's set_result_error), and returns Error. Builtins
// pick the kind that matches spec.md §7's taxonomy.
func (i *Interpreter) Fail(kind ifaceerr.Kind, format string, args ...any) Code {
	err := ifaceerr.New(kind, i.line, i.source, format, args...)
	_ = i.setString(err.Error())
	i.lastErr = err
	return Error
}

// LastError returns the ifaceerr.RuntimeError behind the most recent Fail
// call, or nil if the result was never set via Fail. Its Format method
// prints a source line only when Source is set; the interpreter does not
// record script text, so errors it creates carry an empty Source and Format
// prints the line number and message only.
func (i *Interpreter) LastError() *ifaceerr.RuntimeError { return i.lastErr }

// FailArity reports a wrong-argument-count error naming the command and
// its full invocation, grounded on pickle_set_result_error_arity.
func (i *Interpreter) FailArity(expected int, argv []string) Code {
	return i.Fail(ifaceerr.KindArity, "Wrong number of args for '%s' (expected %d)\nGot: %s",
		argv[0], expected-1, strings.Join(argv, " "))
}

// OutOfMemory installs the static OOM sink without allocating, grounded on
// picolSetResultErrorOutOfMemory.
func (i *Interpreter) OutOfMemory() Code {
	i.result.text = oomText
	i.result.allocated = 0
	i.result.oom = true
	i.lastErr = ifaceerr.New(ifaceerr.KindResource, i.line, i.source, oomText)
	return Error
}
