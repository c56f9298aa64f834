package interp

import (
	"fmt"
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"

	"github.com/nanotcl/nanotcl/internal/alloc"
	"github.com/nanotcl/nanotcl/internal/ifaceerr"
)

func newTestInterp(t *testing.T) *Interpreter {
	t.Helper()
	i := New()
	mustRegister(t, i, "set", cmdTestSet)
	mustRegister(t, i, "+", cmdTestAdd)
	return i
}

func mustRegister(t *testing.T, i *Interpreter, name string, fn CommandFunc) {
	t.Helper()
	if err := i.RegisterCommand(name, fn, nil); err != nil {
		t.Fatalf("RegisterCommand(%s): %v", name, err)
	}
}

func cmdTestSet(i *Interpreter, argv []string, data any) Code {
	if len(argv) == 3 {
		i.SetVarString(argv[1], argv[2])
		return i.SetResultString(argv[2])
	}
	v, ok := i.GetVar(argv[1])
	if !ok {
		return i.Fail(ifaceerr.KindName, "No such variable: %s", argv[1])
	}
	return i.SetResultString(v)
}

func cmdTestAdd(i *Interpreter, argv []string, data any) Code {
	a, _ := parseInt(argv[1])
	b, _ := parseInt(argv[2])
	return i.SetResultInteger(a + b)
}

func TestEvalSetAndSubstitution(t *testing.T) {
	i := newTestInterp(t)
	if code := i.Eval("set x 5"); code != OK {
		t.Fatalf("set: code=%s result=%s", code, i.GetResultString())
	}
	if code := i.Eval("set y $x"); code != OK {
		t.Fatalf("set y: code=%s", code)
	}
	if got, _ := i.GetVar("y"); got != "5" {
		t.Errorf("y = %q, want 5", got)
	}
}

func TestEvalCommandSubstitution(t *testing.T) {
	i := newTestInterp(t)
	i.Eval("set a 2")
	i.Eval("set b 3")
	code := i.Eval("set c [+ $a $b]")
	if code != OK {
		t.Fatalf("code=%s result=%s", code, i.GetResultString())
	}
	if got, _ := i.GetVar("c"); got != "5" {
		t.Errorf("c = %q, want 5", got)
	}
}

func TestEvalConcatenationAcrossTokens(t *testing.T) {
	i := newTestInterp(t)
	i.Eval("set x world")
	code := i.Eval(`set greeting hello-$x`)
	if code != OK {
		t.Fatalf("code=%s", code)
	}
	if got, _ := i.GetVar("greeting"); got != "hello-world" {
		t.Errorf("greeting = %q, want hello-world", got)
	}
}

func TestEvalUnknownVariableFails(t *testing.T) {
	i := newTestInterp(t)
	code := i.Eval("set x $nope")
	if code != Error {
		t.Fatalf("expected Error, got %s", code)
	}
	if i.LastError() == nil {
		t.Error("expected a recorded RuntimeError")
	}
}

func TestEvalUnknownCommandFails(t *testing.T) {
	i := newTestInterp(t)
	code := i.Eval("frobnicate")
	if code != Error {
		t.Fatalf("expected Error, got %s", code)
	}
}

func TestEvalMultipleStatementsSequential(t *testing.T) {
	i := newTestInterp(t)
	code := i.Eval("set a 1\nset b 2\nset c [+ $a $b]")
	if code != OK {
		t.Fatalf("code=%s result=%s", code, i.GetResultString())
	}
	if got, _ := i.GetVar("c"); got != "3" {
		t.Errorf("c = %q, want 3", got)
	}
}

func TestEvalStopsAtFirstError(t *testing.T) {
	i := newTestInterp(t)
	code := i.Eval("set a $missing\nset b 99")
	if code != Error {
		t.Fatalf("expected Error, got %s", code)
	}
	if _, ok := i.GetVar("b"); ok {
		t.Error("statement after the failing one must not run")
	}
}

func TestCallFrameBalanceAcrossProcCall(t *testing.T) {
	i := newTestInterp(t)
	if err := i.RegisterProc("double", "n", "+ $n $n"); err != nil {
		t.Fatalf("RegisterProc: %v", err)
	}
	before := i.frame
	code := i.Eval("double 21")
	if code != OK {
		t.Fatalf("code=%s result=%s", code, i.GetResultString())
	}
	if i.frame != before {
		t.Error("frame stack must be balanced after a proc call")
	}
	if got := i.GetResultString(); got != "42" {
		t.Errorf("result = %q, want 42", got)
	}
}

func TestCallFrameBalanceOnProcError(t *testing.T) {
	i := newTestInterp(t)
	if err := i.RegisterProc("boom", "", "set x $missing"); err != nil {
		t.Fatalf("RegisterProc: %v", err)
	}
	before := i.frame
	code := i.Eval("boom")
	if code != Error {
		t.Fatalf("expected Error, got %s", code)
	}
	if i.frame != before {
		t.Error("frame stack must be balanced even when the proc body errors")
	}
}

func TestRecursionLimitExceeded(t *testing.T) {
	i := New(WithLimits(Limits{MaxRecursion: 8}))
	mustRegister(t, i, "+", cmdTestAdd)
	if err := i.RegisterProc("loop", "n", "loop $n"); err != nil {
		t.Fatalf("RegisterProc: %v", err)
	}
	code := i.Eval("loop 0")
	if code != Error {
		t.Fatalf("expected Error from recursion limit, got %s", code)
	}
}

func TestSmallStringDoesNotAllocate(t *testing.T) {
	i := newTestInterp(t)
	budget := alloc.NewBudgeted(0)
	WithAllocator(budget)(i)
	i.SetResultString("short")
	if budget.InUse() != 0 {
		t.Errorf("small string result charged %d bytes, want 0", budget.InUse())
	}
}

func TestEndToEndScenarios(t *testing.T) {
	scripts := []string{
		"set x 10\nset y 20\nset z [+ $x $y]",
		"set a hello\nset b $a-world",
	}
	for idx, script := range scripts {
		i := newTestInterp(t)
		code := i.Eval(script)
		snaps.MatchSnapshot(t, fmt.Sprintf("scenario_%d", idx), fmt.Sprintf("code=%s result=%s", code, i.GetResultString()))
	}
}
