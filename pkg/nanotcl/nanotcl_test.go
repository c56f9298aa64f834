package nanotcl

import (
	"testing"

	"github.com/nanotcl/nanotcl/internal/alloc"
	"github.com/nanotcl/nanotcl/internal/interp"
)

func TestNewRegistersBuiltins(t *testing.T) {
	e, err := New()
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer e.Close()
	code, result, err := e.Eval("set x [+ 2 3]")
	if code != CodeOK {
		t.Fatalf("eval: code=%s err=%v", code, err)
	}
	if result != "5" {
		t.Errorf("result = %q, want 5", result)
	}
}

func TestEvalReturnsErrorOnFailure(t *testing.T) {
	e, err := New()
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer e.Close()
	code, _, err := e.Eval("set x $missing")
	if code != CodeError {
		t.Fatalf("expected CodeError, got %s", code)
	}
	if err == nil {
		t.Error("expected a non-nil error")
	}
}

func TestRegisterCommandExtendsHost(t *testing.T) {
	e, err := New()
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer e.Close()
	if err := e.RegisterCommand("double", func(ip *interp.Interpreter, argv []string, data any) interp.Code {
		return ip.SetResultString(argv[1] + argv[1])
	}, nil); err != nil {
		t.Fatalf("RegisterCommand: %v", err)
	}
	code, result, err := e.Eval("double ab")
	if code != CodeOK {
		t.Fatalf("eval: code=%s err=%v", code, err)
	}
	if result != "abab" {
		t.Errorf("result = %q, want abab", result)
	}
}

func TestVarAccessors(t *testing.T) {
	e, err := New()
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer e.Close()
	e.SetVarString("name", "nanotcl")
	got, ok := e.GetVarString("name")
	if !ok || got != "nanotcl" {
		t.Errorf("GetVarString = (%q, %v), want (nanotcl, true)", got, ok)
	}
	e.SetVarInt("count", 7)
	n, ok := e.GetVarInt("count")
	if !ok || n != 7 {
		t.Errorf("GetVarInt = (%d, %v), want (7, true)", n, ok)
	}
}

func TestWithLimitsAppliesToRecursion(t *testing.T) {
	e, err := New(WithLimits(interp.Limits{MaxRecursion: 4}))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer e.Close()
	if err := e.Unwrap().RegisterProc("loop", "", "loop"); err != nil {
		t.Fatalf("RegisterProc: %v", err)
	}
	code, _, _ := e.Eval("loop")
	if code != CodeError {
		t.Fatalf("expected CodeError from recursion limit, got %s", code)
	}
}

func TestWithTraceObservesDispatch(t *testing.T) {
	var seen []string
	e, err := New(WithTrace(func(argv []string, code ReturnCode) {
		seen = append(seen, argv[0])
	}))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer e.Close()
	e.Eval("set x 1")
	if len(seen) == 0 || seen[0] != "set" {
		t.Errorf("trace saw %v, want first entry 'set'", seen)
	}
}

func TestWithAllocatorBudgetExhausted(t *testing.T) {
	budget := alloc.NewBudgeted(4)
	e, err := New(WithAllocator(budget))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer e.Close()
	code, _, _ := e.Eval("set x aVeryLongStringThatExceedsTheBudget")
	if code != CodeError {
		t.Fatalf("expected CodeError from exhausted allocator, got %s", code)
	}
}
