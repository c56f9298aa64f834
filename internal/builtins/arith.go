package builtins

import (
	"github.com/nanotcl/nanotcl/internal/ifaceerr"
	"github.com/nanotcl/nanotcl/internal/interp"
	"github.com/nanotcl/nanotcl/internal/numconv"
)

// registerArith installs the unary and binary arithmetic operators of
// spec.md §4.5, grounded on original_source/pickle.c's picolMathCommand
// family (one command per operator, sharing a strict-decimal-parse
// frontend).
func registerArith(i *interp.Interpreter) error {
	unary := map[string]func(int64) (int64, error){
		"!":    func(a int64) (int64, error) { return boolInt(a == 0), nil },
		"~":    func(a int64) (int64, error) { return ^a, nil },
		"abs":  func(a int64) (int64, error) { return absInt(a), nil },
		"bool": func(a int64) (int64, error) { return boolInt(a != 0), nil },
	}
	for name, op := range unary {
		op := op
		if err := i.RegisterCommand(name, unaryFunc(op), nil); err != nil {
			return err
		}
	}

	binary := map[string]func(a, b int64) (int64, error){
		"+":   func(a, b int64) (int64, error) { return a + b, nil },
		"-":   func(a, b int64) (int64, error) { return a - b, nil },
		"*":   func(a, b int64) (int64, error) { return a * b, nil },
		"/":   divide,
		"%":   modulo,
		">":   func(a, b int64) (int64, error) { return boolInt(a > b), nil },
		">=":  func(a, b int64) (int64, error) { return boolInt(a >= b), nil },
		"<":   func(a, b int64) (int64, error) { return boolInt(a < b), nil },
		"<=":  func(a, b int64) (int64, error) { return boolInt(a <= b), nil },
		"==":  func(a, b int64) (int64, error) { return boolInt(a == b), nil },
		"!=":  func(a, b int64) (int64, error) { return boolInt(a != b), nil },
		"<<":  func(a, b int64) (int64, error) { return a << uint(b), nil },
		">>":  func(a, b int64) (int64, error) { return a >> uint(b), nil },
		"&":   func(a, b int64) (int64, error) { return a & b, nil },
		"|":   func(a, b int64) (int64, error) { return a | b, nil },
		"^":   func(a, b int64) (int64, error) { return a ^ b, nil },
		"min": func(a, b int64) (int64, error) { return minInt(a, b), nil },
		"max": func(a, b int64) (int64, error) { return maxInt(a, b), nil },
		"pow": power,
		"log": logarithm,
	}
	for name, op := range binary {
		op := op
		if err := i.RegisterCommand(name, binaryFunc(op), nil); err != nil {
			return err
		}
	}
	return nil
}

func unaryFunc(op func(int64) (int64, error)) interp.CommandFunc {
	return func(i *interp.Interpreter, argv []string, data any) interp.Code {
		if len(argv) != 2 {
			return i.FailArity(2, argv)
		}
		a, err := parseInt(argv[1])
		if err != nil {
			return i.Fail(ifaceerr.KindType, "%s", err)
		}
		v, err := op(a)
		if err != nil {
			return i.Fail(ifaceerr.KindRange, "%s", err)
		}
		return i.SetResultInteger(v)
	}
}

func binaryFunc(op func(a, b int64) (int64, error)) interp.CommandFunc {
	return func(i *interp.Interpreter, argv []string, data any) interp.Code {
		if len(argv) != 3 {
			return i.FailArity(3, argv)
		}
		a, err := parseInt(argv[1])
		if err != nil {
			return i.Fail(ifaceerr.KindType, "%s", err)
		}
		b, err := parseInt(argv[2])
		if err != nil {
			return i.Fail(ifaceerr.KindType, "%s", err)
		}
		v, err := op(a, b)
		if err != nil {
			return i.Fail(ifaceerr.KindRange, "%s", err)
		}
		return i.SetResultInteger(v)
	}
}

func divide(a, b int64) (int64, error) {
	if b == 0 {
		return 0, errDivZero
	}
	return a / b, nil
}

func modulo(a, b int64) (int64, error) {
	if b == 0 {
		return 0, errDivZero
	}
	return a % b, nil
}

// power rejects negative exponents, grounded on picolPower.
func power(a, b int64) (int64, error) { return numconv.Power(a, b) }

// logarithm requires base >= 2 and a > 0, grounded on picolLogarithm.
func logarithm(a, base int64) (int64, error) { return numconv.Logarithm(a, base) }

var errDivZero = divZeroError{}

type divZeroError struct{}

func (divZeroError) Error() string { return "Division by 0" }

func boolInt(b bool) int64 {
	if b {
		return 1
	}
	return 0
}

func absInt(a int64) int64 {
	if a < 0 {
		return -a
	}
	return a
}

func minInt(a, b int64) int64 {
	if a < b {
		return a
	}
	return b
}

func maxInt(a, b int64) int64 {
	if a > b {
		return a
	}
	return b
}
