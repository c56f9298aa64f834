package builtins

import (
	"github.com/nanotcl/nanotcl/internal/ifaceerr"
	"github.com/nanotcl/nanotcl/internal/interp"
)

// cmdSet implements spec.md §4.5's `set v ?x?`, grounded on
// picolCommandSet.
func cmdSet(i *interp.Interpreter, argv []string, data any) interp.Code {
	switch len(argv) {
	case 2:
		val, ok := i.GetVar(argv[1])
		if !ok {
			return i.Fail(ifaceerr.KindName, "No such variable: %s", argv[1])
		}
		return i.SetResultString(val)
	case 3:
		i.SetVarString(argv[1], argv[2])
		return i.SetResultString(argv[2])
	default:
		return i.FailArity(3, argv)
	}
}

// cmdUnset implements `unset v`, grounded on picolCommandUnSet.
func cmdUnset(i *interp.Interpreter, argv []string, data any) interp.Code {
	if len(argv) != 2 {
		return i.FailArity(2, argv)
	}
	if err := i.UnsetVar(argv[1]); err != nil {
		return i.Fail(ifaceerr.KindName, "%s", err)
	}
	return i.SetResultEmpty()
}

// cmdIf implements `if c t ?else e?`, grounded on picolCommandIf.
func cmdIf(i *interp.Interpreter, argv []string, data any) interp.Code {
	if len(argv) != 3 && len(argv) != 5 {
		return i.FailArity(3, argv)
	}
	if len(argv) == 5 && argv[3] != "else" {
		return i.Fail(ifaceerr.KindParse, "if: expected 'else', got '%s'", argv[3])
	}
	code := i.Eval(argv[1])
	if code != interp.OK {
		return code
	}
	ok, err := truthyResult(i)
	if err != nil {
		return i.Fail(ifaceerr.KindType, "%s", err)
	}
	if ok {
		return i.Eval(argv[2])
	}
	if len(argv) == 5 {
		return i.Eval(argv[4])
	}
	return i.SetResultEmpty()
}

// cmdWhile implements `while c b`, grounded on picolCommandWhile: BREAK
// terminates OK, CONTINUE resumes at the condition, any other non-OK code
// propagates.
func cmdWhile(i *interp.Interpreter, argv []string, data any) interp.Code {
	if len(argv) != 3 {
		return i.FailArity(3, argv)
	}
	for {
		code := i.Eval(argv[1])
		if code != interp.OK {
			return code
		}
		ok, err := truthyResult(i)
		if err != nil {
			return i.Fail(ifaceerr.KindType, "%s", err)
		}
		if !ok {
			return i.SetResultEmpty()
		}
		code = i.Eval(argv[2])
		switch code {
		case interp.OK, interp.Continue:
			continue
		case interp.Break:
			return i.SetResultEmpty()
		default:
			return code
		}
	}
}

func cmdBreak(i *interp.Interpreter, argv []string, data any) interp.Code {
	if len(argv) != 1 {
		return i.FailArity(1, argv)
	}
	i.SetResultEmpty()
	return interp.Break
}

func cmdContinue(i *interp.Interpreter, argv []string, data any) interp.Code {
	if len(argv) != 1 {
		return i.FailArity(1, argv)
	}
	i.SetResultEmpty()
	return interp.Continue
}

// cmdReturn implements `return ?v? ?code?`, grounded on
// picolCommandReturn: any non-zero user code passed propagates unchanged,
// enabling user-defined control codes.
func cmdReturn(i *interp.Interpreter, argv []string, data any) interp.Code {
	if len(argv) > 3 {
		return i.FailArity(3, argv)
	}
	val := ""
	if len(argv) >= 2 {
		val = argv[1]
	}
	i.SetResultString(val)
	if len(argv) == 3 {
		code, err := parseInt(argv[2])
		if err != nil {
			return i.Fail(ifaceerr.KindType, "%s", err)
		}
		return interp.Code(code)
	}
	return interp.Return
}

// cmdCatch implements `catch script varname`, grounded on
// picolCommandCatch: the numeric return code is stored into varname and
// catch itself always returns OK.
func cmdCatch(i *interp.Interpreter, argv []string, data any) interp.Code {
	if len(argv) != 3 {
		return i.FailArity(3, argv)
	}
	code := i.Eval(argv[1])
	i.SetVarString(argv[2], formatInt(int64(code)))
	return interp.OK
}

// cmdProc implements `proc name args body`, grounded on
// picolCommandAddProc.
func cmdProc(i *interp.Interpreter, argv []string, data any) interp.Code {
	if len(argv) != 4 {
		return i.FailArity(4, argv)
	}
	if err := i.RegisterProc(argv[1], argv[2], argv[3]); err != nil {
		return i.Fail(ifaceerr.KindRedefinition, "%s", err)
	}
	return i.SetResultEmpty()
}

// cmdRename implements `rename old new`, grounded on
// picolCommandRename.
func cmdRename(i *interp.Interpreter, argv []string, data any) interp.Code {
	if len(argv) != 3 {
		return i.FailArity(3, argv)
	}
	if err := i.RenameCommand(argv[1], argv[2]); err != nil {
		return i.Fail(ifaceerr.KindName, "%s", err)
	}
	return i.SetResultEmpty()
}

// cmdEval implements `eval a ...`, grounded on picolCommandEval: the args
// are concatenated with single spaces and the result re-evaluated.
func cmdEval(i *interp.Interpreter, argv []string, data any) interp.Code {
	if len(argv) < 2 {
		return i.FailArity(2, argv)
	}
	return i.Eval(joinSpace(argv[1:]))
}

// cmdUplevel implements `uplevel level a ...`, grounded on
// picolCommandUpLevel.
func cmdUplevel(i *interp.Interpreter, argv []string, data any) interp.Code {
	if len(argv) < 3 {
		return i.FailArity(3, argv)
	}
	level, err := i.ResolveLevel(argv[1])
	if err != nil {
		return i.Fail(ifaceerr.KindRange, "%s", err)
	}
	return i.EvalAtLevel(level, joinSpace(argv[2:]))
}

// cmdUpvar implements `upvar level srcName dstName`, grounded on
// picolCommandUpVar.
func cmdUpvar(i *interp.Interpreter, argv []string, data any) interp.Code {
	if len(argv) != 4 {
		return i.FailArity(4, argv)
	}
	level, err := i.ResolveLevel(argv[1])
	if err != nil {
		return i.Fail(ifaceerr.KindRange, "%s", err)
	}
	if err := i.LinkVar(argv[3], level, argv[2]); err != nil {
		return i.Fail(ifaceerr.KindRedefinition, "%s", err)
	}
	return i.SetResultEmpty()
}

// truthyResult parses the interpreter's current result as spec.md §6's
// truthiness rule: "result parses as non-zero integer".
func truthyResult(i *interp.Interpreter) (bool, error) {
	v, err := parseInt(i.GetResultString())
	if err != nil {
		return false, err
	}
	return v != 0, nil
}
