package builtins

import (
	"strconv"
	"strings"

	"github.com/nanotcl/nanotcl/internal/ifaceerr"
	"github.com/nanotcl/nanotcl/internal/interp"
)

// cmdConcat implements `concat a ...`, grounded on picolCommandConcat.
func cmdConcat(i *interp.Interpreter, argv []string, data any) interp.Code {
	return i.SetResultString(joinSpace(argv[1:]))
}

// cmdJoinArgs implements `join-args sep a ...`.
func cmdJoinArgs(i *interp.Interpreter, argv []string, data any) interp.Code {
	if len(argv) < 2 {
		return i.FailArity(2, argv)
	}
	return i.SetResultString(strings.Join(argv[2:], argv[1]))
}

// cmdJoin implements `join list sep`: tokenise list and join the
// non-separator tokens with sep, grounded on picolCommandJoin.
func cmdJoin(i *interp.Interpreter, argv []string, data any) interp.Code {
	if len(argv) != 3 {
		return i.FailArity(3, argv)
	}
	return i.SetResultString(strings.Join(splitList(argv[1]), argv[2]))
}

// cmdLindex implements `lindex list i`: negative or out-of-range returns
// empty, grounded on picolCommandLIndex.
func cmdLindex(i *interp.Interpreter, argv []string, data any) interp.Code {
	if len(argv) != 3 {
		return i.FailArity(3, argv)
	}
	idx, err := parseInt(argv[2])
	if err != nil {
		return i.Fail(ifaceerr.KindType, "%s", err)
	}
	elems := splitList(argv[1])
	if idx < 0 || int(idx) >= len(elems) {
		return i.SetResultEmpty()
	}
	return i.SetResultString(elems[idx])
}

// cmdLlength implements `llength list`, grounded on picolCommandLLength.
func cmdLlength(i *interp.Interpreter, argv []string, data any) interp.Code {
	if len(argv) != 2 {
		return i.FailArity(2, argv)
	}
	return i.SetResultInteger(int64(len(splitList(argv[1]))))
}

// cmdLappend implements the supplemented `lappend varName value...`
// (SPEC_FULL.md §9): each value is appended as its own list element.
func cmdLappend(i *interp.Interpreter, argv []string, data any) interp.Code {
	if len(argv) < 2 {
		return i.FailArity(2, argv)
	}
	cur, _ := i.GetVar(argv[1])
	elems := splitList(cur)
	elems = append(elems, argv[2:]...)
	joined := strings.Join(elems, " ")
	i.SetVarString(argv[1], joined)
	return i.SetResultString(joined)
}

// cmdLset implements the supplemented `lset varName index value`
// (SPEC_FULL.md §9), replacing the index-th element of the list stored in
// varName.
func cmdLset(i *interp.Interpreter, argv []string, data any) interp.Code {
	if len(argv) != 4 {
		return i.FailArity(4, argv)
	}
	cur, ok := i.GetVar(argv[1])
	if !ok {
		return i.Fail(ifaceerr.KindName, "No such variable: %s", argv[1])
	}
	idx, err := strconv.Atoi(argv[2])
	if err != nil {
		return i.Fail(ifaceerr.KindType, "expected integer index, got %q", argv[2])
	}
	elems := splitList(cur)
	if idx < 0 || idx >= len(elems) {
		return i.Fail(ifaceerr.KindRange, "list index %d out of range", idx)
	}
	elems[idx] = argv[3]
	joined := strings.Join(elems, " ")
	i.SetVarString(argv[1], joined)
	return i.SetResultString(joined)
}

// cmdSplit implements the supplemented `split str ?chars?` (SPEC_FULL.md
// §9); chars defaults to whitespace.
func cmdSplit(i *interp.Interpreter, argv []string, data any) interp.Code {
	if len(argv) != 2 && len(argv) != 3 {
		return i.FailArity(2, argv)
	}
	chars := " \t\n\r"
	if len(argv) == 3 {
		chars = argv[2]
	}
	parts := strings.FieldsFunc(argv[1], func(r rune) bool {
		return strings.ContainsRune(chars, r)
	})
	return i.SetResultString(strings.Join(parts, " "))
}

// cmdForeach implements the supplemented `foreach varName list body`
// (SPEC_FULL.md §9), grounded on the same BREAK/CONTINUE propagation rule
// as `while`.
func cmdForeach(i *interp.Interpreter, argv []string, data any) interp.Code {
	if len(argv) != 4 {
		return i.FailArity(4, argv)
	}
	for _, elem := range splitList(argv[2]) {
		i.SetVarString(argv[1], elem)
		code := i.Eval(argv[3])
		switch code {
		case interp.OK, interp.Continue:
			continue
		case interp.Break:
			return i.SetResultEmpty()
		default:
			return code
		}
	}
	return i.SetResultEmpty()
}

// cmdAppend implements the supplemented `append varName value...`
// (SPEC_FULL.md §9): string-accumulate onto a variable.
func cmdAppend(i *interp.Interpreter, argv []string, data any) interp.Code {
	if len(argv) < 2 {
		return i.FailArity(2, argv)
	}
	cur, _ := i.GetVar(argv[1])
	var sb strings.Builder
	sb.WriteString(cur)
	for _, v := range argv[2:] {
		sb.WriteString(v)
	}
	joined := sb.String()
	i.SetVarString(argv[1], joined)
	return i.SetResultString(joined)
}

// cmdIncr implements the supplemented `incr varName ?amount?`
// (SPEC_FULL.md §9): an unset variable starts at 0.
func cmdIncr(i *interp.Interpreter, argv []string, data any) interp.Code {
	if len(argv) != 2 && len(argv) != 3 {
		return i.FailArity(2, argv)
	}
	amount := int64(1)
	if len(argv) == 3 {
		v, err := parseInt(argv[2])
		if err != nil {
			return i.Fail(ifaceerr.KindType, "%s", err)
		}
		amount = v
	}
	cur := int64(0)
	if s, ok := i.GetVar(argv[1]); ok {
		v, err := parseInt(s)
		if err != nil {
			return i.Fail(ifaceerr.KindType, "%s", err)
		}
		cur = v
	}
	result := cur + amount
	i.SetVarInt(argv[1], result)
	return i.SetResultInteger(result)
}
