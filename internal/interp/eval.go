package interp

import (
	"github.com/nanotcl/nanotcl/internal/ifaceerr"
	"github.com/nanotcl/nanotcl/internal/lexer"
	"github.com/nanotcl/nanotcl/internal/token"
)

// Eval is the single reentrant evaluation entry point (spec.md §4.2),
// grounded on go-dws/internal/interp.Interpreter.Eval's role as the
// evaluator's one re-entry point, adapted here from AST-node dispatch to
// the token-driven command-assembly loop the original pickle.c uses.
//
// Eval clears the result, tokenizes script, assembles argument vectors by
// the appending rule (a SEP or EOL starts a new argument; anything else
// concatenates onto the last one), performs VAR/CMD/ESC substitution
// inline, and dispatches each completed command in turn. It stops and
// returns as soon as any dispatched command yields a code other than OK,
// including BREAK, CONTINUE, RETURN, and any user-defined code, leaving
// that code's propagation to the caller (while/proc/catch interpret it;
// the top-level caller sees it verbatim).
func (i *Interpreter) Eval(script string) Code {
	i.SetResultEmpty()
	lx := lexer.New(script, lexer.WithLineCounter(&i.line))

	var argv []string
	newArg := true
	rc := OK

	emit := func(s string) {
		if newArg || len(argv) == 0 {
			argv = append(argv, s)
		} else {
			argv[len(argv)-1] += s
		}
		newArg = false
	}

	for {
		tok, err := lx.Next()
		if err != nil {
			return i.Fail(ifaceerr.KindParse, "%s", err)
		}

		switch tok.Type {
		case token.STR:
			emit(tok.Text(script))

		case token.ESC:
			un, uerr := lexer.Unescape(tok.Text(script))
			if uerr != nil {
				return i.Fail(ifaceerr.KindParse, "%s", uerr)
			}
			emit(un)

		case token.VAR:
			name := tok.Text(script)
			val, ok := i.GetVar(name)
			if !ok {
				return i.Fail(ifaceerr.KindName, "No such variable: %s", name)
			}
			emit(val)

		case token.CMD:
			code := i.Eval(tok.Text(script))
			if code != OK {
				return code
			}
			emit(i.GetResultString())

		case token.SEP:
			newArg = true

		case token.EOL, token.EOF:
			if len(argv) > 0 {
				if len(argv) > i.limits.MaxArgs {
					return i.Fail(ifaceerr.KindResource, "Too many arguments: %d (limit %d)", len(argv), i.limits.MaxArgs)
				}
				rc = i.dispatch(argv)
				argv = nil
			}
			newArg = true
			if tok.Type == token.EOF {
				return rc
			}
			if rc != OK {
				return rc
			}
		}
	}
}

// dispatch looks up argv[0] in the command table and invokes it with the
// rest of argv, grounded on picolEval's command-lookup-and-call step.
func (i *Interpreter) dispatch(argv []string) Code {
	cmd := i.commands.get(argv[0])
	if cmd == nil {
		return i.Fail(ifaceerr.KindName, "No such command: %s", argv[0])
	}
	code := cmd.fn(i, argv, cmd.data)
	if i.trace != nil {
		i.trace(argv, code)
	}
	return code
}

// callProc is the CommandFunc installed for every user-defined proc
// (spec.md §4.5's `proc` contract), grounded on picolCommandCallProc: push
// a frame, bind formals positionally, evaluate the body, convert RETURN to
// OK, and pop the frame on every exit path including error.
func callProc(i *Interpreter, argv []string, data any) Code {
	cmd := i.commands.get(argv[0])
	if cmd == nil || !cmd.isProc {
		return i.Fail(ifaceerr.KindName, "No such command: %s", argv[0])
	}

	if i.depth >= i.limits.MaxRecursion {
		return i.Fail(ifaceerr.KindResource, "Recursion limit exceeded (%d)", i.limits.MaxRecursion)
	}

	formals := splitFormals(cmd.procArgs)
	if len(formals) != len(argv)-1 {
		return i.FailArity(len(formals)+1, argv)
	}

	i.pushFrame()
	defer i.popFrame()

	for j, name := range formals {
		i.SetVarString(name, argv[j+1])
	}

	code := i.Eval(cmd.procBody)
	if code == Return {
		return OK
	}
	return code
}

// splitFormals splits a proc's formal-argument string on single spaces,
// grounded on picolCommandAddProc's `picolParseList`-free simple split
// (pickle.c's proc args are a plain space-separated list, not a braced
// list).
func splitFormals(args string) []string {
	if args == "" {
		return nil
	}
	var out []string
	start := 0
	for j := 0; j < len(args); j++ {
		if args[j] == ' ' {
			if j > start {
				out = append(out, args[start:j])
			}
			start = j + 1
		}
	}
	if start < len(args) {
		out = append(out, args[start:])
	}
	return out
}
