// Package builtins implements the command catalogue of spec.md §4.5
// (control flow, arithmetic, string and list manipulation, introspection)
// plus the supplemented list/convenience commands named in SPEC_FULL.md
// §9. Every command is a interp.CommandFunc registered by Register; none
// of it is wired into internal/interp.New itself, avoiding an import
// cycle and keeping the core evaluator free of any particular command
// catalogue, grounded on go-dws's own separation between internal/interp
// (evaluation machinery) and its builtins_*.go command implementations
// living in the same tree but addressed as a distinct concern.
package builtins

import "github.com/nanotcl/nanotcl/internal/interp"

// Register installs the full built-in command set on i, grounded
// collectively on original_source/pickle.c's picolRegisterCoreCommands.
// Callers (normally pkg/nanotcl.New) call this immediately after
// interp.New.
func Register(i *interp.Interpreter) error {
	commands := map[string]interp.CommandFunc{
		"set":      cmdSet,
		"unset":    cmdUnset,
		"if":       cmdIf,
		"while":    cmdWhile,
		"break":    cmdBreak,
		"continue": cmdContinue,
		"return":   cmdReturn,
		"catch":    cmdCatch,
		"proc":     cmdProc,
		"rename":   cmdRename,
		"eval":     cmdEval,
		"uplevel":  cmdUplevel,
		"upvar":    cmdUpvar,

		"concat":     cmdConcat,
		"join-args":  cmdJoinArgs,
		"join":       cmdJoin,
		"lindex":     cmdLindex,
		"llength":    cmdLlength,
		"lappend":    cmdLappend,
		"lset":       cmdLset,
		"split":      cmdSplit,
		"foreach":    cmdForeach,
		"append":     cmdAppend,
		"incr":       cmdIncr,

		"string": cmdString,

		"info": cmdInfo,
	}
	for name, fn := range commands {
		if err := i.RegisterCommand(name, fn, nil); err != nil {
			return err
		}
	}
	return registerArith(i)
}
