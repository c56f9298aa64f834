package builtins

import (
	"strings"

	"github.com/nanotcl/nanotcl/internal/ifaceerr"
	"github.com/nanotcl/nanotcl/internal/interp"
)

// cmdInfo dispatches `info sub ...`, grounded on original_source/
// pickle.c's picolCommandInfo. `command`/`line`/`level`/`width`/
// `limits`/`features` are named in spec.md §4.5; `commands ?pattern?` and
// `exists varName` are supplemented (SPEC_FULL.md §9).
func cmdInfo(i *interp.Interpreter, argv []string, data any) interp.Code {
	if len(argv) < 2 {
		return i.FailArity(2, argv)
	}
	switch argv[1] {
	case "command":
		return infoCommand(i, argv[2:])
	case "commands":
		return infoCommands(i, argv[2:])
	case "line":
		return i.SetResultInteger(int64(i.Line()))
	case "level":
		return infoLevel(i, argv[2:])
	case "width":
		return i.SetResultInteger(64)
	case "limits":
		return infoLimits(i, argv[2:])
	case "features":
		return i.SetResultString("list string arith info")
	case "exists":
		return infoExists(i, argv[2:])
	default:
		return i.Fail(ifaceerr.KindName, "No such subcommand for 'info': %s", argv[1])
	}
}

// infoCommand implements `info command` (count) and `info command name`
// (describe one), grounded on picolCommandInfo's "command" case.
func infoCommand(i *interp.Interpreter, args []string) interp.Code {
	if len(args) == 0 {
		return i.SetResultInteger(int64(i.CommandCount()))
	}
	if len(args) != 1 {
		return i.FailArity(3, append([]string{"info", "command"}, args...))
	}
	idx := i.CommandIndex(args[0])
	if idx < 0 {
		return i.Fail(ifaceerr.KindName, "No such command: %s", args[0])
	}
	cmd, _ := i.CommandAt(idx)
	if cmd.IsProc() {
		return i.SetResultString("proc")
	}
	return i.SetResultString("command")
}

// infoCommands implements the supplemented `info commands ?pattern?`,
// reusing string match's globMatch.
func infoCommands(i *interp.Interpreter, args []string) interp.Code {
	if len(args) > 1 {
		return i.FailArity(2, append([]string{"info", "commands"}, args...))
	}
	names := i.Commands()
	if len(args) == 0 {
		return i.SetResultString(strings.Join(names, " "))
	}
	var matched []string
	for _, n := range names {
		ok, err := globMatch(args[0], n, 0)
		if err != nil {
			return i.Fail(ifaceerr.KindResource, "%s", err)
		}
		if ok {
			matched = append(matched, n)
		}
	}
	return i.SetResultString(strings.Join(matched, " "))
}

func infoLevel(i *interp.Interpreter, args []string) interp.Code {
	if len(args) != 0 {
		return i.FailArity(2, append([]string{"info", "level"}, args...))
	}
	return i.SetResultInteger(int64(i.Depth()))
}

// infoLimits implements `info limits recursion|string|arguments`.
func infoLimits(i *interp.Interpreter, args []string) interp.Code {
	if len(args) != 1 {
		return i.FailArity(3, append([]string{"info", "limits"}, args...))
	}
	limits := i.GetLimits()
	switch args[0] {
	case "recursion":
		return i.SetResultInteger(int64(limits.MaxRecursion))
	case "string":
		return i.SetResultInteger(int64(limits.MaxString))
	case "arguments":
		return i.SetResultInteger(int64(limits.MaxArgs))
	default:
		return i.Fail(ifaceerr.KindName, "No such limit: %s", args[0])
	}
}

func infoExists(i *interp.Interpreter, args []string) interp.Code {
	if len(args) != 1 {
		return i.FailArity(3, append([]string{"info", "exists"}, args...))
	}
	if i.ExistsVar(args[0]) {
		return i.SetResultInteger(1)
	}
	return i.SetResultInteger(0)
}
