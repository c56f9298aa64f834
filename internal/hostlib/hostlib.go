// Package hostlib implements the OS-facing built-in commands spec.md §1
// names as host-provided, not core: puts, gets, env, clock, exec, pid.
// internal/interp.New never registers these; only cmd/nanotcl does, via
// Register, keeping the embeddable core free of OS dependencies so a host
// embedding nanotcl in a sandboxed setting can omit this package entirely.
package hostlib

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
	"time"

	"github.com/nanotcl/nanotcl/internal/ifaceerr"
	"github.com/nanotcl/nanotcl/internal/interp"
)

// Register installs puts/gets/env/clock/exec/pid on i. out and in back
// puts/gets respectively so the CLI can redirect them (e.g. for a REPL or
// test harness), grounded on picolRegisterCoreCommands' optional
// PICKLE_ADD_PLATFORM_CMDS block in original_source/pickle.c.
func Register(i *interp.Interpreter, out io.Writer, in io.Reader) error {
	reader := bufio.NewReader(in)

	commands := map[string]interp.CommandFunc{
		"puts": func(ii *interp.Interpreter, argv []string, data any) interp.Code {
			if len(argv) != 2 {
				return ii.FailArity(2, argv)
			}
			fmt.Fprintln(out, argv[1])
			return ii.SetResultEmpty()
		},
		"gets": func(ii *interp.Interpreter, argv []string, data any) interp.Code {
			if len(argv) != 1 {
				return ii.FailArity(1, argv)
			}
			line, err := reader.ReadString('\n')
			if err != nil && line == "" {
				return ii.Fail(ifaceerr.KindResource, "gets: %s", err)
			}
			return ii.SetResultString(strings.TrimRight(line, "\r\n"))
		},
		"env": func(ii *interp.Interpreter, argv []string, data any) interp.Code {
			if len(argv) != 2 {
				return ii.FailArity(2, argv)
			}
			return ii.SetResultString(os.Getenv(argv[1]))
		},
		"clock": func(ii *interp.Interpreter, argv []string, data any) interp.Code {
			if len(argv) != 1 {
				return ii.FailArity(1, argv)
			}
			return ii.SetResultInteger(time.Now().Unix())
		},
		"pid": func(ii *interp.Interpreter, argv []string, data any) interp.Code {
			if len(argv) != 1 {
				return ii.FailArity(1, argv)
			}
			return ii.SetResultInteger(int64(os.Getpid()))
		},
		"exec": func(ii *interp.Interpreter, argv []string, data any) interp.Code {
			if len(argv) < 2 {
				return ii.FailArity(2, argv)
			}
			cmd := exec.Command(argv[1], argv[2:]...)
			output, err := cmd.CombinedOutput()
			if err != nil {
				return ii.Fail(ifaceerr.KindResource, "exec: %s: %s", err, output)
			}
			return ii.SetResultString(strings.TrimRight(string(output), "\n"))
		},
	}
	for name, fn := range commands {
		if err := i.RegisterCommand(name, fn, nil); err != nil {
			return err
		}
	}
	return nil
}
