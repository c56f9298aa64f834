package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/nanotcl/nanotcl/internal/hostlib"
	"github.com/nanotcl/nanotcl/internal/interp"
	"github.com/nanotcl/nanotcl/pkg/nanotcl"
)

var (
	evalExpr     string
	trace        bool
	maxRecursion int
	maxArgs      int
	buckets      int
)

var runCmd = &cobra.Command{
	Use:   "run [file]",
	Short: "Run a nanotcl script or expression",
	Long: `Execute a nanotcl program from a file or inline expression.

Examples:
  # Run a script file
  nanotcl run script.tcl

  # Evaluate an inline expression
  nanotcl run -e "puts [+ 40 2]"

  # Run with an execution trace
  nanotcl run --trace script.tcl`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScript,
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().StringVarP(&evalExpr, "eval", "e", "", "evaluate inline code instead of reading from file")
	runCmd.Flags().BoolVar(&trace, "trace", false, "trace command dispatch (for debugging)")
	runCmd.Flags().IntVar(&maxRecursion, "max-recursion", 0, "override the procedure recursion limit")
	runCmd.Flags().IntVar(&maxArgs, "max-args", 0, "override the maximum argument vector size")
	runCmd.Flags().IntVar(&buckets, "buckets", 0, "override the command table's bucket count")
}

func runScript(_ *cobra.Command, args []string) error {
	var input string

	switch {
	case evalExpr != "":
		input = evalExpr
	case len(args) == 1:
		content, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("failed to read file %s: %w", args[0], err)
		}
		input = string(content)
	default:
		return fmt.Errorf("either provide a file path or use -e for inline code")
	}

	opts := []nanotcl.Option{
		nanotcl.WithLimits(interp.Limits{MaxRecursion: maxRecursion, MaxArgs: maxArgs, Buckets: buckets}),
	}
	if trace {
		opts = append(opts, nanotcl.WithTrace(func(argv []string, code nanotcl.ReturnCode) {
			fmt.Fprintf(os.Stderr, "[trace] %v -> %s\n", argv, code)
		}))
	}

	e, err := nanotcl.New(opts...)
	if err != nil {
		return err
	}
	defer e.Close()
	if err := hostlib.Register(e.Unwrap(), os.Stdout, os.Stdin); err != nil {
		return fmt.Errorf("failed to register host commands: %w", err)
	}

	code, result, err := e.Eval(input)
	if code != nanotcl.CodeOK {
		if result != "" {
			fmt.Fprintln(os.Stderr, result)
		}
		return err
	}
	return nil
}
