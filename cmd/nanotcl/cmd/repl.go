package cmd

import (
	"bufio"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/nanotcl/nanotcl/internal/hostlib"
	"github.com/nanotcl/nanotcl/pkg/nanotcl"
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Start an interactive nanotcl session",
	Long:  `Read commands from standard input, evaluate each, and print the result.`,
	Args:  cobra.NoArgs,
	RunE:  runRepl,
}

func init() {
	rootCmd.AddCommand(replCmd)
}

func runRepl(_ *cobra.Command, _ []string) error {
	e, err := nanotcl.New()
	if err != nil {
		return err
	}
	defer e.Close()
	if err := hostlib.Register(e.Unwrap(), os.Stdout, os.Stdin); err != nil {
		return fmt.Errorf("failed to register host commands: %w", err)
	}

	scanner := bufio.NewScanner(os.Stdin)
	fmt.Fprint(os.Stderr, "% ")
	for scanner.Scan() {
		code, result, err := e.Eval(scanner.Text())
		if code != nanotcl.CodeOK {
			fmt.Fprintf(os.Stderr, "%s\n", err)
		} else if result != "" {
			fmt.Println(result)
		}
		fmt.Fprint(os.Stderr, "% ")
	}
	return scanner.Err()
}
