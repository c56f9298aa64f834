package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/nanotcl/nanotcl/internal/lexer"
	"github.com/nanotcl/nanotcl/internal/token"
)

var checkCmd = &cobra.Command{
	Use:   "check [file]",
	Short: "Parse-only check of a nanotcl script",
	Long:  `Tokenize a script and report the first parse error without executing it.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func runCheck(_ *cobra.Command, args []string) error {
	content, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to read file %s: %w", args[0], err)
	}

	lx := lexer.New(string(content))
	for {
		tok, err := lx.Next()
		if err != nil {
			return fmt.Errorf("%s: %w", args[0], err)
		}
		if tok.Type == token.EOF {
			break
		}
	}

	fmt.Printf("%s: ok\n", args[0])
	return nil
}
