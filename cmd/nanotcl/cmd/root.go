// Package cmd implements the nanotcl CLI's cobra command tree, grounded
// on go-dws/cmd/dwscript/cmd's layout: a rootCmd carrying shared
// persistent flags and version metadata, with subcommands each in their
// own file that registers itself via init().
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	// Version information (set by build flags), mirroring
	// go-dws/cmd/dwscript/cmd/root.go's ldflags-injected variables.
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "nanotcl",
	Short: "nanotcl command interpreter",
	Long: `nanotcl is an embeddable, command-oriented interpreter in the
style of a small Tcl: a tokenizer, a recursive evaluator, a linked
variable environment with call frames and link variables, and a compact
built-in command set (control flow, arithmetic, string and list
manipulation, introspection).`,
	Version: Version,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf(`{{with .Name}}{{printf "%%s " .}}{{end}}{{printf "version %%s" .Version}}
Commit: %s
Built:  %s
`, GitCommit, BuildDate))

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
