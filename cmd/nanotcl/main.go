// Command nanotcl is the CLI front end for the nanotcl interpreter,
// grounded on go-dws/cmd/dwscript's main package (a thin wrapper around
// cmd.Execute()).
package main

import (
	"fmt"
	"os"

	"github.com/nanotcl/nanotcl/cmd/nanotcl/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
