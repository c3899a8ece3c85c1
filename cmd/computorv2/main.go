// Command computorv2 is the CLI entry point: see internal/repl for the
// interactive loop and cmd/computorv2/cmd for flag/subcommand wiring.
package main

import (
	"fmt"
	"os"

	"computorv2/cmd/computorv2/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
