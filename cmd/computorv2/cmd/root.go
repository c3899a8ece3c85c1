// Package cmd wires the cobra command tree for the computorv2 binary,
// grounded on the teacher's cmd/dwscript/cmd package layout: a root
// command carrying persistent flags and version metadata, with
// behavior delegated to a handful of small files.
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	// Version information (set by build flags).
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

var noColor bool

var rootCmd = &cobra.Command{
	Use:   "computorv2 [EXPR]",
	Short: "An interactive rational, complex, matrix, and polynomial calculator",
	Long: `computorv2 evaluates expressions over exact rationals, complex
numbers, and matrices, simplifies polynomial expressions in a free
variable, and solves equations up to degree 2.

Run with no arguments to start an interactive REPL. Pass a single
expression as the positional argument to evaluate it and exit (spec
§6's one-shot form). Use --file to batch-evaluate a file of input
lines instead, one per line.`,
	Version:      Version,
	Args:         cobra.MaximumNArgs(1),
	RunE:         runRootCmd,
	SilenceUsage: true,
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

	rootCmd.Flags().StringVarP(&evalExpr, "eval", "e", "", "evaluate a single inline expression instead of reading the positional argument or starting the REPL")
	rootCmd.Flags().StringVar(&filePath, "file", "", "batch-evaluate a file of input lines instead of starting the REPL")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")
}
