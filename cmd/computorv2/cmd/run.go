package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"computorv2/internal/env"
	"computorv2/internal/errors"
	"computorv2/internal/repl"
	"computorv2/internal/simplify"
)

var (
	evalExpr string
	filePath string
)

// runRootCmd dispatches the root command (spec §4.CLI, §6): a single
// positional argument is the spec's one-shot form and is evaluated as
// one expression; --eval/-e is an equivalent flag form; --file
// batch-evaluates a file of input lines, one per line, as a
// supplemental non-interactive mode; with nothing given it starts the
// interactive REPL.
func runRootCmd(_ *cobra.Command, args []string) error {
	switch {
	case evalExpr != "":
		return runLine(evalExpr)
	case filePath != "":
		return runFile(filePath)
	case len(args) == 1:
		return runLine(args[0])
	default:
		return runRepl()
	}
}

func runLine(line string) error {
	e := env.New()
	result, err := simplify.Line(strings.TrimSpace(line), e)
	if err != nil {
		fmt.Fprintln(os.Stderr, errors.Format(err, line, !noColor))
		return fmt.Errorf("failed to evaluate line")
	}
	fmt.Println(result)
	return nil
}

func runFile(path string) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read file %s: %w", path, err)
	}

	e := env.New()
	scanner := bufio.NewScanner(strings.NewReader(string(content)))
	failed := false
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		result, err := simplify.Line(line, e)
		if err != nil {
			fmt.Fprintln(os.Stderr, errors.Format(err, line, !noColor))
			failed = true
			continue
		}
		fmt.Println(result)
	}
	if err := scanner.Err(); err != nil {
		return err
	}
	if failed {
		return fmt.Errorf("one or more lines failed to evaluate")
	}
	return nil
}

func runRepl() error {
	return repl.Run(repl.Options{
		In:          os.Stdin,
		Out:         os.Stdout,
		ErrOut:      os.Stderr,
		NoColor:     noColor,
		HistoryPath: repl.DefaultHistoryPath(),
	})
}
