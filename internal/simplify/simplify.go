// Package simplify is the top-level facade spec §4.Q calls the
// "Simplifier": given one raw input line, it parses and evaluates it
// and returns the line the REPL/CLI should print. It exists as its own
// package, distinct from internal/eval, so callers depend on a single
// narrow entry point rather than reaching into the parser and
// evaluator packages directly.
package simplify

import (
	"computorv2/internal/env"
	"computorv2/internal/eval"
	"computorv2/internal/parser"
)

// Line parses and evaluates one input line against e, returning the
// text to display or an error to report.
func Line(input string, e *env.Environment) (string, error) {
	stmt, err := parser.ParseLine(input)
	if err != nil {
		return "", err
	}
	return eval.ExecLine(stmt, e)
}
