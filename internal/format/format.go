// Package format renders evaluation and solver outcomes into the
// human-readable lines the REPL and CLI print (spec §4.F, §6).
package format

import (
	"strconv"
	"strings"

	"computorv2/internal/solve"
	"computorv2/internal/value"
)

// Value renders a computed Value exactly as its own String method
// does; this wrapper exists so callers have one place to adjust
// top-level display formatting without reaching into internal/value.
func Value(v value.Value) string {
	return v.String()
}

// Solve renders a solve.Result as the REPL's multi-line equation
// report (spec §4.R): the reduced form, the degree, and each root on
// its own line.
func Solve(r *solve.Result) string {
	var sb strings.Builder
	sb.WriteString("Reduced form: ")
	sb.WriteString(r.Reduced)
	sb.WriteString("\n")

	switch {
	case r.Infinite:
		sb.WriteString("Polynomial degree: 0\nAll real numbers are solutions.")
	case r.Degree == 0:
		sb.WriteString("Polynomial degree: 0\nNo solution.")
	case len(r.Roots) == 0:
		sb.WriteString("Polynomial degree: ")
		sb.WriteString(strconv.Itoa(r.Degree))
		sb.WriteString("\nNo solution.")
	default:
		sb.WriteString("Polynomial degree: ")
		sb.WriteString(strconv.Itoa(r.Degree))
		for _, root := range r.Roots {
			sb.WriteString("\n")
			sb.WriteString(root)
		}
	}
	return sb.String()
}
