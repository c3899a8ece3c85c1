package format

import (
	"strings"
	"testing"

	"computorv2/internal/solve"
)

func TestSolveNoSolution(t *testing.T) {
	out := Solve(&solve.Result{Var: "x", Degree: 0, Reduced: "5 = 0"})
	if !strings.Contains(out, "No solution.") {
		t.Errorf("got %q", out)
	}
}

func TestSolveInfiniteSolutions(t *testing.T) {
	out := Solve(&solve.Result{Var: "x", Degree: 0, Reduced: "0 = 0", Infinite: true})
	if !strings.Contains(out, "All real numbers are solutions.") {
		t.Errorf("got %q", out)
	}
}

func TestSolveRootsListed(t *testing.T) {
	out := Solve(&solve.Result{
		Var: "x", Degree: 2, Reduced: "x^2 - 4 = 0",
		Roots: []string{"x = 2", "x = -2"},
	})
	if !strings.Contains(out, "x = 2") || !strings.Contains(out, "x = -2") {
		t.Errorf("got %q", out)
	}
	if !strings.Contains(out, "Polynomial degree: 2") {
		t.Errorf("got %q", out)
	}
}
