package builtins

import (
	"testing"

	"computorv2/internal/value"
)

func r(n int64) value.Value { return value.RationalFromInt64(n) }

func TestSqrtPerfectSquare(t *testing.T) {
	got, err := Call("sqrt", []value.Value{r(16)})
	if err != nil {
		t.Fatal(err)
	}
	if got.String() != "4" {
		t.Errorf("got %s, want 4", got.String())
	}
}

func TestSqrtNegativeReturnsComplex(t *testing.T) {
	got, err := Call("sqrt", []value.Value{r(-4)})
	if err != nil {
		t.Fatal(err)
	}
	if got.String() != "2i" {
		t.Errorf("got %s, want 2i", got.String())
	}
}

func TestAbsOnNegativeRational(t *testing.T) {
	got, err := Call("abs", []value.Value{r(-7)})
	if err != nil {
		t.Fatal(err)
	}
	if got.String() != "7" {
		t.Errorf("got %s, want 7", got.String())
	}
}

func TestUnknownBuiltinIsNameError(t *testing.T) {
	if _, err := Call("frobnicate", []value.Value{r(1)}); err == nil {
		t.Fatal("expected a NameError for an unregistered builtin")
	}
}

func TestArityMismatch(t *testing.T) {
	if _, err := Call("sqrt", []value.Value{r(1), r(2)}); err == nil {
		t.Fatal("expected an ArityError")
	}
}

func TestDetAndInv(t *testing.T) {
	m := value.NewMatrix(2, 2, []value.Value{r(1), r(2), r(3), r(4)})
	det, err := Call("det", []value.Value{m})
	if err != nil {
		t.Fatal(err)
	}
	if det.String() != "-2" {
		t.Errorf("det got %s, want -2", det.String())
	}

	inv, err := Call("inv", []value.Value{m})
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := inv.(*value.Matrix); !ok {
		t.Fatalf("inv did not return a matrix: %T", inv)
	}
}

func TestLogNonPositiveIsMathError(t *testing.T) {
	if _, err := Call("log", []value.Value{r(0)}); err == nil {
		t.Fatal("expected a MathError for log(0)")
	}
}
