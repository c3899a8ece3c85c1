package value

import (
	"math/big"
	"testing"
)

func rat(n, d int64) *Rational { return NewRational(big.NewRat(n, d)) }

func TestRationalArithmetic(t *testing.T) {
	a, b := rat(1, 2), rat(1, 3)

	if got := RationalAdd(a, b).String(); got != "5/6" {
		t.Errorf("Add: got %s, want 5/6", got)
	}
	if got := RationalMul(a, b).String(); got != "1/6" {
		t.Errorf("Mul: got %s, want 1/6", got)
	}
	if got, err := RationalDiv(a, b); err != nil || got.String() != "3/2" {
		t.Errorf("Div: got %v, %v, want 3/2", got, err)
	}
}

func TestRationalDivByZero(t *testing.T) {
	_, err := RationalDiv(rat(1, 1), rat(0, 1))
	if err == nil {
		t.Fatal("expected division-by-zero error")
	}
}

func TestRationalMod(t *testing.T) {
	got, err := RationalMod(rat(-7, 1), rat(3, 1))
	if err != nil {
		t.Fatal(err)
	}
	if got.String() != "2" {
		t.Errorf("Mod(-7,3): got %s, want 2 (Euclidean)", got.String())
	}

	if _, err := RationalMod(rat(1, 2), rat(3, 1)); err == nil {
		t.Fatal("expected TypeError for non-integer operand")
	}
}

func TestRationalPowInt(t *testing.T) {
	got, err := RationalPowInt(rat(2, 1), 10)
	if err != nil || got.String() != "1024" {
		t.Errorf("2^10: got %v, %v, want 1024", got, err)
	}

	got, err = RationalPowInt(rat(2, 1), -1)
	if err != nil || got.String() != "1/2" {
		t.Errorf("2^-1: got %v, %v, want 1/2", got, err)
	}

	if _, err := RationalPowInt(rat(0, 1), -1); err == nil {
		t.Fatal("expected error for 0^-1")
	}
}

func TestPerfectSquareRoot(t *testing.T) {
	if r, ok := rat(9, 4).PerfectSquareRoot(); !ok || r.String() != "3/2" {
		t.Errorf("sqrt(9/4): got %v, %v, want 3/2", r, ok)
	}
	if _, ok := rat(2, 1).PerfectSquareRoot(); ok {
		t.Error("sqrt(2) should not be a perfect square")
	}
	if _, ok := rat(-4, 1).PerfectSquareRoot(); ok {
		t.Error("sqrt(-4) should not have a real perfect-square root")
	}
}
