package symbolic

import (
	"testing"

	"computorv2/internal/value"
)

func r(n int64) value.Value { return value.RationalFromInt64(n) }

func TestFromVarAndString(t *testing.T) {
	x := FromVar("x")
	if got := x.String(); got != "x" {
		t.Errorf("FromVar(x).String() = %q, want x", got)
	}
}

func TestAddMulDistribute(t *testing.T) {
	// (x + 1) * (x - 1) = x^2 - 1
	x := FromVar("x")
	one := FromScalar(r(1))

	xPlus1, err := Add(x, one)
	if err != nil {
		t.Fatal(err)
	}
	negOne, err := Neg(one)
	if err != nil {
		t.Fatal(err)
	}
	xMinus1, err := Add(x, negOne)
	if err != nil {
		t.Fatal(err)
	}
	got, err := Mul(xPlus1, xMinus1)
	if err != nil {
		t.Fatal(err)
	}
	want := "x^2 - 1"
	if got.String() != want {
		t.Errorf("got %q, want %q", got.String(), want)
	}
}

func TestPowAndCollapse(t *testing.T) {
	x := FromVar("x")
	sq, err := Pow(x, 2)
	if err != nil {
		t.Fatal(err)
	}
	if sq.String() != "x^2" {
		t.Errorf("x^2 -> %q", sq.String())
	}

	zero, err := Sub(x, x)
	if err != nil {
		t.Fatal(err)
	}
	c := Collapse(zero)
	if _, ok := c.(*value.Rational); !ok {
		t.Fatalf("x - x should collapse to a scalar, got %T", c)
	}
	if c.String() != "0" {
		t.Errorf("x - x = %s, want 0", c.String())
	}
}

func TestSingleVarCoeffs(t *testing.T) {
	// 2x^2 + 3x + 4
	x := FromVar("x")
	sq, _ := Pow(x, 2)
	quad, _ := Mul(FromScalar(r(2)), sq)
	lin, _ := Mul(FromScalar(r(3)), x)
	sum, _ := Add(quad, lin)
	sum, _ = Add(sum, FromScalar(r(4)))

	name, a, b, c, ok := SingleVarCoeffs(sum)
	if !ok {
		t.Fatal("expected ok=true for a single-variable quadratic")
	}
	if name != "x" || a.String() != "2" || b.String() != "3" || c.String() != "4" {
		t.Errorf("got var=%s a=%s b=%s c=%s", name, a.String(), b.String(), c.String())
	}
}

func TestSingleVarCoeffsMultiVariableNotOk(t *testing.T) {
	xy, err := Mul(FromVar("x"), FromVar("y"))
	if err != nil {
		t.Fatal(err)
	}
	if _, _, _, _, ok := SingleVarCoeffs(xy); ok {
		t.Fatal("expected ok=false for a two-variable polynomial")
	}
}
