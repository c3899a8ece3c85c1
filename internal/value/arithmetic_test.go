package value

import "testing"

func TestAddMixedRationalComplex(t *testing.T) {
	got, err := Add(rat(1, 1), &Complex{Re: rat(2, 1), Im: rat(3, 1)})
	if err != nil {
		t.Fatal(err)
	}
	if got.String() != "3 + 3i" {
		t.Errorf("got %s, want 3 + 3i", got.String())
	}
}

func TestMulMatrixScalarBroadcast(t *testing.T) {
	m := mat2(1, 2, 3, 4)
	got, err := Mul(rat(2, 1), m)
	if err != nil {
		t.Fatal(err)
	}
	if got.(*Matrix).Data[0].String() != "2" {
		t.Errorf("broadcast mul failed: %v", got)
	}
}

func TestMulMatrixByMatrixIsElementwise(t *testing.T) {
	a := mat2(1, 2, 3, 4)
	got, err := Mul(a, a)
	if err != nil {
		t.Fatal(err)
	}
	if got.(*Matrix).Data[3].String() != "16" {
		t.Errorf("'*' between matrices should be elementwise, got %v", got)
	}
}

func TestPowMatrixByMatrixIsProduct(t *testing.T) {
	a := mat2(1, 2, 3, 4)
	got, err := Pow(a, a)
	if err != nil {
		t.Fatal(err)
	}
	if got.(*Matrix).Data[0].String() != "7" {
		t.Errorf("'^' between matrices should be the true product, got %v", got)
	}
}

func TestPowMatrixByScalarIsTypeError(t *testing.T) {
	a := mat2(1, 2, 3, 4)
	if _, err := Pow(a, rat(2, 1)); err == nil {
		t.Fatal("expected type error for matrix^scalar")
	}
}

func TestModRequiresIntegers(t *testing.T) {
	if _, err := Mod(rat(1, 2), rat(1, 1)); err == nil {
		t.Fatal("expected type error for non-integer '%' operand")
	}
	got, err := Mod(rat(7, 1), rat(3, 1))
	if err != nil || got.String() != "1" {
		t.Errorf("got %v, %v, want 1", got, err)
	}
}

func TestNegMatrix(t *testing.T) {
	m := mat2(1, 2, 3, 4)
	got, err := Neg(m)
	if err != nil {
		t.Fatal(err)
	}
	if got.(*Matrix).Data[0].String() != "-1" {
		t.Errorf("got %v", got)
	}
}
