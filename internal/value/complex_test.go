package value

import "testing"

func TestComplexString(t *testing.T) {
	cases := []struct {
		re, im int64
		want   string
	}{
		{3, -2, "3 - 2i"},
		{0, 1, "i"},
		{0, -1, "-i"},
		{0, 5, "5i"},
		{2, 3, "2 + 3i"},
	}
	for _, c := range cases {
		v := &Complex{Re: rat(c.re, 1), Im: rat(c.im, 1)}
		if got := v.String(); got != c.want {
			t.Errorf("Complex{%d,%d}.String() = %q, want %q", c.re, c.im, got, c.want)
		}
	}
}

func TestNewComplexOrRationalCollapses(t *testing.T) {
	v := NewComplexOrRational(rat(4, 1), rat(0, 1))
	if _, ok := v.(*Rational); !ok {
		t.Fatalf("expected zero imaginary part to collapse to *Rational, got %T", v)
	}
}

func TestComplexMulAndDiv(t *testing.T) {
	a := &Complex{Re: rat(1, 1), Im: rat(2, 1)}
	b := &Complex{Re: rat(3, 1), Im: rat(-1, 1)}

	prod := ComplexMul(a, b) // (1+2i)(3-i) = 3 - i + 6i - 2i^2 = 5 + 5i
	if prod.Re.String() != "5" || prod.Im.String() != "5" {
		t.Errorf("ComplexMul: got %s + %si", prod.Re, prod.Im)
	}

	quot, err := ComplexDiv(prod, b)
	if err != nil {
		t.Fatal(err)
	}
	if quot.Re.String() != "1" || quot.Im.String() != "2" {
		t.Errorf("ComplexDiv round trip: got %s + %si, want 1 + 2i", quot.Re, quot.Im)
	}
}

func TestComplexDivByZero(t *testing.T) {
	zero := &Complex{Re: rat(0, 1), Im: rat(0, 1)}
	if _, err := ComplexDiv(&Complex{Re: rat(1, 1), Im: rat(0, 1)}, zero); err == nil {
		t.Fatal("expected division-by-zero error")
	}
}
