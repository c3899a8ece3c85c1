package value

import (
	"fmt"
	"math/big"

	"computorv2/internal/evalerr"
)

// Complex is re + im*i with exact rational components. The invariant
// that im != 0 (spec §3) is enforced by the constructors below, not by
// this struct — evaluator code should always build complex results
// through NewComplexOrRational so a zero imaginary part collapses back
// to *Rational.
type Complex struct {
	Re, Im *Rational
}

func (*Complex) ValueKind() Kind { return KindComplex }

func (c *Complex) String() string {
	re, im := c.Re.R, c.Im.R
	switch {
	case re.Sign() == 0:
		return imagString(im, true)
	case im.Sign() >= 0:
		return fmt.Sprintf("%s + %s", re.RatString(), imagString(im, false))
	default:
		negIm := new(big.Rat).Neg(im)
		return fmt.Sprintf("%s - %s", re.RatString(), imagString(negIm, false))
	}
}

// imagString renders the imaginary part, eliding a coefficient of 1
// (spec §4.F: "i" prints as "i" not "1i").
func imagString(im *big.Rat, standalone bool) string {
	one := big.NewRat(1, 1)
	negOne := big.NewRat(-1, 1)
	switch {
	case im.Cmp(one) == 0:
		return "i"
	case im.Cmp(negOne) == 0:
		if standalone {
			return "-i"
		}
		return "i" // sign already folded by the caller
	default:
		return im.RatString() + "i"
	}
}

// NewComplexOrRational collapses a zero imaginary part back to a
// plain Rational, preserving the Value invariant from spec §3.
func NewComplexOrRational(re, im *Rational) Value {
	if im.IsZero() {
		return re
	}
	return &Complex{Re: re, Im: im}
}

func ComplexAdd(a, b *Complex) *Complex {
	return &Complex{Re: RationalAdd(a.Re, b.Re), Im: RationalAdd(a.Im, b.Im)}
}

func ComplexSub(a, b *Complex) *Complex {
	return &Complex{Re: RationalSub(a.Re, b.Re), Im: RationalSub(a.Im, b.Im)}
}

// ComplexMul uses the Gauss three-multiply identity (spec §4.V): for
// (a+bi)(c+di), with k1 = c(a+b), k2 = a(d-c), k3 = b(c+d), the product
// is (k1 - k3) + (k1 + k2)i. All arithmetic is exact big.Rat.
func ComplexMul(a, b *Complex) *Complex {
	k1 := RationalMul(b.Re, RationalAdd(a.Re, a.Im))
	k2 := RationalMul(a.Re, RationalSub(b.Im, b.Re))
	k3 := RationalMul(a.Im, RationalAdd(b.Re, b.Im))
	return &Complex{Re: RationalSub(k1, k3), Im: RationalAdd(k1, k2)}
}

// ComplexDiv divides a/b using the conjugate-over-norm identity.
func ComplexDiv(a, b *Complex) (*Complex, error) {
	norm := RationalAdd(RationalMul(b.Re, b.Re), RationalMul(b.Im, b.Im))
	if norm.IsZero() {
		return nil, &evalerr.MathError{Msg: "division by zero"}
	}
	num := ComplexMul(a, &Complex{Re: b.Re, Im: RationalNeg(b.Im)})
	re, _ := RationalDiv(num.Re, norm)
	im, _ := RationalDiv(num.Im, norm)
	return &Complex{Re: re, Im: im}, nil
}

func ComplexNeg(a *Complex) *Complex {
	return &Complex{Re: RationalNeg(a.Re), Im: RationalNeg(a.Im)}
}

// ComplexConj returns the complex conjugate.
func ComplexConj(a *Complex) *Complex {
	return &Complex{Re: a.Re, Im: RationalNeg(a.Im)}
}

// ComplexNormSquared returns re^2 + im^2.
func ComplexNormSquared(a *Complex) *Rational {
	return RationalAdd(RationalMul(a.Re, a.Re), RationalMul(a.Im, a.Im))
}

// ComplexPowInt raises a complex value to a non-negative integer power
// via repeated squaring, or to a negative integer power via
// conjugate-over-norm (spec §4.V).
func ComplexPowInt(a *Complex, n int64) (*Complex, error) {
	if n == 0 {
		return &Complex{Re: RationalFromInt64(1), Im: RationalFromInt64(0)}, nil
	}
	neg := n < 0
	if neg {
		n = -n
	}
	result := &Complex{Re: RationalFromInt64(1), Im: RationalFromInt64(0)}
	base := a
	for n > 0 {
		if n&1 == 1 {
			result = ComplexMul(result, base)
		}
		base = ComplexMul(base, base)
		n >>= 1
	}
	if neg {
		return ComplexDiv(&Complex{Re: RationalFromInt64(1), Im: RationalFromInt64(0)}, result)
	}
	return result, nil
}
