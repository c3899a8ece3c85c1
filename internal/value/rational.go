package value

import (
	"math/big"

	"computorv2/internal/evalerr"
)

// Rational is an exact p/q value, always stored reduced with a
// positive denominator via math/big.Rat's own invariant (spec §3).
//
// math/big is the one standard-library dependency in this value tower;
// see DESIGN.md for why no pack library covers arbitrary-precision
// exact fractions.
type Rational struct {
	R *big.Rat
}

func (*Rational) ValueKind() Kind { return KindRational }

func (r *Rational) String() string {
	return r.R.RatString()
}

// NewRational wraps an already-constructed *big.Rat.
func NewRational(r *big.Rat) *Rational { return &Rational{R: r} }

// RationalFromInt64 builds an integer Rational.
func RationalFromInt64(n int64) *Rational {
	return &Rational{R: big.NewRat(n, 1)}
}

// IsZero reports whether the rational is exactly zero.
func (r *Rational) IsZero() bool { return r.R.Sign() == 0 }

// IsInteger reports whether the rational has denominator 1.
func (r *Rational) IsInteger() bool { return r.R.IsInt() }

// RationalAdd, RationalSub, RationalMul divide are exact big.Rat ops.
func RationalAdd(a, b *Rational) *Rational { return NewRational(new(big.Rat).Add(a.R, b.R)) }
func RationalSub(a, b *Rational) *Rational { return NewRational(new(big.Rat).Sub(a.R, b.R)) }
func RationalMul(a, b *Rational) *Rational { return NewRational(new(big.Rat).Mul(a.R, b.R)) }

// RationalDiv divides a by b; division by zero is a MathError.
func RationalDiv(a, b *Rational) (*Rational, error) {
	if b.IsZero() {
		return nil, &evalerr.MathError{Msg: "division by zero"}
	}
	return NewRational(new(big.Rat).Quo(a.R, b.R)), nil
}

// RationalNeg negates a rational.
func RationalNeg(a *Rational) *Rational { return NewRational(new(big.Rat).Neg(a.R)) }

// RationalMod is Euclidean remainder, defined only for integer
// rationals (spec §4.P: "% is Euclidean remainder on integers only").
func RationalMod(a, b *Rational) (*Rational, error) {
	if !a.IsInteger() || !b.IsInteger() {
		return nil, &evalerr.TypeError{Msg: "% requires integer operands"}
	}
	if b.IsZero() {
		return nil, &evalerr.MathError{Msg: "division by zero"}
	}
	ai := a.R.Num()
	bi := new(big.Int).Abs(b.R.Num())
	m := new(big.Int).Mod(ai, bi) // big.Int.Mod is already Euclidean (result in [0, |b|))
	return NewRational(new(big.Rat).SetInt(m)), nil
}

// RationalPowInt raises a to an integer power n (may be negative,
// inverting the base; may be zero, returning 1) using fast
// exponentiation (spec §4.V).
func RationalPowInt(a *Rational, n int64) (*Rational, error) {
	if n == 0 {
		return RationalFromInt64(1), nil
	}
	neg := n < 0
	if neg {
		n = -n
	}
	if a.IsZero() && neg {
		return nil, &evalerr.MathError{Msg: "division by zero"}
	}
	result := big.NewRat(1, 1)
	base := new(big.Rat).Set(a.R)
	for n > 0 {
		if n&1 == 1 {
			result.Mul(result, base)
		}
		base.Mul(base, base)
		n >>= 1
	}
	if neg {
		result.Inv(result)
	}
	return NewRational(result), nil
}

// PerfectSquareRoot returns the exact rational square root of r when
// both its (already-reduced) numerator and denominator are perfect
// squares, and ok=true. Negative r never has a real root (ok=false).
func (r *Rational) PerfectSquareRoot() (*Rational, bool) {
	if r.R.Sign() < 0 {
		return nil, false
	}
	num, okN := isqrt(r.R.Num())
	den, okD := isqrt(r.R.Denom())
	if !okN || !okD {
		return nil, false
	}
	return NewRational(new(big.Rat).SetFrac(num, den)), true
}

// isqrt returns the exact integer square root of n and whether n is a
// perfect square.
func isqrt(n *big.Int) (*big.Int, bool) {
	if n.Sign() < 0 {
		return nil, false
	}
	root := new(big.Int).Sqrt(n)
	check := new(big.Int).Mul(root, root)
	if check.Cmp(n) != 0 {
		return nil, false
	}
	return root, true
}

// Float64 converts to a float64 approximation, used by builtins that
// explicitly promote to the floating branch (spec §4.V) and by the
// solver's irrational-root fallback.
func (r *Rational) Float64() float64 {
	f, _ := r.R.Float64()
	return f
}

// RationalFromFloat64 converts a float64 into its exact big.Rat
// representation, used to carry decimal-approximation results (e.g.
// irrational square roots) back into the exact value tower for
// formatting (spec §9: "printing canonical decimal ... forms").
func RationalFromFloat64(f float64) *Rational {
	r := new(big.Rat)
	r.SetFloat64(f)
	return NewRational(r)
}
