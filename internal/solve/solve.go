// Package solve implements computorv2's equation solver (spec §4.R):
// given a polynomial equation in at most one variable and degree <= 2,
// it reports the degree, the reduced form, and the root(s).
package solve

import (
	"fmt"
	"math"
	"math/cmplx"

	"computorv2/internal/evalerr"
	"computorv2/internal/symbolic"
	"computorv2/internal/value"
)

// Result is the outcome of solving one equation.
type Result struct {
	Var      string
	Degree   int
	Reduced  string   // e.g. "2 * x^2 - 4 = 0"
	Roots    []string // human-readable root descriptions, already formatted
	Infinite bool     // degree 0, 0 = 0: every value of the variable satisfies it
}

// Solve reduces lhs - rhs to a single-variable polynomial and solves
// it for that variable (spec §4.R). lhs and rhs are the two sides of
// the `EXPR1 = EXPR2 ?` query form, already collapsed to PolyExpr/value
// results by the evaluator.
func Solve(lhs, rhs *symbolic.PolyExpr) (*Result, error) {
	diff, err := symbolic.Sub(lhs, rhs)
	if err != nil {
		return nil, err
	}

	varName, a, b, c, ok := symbolic.SingleVarCoeffs(diff)
	if !ok {
		return nil, &evalerr.SolveError{Msg: "cannot solve: equation is not a single-variable polynomial of degree <= 2"}
	}

	degree := degreeOf(a, b)
	res := &Result{Var: varName, Degree: degree, Reduced: reducedString(varName, a, b, c)}

	switch degree {
	case 0:
		if isZero(c) {
			res.Infinite = true
		}
		// degree 0, c != 0: 0 = c has no solution; Roots stays empty.
		return res, nil
	case 1:
		root, err := solveLinear(b, c)
		if err != nil {
			return nil, err
		}
		res.Roots = []string{fmt.Sprintf("%s = %s", varName, root)}
		return res, nil
	case 2:
		roots, err := solveQuadratic(a, b, c)
		if err != nil {
			return nil, err
		}
		for _, r := range roots {
			res.Roots = append(res.Roots, fmt.Sprintf("%s = %s", varName, r))
		}
		return res, nil
	}
	return nil, &evalerr.SolveError{Msg: "polynomial degree exceeds 2: unsupported"}
}

func degreeOf(a, b value.Value) int {
	if !isZero(a) {
		return 2
	}
	if !isZero(b) {
		return 1
	}
	return 0
}

func isZero(v value.Value) bool {
	switch x := v.(type) {
	case *value.Rational:
		return x.IsZero()
	case *value.Complex:
		return x.Re.IsZero() && x.Im.IsZero()
	}
	return false
}

func reducedString(varName string, a, b, c value.Value) string {
	p := symbolic.FromScalar(c)
	if !isZero(b) {
		linear, _ := symbolic.Mul(symbolic.FromScalar(b), symbolic.FromVar(varName))
		p, _ = symbolic.Add(p, linear)
	}
	if !isZero(a) {
		sq, _ := symbolic.Pow(symbolic.FromVar(varName), 2)
		quad, _ := symbolic.Mul(symbolic.FromScalar(a), sq)
		p, _ = symbolic.Add(p, quad)
	}
	return fmt.Sprintf("%s = 0", p.String())
}

// solveLinear solves b*x + c = 0.
func solveLinear(b, c value.Value) (value.Value, error) {
	negC, err := value.Neg(c)
	if err != nil {
		return nil, err
	}
	return value.Div(negC, b)
}

// solveQuadratic solves a*x^2 + b*x + c = 0 via the quadratic formula.
// When every coefficient is real it prefers exact rational roots,
// falling back to a float64-derived rational for an irrational real
// root; a negative discriminant gives a complex conjugate pair, exact
// when |discriminant| is a perfect square and float64-derived
// otherwise. When any coefficient is complex the same formula is
// applied in the complex field, with the principal square root taken
// via the polar form cmplx.Sqrt already implements (spec §4.R).
func solveQuadratic(a, b, c value.Value) ([]value.Value, error) {
	ar, aOK := a.(*value.Rational)
	br, bOK := b.(*value.Rational)
	cr, cOK := c.(*value.Rational)
	if aOK && bOK && cOK {
		return solveQuadraticReal(ar, br, cr)
	}
	return solveQuadraticComplex(a, b, c)
}

func solveQuadraticReal(ar, br, cr *value.Rational) ([]value.Value, error) {
	// discriminant = b^2 - 4ac
	b2 := value.RationalMul(br, br)
	fourAC := value.RationalMul(value.RationalFromInt64(4), value.RationalMul(ar, cr))
	disc := value.RationalAdd(b2, value.RationalNeg(fourAC))

	twoA := value.RationalMul(value.RationalFromInt64(2), ar)
	negB := value.RationalNeg(br)

	if disc.IsZero() {
		root, err := value.RationalDiv(negB, twoA)
		if err != nil {
			return nil, err
		}
		return []value.Value{root}, nil
	}

	if disc.R.Sign() > 0 {
		var sqrtDisc *value.Rational
		if r, ok := disc.PerfectSquareRoot(); ok {
			sqrtDisc = r
		} else {
			sqrtDisc = value.RationalFromFloat64(math.Sqrt(disc.Float64()))
		}
		r1, err := value.RationalDiv(value.RationalAdd(negB, sqrtDisc), twoA)
		if err != nil {
			return nil, err
		}
		r2, err := value.RationalDiv(value.RationalAdd(negB, value.RationalNeg(sqrtDisc)), twoA)
		if err != nil {
			return nil, err
		}
		return []value.Value{r1, r2}, nil
	}

	// Negative discriminant: two complex conjugate roots.
	negDisc := value.RationalNeg(disc)
	var sqrtAbs *value.Rational
	if r, ok := negDisc.PerfectSquareRoot(); ok {
		sqrtAbs = r
	} else {
		sqrtAbs = value.RationalFromFloat64(math.Sqrt(negDisc.Float64()))
	}
	reVal, err := value.RationalDiv(negB, twoA)
	if err != nil {
		return nil, err
	}
	imVal, err := value.RationalDiv(sqrtAbs, twoA)
	if err != nil {
		return nil, err
	}
	r1 := value.NewComplexOrRational(reVal, imVal)
	r2 := value.NewComplexOrRational(reVal, value.RationalNeg(imVal))
	return []value.Value{r1, r2}, nil
}

// solveQuadraticComplex applies the quadratic formula in the complex
// field (spec §4.R): at least one of a, b, c is itself complex, so the
// discriminant and its principal square root are computed via
// math/cmplx rather than exact rational arithmetic.
func solveQuadraticComplex(a, b, c value.Value) ([]value.Value, error) {
	ac := toCmplx(a)
	bc := toCmplx(b)
	cc := toCmplx(c)

	disc := bc*bc - 4*ac*cc
	sqrtDisc := cmplx.Sqrt(disc)
	twoA := 2 * ac

	r1 := (-bc + sqrtDisc) / twoA
	r2 := (-bc - sqrtDisc) / twoA

	v1 := value.NewComplexOrRational(value.RationalFromFloat64(real(r1)), value.RationalFromFloat64(imag(r1)))
	if disc == 0 {
		return []value.Value{v1}, nil
	}
	v2 := value.NewComplexOrRational(value.RationalFromFloat64(real(r2)), value.RationalFromFloat64(imag(r2)))
	return []value.Value{v1, v2}, nil
}

func toCmplx(v value.Value) complex128 {
	switch x := v.(type) {
	case *value.Rational:
		return complex(x.Float64(), 0)
	case *value.Complex:
		return complex(x.Re.Float64(), x.Im.Float64())
	}
	return 0
}
