package value

import "computorv2/internal/evalerr"

// This file is the "dispatch table keyed on (op, left_kind, right_kind)"
// called for in the design notes: Add/Sub/Mul/Div/Mod/Pow/Neg each
// switch on the concrete Go types of their operands. It only ever sees
// Rational, Complex, and Matrix operands — the eval package is
// responsible for lifting a Symbolic operand into polynomial algebra
// before it ever reaches here (spec §4.E).

func typeErr(msg string) error { return &evalerr.TypeError{Msg: msg} }

// Add implements "+" across the numeric/matrix tower.
func Add(a, b Value) (Value, error) {
	switch x := a.(type) {
	case *Rational:
		switch y := b.(type) {
		case *Rational:
			return RationalAdd(x, y), nil
		case *Complex:
			return NewComplexOrRational(RationalAdd(x, y.Re), y.Im), nil
		}
	case *Complex:
		switch y := b.(type) {
		case *Rational:
			return NewComplexOrRational(RationalAdd(x.Re, y), x.Im), nil
		case *Complex:
			return NewComplexOrRational(RationalAdd(x.Re, y.Re), RationalAdd(x.Im, y.Im)), nil
		}
	case *Matrix:
		if y, ok := b.(*Matrix); ok {
			m, err := MatrixAdd(x, y)
			if err != nil {
				return nil, err
			}
			return m, nil
		}
	}
	return nil, typeErr("'+' not defined for these operand kinds")
}

// Sub implements "-".
func Sub(a, b Value) (Value, error) {
	negB, err := Neg(b)
	if err != nil {
		return nil, err
	}
	return Add(a, negB)
}

// Mul implements "*": scalar*scalar, scalar*matrix broadcast, and
// matrix*matrix elementwise (spec §4.V — the true matrix product,
// MatrixProduct, is reached through Pow for "^"/"**" between two
// matrices).
func Mul(a, b Value) (Value, error) {
	switch x := a.(type) {
	case *Rational:
		switch y := b.(type) {
		case *Rational:
			return RationalMul(x, y), nil
		case *Complex:
			return NewComplexOrRational(RationalMul(x, y.Re), RationalMul(x, y.Im)), nil
		case *Matrix:
			return MatrixScalarMul(y, x)
		}
	case *Complex:
		switch y := b.(type) {
		case *Rational:
			return NewComplexOrRational(RationalMul(x.Re, y), RationalMul(x.Im, y)), nil
		case *Complex:
			c := ComplexMul(x, y)
			return NewComplexOrRational(c.Re, c.Im), nil
		case *Matrix:
			return MatrixScalarMul(y, x)
		}
	case *Matrix:
		switch y := b.(type) {
		case *Rational, *Complex:
			return MatrixScalarMul(x, y)
		case *Matrix:
			return MatrixMulElementwise(x, y)
		}
	}
	return nil, typeErr("'*' not defined for these operand kinds")
}

// Div implements "/": scalar division exactly; matrix division is
// never defined (spec §9 Open Question).
func Div(a, b Value) (Value, error) {
	switch x := a.(type) {
	case *Rational:
		switch y := b.(type) {
		case *Rational:
			return RationalDiv(x, y)
		case *Complex:
			return complexDivMixed(&Complex{Re: x, Im: RationalFromInt64(0)}, y)
		}
	case *Complex:
		switch y := b.(type) {
		case *Rational:
			re, err := RationalDiv(x.Re, y)
			if err != nil {
				return nil, err
			}
			im, err := RationalDiv(x.Im, y)
			if err != nil {
				return nil, err
			}
			return NewComplexOrRational(re, im), nil
		case *Complex:
			return complexDivMixed(x, y)
		}
	}
	return nil, typeErr("'/' not defined for these operand kinds")
}

func complexDivMixed(a, b *Complex) (Value, error) {
	c, err := ComplexDiv(a, b)
	if err != nil {
		return nil, err
	}
	return NewComplexOrRational(c.Re, c.Im), nil
}

// Mod implements "%": Euclidean remainder on integer rationals only.
func Mod(a, b Value) (Value, error) {
	x, ok1 := a.(*Rational)
	y, ok2 := b.(*Rational)
	if !ok1 || !ok2 {
		return nil, typeErr("'%' requires integer rational operands")
	}
	return RationalMod(x, y)
}

// Pow implements "^"/"**": exponentiation of a scalar base by an
// integer exponent, or the true matrix product when both operands are
// matrices; a matrix raised to a scalar, or a non-integer exponent, is
// a TypeError (reconciling spec §4.L, which lexes both operators to a
// single Pow token, with §4.D's separate MatMul tag — MatMul is simply
// what Pow evaluates to when both operands are matrices).
func Pow(base, exp Value) (Value, error) {
	if bm, ok := base.(*Matrix); ok {
		if em, ok := exp.(*Matrix); ok {
			return MatrixProduct(bm, em)
		}
		return nil, typeErr("matrix exponent must be another matrix (matrix product)")
	}
	n, ok := exp.(*Rational)
	if !ok || !n.IsInteger() {
		return nil, typeErr("exponent must reduce to an integer scalar")
	}
	exponent := n.R.Num().Int64()
	switch b := base.(type) {
	case *Rational:
		return RationalPowInt(b, exponent)
	case *Complex:
		c, err := ComplexPowInt(b, exponent)
		if err != nil {
			return nil, err
		}
		return NewComplexOrRational(c.Re, c.Im), nil
	}
	return nil, typeErr("'^' not defined for these operand kinds")
}

// Neg implements unary "-".
func Neg(a Value) (Value, error) {
	switch x := a.(type) {
	case *Rational:
		return RationalNeg(x), nil
	case *Complex:
		c := ComplexNeg(x)
		return NewComplexOrRational(c.Re, c.Im), nil
	case *Matrix:
		data := make([]Value, len(x.Data))
		for i, v := range x.Data {
			neg, err := Neg(v)
			if err != nil {
				return nil, err
			}
			data[i] = neg
		}
		return NewMatrix(x.Rows, x.Cols, data), nil
	}
	return nil, typeErr("unary '-' not defined for this operand kind")
}
