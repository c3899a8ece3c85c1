// Package eval walks an ast.Expression against an env.Environment,
// producing a value.Value. It merges the spec's "Evaluator" and
// "Simplifier" roles (spec §3, §4.E, §4.Q): any subexpression touching
// a free variable is lifted into symbolic.PolyExpr algebra and
// collapsed back to a scalar only when every variable cancels out.
package eval

import (
	"fmt"

	"computorv2/internal/ast"
	"computorv2/internal/env"
	"computorv2/internal/evalerr"
	"computorv2/internal/symbolic"
	"computorv2/internal/value"
)

// Eval evaluates expr against e, returning a Value, a (possibly
// symbolic) partial result, or an error.
func Eval(expr ast.Expression, e *env.Environment) (value.Value, error) {
	switch n := expr.(type) {
	case *ast.Num:
		return value.NewRational(n.Value), nil

	case *ast.ImagUnit:
		return value.NewComplexOrRational(value.RationalFromInt64(0), value.RationalFromInt64(1)), nil

	case *ast.Var:
		if v, ok := e.Get(n.Name); ok {
			return v, nil
		}
		return symbolic.FromVar(n.Name), nil

	case *ast.MatLit:
		return evalMatLit(n, e)

	case *ast.Unary:
		return evalUnary(n, e)

	case *ast.Binary:
		return evalBinary(n, e)

	case *ast.Call:
		return evalCall(n, e)

	default:
		return nil, &evalerr.ParseError{Col: expr.Pos().Column, Msg: fmt.Sprintf("cannot evaluate node of type %T", expr)}
	}
}

func evalMatLit(n *ast.MatLit, e *env.Environment) (value.Value, error) {
	rows := len(n.Rows)
	cols := 0
	if rows > 0 {
		cols = len(n.Rows[0])
	}
	data := make([]value.Value, 0, rows*cols)
	for _, row := range n.Rows {
		for _, el := range row {
			v, err := Eval(el, e)
			if err != nil {
				return nil, err
			}
			if isSymbolic(v) {
				return nil, &evalerr.TypeError{Col: n.Pos().Column, Msg: "matrix elements must be numeric, not symbolic"}
			}
			data = append(data, v)
		}
	}
	return value.NewMatrix(rows, cols, data), nil
}

func evalUnary(n *ast.Unary, e *env.Environment) (value.Value, error) {
	child, err := Eval(n.Child, e)
	if err != nil {
		return nil, err
	}
	if n.Op == ast.Plus {
		return child, nil
	}
	return applyNeg(child)
}

func applyNeg(v value.Value) (value.Value, error) {
	if p, ok := v.(*symbolic.PolyExpr); ok {
		neg, err := symbolic.Neg(p)
		if err != nil {
			return nil, err
		}
		return symbolic.Collapse(neg), nil
	}
	return value.Neg(v)
}

func isSymbolic(v value.Value) bool {
	_, ok := v.(*symbolic.PolyExpr)
	return ok
}

func evalBinary(n *ast.Binary, e *env.Environment) (value.Value, error) {
	left, err := Eval(n.Left, e)
	if err != nil {
		return nil, err
	}
	right, err := Eval(n.Right, e)
	if err != nil {
		return nil, err
	}

	if isSymbolic(left) || isSymbolic(right) {
		return evalSymbolicBinary(n, left, right)
	}

	switch n.Op {
	case ast.Add:
		return value.Add(left, right)
	case ast.Sub:
		return value.Sub(left, right)
	case ast.Mul:
		return value.Mul(left, right)
	case ast.Div:
		return value.Div(left, right)
	case ast.Mod:
		return value.Mod(left, right)
	case ast.Pow:
		return value.Pow(left, right)
	}
	return nil, &evalerr.ParseError{Col: n.Pos().Column, Msg: "unknown binary operator"}
}

// evalSymbolicBinary handles any binary operation where at least one
// operand is symbolic. Matrices can never carry a symbolic element
// (evalMatLit rejects it at construction), so this only ever combines
// scalars and polynomials (spec §4.Q).
func evalSymbolicBinary(n *ast.Binary, left, right value.Value) (value.Value, error) {
	if _, ok := left.(*value.Matrix); ok {
		return nil, &evalerr.TypeError{Col: n.Pos().Column, Msg: "symbolic expressions cannot combine with matrices"}
	}
	if _, ok := right.(*value.Matrix); ok {
		return nil, &evalerr.TypeError{Col: n.Pos().Column, Msg: "symbolic expressions cannot combine with matrices"}
	}

	lp := toPoly(left)
	rp := toPoly(right)

	switch n.Op {
	case ast.Add:
		p, err := symbolic.Add(lp, rp)
		return collapseOrErr(p, err)
	case ast.Sub:
		p, err := symbolic.Sub(lp, rp)
		return collapseOrErr(p, err)
	case ast.Mul:
		p, err := symbolic.Mul(lp, rp)
		return collapseOrErr(p, err)
	case ast.Div:
		divisor, ok := right.(*symbolic.PolyExpr)
		if ok {
			if c, isConst := divisor.AsConstant(); isConst {
				p, err := symbolic.DivScalar(lp, c)
				return collapseOrErr(p, err)
			}
			return nil, &evalerr.MathError{Col: n.Pos().Column, Msg: "non-scalar division in symbolic context"}
		}
		p, err := symbolic.DivScalar(lp, right)
		return collapseOrErr(p, err)
	case ast.Mod:
		return nil, &evalerr.TypeError{Col: n.Pos().Column, Msg: "'%' requires integer rational operands"}
	case ast.Pow:
		exp, ok := right.(*value.Rational)
		if !ok {
			c, isConst := rp.AsConstant()
			if !isConst {
				return nil, &evalerr.MathError{Col: n.Pos().Column, Msg: "symbolic exponent unsupported"}
			}
			exp, ok = c.(*value.Rational)
			if !ok {
				return nil, &evalerr.MathError{Col: n.Pos().Column, Msg: "symbolic exponent unsupported"}
			}
		}
		if !exp.IsInteger() {
			return nil, &evalerr.TypeError{Col: n.Pos().Column, Msg: "exponent must be a constant integer"}
		}
		p, err := symbolic.Pow(lp, int(exp.R.Num().Int64()))
		return collapseOrErr(p, err)
	}
	return nil, &evalerr.ParseError{Col: n.Pos().Column, Msg: "unknown binary operator"}
}

func toPoly(v value.Value) *symbolic.PolyExpr {
	if p, ok := v.(*symbolic.PolyExpr); ok {
		return p
	}
	return symbolic.FromScalar(v)
}

func collapseOrErr(p *symbolic.PolyExpr, err error) (value.Value, error) {
	if err != nil {
		return nil, err
	}
	return symbolic.Collapse(p), nil
}

func evalCall(n *ast.Call, e *env.Environment) (value.Value, error) {
	if fn, ok := e.Get(n.Name); ok {
		if f, ok := fn.(*value.Function); ok {
			return callUserFunction(n, f, e)
		}
	}
	return callBuiltin(n, e)
}

// callUserFunction binds n's evaluated arguments to f's parameters in
// a fresh child scope and evaluates the stored body. The function is
// late-bound: no closure environment is captured at definition time,
// so free names in the body resolve against the caller's environment
// at call time (spec §4.E / §9).
func callUserFunction(n *ast.Call, f *value.Function, e *env.Environment) (value.Value, error) {
	if len(n.Args) != len(f.Params) {
		return nil, &evalerr.ArityError{Col: n.Pos().Column, Name: n.Name, Want: len(f.Params), Got: len(n.Args)}
	}
	callEnv := e.Snapshot()
	for i, param := range f.Params {
		argVal, err := Eval(n.Args[i], e)
		if err != nil {
			return nil, err
		}
		callEnv.Set(param, argVal)
	}
	return Eval(f.Body, callEnv)
}
