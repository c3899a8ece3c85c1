// Package builtins implements the fixed set of named functions callable
// from computorv2 source (spec §4.B): sqrt, abs, sin, cos, tan, exp,
// log, det, inv. Transcendental functions promote their rational
// argument to float64 for the underlying math call and convert the
// result back to an exact big.Rat approximation (spec §9's
// irrational-result resolution), the same float64 bridge sqrtFn uses
// when its argument is not a perfect square.
package builtins

import (
	"fmt"
	"math"
	"math/cmplx"

	"computorv2/internal/evalerr"
	"computorv2/internal/value"
)

type fn struct {
	arity int
	call  func(args []value.Value) (value.Value, error)
}

var registry = map[string]fn{
	"sqrt": {1, sqrtFn},
	"abs":  {1, absFn},
	"sin":  {1, unaryFloat(math.Sin)},
	"cos":  {1, unaryFloat(math.Cos)},
	"tan":  {1, unaryFloat(math.Tan)},
	"exp":  {1, unaryFloat(math.Exp)},
	"log":  {1, logFn},
	"det":  {1, detFn},
	"inv":  {1, invFn},
}

// Names returns the registered builtin names, for REPL help/completion.
func Names() []string {
	out := make([]string, 0, len(registry))
	for name := range registry {
		out = append(out, name)
	}
	return out
}

// Call dispatches a builtin invocation by name with already-evaluated
// arguments.
func Call(name string, args []value.Value) (value.Value, error) {
	f, ok := registry[name]
	if !ok {
		return nil, &evalerr.NameError{Name: name}
	}
	if len(args) != f.arity {
		return nil, &evalerr.ArityError{Name: name, Want: f.arity, Got: len(args)}
	}
	return f.call(args)
}

func requireScalarFloat(v value.Value) (float64, error) {
	switch x := v.(type) {
	case *value.Rational:
		return x.Float64(), nil
	case *value.Complex:
		return 0, &evalerr.TypeError{Msg: "expected a real scalar, got a complex value"}
	default:
		return 0, &evalerr.TypeError{Msg: fmt.Sprintf("expected a real scalar, got %s", v.ValueKind())}
	}
}

func unaryFloat(f func(float64) float64) func([]value.Value) (value.Value, error) {
	return func(args []value.Value) (value.Value, error) {
		x, err := requireScalarFloat(args[0])
		if err != nil {
			return nil, err
		}
		return value.RationalFromFloat64(f(x)), nil
	}
}

// sqrtFn returns the exact rational square root when the argument is a
// perfect square of rationals, otherwise the nearest float64
// approximation as a big.Rat, or a principal complex square root for a
// negative real or complex argument (spec §4.B).
func sqrtFn(args []value.Value) (value.Value, error) {
	switch x := args[0].(type) {
	case *value.Rational:
		if x.R.Sign() >= 0 {
			if r, ok := x.PerfectSquareRoot(); ok {
				return r, nil
			}
			return value.RationalFromFloat64(math.Sqrt(x.Float64())), nil
		}
		im := value.RationalFromFloat64(math.Sqrt(-x.Float64()))
		return value.NewComplexOrRational(value.RationalFromInt64(0), im), nil
	case *value.Complex:
		c := cmplx.Sqrt(complex(x.Re.Float64(), x.Im.Float64()))
		return value.NewComplexOrRational(value.RationalFromFloat64(real(c)), value.RationalFromFloat64(imag(c))), nil
	}
	return nil, &evalerr.TypeError{Msg: fmt.Sprintf("sqrt undefined for %s", args[0].ValueKind())}
}

func absFn(args []value.Value) (value.Value, error) {
	switch x := args[0].(type) {
	case *value.Rational:
		if x.R.Sign() < 0 {
			return value.RationalNeg(x), nil
		}
		return x, nil
	case *value.Complex:
		return value.RationalFromFloat64(math.Sqrt(value.ComplexNormSquared(x).Float64())), nil
	}
	return nil, &evalerr.TypeError{Msg: fmt.Sprintf("abs undefined for %s", args[0].ValueKind())}
}

// logFn is the principal-branch natural logarithm (spec §4.B): a real
// argument must be strictly positive, a complex argument must be
// non-zero.
func logFn(args []value.Value) (value.Value, error) {
	switch x := args[0].(type) {
	case *value.Rational:
		f := x.Float64()
		if f <= 0 {
			return nil, &evalerr.MathError{Msg: "log undefined for non-positive argument"}
		}
		return value.RationalFromFloat64(math.Log(f)), nil
	case *value.Complex:
		if x.Re.IsZero() && x.Im.IsZero() {
			return nil, &evalerr.MathError{Msg: "log undefined for zero"}
		}
		c := cmplx.Log(complex(x.Re.Float64(), x.Im.Float64()))
		return value.NewComplexOrRational(value.RationalFromFloat64(real(c)), value.RationalFromFloat64(imag(c))), nil
	}
	return nil, &evalerr.TypeError{Msg: fmt.Sprintf("log undefined for %s", args[0].ValueKind())}
}

func detFn(args []value.Value) (value.Value, error) {
	m, ok := args[0].(*value.Matrix)
	if !ok {
		return nil, &evalerr.TypeError{Msg: "det expects a matrix argument"}
	}
	return value.Det(m)
}

func invFn(args []value.Value) (value.Value, error) {
	m, ok := args[0].(*value.Matrix)
	if !ok {
		return nil, &evalerr.TypeError{Msg: "inv expects a matrix argument"}
	}
	return value.Inverse(m)
}
