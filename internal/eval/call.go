package eval

import (
	"computorv2/internal/ast"
	"computorv2/internal/builtins"
	"computorv2/internal/env"
	"computorv2/internal/evalerr"
	"computorv2/internal/value"
)

// callBuiltin evaluates n's arguments and dispatches to the builtins
// registry, attaching n's source column to any error the registry
// raises without one (builtins have no AST position of their own).
func callBuiltin(n *ast.Call, e *env.Environment) (value.Value, error) {
	args := make([]value.Value, len(n.Args))
	for i, a := range n.Args {
		v, err := Eval(a, e)
		if err != nil {
			return nil, err
		}
		if isSymbolic(v) {
			return nil, &evalerr.TypeError{Col: n.Pos().Column, Msg: "builtin functions require fully evaluated, non-symbolic arguments"}
		}
		args[i] = v
	}
	v, err := builtins.Call(n.Name, args)
	if err != nil {
		return nil, withColumn(err, n.Pos().Column)
	}
	return v, nil
}

func withColumn(err error, col int) error {
	switch e := err.(type) {
	case *evalerr.NameError:
		if e.Col == 0 {
			e.Col = col
		}
		return e
	case *evalerr.ArityError:
		if e.Col == 0 {
			e.Col = col
		}
		return e
	case *evalerr.TypeError:
		if e.Col == 0 {
			e.Col = col
		}
		return e
	case *evalerr.MathError:
		if e.Col == 0 {
			e.Col = col
		}
		return e
	}
	return err
}
