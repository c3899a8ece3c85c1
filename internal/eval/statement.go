package eval

import (
	"fmt"
	"strings"

	"computorv2/internal/ast"
	"computorv2/internal/env"
	"computorv2/internal/evalerr"
	"computorv2/internal/format"
	"computorv2/internal/solve"
	"computorv2/internal/symbolic"
	"computorv2/internal/value"
)

// ExecLine evaluates one parsed line — a bare expression, a variable
// or function assignment, or a query — and renders the REPL/CLI
// output line for it (spec §6).
func ExecLine(stmt ast.Expression, e *env.Environment) (string, error) {
	switch n := stmt.(type) {
	case *ast.Assign:
		return execAssign(n, e)
	case *ast.Query:
		return execQuery(n, e)
	default:
		v, err := Eval(stmt, e)
		if err != nil {
			return "", err
		}
		return format.Value(v), nil
	}
}

func execAssign(n *ast.Assign, e *env.Environment) (string, error) {
	if call, ok := n.Target.(*ast.Call); ok {
		return execFuncDef(call, n.Value, e)
	}
	v, ok := n.Target.(*ast.Var)
	if !ok {
		return "", &evalerr.ParseError{Col: n.Pos().Column, Msg: "invalid assignment target"}
	}

	val, err := Eval(n.Value, e)
	if err != nil {
		return "", err
	}
	if isSymbolic(val) {
		free := val.(*symbolic.PolyExpr).Vars()
		return "", &evalerr.NameError{Col: n.Pos().Column, Name: free[0]}
	}
	e.Set(v.Name, val)
	return fmt.Sprintf("%s = %s", v.Name, format.Value(val)), nil
}

func execFuncDef(call *ast.Call, body ast.Expression, e *env.Environment) (string, error) {
	params := make([]string, len(call.Args))
	for i, a := range call.Args {
		params[i] = a.(*ast.Var).Name
	}

	// Evaluate the body against fresh symbolic stand-ins for the
	// parameters so the echoed definition shows the simplified form,
	// without storing anything bound yet.
	preview := e.Snapshot()
	for _, p := range params {
		preview.Set(p, symbolic.FromVar(p))
	}
	bodyVal, err := Eval(body, preview)
	if err != nil {
		return "", err
	}

	e.Set(call.Name, &value.Function{Params: params, Body: body})
	return fmt.Sprintf("%s(%s) = %s", call.Name, strings.Join(params, ", "), format.Value(bodyVal)), nil
}

func execQuery(n *ast.Query, e *env.Environment) (string, error) {
	lhsVal, err := Eval(n.Lhs, e)
	if err != nil {
		return "", err
	}

	if n.Rhs == nil {
		return format.Value(lhsVal), nil
	}

	rhsVal, err := Eval(n.Rhs, e)
	if err != nil {
		return "", err
	}
	if _, ok := lhsVal.(*value.Matrix); ok {
		return "", &evalerr.TypeError{Col: n.Pos().Column, Msg: "cannot solve a matrix equation"}
	}
	if _, ok := rhsVal.(*value.Matrix); ok {
		return "", &evalerr.TypeError{Col: n.Pos().Column, Msg: "cannot solve a matrix equation"}
	}

	res, err := solve.Solve(toPoly(lhsVal), toPoly(rhsVal))
	if err != nil {
		return "", err
	}
	return format.Solve(res), nil
}
