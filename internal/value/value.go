// Package value implements the runtime value tower: exact rationals,
// complex numbers, matrices, the symbolic polynomial carrier, and
// user-defined functions (spec §3, §4.V).
package value

import (
	"fmt"
	"strings"

	"computorv2/internal/ast"
)

// Kind identifies which variant of Value a concrete type implements.
type Kind int

const (
	KindRational Kind = iota
	KindComplex
	KindMatrix
	KindSymbolic
	KindFunction
)

var kindNames = map[Kind]string{
	KindRational: "rational",
	KindComplex:  "complex",
	KindMatrix:   "matrix",
	KindSymbolic: "symbolic expression",
	KindFunction: "function",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown"
}

// Value is the tagged runtime value produced by the evaluator. It is
// implemented by *Rational, *Complex, *Matrix, *symbolic.PolyExpr, and
// *Function — an exported marker method rather than a sealed
// interface, so the symbolic and builtins packages can each own their
// half of the arithmetic without an import cycle back into this
// package.
type Value interface {
	ValueKind() Kind
	String() string
}

// Function is a user-defined function: late-bound per spec §4.E —
// only the parameter names and unevaluated body are kept, never a
// captured environment, so redefining an identifier the body
// references takes effect at the next call.
type Function struct {
	Params []string
	Body   ast.Expression
}

func (*Function) ValueKind() Kind { return KindFunction }
func (f *Function) String() string {
	params := strings.Join(f.Params, ", ")
	return fmt.Sprintf("<function(%s)>", params)
}
