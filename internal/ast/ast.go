// Package ast defines the expression tree produced by the parser and
// consumed by the evaluator, simplifier, and solver.
package ast

import (
	"math/big"

	"computorv2/internal/lexer"
)

// Node is implemented by every AST node; it exists mainly to anchor a
// source position for error messages.
type Node interface {
	Pos() lexer.Position
}

// Expression is any node that produces a value when evaluated.
type Expression interface {
	Node
	exprNode()
}

// BinOp identifies a binary operator.
type BinOp int

const (
	Add BinOp = iota
	Sub
	Mul
	Div
	Mod
	Pow // also covers matrix product when both operands are matrices
)

func (op BinOp) String() string {
	switch op {
	case Add:
		return "+"
	case Sub:
		return "-"
	case Mul:
		return "*"
	case Div:
		return "/"
	case Mod:
		return "%"
	case Pow:
		return "^"
	default:
		return "?"
	}
}

// UnaryOp identifies a unary operator.
type UnaryOp int

const (
	Plus UnaryOp = iota
	Neg
)

// Num is an exact rational literal.
type Num struct {
	Value    *big.Rat
	Position lexer.Position
}

func (n *Num) Pos() lexer.Position { return n.Position }
func (*Num) exprNode()             {}

// ImagUnit is the constant i.
type ImagUnit struct {
	Position lexer.Position
}

func (n *ImagUnit) Pos() lexer.Position { return n.Position }
func (*ImagUnit) exprNode()             {}

// Var is an identifier reference.
type Var struct {
	Name     string
	Position lexer.Position
}

func (n *Var) Pos() lexer.Position { return n.Position }
func (*Var) exprNode()             {}

// MatLit is a rectangular matrix literal; Rows must all have equal
// length (validated by the parser).
type MatLit struct {
	Rows     [][]Expression
	Position lexer.Position
}

func (n *MatLit) Pos() lexer.Position { return n.Position }
func (*MatLit) exprNode()             {}

// Call is a function application, either a builtin or a user-defined
// function.
type Call struct {
	Name     string
	Args     []Expression
	Position lexer.Position
}

func (n *Call) Pos() lexer.Position { return n.Position }
func (*Call) exprNode()             {}

// Unary is a prefix +/- expression.
type Unary struct {
	Op       UnaryOp
	Child    Expression
	Position lexer.Position
}

func (n *Unary) Pos() lexer.Position { return n.Position }
func (*Unary) exprNode()             {}

// Binary is a two-operand arithmetic expression.
type Binary struct {
	Op       BinOp
	Left     Expression
	Right    Expression
	Position lexer.Position
}

func (n *Binary) Pos() lexer.Position { return n.Position }
func (*Binary) exprNode()             {}

// Assign is either a variable assignment (Target is *Var) or a function
// definition (Target is *Call with all-identifier args).
type Assign struct {
	Target   Expression
	Value    Expression
	Position lexer.Position
}

func (n *Assign) Pos() lexer.Position { return n.Position }
func (*Assign) exprNode()             {}

// Query is the `lhs = rhs ?` form: solve if rhs is not itself a bare
// `?` marker wrapping the same expression, otherwise just compute lhs.
type Query struct {
	Lhs      Expression
	Rhs      Expression // nil for the `EXPR = ?` compute-only form
	Position lexer.Position
}

func (n *Query) Pos() lexer.Position { return n.Position }
func (*Query) exprNode()             {}
