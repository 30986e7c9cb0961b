package ast

import "github.com/verity-lang/verityc/internal/report"

// Expr is the tagged union of expression forms. Before type-checking,
// every Expr the checker sees is either an Atom or an OpExpr (a flat
// operator chain produced by the parser); internal/precedence folds
// OpExpr into a tree of BinaryExpr nodes that the checker then walks.
// Both OpExpr and BinaryExpr satisfy Expr so the precedence pass can
// rewrite in place without a second AST type.
type Expr interface {
	Node
	isExpr()
}

// OpPair is one (operator, operand) link in a flat operator chain.
type OpPair struct {
	Operator   string
	OperatorAt report.Location
	Operand    Expr
}

// OpExpr is the flat, left-to-right parse of a binary-operator chain: a
// head operand followed by zero or more (operator, operand) pairs, as
// produced by the parser (spec.md §4.7). A chain with zero pairs is just
// its head and requires no tree-building.
type OpExpr struct {
	NodeBase

	Head Expr
	Tail []OpPair
}

func (OpExpr) isExpr() {}

// BinaryExpr is a single resolved binary application, produced by folding
// an OpExpr per the precedence/associativity rules in spec.md §4.7.
type BinaryExpr struct {
	NodeBase

	Operator   string
	OperatorAt report.Location
	Lhs, Rhs   Expr
}

func (BinaryExpr) isExpr() {}

// -----------------------------------------------------------------------------
// Atoms (spec.md §4.6)

// Identifier is a bare name reference.
type Identifier struct {
	NodeBase
	Name string
}

func (Identifier) isExpr() {}

// ParenExpr is a parenthesized sub-expression; it must be single-valued.
type ParenExpr struct {
	NodeBase
	Inner Expr
}

func (ParenExpr) isExpr() {}

// IntLiteral is an integer literal.
type IntLiteral struct {
	NodeBase
	Value int64
}

func (IntLiteral) isExpr() {}

// StringLiteral is a string literal.
type StringLiteral struct {
	NodeBase
	Value string
}

func (StringLiteral) isExpr() {}

// BoolLiteral is a boolean literal.
type BoolLiteral struct {
	NodeBase
	Value bool
}

func (BoolLiteral) isExpr() {}

// ReturnExpr is the `return` keyword used as an expression atom inside an
// `ensures` clause, yielding the function's synthetic return tuple.
type ReturnExpr struct {
	NodeBase
}

func (ReturnExpr) isExpr() {}

// CallExpr is an explicit static call `Type.method(args)`.
type CallExpr struct {
	NodeBase

	Type       TypeRef
	Method     string
	MethodAt   report.Location
	Arguments  []Expr
}

func (CallExpr) isExpr() {}

// FieldAccessExpr is `target.name` used as a value (not a call).
type FieldAccessExpr struct {
	NodeBase

	Target Expr
	Name   string
	NameAt report.Location
}

func (FieldAccessExpr) isExpr() {}

// MethodAccessExpr is `target.name(args)` dispatched on a value (as
// opposed to CallExpr's explicit-type form).
type MethodAccessExpr struct {
	NodeBase

	Target    Expr
	Name      string
	NameAt    report.Location
	Arguments []Expr
}

func (MethodAccessExpr) isExpr() {}

// RecordLiteralField is one `name = value` pair in a record literal.
type RecordLiteralField struct {
	NodeBase
	Name  string
	Value Expr
}

// RecordLiteralExpr is `T{ f = e, ... }`.
type RecordLiteralExpr struct {
	NodeBase

	Type   TypeRef
	Fields []RecordLiteralField
}

func (RecordLiteralExpr) isExpr() {}
