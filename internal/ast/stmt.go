package ast

import "github.com/verity-lang/verityc/internal/report"

// Stmt is the tagged union of the four statement forms the checker
// compiles (spec.md §4.6): `var`, `return`, `if`, and the "unreachable"
// pseudo-statement.
type Stmt interface {
	Node
	isStmt()
}

// VarStmt is `var v1: T1, v2: T2 = e1, e2;`. Types may be nil entries when
// the declared type is to be inferred from the right-hand side (the core
// still requires an explicit declared type per spec.md §4.6, so Types is
// always fully populated by the parser in practice, but the shape leaves
// room for a future inference extension).
type VarStmt struct {
	NodeBase

	Names  []string
	NameAt []report.Location
	Types  []TypeRef
	Values []Expr
}

func (VarStmt) isStmt() {}

// ReturnStmt is `return e1, e2;`.
type ReturnStmt struct {
	NodeBase
	Values []Expr
}

func (ReturnStmt) isStmt() {}

// IfStmt is a single `if`/`else if`/`else` rung. ElseIf and Else are
// mutually exclusive; both nil means there is no else clause.
type IfStmt struct {
	NodeBase

	Cond Expr
	Then []Stmt

	ElseIf *IfStmt
	Else   []Stmt
}

func (IfStmt) isStmt() {}

// UnreachableStmt marks a point in a function body the parser has
// recorded as unreachable. It is distinct from the `op-unreachable` IR op
// the body assembler appends automatically when a body falls off the end
// without returning (spec.md §4.9).
type UnreachableStmt struct {
	NodeBase
}

func (UnreachableStmt) isStmt() {}
