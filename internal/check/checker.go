package check

import (
	"github.com/verity-lang/verityc/internal/ast"
	"github.com/verity-lang/verityc/internal/depm"
	"github.com/verity-lang/verityc/internal/elab"
	"github.com/verity-lang/verityc/internal/ir"
	"github.com/verity-lang/verityc/internal/report"
	"github.com/verity-lang/verityc/internal/typing"
)

// Checker holds the per-function state Pass 3 needs: the ambient
// ProgramContext and SourceContext, the function's TypeScope, its
// VariableStack, and — while compiling an `ensures` clause — the
// synthetic return-tuple variables the `return` expression atom yields
// (spec.md §4.6, §4.9).
type Checker struct {
	pc    *depm.ProgramContext
	src   *depm.SourceContext
	scope *typing.TypeScope
	vars  *VariableStack

	insideEnsures bool
	returnVars    []int
	returnTypes   []typing.Type
}

// NewChecker creates a Checker for one function or contract clause.
func NewChecker(pc *depm.ProgramContext, src *depm.SourceContext, scope *typing.TypeScope) *Checker {
	return &Checker{pc: pc, src: src, scope: scope, vars: NewVariableStack()}
}

// compileType elaborates an AST type reference under this checker's
// scope. Pass 3 always runs with pc.HasCollectedMembers true, so every
// type occurrence here is checked, not skipped (spec.md §4.3's
// check/skip invariant).
func (c *Checker) compileType(ref ast.TypeRef) typing.Type {
	return elab.CompileType(ref, c.scope, c.src, c.pc, elab.Check)
}

// compileStmts compiles a statement list into blk in order.
func (c *Checker) compileStmts(blk *ir.Block, stmts []ast.Stmt) {
	for _, s := range stmts {
		c.compileStmt(blk, s)
	}
}

func (c *Checker) compileStmt(blk *ir.Block, s ast.Stmt) {
	switch x := s.(type) {
	case ast.VarStmt:
		c.compileVarStmt(blk, x)
	case ast.ReturnStmt:
		c.compileReturnStmt(blk, x)
	case ast.IfStmt:
		c.compileIfStmt(blk, &x)
	case ast.UnreachableStmt:
		blk.Append(ir.UnreachableOp{Kind: ir.UnreachableUser})
	default:
		report.ICE("compileStmt: unrecognized Stmt variant %T", s)
	}
}

// compileVarStmt implements spec.md §4.6's `var` rule: evaluate the
// right-hand expressions left to right, flatten multi-value tuples,
// check the fan-out against the declared name count, declare each name
// (failing VariableRedefined on collisions), emit an op-var per name,
// then an op-assign per pair checking type equality.
func (c *Checker) compileVarStmt(blk *ir.Block, s ast.VarStmt) {
	valueIDs, valueTypes := c.compileExprList(blk, s.Values)

	if len(valueIDs) != len(s.Names) {
		panic(report.ValueCountMismatch(
			len(valueIDs), len(s.Names),
			spanOf(s.Values, s.Loc()), spanOfLocs(s.NameAt, s.Loc()),
		))
	}

	for i, name := range s.Names {
		declaredType := c.compileType(s.Types[i])

		id, prior, ok := c.vars.Declare(name, declaredType, s.NameAt[i])
		if !ok {
			panic(report.VariableRedefined(name, prior, s.NameAt[i]))
		}
		blk.Append(ir.VarOp{VarID: id, Type: declaredType})

		if !typing.Equals(valueTypes[i], declaredType) {
			panic(report.TypeMismatch(valueTypes[i].Repr(), declaredType.Repr(), s.Values[i].Loc()))
		}
		blk.Append(ir.AssignOp{DstVar: id, SrcVar: valueIDs[i]})
	}
}

// compileReturnStmt implements spec.md §4.6's `return` rule: the same
// fan-out check as `var`, against the enclosing function's return
// types, followed by an op-return.
func (c *Checker) compileReturnStmt(blk *ir.Block, s ast.ReturnStmt) {
	valueIDs, _ := c.compileExprList(blk, s.Values)

	if len(valueIDs) != len(c.returnTypes) {
		panic(report.ValueCountMismatch(len(valueIDs), len(c.returnTypes), spanOf(s.Values, s.Loc()), s.Loc()))
	}

	blk.Append(ir.ReturnOp{ResultVars: valueIDs})
}

// compileIfStmt implements spec.md §4.6's `if`/`else if`/`else` rule:
// the head condition must compile to exactly one boolean value, the
// true branch compiles into a fresh block, and any `else if` chains as
// a nested branch on the false side.
func (c *Checker) compileIfStmt(blk *ir.Block, s *ast.IfStmt) {
	condID, condType := c.compileExprSingle(blk, s.Cond, "if")
	if !typing.Equals(condType, typing.Boolean) {
		panic(report.BooleanTypeExpected("if", condType.Repr(), s.Cond.Loc()))
	}

	var trueBlk, falseBlk ir.Block

	c.vars.OpenBlock()
	c.compileStmts(&trueBlk, s.Then)
	c.vars.CloseBlock()

	switch {
	case s.ElseIf != nil:
		c.vars.OpenBlock()
		c.compileIfStmt(&falseBlk, s.ElseIf)
		c.vars.CloseBlock()
	case s.Else != nil:
		c.vars.OpenBlock()
		c.compileStmts(&falseBlk, s.Else)
		c.vars.CloseBlock()
	}

	blk.Append(ir.BranchOp{CondVar: condID, True: trueBlk, False: falseBlk})
}

func spanOf(exprs []ast.Expr, fallback report.Location) report.Location {
	if len(exprs) == 0 {
		return fallback
	}
	loc := exprs[0].Loc()
	for _, e := range exprs[1:] {
		loc = report.Over(loc, e.Loc())
	}
	return loc
}

func spanOfLocs(locs []report.Location, fallback report.Location) report.Location {
	if len(locs) == 0 {
		return fallback
	}
	loc := locs[0]
	for _, l := range locs[1:] {
		loc = report.Over(loc, l)
	}
	return loc
}
