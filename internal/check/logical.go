package check

import (
	"github.com/verity-lang/verityc/internal/ast"
	"github.com/verity-lang/verityc/internal/ir"
	"github.com/verity-lang/verityc/internal/report"
	"github.com/verity-lang/verityc/internal/typing"
)

// compileBinaryExpr dispatches a resolved binary application (spec.md
// §4.8): `and`/`or`/`implies` lower to short-circuit op-branches,
// everything else dispatches to a foreign arithmetic/comparison
// function keyed by the left-hand operand's type.
func (c *Checker) compileBinaryExpr(blk *ir.Block, e ast.BinaryExpr) (int, typing.Type) {
	switch e.Operator {
	case "and", "or", "implies":
		return c.compileLogical(blk, e)
	default:
		return c.compileArithmetic(blk, e)
	}
}

// compileLogical lowers `and`/`or`/`implies` to an op-branch with
// short-circuit semantics on a pre-declared boolean temporary (spec.md
// §4.8). Each side that evaluates the right operand opens and closes a
// fresh variable block so its temporaries do not leak into the
// enclosing scope.
func (c *Checker) compileLogical(blk *ir.Block, e ast.BinaryExpr) (int, typing.Type) {
	lID, lType := c.compileExprSingle(blk, e.Lhs, "operator")
	if !typing.Equals(lType, typing.Boolean) {
		panic(report.BooleanTypeExpected("operator", lType.Repr(), e.Lhs.Loc()))
	}

	result := c.vars.NewTemp(typing.Boolean)
	blk.Append(ir.VarOp{VarID: result, Type: typing.Boolean})

	var trueBlk, falseBlk ir.Block

	switch e.Operator {
	case "or":
		trueBlk.Append(ir.AssignOp{DstVar: result, SrcVar: lID})
		c.compileShortCircuitSide(&falseBlk, e.Rhs, result)
	case "and":
		falseBlk.Append(ir.AssignOp{DstVar: result, SrcVar: lID})
		c.compileShortCircuitSide(&trueBlk, e.Rhs, result)
	case "implies":
		trueConst := c.compileBoolLiteral(&falseBlk, true, e.OperatorAt)
		falseBlk.Append(ir.AssignOp{DstVar: result, SrcVar: trueConst})
		c.compileShortCircuitSide(&trueBlk, e.Rhs, result)
	default:
		report.ICE("compileLogical: unrecognized logical operator %q", e.Operator)
	}

	blk.Append(ir.BranchOp{CondVar: lID, True: trueBlk, False: falseBlk})
	return result, typing.Boolean
}

// compileShortCircuitSide evaluates rhs inside its own variable block
// and assigns its (required boolean) value into result.
func (c *Checker) compileShortCircuitSide(sideBlk *ir.Block, rhs ast.Expr, result int) {
	c.vars.OpenBlock()
	rID, rType := c.compileExprSingle(sideBlk, rhs, "operator")
	if !typing.Equals(rType, typing.Boolean) {
		panic(report.BooleanTypeExpected("operator", rType.Repr(), rhs.Loc()))
	}
	sideBlk.Append(ir.AssignOp{DstVar: result, SrcVar: rID})
	c.vars.CloseBlock()
}

// compileArithmetic dispatches an arithmetic/comparison operator to its
// foreign function by the left-hand operand's type (spec.md §4.8):
// integer `==`/`+`/`-` map to `Int==`/`Int+`/`Int-`. Any other left-hand
// type raises TypeDoesNotProvideOperator; a right-hand type mismatch
// raises OperatorTypeMismatch.
func (c *Checker) compileArithmetic(blk *ir.Block, e ast.BinaryExpr) (int, typing.Type) {
	lID, lType := c.compileExprSingle(blk, e.Lhs, "operator")
	rID, rType := c.compileExprSingle(blk, e.Rhs, "operator")

	foreignName, resultType, ok := foreignForOperator(lType, e.Operator)
	if !ok {
		panic(report.TypeDoesNotProvideOperator(lType.Repr(), e.Operator, e.Loc()))
	}
	if !typing.Equals(rType, lType) {
		panic(report.OperatorTypeMismatch(e.Operator, lType.Repr(), rType.Repr(), e.Loc()))
	}

	resultID := c.vars.NewTemp(resultType)
	blk.Append(ir.VarOp{VarID: resultID, Type: resultType})
	blk.Append(ir.ForeignCallOp{ForeignName: foreignName, ArgVars: []int{lID, rID}, ResultVar: resultID})
	return resultID, resultType
}

// foreignForOperator maps a (left-hand type, operator) pair to the
// foreign function it dispatches to, per spec.md §1/§6's fixed set of
// three built-ins.
func foreignForOperator(lType typing.Type, op string) (name string, result typing.Type, ok bool) {
	if !typing.Equals(lType, typing.Int) {
		return "", nil, false
	}
	switch op {
	case "==":
		return "Int==", typing.Boolean, true
	case "+":
		return "Int+", typing.Int, true
	case "-":
		return "Int-", typing.Int, true
	default:
		return "", nil, false
	}
}
