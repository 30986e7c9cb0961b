package check

import (
	"github.com/verity-lang/verityc/internal/ast"
	"github.com/verity-lang/verityc/internal/depm"
	"github.com/verity-lang/verityc/internal/elab"
	"github.com/verity-lang/verityc/internal/ir"
	"github.com/verity-lang/verityc/internal/report"
	"github.com/verity-lang/verityc/internal/typing"
)

// AssembleProgram runs Pass 3 (spec.md §4.9) over every entity collected
// and member-resolved by package resolve: it flips
// pc.HasCollectedMembers, re-elaborates every declared type with
// constraint-checking enabled, and compiles every function's contracts
// and body into IR.
func AssembleProgram(pc *depm.ProgramContext) *ir.Program {
	pc.HasCollectedMembers = true
	prog := ir.NewProgram()

	for canonical, entity := range pc.EntitiesByCanonical {
		src := pc.SourceContexts[entity.SourceID]
		switch entity.Kind {
		case depm.KindRecord:
			prog.Records[canonical] = assembleRecordType(entity, src, pc)
		case depm.KindInterface:
			prog.Interfaces[canonical] = assembleInterfaceType(entity, src, pc)
		}
	}

	for _, entity := range pc.EntitiesByCanonical {
		if entity.Kind != depm.KindRecord {
			continue
		}
		src := pc.SourceContexts[entity.SourceID]
		for _, fnDef := range entity.Functions {
			prog.Functions[fnDef.ID] = assembleFunction(entity, fnDef, src, pc)
		}
	}

	return prog
}

// assembleRecordType re-elaborates every field type in Check mode (for
// its constraint-checking side effect) and builds the IR record shape
// from the structurally-identical values Pass 2 already computed.
func assembleRecordType(entity *depm.EntityDef, src *depm.SourceContext, pc *depm.ProgramContext) *ir.RecordType {
	def := entity.AST.(ast.RecordDefinition)
	for _, f := range def.Fields {
		elab.CompileType(f.Type, entity.Scope, src, pc, elab.Check)
	}

	fields := make([]ir.FieldType, len(entity.FieldOrder))
	for i, name := range entity.FieldOrder {
		fields[i] = ir.FieldType{Name: name, Type: entity.Fields[name].Type}
	}

	return &ir.RecordType{TypeParameters: entity.Scope.DebugNames, Fields: fields}
}

func assembleInterfaceType(entity *depm.EntityDef, src *depm.SourceContext, pc *depm.ProgramContext) *ir.InterfaceType {
	def := entity.AST.(ast.InterfaceDefinition)
	sigs := make(map[string]ir.FunctionSignature, len(def.Fns))
	for _, fn := range def.Fns {
		fnDef := entity.Functions[fn.Name]
		sigs[fn.Name] = assembleFunction(entity, fnDef, src, pc).Signature
	}

	return &ir.InterfaceType{TypeParameters: entity.Scope.DebugNames, Signatures: sigs}
}

// reelaborateSignature re-runs CompileType in Check mode over a
// function's parameter and return types, purely for the constraint-check
// side effect; the resulting types are structurally identical to what
// Pass 2 already stored.
func reelaborateSignature(fnDef *depm.FnDef, src *depm.SourceContext, pc *depm.ProgramContext) {
	for _, p := range fnDef.AST.Parameters {
		elab.CompileType(p.Type, fnDef.Scope, src, pc, elab.Check)
	}
	for _, r := range fnDef.AST.Returns {
		elab.CompileType(r, fnDef.Scope, src, pc, elab.Check)
	}
}

// assembleFunction implements spec.md §4.9 for one function: declare
// parameters as stack variables, re-elaborate the signature, compile
// requires/ensures contract blocks, and — for record functions — the
// body block, with a trailing op-unreachable inserted when control falls
// off the end without returning.
func assembleFunction(entity *depm.EntityDef, fnDef *depm.FnDef, src *depm.SourceContext, pc *depm.ProgramContext) *ir.Function {
	reelaborateSignature(fnDef, src, pc)

	c := NewChecker(pc, src, fnDef.Scope)
	for i, p := range fnDef.Signature.Parameters {
		if _, _, ok := c.vars.Declare(p.Name, p.Type, fnDef.AST.Parameters[i].NameAt); !ok {
			report.ICE("assembleFunction: parameter %q redeclared (should have failed in member collection)", p.Name)
		}
	}

	preconditions := make([]ir.ContractBlock, len(fnDef.AST.Requires))
	for i, reqExpr := range fnDef.AST.Requires {
		preconditions[i] = c.compileContractClause(reqExpr, "contract")
	}

	ensuresChecker := NewChecker(pc, src, fnDef.Scope)
	for i, p := range fnDef.Signature.Parameters {
		ensuresChecker.vars.Declare(p.Name, p.Type, fnDef.AST.Parameters[i].NameAt)
	}
	ensuresChecker.insideEnsures = true
	ensuresChecker.returnTypes = fnDef.Signature.ReturnTypes

	postconditions := make([]ir.ContractBlock, len(fnDef.AST.Ensures))
	for i, ensExpr := range fnDef.AST.Ensures {
		postconditions[i] = compileEnsuresClause(ensuresChecker, ensExpr)
	}

	fnDef.Signature.Preconditions = preconditions
	fnDef.Signature.Postconditions = postconditions

	var body ir.Block
	if fnDef.HasBody {
		c.returnTypes = fnDef.Signature.ReturnTypes
		c.compileStmts(&body, fnDef.AST.Body)
		if !terminatesControlFlow(body) {
			body.Append(ir.UnreachableOp{Kind: ir.UnreachableReturn})
		}
	}

	return &ir.Function{Signature: fnDef.Signature, Body: body}
}

// compileContractClause compiles a `requires` expression in a fresh
// variable block, requiring exactly one boolean result.
func (c *Checker) compileContractClause(e ast.Expr, reason string) ir.ContractBlock {
	var blk ir.Block
	c.vars.OpenBlock()
	id, t := c.compileExprSingle(&blk, e, reason)
	c.vars.CloseBlock()
	if !typing.Equals(t, typing.Boolean) {
		panic(report.BooleanTypeExpected(reason, t.Repr(), e.Loc()))
	}
	return ir.ContractBlock{Block: blk, ResultVar: id}
}

// compileEnsuresClause compiles an `ensures` expression with the
// synthetic return tuple pre-declared as temporaries, in its own checker
// instance (ensuresChecker) so insideEnsures/returnVars never leak into
// sibling clauses.
func compileEnsuresClause(c *Checker, e ast.Expr) ir.ContractBlock {
	var blk ir.Block
	c.vars.OpenBlock()

	returnVars := make([]int, len(c.returnTypes))
	for i, t := range c.returnTypes {
		id := c.vars.NewTemp(t)
		blk.Append(ir.VarOp{VarID: id, Type: t})
		returnVars[i] = id
	}
	c.returnVars = returnVars

	id, t := c.compileExprSingle(&blk, e, "contract")
	c.vars.CloseBlock()
	if !typing.Equals(t, typing.Boolean) {
		panic(report.BooleanTypeExpected("contract", t.Repr(), e.Loc()))
	}
	return ir.ContractBlock{Block: blk, ResultVar: id}
}

// terminatesControlFlow reports whether body's last op is a terminator
// (op-return, op-unreachable, or a branch whose own two sides both
// terminate), per spec.md §8's termination property.
func terminatesControlFlow(b ir.Block) bool {
	if len(b.Ops) == 0 {
		return false
	}
	switch op := b.Ops[len(b.Ops)-1].(type) {
	case ir.ReturnOp:
		return true
	case ir.UnreachableOp:
		return true
	case ir.BranchOp:
		return terminatesControlFlow(op.True) && terminatesControlFlow(op.False)
	default:
		return false
	}
}
