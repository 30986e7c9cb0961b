// Package precedence rebuilds the flat, left-to-right operator chains the
// parser produces (ast.OpExpr) into a tree of ast.BinaryExpr nodes,
// following the fixed table and fold algorithm in spec.md §4.7.
//
// Grounded on ComedicChimera-chai's bootstrap/parser precedence-climbing
// pass for the table shape (precedence level, associativity, association
// group), but deliberately NOT structured as parse-time Pratt climbing:
// the parser here has already produced a flat operand list, so this
// package operates as a separate, table-driven post-processing fold
// (spec.md §9's explicit guidance against ad-hoc recursive descent with
// precedence climbing at this layer).
package precedence

import (
	"github.com/verity-lang/verityc/internal/ast"
	"github.com/verity-lang/verityc/internal/report"
)

// Associativity is left, right, or non-associative.
type Associativity int

const (
	LeftAssoc Associativity = iota
	RightAssoc
	NonAssoc
)

// entry is one operator's precedence-table row.
type entry struct {
	precedence int
	assoc      Associativity
	group      string
}

// table is the fixed operator table from spec.md §4.7. Operators absent
// from this map get the default row via lookup().
var table = map[string]entry{
	"implies": {precedence: 0, assoc: RightAssoc, group: "implies"},
	"and":     {precedence: 0, assoc: LeftAssoc, group: "and"},
	"or":      {precedence: 0, assoc: LeftAssoc, group: "or"},
	"<":       {precedence: 1, assoc: LeftAssoc, group: "<"},
	">":       {precedence: 1, assoc: LeftAssoc, group: ">"},
	"<=":      {precedence: 1, assoc: LeftAssoc, group: "<"},
	">=":      {precedence: 1, assoc: LeftAssoc, group: ">"},
	"==":      {precedence: 1, assoc: NonAssoc, group: "=="},
	"!=":      {precedence: 1, assoc: NonAssoc, group: "!="},
}

// lookup returns an operator's table row, or the default row (precedence
// 2, non-associative, own group) for anything not named in table — this
// covers arithmetic operators like `+`/`-` (spec.md §4.7: "all other
// operators: default precedence 2, non-associative").
func lookup(op string) entry {
	if e, ok := table[op]; ok {
		return e
	}
	return entry{precedence: 2, assoc: NonAssoc, group: op}
}

// token is one operator slot between two (possibly already-folded)
// operands, paired with its table row.
type token struct {
	op string
	at report.Location
	e  entry
}

// Build rebuilds e into a tree of ast.BinaryExpr, recursively folding any
// nested OpExpr operands first. A chain with no operator pairs is
// returned unchanged (just its head).
func Build(e ast.OpExpr) ast.Expr {
	head := foldOperand(e.Head)
	if len(e.Tail) == 0 {
		return head
	}

	nodes := make([]ast.Expr, len(e.Tail)+1)
	nodes[0] = head
	toks := make([]token, len(e.Tail))
	for i, pair := range e.Tail {
		nodes[i+1] = foldOperand(pair.Operand)
		toks[i] = token{op: pair.Operator, at: pair.OperatorAt, e: lookup(pair.Operator)}
	}

	return reduce(nodes, toks, e.Loc())
}

// foldOperand recursively resolves a nested OpExpr operand; any other
// expression form is returned unchanged (it is not a flat operator
// chain, so there is nothing to rebuild).
func foldOperand(x ast.Expr) ast.Expr {
	if nested, ok := x.(ast.OpExpr); ok {
		return Build(nested)
	}
	return x
}

// reduce repeatedly folds the highest-precedence remaining operator
// (spec.md §4.7 step 2) until one operand remains. Ties are broken by
// associativity direction: a run of right-associative operators folds
// from the right inward so the rightmost join happens first (correctly
// nesting as `a op (b op c)`); every other tie folds from the left
// inward (`(a op b) op c`), which is also the direction that surfaces a
// genuine non-associative or cross-group conflict at the first
// offending adjacency rather than the last.
func reduce(nodes []ast.Expr, toks []token, whole report.Location) ast.Expr {
	for len(toks) > 0 {
		idx := pickFold(toks)
		validateNeighbors(toks, idx)

		merged := ast.BinaryExpr{
			NodeBase:   ast.NodeBase{At: whole},
			Operator:   toks[idx].op,
			OperatorAt: toks[idx].at,
			Lhs:        nodes[idx],
			Rhs:        nodes[idx+1],
		}

		nextNodes := make([]ast.Expr, 0, len(nodes)-1)
		nextNodes = append(nextNodes, nodes[:idx]...)
		nextNodes = append(nextNodes, merged)
		nextNodes = append(nextNodes, nodes[idx+2:]...)
		nodes = nextNodes

		nextToks := make([]token, 0, len(toks)-1)
		nextToks = append(nextToks, toks[:idx]...)
		nextToks = append(nextToks, toks[idx+1:]...)
		toks = nextToks
	}

	if len(nodes) != 1 {
		report.ICE("precedence.reduce: expected exactly one surviving operand, got %d", len(nodes))
	}
	return nodes[0]
}

func pickFold(toks []token) int {
	maxPrec := toks[0].e.precedence
	for _, t := range toks[1:] {
		if t.e.precedence > maxPrec {
			maxPrec = t.e.precedence
		}
	}

	hasRightAssoc := false
	for _, t := range toks {
		if t.e.precedence == maxPrec && t.e.assoc == RightAssoc {
			hasRightAssoc = true
			break
		}
	}

	if hasRightAssoc {
		for i := len(toks) - 1; i >= 0; i-- {
			if toks[i].e.precedence == maxPrec {
				return i
			}
		}
	}
	for i := 0; i < len(toks); i++ {
		if toks[i].e.precedence == maxPrec {
			return i
		}
	}

	report.ICE("precedence.pickFold: no operator at the reported maximum precedence")
	panic("unreachable")
}

// validateNeighbors checks the operator about to fold at idx against its
// immediate unfolded neighbors, per spec.md §4.7 step 3: equal
// precedence requires equal association group, and a non-associative
// join forbids an equal-precedence neighbor on either side.
func validateNeighbors(toks []token, idx int) {
	cur := toks[idx].e
	if idx > 0 {
		checkPair(toks[idx-1].e, cur, toks[idx].at)
	}
	if idx+1 < len(toks) {
		checkPair(cur, toks[idx+1].e, toks[idx].at)
	}
}

func checkPair(a, b entry, at report.Location) {
	if a.precedence != b.precedence {
		return
	}
	if a.group != b.group {
		panic(report.OperationRequiresParenthesization("unordered", at))
	}
	if a.assoc == NonAssoc || b.assoc == NonAssoc {
		panic(report.OperationRequiresParenthesization("non-associative", at))
	}
}
