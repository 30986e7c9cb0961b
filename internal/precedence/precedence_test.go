package precedence

import (
	"testing"

	"github.com/verity-lang/verityc/internal/ast"
	"github.com/verity-lang/verityc/internal/report"
)

func ident(name string) ast.Identifier {
	return ast.Identifier{Name: name}
}

func pair(op string, operand ast.Expr) ast.OpPair {
	return ast.OpPair{Operator: op, Operand: operand}
}

func binary(t *testing.T, e ast.Expr) ast.BinaryExpr {
	t.Helper()
	b, ok := e.(ast.BinaryExpr)
	if !ok {
		t.Fatalf("expected ast.BinaryExpr, got %T", e)
	}
	return b
}

// `a and b and c` is left-associative: (a and b) and c.
func TestBuildLeftAssociativeChain(t *testing.T) {
	chain := ast.OpExpr{
		Head: ident("a"),
		Tail: []ast.OpPair{pair("and", ident("b")), pair("and", ident("c"))},
	}

	root := binary(t, Build(chain))
	if root.Operator != "and" {
		t.Fatalf("root operator = %q, want and", root.Operator)
	}
	if rhs, ok := root.Rhs.(ast.Identifier); !ok || rhs.Name != "c" {
		t.Fatalf("root.Rhs = %#v, want identifier c", root.Rhs)
	}
	lhs := binary(t, root.Lhs)
	if lhs.Operator != "and" {
		t.Fatalf("lhs operator = %q, want and", lhs.Operator)
	}
	if l, ok := lhs.Lhs.(ast.Identifier); !ok || l.Name != "a" {
		t.Fatalf("lhs.Lhs = %#v, want identifier a", lhs.Lhs)
	}
	if r, ok := lhs.Rhs.(ast.Identifier); !ok || r.Name != "b" {
		t.Fatalf("lhs.Rhs = %#v, want identifier b", lhs.Rhs)
	}
}

// `a implies b implies c` is right-associative: a implies (b implies c).
func TestBuildRightAssociativeChain(t *testing.T) {
	chain := ast.OpExpr{
		Head: ident("a"),
		Tail: []ast.OpPair{pair("implies", ident("b")), pair("implies", ident("c"))},
	}

	root := binary(t, Build(chain))
	if root.Operator != "implies" {
		t.Fatalf("root operator = %q, want implies", root.Operator)
	}
	if l, ok := root.Lhs.(ast.Identifier); !ok || l.Name != "a" {
		t.Fatalf("root.Lhs = %#v, want identifier a", root.Lhs)
	}
	rhs := binary(t, root.Rhs)
	if rhs.Operator != "implies" {
		t.Fatalf("rhs operator = %q, want implies", rhs.Operator)
	}
}

// `a < b <= c` shares association group `<`, so it folds without conflict,
// left to right.
func TestBuildSameGroupComparisonChain(t *testing.T) {
	chain := ast.OpExpr{
		Head: ident("a"),
		Tail: []ast.OpPair{pair("<", ident("b")), pair("<=", ident("c"))},
	}

	root := binary(t, Build(chain))
	if root.Operator != "<=" {
		t.Fatalf("root operator = %q, want <=", root.Operator)
	}
	_ = binary(t, root.Lhs)
}

// `a < b > c` mixes association groups `<` and `>` at equal precedence,
// which spec.md §4.7 requires to be rejected.
func TestBuildUnorderedGroupsPanics(t *testing.T) {
	chain := ast.OpExpr{
		Head: ident("a"),
		Tail: []ast.OpPair{pair("<", ident("b")), pair(">", ident("c"))},
	}

	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected a panic for unordered comparison groups")
		}
		se, ok := r.(*report.SemanticError)
		if !ok {
			t.Fatalf("expected *report.SemanticError panic, got %T (%v)", r, r)
		}
		if se.Diagnostic.Kind != report.KindOperationRequiresParenthesization {
			t.Fatalf("Kind = %s, want OperationRequiresParenthesization", se.Diagnostic.Kind)
		}
	}()
	Build(chain)
}

// `a == b == c` chains a non-associative operator with itself, which
// spec.md §4.7 also requires to be rejected.
func TestBuildNonAssociativeChainPanics(t *testing.T) {
	chain := ast.OpExpr{
		Head: ident("a"),
		Tail: []ast.OpPair{pair("==", ident("b")), pair("==", ident("c"))},
	}

	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected a panic for a repeated non-associative operator")
		}
		se, ok := r.(*report.SemanticError)
		if !ok {
			t.Fatalf("expected *report.SemanticError panic, got %T (%v)", r, r)
		}
		if se.Diagnostic.Kind != report.KindOperationRequiresParenthesization {
			t.Fatalf("Kind = %s, want OperationRequiresParenthesization", se.Diagnostic.Kind)
		}
	}()
	Build(chain)
}

// `a + b < c` mixes a default-precedence arithmetic operator (precedence 2)
// with a comparison (precedence 1): the higher-precedence `+` binds first
// regardless of order.
func TestBuildMixedPrecedenceBindsTighterFirst(t *testing.T) {
	chain := ast.OpExpr{
		Head: ident("a"),
		Tail: []ast.OpPair{pair("+", ident("b")), pair("<", ident("c"))},
	}

	root := binary(t, Build(chain))
	if root.Operator != "<" {
		t.Fatalf("root operator = %q, want <", root.Operator)
	}
	lhs := binary(t, root.Lhs)
	if lhs.Operator != "+" {
		t.Fatalf("lhs operator = %q, want +", lhs.Operator)
	}
}
