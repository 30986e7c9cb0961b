package compiler

import (
	"testing"

	"github.com/verity-lang/verityc/internal/ast"
	"github.com/verity-lang/verityc/internal/report"
)

func loc(offset, length int) report.Location {
	return report.Location{FileID: 0, Offset: offset, Length: length}
}

func diagKind(t *testing.T, err error) report.Kind {
	t.Helper()
	se, ok := err.(*report.SemanticError)
	if !ok {
		t.Fatalf("expected a *report.SemanticError, got %T (%v)", err, err)
	}
	return se.Diagnostic.Kind
}

func emptyRecord(name string, at report.Location) ast.RecordDefinition {
	return ast.RecordDefinition{
		DefinitionBase: ast.DefinitionBase{NodeBase: ast.NodeBase{At: at}, Name: name, NameAt: at},
	}
}

func source(fileID int, pkg string, defs ...ast.Definition) *ast.Source {
	return &ast.Source{
		NodeBase:    ast.NodeBase{At: loc(0, 1)},
		FileID:      fileID,
		PackageName: pkg,
		PackageLoc:  loc(0, len(pkg)),
		Definitions: defs,
	}
}

// Scenario 1: two top-level definitions in one file sharing `package.Name`.
func TestScenario1DuplicateDefinitionSameFile(t *testing.T) {
	first := emptyRecord("A", loc(24, 1))
	second := emptyRecord("A", loc(37, 1))
	src := source(0, "example", first, second)

	_, err := CompileSources([]*ast.Source{src}, nil)
	if err == nil {
		t.Fatal("expected EntityRedefined, got success")
	}
	if got := diagKind(t, err); got != report.KindEntityRedefined {
		t.Fatalf("Kind = %s, want EntityRedefined", got)
	}
}

// Scenario 2: the same collision across two files.
func TestScenario2DuplicateDefinitionAcrossFiles(t *testing.T) {
	srcA := source(0, "example", emptyRecord("A", loc(24, 1)))
	srcB := source(1, "example", emptyRecord("A", loc(10, 1)))

	_, err := CompileSources([]*ast.Source{srcA, srcB}, nil)
	if err == nil {
		t.Fatal("expected EntityRedefined, got success")
	}
	if got := diagKind(t, err); got != report.KindEntityRedefined {
		t.Fatalf("Kind = %s, want EntityRedefined", got)
	}
}

// Scenario 3: `var a: Int = 1; var b: A = a;` inside a function of record A.
func TestScenario3TypeMismatchOnVarDecl(t *testing.T) {
	intT := ast.KeywordType{Keyword: ast.KeywordInt}
	selfT := ast.NamedTypeRef{Name: "A", NameAt: loc(50, 1)}
	unitReturn := []ast.TypeRef{}

	body := []ast.Stmt{
		ast.VarStmt{
			Names: []string{"a"}, NameAt: []report.Location{loc(10, 1)},
			Types:  []ast.TypeRef{intT},
			Values: []ast.Expr{ast.IntLiteral{Value: 1}},
		},
		ast.VarStmt{
			Names: []string{"b"}, NameAt: []report.Location{loc(20, 1)},
			Types:  []ast.TypeRef{selfT},
			Values: []ast.Expr{ast.Identifier{Name: "a"}},
		},
	}

	fn := ast.FnSignature{Name: "f", NameAt: loc(5, 1), Returns: unitReturn, Body: body}
	rec := ast.RecordDefinition{
		DefinitionBase: ast.DefinitionBase{NodeBase: ast.NodeBase{At: loc(0, 1)}, Name: "A", NameAt: loc(0, 1)},
		Fns:            []ast.FnSignature{fn},
	}
	src := source(0, "example", rec)

	_, err := CompileSources([]*ast.Source{src}, nil)
	if err == nil {
		t.Fatal("expected TypeMismatch, got success")
	}
	if got := diagKind(t, err); got != report.KindTypeMismatch {
		t.Fatalf("Kind = %s, want TypeMismatch", got)
	}
}

// Scenario 4: `return 1, 1;` inside a function declared to return one Int.
func TestScenario4ReturnFanOutMismatch(t *testing.T) {
	intT := ast.KeywordType{Keyword: ast.KeywordInt}
	body := []ast.Stmt{
		ast.ReturnStmt{Values: []ast.Expr{ast.IntLiteral{Value: 1}, ast.IntLiteral{Value: 1}}},
	}
	fn := ast.FnSignature{Name: "f", NameAt: loc(5, 1), Returns: []ast.TypeRef{intT}, Body: body}
	rec := ast.RecordDefinition{
		DefinitionBase: ast.DefinitionBase{NodeBase: ast.NodeBase{At: loc(0, 1)}, Name: "A", NameAt: loc(0, 1)},
		Fns:            []ast.FnSignature{fn},
	}
	src := source(0, "example", rec)

	_, err := CompileSources([]*ast.Source{src}, nil)
	if err == nil {
		t.Fatal("expected ValueCountMismatch, got success")
	}
	if got := diagKind(t, err); got != report.KindValueCountMismatch {
		t.Fatalf("Kind = %s, want ValueCountMismatch", got)
	}
}

// Scenario 5: a `requires` clause using the `return` expression atom, which
// is only valid inside `ensures`.
func TestScenario5ReturnExpressionOutsideEnsures(t *testing.T) {
	boolT := ast.KeywordType{Keyword: ast.KeywordBoolean}
	fn := ast.FnSignature{
		Name: "f", NameAt: loc(5, 1),
		Returns:  []ast.TypeRef{boolT},
		Requires: []ast.Expr{ast.ReturnExpr{}},
		Body:     []ast.Stmt{ast.ReturnStmt{Values: []ast.Expr{ast.BoolLiteral{Value: true}}}},
	}
	rec := ast.RecordDefinition{
		DefinitionBase: ast.DefinitionBase{NodeBase: ast.NodeBase{At: loc(0, 1)}, Name: "A", NameAt: loc(0, 1)},
		Fns:            []ast.FnSignature{fn},
	}
	src := source(0, "example", rec)

	_, err := CompileSources([]*ast.Source{src}, nil)
	if err == nil {
		t.Fatal("expected ReturnExpressionUsedOutsideEnsures, got success")
	}
	if got := diagKind(t, err); got != report.KindReturnExpressionUsedOutsideEnsures {
		t.Fatalf("Kind = %s, want ReturnExpressionUsedOutsideEnsures", got)
	}
}

// buildConstraintScenario builds:
//   interface Good {}
//   record A[#T | #T is Good] {}
//   record Main { fn f(a: A[<arg>]): Int { return 0; } }
// parameterized on the type argument applied to A, and optionally a record B
// declaring `is Good`.
func buildConstraintScenario(argT ast.TypeRef, declareB bool) *ast.Source {
	goodIface := ast.InterfaceDefinition{
		DefinitionBase: ast.DefinitionBase{NodeBase: ast.NodeBase{At: loc(0, 1)}, Name: "Good", NameAt: loc(0, 1)},
	}

	aTypeParams := &ast.TypeParamList{
		NodeBase:   ast.NodeBase{At: loc(1, 1)},
		Parameters: []ast.TypeParam{{NodeBase: ast.NodeBase{At: loc(1, 1)}, Name: "T"}},
		Constraints: []ast.ConstraintSyntax{
			{
				NodeBase:    ast.NodeBase{At: loc(2, 1)},
				SubjectName: "T", SubjectAt: loc(2, 1),
				Interface: ast.NamedTypeRef{Name: "Good", NameAt: loc(3, 1)},
			},
		},
	}
	recA := ast.RecordDefinition{
		DefinitionBase: ast.DefinitionBase{NodeBase: ast.NodeBase{At: loc(1, 1)}, Name: "A", NameAt: loc(1, 1), TypeParamL: aTypeParams},
	}

	intT := ast.KeywordType{Keyword: ast.KeywordInt}
	mainFn := ast.FnSignature{
		Name: "f", NameAt: loc(40, 1),
		Parameters: []ast.Param{{Name: "a", NameAt: loc(41, 1), Type: ast.NamedTypeRef{
			Name: "A", NameAt: loc(42, 1), Arguments: []ast.TypeRef{argT},
		}}},
		Returns: []ast.TypeRef{intT},
		Body:    []ast.Stmt{ast.ReturnStmt{Values: []ast.Expr{ast.IntLiteral{Value: 0}}}},
	}
	recMain := ast.RecordDefinition{
		DefinitionBase: ast.DefinitionBase{NodeBase: ast.NodeBase{At: loc(30, 1)}, Name: "Main", NameAt: loc(30, 1)},
		Fns:            []ast.FnSignature{mainFn},
	}

	defs := []ast.Definition{goodIface, recA, recMain}
	if declareB {
		recB := ast.RecordDefinition{
			DefinitionBase: ast.DefinitionBase{NodeBase: ast.NodeBase{At: loc(20, 1)}, Name: "B", NameAt: loc(20, 1)},
			Implements: []ast.ConstraintSyntax{
				{NodeBase: ast.NodeBase{At: loc(21, 1)}, Interface: ast.NamedTypeRef{Name: "Good", NameAt: loc(22, 1)}},
			},
		}
		defs = append(defs, recB)
	}

	return source(0, "example", defs...)
}

// Scenario 6: `A[Int]` fails since `Int` declares no `is Good`.
func TestScenario6ConstraintNotSatisfied(t *testing.T) {
	src := buildConstraintScenario(ast.KeywordType{Keyword: ast.KeywordInt}, false)

	_, err := CompileSources([]*ast.Source{src}, nil)
	if err == nil {
		t.Fatal("expected TypesDontSatisfyConstraint, got success")
	}
	if got := diagKind(t, err); got != report.KindTypesDontSatisfyConstraint {
		t.Fatalf("Kind = %s, want TypesDontSatisfyConstraint", got)
	}
}

// Scenario 7: `A[B]` succeeds since `record B is Good` is declared.
func TestScenario7ConstraintSatisfied(t *testing.T) {
	src := buildConstraintScenario(ast.NamedTypeRef{Name: "B", NameAt: loc(43, 1)}, true)

	prog, err := CompileSources([]*ast.Source{src}, nil)
	if err != nil {
		t.Fatalf("expected success, got error: %v", err)
	}
	if _, ok := prog.Records["example.Main"]; !ok {
		t.Fatal("program.Records[\"example.Main\"] missing")
	}
}

// Scenario 8: a generic function's own ambient constraint discharges a
// constraint its argument's type requires, with neither side ever
// becoming concrete:
//
//	interface Good {}
//	record A[#T | #T is Good] {}
//	record Main { fn f[#U | #U is Good](x: A[U]): Int { return 0; } }
//
// `A[U]` must type-check inside `f`'s own body-independent signature
// elaboration: U's ambient `#U is Good` binding (installed in f's own
// TypeScope.Constraints) is what satisfies A's requirement on T=U, not
// any record's `is Interface` header.
func TestScenario8AmbientTypeParamConstraintSatisfiesGenericArgument(t *testing.T) {
	goodIface := ast.InterfaceDefinition{
		DefinitionBase: ast.DefinitionBase{NodeBase: ast.NodeBase{At: loc(0, 1)}, Name: "Good", NameAt: loc(0, 1)},
	}

	aTypeParams := &ast.TypeParamList{
		NodeBase:   ast.NodeBase{At: loc(1, 1)},
		Parameters: []ast.TypeParam{{NodeBase: ast.NodeBase{At: loc(1, 1)}, Name: "T"}},
		Constraints: []ast.ConstraintSyntax{
			{
				NodeBase:    ast.NodeBase{At: loc(2, 1)},
				SubjectName: "T", SubjectAt: loc(2, 1),
				Interface: ast.NamedTypeRef{Name: "Good", NameAt: loc(3, 1)},
			},
		},
	}
	recA := ast.RecordDefinition{
		DefinitionBase: ast.DefinitionBase{NodeBase: ast.NodeBase{At: loc(1, 1)}, Name: "A", NameAt: loc(1, 1), TypeParamL: aTypeParams},
	}

	fTypeParams := &ast.TypeParamList{
		NodeBase:   ast.NodeBase{At: loc(40, 1)},
		Parameters: []ast.TypeParam{{NodeBase: ast.NodeBase{At: loc(40, 1)}, Name: "U"}},
		Constraints: []ast.ConstraintSyntax{
			{
				NodeBase:    ast.NodeBase{At: loc(41, 1)},
				SubjectName: "U", SubjectAt: loc(41, 1),
				Interface: ast.NamedTypeRef{Name: "Good", NameAt: loc(42, 1)},
			},
		},
	}
	intT := ast.KeywordType{Keyword: ast.KeywordInt}
	mainFn := ast.FnSignature{
		Name: "f", NameAt: loc(43, 1), TypeParamL: fTypeParams,
		Parameters: []ast.Param{{Name: "x", NameAt: loc(44, 1), Type: ast.NamedTypeRef{
			Name: "A", NameAt: loc(45, 1), Arguments: []ast.TypeRef{ast.VarTypeRef{Name: "U"}},
		}}},
		Returns: []ast.TypeRef{intT},
		Body:    []ast.Stmt{ast.ReturnStmt{Values: []ast.Expr{ast.IntLiteral{Value: 0}}}},
	}
	recMain := ast.RecordDefinition{
		DefinitionBase: ast.DefinitionBase{NodeBase: ast.NodeBase{At: loc(30, 1)}, Name: "Main", NameAt: loc(30, 1)},
		Fns:            []ast.FnSignature{mainFn},
	}

	src := source(0, "example", goodIface, recA, recMain)

	prog, err := CompileSources([]*ast.Source{src}, nil)
	if err != nil {
		t.Fatalf("expected success, got error: %v", err)
	}
	if _, ok := prog.Functions["example.Main.f"]; !ok {
		t.Fatal("program.Functions[\"example.Main.f\"] missing")
	}
}
