package resolve

import (
	"testing"

	"github.com/verity-lang/verityc/internal/ast"
	"github.com/verity-lang/verityc/internal/depm"
	"github.com/verity-lang/verityc/internal/report"
)

func loc(offset int) report.Location {
	return report.Location{FileID: 0, Offset: offset, Length: 1}
}

func rec(name string, at int) ast.RecordDefinition {
	return ast.RecordDefinition{
		DefinitionBase: ast.DefinitionBase{NodeBase: ast.NodeBase{At: loc(at)}, Name: name, NameAt: loc(at)},
	}
}

func iface(name string, at int) ast.InterfaceDefinition {
	return ast.InterfaceDefinition{
		DefinitionBase: ast.DefinitionBase{NodeBase: ast.NodeBase{At: loc(at)}, Name: name, NameAt: loc(at)},
	}
}

func src(fileID int, pkg string, defs ...ast.Definition) *ast.Source {
	return &ast.Source{FileID: fileID, PackageName: pkg, Definitions: defs}
}

func mustPanic(t *testing.T, want report.Kind, fn func()) {
	t.Helper()
	defer func() {
		r := recover()
		if r == nil {
			t.Fatalf("expected a panic carrying %s, got none", want)
		}
		se, ok := r.(*report.SemanticError)
		if !ok {
			t.Fatalf("expected *report.SemanticError, got %T (%v)", r, r)
		}
		if se.Diagnostic.Kind != want {
			t.Fatalf("Kind = %s, want %s", se.Diagnostic.Kind, want)
		}
	}()
	fn()
}

func TestCollectEntitiesRegistersEachDefinitionOnce(t *testing.T) {
	s := src(0, "example", rec("A", 0), iface("Good", 10))

	pc := CollectEntities([]*ast.Source{s})

	if _, ok := pc.LookupEntity("example.A"); !ok {
		t.Fatal("example.A not registered")
	}
	good, ok := pc.LookupEntity("example.Good")
	if !ok {
		t.Fatal("example.Good not registered")
	}
	if good.Kind != depm.KindInterface {
		t.Fatalf("Good.Kind = %v, want KindInterface", good.Kind)
	}
	if a, _ := pc.LookupEntity("example.A"); a.Kind != depm.KindRecord {
		t.Fatalf("A.Kind = %v, want KindRecord", a.Kind)
	}
}

func TestCollectEntitiesDuplicateWithinFilePanics(t *testing.T) {
	s := src(0, "example", rec("A", 0), rec("A", 10))
	mustPanic(t, report.KindEntityRedefined, func() {
		CollectEntities([]*ast.Source{s})
	})
}

func TestCollectEntitiesDuplicateAcrossFilesPanics(t *testing.T) {
	s1 := src(0, "example", rec("A", 0))
	s2 := src(1, "example", rec("A", 5))
	mustPanic(t, report.KindEntityRedefined, func() {
		CollectEntities([]*ast.Source{s1, s2})
	})
}

func TestCollectEntitiesSamePackageNameDifferentPackagesDoNotCollide(t *testing.T) {
	s1 := src(0, "pkgone", rec("A", 0))
	s2 := src(1, "pkgtwo", rec("A", 5))

	pc := CollectEntities([]*ast.Source{s1, s2})
	if _, ok := pc.LookupEntity("pkgone.A"); !ok {
		t.Fatal("pkgone.A not registered")
	}
	if _, ok := pc.LookupEntity("pkgtwo.A"); !ok {
		t.Fatal("pkgtwo.A not registered")
	}
}
