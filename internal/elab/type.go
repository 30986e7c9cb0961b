// Package elab implements the type elaborator and constraint
// compiler/checker (spec.md §4.3, §4.4): the translation from AST type
// syntax to IR types, and the search that decides whether a set of
// concrete type arguments satisfies a declared constraint.
//
// Grounded on ComedicChimera-chai's bootstrap/resolve/types.go
// (walkTypeLabel's keyword/variable/named-reference dispatch), adapted
// to the core's check/skip mode split and its eager-substitution
// constraint model (no unification solver).
package elab

import (
	"github.com/verity-lang/verityc/internal/ast"
	"github.com/verity-lang/verityc/internal/depm"
	"github.com/verity-lang/verityc/internal/report"
	"github.com/verity-lang/verityc/internal/typing"
)

// Mode selects whether CompileType checks type-argument constraints
// (Check) or elaborates structure only (Skip), per spec.md §4.3/§4.4.
type Mode int

const (
	Skip Mode = iota
	Check
)

// CompileType maps ref to an IR type under scope (the enclosing entity
// or function's TypeScope) and src (the enclosing source's resolved
// names), per the contract table in spec.md §4.3.
//
// mode must agree with pc.HasCollectedMembers: Check requires it to be
// true, Skip requires it to be false. A caller that violates this
// invariant has a bug in pass sequencing, not a user-facing error, so it
// is reported as an ICE (spec.md §3's invariants, §7's ICE taxonomy).
func CompileType(ref ast.TypeRef, scope *typing.TypeScope, src *depm.SourceContext, pc *depm.ProgramContext, mode Mode) typing.Type {
	if mode == Check && !pc.HasCollectedMembers {
		report.ICE("compileType(check) called before member collection has completed")
	}
	if mode == Skip && pc.HasCollectedMembers {
		report.ICE("compileType(skip) called after member collection has completed")
	}

	switch t := ref.(type) {
	case ast.KeywordType:
		return compileKeyword(t, scope)
	case ast.VarTypeRef:
		id, ok := scope.Lookup(t.Name)
		if !ok {
			panic(report.NoSuchTypeVariable(t.Name, t.Loc()))
		}
		return typing.Variable{ID: id}
	case ast.NamedTypeRef:
		return compileNamed(t, scope, src, pc, mode)
	default:
		report.ICE("compileType: unrecognized TypeRef variant %T", ref)
		panic("unreachable")
	}
}

func compileKeyword(t ast.KeywordType, scope *typing.TypeScope) typing.Type {
	switch t.Keyword {
	case ast.KeywordThis:
		this, ok := scope.ThisType()
		if !ok {
			panic(report.InvalidThisType(t.Loc()))
		}
		return this
	case ast.KeywordString:
		return typing.Bytes
	case ast.KeywordInt:
		return typing.Int
	case ast.KeywordBoolean:
		return typing.Boolean
	default:
		report.ICE("compileType: unrecognized keyword %d", t.Keyword)
		panic("unreachable")
	}
}

// compileNamed resolves a `pkg.Name[args]` / `Name[args]` reference,
// elaborating every type argument recursively, then — in Check mode —
// verifying the resolved record's declared constraints are satisfied
// after substituting the actual arguments.
func compileNamed(t ast.NamedTypeRef, scope *typing.TypeScope, src *depm.SourceContext, pc *depm.ProgramContext, mode Mode) typing.Type {
	canonical := ResolveEntityName(t.Package, t.Name, t.NameAt, src, pc)

	entity, ok := pc.LookupEntity(canonical)
	if !ok {
		report.ICE("compileType: %q resolved but is not registered", canonical)
	}
	if entity.Kind != depm.KindRecord {
		panic(report.NonTypeEntityUsedAsType(canonical, t.Loc()))
	}

	// entity is always a record here (the interface case panicked above),
	// so its TypeScope has no `This` and DebugNames is exactly its
	// declared type-parameter list.
	declaredParams := entity.Scope.DebugNames
	if len(t.Arguments) != len(declaredParams) {
		panic(report.TypeParameterCountMismatch(canonical, len(declaredParams), len(t.Arguments), t.Loc()))
	}

	args := make([]typing.Type, len(t.Arguments))
	for i, a := range t.Arguments {
		args[i] = CompileType(a, scope, src, pc, mode)
	}

	result := typing.Compound{RecordID: canonical, TypeArguments: args}

	if mode == Check {
		for _, need := range entity.Scope.Constraints {
			substituted := need.Substitute(args)
			if !Satisfies(substituted, scope, pc) {
				panic(report.TypesDontSatisfyConstraint(
					substituted.Subjects[0].Repr(), substituted.InterfaceID,
					t.Loc(), substituted.At,
				))
			}
		}
	}

	return result
}

// ResolveEntityName resolves a (possibly package-qualified) name to its
// canonical `package.Name` form, per spec.md §4.2's namespace/alias
// rules: a qualified reference looks the package up directly; an
// unqualified reference consults the source's entity aliases.
func ResolveEntityName(pkg, name string, at report.Location, src *depm.SourceContext, pc *depm.ProgramContext) string {
	if pkg != "" {
		if !pc.PackageExists(pkg) {
			panic(report.NoSuchPackage(pkg, at))
		}
		canonical, ok := pc.LookupInPackage(pkg, name)
		if !ok {
			panic(report.NoSuchEntity(pkg, name, at))
		}
		return canonical
	}

	binding, ok := src.EntityAliases[name]
	if !ok {
		panic(report.NoSuchEntity("", name, at))
	}
	return binding.CanonicalName
}
