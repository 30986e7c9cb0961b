// Package depm holds the mutable, process-wide state the three-pass
// elaborator shares: ProgramContext (entities, canonical names,
// per-source contexts) and SourceContext (per-file name/namespace
// scope). Both are defined in spec.md §3.
//
// Grounded on ComedicChimera-chai's bootstrap/depm package, which plays
// the same role (package/symbol tables shared across resolution) for the
// teacher's compiler.
package depm

import "github.com/verity-lang/verityc/internal/ast"

// ProgramContext is created fresh at the start of Pass 1 and discarded
// once the IR program has been returned (spec.md §3, §5): it is never
// shared across compileSources invocations.
type ProgramContext struct {
	// CanonicalByQualifiedName maps package name -> short name -> the
	// canonical `package.Name` string. Canonical names are globally
	// unique within a ProgramContext.
	CanonicalByQualifiedName map[string]map[string]string

	// EntitiesByCanonical maps a canonical name to its entity.
	EntitiesByCanonical map[string]*EntityDef

	// SourceContexts maps a source's index in the input slice (its source
	// id) to the SourceContext built for it in Pass 2.
	SourceContexts map[int]*SourceContext

	// Sources is the input the context was built from, indexed by source
	// id, kept so later passes can revisit a source's AST.
	Sources []*ast.Source

	// HasCollectedMembers is the one-shot monotonic flag that gates
	// constraint checking in compileType: false during Pass 2 (member
	// collection, which elaborates every type in `skip` mode since the
	// entity set needed to check constraints isn't complete yet), true
	// from the start of Pass 3 onward.
	HasCollectedMembers bool
}

// NewProgramContext creates an empty ProgramContext over the given
// sources, ready for Pass 1.
func NewProgramContext(sources []*ast.Source) *ProgramContext {
	return &ProgramContext{
		CanonicalByQualifiedName: make(map[string]map[string]string),
		EntitiesByCanonical:      make(map[string]*EntityDef),
		SourceContexts:           make(map[int]*SourceContext),
		Sources:                  sources,
	}
}

// Canonicalize returns the canonical `package.Name` string for an entity.
func Canonicalize(pkg, name string) string {
	return pkg + "." + name
}

// LookupEntity resolves a canonical name to its EntityDef.
func (pc *ProgramContext) LookupEntity(canonical string) (*EntityDef, bool) {
	e, ok := pc.EntitiesByCanonical[canonical]
	return e, ok
}

// LookupInPackage resolves name within pkg to a canonical name.
func (pc *ProgramContext) LookupInPackage(pkg, name string) (string, bool) {
	sub, ok := pc.CanonicalByQualifiedName[pkg]
	if !ok {
		return "", false
	}
	canonical, ok := sub[name]
	return canonical, ok
}

// PackageExists reports whether any entity has been registered under pkg.
func (pc *ProgramContext) PackageExists(pkg string) bool {
	_, ok := pc.CanonicalByQualifiedName[pkg]
	return ok
}
