// Package resolve implements Pass 1 (entity collection) and Pass 2
// (source-context resolution and member collection) of the three-pass
// elaborator (spec.md §4.1, §4.2, §4.5).
//
// Grounded on ComedicChimera-chai's bootstrap/resolve package, which
// plays the same two-phase role (build package/symbol tables, then
// resolve member signatures) ahead of its checker; adapted from the
// teacher's dependency-graph-ordered resolution (needed there because
// Chai supports mutually recursive packages compiled out of order) to
// the core's simpler single-pass-per-step model, since spec.md's Pass 2
// assumes all entities are already registered before any member is
// elaborated.
package resolve

import (
	"github.com/verity-lang/verityc/internal/ast"
	"github.com/verity-lang/verityc/internal/depm"
	"github.com/verity-lang/verityc/internal/report"
)

// CollectEntities runs Pass 1 over sources: registers every top-level
// record/interface definition under its canonical `package.Name`,
// failing with EntityRedefined on any collision (spec.md §4.1).
func CollectEntities(sources []*ast.Source) *depm.ProgramContext {
	pc := depm.NewProgramContext(sources)

	for sourceID, src := range sources {
		for _, def := range src.Definitions {
			canonical := depm.Canonicalize(src.PackageName, def.EntityName())

			if prior, exists := pc.EntitiesByCanonical[canonical]; exists {
				panic(report.EntityRedefined(canonical, prior.At, def.Loc()))
			}

			kind := depm.KindRecord
			if _, isInterface := def.(ast.InterfaceDefinition); isInterface {
				kind = depm.KindInterface
			}

			entity := &depm.EntityDef{
				Kind:          kind,
				CanonicalName: canonical,
				SourceID:      sourceID,
				At:            def.Loc(),
				AST:           def,
				Scope:         depm.NewEntityScope(kind),
				Fields:        make(map[string]*depm.FieldDef),
				Functions:     make(map[string]*depm.FnDef),
			}
			pc.EntitiesByCanonical[canonical] = entity

			if pc.CanonicalByQualifiedName[src.PackageName] == nil {
				pc.CanonicalByQualifiedName[src.PackageName] = make(map[string]string)
			}
			pc.CanonicalByQualifiedName[src.PackageName][def.EntityName()] = canonical
		}
	}

	return pc
}
