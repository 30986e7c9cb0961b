package resolve

import (
	"github.com/verity-lang/verityc/internal/ast"
	"github.com/verity-lang/verityc/internal/depm"
	"github.com/verity-lang/verityc/internal/report"
)

// ResolveSourceContexts runs Pass 2's source-context half over every
// source (spec.md §4.2), populating pc.SourceContexts. It must run after
// CollectEntities and before member collection, since entityAliases seeds
// from the already-registered package entities.
func ResolveSourceContexts(pc *depm.ProgramContext) {
	for sourceID, src := range pc.Sources {
		pc.SourceContexts[sourceID] = resolveOne(src, pc)
	}
}

func resolveOne(src *ast.Source, pc *depm.ProgramContext) *depm.SourceContext {
	sc := depm.NewSourceContext()

	for shortName, canonical := range pc.CanonicalByQualifiedName[src.PackageName] {
		entity := pc.EntitiesByCanonical[canonical]
		sc.EntityAliases[shortName] = depm.AliasBinding{CanonicalName: canonical, At: entity.At}
	}

	for _, imp := range src.Imports {
		switch imp.Kind {
		case ast.ImportPackage:
			if imp.Package == src.PackageName {
				panic(report.NamespaceAlreadyDefined(imp.Package, imp.Loc()))
			}
			if !pc.PackageExists(imp.Package) {
				panic(report.NoSuchPackage(imp.Package, imp.Loc()))
			}
			if _, exists := sc.Namespaces[imp.Package]; exists {
				panic(report.NamespaceAlreadyDefined(imp.Package, imp.Loc()))
			}
			sc.Namespaces[imp.Package] = depm.NamespaceBinding{PackageName: imp.Package, At: imp.Loc()}

		case ast.ImportEntity:
			canonical, ok := pc.LookupInPackage(imp.Package, imp.Entity)
			if !ok {
				if !pc.PackageExists(imp.Package) {
					panic(report.NoSuchPackage(imp.Package, imp.Loc()))
				}
				panic(report.NoSuchEntity(imp.Package, imp.Entity, imp.Loc()))
			}
			if prior, exists := sc.EntityAliases[imp.Entity]; exists {
				panic(report.EntityRedefined(imp.Entity, prior.At, imp.Loc()))
			}
			sc.EntityAliases[imp.Entity] = depm.AliasBinding{CanonicalName: canonical, At: imp.Loc()}
		}
	}

	return sc
}
