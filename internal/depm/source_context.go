package depm

import "github.com/verity-lang/verityc/internal/report"

// AliasBinding records where an unqualified name entered scope, so
// EntityRedefined-style diagnostics can cite both the new and prior
// binding sites.
type AliasBinding struct {
	CanonicalName string
	At            report.Location
}

// NamespaceBinding records a package-qualifier alias (`import pkg;`).
type NamespaceBinding struct {
	PackageName string
	At          report.Location
}

// SourceContext is the per-file scope built in Pass 2 (spec.md §3,
// §4.2): the set of unqualified names visible in this source (its own
// package's entities plus any `import pkg.Name;` clauses) and the set of
// package-qualifier aliases from `import pkg;` clauses. It is read-only
// once Pass 2 finishes.
type SourceContext struct {
	EntityAliases map[string]AliasBinding
	Namespaces    map[string]NamespaceBinding
}

// NewSourceContext creates an empty SourceContext.
func NewSourceContext() *SourceContext {
	return &SourceContext{
		EntityAliases: make(map[string]AliasBinding),
		Namespaces:    make(map[string]NamespaceBinding),
	}
}
