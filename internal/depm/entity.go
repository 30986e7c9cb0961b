package depm

import (
	"github.com/verity-lang/verityc/internal/ast"
	"github.com/verity-lang/verityc/internal/ir"
	"github.com/verity-lang/verityc/internal/report"
	"github.com/verity-lang/verityc/internal/typing"
)

// EntityKind distinguishes a record entity from an interface entity.
type EntityKind int

const (
	KindRecord EntityKind = iota
	KindInterface
)

// EntityDef is the tagged value registered for every top-level record or
// interface definition (spec.md §3, §4.1). Member tables are empty when
// an EntityDef is created by Pass 1 and are filled in by Pass 2.
type EntityDef struct {
	Kind          EntityKind
	CanonicalName string
	SourceID      int
	At            report.Location

	// AST is the original definition node, revisited by Pass 2 (member
	// collection) and Pass 3 (body checking).
	AST ast.Definition

	Scope *typing.TypeScope

	// Fields and FieldOrder are populated for records only; FieldOrder
	// preserves declaration order for diagnostics and for record-literal
	// completeness checks.
	Fields     map[string]*FieldDef
	FieldOrder []string

	// Functions holds every member function (record methods or interface
	// signatures), keyed by name. Fields and Functions share one
	// namespace per spec.md §4.5: a name may not appear in both.
	Functions map[string]*FnDef

	// Implements lists the record header's `is Interface[args]`
	// declarations, elaborated (in `skip` mode) during member collection
	// and consulted by the constraint checker in Pass 3.
	Implements []typing.ConstraintBinding
}

// FieldDef is one elaborated record field.
type FieldDef struct {
	Name string
	At   report.Location
	Type typing.Type
}

// FnDef is one elaborated function signature, shared by record methods
// (which additionally have a body) and interface member signatures
// (which never do).
type FnDef struct {
	// ID is `package.Entity.memberName` for a record function, per
	// spec.md §4.5; interface member signatures are not independently
	// callable and carry the same scheme for uniform bookkeeping.
	ID   string
	Name string
	At   report.Location

	Scope     *typing.TypeScope
	Signature ir.FunctionSignature

	// AST carries the original signature node (parameters, returns,
	// requires/ensures, and body) for Pass 3 re-elaboration.
	AST ast.FnSignature

	// HasBody is true for record functions; false for interface members.
	HasBody bool
}

// NewEntityScope seeds a fresh TypeScope appropriate to kind: interfaces
// get `This` as type-variable 0; records start with an empty scope.
func NewEntityScope(kind EntityKind) *typing.TypeScope {
	if kind == KindInterface {
		return typing.NewInterfaceScope()
	}
	return typing.NewRecordScope()
}
