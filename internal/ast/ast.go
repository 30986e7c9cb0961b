// Package ast defines the shapes the semantic core consumes from the
// parser: the input contract described in spec.md §6. Nothing in this
// package performs parsing; it is populated by an external
// parser/grammar-combinator layer that is out of scope for this core
// (spec.md §1).
//
// Grounded on ComedicChimera-chai's bootstrap/ast package: the
// embed-a-base-struct-for-Span()/Loc() pattern, and the tagged-interface
// style used for Def/Expr/Stmt variants.
package ast

import "github.com/verity-lang/verityc/internal/report"

// Node is implemented by every AST node; it exposes the source span the
// node occupies so diagnostics can cite it.
type Node interface {
	Loc() report.Location
}

// NodeBase is embedded by every concrete node to supply Loc().
type NodeBase struct {
	At report.Location
}

func (b NodeBase) Loc() report.Location { return b.At }

// -----------------------------------------------------------------------------

// Source is one parsed source file: a package declaration, its imports,
// and its top-level record/interface definitions.
type Source struct {
	NodeBase

	FileID      int
	PackageName string
	PackageLoc  report.Location
	Imports     []Import
	Definitions []Definition
}

// ImportKind distinguishes `import pkg;` from `import pkg.Name;`.
type ImportKind int

const (
	ImportPackage ImportKind = iota
	ImportEntity
)

// Import is one import clause.
type Import struct {
	NodeBase

	Kind    ImportKind
	Package string
	// Entity is populated only when Kind == ImportEntity.
	Entity string
}

// Definition is the tagged union of top-level definitions: a
// RecordDefinition or an InterfaceDefinition.
type Definition interface {
	Node
	EntityName() string
	NameLoc() report.Location
	TypeParams() *TypeParamList
}

// DefinitionBase holds the fields common to records and interfaces.
type DefinitionBase struct {
	NodeBase

	Name       string
	NameAt     report.Location
	TypeParamL *TypeParamList
}

func (d DefinitionBase) EntityName() string           { return d.Name }
func (d DefinitionBase) NameLoc() report.Location      { return d.NameAt }
func (d DefinitionBase) TypeParams() *TypeParamList    { return d.TypeParamL }

// RecordDefinition is a `record` definition.
type RecordDefinition struct {
	DefinitionBase

	Fields []Field
	Fns    []FnSignature

	// Implements lists the record header's `is Interface[args]`
	// declarations, consulted by the constraint checker (spec.md §4.4).
	Implements []ConstraintSyntax
}

// InterfaceDefinition is an `interface` definition.
type InterfaceDefinition struct {
	DefinitionBase

	Fns []FnSignature
}

// -----------------------------------------------------------------------------

// TypeParamList is a generic type-parameter clause: `[#T, #U | #T is
// Foo, #U is Bar[#T]]`.
type TypeParamList struct {
	NodeBase

	Parameters  []TypeParam
	Constraints []ConstraintSyntax
}

// TypeParam is one declared type-parameter name.
type TypeParam struct {
	NodeBase
	Name string
}

// ConstraintSyntax is one `T is InterfaceName[args...]` clause, either on a
// type-parameter list or a record header.
type ConstraintSyntax struct {
	NodeBase

	SubjectName string
	SubjectAt   report.Location
	Interface   TypeRef
}

// -----------------------------------------------------------------------------

// Field is one record field declaration.
type Field struct {
	NodeBase
	Name   string
	NameAt report.Location
	Type   TypeRef
}

// Param is one function parameter declaration.
type Param struct {
	NodeBase
	Name   string
	NameAt report.Location
	Type   TypeRef
}

// FnSignature is a function signature, optionally with a body (present on
// record functions, absent on interface members) and contract clauses.
type FnSignature struct {
	NodeBase

	Proof      bool
	Name       string
	NameAt     report.Location
	TypeParamL *TypeParamList
	Parameters []Param
	Returns    []TypeRef
	Requires   []Expr
	Ensures    []Expr

	// Body is nil for interface member signatures.
	Body []Stmt
}
