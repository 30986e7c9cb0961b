package ast

import "github.com/verity-lang/verityc/internal/report"

// TypeRef is the AST-level syntax for a type occurrence, consumed by the
// type elaborator (spec.md §4.3). It is a closed tagged union of three
// shapes: a keyword type, a type-variable reference, and a named
// (possibly package-qualified, possibly generic) entity reference.
type TypeRef interface {
	Node
	isTypeRef()
}

// Keyword enumerates the built-in keyword types: `This`, `String`, `Int`,
// `Boolean`.
type Keyword int

const (
	KeywordThis Keyword = iota
	KeywordString
	KeywordInt
	KeywordBoolean
)

// KeywordType is a reference to one of the built-in keyword types.
type KeywordType struct {
	NodeBase
	Keyword Keyword
}

func (KeywordType) isTypeRef() {}

// VarTypeRef is a reference to a type-variable name, e.g. `T`.
type VarTypeRef struct {
	NodeBase
	Name string
}

func (VarTypeRef) isTypeRef() {}

// NamedTypeRef is a reference to a (possibly package-qualified) entity,
// with optional type arguments: `pkg.Name[args]` or `Name[args]`.
type NamedTypeRef struct {
	NodeBase

	// Package is empty when the reference is unqualified.
	Package   string
	Name      string
	NameAt    report.Location
	Arguments []TypeRef
}

func (NamedTypeRef) isTypeRef() {}
