// Package ir implements the typed, SSA-style intermediate representation
// produced by the checker and consumed by the (out-of-scope) downstream
// verifier, per spec.md §3 and §6.
//
// Grounded on ComedicChimera-chai's bootstrap/ir package (Value/Block/
// Instruction, and the bundle-of-globals shape for a whole compiled
// module), adapted from an LLVM-bitcode-emitting IR to the core's simpler
// append-only Op list keyed by positional variable ids.
package ir

import "github.com/verity-lang/verityc/internal/typing"

// Program is the output of compileSources: a mapping of function,
// record, and interface ids to their elaborated definitions, plus the
// foreign (built-in) signature table and an initially empty table of
// vtable factories reserved for the downstream verifier/lowerer.
type Program struct {
	Functions  map[string]*Function
	Records    map[string]*RecordType
	Interfaces map[string]*InterfaceType
	Foreign    ForeignTable

	// VTableFactories is populated by later stages (out of scope here);
	// it exists on Program so the shape matches what the downstream
	// verifier expects to find populated.
	VTableFactories map[string]*VTableFactory
}

// NewProgram creates an empty Program with the standard foreign table.
func NewProgram() *Program {
	return &Program{
		Functions:       make(map[string]*Function),
		Records:         make(map[string]*RecordType),
		Interfaces:      make(map[string]*InterfaceType),
		Foreign:         NewForeignTable(),
		VTableFactories: make(map[string]*VTableFactory),
	}
}

// RecordType is the IR-level shape of a record entity: its type
// parameters (by debug name, id = index) and its typed fields in
// declaration order.
type RecordType struct {
	TypeParameters []string
	Fields         []FieldType
}

// FieldType is one field of a RecordType.
type FieldType struct {
	Name string
	Type typing.Type
}

// InterfaceType is the IR-level shape of an interface entity: its type
// parameters and the signatures of its members.
type InterfaceType struct {
	TypeParameters []string
	Signatures     map[string]FunctionSignature
}

// Function is a fully checked function: its signature and its lowered
// body block.
type Function struct {
	Signature FunctionSignature
	Body      Block
}

// VTableFactory is a placeholder for the downstream verifier's dynamic
// dispatch tables; the core never populates it (spec.md §3: "an
// (initially empty) table of vtable factories").
type VTableFactory struct{}
