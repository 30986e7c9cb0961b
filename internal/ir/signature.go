package ir

import "github.com/verity-lang/verityc/internal/typing"

// Parameter is one function parameter: its declared name (for
// diagnostics) and its type.
type Parameter struct {
	Name string
	Type typing.Type
}

// FunctionSignature is the fully elaborated shape of a function, shared
// by record methods and interface members (spec.md §3).
type FunctionSignature struct {
	TypeParameters       []string
	ConstraintParameters []typing.ConstraintBinding
	Parameters           []Parameter
	ReturnTypes          []typing.Type

	// Preconditions and Postconditions are the lowered `requires`/
	// `ensures` clauses: each is an IR block plus a distinguished result
	// variable (ResultVar) that holds the clause's single boolean result
	// once the block has run.
	Preconditions  []ContractBlock
	Postconditions []ContractBlock
}

// ContractBlock is one lowered contract clause.
type ContractBlock struct {
	Block     Block
	ResultVar int
}

// ForeignSignature is a built-in primitive signature exposed to the IR.
type ForeignSignature struct {
	Name        string
	Parameters  []typing.Type
	ReturnTypes []typing.Type

	// IsEquality marks the primitive integer equality predicate, per
	// spec.md §6 ("Int== carries a semantics annotation {eq: true}").
	IsEquality bool
}

// ForeignTable is the fixed set of built-in signatures exposed to the IR:
// exactly Int==, Int+, and Int- (spec.md §1, §6).
type ForeignTable struct {
	signatures map[string]ForeignSignature
}

// NewForeignTable builds the standard three-operator foreign table.
func NewForeignTable() ForeignTable {
	return ForeignTable{signatures: map[string]ForeignSignature{
		"Int==": {Name: "Int==", Parameters: []typing.Type{typing.Int, typing.Int}, ReturnTypes: []typing.Type{typing.Boolean}, IsEquality: true},
		"Int+":  {Name: "Int+", Parameters: []typing.Type{typing.Int, typing.Int}, ReturnTypes: []typing.Type{typing.Int}},
		"Int-":  {Name: "Int-", Parameters: []typing.Type{typing.Int, typing.Int}, ReturnTypes: []typing.Type{typing.Int}},
	}}
}

// Lookup resolves a foreign function by name.
func (t ForeignTable) Lookup(name string) (ForeignSignature, bool) {
	sig, ok := t.signatures[name]
	return sig, ok
}
