package ir

import "github.com/verity-lang/verityc/internal/typing"

// Block is an ordered, append-only list of Ops, corresponding to one
// lexical scope's worth of instructions (a function body, a branch side,
// or a contract clause).
type Block struct {
	Ops []Op
}

// Append adds op to the end of the block, mirroring the append-only
// discipline spec.md §3 requires of IR blocks.
func (b *Block) Append(op Op) {
	b.Ops = append(b.Ops, op)
}

// Op is the tagged union of IR operations (spec.md §3): variable
// declaration, constant, assignment, static call, foreign call, branch,
// return, and unreachable.
type Op interface {
	isOp()
}

// VarOp declares a new variable slot. Its VarID is the positional index
// of the variable within the enclosing function's flat variable stack
// (spec.md §3's "ids are positional indices into that stack").
type VarOp struct {
	VarID int
	Type  typing.Type
}

func (VarOp) isOp() {}

// ConstKind enumerates the constant kinds a ConstOp can produce.
type ConstKind int

const (
	ConstInt ConstKind = iota
	ConstBytes
	ConstBool
)

// ConstOp materializes a literal value into a temporary variable.
type ConstOp struct {
	ResultVar int
	Kind      ConstKind
	IntValue  int64
	BytesValue string
	BoolValue bool
}

func (ConstOp) isOp() {}

// AssignOp assigns the value currently held by SrcVar into DstVar. Both
// are variable ids; DstVar must have been declared in an enclosing block.
type AssignOp struct {
	DstVar int
	SrcVar int
}

func (AssignOp) isOp() {}

// StaticCallOp invokes a record function by id, binding each of
// ResultVars (one per substituted return type) to the call's results.
type StaticCallOp struct {
	FnID         string
	TypeArguments []typing.Type
	ArgVars      []int
	ResultVars   []int
}

func (StaticCallOp) isOp() {}

// ForeignCallOp invokes a built-in primitive (spec.md §4.8's arithmetic/
// comparison lowering).
type ForeignCallOp struct {
	ForeignName string
	ArgVars     []int
	ResultVar   int
}

func (ForeignCallOp) isOp() {}

// BranchOp is a two-way branch on CondVar's boolean value, with
// independent true/false sub-blocks (spec.md §4.8's short-circuit
// lowering and spec.md §4.6's `if` lowering both emit this op).
type BranchOp struct {
	CondVar int
	True    Block
	False   Block
}

func (BranchOp) isOp() {}

// ReturnOp returns the given variables as the function's result tuple.
type ReturnOp struct {
	ResultVars []int
}

func (ReturnOp) isOp() {}

// UnreachableKind distinguishes why an UnreachableOp was emitted.
type UnreachableKind string

const (
	UnreachableReturn UnreachableKind = "return"
	UnreachableUser   UnreachableKind = "user"
)

// UnreachableOp marks a point control flow should never reach. The body
// assembler appends one with UnreachableReturn automatically when a
// function body falls off the end without returning (spec.md §4.9), so
// the verifier can prove total return coverage; the parser's explicit
// `unreachable` pseudo-statement lowers to UnreachableUser.
type UnreachableOp struct {
	Kind UnreachableKind
}

func (UnreachableOp) isOp() {}
