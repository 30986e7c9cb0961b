// Package check implements Pass 3 of the elaborator (spec.md §4.6–§4.9):
// the expression/statement checker, logical-operator lowering, and the
// per-function signature/body assembler that ties type elaboration,
// constraint checking, and the operator-precedence tree builder together
// into IR.
//
// Grounded on ComedicChimera-chai's bootstrap/check package (the
// expression-type-checker walking a parsed AST into typed HIR nodes,
// and its local-scope symbol table), adapted from the teacher's
// full-program type inference to the core's simpler checked-signature
// model: every declared type is already known going in, so there is no
// unification, only structural equality at each use site.
package check

import (
	"github.com/verity-lang/verityc/internal/report"
	"github.com/verity-lang/verityc/internal/typing"
)

type boundVar struct {
	id  int
	typ typing.Type
	at  report.Location
}

// VariableStack is the scoped name→variable mapping described in
// spec.md §3: Declare/Lookup resolve names, OpenBlock/CloseBlock frame a
// lexical block (closing one forgets every name it introduced), and
// NewTemp allocates a nameless positional variable for expression
// intermediates. All ids — named or temporary — are drawn from one
// monotonic, per-function counter, satisfying spec.md §8's variable-id
// density invariant.
type VariableStack struct {
	current    map[string]boundVar
	introduced [][]string
	nextID     int
	tempSeq    int
}

// NewVariableStack creates an empty stack, ready for a function's
// outermost block (parameters are declared into it before the body is
// compiled).
func NewVariableStack() *VariableStack {
	return &VariableStack{current: make(map[string]boundVar)}
}

// OpenBlock begins a new lexical block.
func (s *VariableStack) OpenBlock() {
	s.introduced = append(s.introduced, nil)
}

// CloseBlock ends the innermost open block, removing every name it
// introduced so that `{ var x: Int = 0; } x` no longer resolves `x`.
func (s *VariableStack) CloseBlock() {
	if len(s.introduced) == 0 {
		report.ICE("VariableStack.CloseBlock: no open block")
	}
	top := len(s.introduced) - 1
	for _, name := range s.introduced[top] {
		delete(s.current, name)
	}
	s.introduced = s.introduced[:top]
}

// Declare binds name to a fresh variable id in the innermost open block.
// It returns ok=false (without allocating an id) if name is already
// visible, so the caller can raise VariableRedefined citing both
// locations.
func (s *VariableStack) Declare(name string, t typing.Type, at report.Location) (id int, priorAt report.Location, ok bool) {
	if prior, exists := s.current[name]; exists {
		return 0, prior.at, false
	}

	id = s.nextID
	s.nextID++
	s.current[name] = boundVar{id: id, typ: t, at: at}
	if len(s.introduced) > 0 {
		top := len(s.introduced) - 1
		s.introduced[top] = append(s.introduced[top], name)
	}
	return id, report.Location{}, true
}

// Lookup resolves a variable name visible in the current scope chain.
func (s *VariableStack) Lookup(name string) (id int, t typing.Type, ok bool) {
	bv, ok := s.current[name]
	return bv.id, bv.typ, ok
}

// NewTemp allocates a nameless temporary of type t. Its synthesized
// display name `$i` (spec.md §3) is never inserted into `current`, so it
// can never collide with — or be shadowed by — a user-declared name.
func (s *VariableStack) NewTemp(t typing.Type) int {
	id := s.nextID
	s.nextID++
	s.tempSeq++
	return id
}
