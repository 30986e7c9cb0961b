package typing

import "github.com/verity-lang/verityc/internal/report"

// ConstraintBinding is a single `T is InterfaceName[args...]` requirement:
// the interface to satisfy, and the full subject list (the constrained
// type followed by the interface's own type arguments), per spec.md §3.
type ConstraintBinding struct {
	InterfaceID string
	Subjects    []Type
	At          report.Location
}

// Substitute returns the constraint binding with every subject run
// through Substitute(args). Used when checking whether a concrete
// instantiation of a generic record satisfies the constraints it
// declared on its own type parameters.
func (c ConstraintBinding) Substitute(args []Type) ConstraintBinding {
	subjects := make([]Type, len(c.Subjects))
	for i, s := range c.Subjects {
		subjects[i] = Substitute(s, args)
	}
	return ConstraintBinding{InterfaceID: c.InterfaceID, Subjects: subjects, At: c.At}
}

// TypeScope is the set of type variables and constraints visible inside
// one entity or function signature (spec.md §3). Interface scopes seed
// ThisType as type-variable 0 with debug name "This"; record scopes start
// empty with no ThisType. Type-variable ids are assigned in declaration
// order starting at len(DebugNames) at the time of declaration, so
// interface-scope user variables begin at id 1.
type TypeScope struct {
	// HasThis represents the optional `thisType`: when it is true, the
	// scope's `This` is always Variable{ID: 0}.
	HasThis bool

	// names maps a textual type-variable name to its id and the location
	// where it was bound.
	names map[string]boundVar

	// DebugNames is the ordered list of type-variable display names; its
	// length is also the next id to assign.
	DebugNames []string

	// Constraints is the ordered list of constraint bindings declared in
	// this scope (from a type-parameter clause's `| T is I[...]` list).
	Constraints []ConstraintBinding
}

type boundVar struct {
	ID int
	At report.Location
}

// NewRecordScope creates an empty TypeScope with no `This` binding, for a
// record entity or a free-standing function signature.
func NewRecordScope() *TypeScope {
	return &TypeScope{names: make(map[string]boundVar)}
}

// NewInterfaceScope creates a TypeScope seeded with `This` as
// type-variable 0, for an interface entity.
func NewInterfaceScope() *TypeScope {
	return &TypeScope{
		HasThis:    true,
		names:      make(map[string]boundVar),
		DebugNames: []string{"This"},
	}
}

// NewChildScope creates a TypeScope pre-seeded with everything visible
// in parent (its `This` binding, its bound type-variable names, and its
// constraints), ready to accept additional bindings of its own. Used to
// build a function's type scope as an extension of its enclosing
// entity's scope (spec.md §4.9): the function's own type parameters
// continue numbering from parent's DebugNames length, so they never
// collide with the entity's ids.
func NewChildScope(parent *TypeScope) *TypeScope {
	names := make(map[string]boundVar, len(parent.names))
	for k, v := range parent.names {
		names[k] = v
	}
	return &TypeScope{
		HasThis:     parent.HasThis,
		names:       names,
		DebugNames:  append([]string(nil), parent.DebugNames...),
		Constraints: append([]ConstraintBinding(nil), parent.Constraints...),
	}
}

// ThisType returns Variable{0} if the scope has a `This` binding.
func (s *TypeScope) ThisType() (Type, bool) {
	if s.HasThis {
		return Variable{ID: 0}, true
	}
	return nil, false
}

// Declare binds a new type-variable name, returning its assigned id. It
// returns ok=false (without mutating the scope) if name is already bound,
// so the caller can raise TypeVariableRedefined citing both locations.
func (s *TypeScope) Declare(name string, at report.Location) (id int, priorAt report.Location, ok bool) {
	if prior, exists := s.names[name]; exists {
		return 0, prior.At, false
	}

	id = len(s.DebugNames)
	s.names[name] = boundVar{ID: id, At: at}
	s.DebugNames = append(s.DebugNames, name)
	return id, report.Location{}, true
}

// Lookup resolves a type-variable name to its id.
func (s *TypeScope) Lookup(name string) (id int, ok bool) {
	bv, ok := s.names[name]
	return bv.ID, ok
}

// AddConstraint appends a constraint binding declared in this scope.
func (s *TypeScope) AddConstraint(c ConstraintBinding) {
	s.Constraints = append(s.Constraints, c)
}
