package elab

import (
	"github.com/verity-lang/verityc/internal/ast"
	"github.com/verity-lang/verityc/internal/depm"
	"github.com/verity-lang/verityc/internal/report"
	"github.com/verity-lang/verityc/internal/typing"
)

// CompileConstraint elaborates one `T is InterfaceName[args...]` clause
// (spec.md §4.4): InterfaceName must resolve to an interface entity, and
// the subject plus every argument are elaborated as types under scope.
// Constraints are always compiled in Skip mode, since they are installed
// during member collection before any record's constraint list can be
// checked against others.
//
// selfSubject distinguishes the two syntactic positions a constraint can
// appear in: nil when c comes from a type-parameter list (the subject is
// one of that list's own type variables, looked up by c.SubjectName in
// scope), non-nil when c comes from a record header's `is Interface`
// clause (the subject is the record's own type, selfSubject, regardless
// of c.SubjectName).
func CompileConstraint(c ast.ConstraintSyntax, scope *typing.TypeScope, selfSubject typing.Type, src *depm.SourceContext, pc *depm.ProgramContext) typing.ConstraintBinding {
	named, ok := c.Interface.(ast.NamedTypeRef)
	if !ok {
		panic(report.TypeUsedAsConstraint("<non-entity type>", c.Interface.Loc()))
	}

	canonical := ResolveEntityName(named.Package, named.Name, named.NameAt, src, pc)
	entity, ok := pc.LookupEntity(canonical)
	if !ok {
		report.ICE("CompileConstraint: %q resolved but is not registered", canonical)
	}
	if entity.Kind != depm.KindInterface {
		panic(report.TypeUsedAsConstraint(canonical, named.Loc()))
	}

	var subject typing.Type
	if selfSubject != nil {
		subject = selfSubject
	} else {
		subjectID, subjectOK := scope.Lookup(c.SubjectName)
		if !subjectOK {
			panic(report.NoSuchTypeVariable(c.SubjectName, c.SubjectAt))
		}
		subject = typing.Variable{ID: subjectID}
	}

	args := make([]typing.Type, 0, len(named.Arguments)+1)
	args = append(args, subject)
	for _, a := range named.Arguments {
		args = append(args, CompileType(a, scope, src, pc, Skip))
	}

	return typing.ConstraintBinding{InterfaceID: canonical, Subjects: args, At: c.Loc()}
}

// Satisfies searches for a declaration matching need (spec.md §4.4) in
// two places, part (a) before part (b):
//
//   - (a) scope's own ambient Constraints list — the type-parameter
//     constraints declared on the entity/function whose body is being
//     checked, still expressed in terms of that scope's own type
//     variables. This is what lets a still-generic subject (e.g. a
//     function's own `#U is Good`) discharge a constraint on a type it
//     instantiates (e.g. `A[U]` requiring `#T is Good`) without U ever
//     becoming concrete.
//   - (b) every record entity's `is Interface` header, for constraints
//     discharged by a concrete record declaring conformance.
//
// A constraint is satisfied iff some available declaration's subjects
// are structurally equal to need's subjects. Declarations are compared
// as stored: a declaration's own type parameters are not substituted, so
// for a fully concrete need (spec.md §8's "Constraint satisfaction
// totality" property) the declaration must itself be fully concrete and
// equal, and a generic record's `is Interface` header matches no
// concrete instantiation of that record.
//
// This resolves spec.md §9's open question: the search is a real
// structural-equality scan, not the source's always-fail TODO.
func Satisfies(need typing.ConstraintBinding, scope *typing.TypeScope, pc *depm.ProgramContext) bool {
	for _, decl := range scope.Constraints {
		if constraintEquals(need, decl) {
			return true
		}
	}

	for _, entity := range pc.EntitiesByCanonical {
		if entity.Kind != depm.KindRecord {
			continue
		}
		for _, decl := range entity.Implements {
			if constraintEquals(need, decl) {
				return true
			}
		}
	}
	return false
}

func constraintEquals(a, b typing.ConstraintBinding) bool {
	if a.InterfaceID != b.InterfaceID || len(a.Subjects) != len(b.Subjects) {
		return false
	}
	for i := range a.Subjects {
		if !typing.Equals(a.Subjects[i], b.Subjects[i]) {
			return false
		}
	}
	return true
}
