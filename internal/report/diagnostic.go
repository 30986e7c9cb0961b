package report

import (
	"fmt"
	"strings"
)

// Kind enumerates the semantic error taxonomy enumerated in the core's
// error handling design. Every user-visible failure carries exactly one
// Kind.
type Kind string

// Enumeration of semantic error kinds. Names mirror the taxonomy exactly
// so that a caller can switch on Kind without consulting prose.
const (
	KindEntityRedefined                  Kind = "EntityRedefined"
	KindNoSuchPackage                    Kind = "NoSuchPackage"
	KindNoSuchEntity                     Kind = "NoSuchEntity"
	KindNamespaceAlreadyDefined          Kind = "NamespaceAlreadyDefined"
	KindInvalidThisType                  Kind = "InvalidThisType"
	KindMemberRedefined                  Kind = "MemberRedefined"
	KindTypeVariableRedefined            Kind = "TypeVariableRedefined"
	KindNoSuchTypeVariable               Kind = "NoSuchTypeVariable"
	KindNonTypeEntityUsedAsType          Kind = "NonTypeEntityUsedAsType"
	KindTypeUsedAsConstraint             Kind = "TypeUsedAsConstraint"
	KindVariableRedefined                Kind = "VariableRedefined"
	KindVariableNotDefined               Kind = "VariableNotDefined"
	KindMultiExpressionGrouped           Kind = "MultiExpressionGrouped"
	KindValueCountMismatch               Kind = "ValueCountMismatch"
	KindTypeMismatch                     Kind = "TypeMismatch"
	KindFieldAccessOnNonCompound         Kind = "FieldAccessOnNonCompound"
	KindMethodAccessOnNonCompound        Kind = "MethodAccessOnNonCompound"
	KindBooleanTypeExpected              Kind = "BooleanTypeExpected"
	KindTypeDoesNotProvideOperator       Kind = "TypeDoesNotProvideOperator"
	KindOperatorTypeMismatch             Kind = "OperatorTypeMismatch"
	KindCallOnNonCompound                Kind = "CallOnNonCompound"
	KindNoSuchFn                         Kind = "NoSuchFn"
	KindOperationRequiresParenthesization Kind = "OperationRequiresParenthesization"
	KindRecursivePrecondition            Kind = "RecursivePrecondition"
	KindReturnExpressionUsedOutsideEnsures Kind = "ReturnExpressionUsedOutsideEnsures"
	KindTypesDontSatisfyConstraint        Kind = "TypesDontSatisfyConstraint"
	KindNonCompoundInRecordLiteral        Kind = "NonCompoundInRecordLiteral"
	KindFieldRepeatedInRecordLiteral       Kind = "FieldRepeatedInRecordLiteral"
	KindNoSuchField                       Kind = "NoSuchField"
	KindUninitializedField                Kind = "UninitializedField"
	KindTypeParameterCountMismatch         Kind = "TypeParameterCountMismatch"
)

// Fragment is one piece of a structured diagnostic message: either literal
// text or a reference to a source location. Exactly one of Text or At
// (signaled by HasLocation) is meaningful.
type Fragment struct {
	Text        string
	At          Location
	HasLocation bool
}

// Text builds a plain-text fragment.
func Text(s string) Fragment {
	return Fragment{Text: s}
}

// At builds a location fragment.
func At(loc Location) Fragment {
	return Fragment{At: loc, HasLocation: true}
}

// Diagnostic is the structured, user-visible message carried by a
// SemanticError. Diagnostic construction is eager: it is built at the
// point of detection by the constructor functions in diagnostics.go and
// never mutated afterward.
type Diagnostic struct {
	Kind      Kind
	Fragments []Fragment
	IsError   bool
}

// Plain renders the diagnostic as an unstructured string, concatenating
// text fragments and rendering each location inline. This is used by
// SemanticError.Error(); internal/report/render.go renders the same diagnostic with source
// context and color for the CLI driver.
func (d Diagnostic) Plain() string {
	var sb strings.Builder
	for _, f := range d.Fragments {
		if f.HasLocation {
			sb.WriteString(f.At.String())
		} else {
			sb.WriteString(f.Text)
		}
	}
	return sb.String()
}

// SemanticError is the error type returned by compileSources on any
// user-visible failure. There is at most one SemanticError per failing
// elaboration: propagation is all-or-nothing, so the first diagnostic
// raised is the one returned.
type SemanticError struct {
	Diagnostic Diagnostic
}

func (e *SemanticError) Error() string {
	return string(e.Diagnostic.Kind) + ": " + e.Diagnostic.Plain()
}

// Raise builds a SemanticError from a kind and a sequence of fragments.
// Callers panic with the result so that deeply nested elaboration
// functions can unwind to the top of compileSources without threading an
// error return through every call, mirroring bootstrap/report's
// Raise+CatchErrors convention.
func Raise(kind Kind, fragments ...Fragment) *SemanticError {
	return &SemanticError{Diagnostic: Diagnostic{Kind: kind, Fragments: fragments, IsError: true}}
}

// iceError is the panic payload for internal consistency faults.
type iceError struct {
	message string
}

func (e iceError) Error() string {
	return "ICE: " + e.message
}

// ICE panics to report an internal consistency fault: a violated invariant
// that should be unreachable if the rest of the elaborator is correct.
func ICE(format string, args ...interface{}) {
	panic(iceError{message: fmt.Sprintf(format, args...)})
}
