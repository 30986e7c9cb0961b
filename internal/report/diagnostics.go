package report

import "fmt"

// This file holds one constructor per semantic error kind enumerated in
// diagnostic.go. Each builds the fragment sequence the core's worked
// examples require (spec.md §8): text interleaved with Location
// fragments so the exact source span is preserved for rendering, not
// flattened into a pre-formatted string.

func EntityRedefined(canonicalName string, first, second Location) *SemanticError {
	return Raise(KindEntityRedefined,
		Text("entity `"+canonicalName+"` is already defined at "),
		At(first),
		Text(", redefined at "),
		At(second),
	)
}

func NoSuchPackage(pkgName string, at Location) *SemanticError {
	return Raise(KindNoSuchPackage, Text("no such package `"+pkgName+"`"), At(at))
}

func NoSuchEntity(pkgName, entityName string, at Location) *SemanticError {
	return Raise(KindNoSuchEntity, Text("package `"+pkgName+"` has no entity named `"+entityName+"`"), At(at))
}

func NamespaceAlreadyDefined(pkgName string, at Location) *SemanticError {
	return Raise(KindNamespaceAlreadyDefined, Text("namespace `"+pkgName+"` is already bound in this source"), At(at))
}

func InvalidThisType(at Location) *SemanticError {
	return Raise(KindInvalidThisType, Text("`This` may only be used inside an interface"), At(at))
}

func MemberRedefined(entityName, memberName string, first, second Location) *SemanticError {
	return Raise(KindMemberRedefined,
		Text("`"+entityName+"` already has a member named `"+memberName+"` defined at "),
		At(first),
		Text(", redefined at "),
		At(second),
	)
}

func TypeVariableRedefined(name string, first, second Location) *SemanticError {
	return Raise(KindTypeVariableRedefined,
		Text("type variable `"+name+"` is already bound at "),
		At(first),
		Text(", redefined at "),
		At(second),
	)
}

func NoSuchTypeVariable(name string, at Location) *SemanticError {
	return Raise(KindNoSuchTypeVariable, Text("no such type variable `"+name+"`"), At(at))
}

func NonTypeEntityUsedAsType(canonicalName string, at Location) *SemanticError {
	return Raise(KindNonTypeEntityUsedAsType, Text("`"+canonicalName+"` is an interface and cannot be used as a type"), At(at))
}

func TypeUsedAsConstraint(name string, at Location) *SemanticError {
	return Raise(KindTypeUsedAsConstraint, Text("`"+name+"` is not an interface and cannot be used as a constraint"), At(at))
}

func VariableRedefined(name string, first, second Location) *SemanticError {
	return Raise(KindVariableRedefined,
		Text("variable `"+name+"` is already declared at "),
		At(first),
		Text(", redefined at "),
		At(second),
	)
}

func VariableNotDefined(name string, at Location) *SemanticError {
	return Raise(KindVariableNotDefined, Text("variable `"+name+"` is not defined"), At(at))
}

// MultiExpressionGrouped reports use of a multi-valued expression where a
// grouping requires exactly one value. grouping is one of "if", "field",
// "method", "contract", "paren", or "operator".
func MultiExpressionGrouped(grouping string, count int, at Location) *SemanticError {
	return Raise(KindMultiExpressionGrouped,
		Text(fmt.Sprintf("%s expects a single value but the expression produces %d", grouping, count)),
		At(at),
	)
}

func ValueCountMismatch(actual, expected int, actualLoc, expectedLoc Location) *SemanticError {
	return Raise(KindValueCountMismatch,
		Text(fmt.Sprintf("expected %d value(s), got %d at ", expected, actual)),
		At(actualLoc),
		Text(" (expected count declared at "),
		At(expectedLoc),
		Text(")"),
	)
}

func TypeMismatch(fromRepr, toRepr string, at Location) *SemanticError {
	return Raise(KindTypeMismatch, Text("cannot use `"+fromRepr+"` as `"+toRepr+"`"), At(at))
}

func FieldAccessOnNonCompound(at Location) *SemanticError {
	return Raise(KindFieldAccessOnNonCompound, Text("field access requires a record type"), At(at))
}

func MethodAccessOnNonCompound(at Location) *SemanticError {
	return Raise(KindMethodAccessOnNonCompound, Text("method access requires a record type"), At(at))
}

// BooleanTypeExpected reports a non-boolean condition. reason is one of
// "if", "contract", or "operator" (an operand of `and`/`or`/`implies`).
func BooleanTypeExpected(reason, gotRepr string, at Location) *SemanticError {
	return Raise(KindBooleanTypeExpected, Text(fmt.Sprintf("%s condition must be `bool`, got `%s`", reason, gotRepr)), At(at))
}

func TypeDoesNotProvideOperator(typeRepr, op string, at Location) *SemanticError {
	return Raise(KindTypeDoesNotProvideOperator, Text("`"+typeRepr+"` does not provide operator `"+op+"`"), At(at))
}

func OperatorTypeMismatch(op, lhsRepr, rhsRepr string, at Location) *SemanticError {
	return Raise(KindOperatorTypeMismatch,
		Text(fmt.Sprintf("operator `%s` expects both operands to agree, got `%s` and `%s`", op, lhsRepr, rhsRepr)),
		At(at),
	)
}

func CallOnNonCompound(at Location) *SemanticError {
	return Raise(KindCallOnNonCompound, Text("static call requires a record type"), At(at))
}

func NoSuchFn(typeRepr, methodName string, at Location) *SemanticError {
	return Raise(KindNoSuchFn, Text("`"+typeRepr+"` has no function named `"+methodName+"`"), At(at))
}

// OperationRequiresParenthesization reports an ambiguous operator chain.
// reason is "unordered" or "non-associative".
func OperationRequiresParenthesization(reason string, at Location) *SemanticError {
	return Raise(KindOperationRequiresParenthesization, Text("operator chain requires explicit parenthesization ("+reason+")"), At(at))
}

func RecursivePrecondition(at Location) *SemanticError {
	return Raise(KindRecursivePrecondition, Text("precondition recursively depends on its own function"), At(at))
}

func ReturnExpressionUsedOutsideEnsures(at Location) *SemanticError {
	return Raise(KindReturnExpressionUsedOutsideEnsures, Text("`return` expression may only appear inside an `ensures` clause"), At(at))
}

func TypesDontSatisfyConstraint(subjectRepr, interfaceRepr string, needed, declared Location) *SemanticError {
	return Raise(KindTypesDontSatisfyConstraint,
		Text("`"+subjectRepr+"` is not `"+interfaceRepr+"`, required at "),
		At(needed),
		Text(", declared at "),
		At(declared),
	)
}

func NonCompoundInRecordLiteral(at Location) *SemanticError {
	return Raise(KindNonCompoundInRecordLiteral, Text("record literal requires a record type"), At(at))
}

func FieldRepeatedInRecordLiteral(fieldName string, first, second Location) *SemanticError {
	return Raise(KindFieldRepeatedInRecordLiteral,
		Text("field `"+fieldName+"` is initialized at "),
		At(first),
		Text(" and again at "),
		At(second),
	)
}

func NoSuchField(typeRepr, fieldName string, at Location) *SemanticError {
	return Raise(KindNoSuchField, Text("`"+typeRepr+"` has no field named `"+fieldName+"`"), At(at))
}

func UninitializedField(typeRepr, fieldName string, at Location) *SemanticError {
	return Raise(KindUninitializedField, Text("field `"+fieldName+"` of `"+typeRepr+"` is never initialized"), At(at))
}

func TypeParameterCountMismatch(canonicalName string, expected, actual int, at Location) *SemanticError {
	return Raise(KindTypeParameterCountMismatch,
		Text(fmt.Sprintf("`%s` expects %d type argument(s), got %d", canonicalName, expected, actual)),
		At(at),
	)
}
