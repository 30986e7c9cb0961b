package resolve

import (
	"github.com/verity-lang/verityc/internal/ast"
	"github.com/verity-lang/verityc/internal/depm"
	"github.com/verity-lang/verityc/internal/elab"
	"github.com/verity-lang/verityc/internal/ir"
	"github.com/verity-lang/verityc/internal/report"
	"github.com/verity-lang/verityc/internal/typing"
)

// CollectMembers runs Pass 2's member-collection half (spec.md §4.5):
// for every entity, install its type-parameter scope and declared
// constraints, then its fields (records only) and function signatures.
// Every type occurrence here is elaborated in elab.Skip mode, since the
// full entity set needed to check constraints is complete but member
// collection itself runs before pc.HasCollectedMembers flips true.
func CollectMembers(pc *depm.ProgramContext) {
	for _, entity := range pc.EntitiesByCanonical {
		src := pc.SourceContexts[entity.SourceID]
		installTypeParams(entity, src, pc)

		switch def := entity.AST.(type) {
		case ast.RecordDefinition:
			installRecordHeader(entity, def, src, pc)
			collectFields(entity, def, src, pc)
			collectFunctions(entity, def.Fns, src, pc)
		case ast.InterfaceDefinition:
			collectFunctions(entity, def.Fns, src, pc)
		default:
			report.ICE("CollectMembers: unrecognized Definition variant %T", entity.AST)
		}
	}
}

func installTypeParams(entity *depm.EntityDef, src *depm.SourceContext, pc *depm.ProgramContext) {
	list := entity.AST.TypeParams()
	if list == nil {
		return
	}

	for _, tp := range list.Parameters {
		if _, prior, ok := entity.Scope.Declare(tp.Name, tp.Loc()); !ok {
			panic(report.TypeVariableRedefined(tp.Name, prior, tp.Loc()))
		}
	}
	for _, c := range list.Constraints {
		binding := elab.CompileConstraint(c, entity.Scope, nil, src, pc)
		entity.Scope.AddConstraint(binding)
	}
}

// installRecordHeader elaborates a record's own `is Interface[args]`
// header clauses (distinct from type-parameter constraints): the
// subject is always the record's own type applied to its own declared
// type parameters as variables, and the resulting bindings are stored on
// EntityDef.Implements — the declarations elab.Satisfies searches against
// when checking whether some other type argument satisfies a constraint
// (spec.md §4.4).
func installRecordHeader(entity *depm.EntityDef, def ast.RecordDefinition, src *depm.SourceContext, pc *depm.ProgramContext) {
	selfArgs := make([]typing.Type, len(entity.Scope.DebugNames))
	for i := range selfArgs {
		selfArgs[i] = typing.Variable{ID: i}
	}
	self := typing.Compound{RecordID: entity.CanonicalName, TypeArguments: selfArgs}

	for _, c := range def.Implements {
		binding := elab.CompileConstraint(c, entity.Scope, self, src, pc)
		entity.Implements = append(entity.Implements, binding)
	}
}

func collectFields(entity *depm.EntityDef, def ast.RecordDefinition, src *depm.SourceContext, pc *depm.ProgramContext) {
	for _, f := range def.Fields {
		if prior, exists := memberLocation(entity, f.Name); exists {
			panic(report.MemberRedefined(entity.CanonicalName, f.Name, prior, f.NameAt))
		}

		fieldType := elab.CompileType(f.Type, entity.Scope, src, pc, elab.Skip)
		entity.Fields[f.Name] = &depm.FieldDef{Name: f.Name, At: f.NameAt, Type: fieldType}
		entity.FieldOrder = append(entity.FieldOrder, f.Name)
	}
}

func collectFunctions(entity *depm.EntityDef, fns []ast.FnSignature, src *depm.SourceContext, pc *depm.ProgramContext) {
	for _, fn := range fns {
		if prior, exists := memberLocation(entity, fn.Name); exists {
			panic(report.MemberRedefined(entity.CanonicalName, fn.Name, prior, fn.NameAt))
		}

		fnScope := typing.NewChildScope(entity.Scope)
		if fn.TypeParamL != nil {
			for _, tp := range fn.TypeParamL.Parameters {
				if _, prior, ok := fnScope.Declare(tp.Name, tp.Loc()); !ok {
					panic(report.TypeVariableRedefined(tp.Name, prior, tp.Loc()))
				}
			}
			for _, c := range fn.TypeParamL.Constraints {
				binding := elab.CompileConstraint(c, fnScope, nil, src, pc)
				fnScope.AddConstraint(binding)
			}
		}

		params := make([]ir.Parameter, len(fn.Parameters))
		for i, p := range fn.Parameters {
			params[i] = ir.Parameter{Name: p.Name, Type: elab.CompileType(p.Type, fnScope, src, pc, elab.Skip)}
		}

		returns := make([]typing.Type, len(fn.Returns))
		for i, r := range fn.Returns {
			returns[i] = elab.CompileType(r, fnScope, src, pc, elab.Skip)
		}

		sig := ir.FunctionSignature{
			TypeParameters:       typeParamNames(fn.TypeParamL),
			ConstraintParameters: fnScope.Constraints,
			Parameters:           params,
			ReturnTypes:          returns,
		}

		id := entity.CanonicalName + "." + fn.Name
		entity.Functions[fn.Name] = &depm.FnDef{
			ID:        id,
			Name:      fn.Name,
			At:        fn.NameAt,
			Scope:     fnScope,
			Signature: sig,
			AST:       fn,
			HasBody:   fn.Body != nil,
		}
	}
}

func typeParamNames(list *ast.TypeParamList) []string {
	if list == nil {
		return nil
	}
	names := make([]string, len(list.Parameters))
	for i, tp := range list.Parameters {
		names[i] = tp.Name
	}
	return names
}

// memberLocation reports the binding location of an existing field or
// function named name on entity, since the two share one namespace
// (spec.md §4.5).
func memberLocation(entity *depm.EntityDef, name string) (report.Location, bool) {
	if f, ok := entity.Fields[name]; ok {
		return f.At, true
	}
	if fn, ok := entity.Functions[name]; ok {
		return fn.At, true
	}
	return report.Location{}, false
}
