// Package compiler wires the three passes (internal/resolve's entity
// collector and member collector, internal/check's Pass 3 assembler)
// into the single library entry point spec.md §6 describes:
// compileSources(sources) → IR Program.
//
// Grounded on ComedicChimera-chai's src/build/compiler.go /
// bootstrap/build's top-level Compile function, which plays the same
// role of sequencing a fixed pass pipeline over a shared context and
// converting a panic-based internal failure into a single returned
// error.
package compiler

import (
	"github.com/verity-lang/verityc/internal/ast"
	"github.com/verity-lang/verityc/internal/check"
	"github.com/verity-lang/verityc/internal/ir"
	"github.com/verity-lang/verityc/internal/report"
	"github.com/verity-lang/verityc/internal/resolve"
)

// CompileSources runs the full three-pass pipeline over sources and
// returns the assembled IR program, or the first semantic error/ICE
// raised anywhere in the pipeline (spec.md §5: compilation is
// all-or-nothing, and a fresh ProgramContext backs every call).
func CompileSources(sources []*ast.Source, reporter *report.Reporter) (prog *ir.Program, err error) {
	defer report.Catch(&err)

	if reporter == nil {
		reporter = report.NewReporter(report.LogLevelSilent)
	}

	reporter.Progress("pass 1: collecting entities")
	pc := resolve.CollectEntities(sources)

	reporter.Progress("pass 2: resolving source contexts and members")
	resolve.ResolveSourceContexts(pc)
	resolve.CollectMembers(pc)

	reporter.Progress("pass 3: checking signatures and bodies")
	prog = check.AssembleProgram(pc)

	reporter.Progress("compilation finished")
	return prog, nil
}
