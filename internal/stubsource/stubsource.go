// Package stubsource is a placeholder for the lexer/parser spec.md §1
// excludes from the core's scope. It recognizes just enough of a `.vfy`
// file's header — a leading `package <name>;` clause — to hand
// compiler.CompileSources a well-formed, if empty, ast.Source, so the CLI
// driver and the three-pass pipeline can be wired and exercised end to
// end without a real grammar. Real record/interface definitions must be
// constructed directly as ast.Source values (as the package tests in
// internal/resolve and internal/compiler do) until a full parser exists.
//
// Grounded on ComedicChimera-chai's bootstrap/lexer package shape (a
// small hand-rolled scanner with no third-party dependency), reduced to
// the one clause this repository's pipeline actually needs from it.
package stubsource

import (
	"fmt"
	"strings"

	"github.com/verity-lang/verityc/internal/ast"
	"github.com/verity-lang/verityc/internal/report"
)

// ParseHeader scans text for a leading `package <name>;` clause and
// returns an otherwise-empty ast.Source for it. fileID is the caller's
// chosen id for this file, threaded onto every Location the real parser
// would eventually produce.
func ParseHeader(fileID int, path, text string) (*ast.Source, error) {
	trimmed := strings.TrimLeft(text, " \t\r\n")
	if !strings.HasPrefix(trimmed, "package ") {
		return nil, fmt.Errorf("%s: expected a leading `package <name>;` clause", path)
	}

	rest := strings.TrimPrefix(trimmed, "package ")
	end := strings.IndexByte(rest, ';')
	if end < 0 {
		return nil, fmt.Errorf("%s: `package` clause missing terminating `;`", path)
	}

	name := strings.TrimSpace(rest[:end])
	if name == "" {
		return nil, fmt.Errorf("%s: empty package name", path)
	}

	offset := len(text) - len(trimmed)
	loc := report.Location{FileID: fileID, Offset: offset, Length: len("package " + name)}

	return &ast.Source{
		NodeBase:    ast.NodeBase{At: loc},
		FileID:      fileID,
		PackageName: name,
		PackageLoc:  loc,
	}, nil
}
