// Command verityc is the thin CLI driver around the semantic core: it
// loads a project manifest, gathers package sources, runs
// compiler.CompileSources, and renders the result.
//
// Grounded on ComedicChimera-chai's src/cmd/execute.go (load module →
// initialize logger → build) and bootstrap/cmd/args.go's hand-rolled flag
// parser — neither tree pulls in a third-party CLI library, so this
// driver doesn't either; it is intentionally thin per spec.md §1's
// exclusion of CLI design from the core's concerns.
package main

import (
	"fmt"
	"io/ioutil"
	"os"
	"path/filepath"
	"time"

	"github.com/verity-lang/verityc/internal/ast"
	"github.com/verity-lang/verityc/internal/compiler"
	"github.com/verity-lang/verityc/internal/project"
	"github.com/verity-lang/verityc/internal/report"
	"github.com/verity-lang/verityc/internal/stubsource"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	projectDir, logLevelOverride, err := parseArgs(args)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 2
	}

	manifest, err := project.LoadManifest(projectDir)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Project Load Error:", err)
		return 1
	}

	logLevel := manifest.LogLevel
	if logLevelOverride >= 0 {
		logLevel = logLevelOverride
	}
	reporter := report.NewReporter(logLevel)

	sources, sourceText, err := gatherSources(manifest)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Source Load Error:", err)
		return 1
	}

	if logLevel >= report.LogLevelVerbose {
		fmt.Printf("compiling project %q: %d package director%s, %d source file%s\n",
			manifest.Name, len(manifest.PackageDirs), pluralSuffix(len(manifest.PackageDirs), "y", "ies"),
			len(sources), pluralSuffix(len(sources), "", "s"))
	}

	start := time.Now()
	prog, err := compiler.CompileSources(sources, reporter)
	elapsed := time.Since(start)

	for _, w := range reporter.Warnings() {
		fmt.Print(report.Render(w, sourceText))
	}
	if logLevel >= report.LogLevelVerbose {
		for _, note := range reporter.Notes() {
			fmt.Println("--", note)
		}
	}

	if err != nil {
		if se, ok := err.(*report.SemanticError); ok {
			fmt.Print(report.Render(se.Diagnostic, sourceText))
		} else {
			fmt.Fprintln(os.Stderr, err)
		}
		fmt.Println(report.Summary(false, 1))
		return 1
	}

	if logLevel >= report.LogLevelVerbose {
		fmt.Printf("assembled %d record(s), %d interface(s), %d function(s) in %s\n",
			len(prog.Records), len(prog.Interfaces), len(prog.Functions), elapsed)
	}
	fmt.Println(report.Summary(true, 0))
	return 0
}

// parseArgs implements the one flag the driver actually needs
// (--loglevel/-ll), hand-rolled the way bootstrap/cmd/args.go rolls its
// own parser rather than reaching for a library. The remaining operand,
// if present, is the project directory; it defaults to the working
// directory.
func parseArgs(args []string) (projectDir string, logLevelOverride int, err error) {
	logLevelOverride = -1
	projectDir = "."

	for i := 0; i < len(args); i++ {
		switch a := args[i]; a {
		case "--loglevel", "-ll":
			if i+1 >= len(args) {
				return "", 0, fmt.Errorf("%s requires a value", a)
			}
			i++
			lv, ok := map[string]int{
				"silent": report.LogLevelSilent, "error": report.LogLevelError,
				"warning": report.LogLevelWarning, "verbose": report.LogLevelVerbose,
			}[args[i]]
			if !ok {
				return "", 0, fmt.Errorf("unrecognized log level %q", args[i])
			}
			logLevelOverride = lv
		default:
			projectDir = a
		}
	}

	abs, err := filepath.Abs(projectDir)
	if err != nil {
		return "", 0, err
	}
	return abs, logLevelOverride, nil
}

// gatherSources walks manifest's package directories, parses every .vfy
// file's header with stubsource.ParseHeader, and returns the resulting
// sources alongside a file-id-keyed source-text table for diagnostic
// rendering.
func gatherSources(manifest *project.Manifest) ([]*ast.Source, map[int]report.SourceText, error) {
	var sources []*ast.Source
	sourceText := make(map[int]report.SourceText)
	fileID := 0

	for _, dir := range manifest.PackageDirs {
		full := filepath.Join(manifest.Root, dir)
		entries, err := ioutil.ReadDir(full)
		if err != nil {
			return nil, nil, err
		}

		for _, entry := range entries {
			if entry.IsDir() || filepath.Ext(entry.Name()) != ".vfy" {
				continue
			}

			path := filepath.Join(full, entry.Name())
			raw, err := ioutil.ReadFile(path)
			if err != nil {
				return nil, nil, err
			}

			src, err := stubsource.ParseHeader(fileID, path, string(raw))
			if err != nil {
				return nil, nil, err
			}

			sources = append(sources, src)
			sourceText[fileID] = report.SourceText{Path: path, Text: string(raw)}
			fileID++
		}
	}

	return sources, sourceText, nil
}

func pluralSuffix(n int, singular, plural string) string {
	if n == 1 {
		return singular
	}
	return plural
}
