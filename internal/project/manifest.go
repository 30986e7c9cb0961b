// Package project loads the verityc project manifest (verity.toml): the
// module name, the package directories to compile, and reporting options.
//
// Grounded on ComedicChimera-chai's src/mods/load.go, which decodes a
// chai.toml module file into a tomlModuleFile/tomlModule pair with
// github.com/pelletier/go-toml and then validates it into a ChaiModule.
// verityc has no dependency graph or build-profile system to mirror (the
// core never links or generates code), so this package keeps only the
// manifest-decoding and validation shape, not module resolution/fetching.
package project

import (
	"fmt"
	"io/ioutil"
	"os"
	"path/filepath"
	"regexp"

	"github.com/pelletier/go-toml"

	"github.com/verity-lang/verityc/internal/report"
)

// ManifestFileName is the on-disk name LoadManifest looks for, mirroring
// common.ModuleFileName's role in the teacher.
const ManifestFileName = "verity.toml"

// tomlManifestFile mirrors src/mods/load.go's tomlModuleFile: a single
// top-level table wrapping the actual manifest contents.
type tomlManifestFile struct {
	Project *tomlProject `toml:"project"`
}

// tomlProject mirrors tomlModule's shape, trimmed to what verityc's driver
// actually consumes: no dependency/profile system since there is no
// linker or code generator downstream of the core.
type tomlProject struct {
	Name     string   `toml:"name"`
	Packages []string `toml:"packages"`
	LogLevel string   `toml:"log-level,omitempty"`
}

// Manifest is the validated, in-memory form of a project's verity.toml.
type Manifest struct {
	// Root is the directory containing verity.toml.
	Root string
	// Name is the project's identifier.
	Name string
	// PackageDirs are the package directories (relative to Root) declared
	// in the manifest's "packages" list; LoadManifest does not check that
	// they exist.
	PackageDirs []string
	// LogLevel is one of report's LogLevel constants, resolved from the
	// manifest's "log-level" string.
	LogLevel int
}

var identifierPattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// logLevelNames maps the manifest's "log-level" string to report's
// LogLevel constants, mirroring mods/load.go's osNames/archNames/
// formatNames string-to-enum table pattern.
var logLevelNames = map[string]int{
	"silent":  report.LogLevelSilent,
	"error":   report.LogLevelError,
	"warning": report.LogLevelWarning,
	"verbose": report.LogLevelVerbose,
}

// LoadManifest reads and validates verity.toml from dir, the way
// mods.LoadModule reads and validates a module's chai.toml.
func LoadManifest(dir string) (*Manifest, error) {
	f, err := os.Open(filepath.Join(dir, ManifestFileName))
	if err != nil {
		return nil, err
	}
	defer f.Close()

	buf, err := ioutil.ReadAll(f)
	if err != nil {
		return nil, err
	}

	tmf := &tomlManifestFile{}
	if err := toml.Unmarshal(buf, tmf); err != nil {
		return nil, err
	}

	if tmf.Project == nil {
		return nil, fmt.Errorf("%s: missing [project] table", ManifestFileName)
	}

	m := &Manifest{Root: dir}
	if err := validateProject(m, tmf.Project); err != nil {
		return nil, err
	}
	return m, nil
}

// validateProject mirrors mods/load.go's validateModule: it checks the
// project name is a valid identifier, that at least one package directory
// is declared, and resolves the log-level string.
func validateProject(m *Manifest, p *tomlProject) error {
	if p.Name == "" {
		return fmt.Errorf("missing project name in %s", ManifestFileName)
	}
	if !identifierPattern.MatchString(p.Name) {
		return fmt.Errorf("project name %q must be a valid identifier", p.Name)
	}
	if len(p.Packages) == 0 {
		return fmt.Errorf("project %q must declare at least one package directory", p.Name)
	}

	level := p.LogLevel
	if level == "" {
		level = "error"
	}
	lv, ok := logLevelNames[level]
	if !ok {
		return fmt.Errorf("project %q: unrecognized log-level %q", p.Name, level)
	}

	m.Name = p.Name
	m.PackageDirs = p.Packages
	m.LogLevel = lv
	return nil
}
