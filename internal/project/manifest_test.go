package project

import (
	"os"
	"path/filepath"
	"testing"
)

func writeManifest(t *testing.T, contents string) string {
	t.Helper()
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, ManifestFileName), []byte(contents), 0o644); err != nil {
		t.Fatalf("writing manifest fixture: %v", err)
	}
	return dir
}

func TestLoadManifestBasic(t *testing.T) {
	dir := writeManifest(t, `
[project]
name = "example"
packages = ["src", "src/util"]
log-level = "verbose"
`)

	m, err := LoadManifest(dir)
	if err != nil {
		t.Fatalf("LoadManifest returned error: %v", err)
	}

	if m.Name != "example" {
		t.Fatalf("Name = %q, want example", m.Name)
	}
	if len(m.PackageDirs) != 2 || m.PackageDirs[0] != "src" || m.PackageDirs[1] != "src/util" {
		t.Fatalf("PackageDirs unexpected: %#v", m.PackageDirs)
	}
	if m.LogLevel != 3 {
		t.Fatalf("LogLevel = %d, want 3 (verbose)", m.LogLevel)
	}
}

func TestLoadManifestDefaultLogLevel(t *testing.T) {
	dir := writeManifest(t, `
[project]
name = "example"
packages = ["src"]
`)

	m, err := LoadManifest(dir)
	if err != nil {
		t.Fatalf("LoadManifest returned error: %v", err)
	}
	if m.LogLevel != 1 {
		t.Fatalf("LogLevel = %d, want 1 (error, the default)", m.LogLevel)
	}
}

func TestLoadManifestMissingName(t *testing.T) {
	dir := writeManifest(t, `
[project]
packages = ["src"]
`)

	if _, err := LoadManifest(dir); err == nil {
		t.Fatal("expected an error for a manifest with no project name")
	}
}

func TestLoadManifestInvalidIdentifier(t *testing.T) {
	dir := writeManifest(t, `
[project]
name = "123-not-an-identifier"
packages = ["src"]
`)

	if _, err := LoadManifest(dir); err == nil {
		t.Fatal("expected an error for an invalid project name")
	}
}

func TestLoadManifestNoPackages(t *testing.T) {
	dir := writeManifest(t, `
[project]
name = "example"
packages = []
`)

	if _, err := LoadManifest(dir); err == nil {
		t.Fatal("expected an error for a manifest with no package directories")
	}
}

func TestLoadManifestUnrecognizedLogLevel(t *testing.T) {
	dir := writeManifest(t, `
[project]
name = "example"
packages = ["src"]
log-level = "deafening"
`)

	if _, err := LoadManifest(dir); err == nil {
		t.Fatal("expected an error for an unrecognized log-level")
	}
}

func TestLoadManifestMissingFile(t *testing.T) {
	dir := t.TempDir()
	if _, err := LoadManifest(dir); err == nil {
		t.Fatal("expected an error when verity.toml does not exist")
	}
}
