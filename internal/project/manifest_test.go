package project_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"arkoi/internal/project"
)

func writeManifest(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, project.ManifestName)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write manifest: %v", err)
	}
	return path
}

func TestLoadFullManifest(t *testing.T) {
	dir := t.TempDir()
	path := writeManifest(t, dir, `
[package]
name = "demo"
main = "src/main.ark"

[build]
max_errors = 5
max_diagnostics = 40
jobs = 2
`)

	m, err := project.Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if m.Path != path {
		t.Errorf("Path = %q, want %q", m.Path, path)
	}
	if m.Root != dir {
		t.Errorf("Root = %q, want %q", m.Root, dir)
	}
	if m.Config.Package.Name != "demo" {
		t.Errorf("package.name = %q, want %q", m.Config.Package.Name, "demo")
	}
	if m.Config.Package.Main != "src/main.ark" {
		t.Errorf("package.main = %q, want %q", m.Config.Package.Main, "src/main.ark")
	}
	if m.Config.Build.MaxErrors != 5 {
		t.Errorf("build.max_errors = %d, want 5", m.Config.Build.MaxErrors)
	}
	if m.Config.Build.MaxDiagnostics != 40 {
		t.Errorf("build.max_diagnostics = %d, want 40", m.Config.Build.MaxDiagnostics)
	}
	if m.Config.Build.Jobs != 2 {
		t.Errorf("build.jobs = %d, want 2", m.Config.Build.Jobs)
	}
}

func TestLoadBuildSectionOptional(t *testing.T) {
	dir := t.TempDir()
	path := writeManifest(t, dir, "[package]\nname = \"demo\"\n")

	m, err := project.Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if m.Config.Build.MaxErrors != 0 || m.Config.Build.MaxDiagnostics != 0 || m.Config.Build.Jobs != 0 {
		t.Errorf("expected zero build config, got %+v", m.Config.Build)
	}
}

func TestLoadMissingPackageSection(t *testing.T) {
	dir := t.TempDir()
	path := writeManifest(t, dir, "[build]\njobs = 4\n")

	if _, err := project.Load(path); err == nil {
		t.Fatal("expected error for manifest without [package]")
	} else if !strings.Contains(err.Error(), "[package]") {
		t.Errorf("error %q does not mention the [package] section", err)
	}
}

func TestLoadEmptyPackageName(t *testing.T) {
	dir := t.TempDir()
	path := writeManifest(t, dir, "[package]\nname = \"\"\n")

	if _, err := project.Load(path); err == nil {
		t.Fatal("expected error for empty package.name")
	}
}

func TestLoadInvalidTOML(t *testing.T) {
	dir := t.TempDir()
	path := writeManifest(t, dir, "[package\nname = demo\n")

	if _, err := project.Load(path); err == nil {
		t.Fatal("expected error for malformed TOML")
	}
}

func TestFindWalksUp(t *testing.T) {
	root := t.TempDir()
	want := writeManifest(t, root, "[package]\nname = \"demo\"\n")

	nested := filepath.Join(root, "src", "deep")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatalf("failed to create nested dir: %v", err)
	}

	path, ok, err := project.Find(nested)
	if err != nil {
		t.Fatalf("Find failed: %v", err)
	}
	if !ok {
		t.Fatal("expected to find manifest above nested dir")
	}
	if path != want {
		t.Errorf("Find returned %q, want %q", path, want)
	}
}

func TestFindPrefersNearest(t *testing.T) {
	root := t.TempDir()
	writeManifest(t, root, "[package]\nname = \"outer\"\n")

	inner := filepath.Join(root, "sub")
	if err := os.MkdirAll(inner, 0o755); err != nil {
		t.Fatalf("failed to create inner dir: %v", err)
	}
	want := writeManifest(t, inner, "[package]\nname = \"inner\"\n")

	path, ok, err := project.Find(inner)
	if err != nil {
		t.Fatalf("Find failed: %v", err)
	}
	if !ok || path != want {
		t.Errorf("Find returned (%q, %v), want (%q, true)", path, ok, want)
	}
}

func TestFindAbsent(t *testing.T) {
	dir := t.TempDir()

	path, ok, err := project.Find(dir)
	if err != nil {
		t.Fatalf("Find failed: %v", err)
	}
	if ok {
		t.Errorf("expected no manifest, found %q", path)
	}
}

func TestDiscover(t *testing.T) {
	root := t.TempDir()
	writeManifest(t, root, "[package]\nname = \"demo\"\n\n[build]\njobs = 3\n")

	nested := filepath.Join(root, "pkg")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatalf("failed to create nested dir: %v", err)
	}

	m, ok, err := project.Discover(nested)
	if err != nil {
		t.Fatalf("Discover failed: %v", err)
	}
	if !ok {
		t.Fatal("expected Discover to find the manifest")
	}
	if m.Config.Package.Name != "demo" || m.Config.Build.Jobs != 3 {
		t.Errorf("unexpected config: %+v", m.Config)
	}
}

func TestDiscoverAbsent(t *testing.T) {
	dir := t.TempDir()

	m, ok, err := project.Discover(dir)
	if err != nil {
		t.Fatalf("Discover failed: %v", err)
	}
	if ok || m != nil {
		t.Errorf("expected (nil, false), got (%v, %v)", m, ok)
	}
}

func TestDiscoverInvalidManifest(t *testing.T) {
	dir := t.TempDir()
	writeManifest(t, dir, "[package]\nname = \"\"\n")

	_, ok, err := project.Discover(dir)
	if err == nil {
		t.Fatal("expected error for invalid manifest")
	}
	if !ok {
		t.Error("expected ok=true: the manifest exists even though it is invalid")
	}
}
