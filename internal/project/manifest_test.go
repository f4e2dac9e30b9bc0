package project_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"ember/internal/project"
)

func writeManifest(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, project.ManifestName)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadManifest(t *testing.T) {
	dir := t.TempDir()
	path := writeManifest(t, dir, `
[package]
name = "demo"
entry = "src/main.em"

[build]
out = "dist/main.js"
max_diagnostics = 25
`)

	m, err := project.LoadManifest(path)
	if err != nil {
		t.Fatalf("LoadManifest() error = %v", err)
	}
	if m.Package.Name != "demo" {
		t.Errorf("name = %q, want %q", m.Package.Name, "demo")
	}
	if want := filepath.Join(dir, "src", "main.em"); m.EntryPath() != want {
		t.Errorf("EntryPath() = %q, want %q", m.EntryPath(), want)
	}
	if want := filepath.Join(dir, "dist", "main.js"); m.OutPath() != want {
		t.Errorf("OutPath() = %q, want %q", m.OutPath(), want)
	}
	if m.Build.MaxDiagnostics != 25 {
		t.Errorf("max_diagnostics = %d, want 25", m.Build.MaxDiagnostics)
	}
}

func TestLoadManifest_Defaults(t *testing.T) {
	dir := t.TempDir()
	path := writeManifest(t, dir, `
[package]
entry = "main.em"
`)

	m, err := project.LoadManifest(path)
	if err != nil {
		t.Fatalf("LoadManifest() error = %v", err)
	}
	// имя по умолчанию — базовое имя каталога
	if m.Package.Name != filepath.Base(dir) {
		t.Errorf("name = %q, want %q", m.Package.Name, filepath.Base(dir))
	}
	// out по умолчанию — entry с расширением .js
	if want := filepath.Join(dir, "main.js"); m.OutPath() != want {
		t.Errorf("OutPath() = %q, want %q", m.OutPath(), want)
	}
}

func TestLoadManifest_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr error
	}{
		{
			name:    "missing package section",
			content: "[build]\nout = \"x.js\"\n",
			wantErr: project.ErrPackageSectionMissing,
		},
		{
			name:    "missing entry",
			content: "[package]\nname = \"demo\"\n",
			wantErr: project.ErrPackageEntryMissing,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeManifest(t, t.TempDir(), tt.content)
			_, err := project.LoadManifest(path)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestFindEmberToml_WalksUp(t *testing.T) {
	root := t.TempDir()
	writeManifest(t, root, "[package]\nentry = \"main.em\"\n")

	nested := filepath.Join(root, "a", "b")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatal(err)
	}

	path, ok, err := project.FindEmberToml(nested)
	if err != nil {
		t.Fatalf("FindEmberToml() error = %v", err)
	}
	if !ok {
		t.Fatal("manifest not found from nested directory")
	}
	if filepath.Dir(path) != root {
		t.Errorf("found %q, want a manifest in %q", path, root)
	}

	gotRoot, ok, err := project.FindProjectRoot(nested)
	if err != nil || !ok {
		t.Fatalf("FindProjectRoot() = %v, %v", ok, err)
	}
	if gotRoot != root {
		t.Errorf("root = %q, want %q", gotRoot, root)
	}
}

func TestFindEmberToml_NotFound(t *testing.T) {
	_, ok, err := project.FindEmberToml(t.TempDir())
	if err != nil {
		t.Fatalf("FindEmberToml() error = %v", err)
	}
	if ok {
		t.Error("found a manifest where none exists")
	}
}

func TestDigest(t *testing.T) {
	a := project.HashBytes([]byte("let x = 1;"))
	b := project.HashBytes([]byte("let x = 2;"))
	if a == b {
		t.Error("different content hashed to the same digest")
	}
	if a.IsZero() {
		t.Error("digest of real content is zero")
	}
	if (project.Digest{}).IsZero() != true {
		t.Error("zero digest not reported as zero")
	}

	combined := project.Combine(a, b)
	if combined == a || combined == b {
		t.Error("combined digest equals one of its inputs")
	}
	if combined != project.Combine(a, b) {
		t.Error("Combine is not deterministic")
	}
}
