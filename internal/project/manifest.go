package project

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Manifest describes an ember.toml project file.
type Manifest struct {
	// Directory containing the manifest, absolute.
	Dir string

	Package PackageSection
	Build   BuildSection
}

// PackageSection is the [package] table.
type PackageSection struct {
	Name  string `toml:"name"`
	Entry string `toml:"entry"`
}

// BuildSection is the [build] table. Все поля опциональны.
type BuildSection struct {
	Out            string `toml:"out"`
	MaxDiagnostics int    `toml:"max_diagnostics"`
	Jobs           int    `toml:"jobs"`
}

var (
	// ErrPackageSectionMissing indicates that [package] is missing in a manifest.
	ErrPackageSectionMissing = errors.New("missing [package]")
	// ErrPackageEntryMissing indicates that [package].entry is missing in a manifest.
	ErrPackageEntryMissing = errors.New("missing [package].entry")
)

type manifestFile struct {
	Package PackageSection `toml:"package"`
	Build   BuildSection   `toml:"build"`
}

// LoadManifest parses ember.toml at path.
// Relative paths inside the manifest are resolved against its directory.
func LoadManifest(path string) (*Manifest, error) {
	var cfg manifestFile
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if !meta.IsDefined("package") {
		return nil, fmt.Errorf("%s: %w", path, ErrPackageSectionMissing)
	}
	if cfg.Package.Entry == "" {
		return nil, fmt.Errorf("%s: %w", path, ErrPackageEntryMissing)
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	m := &Manifest{
		Dir:     filepath.Dir(abs),
		Package: cfg.Package,
		Build:   cfg.Build,
	}
	if m.Package.Name == "" {
		m.Package.Name = filepath.Base(m.Dir)
	}
	return m, nil
}

// EntryPath возвращает абсолютный путь к входному файлу.
func (m *Manifest) EntryPath() string {
	return m.resolve(m.Package.Entry)
}

// OutPath returns the output path, defaulting to the entry with a .js extension.
func (m *Manifest) OutPath() string {
	if m.Build.Out != "" {
		return m.resolve(m.Build.Out)
	}
	entry := m.EntryPath()
	ext := filepath.Ext(entry)
	return entry[:len(entry)-len(ext)] + ".js"
}

func (m *Manifest) resolve(p string) string {
	if filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(m.Dir, p)
}
