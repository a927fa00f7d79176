package project

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
)

// Manifest is a parsed sheeppig.toml.
//
//	[package]
//	name = "demo"
//	version = "0.1.0"
//
//	[source]
//	dir = "src"
//	main = "main.sp"
type Manifest struct {
	Package PackageConfig `toml:"package"`
	Source  SourceConfig  `toml:"source"`
}

// PackageConfig is the [package] section.
type PackageConfig struct {
	Name    string `toml:"name"`
	Version string `toml:"version"`
}

// SourceConfig is the [source] section. Dir is the source root relative
// to the manifest; Main is the entry file relative to Dir.
type SourceConfig struct {
	Dir  string `toml:"dir"`
	Main string `toml:"main"`
}

// ManifestFileName is the file the project root is identified by.
const ManifestFileName = "sheeppig.toml"

// LoadManifest parses and validates a sheeppig.toml.
func LoadManifest(path string) (Manifest, error) {
	var m Manifest
	meta, err := toml.DecodeFile(path, &m)
	if err != nil {
		return Manifest{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if !meta.IsDefined("package") {
		return Manifest{}, fmt.Errorf("%s: missing [package]", path)
	}
	if !meta.IsDefined("package", "name") || strings.TrimSpace(m.Package.Name) == "" {
		return Manifest{}, fmt.Errorf("%s: missing [package].name", path)
	}
	if m.Source.Dir == "" {
		m.Source.Dir = "src"
	}
	if m.Source.Main == "" {
		m.Source.Main = "main.sp"
	}
	return m, nil
}

// SaveManifest writes the manifest as TOML, creating or replacing path.
func SaveManifest(path string, m Manifest) error {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(m); err != nil {
		return fmt.Errorf("%s: failed to encode TOML: %w", path, err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
