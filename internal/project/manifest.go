// Package project locates and loads the defargs.toml manifest that scopes a
// generation run.
package project

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// ManifestName is the file the loader walks up the directory tree for.
const ManifestName = "defargs.toml"

// Defaults for the generation caps. The shape count grows super-
// exponentially in the parameter counts, so generation refuses declarations
// above these bounds unless the manifest raises them.
const (
	DefaultMaxRequired = 6
	DefaultMaxDefaults = 6
)

// Manifest is a located, loaded defargs.toml.
type Manifest struct {
	Path   string // manifest file path
	Root   string // directory containing the manifest
	Config Config
}

// Config mirrors the TOML structure.
type Config struct {
	Package  PackageConfig  `toml:"package"`
	Generate GenerateConfig `toml:"generate"`
}

type PackageConfig struct {
	Name string `toml:"name"`
}

type GenerateConfig struct {
	// OutDir receives generated files; empty means next to the input.
	OutDir string `toml:"out_dir"`
	// MaxRequired caps the required-parameter count per declaration.
	MaxRequired int `toml:"max_required"`
	// MaxDefaults caps the defaulted-parameter count per declaration.
	MaxDefaults int `toml:"max_defaults"`
}

// DefaultConfig returns the configuration used when no manifest exists.
func DefaultConfig() Config {
	return Config{
		Generate: GenerateConfig{
			MaxRequired: DefaultMaxRequired,
			MaxDefaults: DefaultMaxDefaults,
		},
	}
}

// Find walks up from startDir looking for defargs.toml.
func Find(startDir string) (string, bool, error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, ManifestName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}

// Load finds and parses the manifest governing startDir. ok is false when
// no manifest exists; the caller should fall back to DefaultConfig.
func Load(startDir string) (*Manifest, bool, error) {
	path, ok, err := Find(startDir)
	if err != nil || !ok {
		return nil, ok, err
	}
	cfg, err := Parse(path)
	if err != nil {
		return nil, true, err
	}
	return &Manifest{
		Path:   path,
		Root:   filepath.Dir(path),
		Config: cfg,
	}, true, nil
}

// Parse reads one manifest file, filling unset caps with the defaults.
func Parse(path string) (Config, error) {
	var cfg Config
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if !meta.IsDefined("package") {
		return Config{}, fmt.Errorf("%s: missing [package]", path)
	}
	if !meta.IsDefined("package", "name") || strings.TrimSpace(cfg.Package.Name) == "" {
		return Config{}, fmt.Errorf("%s: missing [package].name", path)
	}
	if !meta.IsDefined("generate", "max_required") {
		cfg.Generate.MaxRequired = DefaultMaxRequired
	}
	if !meta.IsDefined("generate", "max_defaults") {
		cfg.Generate.MaxDefaults = DefaultMaxDefaults
	}
	if cfg.Generate.MaxRequired < 0 || cfg.Generate.MaxDefaults < 0 {
		return Config{}, fmt.Errorf("%s: generation caps must not be negative", path)
	}
	return cfg, nil
}

// Starter is the manifest `defargs init` writes.
func Starter(name string) string {
	return fmt.Sprintf(`[package]
name = %q

[generate]
# out_dir = "generated"
max_required = %d
max_defaults = %d
`, name, DefaultMaxRequired, DefaultMaxDefaults)
}
