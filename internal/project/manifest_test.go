package project

import (
	"os"
	"path/filepath"
	"testing"
)

func writeManifest(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, ManifestName)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestParse_FillsDefaults(t *testing.T) {
	dir := t.TempDir()
	path := writeManifest(t, dir, "[package]\nname = \"demo\"\n")

	cfg, err := Parse(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Package.Name != "demo" {
		t.Errorf("name = %q", cfg.Package.Name)
	}
	if cfg.Generate.MaxRequired != DefaultMaxRequired || cfg.Generate.MaxDefaults != DefaultMaxDefaults {
		t.Errorf("caps = %d/%d, want defaults", cfg.Generate.MaxRequired, cfg.Generate.MaxDefaults)
	}
}

func TestParse_ExplicitCaps(t *testing.T) {
	dir := t.TempDir()
	path := writeManifest(t, dir, `
[package]
name = "demo"

[generate]
out_dir = "gen"
max_required = 3
max_defaults = 0
`)

	cfg, err := Parse(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Generate.OutDir != "gen" {
		t.Errorf("out_dir = %q", cfg.Generate.OutDir)
	}
	if cfg.Generate.MaxRequired != 3 {
		t.Errorf("max_required = %d, want 3", cfg.Generate.MaxRequired)
	}
	if cfg.Generate.MaxDefaults != 0 {
		t.Errorf("max_defaults = %d, want explicit 0", cfg.Generate.MaxDefaults)
	}
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"missing package", "[generate]\nmax_required = 2\n"},
		{"missing name", "[package]\n"},
		{"blank name", "[package]\nname = \" \"\n"},
		{"negative cap", "[package]\nname = \"x\"\n[generate]\nmax_required = -1\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			path := writeManifest(t, dir, tt.content)
			if _, err := Parse(path); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestLoad_WalksUp(t *testing.T) {
	root := t.TempDir()
	writeManifest(t, root, "[package]\nname = \"demo\"\n")
	nested := filepath.Join(root, "a", "b")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatal(err)
	}

	m, ok, err := Load(nested)
	if err != nil || !ok {
		t.Fatalf("Load = %v, %v", ok, err)
	}
	if m.Root != root {
		t.Errorf("Root = %q, want %q", m.Root, root)
	}
}

func TestLoad_NoManifest(t *testing.T) {
	dir := t.TempDir()
	_, ok, err := Load(dir)
	if err != nil {
		t.Fatal(err)
	}
	if ok {
		t.Error("unexpected manifest found in empty temp dir")
	}
}

func TestStarter_RoundTrips(t *testing.T) {
	dir := t.TempDir()
	path := writeManifest(t, dir, Starter("demo"))

	cfg, err := Parse(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Package.Name != "demo" {
		t.Errorf("name = %q", cfg.Package.Name)
	}
}
