package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func TestLoadConfigMissing(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "config.toml"))
	if err != nil {
		t.Fatalf("expected missing config to be ignored: %v", err)
	}
	if cfg.Output.Less != nil || cfg.Session.Fast != nil {
		t.Fatalf("expected empty config, got %+v", cfg)
	}
}

func TestLoadConfigEmptyPath(t *testing.T) {
	if _, err := LoadConfig(""); err == nil {
		t.Fatalf("expected error for empty path")
	}
}

func TestLoadConfigTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	writeFile(t, path, `
[output]
less = true
no-total = true
color = "never"

[session]
fast = true
`)
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.Output.Less == nil || !*cfg.Output.Less {
		t.Fatalf("expected less=true")
	}
	if cfg.Output.NoTotal == nil || !*cfg.Output.NoTotal {
		t.Fatalf("expected no-total=true")
	}
	if cfg.Output.Color == nil || *cfg.Output.Color != "never" {
		t.Fatalf("expected color=never")
	}
	if cfg.Output.Raw != nil {
		t.Fatalf("expected raw to stay unset")
	}
	if cfg.Session.Fast == nil || !*cfg.Session.Fast {
		t.Fatalf("expected fast=true")
	}
}

func TestLoadConfigYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	writeFile(t, path, "output:\n  quiet: true\n  decorations: always\nsession:\n  recursive: true\n")
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.Output.Quiet == nil || !*cfg.Output.Quiet {
		t.Fatalf("expected quiet=true")
	}
	if cfg.Output.Decorations == nil || *cfg.Output.Decorations != "always" {
		t.Fatalf("expected decorations=always")
	}
	if cfg.Session.Recursive == nil || !*cfg.Session.Recursive {
		t.Fatalf("expected recursive=true")
	}
}

func TestLoadConfigInvalidToggle(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	writeFile(t, path, "[output]\ncolor = \"sometimes\"\n")
	_, err := LoadConfig(path)
	if err == nil || !strings.Contains(err.Error(), "output.color") {
		t.Fatalf("expected invalid color error, got %v", err)
	}
}

func TestLoadConfigMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	writeFile(t, path, "[output\nless = true\n")
	if _, err := LoadConfig(path); err == nil {
		t.Fatalf("expected decode error")
	}
}

func TestResolveConfigPathPrefersTOML(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	appDir := filepath.Join(dir, "numeracal")
	if err := os.MkdirAll(appDir, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	if got := ResolveConfigPath(); got != filepath.Join(appDir, "config.toml") {
		t.Fatalf("expected default toml path, got %s", got)
	}
	writeFile(t, filepath.Join(appDir, "config.yml"), "output: {}\n")
	if got := ResolveConfigPath(); got != filepath.Join(appDir, "config.yml") {
		t.Fatalf("expected yml fallback, got %s", got)
	}
	writeFile(t, filepath.Join(appDir, "config.toml"), "")
	if got := ResolveConfigPath(); got != filepath.Join(appDir, "config.toml") {
		t.Fatalf("expected toml to win, got %s", got)
	}
}
