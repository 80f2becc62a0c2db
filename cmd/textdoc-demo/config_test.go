package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfigMissingFile(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.TabWidth != 4 || cfg.EolCode() != "\n" {
		t.Errorf("missing file should yield defaults, got %+v", cfg)
	}
}

func TestLoadConfigOverlay(t *testing.T) {
	path := filepath.Join(t.TempDir(), "demo.toml")
	data := "language = \"go\"\ntab_width = 8\neol = \"crlf\"\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Language != "go" {
		t.Errorf("Language = %q, want %q", cfg.Language, "go")
	}
	if cfg.TabWidth != 8 {
		t.Errorf("TabWidth = %d, want 8", cfg.TabWidth)
	}
	if cfg.EolCode() != "\r\n" {
		t.Errorf("EolCode() = %q, want CRLF", cfg.EolCode())
	}
	// Unset keys keep their defaults.
	if cfg.BracketSearchLimit != 20000 {
		t.Errorf("BracketSearchLimit = %d, want default", cfg.BracketSearchLimit)
	}
}

func TestLoadConfigBadToml(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.toml")
	if err := os.WriteFile(path, []byte("tab_width = ["), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	if _, err := LoadConfig(path); err == nil {
		t.Error("malformed TOML should fail")
	}
}
