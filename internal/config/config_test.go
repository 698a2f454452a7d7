package config

import (
	"os"
	"path/filepath"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestLoadCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	content := `
theme:
  red: "160"
  lock_marker: "x"
gameplay:
  hints_enabled: false
  show_par: true
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.Theme.Red != "160" {
		t.Errorf("Theme.Red = %q, want %q", cfg.Theme.Red, "160")
	}
	if cfg.Theme.LockMarker != "x" {
		t.Errorf("Theme.LockMarker = %q, want %q", cfg.Theme.LockMarker, "x")
	}
	if cfg.Gameplay.HintsEnabled {
		t.Error("Gameplay.HintsEnabled = true, want false")
	}
	if !cfg.Gameplay.ShowPar {
		t.Error("Gameplay.ShowPar = false, want true")
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("Load() succeeded for a missing custom path, want error")
	}

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(bad, []byte("{{{"), 0o644); err != nil {
		t.Fatalf("writing config: %v", err)
	}
	if _, err := Load(bad); err == nil {
		t.Error("Load() succeeded for malformed YAML, want error")
	}
}

func TestDefaultConfigMatchesEmbedded(t *testing.T) {
	// The embedded defaults file and the hardcoded fallback must agree, or
	// behavior would depend on which fallback path was taken.
	var embedded Config
	if err := yaml.Unmarshal(defaultConfigYAML, &embedded); err != nil {
		t.Fatalf("embedded config is invalid: %v", err)
	}
	if embedded != DefaultConfig() {
		t.Errorf("embedded config %+v differs from DefaultConfig() %+v", embedded, DefaultConfig())
	}
}
