package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDiagnostics_Defaults(t *testing.T) {
	cfg, err := LoadDiagnostics("")
	if err != nil {
		t.Fatalf("LoadDiagnostics: %v", err)
	}
	if cfg.Log.Level != "" || cfg.Log.JSON {
		t.Fatalf("unexpected log defaults: %+v", cfg.Log)
	}
	if cfg.Color != ColorAuto {
		t.Fatalf("want color auto, got %q", cfg.Color)
	}
}

func TestLoadDiagnostics_MissingFileTolerated(t *testing.T) {
	cfg, err := LoadDiagnostics(filepath.Join(t.TempDir(), "absent.yml"))
	if err != nil {
		t.Fatalf("missing file should not fail: %v", err)
	}
	if cfg.Color != ColorAuto {
		t.Fatalf("want color auto, got %q", cfg.Color)
	}
}

func TestLoadDiagnostics_FileAndEnv(t *testing.T) {
	dir := t.TempDir()
	yml := []byte(`schema_version: v1
log:
  level: warn
  json: true
color: never
`)
	path := filepath.Join(dir, "fixerrors.yml")
	if err := os.WriteFile(path, yml, 0o644); err != nil {
		t.Fatalf("write diagnostics: %v", err)
	}

	cfg, err := LoadDiagnostics(path)
	if err != nil {
		t.Fatalf("LoadDiagnostics: %v", err)
	}
	if cfg.Log.Level != "warn" || !cfg.Log.JSON || cfg.Color != ColorNever {
		t.Fatalf("file values not applied: %+v", cfg)
	}

	// env overlays the file
	t.Setenv("FIXERRORS__LOG__LEVEL", "debug")
	t.Setenv("FIXERRORS__COLOR", "always")
	cfg, err = LoadDiagnostics(path)
	if err != nil {
		t.Fatalf("LoadDiagnostics with env: %v", err)
	}
	if cfg.Log.Level != "debug" || cfg.Color != ColorAlways {
		t.Fatalf("env overrides not applied: %+v", cfg)
	}
}

// Nested keys must survive the provider's unflattening: LOG__LEVEL maps
// to log.level, not to a flat "log.level" key Unmarshal cannot reach.
func TestLoadDiagnostics_EnvOnlyNestedKeys(t *testing.T) {
	t.Setenv("FIXERRORS__LOG__LEVEL", "debug")
	t.Setenv("FIXERRORS__LOG__JSON", "true")

	cfg, err := LoadDiagnostics("")
	if err != nil {
		t.Fatalf("LoadDiagnostics: %v", err)
	}
	if cfg.Log.Level != "debug" {
		t.Fatalf("env override lost: Log.Level = %q, want %q", cfg.Log.Level, "debug")
	}
	if !cfg.Log.JSON {
		t.Fatalf("env override lost: Log.JSON = false, want true")
	}
}

func TestLoadDiagnostics_InvalidSchema(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "fixerrors.yml")
	if err := os.WriteFile(path, []byte("schema_version: v999\n"), 0o644); err != nil {
		t.Fatalf("write diagnostics: %v", err)
	}
	if _, err := LoadDiagnostics(path); err == nil {
		t.Fatal("expected error for invalid schema_version")
	}
}
