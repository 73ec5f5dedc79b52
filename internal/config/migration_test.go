package config

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"fixerrors/internal/spec"
)

func TestLoadMigrationSpec_Embedded(t *testing.T) {
	cfg, err := LoadMigrationSpec()
	if err != nil {
		t.Fatalf("LoadMigrationSpec: %v", err)
	}
	if cfg.SchemaVersion != SupportedSchema {
		t.Fatalf("want schema %s, got %s", SupportedSchema, cfg.SchemaVersion)
	}
	if cfg.Source.Kind != "rustfile" || cfg.Source.Driver != "local" {
		t.Fatalf("unexpected source: %+v", cfg.Source)
	}
	if cfg.Source.Path != "src/graphql.rs" {
		t.Fatalf("want target src/graphql.rs, got %q", cfg.Source.Path)
	}
	if cfg.Enum != "DbError" || cfg.AbsentValue != "None" {
		t.Fatalf("enum=%q absent=%q", cfg.Enum, cfg.AbsentValue)
	}
	if len(cfg.Sinks) != 1 || cfg.Sinks[0] != "rustfile" {
		t.Fatalf("unexpected sinks: %v", cfg.Sinks)
	}
}

// The variant to field-set mapping is the contract of the whole tool;
// any drift here is a behavior change, not a refactor.
func TestLoadMigrationSpec_RuleTable(t *testing.T) {
	cfg, err := LoadMigrationSpec()
	if err != nil {
		t.Fatalf("LoadMigrationSpec: %v", err)
	}
	want := []spec.RuleSpec{
		{Variant: "InternalError", MessageField: "message", AbsentFields: []string{"context", "debug_info"}},
		{Variant: "InvalidData", MessageField: "message", AbsentFields: []string{"field", "expected_format"}},
		{Variant: "SignatureError", MessageField: "message", AbsentFields: []string{"public_key", "signature"}},
	}
	if diff := cmp.Diff(want, cfg.Rules); diff != "" {
		t.Fatalf("rule table mismatch (-want +got):\n%s", diff)
	}
}

// The stdout debug sink must stay out of the shipped spec, or the
// one-line stdout contract breaks.
func TestLoadMigrationSpec_DebugSinkDisabled(t *testing.T) {
	cfg, err := LoadMigrationSpec()
	if err != nil {
		t.Fatalf("LoadMigrationSpec: %v", err)
	}
	for _, s := range cfg.Sinks {
		if s == "stdout" {
			t.Fatal("shipped spec must not list the stdout sink")
		}
	}
	if cfg.Debug.PrintDocument || cfg.Debug.PrintCounter {
		t.Fatalf("debug printing enabled in shipped spec: %+v", cfg.Debug)
	}
}
