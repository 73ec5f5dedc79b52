package config

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"

	"fixerrors/internal/spec"
)

const SupportedSchema = "v1"

//go:embed migration.yml
var migrationYML []byte

// LoadMigrationSpec parses the embedded migration spec and validates
// schema_version. The spec ships inside the binary: the target path is a
// constant of the program, not an input.
func LoadMigrationSpec() (spec.File, error) {
	var cfg spec.File
	if err := yaml.Unmarshal(migrationYML, &cfg); err != nil {
		return cfg, fmt.Errorf("migration spec: %w", err)
	}
	if cfg.SchemaVersion == "" {
		cfg.SchemaVersion = SupportedSchema
	}
	if cfg.SchemaVersion != SupportedSchema {
		return cfg, fmt.Errorf("migration schema_version %q not supported (want %q)", cfg.SchemaVersion, SupportedSchema)
	}
	if cfg.AbsentValue == "" {
		cfg.AbsentValue = "None"
	}
	if err := validateMigration(cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func validateMigration(cfg spec.File) error {
	if cfg.Source.Kind == "" || cfg.Source.Driver == "" || cfg.Source.Path == "" {
		return fmt.Errorf("migration spec: source kind, driver and path are all required")
	}
	if cfg.Enum == "" {
		return fmt.Errorf("migration spec: enum is required")
	}
	if len(cfg.Rules) == 0 {
		return fmt.Errorf("migration spec: no rules declared")
	}
	for i, r := range cfg.Rules {
		if r.Variant == "" || r.MessageField == "" {
			return fmt.Errorf("migration spec: rule %d: variant and message_field are required", i)
		}
	}
	if len(cfg.Sinks) == 0 {
		return fmt.Errorf("migration spec: no sinks declared")
	}
	return nil
}
