package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

type ColorMode string

const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

type LogCfg struct {
	Level string `koanf:"level"`
	JSON  bool   `koanf:"json"`
}

// Diagnostics covers the operator-tunable surface: logging and color.
// The migration itself (target path, rules, sinks) is deliberately out
// of reach of both the file and the environment.
type Diagnostics struct {
	Log   LogCfg    `koanf:"log"`
	Color ColorMode `koanf:"color"`
}

const envPrefix = "FIXERRORS__"

// LoadDiagnostics merges YAML (if present) with env-vars
// (prefix `FIXERRORS__`, delimiter `__`). A missing file is not an error.
func LoadDiagnostics(path string) (Diagnostics, error) {
	k := koanf.New(".")
	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil &&
			!errors.Is(err, fs.ErrNotExist) {
			return Diagnostics{}, err
		}
	}
	// schema version check (only when YAML is present)
	sv := k.String("schema_version")
	if sv != "" && sv != SupportedSchema {
		return Diagnostics{}, fmt.Errorf("diagnostics schema_version %q not supported (want %s)", sv, SupportedSchema)
	}

	// The callback emits `.`-joined keys, so the provider must unflatten
	// on `.`, not on the env var's own `__` separator.
	_ = k.Load(env.Provider(envPrefix, ".", func(s string) string {
		return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, envPrefix)), "__", ".")
	}), nil)

	var cfg Diagnostics
	if err := k.Unmarshal("", &cfg); err != nil {
		return cfg, err
	}
	applyDefaults(&cfg)
	return cfg, nil
}

func applyDefaults(c *Diagnostics) {
	switch c.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		c.Color = ColorAuto
	}
}
