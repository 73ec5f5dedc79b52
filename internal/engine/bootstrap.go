package engine

import (
	"context"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/google/uuid"

	"fixerrors/internal/config"
	"fixerrors/internal/logging"
	"fixerrors/internal/pipeline"
	"fixerrors/internal/telemetry"
)

// Bootstrap assembles a ready-to-run engine from the embedded migration
// spec and the optional diagnostics file.
func Bootstrap(ctx context.Context, cfg Config) (*Engine, error) {
	// 1. diagnostics, then logging
	diag, err := config.LoadDiagnostics(cfg.DiagnosticsYml)
	if err != nil {
		return nil, fmt.Errorf("diagnostics: %w", err)
	}
	logging.Configure(logging.Options{Level: diag.Log.Level, JSON: diag.Log.JSON})
	applyColorMode(diag.Color)

	// 2. migration spec
	mig, err := config.LoadMigrationSpec()
	if err != nil {
		return nil, fmt.Errorf("spec: %w", err)
	}

	// 3. pipeline runner + metrics
	collector := telemetry.NewCollector()
	runner, err := pipeline.Compile(mig, pipeline.Options{Dir: cfg.Dir, Metrics: collector})
	if err != nil {
		return nil, fmt.Errorf("pipeline: %w", err)
	}

	out := cfg.Out
	if out == nil {
		out = os.Stdout
	}

	e := &Engine{
		runner:    runner,
		collector: collector,
		target:    mig.Source.Path,
		out:       out,
		log:       logging.L().With("run", uuid.NewString()),
	}
	runner.SubscribeReceipt(e.onReceipt)
	return e, nil
}

func applyColorMode(mode config.ColorMode) {
	switch mode {
	case config.ColorAlways:
		color.NoColor = false
	case config.ColorNever:
		color.NoColor = true
	}
	// auto keeps the package's own tty detection
}
