package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/fatih/color"

	"fixerrors/internal/engine"
	"fixerrors/internal/logging"
	"fixerrors/source/rustfile"
)

func main() {
	logging.InitFromEnv()

	// No flags, no arguments: anything on the command line is ignored
	// and the target stays src/graphql.rs under the working directory.
	cfg := engine.Config{
		DiagnosticsYml: "fixerrors.yml", // optional
	}
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	rustfile.Register("local", func() rustfile.Adapter { return &rustfile.LocalDriver{} })

	e, err := engine.Bootstrap(ctx, cfg)
	if err != nil {
		fatal("bootstrap", err)
	}

	if err := e.Run(ctx); err != nil {
		fatal("run", err)
	}
}

func fatal(stage string, err error) {
	logging.L().Error(stage+" failed", "err", err)
	color.New(color.FgRed).Fprintf(os.Stderr, "%s: %v\n", stage, err)
	os.Exit(1)
}
