package engine

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"fixerrors/internal/document"
	"fixerrors/internal/pipeline"
	"fixerrors/internal/telemetry"
)

type Engine struct {
	runner    *pipeline.Runner
	collector *telemetry.Collector
	target    string
	out       io.Writer
	log       *slog.Logger

	receipt *document.Receipt
}

func (e *Engine) onReceipt(rc *document.Receipt) { e.receipt = rc }

// Run performs the migration once: read the target, apply every rewrite
// stage in order, write the result back, and confirm on stdout. The
// confirmation line is only printed after the write-back succeeded.
func (e *Engine) Run(ctx context.Context) error {
	start := time.Now()
	e.log.Info("migration starting", "target", e.target)
	defer func() { _ = e.runner.Close() }()

	if err := e.runner.Run(ctx); err != nil {
		return err
	}

	fmt.Fprintf(e.out, "Fixed error variants in %s\n", e.target)
	e.logSummary(time.Since(start))
	return nil
}

func (e *Engine) logSummary(elapsed time.Duration) {
	journal := e.runner.Journal()
	for _, rec := range journal.Records() {
		e.log.Debug("stage summary",
			"stage", rec.Stage,
			"matches", rec.Matches,
			"bytes_delta", rec.BytesDelta,
		)
	}

	attrs := []any{
		"target", e.target,
		"matches", journal.TotalMatches(),
		"elapsed", elapsed,
	}
	if e.receipt != nil {
		attrs = append(attrs, "bytes_written", e.receipt.Bytes)
	}
	e.log.Info("migration complete", attrs...)

	if snap, err := e.collector.Snapshot(); err == nil {
		e.log.Debug("run counters", "metrics", snap)
	}
}
