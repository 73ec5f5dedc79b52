package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"fixerrors/internal/diff"
	"fixerrors/internal/document"
	"fixerrors/internal/logging"
	"fixerrors/internal/telemetry"
	"fixerrors/internal/transform"
	"fixerrors/sink"
	"fixerrors/source/rustfile"
)

// Runner executes one migration pass: the source emits the target
// document, every stage rewrites it in declaration order, every sink
// consumes the result. The whole pass runs on the caller's goroutine.
type Runner struct {
	source  rustfile.Adapter
	stages  []transform.Stage
	sinks   []sink.Adapter
	metrics *telemetry.Collector
	journal *Journal

	mu   sync.Mutex
	subs []func(*document.Receipt)
}

func NewRunner() *Runner { return &Runner{journal: NewJournal()} }

func (r *Runner) SetSource(s rustfile.Adapter)      { r.source = s }
func (r *Runner) AddStage(s transform.Stage)        { r.stages = append(r.stages, s) }
func (r *Runner) AddSink(s sink.Adapter)            { r.sinks = append(r.sinks, s) }
func (r *Runner) SetMetrics(c *telemetry.Collector) { r.metrics = c }

// Journal is the per-stage record of the last Run.
func (r *Runner) Journal() *Journal { return r.journal }

func (r *Runner) SubscribeReceipt(fn func(*document.Receipt)) {
	r.mu.Lock()
	r.subs = append(r.subs, fn)
	r.mu.Unlock()
}

// Receipt fans a sink confirmation out to subscribers. Sinks reach it
// through the compiler's BindReceipt wiring.
func (r *Runner) Receipt(rc *document.Receipt) {
	if r.metrics != nil {
		r.metrics.DocumentsWritten.Inc()
		r.metrics.BytesWritten.Add(float64(rc.Bytes))
	}

	r.mu.Lock()
	handlers := append([]func(*document.Receipt){}, r.subs...)
	r.mu.Unlock()

	for _, fn := range handlers {
		fn(rc)
	}
}

/*──────── document routing ───────*/

func (r *Runner) pushDocument(ctx context.Context, doc *document.Document) error {
	if r.metrics != nil {
		r.metrics.DocumentsRead.Inc()
		r.metrics.BytesRead.Add(float64(len(doc.Content)))
	}

	// Snapshot the input only when someone will see the delta.
	var orig []byte
	debugging := logging.L().Enabled(ctx, slog.LevelDebug)
	if debugging {
		orig = append([]byte(nil), doc.Content...)
	}

	for _, st := range r.stages {
		before := len(doc.Content)
		res, err := st.Apply(ctx, doc)
		if err != nil {
			return fmt.Errorf("stage %s: %w", st.Name(), err)
		}
		r.journal.Record(st.Name(), res.Matches, len(doc.Content)-before)
		if r.metrics != nil {
			r.metrics.RewriteMatches.WithLabelValues(st.Name()).Add(float64(res.Matches))
		}
		logging.L().Debug("pipeline: stage applied", "doc", doc.ID, "stage", st.Name(), "matches", res.Matches)
	}

	if debugging {
		delta := diff.Compute(orig, doc.Content)
		logging.L().Debug("pipeline: document delta",
			"doc", doc.ID, "inserted", delta.Inserted, "deleted", delta.Deleted)
	}

	for _, s := range r.sinks {
		if err := s.Push(doc); err != nil {
			return err
		}
	}
	return nil
}

// Run performs the whole pass and returns once every sink has consumed
// the document. There is no retry; the first error aborts.
func (r *Runner) Run(ctx context.Context) error {
	if r.source == nil {
		return errors.New("runner: no source configured")
	}
	r.journal.Reset()
	return r.source.Run(ctx, func(doc *document.Document) error {
		return r.pushDocument(ctx, doc)
	})
}

// Close releases source and sinks, best effort.
func (r *Runner) Close() error {
	if r.source != nil {
		_ = r.source.Close()
	}
	for _, s := range r.sinks {
		_ = s.Close()
	}
	return nil
}
