package stdout

import (
	"fmt"
	"io"
	"os"
	"sync/atomic"

	"fixerrors/internal/document"
	"fixerrors/sink"
)

/* ────────── public YAML config ────────── */

type Config struct {
	PrintDocument bool `yaml:"print_document"`  // dump a content preview
	PrintCounter  bool `yaml:"print_counter"`   // prepend seq#
	ValueMaxBytes int  `yaml:"value_max_bytes"` // preview cap, 0 = whole document
}

/* ────────── driver ────────── */

// Never part of the shipped sink list: anything printed here lands on
// stdout, which the confirmation line owns.
type driver struct {
	cfg Config
	out io.Writer
}

var seq uint64

/* ────────── sink.Adapter ────────── */

func (d *driver) Configure(raw any) error {
	c, ok := raw.(Config)
	if !ok {
		return fmt.Errorf("stdout-sink: expected Config, got %T", raw)
	}
	d.cfg = c
	if d.out == nil {
		d.out = os.Stdout
	}
	return nil
}

func (d *driver) Push(doc *document.Document) error {
	if d.cfg.PrintCounter {
		fmt.Fprintf(d.out, "[sink %06d] %s %dB\n", atomic.AddUint64(&seq, 1), doc.Path, len(doc.Content))
	} else {
		fmt.Fprintf(d.out, "[sink] %s %dB\n", doc.Path, len(doc.Content))
	}

	if d.cfg.PrintDocument {
		preview := doc.Content
		if max := d.cfg.ValueMaxBytes; max > 0 && len(preview) > max {
			preview = preview[:max]
		}
		fmt.Fprintf(d.out, "%s\n", preview)
	}
	return nil
}

func (d *driver) Close() error { return nil }

/* ────────── auto-register ────────── */

func init() {
	sink.Register("stdout", func() sink.Adapter { return &driver{} })
}
