package rustfile

import (
	"fmt"
	"os"
	"path/filepath"

	"fixerrors/internal/document"
	"fixerrors/internal/logging"
	"fixerrors/sink"
)

// Config tells the driver where the write lands. Dir re-roots relative
// document paths; the shipped binary leaves it empty so the write hits
// the same path the source read.
type Config struct {
	Dir string `yaml:"dir"`
}

type driver struct {
	cfg     Config
	receipt sink.EmitReceipt
}

/* ────────── sink.Adapter ────────── */

func (d *driver) Configure(c any) error {
	cfg, ok := c.(Config)
	if !ok {
		return fmt.Errorf("rustfile-sink: want Config")
	}
	d.cfg = cfg
	return nil
}

// Push overwrites the document's own path with its current content. An
// existing file keeps its permission bits; 0644 applies only on create.
func (d *driver) Push(doc *document.Document) error {
	path := doc.Path
	if d.cfg.Dir != "" && !filepath.IsAbs(path) {
		path = filepath.Join(d.cfg.Dir, path)
	}
	if err := os.WriteFile(path, doc.Content, 0o644); err != nil {
		return document.AccessError("write", doc.Path, err)
	}
	logging.L().Debug("rustfile-sink: wrote target", "doc", doc.ID, "path", doc.Path, "bytes", len(doc.Content))
	if d.receipt != nil {
		d.receipt(&document.Receipt{Path: doc.Path, Bytes: len(doc.Content)})
	}
	return nil
}

func (d *driver) Close() error { return nil }

/* ────────── sink.ReceiptAware ────────── */

func (d *driver) BindReceipt(fn sink.EmitReceipt) { d.receipt = fn }

/* ────────── auto-register ────────── */

func init() {
	sink.Register("rustfile", func() sink.Adapter { return &driver{} })
}
