package rustfile

import (
	"context"
	"os"

	"github.com/google/uuid"

	"fixerrors/internal/document"
	"fixerrors/internal/logging"
)

// LocalDriver loads the target file from the local filesystem in a
// single read; the handle is released before the pipeline runs.
type LocalDriver struct {
	cfg Config
}

func (d *LocalDriver) Configure(config Config) error {
	if err := config.validate(); err != nil {
		return err
	}
	d.cfg = config
	return nil
}

func (d *LocalDriver) Run(ctx context.Context, emit EmitFunc) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	data, err := os.ReadFile(d.cfg.resolved())
	if err != nil {
		return document.AccessError("read", d.cfg.Path, err)
	}
	doc := &document.Document{
		ID:      uuid.NewString(),
		Path:    d.cfg.Path,
		Content: data,
	}
	logging.L().Debug("rustfile: loaded target", "doc", doc.ID, "path", doc.Path, "bytes", len(data))
	return emit(doc)
}

func (d *LocalDriver) Close() error { return nil }
