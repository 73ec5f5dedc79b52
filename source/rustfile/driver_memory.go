package rustfile

import (
	"context"

	"github.com/google/uuid"

	"fixerrors/internal/document"
)

// MemoryDriver serves a fixed buffer instead of touching the filesystem.
// Tests and the examples feed the pipeline through it.
type MemoryDriver struct {
	cfg     Config
	Content []byte
}

func (d *MemoryDriver) Configure(config Config) error {
	if err := config.validate(); err != nil {
		return err
	}
	d.cfg = config
	return nil
}

func (d *MemoryDriver) Run(ctx context.Context, emit EmitFunc) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	// stages mutate the document in place; keep the fixture pristine
	return emit(&document.Document{
		ID:      uuid.NewString(),
		Path:    d.cfg.Path,
		Content: append([]byte(nil), d.Content...),
	})
}

func (d *MemoryDriver) Close() error { return nil }
