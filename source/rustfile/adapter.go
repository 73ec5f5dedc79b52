package rustfile

import (
	"context"

	"fixerrors/internal/document"
)

type EmitFunc func(*document.Document) error

type Adapter interface {
	Configure(Config) error
	Run(context.Context, EmitFunc) error
	Close() error
}
