package sink

import (
	"fmt"

	"fixerrors/internal/document"
)

// EmitReceipt is what a sink calls to notify the pipeline that a
// document has been durably written.
type EmitReceipt func(*document.Receipt)

// Adapter is the common behaviour every sink exposes.
type Adapter interface {
	Configure(any) error           // driver-specific config ⇒ struct
	Push(*document.Document) error // consume one document
	Close() error                  // idempotent
}

// ReceiptAware is *optional*; sinks that can confirm a durable write
// simply implement it. The compiler wires the callback if present.
type ReceiptAware interface {
	BindReceipt(EmitReceipt)
}

/*──────── registry ───────*/

type factory = func() Adapter

var reg = map[string]factory{}

func Register(name string, f factory) { reg[name] = f }

func NewAdapter(name string) (Adapter, error) {
	if f, ok := reg[name]; ok {
		return f(), nil
	}
	return nil, fmt.Errorf("unknown sink %q", name)
}
