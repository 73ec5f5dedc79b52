package rustfile

import "fmt"

// Factory builds an Adapter (e.g., LocalDriver, MemoryDriver).
type Factory func() Adapter

var registry = map[string]Factory{}

// Register is called from main (or a test) before the pipeline compiles.
func Register(name string, f Factory) {
	registry[name] = f
}

// NewAdapter returns a driver by name ("local", "memory").
func NewAdapter(name string) (Adapter, error) {
	if f, ok := registry[name]; ok {
		return f(), nil
	}
	return nil, fmt.Errorf("rustfile: unsupported driver %q", name)
}
