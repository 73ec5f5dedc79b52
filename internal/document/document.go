// Package document defines the unit of work that flows through the
// migration pipeline and the single domain error type.
package document

// Document is one target file held fully in memory. The source adapter
// creates it, rule stages mutate Content in place, sinks consume it.
type Document struct {
	ID      string // correlation id, assigned by the source adapter
	Path    string // target path exactly as the migration spec names it
	Content []byte // whole file content, no encoding conversion
}

// Receipt is what a sink emits once a document's bytes have durably
// reached their destination.
type Receipt struct {
	Path  string
	Bytes int
}
