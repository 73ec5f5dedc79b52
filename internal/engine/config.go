package engine

import "io"

// Config is set by main (or a test). None of it comes from flags or the
// environment, and none of it can reach the target path or the rules.
type Config struct {
	// Dir re-roots the target's relative path. Empty means the process
	// working directory, which is what the shipped binary uses.
	Dir string

	// DiagnosticsYml names the optional operator config; a missing
	// file is fine.
	DiagnosticsYml string

	// Out receives the single confirmation line. Defaults to os.Stdout.
	Out io.Writer
}
