// Package transform defines the stage interface the pipeline runs between
// source and sinks, plus the rule-backed stage the migration is built
// from. All stages are in-process and run on the caller's goroutine.
package transform
