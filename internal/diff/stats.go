// Package diff summarizes how much a rewrite changed a document. The
// numbers only feed debug logging; the migration itself never looks at
// them.
package diff

import (
	"bytes"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// Stats counts inserted and deleted characters between two versions of a
// document.
type Stats struct {
	Inserted int
	Deleted  int
}

// Changed reports whether the two versions differ at all.
func (s Stats) Changed() bool { return s.Inserted > 0 || s.Deleted > 0 }

// Compute diffs before against after.
func Compute(before, after []byte) Stats {
	if bytes.Equal(before, after) {
		return Stats{}
	}
	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMain(string(before), string(after), false)
	diffs = dmp.DiffCleanupSemantic(diffs)

	var s Stats
	for _, d := range diffs {
		switch d.Type {
		case diffmatchpatch.DiffInsert:
			s.Inserted += len(d.Text)
		case diffmatchpatch.DiffDelete:
			s.Deleted += len(d.Text)
		}
	}
	return s
}
