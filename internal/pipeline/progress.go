package pipeline

import "sync"

// StageRecord is one journal entry: which stage ran, how many call
// sites it rewrote, and how the document length changed.
type StageRecord struct {
	Stage      string
	Matches    int
	BytesDelta int
}

// Journal collects stage records in application order. The run summary
// drains it once the pass is over.
type Journal struct {
	mu      sync.Mutex
	records []StageRecord
}

func NewJournal() *Journal { return &Journal{} }

func (j *Journal) Record(stage string, matches, bytesDelta int) {
	j.mu.Lock()
	j.records = append(j.records, StageRecord{Stage: stage, Matches: matches, BytesDelta: bytesDelta})
	j.mu.Unlock()
}

func (j *Journal) Reset() {
	j.mu.Lock()
	j.records = j.records[:0]
	j.mu.Unlock()
}

// Records returns a copy in application order.
func (j *Journal) Records() []StageRecord {
	j.mu.Lock()
	defer j.mu.Unlock()
	return append([]StageRecord{}, j.records...)
}

// TotalMatches sums rewrites across all stages of the last run.
func (j *Journal) TotalMatches() int {
	j.mu.Lock()
	defer j.mu.Unlock()
	n := 0
	for _, rec := range j.records {
		n += rec.Matches
	}
	return n
}
