// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package resolve

import (
	"fmt"
	"sync"
)

// Results is the index-addressed outcome table for one run: one pre-sized
// slot per input title, written exactly once by exactly one worker.
// Snapshot is safe to call while workers are still recording.
type Results struct {
	mu       sync.Mutex
	outcomes []Outcome
	filled   []bool
}

// Entry pairs an outcome with its original input position.
type Entry struct {
	Pos     int
	Outcome Outcome
}

// NewResults returns an empty table sized to n input titles.
func NewResults(n int) *Results {
	return &Results{
		outcomes: make([]Outcome, n),
		filled:   make([]bool, n),
	}
}

// Len returns the table size (the input title count).
func (r *Results) Len() int { return len(r.outcomes) }

// Record stores the outcome for the title at pos. Recording the same
// position twice is a programming error and panics.
func (r *Results) Record(pos int, out Outcome) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.filled[pos] {
		panic(fmt.Sprintf("resolve: position %d recorded twice", pos))
	}
	r.outcomes[pos] = out
	r.filled[pos] = true
}

// Snapshot returns the outcomes recorded so far in ascending position
// order. Positions not yet written are absent. The returned slice is a
// point-in-time copy.
func (r *Results) Snapshot() []Entry {
	r.mu.Lock()
	defer r.mu.Unlock()
	entries := make([]Entry, 0, len(r.outcomes))
	for i, ok := range r.filled {
		if ok {
			entries = append(entries, Entry{Pos: i, Outcome: r.outcomes[i]})
		}
	}
	return entries
}

// Summary tallies recorded outcomes by status.
type Summary struct {
	Resolved int
	NotFound int
	Failed   int
}

// Done returns the number of titles with a recorded outcome.
func (s Summary) Done() int { return s.Resolved + s.NotFound + s.Failed }

// HasFailures reports whether any title failed terminally.
func (s Summary) HasFailures() bool { return s.Failed > 0 }

// Summary tallies the outcomes recorded so far.
func (r *Results) Summary() Summary {
	var s Summary
	for _, e := range r.Snapshot() {
		switch e.Outcome.Status {
		case StatusResolved:
			s.Resolved++
		case StatusNotFound:
			s.NotFound++
		case StatusFailed:
			s.Failed++
		}
	}
	return s
}
