package repository

import "mortgage-calc/domain"

// Entry pairs an input with the summary computed from it.
type Entry struct {
	Input   domain.MortgageInput
	Summary domain.Summary
}

// HistoryMemory is an in-memory, session-scoped implementation of
// HistoryRepository. Nothing survives the process.
type HistoryMemory struct {
	entries []Entry
}

// NewHistoryMemory creates a new in-memory history.
func NewHistoryMemory() *HistoryMemory {
	return &HistoryMemory{
		entries: []Entry{},
	}
}

// Save appends the summary to the session history.
func (r *HistoryMemory) Save(
	input domain.MortgageInput,
	summary domain.Summary,
) error {
	r.entries = append(r.entries, Entry{Input: input, Summary: summary})
	return nil
}

// Recent returns up to n of the most recently saved entries, oldest first.
// n <= 0 returns everything.
func (r *HistoryMemory) Recent(n int) []Entry {
	if n <= 0 || n > len(r.entries) {
		n = len(r.entries)
	}
	return r.entries[len(r.entries)-n:]
}
