package store

import (
	"sync"

	"agromon/entities"
)

// Store owns all FieldRecords for the current run. Append-only: no
// update, no remove, no reload from disk. The lock exists because the
// HTTP surface reads while the menu loop writes.
type Store struct {
	mu      sync.RWMutex
	records []entities.FieldRecord
}

func New() *Store { return &Store{} }

// Append assigns the next sequential id (count+1) and stores the
// record. Ids are never reused, even when a later persistence step
// fails.
func (s *Store) Append(candidate entities.FieldRecord) entities.FieldRecord {
	s.mu.Lock()
	defer s.mu.Unlock()
	candidate.ID = len(s.records) + 1
	s.records = append(s.records, candidate)
	return candidate
}

// All returns the records in insertion order. The slice is a copy, so
// callers cannot corrupt internal state through it.
func (s *Store) All() []entities.FieldRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]entities.FieldRecord, len(s.records))
	copy(out, s.records)
	return out
}

func (s *Store) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records)
}
