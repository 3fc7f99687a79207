// Package store keeps session records in memory for the lifetime of the
// process. Records capture the inputs of a convolution session so a user
// can flip between configurations without re-typing expressions.
package store

import (
	"fmt"
	"sort"
	"sync"
	"time"
)

// Record is a snapshot of a session's inputs at save time.
type Record struct {
	ID        string    `json:"id"`
	Mode      string    `json:"mode"`
	X         string    `json:"x"`
	H         string    `json:"h"`
	Shift     float64   `json:"shift"`
	Speed     float64   `json:"speed"`
	Style     string    `json:"style,omitempty"`
	Preset    string    `json:"preset,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

type Store struct {
	mu      sync.Mutex
	records map[string]Record
	seq     int
}

func New() *Store {
	return &Store{records: make(map[string]Record)}
}

// Save assigns the record an ID and timestamp and keeps it.
func (s *Store) Save(rec Record) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.seq++
	rec.ID = fmt.Sprintf("%s_%d", rec.Mode, s.seq)
	rec.CreatedAt = time.Now()
	s.records[rec.ID] = rec
	return rec.ID
}

// List returns all records, oldest first.
func (s *Store) List() []Record {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]Record, 0, len(s.records))
	for _, rec := range s.records {
		out = append(out, rec)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out
}

func (s *Store) Load(id string) (Record, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.records[id]
	return rec, ok
}

func (s *Store) Delete(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.records[id]; !ok {
		return false
	}
	delete(s.records, id)
	return true
}

func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.records)
}
