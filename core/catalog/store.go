package catalog

import (
	"errors"
	"fmt"
	"sync"
)

// ErrUnavailable is returned when a reconciliation run is requested before
// the catalog has finished loading.
var ErrUnavailable = errors.New("catalog unavailable")

// Store is the in-memory, read-only catalog keyed by ISBN.
//
// It starts empty and not ready; Populate or Fail is called exactly once by
// the loading goroutine. Lookups are hash lookups so reconciliation cost
// stays linear in input size regardless of catalog growth.
type Store struct {
	mu         sync.RWMutex
	ready      bool
	loadErr    error
	records    []Record
	index      map[string]*Record
	duplicates []string
}

// NewStore creates an empty, not-yet-ready store.
func NewStore() *Store {
	return &Store{index: make(map[string]*Record)}
}

// Populate installs the loaded records and marks the store ready.
// On duplicate ISBNs the first record wins; the duplicate keys are retained
// as integrity issues rather than silently dropped.
func (s *Store) Populate(records []Record) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.records = records
	s.index = make(map[string]*Record, len(records))
	s.duplicates = nil
	for i := range records {
		key := records[i].ISBN
		if _, exists := s.index[key]; exists {
			s.duplicates = append(s.duplicates, key)
			continue
		}
		s.index[key] = &records[i]
	}
	s.ready = true
	s.loadErr = nil
}

// Fail marks the load as failed. The store stays not ready and Err reports
// the cause, so callers can distinguish "still loading" from "load failed".
func (s *Store) Fail(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loadErr = fmt.Errorf("catalog load failed: %w", err)
}

// Ready reports whether the catalog has been fully loaded.
// A reconciliation run must never execute against a partially-loaded store.
func (s *Store) Ready() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.ready
}

// Err returns the load error, if the load failed.
func (s *Store) Err() error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loadErr
}

// Lookup returns the record whose ISBN equals key exactly.
// The comparison is plain string equality; no normalization is applied here.
func (s *Store) Lookup(key string) (*Record, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	rec, ok := s.index[key]
	return rec, ok
}

// Len returns the number of unique records in the store.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.index)
}

// Records returns all loaded records in load order, including shadowed
// duplicates. Callers must treat the slice as read-only.
func (s *Store) Records() []Record {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.records
}

// Duplicates returns the ISBNs that appeared more than once in the source.
// Duplicate keys are a catalog-integrity problem to surface, not a normal
// condition; lookups resolve to the first-loaded record.
func (s *Store) Duplicates() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.duplicates
}
