// Package session keeps the simulations of one user session in memory.
package session

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/cloud-ru/fine-loan-simulator/internal/calculations"
)

// DefaultHistoryLimit is how many simulations History keeps
const DefaultHistoryLimit = 50

// Entry is one simulation kept in the history
type Entry struct {
	ID        string                         `json:"id" yaml:"id"`
	Result    *calculations.SimulationResult `json:"result" yaml:"result"`
	Timestamp time.Time                      `json:"timestamp" yaml:"timestamp"`
}

// Store owns the current simulation and a bounded, most-recent-first history.
// It is safe for concurrent use.
type Store struct {
	mu      sync.RWMutex
	limit   int
	current *calculations.SimulationResult
	history []Entry
}

// NewStore creates a store keeping at most limit entries. A non-positive
// limit falls back to DefaultHistoryLimit.
func NewStore(limit int) *Store {
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}
	return &Store{
		limit:   limit,
		history: make([]Entry, 0, limit),
	}
}

// Add records result as the newest history entry and makes it current.
// The oldest entry is dropped once the limit is exceeded.
func (s *Store) Add(result *calculations.SimulationResult) Entry {
	entry := Entry{
		ID:        uuid.NewString(),
		Result:    result,
		Timestamp: time.Now(),
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	history := make([]Entry, 0, s.limit)
	history = append(history, entry)
	for _, e := range s.history {
		if len(history) == s.limit {
			break
		}
		history = append(history, e)
	}
	s.history = history
	s.current = result

	return entry
}

// SetCurrent replaces the current simulation without touching history.
// nil clears it.
func (s *Store) SetCurrent(result *calculations.SimulationResult) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = result
}

// Current returns the current simulation, if any
func (s *Store) Current() (*calculations.SimulationResult, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current, s.current != nil
}

// History returns a copy of the history, newest first
func (s *Store) History() []Entry {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Entry, len(s.history))
	copy(out, s.history)
	return out
}

// Get looks up a history entry by ID
func (s *Store) Get(id string) (Entry, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, e := range s.history {
		if e.ID == id {
			return e, true
		}
	}
	return Entry{}, false
}

// Len returns the number of history entries
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.history)
}

// Clear empties the history and the current simulation
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.history = make([]Entry, 0, s.limit)
	s.current = nil
}
