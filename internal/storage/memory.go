package storage

import (
	"sync"

	"github.com/month-planner/backend/internal/event"
)

// MemoryStore keeps the collection in process memory. It satisfies the same
// contract as SlotRepository and backs tests and ephemeral runs.
type MemoryStore struct {
	mu     sync.Mutex
	events []event.Event
	saves  int
}

// NewMemoryStore creates an empty in-memory persister.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// Load returns a copy of the stored collection.
func (m *MemoryStore) Load() ([]event.Event, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return copyEvents(m.events), nil
}

// Save replaces the stored collection with a copy of events.
func (m *MemoryStore) Save(events []event.Event) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.events = copyEvents(events)
	m.saves++
	return nil
}

// Saves returns how many times Save has been called.
func (m *MemoryStore) Saves() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.saves
}

func copyEvents(events []event.Event) []event.Event {
	out := make([]event.Event, len(events))
	copy(out, events)
	return out
}
