// Package store owns the in-memory event collection and its mutations.
package store

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/month-planner/backend/internal/event"
)

// ErrNotFound is returned when an edit targets an id that is not in the
// collection.
var ErrNotFound = errors.New("event not found")

// Persister mirrors the collection to durable storage. Load must treat absent
// or unreadable data as an empty collection rather than failing.
type Persister interface {
	Load() ([]event.Event, error)
	Save(events []event.Event) error
}

// Store is the sole owner of the event collection. Every mutation persists
// the full collection synchronously (last writer wins) and then notifies
// subscribers so consumers can re-render.
type Store struct {
	mu        sync.Mutex
	persister Persister
	newID     func() string
	events    []event.Event
	listeners []func()
}

// Option configures a Store.
type Option func(*Store)

// WithIDGenerator overrides the event id generator. Tests use this to supply
// deterministic ids.
func WithIDGenerator(fn func() string) Option {
	return func(s *Store) { s.newID = fn }
}

// New creates a store backed by the given persister and loads the persisted
// collection into memory.
func New(p Persister, opts ...Option) (*Store, error) {
	s := &Store{persister: p, newID: uuid.NewString}
	for _, opt := range opts {
		opt(s)
	}

	events, err := p.Load()
	if err != nil {
		return nil, fmt.Errorf("loading events: %w", err)
	}
	s.events = events

	return s, nil
}

// Subscribe registers fn to run after every successful mutation.
func (s *Store) Subscribe(fn func()) {
	s.mu.Lock()
	s.listeners = append(s.listeners, fn)
	s.mu.Unlock()
}

// Add assigns a fresh id to the draft and appends it to the collection.
func (s *Store) Add(draft event.Draft) (event.Event, error) {
	s.mu.Lock()

	evt := draft.WithID(s.newID())
	next := append(s.snapshotLocked(), evt)
	if err := s.persister.Save(next); err != nil {
		s.mu.Unlock()
		return event.Event{}, fmt.Errorf("persisting events: %w", err)
	}
	s.events = next

	s.mu.Unlock()
	s.notify()
	return evt, nil
}

// Edit replaces the record with the given id by the draft, preserving the id.
// Returns ErrNotFound if no record has that id; the collection is unchanged.
func (s *Store) Edit(id string, draft event.Draft) error {
	s.mu.Lock()

	idx := s.indexLocked(id)
	if idx < 0 {
		s.mu.Unlock()
		return fmt.Errorf("editing event %q: %w", id, ErrNotFound)
	}

	next := s.snapshotLocked()
	next[idx] = draft.WithID(id)
	if err := s.persister.Save(next); err != nil {
		s.mu.Unlock()
		return fmt.Errorf("persisting events: %w", err)
	}
	s.events = next

	s.mu.Unlock()
	s.notify()
	return nil
}

// Delete removes the record with the given id. Deleting an absent id is a
// no-op, so repeated deletes are idempotent.
func (s *Store) Delete(id string) error {
	s.mu.Lock()

	idx := s.indexLocked(id)
	if idx < 0 {
		s.mu.Unlock()
		return nil
	}

	next := s.snapshotLocked()
	next = append(next[:idx], next[idx+1:]...)
	if err := s.persister.Save(next); err != nil {
		s.mu.Unlock()
		return fmt.Errorf("persisting events: %w", err)
	}
	s.events = next

	s.mu.Unlock()
	s.notify()
	return nil
}

// List returns a snapshot copy of the collection.
func (s *Store) List() []event.Event {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

// Get returns the record with the given id, if present.
func (s *Store) Get(id string) (event.Event, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexLocked(id)
	if idx < 0 {
		return event.Event{}, false
	}
	return s.events[idx], true
}

// On returns the events that fall on the same calendar day as date, in
// collection order.
func (s *Store) On(date time.Time) []event.Event {
	s.mu.Lock()
	defer s.mu.Unlock()

	var matched []event.Event
	for _, evt := range s.events {
		if event.SameDay(evt.Date, date) {
			matched = append(matched, evt)
		}
	}
	return matched
}

// Count returns the number of events in the collection.
func (s *Store) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.events)
}

func (s *Store) snapshotLocked() []event.Event {
	snapshot := make([]event.Event, len(s.events))
	copy(snapshot, s.events)
	return snapshot
}

func (s *Store) indexLocked(id string) int {
	for i, evt := range s.events {
		if evt.ID == id {
			return i
		}
	}
	return -1
}

func (s *Store) notify() {
	s.mu.Lock()
	listeners := make([]func(), len(s.listeners))
	copy(listeners, s.listeners)
	s.mu.Unlock()

	for _, fn := range listeners {
		fn()
	}
}
