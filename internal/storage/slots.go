package storage

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log"

	"github.com/month-planner/backend/internal/event"
)

// EventsSlot is the key under which the event collection is persisted.
const EventsSlot = "EVENTS"

// SlotRepository persists the event collection as a single JSON document in
// the slots table. It only mirrors the store's collection; it never mutates
// it independently.
type SlotRepository struct {
	db *DB
}

// NewSlotRepository creates a slot repository over the given database.
func NewSlotRepository(db *DB) *SlotRepository {
	return &SlotRepository{db: db}
}

// Load reads the persisted collection. An absent slot yields an empty
// collection; so does a malformed one, since stale persisted state must never
// keep the application from starting.
func (r *SlotRepository) Load() ([]event.Event, error) {
	var raw string
	err := r.db.QueryRow("SELECT value FROM slots WHERE key = ?", EventsSlot).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading events slot: %w", err)
	}

	var events []event.Event
	if err := json.Unmarshal([]byte(raw), &events); err != nil {
		log.Printf("Events slot is malformed, starting with an empty collection: %v", err)
		return nil, nil
	}
	return events, nil
}

// Save overwrites the slot with the full collection.
func (r *SlotRepository) Save(events []event.Event) error {
	if events == nil {
		events = []event.Event{}
	}

	raw, err := json.Marshal(events)
	if err != nil {
		return fmt.Errorf("encoding events: %w", err)
	}

	_, err = r.db.Exec(`
		INSERT INTO slots (key, value, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP
	`, EventsSlot, string(raw))
	if err != nil {
		return fmt.Errorf("writing events slot: %w", err)
	}
	return nil
}
