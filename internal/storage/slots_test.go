package storage

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/month-planner/backend/internal/event"
)

func newTestDB(t *testing.T) *DB {
	t.Helper()

	db, err := NewDB(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { db.Close() })

	if err := RunMigrations(db); err != nil {
		t.Fatal(err)
	}
	return db
}

func TestSlotRoundTrip(t *testing.T) {
	repo := NewSlotRepository(newTestDB(t))

	events := []event.Event{
		{
			ID:     "a1",
			Name:   "Standup",
			Date:   time.Date(2026, time.September, 14, 0, 0, 0, 0, time.UTC),
			Color:  event.ColorBlue,
			Timing: event.Timed{Start: "09:00", End: "09:15"},
		},
		{
			ID:     "b2",
			Name:   "Holiday",
			Date:   time.Date(2026, time.September, 21, 0, 0, 0, 0, time.UTC),
			Color:  event.ColorGreen,
			Timing: event.AllDay{},
		},
	}

	if err := repo.Save(events); err != nil {
		t.Fatal(err)
	}

	got, err := repo.Load()
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 {
		t.Fatalf("loaded %d events, want 2", len(got))
	}
	if got[0].ID != "a1" || got[0].Timing != events[0].Timing {
		t.Fatalf("loaded[0] = %+v", got[0])
	}
	if !got[1].Date.Equal(events[1].Date) {
		t.Fatalf("loaded[1] date = %v", got[1].Date)
	}
}

func TestLoadEmptySlot(t *testing.T) {
	repo := NewSlotRepository(newTestDB(t))

	got, err := repo.Load()
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 0 {
		t.Fatalf("empty slot loaded %d events", len(got))
	}
}

func TestSaveOverwrites(t *testing.T) {
	repo := NewSlotRepository(newTestDB(t))

	first := []event.Event{{ID: "a", Name: "a", Date: time.Now(), Color: event.ColorBlue, Timing: event.AllDay{}}}
	if err := repo.Save(first); err != nil {
		t.Fatal(err)
	}
	if err := repo.Save(nil); err != nil {
		t.Fatal(err)
	}

	got, err := repo.Load()
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 0 {
		t.Fatalf("overwritten slot still holds %d events", len(got))
	}
}

func TestLoadMalformedSlotStartsEmpty(t *testing.T) {
	db := newTestDB(t)
	repo := NewSlotRepository(db)

	_, err := db.Exec(`INSERT INTO slots (key, value) VALUES (?, ?)`, EventsSlot, "{not json")
	if err != nil {
		t.Fatal(err)
	}

	got, err := repo.Load()
	if err != nil {
		t.Fatalf("malformed slot should not fail the load: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("malformed slot loaded %d events", len(got))
	}
}
