package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"

	"github.com/month-planner/backend/internal/event"
	"github.com/month-planner/backend/internal/storage"
	"github.com/month-planner/backend/internal/store"
)

func newTestRouter(t *testing.T) *mux.Router {
	t.Helper()

	var n int
	s, err := store.New(storage.NewMemoryStore(), store.WithIDGenerator(func() string {
		n++
		return fmt.Sprintf("id-%d", n)
	}))
	if err != nil {
		t.Fatal(err)
	}

	r := mux.NewRouter()
	r.HandleFunc("/api/events", ListEvents(s)).Methods("GET")
	r.HandleFunc("/api/events", CreateEvent(s)).Methods("POST")
	r.HandleFunc("/api/events/{id}", GetEvent(s)).Methods("GET")
	r.HandleFunc("/api/events/{id}", UpdateEvent(s)).Methods("PUT")
	r.HandleFunc("/api/events/{id}", DeleteEvent(s)).Methods("DELETE")
	return r
}

func do(t *testing.T, r *mux.Router, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestCreateAndGetEvent(t *testing.T) {
	r := newTestRouter(t)

	rec := do(t, r, "POST", "/api/events",
		`{"name":"Standup","date":"2026-09-14","startTime":"09:00","endTime":"09:15","color":"blue"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create status = %d: %s", rec.Code, rec.Body)
	}

	var created event.Event
	if err := json.Unmarshal(rec.Body.Bytes(), &created); err != nil {
		t.Fatal(err)
	}
	if created.ID != "id-1" || created.Name != "Standup" {
		t.Fatalf("created = %+v", created)
	}

	rec = do(t, r, "GET", "/api/events/id-1", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("get status = %d", rec.Code)
	}
	var got event.Event
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatal(err)
	}
	if got.Start() != "09:00" || got.End() != "09:15" {
		t.Fatalf("got %+v", got)
	}
}

func TestCreateEventValidation(t *testing.T) {
	r := newTestRouter(t)

	tests := []struct {
		name string
		body string
	}{
		{"empty name", `{"name":"","date":"2026-09-14","isAllDay":true}`},
		{"missing date", `{"name":"x","isAllDay":true}`},
		{"missing times", `{"name":"x","date":"2026-09-14"}`},
		{"bad color", `{"name":"x","date":"2026-09-14","isAllDay":true,"color":"magenta"}`},
		{"not json", `{{{`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(t, r, "POST", "/api/events", tt.body)
			if rec.Code != http.StatusBadRequest {
				t.Fatalf("status = %d: %s", rec.Code, rec.Body)
			}
		})
	}

	rec := do(t, r, "GET", "/api/events", "")
	if strings.TrimSpace(rec.Body.String()) != "[]" {
		t.Fatalf("refused submissions must not reach the collection: %s", rec.Body)
	}
}

func TestListEventsFilters(t *testing.T) {
	r := newTestRouter(t)

	do(t, r, "POST", "/api/events", `{"name":"sept","date":"2026-09-14","isAllDay":true}`)
	do(t, r, "POST", "/api/events", `{"name":"oct","date":"2026-10-02","isAllDay":true}`)

	tests := []struct {
		query string
		want  int
	}{
		{"", 2},
		{"?date=2026-09-14", 1},
		{"?date=2026-09-15", 0},
		{"?month=2026-10", 1},
	}

	for _, tt := range tests {
		rec := do(t, r, "GET", "/api/events"+tt.query, "")
		if rec.Code != http.StatusOK {
			t.Fatalf("list%s status = %d", tt.query, rec.Code)
		}
		var events []event.Event
		if err := json.Unmarshal(rec.Body.Bytes(), &events); err != nil {
			t.Fatal(err)
		}
		if len(events) != tt.want {
			t.Fatalf("list%s returned %d events, want %d", tt.query, len(events), tt.want)
		}
	}

	rec := do(t, r, "GET", "/api/events?date=nonsense", "")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("bad date filter status = %d", rec.Code)
	}
}

func TestUpdateEvent(t *testing.T) {
	r := newTestRouter(t)

	do(t, r, "POST", "/api/events", `{"name":"Before","date":"2026-09-14","isAllDay":true}`)

	rec := do(t, r, "PUT", "/api/events/id-1",
		`{"name":"After","date":"2026-09-14","startTime":"10:00","endTime":"11:00"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("update status = %d: %s", rec.Code, rec.Body)
	}

	var got event.Event
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatal(err)
	}
	if got.ID != "id-1" || got.Name != "After" || got.IsAllDay() {
		t.Fatalf("got %+v", got)
	}

	rec = do(t, r, "PUT", "/api/events/missing", `{"name":"x","date":"2026-09-14","isAllDay":true}`)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("unknown id status = %d", rec.Code)
	}
}

func TestDeleteEvent(t *testing.T) {
	r := newTestRouter(t)

	do(t, r, "POST", "/api/events", `{"name":"Gone","date":"2026-09-14","isAllDay":true}`)

	rec := do(t, r, "DELETE", "/api/events/id-1", "")
	if rec.Code != http.StatusNoContent {
		t.Fatalf("delete status = %d", rec.Code)
	}

	if rec = do(t, r, "GET", "/api/events/id-1", ""); rec.Code != http.StatusNotFound {
		t.Fatalf("deleted event still present: %d", rec.Code)
	}

	// Deleting again is a quiet no-op.
	if rec = do(t, r, "DELETE", "/api/events/id-1", ""); rec.Code != http.StatusNoContent {
		t.Fatalf("repeated delete status = %d", rec.Code)
	}
}
