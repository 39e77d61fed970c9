// Package handlers provides HTTP request handlers for the calendar UI and API.
package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/month-planner/backend/internal/api/middleware"
	"github.com/month-planner/backend/internal/event"
	"github.com/month-planner/backend/internal/form"
	"github.com/month-planner/backend/internal/store"
)

// EventRequest is the JSON body for creating or updating an event. The field
// layout mirrors the persisted event records.
type EventRequest struct {
	form.Submission
	Date string `json:"date"`
}

// ListEvents returns the event collection, optionally narrowed to one
// calendar day (?date=2006-01-02) or one month (?month=2006-01).
func ListEvents(s *store.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var events []event.Event

		q := r.URL.Query()
		switch {
		case q.Get("date") != "":
			day, err := time.ParseInLocation("2006-01-02", q.Get("date"), time.Local)
			if err != nil {
				middleware.WriteError(w, http.StatusBadRequest, middleware.ErrBadRequest, "date must be YYYY-MM-DD")
				return
			}
			events = s.On(day)

		case q.Get("month") != "":
			month, err := time.ParseInLocation("2006-01", q.Get("month"), time.Local)
			if err != nil {
				middleware.WriteError(w, http.StatusBadRequest, middleware.ErrBadRequest, "month must be YYYY-MM")
				return
			}
			for _, evt := range s.List() {
				if evt.Date.Year() == month.Year() && evt.Date.Month() == month.Month() {
					events = append(events, evt)
				}
			}

		default:
			events = s.List()
		}

		if events == nil {
			events = []event.Event{}
		}
		writeJSON(w, http.StatusOK, events)
	}
}

// CreateEvent adds a new event to the collection.
func CreateEvent(s *store.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		draft, ok := decodeDraft(w, r)
		if !ok {
			return
		}

		evt, err := s.Add(draft)
		if err != nil {
			log.Printf("Failed to add event: %v", err)
			middleware.WriteError(w, http.StatusInternalServerError, middleware.ErrInternalError, "Failed to save event")
			return
		}

		writeJSON(w, http.StatusCreated, evt)
	}
}

// GetEvent returns a single event by id.
func GetEvent(s *store.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := mux.Vars(r)["id"]

		evt, ok := s.Get(id)
		if !ok {
			middleware.WriteError(w, http.StatusNotFound, middleware.ErrNotFound, "Event not found")
			return
		}
		writeJSON(w, http.StatusOK, evt)
	}
}

// UpdateEvent replaces the event with the given id.
func UpdateEvent(s *store.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := mux.Vars(r)["id"]

		draft, ok := decodeDraft(w, r)
		if !ok {
			return
		}

		if err := s.Edit(id, draft); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				middleware.WriteError(w, http.StatusNotFound, middleware.ErrNotFound, "Event not found")
				return
			}
			log.Printf("Failed to edit event %s: %v", id, err)
			middleware.WriteError(w, http.StatusInternalServerError, middleware.ErrInternalError, "Failed to save event")
			return
		}

		evt, _ := s.Get(id)
		writeJSON(w, http.StatusOK, evt)
	}
}

// DeleteEvent removes the event with the given id. Deleting an id that is
// already gone still returns 204.
func DeleteEvent(s *store.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := mux.Vars(r)["id"]

		if err := s.Delete(id); err != nil {
			log.Printf("Failed to delete event %s: %v", id, err)
			middleware.WriteError(w, http.StatusInternalServerError, middleware.ErrInternalError, "Failed to delete event")
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

// decodeDraft reads and validates an EventRequest body. On failure it writes
// the error response and returns ok=false.
func decodeDraft(w http.ResponseWriter, r *http.Request) (event.Draft, bool) {
	var req EventRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		middleware.WriteError(w, http.StatusBadRequest, middleware.ErrBadRequest, "Invalid request body")
		return event.Draft{}, false
	}

	date, err := parseDate(req.Date)
	if err != nil {
		middleware.WriteError(w, http.StatusBadRequest, middleware.ErrValidation, err.Error())
		return event.Draft{}, false
	}

	draft, err := req.Submission.Draft(date)
	if err != nil {
		middleware.WriteError(w, http.StatusBadRequest, middleware.ErrValidation, err.Error())
		return event.Draft{}, false
	}
	return draft, true
}

// parseDate accepts the persisted RFC 3339 form as well as a plain
// YYYY-MM-DD day.
func parseDate(value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, fmt.Errorf("date is required")
	}
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	if t, err := time.ParseInLocation("2006-01-02", value, time.Local); err == nil {
		return t, nil
	}
	return time.Time{}, fmt.Errorf("date must be RFC 3339 or YYYY-MM-DD")
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("Failed to write JSON response: %v", err)
	}
}
