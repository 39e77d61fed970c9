// Package form captures and validates event form submissions.
package form

import (
	"errors"
	"net/url"
	"strings"
	"time"

	"github.com/month-planner/backend/internal/event"
)

// Validation errors. Handlers map these to a refused submission; the form
// stays open and the store is untouched.
var (
	ErrNameRequired = errors.New("name is required")
	ErrTimeRequired = errors.New("start and end times are required for timed events")
	ErrInvalidTime  = errors.New("times must be HH:MM values")
	ErrInvalidColor = errors.New("unknown color")
)

// Submission holds the raw field values of one event form submit, before
// validation. The same shape serves the JSON API and the HTML form.
type Submission struct {
	Name      string `json:"name"`
	AllDay    bool   `json:"isAllDay"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
	Color     string `json:"color"`
}

// FromValues reads a Submission from HTML form values.
func FromValues(v url.Values) Submission {
	return Submission{
		Name:      v.Get("name"),
		AllDay:    v.Get("all-day") != "",
		StartTime: v.Get("start-time"),
		EndTime:   v.Get("end-time"),
		Color:     v.Get("color"),
	}
}

// Draft validates the submission and builds the union-shaped draft bound to
// the given date. All-day submissions discard any submitted times, so an
// all-day record can never carry them.
func (s Submission) Draft(date time.Time) (event.Draft, error) {
	name := strings.TrimSpace(s.Name)
	if name == "" {
		return event.Draft{}, ErrNameRequired
	}

	color := event.Color(s.Color)
	if s.Color == "" {
		color = event.Palette()[0]
	} else if !color.Valid() {
		return event.Draft{}, ErrInvalidColor
	}

	draft := event.Draft{Name: name, Date: date, Color: color}

	if s.AllDay {
		draft.Timing = event.AllDay{}
		return draft, nil
	}

	if s.StartTime == "" || s.EndTime == "" {
		return event.Draft{}, ErrTimeRequired
	}
	start, end := event.TimeOfDay(s.StartTime), event.TimeOfDay(s.EndTime)
	if !start.Valid() || !end.Valid() {
		return event.Draft{}, ErrInvalidTime
	}
	draft.Timing = event.Timed{Start: start, End: end}
	return draft, nil
}
