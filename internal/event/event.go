// Package event defines the calendar event model shared across the application.
package event

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Color identifies one entry of the fixed event palette.
type Color string

// Palette colors, in display order.
const (
	ColorBlue  Color = "blue"
	ColorRed   Color = "red"
	ColorGreen Color = "green"
)

// Palette returns the selectable colors in display order. The first entry is
// the default for new events.
func Palette() []Color {
	return []Color{ColorBlue, ColorRed, ColorGreen}
}

// Valid reports whether c is a palette color.
func (c Color) Valid() bool {
	for _, p := range Palette() {
		if c == p {
			return true
		}
	}
	return false
}

// TimeOfDay is a wall-clock time in zero-padded 24-hour "HH:MM" form.
type TimeOfDay string

// Valid reports whether t is a well-formed "HH:MM" value.
func (t TimeOfDay) Valid() bool {
	if len(t) != 5 {
		return false
	}
	_, err := time.Parse("15:04", string(t))
	return err == nil
}

// SortKey converts the time to the numeric key used when ordering a day's
// events: "09:30" becomes 9.30. This is not a duration-aware comparison, but
// Valid only admits zero-padded values, so the key orders them correctly.
func (t TimeOfDay) SortKey() float64 {
	f, _ := strconv.ParseFloat(strings.Replace(string(t), ":", ".", 1), 64)
	return f
}

// Timing is the timing variant of an event: either AllDay or Timed. The two
// shapes are mutually exclusive; an all-day event never carries times.
type Timing interface {
	isTiming()
}

// AllDay marks an event as spanning the whole day.
type AllDay struct{}

func (AllDay) isTiming() {}

// Timed carries explicit start and end wall-clock times. End at or after
// start is nudged by the form's time inputs but not stored as an invariant.
type Timed struct {
	Start TimeOfDay
	End   TimeOfDay
}

func (Timed) isTiming() {}

// Event is one calendar entry. ID is assigned by the store on creation and
// immutable afterwards.
type Event struct {
	ID     string
	Name   string
	Date   time.Time
	Color  Color
	Timing Timing
}

// Draft is an event without an identity, as produced by the event form.
type Draft struct {
	Name   string
	Date   time.Time
	Color  Color
	Timing Timing
}

// WithID attaches an identity to the draft.
func (d Draft) WithID(id string) Event {
	return Event{ID: id, Name: d.Name, Date: d.Date, Color: d.Color, Timing: d.Timing}
}

// IsAllDay reports whether the event has the all-day timing shape.
func (e Event) IsAllDay() bool {
	_, ok := e.Timing.(AllDay)
	return ok
}

// Start returns the start time for timed events and "" for all-day events.
func (e Event) Start() TimeOfDay {
	if t, ok := e.Timing.(Timed); ok {
		return t.Start
	}
	return ""
}

// End returns the end time for timed events and "" for all-day events.
func (e Event) End() TimeOfDay {
	if t, ok := e.Timing.(Timed); ok {
		return t.End
	}
	return ""
}

// SameDay reports whether a and b fall on the same calendar day.
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// eventJSON is the flat persisted layout. The date field serializes as an
// RFC 3339 string; startTime/endTime are present only for timed events.
type eventJSON struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Date      time.Time `json:"date"`
	Color     Color     `json:"color"`
	IsAllDay  bool      `json:"isAllDay"`
	StartTime TimeOfDay `json:"startTime,omitempty"`
	EndTime   TimeOfDay `json:"endTime,omitempty"`
}

// MarshalJSON flattens the timing variant into the persisted layout.
func (e Event) MarshalJSON() ([]byte, error) {
	out := eventJSON{ID: e.ID, Name: e.Name, Date: e.Date, Color: e.Color}
	switch t := e.Timing.(type) {
	case AllDay:
		out.IsAllDay = true
	case Timed:
		out.StartTime = t.Start
		out.EndTime = t.End
	default:
		return nil, fmt.Errorf("event %q has no timing", e.ID)
	}
	return json.Marshal(out)
}

// UnmarshalJSON parses the flat layout back into the timing variant,
// rejecting records that violate the all-day/timed shape.
func (e *Event) UnmarshalJSON(data []byte) error {
	var in eventJSON
	if err := json.Unmarshal(data, &in); err != nil {
		return err
	}

	timing, err := NewTiming(in.IsAllDay, in.StartTime, in.EndTime)
	if err != nil {
		return fmt.Errorf("event %q: %w", in.ID, err)
	}

	*e = Event{ID: in.ID, Name: in.Name, Date: in.Date, Color: in.Color, Timing: timing}
	return nil
}

// NewTiming builds the timing variant from the flat field representation.
func NewTiming(allDay bool, start, end TimeOfDay) (Timing, error) {
	if allDay {
		if start != "" || end != "" {
			return nil, fmt.Errorf("all-day event carries start/end times")
		}
		return AllDay{}, nil
	}
	if start == "" || end == "" {
		return nil, fmt.Errorf("timed event is missing start or end time")
	}
	return Timed{Start: start, End: end}, nil
}
