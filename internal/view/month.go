// Package view builds the render model for the month calendar page.
package view

import (
	"sort"
	"time"

	"github.com/month-planner/backend/internal/dategrid"
	"github.com/month-planner/backend/internal/event"
)

// Month is the render model for one visible month.
type Month struct {
	Title string // header label, e.g. "September 2026"
	Value string // the ?month= form of the visible month, "2026-09"
	Prev  string // month value one month back
	Next  string // month value one month forward
	Cells []DayCell
}

// DayCell is the render model for one date in the grid.
type DayCell struct {
	Date         time.Time
	DayNumber    int
	WeekdayLabel string // weekday abbreviation; set only on the first displayed week
	CurrentMonth bool
	Past         bool
	Today        bool
	Events       []event.Event // the day's events in display order
}

// BuildMonth assembles the month grid for the month containing visible.
// Cells outside the visible month are flagged, and a cell is Past when its
// date is strictly before the day preceding today. That boundary means
// yesterday itself is not dimmed; it matches the shipped behavior and is kept
// deliberately.
func BuildMonth(visible, today time.Time, weekStart time.Weekday, events []event.Event) Month {
	m := Month{
		Title: visible.Format("January 2006"),
		Value: visible.Format("2006-01"),
		Prev:  dategrid.StartOfMonth(visible).AddDate(0, -1, 0).Format("2006-01"),
		Next:  dategrid.StartOfMonth(visible).AddDate(0, 1, 0).Format("2006-01"),
	}

	cutoff := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, today.Location()).AddDate(0, 0, -1)

	for i, d := range dategrid.Cells(visible, weekStart) {
		cell := DayCell{
			Date:         d,
			DayNumber:    d.Day(),
			CurrentMonth: d.Month() == visible.Month() && d.Year() == visible.Year(),
			Past:         d.Before(cutoff),
			Today:        event.SameDay(d, today),
			Events:       SortDayEvents(filterDay(events, d)),
		}
		if i < 7 {
			cell.WeekdayLabel = d.Format("Mon")
		}
		m.Cells = append(m.Cells, cell)
	}

	return m
}

// SortDayEvents returns the day's events in display order: all-day events
// first, then timed events ascending by start time. Ties keep collection
// order.
func SortDayEvents(events []event.Event) []event.Event {
	sorted := make([]event.Event, len(events))
	copy(sorted, events)

	sort.SliceStable(sorted, func(i, j int) bool {
		a, aTimed := sorted[i].Timing.(event.Timed)
		b, bTimed := sorted[j].Timing.(event.Timed)
		switch {
		case !aTimed && !bTimed:
			return false
		case !aTimed:
			return true
		case !bTimed:
			return false
		default:
			return a.Start.SortKey() < b.Start.SortKey()
		}
	})

	return sorted
}

func filterDay(events []event.Event, d time.Time) []event.Event {
	var day []event.Event
	for _, evt := range events {
		if event.SameDay(evt.Date, d) {
			day = append(day, evt)
		}
	}
	return day
}
