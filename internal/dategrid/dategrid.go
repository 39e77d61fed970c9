// Package dategrid computes the sequence of cell dates for a month view.
package dategrid

import "time"

// Cells returns every date shown in the month grid for the month containing
// ref: full weeks from the week holding the 1st of the month through the week
// holding its last day. The result length is always a multiple of 7.
func Cells(ref time.Time, weekStart time.Weekday) []time.Time {
	first := StartOfMonth(ref)
	last := first.AddDate(0, 1, -1)

	start := StartOfWeek(first, weekStart)
	end := StartOfWeek(last, weekStart).AddDate(0, 0, 6)

	var cells []time.Time
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		cells = append(cells, d)
	}
	return cells
}

// StartOfMonth returns midnight on the first day of ref's month.
func StartOfMonth(ref time.Time) time.Time {
	return time.Date(ref.Year(), ref.Month(), 1, 0, 0, 0, 0, ref.Location())
}

// StartOfWeek returns midnight on the most recent weekStart day at or before ref.
func StartOfWeek(ref time.Time, weekStart time.Weekday) time.Time {
	day := time.Date(ref.Year(), ref.Month(), ref.Day(), 0, 0, 0, 0, ref.Location())
	offset := (int(day.Weekday()) - int(weekStart) + 7) % 7
	return day.AddDate(0, 0, -offset)
}
