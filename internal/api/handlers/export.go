package handlers

import (
	"log"
	"net/http"
	"time"

	ical "github.com/arran4/golang-ical"

	"github.com/month-planner/backend/internal/event"
	"github.com/month-planner/backend/internal/store"
)

// ExportICS serves the event collection as an iCalendar document. All-day
// events export as DATE values spanning one day; timed events combine the
// event date with their wall-clock times in the server's local zone.
func ExportICS(s *store.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cal := ical.NewCalendar()
		cal.SetMethod(ical.MethodPublish)
		cal.SetProductId("-//Month Planner//EN")

		now := time.Now().UTC()
		for _, evt := range s.List() {
			ve := cal.AddEvent(evt.ID)
			ve.SetDtStampTime(now)
			ve.SetSummary(evt.Name)

			switch t := evt.Timing.(type) {
			case event.Timed:
				ve.SetStartAt(atTime(evt.Date, t.Start))
				ve.SetEndAt(atTime(evt.Date, t.End))
			default:
				ve.SetAllDayStartAt(evt.Date)
				ve.SetAllDayEndAt(evt.Date.AddDate(0, 0, 1))
			}
		}

		w.Header().Set("Content-Type", "text/calendar; charset=utf-8")
		w.Header().Set("Content-Disposition", `attachment; filename="events.ics"`)
		if err := cal.SerializeTo(w); err != nil {
			log.Printf("Failed to serialize calendar export: %v", err)
		}
	}
}

// atTime places an "HH:MM" wall-clock time on the given calendar day.
func atTime(date time.Time, t event.TimeOfDay) time.Time {
	clock, err := time.Parse("15:04", string(t))
	if err != nil {
		return date
	}
	return time.Date(date.Year(), date.Month(), date.Day(),
		clock.Hour(), clock.Minute(), 0, 0, date.Location())
}
