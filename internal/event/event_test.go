package event

import (
	"encoding/json"
	"strings"
	"testing"
	"time"
)

func TestTimeOfDayValid(t *testing.T) {
	valid := []TimeOfDay{"00:00", "09:30", "23:59"}
	for _, v := range valid {
		if !v.Valid() {
			t.Errorf("%q should be valid", v)
		}
	}

	invalid := []TimeOfDay{"", "9:30", "24:00", "12:60", "12-30", "12:30:00"}
	for _, v := range invalid {
		if v.Valid() {
			t.Errorf("%q should be invalid", v)
		}
	}
}

func TestTimeOfDaySortKeyOrders(t *testing.T) {
	times := []TimeOfDay{"08:00", "09:00", "09:05", "09:30", "10:00", "21:45"}
	for i := 1; i < len(times); i++ {
		if times[i-1].SortKey() >= times[i].SortKey() {
			t.Fatalf("%q should sort before %q", times[i-1], times[i])
		}
	}
}

func TestEventJSONRoundTrip(t *testing.T) {
	date := time.Date(2026, time.September, 14, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		evt  Event
	}{
		{
			name: "timed",
			evt:  Event{ID: "a1", Name: "Standup", Date: date, Color: ColorBlue, Timing: Timed{Start: "09:00", End: "09:15"}},
		},
		{
			name: "all-day",
			evt:  Event{ID: "b2", Name: "Holiday", Date: date, Color: ColorGreen, Timing: AllDay{}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := json.Marshal(tt.evt)
			if err != nil {
				t.Fatal(err)
			}

			var got Event
			if err := json.Unmarshal(data, &got); err != nil {
				t.Fatal(err)
			}
			if got.ID != tt.evt.ID || got.Name != tt.evt.Name || got.Color != tt.evt.Color {
				t.Fatalf("round trip changed fields: %+v", got)
			}
			if !got.Date.Equal(tt.evt.Date) {
				t.Fatalf("round trip changed date: %v", got.Date)
			}
			if got.Timing != tt.evt.Timing {
				t.Fatalf("round trip changed timing: %#v", got.Timing)
			}
		})
	}
}

func TestMarshalFlatLayout(t *testing.T) {
	date := time.Date(2026, time.September, 14, 0, 0, 0, 0, time.UTC)
	evt := Event{ID: "a1", Name: "Standup", Date: date, Color: ColorBlue, Timing: Timed{Start: "09:00", End: "09:15"}}

	data, err := json.Marshal(evt)
	if err != nil {
		t.Fatal(err)
	}
	s := string(data)
	for _, field := range []string{`"id":"a1"`, `"startTime":"09:00"`, `"endTime":"09:15"`, `"isAllDay":false`} {
		if !strings.Contains(s, field) {
			t.Errorf("marshaled event %s is missing %s", s, field)
		}
	}
}

func TestUnmarshalRejectsShapeViolations(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"all-day with times", `{"id":"x","name":"n","date":"2026-09-14T00:00:00Z","color":"blue","isAllDay":true,"startTime":"09:00","endTime":"10:00"}`},
		{"timed without end", `{"id":"x","name":"n","date":"2026-09-14T00:00:00Z","color":"blue","isAllDay":false,"startTime":"09:00"}`},
		{"timed without any times", `{"id":"x","name":"n","date":"2026-09-14T00:00:00Z","color":"blue","isAllDay":false}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var evt Event
			if err := json.Unmarshal([]byte(tt.body), &evt); err == nil {
				t.Fatalf("expected shape error, got %+v", evt)
			}
		})
	}
}

func TestSameDay(t *testing.T) {
	a := time.Date(2026, time.September, 14, 0, 0, 0, 0, time.UTC)
	b := time.Date(2026, time.September, 14, 23, 59, 59, 0, time.UTC)
	if !SameDay(a, b) {
		t.Fatal("times on the same date should match")
	}
	if SameDay(a, b.AddDate(0, 0, 1)) {
		t.Fatal("different dates should not match")
	}
}

func TestColorValid(t *testing.T) {
	for _, c := range Palette() {
		if !c.Valid() {
			t.Errorf("palette color %q should be valid", c)
		}
	}
	if Color("magenta").Valid() {
		t.Error("non-palette color should be invalid")
	}
	if Palette()[0] != ColorBlue {
		t.Errorf("default color is %q, want blue", Palette()[0])
	}
}
