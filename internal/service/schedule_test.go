package service

import (
	"context"
	"reflect"
	"testing"
	"time"

	"clinicdesk/internal/domain"
)

func TestAvailableDatesMatchWeekdays(t *testing.T) {
	env := newTestEnv()
	doctorID := env.createDoctor(t,
		domain.AvailabilityDTO{Day: "Monday", StartTime: "09:00", EndTime: "17:00"},
		domain.AvailabilityDTO{Day: "Wednesday", StartTime: "09:00", EndTime: "13:00"},
	)

	days, err := env.schedule.AvailableDates(context.Background(), doctorID)
	if err != nil {
		t.Fatalf("AvailableDates: %v", err)
	}

	want := 0
	now := time.Now()
	for i := 0; i < 14; i++ {
		switch now.AddDate(0, 0, i).Weekday() {
		case time.Monday, time.Wednesday:
			want++
		}
	}
	if len(days) != want {
		t.Fatalf("got %d dates, want %d", len(days), want)
	}

	last := ""
	for _, day := range days {
		if day.Weekday != "Monday" && day.Weekday != "Wednesday" {
			t.Errorf("unexpected weekday %s on %s", day.Weekday, day.Date)
		}
		parsed, err := time.Parse("2006-01-02", day.Date)
		if err != nil {
			t.Fatalf("bad date %q: %v", day.Date, err)
		}
		if parsed.Weekday().String() != day.Weekday {
			t.Errorf("date %s is a %s, labeled %s", day.Date, parsed.Weekday(), day.Weekday)
		}
		if day.Date <= last {
			t.Errorf("dates out of order: %s after %s", day.Date, last)
		}
		last = day.Date
	}
}

func TestAvailableDatesEmptyWithoutWindows(t *testing.T) {
	env := newTestEnv()
	doctorID := env.createDoctor(t)

	days, err := env.schedule.AvailableDates(context.Background(), doctorID)
	if err != nil {
		t.Fatalf("AvailableDates: %v", err)
	}
	if len(days) != 0 {
		t.Fatalf("got %d dates for a doctor with no availability", len(days))
	}
}

func TestUnknownDoctorRendersNothing(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	days, err := env.schedule.AvailableDates(ctx, "missing")
	if err != nil {
		t.Fatalf("AvailableDates: %v", err)
	}
	if len(days) != 0 {
		t.Fatalf("got %d dates for an unknown doctor", len(days))
	}

	slots, err := env.schedule.TimeSlots(ctx, "missing", nextDateOn(t, "Monday"))
	if err != nil {
		t.Fatalf("TimeSlots: %v", err)
	}
	if len(slots) != 0 {
		t.Fatalf("got %d slots for an unknown doctor", len(slots))
	}
}

func TestTimeSlotsCoverWindow(t *testing.T) {
	env := newTestEnv()
	doctorID := env.createDoctor(t,
		domain.AvailabilityDTO{Day: "Monday", StartTime: "09:00", EndTime: "11:00"},
	)
	date := nextDateOn(t, "Monday")

	slots, err := env.schedule.TimeSlots(context.Background(), doctorID, date)
	if err != nil {
		t.Fatalf("TimeSlots: %v", err)
	}

	want := []string{"09:00", "09:30", "10:00", "10:30"}
	if !reflect.DeepEqual(slots, want) {
		t.Fatalf("got %v, want %v", slots, want)
	}

	// pure derivation, same input yields same output
	again, err := env.schedule.TimeSlots(context.Background(), doctorID, date)
	if err != nil {
		t.Fatalf("TimeSlots again: %v", err)
	}
	if !reflect.DeepEqual(again, slots) {
		t.Fatalf("second call differs: %v vs %v", again, slots)
	}
}

func TestTimeSlotsUsesFirstMatchingWindow(t *testing.T) {
	env := newTestEnv()
	doctorID := env.createDoctor(t,
		domain.AvailabilityDTO{Day: "Tuesday", StartTime: "09:00", EndTime: "10:00"},
		domain.AvailabilityDTO{Day: "Tuesday", StartTime: "14:00", EndTime: "16:00"},
	)

	slots, err := env.schedule.TimeSlots(context.Background(), doctorID, nextDateOn(t, "Tuesday"))
	if err != nil {
		t.Fatalf("TimeSlots: %v", err)
	}
	want := []string{"09:00", "09:30"}
	if !reflect.DeepEqual(slots, want) {
		t.Fatalf("got %v, want %v", slots, want)
	}
}

func TestTimeSlotsLateEveningWindow(t *testing.T) {
	env := newTestEnv()
	// the window end falls between the last on-grid slot and midnight,
	// so the step past 23:30 wraps to 00:00 and must stop the scan
	doctorID := env.createDoctor(t,
		domain.AvailabilityDTO{Day: "Monday", StartTime: "23:00", EndTime: "23:59"},
	)

	slots, err := env.schedule.TimeSlots(context.Background(), doctorID, nextDateOn(t, "Monday"))
	if err != nil {
		t.Fatalf("TimeSlots: %v", err)
	}
	want := []string{"23:00", "23:30"}
	if !reflect.DeepEqual(slots, want) {
		t.Fatalf("got %v, want %v", slots, want)
	}
}

func TestTimeSlotsEmptyOnUnmatchedWeekday(t *testing.T) {
	env := newTestEnv()
	doctorID := env.createDoctor(t,
		domain.AvailabilityDTO{Day: "Monday", StartTime: "09:00", EndTime: "17:00"},
	)

	slots, err := env.schedule.TimeSlots(context.Background(), doctorID, nextDateOn(t, "Sunday"))
	if err != nil {
		t.Fatalf("TimeSlots: %v", err)
	}
	if len(slots) != 0 {
		t.Fatalf("got %v, want no slots", slots)
	}
}

func TestTimeSlotsInvalidDate(t *testing.T) {
	env := newTestEnv()
	doctorID := env.createDoctor(t,
		domain.AvailabilityDTO{Day: "Monday", StartTime: "09:00", EndTime: "17:00"},
	)

	if _, err := env.schedule.TimeSlots(context.Background(), doctorID, "not-a-date"); err == nil {
		t.Fatal("expected an error for a malformed date")
	}
}

func TestAddMinutes(t *testing.T) {
	cases := []struct {
		clock   string
		minutes int
		want    string
	}{
		{"09:00", 30, "09:30"},
		{"09:45", 30, "10:15"},
		{"23:45", 30, "00:15"},
		{"10:00", 60, "11:00"},
		{"00:00", 0, "00:00"},
	}
	for _, tc := range cases {
		if got := AddMinutes(tc.clock, tc.minutes); got != tc.want {
			t.Errorf("AddMinutes(%q, %d) = %q, want %q", tc.clock, tc.minutes, got, tc.want)
		}
	}
}

func TestOverlaps(t *testing.T) {
	cases := []struct {
		aStart, aEnd, bStart, bEnd string
		want                       bool
	}{
		{"10:00", "10:30", "10:30", "11:00", false}, // touching, back to back
		{"10:30", "11:00", "10:00", "10:30", false},
		{"10:00", "10:30", "10:15", "10:45", true},
		{"10:00", "11:00", "10:15", "10:45", true}, // containment
		{"10:00", "10:30", "09:00", "10:01", true},
		{"10:00", "10:30", "11:00", "11:30", false},
	}
	for _, tc := range cases {
		if got := Overlaps(tc.aStart, tc.aEnd, tc.bStart, tc.bEnd); got != tc.want {
			t.Errorf("Overlaps(%s-%s, %s-%s) = %v, want %v", tc.aStart, tc.aEnd, tc.bStart, tc.bEnd, got, tc.want)
		}
	}
}
