package calendar_test

import (
	"errors"
	"testing"
	"time"

	"github.com/Tiliavir/trivial-mood-tracker/internal/calendar"
)

func TestParseDate(t *testing.T) {
	d, err := calendar.ParseDate("2025-09-30")
	if err != nil {
		t.Fatalf("ParseDate: %v", err)
	}
	want := calendar.Date{Year: 2025, Month: time.September, Day: 30}
	if d != want {
		t.Errorf("ParseDate = %+v, want %+v", d, want)
	}
	if d.String() != "2025-09-30" {
		t.Errorf("String = %q, want %q", d.String(), "2025-09-30")
	}
}

func TestParseDateInvalid(t *testing.T) {
	for _, input := range []string{"", "2025-13-01", "30.09.2025", "2025-09-30T09:00"} {
		if _, err := calendar.ParseDate(input); !errors.Is(err, calendar.ErrInvalidDate) {
			t.Errorf("ParseDate(%q) error = %v, want ErrInvalidDate", input, err)
		}
	}
}

func TestDateOfUsesLocation(t *testing.T) {
	// 23:30 UTC is already the next day in Berlin (UTC+2 in September).
	ts := time.Date(2025, 9, 30, 23, 30, 0, 0, time.UTC)
	berlin := time.FixedZone("CEST", 2*60*60)

	if got := calendar.DateOf(ts, time.UTC).String(); got != "2025-09-30" {
		t.Errorf("DateOf UTC = %q, want %q", got, "2025-09-30")
	}
	if got := calendar.DateOf(ts, berlin).String(); got != "2025-10-01" {
		t.Errorf("DateOf CEST = %q, want %q", got, "2025-10-01")
	}
}

func TestContains(t *testing.T) {
	day := calendar.Date{Year: 2026, Month: time.February, Day: 27}
	a := time.Date(2026, 2, 27, 10, 0, 0, 0, time.UTC)
	b := time.Date(2026, 2, 27, 23, 59, 59, 0, time.UTC)
	c := time.Date(2026, 2, 28, 0, 0, 0, 0, time.UTC)
	d := time.Date(2025, 2, 27, 10, 0, 0, 0, time.UTC)
	e := time.Date(2026, 3, 27, 10, 0, 0, 0, time.UTC)

	for _, in := range []time.Time{a, b} {
		if !day.Contains(in, time.UTC) {
			t.Errorf("Contains(%v): expected %s", in, day)
		}
	}
	for _, out := range []time.Time{c, d, e} {
		if day.Contains(out, time.UTC) {
			t.Errorf("Contains(%v): expected a different day than %s", out, day)
		}
	}
}

func TestAddDays(t *testing.T) {
	tests := []struct {
		from string
		n    int
		want string
	}{
		{"2025-09-30", 1, "2025-10-01"},
		{"2025-01-01", -1, "2024-12-31"},
		{"2024-02-28", 1, "2024-02-29"},
		{"2025-03-30", 0, "2025-03-30"},
	}
	for _, tt := range tests {
		d, _ := calendar.ParseDate(tt.from)
		if got := d.AddDays(tt.n).String(); got != tt.want {
			t.Errorf("%s.AddDays(%d) = %q, want %q", tt.from, tt.n, got, tt.want)
		}
	}
}

func TestBefore(t *testing.T) {
	a, _ := calendar.ParseDate("2025-09-30")
	b, _ := calendar.ParseDate("2025-10-01")
	if !a.Before(b) || b.Before(a) || a.Before(a) {
		t.Errorf("Before ordering wrong for %s and %s", a, b)
	}
}

func TestWeekRange(t *testing.T) {
	// 2026-02-27 is a Friday (week 9).
	fri, _ := calendar.ParseDate("2026-02-27")
	monday, sunday := calendar.WeekRange(fri)

	if monday.String() != "2026-02-23" {
		t.Errorf("WeekRange monday = %v, want 2026-02-23", monday)
	}
	if sunday.String() != "2026-03-01" {
		t.Errorf("WeekRange sunday = %v, want 2026-03-01", sunday)
	}

	sun, _ := calendar.ParseDate("2026-03-01")
	monday, _ = calendar.WeekRange(sun)
	if monday.String() != "2026-02-23" {
		t.Errorf("WeekRange(sunday) monday = %v, want 2026-02-23", monday)
	}
}

func TestISOWeekLabel(t *testing.T) {
	fri, _ := calendar.ParseDate("2026-02-27")
	if got := calendar.ISOWeekLabel(fri); got != "2026-W09" {
		t.Errorf("ISOWeekLabel = %q, want %q", got, "2026-W09")
	}
}
