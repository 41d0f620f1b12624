package calendar

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidDate is returned by ParseDate for malformed input.
var ErrInvalidDate = errors.New("invalid date")

// Layout is the textual form of a Date.
const Layout = "2006-01-02"

// Date is a local calendar date with no time component.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// DateOf returns the calendar date of t as seen in loc.
func DateOf(t time.Time, loc *time.Location) Date {
	if loc != nil {
		t = t.In(loc)
	}
	y, m, d := t.Date()
	return Date{Year: y, Month: m, Day: d}
}

// Today returns the current date in loc.
func Today(loc *time.Location) Date {
	return DateOf(time.Now(), loc)
}

// ParseDate parses a YYYY-MM-DD string.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(Layout, s)
	if err != nil {
		return Date{}, fmt.Errorf("%w %q: expected YYYY-MM-DD", ErrInvalidDate, s)
	}
	return DateOf(t, nil), nil
}

// String formats d as YYYY-MM-DD.
func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
}

// Start returns 00:00:00 of d in loc.
func (d Date) Start(loc *time.Location) time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, location(loc))
}

// AddDays returns the date n days after d (n may be negative).
func (d Date) AddDays(n int) Date {
	return DateOf(time.Date(d.Year, d.Month, d.Day+n, 12, 0, 0, 0, time.UTC), nil)
}

// Before reports whether d is strictly earlier than o.
func (d Date) Before(o Date) bool {
	if d.Year != o.Year {
		return d.Year < o.Year
	}
	if d.Month != o.Month {
		return d.Month < o.Month
	}
	return d.Day < o.Day
}

// Contains reports whether t falls on d in loc.
func (d Date) Contains(t time.Time, loc *time.Location) bool {
	return DateOf(t, loc) == d
}

// WeekRange returns the Monday and Sunday of the ISO week containing d.
func WeekRange(d Date) (Date, Date) {
	// Go's weekday: Sunday=0, Monday=1, …, Saturday=6
	wd := int(d.Start(time.UTC).Weekday())
	if wd == 0 {
		wd = 7 // treat Sunday as 7 (ISO)
	}
	monday := d.AddDays(-(wd - 1))
	return monday, monday.AddDays(6)
}

// ISOWeekLabel returns a label like "2026-W09".
func ISOWeekLabel(d Date) string {
	year, week := d.Start(time.UTC).ISOWeek()
	return fmt.Sprintf("%d-W%02d", year, week)
}

func location(loc *time.Location) *time.Location {
	if loc == nil {
		return time.Local
	}
	return loc
}
