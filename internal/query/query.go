// Package query selects entries by calendar day.
package query

import (
	"time"

	"github.com/Tiliavir/trivial-mood-tracker/internal/calendar"
	"github.com/Tiliavir/trivial-mood-tracker/internal/model"
)

// Source is anything that can list entries in insertion order.
type Source interface {
	All() []*model.Entry
}

// ForDate returns the entries of src captured on d in loc, in insertion order.
// The result holds the live entries, not copies, so mood edits made through it
// are visible to every holder. Removing elements from the result does not
// affect src.
func ForDate(src Source, d calendar.Date, loc *time.Location) []*model.Entry {
	var out []*model.Entry
	for _, e := range src.All() {
		if d.Contains(e.CapturedAt(), loc) {
			out = append(out, e)
		}
	}
	return out
}

// Between returns the entries captured on any day in [from, to] inclusive.
func Between(src Source, from, to calendar.Date, loc *time.Location) []*model.Entry {
	var out []*model.Entry
	for _, e := range src.All() {
		d := calendar.DateOf(e.CapturedAt(), loc)
		if !d.Before(from) && !to.Before(d) {
			out = append(out, e)
		}
	}
	return out
}
