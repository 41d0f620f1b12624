package moodlog

import (
	"slices"

	"github.com/Tiliavir/trivial-mood-tracker/internal/calendar"
	"github.com/Tiliavir/trivial-mood-tracker/internal/model"
)

// DayView is the list of one day's entries as presented to a user. It holds
// handles into the store without owning them.
type DayView struct {
	engine  *Engine
	date    calendar.Date
	entries []*model.Entry
}

// DayView queries d and returns the result as a presented list.
func (e *Engine) DayView(d calendar.Date) *DayView {
	v := &DayView{engine: e, date: d}
	v.Refresh()
	return v
}

// Date returns the day the view shows.
func (v *DayView) Date() calendar.Date { return v.date }

// Entries returns the entries currently shown.
func (v *DayView) Entries() []*model.Entry {
	return append([]*model.Entry(nil), v.entries...)
}

// Len returns the number of entries shown.
func (v *DayView) Len() int { return len(v.entries) }

// At returns the i-th shown entry.
func (v *DayView) At(i int) *model.Entry { return v.entries[i] }

// Hide drops entry from this view only. The store keeps it, so Refresh or a
// new query brings it back. Use Engine.DeleteEntry to remove it for good.
func (v *DayView) Hide(entry *model.Entry) bool {
	i := slices.Index(v.entries, entry)
	if i < 0 {
		return false
	}
	v.entries = slices.Delete(v.entries, i, i+1)
	return true
}

// Delete removes entry from the store and from this view.
func (v *DayView) Delete(entry *model.Entry) error {
	v.Hide(entry)
	return v.engine.DeleteEntry(entry)
}

// Refresh re-reads the day from the store.
func (v *DayView) Refresh() {
	v.entries = v.engine.EntriesForDay(v.date)
}
