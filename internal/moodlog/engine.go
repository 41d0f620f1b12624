// Package moodlog is the entry point the presentation layers use: logging a
// mood, reading a day back, summarising it, and editing or deleting entries
// previously read.
package moodlog

import (
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/Tiliavir/trivial-mood-tracker/internal/calendar"
	"github.com/Tiliavir/trivial-mood-tracker/internal/model"
	"github.com/Tiliavir/trivial-mood-tracker/internal/query"
	"github.com/Tiliavir/trivial-mood-tracker/internal/store"
	"github.com/Tiliavir/trivial-mood-tracker/internal/summary"
)

// ErrEntryNotFound is returned when editing an entry that is no longer in the
// store.
var ErrEntryNotFound = errors.New("entry not found")

// Engine composes the store with the day query and the summarizer.
type Engine struct {
	store  *store.Store
	loc    *time.Location
	now    func() time.Time
	logger *zap.Logger
}

// Option configures an Engine.
type Option func(*Engine)

// WithLocation sets the time zone used to decide which day an entry falls on.
func WithLocation(loc *time.Location) Option {
	return func(e *Engine) {
		if loc != nil {
			e.loc = loc
		}
	}
}

// WithClock replaces time.Now, mainly for tests.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) { e.now = now }
}

// WithLogger sets the logger used for mutation events.
func WithLogger(l *zap.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.logger = l
		}
	}
}

// New returns an engine over s.
func New(s *store.Store, opts ...Option) *Engine {
	e := &Engine{
		store:  s,
		loc:    time.Local,
		now:    time.Now,
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Location returns the engine's time zone.
func (e *Engine) Location() *time.Location { return e.loc }

// Today returns the current date in the engine's time zone.
func (e *Engine) Today() calendar.Date {
	return calendar.DateOf(e.now(), e.loc)
}

// LogMood records mood at the current time.
func (e *Engine) LogMood(mood model.Mood) (*model.Entry, error) {
	return e.LogMoodAt(mood, e.now())
}

// LogMoodAt records mood at the given time. An invalid mood leaves the store
// unchanged.
func (e *Engine) LogMoodAt(mood model.Mood, at time.Time) (*model.Entry, error) {
	if err := mood.Validate(); err != nil {
		return nil, err
	}
	entry := e.store.Append(mood, at)
	e.logger.Debug("mood logged",
		zap.String("id", entry.ID()),
		zap.String("mood", string(mood)),
		zap.Time("captured_at", at))
	return entry, nil
}

// Entry returns the live entry with the given handle.
func (e *Engine) Entry(id string) (*model.Entry, error) {
	entry := e.store.Lookup(id)
	if entry == nil {
		return nil, ErrEntryNotFound
	}
	return entry, nil
}

// All returns every entry in insertion order.
func (e *Engine) All() []*model.Entry {
	return e.store.All()
}

// EntriesForDay returns the entries captured on d, in the order they were
// logged.
func (e *Engine) EntriesForDay(d calendar.Date) []*model.Entry {
	return query.ForDate(e.store, d, e.loc)
}

// EntriesBetween returns the entries captured on any day in [from, to].
func (e *Engine) EntriesBetween(from, to calendar.Date) []*model.Entry {
	return query.Between(e.store, from, to, e.loc)
}

// SummaryForDay counts the moods logged on d.
func (e *Engine) SummaryForDay(d calendar.Date) summary.Summary {
	return summary.Summarize(e.EntriesForDay(d))
}

// SummaryForWeek counts the moods logged in the ISO week containing d and
// returns the week's first and last day.
func (e *Engine) SummaryForWeek(d calendar.Date) (summary.Summary, calendar.Date, calendar.Date) {
	from, to := calendar.WeekRange(d)
	return summary.Summarize(e.EntriesBetween(from, to)), from, to
}

// EditEntryMood changes the mood of an entry still held by the store. The
// capture time is never touched.
func (e *Engine) EditEntryMood(entry *model.Entry, mood model.Mood) error {
	ok, err := e.store.EditMood(entry, mood)
	if !ok {
		return ErrEntryNotFound
	}
	if err != nil {
		return err
	}
	e.logger.Debug("mood edited",
		zap.String("id", entry.ID()),
		zap.String("mood", string(mood)))
	return nil
}

// DeleteEntry removes entry from the store, so later queries no longer return
// it. Deleting an entry that is not in the store is a no-op.
func (e *Engine) DeleteEntry(entry *model.Entry) error {
	if !e.store.Remove(entry) {
		e.logger.Debug("delete of unknown entry ignored")
		return nil
	}
	e.logger.Debug("entry deleted", zap.String("id", entry.ID()))
	return nil
}
