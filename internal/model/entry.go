package model

import (
	"encoding/json"
	"sync"
	"time"
)

// Entry represents a single logged mood.
//
// The capture time is fixed at creation; only the mood can change afterwards.
// Entries are always handled by pointer and the pointer is the entry's
// identity: two entries with the same mood and time are different records.
type Entry struct {
	id         string
	capturedAt time.Time

	mu   sync.RWMutex
	mood Mood
}

// NewEntry creates an entry. It does not validate the mood; callers that take
// user input go through ParseMood first.
func NewEntry(id string, mood Mood, capturedAt time.Time) *Entry {
	return &Entry{id: id, mood: mood, capturedAt: capturedAt}
}

// ID returns the entry's display handle.
func (e *Entry) ID() string { return e.id }

// CapturedAt returns the time the mood was logged.
func (e *Entry) CapturedAt() time.Time { return e.capturedAt }

// Mood returns the current mood.
func (e *Entry) Mood() Mood {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.mood
}

// SetMood replaces the mood. The capture time is left untouched.
func (e *Entry) SetMood(m Mood) error {
	if err := m.Validate(); err != nil {
		return err
	}
	e.mu.Lock()
	e.mood = m
	e.mu.Unlock()
	return nil
}

// EntryView is the serialised form of an Entry.
type EntryView struct {
	ID         string    `json:"id" yaml:"id"`
	Mood       Mood      `json:"mood" yaml:"mood"`
	Glyph      string    `json:"glyph" yaml:"glyph"`
	CapturedAt time.Time `json:"captured_at" yaml:"captured_at"`
}

// View returns a point-in-time copy of the entry's fields.
func (e *Entry) View() EntryView {
	m := e.Mood()
	return EntryView{
		ID:         e.id,
		Mood:       m,
		Glyph:      m.Glyph(),
		CapturedAt: e.capturedAt,
	}
}

// MarshalJSON encodes the entry as its EntryView.
func (e *Entry) MarshalJSON() ([]byte, error) {
	return json.Marshal(e.View())
}
