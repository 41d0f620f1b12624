// Package store holds the process-lifetime collection of mood entries.
package store

import (
	"math/rand"
	"slices"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/Tiliavir/trivial-mood-tracker/internal/model"
)

// Store is the single owner of all entries logged during a process run.
// Entries are kept in insertion order, which is not necessarily timestamp
// order if the clock moves backwards.
type Store struct {
	mu      sync.RWMutex
	entries []*model.Entry
	byID    map[string]*model.Entry
	entropy *rand.Rand
}

// New returns an empty store.
func New() *Store {
	return &Store{
		byID:    map[string]*model.Entry{},
		entropy: rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Append creates and retains a new entry. Identical mood and time pairs are
// kept as separate records.
func (s *Store) Append(mood model.Mood, at time.Time) *model.Entry {
	s.mu.Lock()
	defer s.mu.Unlock()

	e := model.NewEntry(s.newID(at), mood, at)
	s.entries = append(s.entries, e)
	s.byID[e.ID()] = e
	return e
}

// newID must be called with mu held; the entropy source is not safe for
// concurrent use.
func (s *Store) newID(at time.Time) string {
	id, err := ulid.New(idTime(at), s.entropy)
	if err != nil {
		id = ulid.Make()
	}
	return id.String()
}

// idTime clamps at into the millisecond range a ULID can carry. The handle
// only orders entries for display; CapturedAt keeps the real time.
func idTime(at time.Time) uint64 {
	ms := at.UnixMilli()
	if ms < 0 {
		return 0
	}
	if uint64(ms) > ulid.MaxTime() {
		return ulid.MaxTime()
	}
	return uint64(ms)
}

// All returns the entries in insertion order. The returned slice is a copy
// but its elements are the live entries.
func (s *Store) All() []*model.Entry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]*model.Entry(nil), s.entries...)
}

// Len returns the number of entries.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

// Lookup returns the entry with the given handle, or nil.
func (s *Store) Lookup(id string) *model.Entry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.byID[id]
}

// EditMood sets e's mood while holding the write lock. It reports false if e
// is not a member.
func (s *Store) EditMood(e *model.Entry, mood model.Mood) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.indexOf(e) < 0 {
		return false, nil
	}
	return true, e.SetMood(mood)
}

// Remove deletes exactly e from the store. Removing a non-member is a no-op
// and reports false.
func (s *Store) Remove(e *model.Entry) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(e)
	if i < 0 {
		return false
	}
	s.entries = slices.Delete(s.entries, i, i+1)
	delete(s.byID, e.ID())
	return true
}

func (s *Store) indexOf(e *model.Entry) int {
	if e == nil {
		return -1
	}
	for i, cur := range s.entries {
		if cur == e {
			return i
		}
	}
	return -1
}
