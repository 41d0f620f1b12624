package store_test

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Tiliavir/trivial-mood-tracker/internal/calendar"
	"github.com/Tiliavir/trivial-mood-tracker/internal/model"
	"github.com/Tiliavir/trivial-mood-tracker/internal/query"
	"github.com/Tiliavir/trivial-mood-tracker/internal/store"
)

var t0 = time.Date(2025, 9, 30, 9, 0, 0, 0, time.UTC)

func TestAppendKeepsInsertionOrder(t *testing.T) {
	s := store.New()
	a := s.Append(model.Happy, t0)
	b := s.Append(model.Sad, t0.Add(-time.Hour)) // clock went backwards
	c := s.Append(model.Angry, t0.Add(time.Minute))

	all := s.All()
	require.Len(t, all, 3)
	assert.Same(t, a, all[0])
	assert.Same(t, b, all[1])
	assert.Same(t, c, all[2])
	assert.Equal(t, 3, s.Len())
}

func TestAppendDuplicatesAreDistinct(t *testing.T) {
	s := store.New()
	a := s.Append(model.Happy, t0)
	b := s.Append(model.Happy, t0)

	assert.NotSame(t, a, b)
	assert.NotEqual(t, a.ID(), b.ID())
	assert.Equal(t, 2, s.Len())

	require.True(t, s.Remove(a))
	assert.Nil(t, s.Lookup(a.ID()))
	assert.Same(t, b, s.Lookup(b.ID()))
}

func TestAppendOutsideULIDTimeRange(t *testing.T) {
	tests := []struct {
		name string
		at   time.Time
	}{
		{"before epoch", time.Date(1969, 12, 31, 23, 59, 0, 0, time.UTC)},
		{"long before epoch", time.Date(1900, 1, 1, 8, 0, 0, 0, time.UTC)},
		{"after max ulid time", time.Date(10900, 1, 1, 8, 0, 0, 0, time.UTC)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := store.New()
			var e *model.Entry
			require.NotPanics(t, func() { e = s.Append(model.Happy, tt.at) })

			assert.True(t, e.CapturedAt().Equal(tt.at))
			assert.Equal(t, 1, s.Len())
			assert.Same(t, e, s.Lookup(e.ID()))

			day := calendar.DateOf(tt.at, time.UTC)
			got := query.ForDate(s, day, time.UTC)
			require.Len(t, got, 1)
			assert.Same(t, e, got[0])
		})
	}
}

func TestAllReturnsCopy(t *testing.T) {
	s := store.New()
	s.Append(model.Happy, t0)

	all := s.All()
	all[0] = nil

	assert.Equal(t, 1, s.Len())
	assert.NotNil(t, s.All()[0])
}

func TestRemoveNonMemberIsNoop(t *testing.T) {
	s := store.New()
	s.Append(model.Happy, t0)

	stranger := model.NewEntry("x", model.Happy, t0)
	assert.False(t, s.Remove(stranger))
	assert.False(t, s.Remove(nil))
	assert.Equal(t, 1, s.Len())
}

func TestRemoveTwice(t *testing.T) {
	s := store.New()
	e := s.Append(model.Happy, t0)

	assert.True(t, s.Remove(e))
	assert.False(t, s.Remove(e))
	assert.Nil(t, s.Lookup(e.ID()))
	assert.Empty(t, s.All())
}

func TestLookup(t *testing.T) {
	s := store.New()
	e := s.Append(model.Tired, t0)

	assert.Same(t, e, s.Lookup(e.ID()))
	assert.Nil(t, s.Lookup("missing"))
}

func TestEditMood(t *testing.T) {
	s := store.New()
	e := s.Append(model.Happy, t0)

	ok, err := s.EditMood(e, model.Sad)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, model.Sad, e.Mood())
	assert.Equal(t, t0, e.CapturedAt())

	ok, err = s.EditMood(e, "grumpy")
	assert.True(t, ok)
	assert.ErrorIs(t, err, model.ErrInvalidMood)

	s.Remove(e)
	ok, err = s.EditMood(e, model.Happy)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, model.Sad, e.Mood())
}

func TestConcurrentAccess(t *testing.T) {
	s := store.New()
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				e := s.Append(model.Happy, t0)
				_, _ = s.EditMood(e, model.Sad)
				for _, cur := range s.All() {
					_ = cur.Mood()
				}
				if j%2 == 0 {
					s.Remove(e)
				}
			}
		}()
	}
	wg.Wait()
	assert.Equal(t, 8*25, s.Len())
}
