// Package summary aggregates mood entries into frequency tables.
package summary

import (
	"errors"
	"math"
	"sort"

	"github.com/Tiliavir/trivial-mood-tracker/internal/model"
)

// ErrNoEntries is returned by Percent when there is nothing to divide by.
var ErrNoEntries = errors.New("percentage of an empty summary")

// Summary is the per-mood occurrence count of a set of entries.
// The counts always add up to Total.
type Summary struct {
	Counts map[model.Mood]int `json:"counts" yaml:"counts"`
	Total  int                `json:"total" yaml:"total"`
}

// Row is one line of a rendered summary.
type Row struct {
	Mood    model.Mood `json:"mood" yaml:"mood"`
	Glyph   string     `json:"glyph" yaml:"glyph"`
	Count   int        `json:"count" yaml:"count"`
	Percent int        `json:"percent" yaml:"percent"`
}

// Summarize counts the moods in entries. An empty input yields an empty map
// and a zero total; callers treat the empty map as "no data".
func Summarize(entries []*model.Entry) Summary {
	s := Summary{Counts: map[model.Mood]int{}}
	for _, e := range entries {
		s.Counts[e.Mood()]++
	}
	s.Total = len(entries)
	return s
}

// Empty reports whether the summary holds no data.
func (s Summary) Empty() bool { return len(s.Counts) == 0 }

// Percent returns 100*count/total rounded to the nearest integer.
func Percent(count, total int) (int, error) {
	if total <= 0 {
		return 0, ErrNoEntries
	}
	return percent(count, total), nil
}

func percent(count, total int) int {
	return int(math.Round(float64(count) * 100 / float64(total)))
}

// Rows returns one row per observed mood, most frequent first; ties follow
// the mood display order. An empty summary has no rows.
func (s Summary) Rows() []Row {
	if s.Empty() {
		return nil
	}
	rows := make([]Row, 0, len(s.Counts))
	for m, c := range s.Counts {
		rows = append(rows, Row{
			Mood:    m,
			Glyph:   m.Glyph(),
			Count:   c,
			Percent: percent(c, s.Total),
		})
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Count != rows[j].Count {
			return rows[i].Count > rows[j].Count
		}
		return rows[i].Mood.Rank() < rows[j].Mood.Rank()
	})
	return rows
}
