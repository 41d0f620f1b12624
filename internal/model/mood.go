// Package model defines the mood log data types.
package model

import (
	"errors"
	"fmt"
	"strings"
)

// Mood is one symbol from the fixed mood set.
type Mood string

const (
	Happy   Mood = "happy"
	Sad     Mood = "sad"
	Angry   Mood = "angry"
	Excited Mood = "excited"
	Tired   Mood = "tired"
	Scared  Mood = "scared"
	Neutral Mood = "neutral"
	Loving  Mood = "loving"
	Crying  Mood = "crying"
)

// ErrInvalidMood is returned when a value is not part of the mood set.
var ErrInvalidMood = errors.New("invalid mood")

// moodOrder is the display order used by pickers and summaries.
var moodOrder = []Mood{Happy, Sad, Angry, Excited, Tired, Scared, Neutral, Loving, Crying}

var glyphs = map[Mood]string{
	Happy:   "😊",
	Sad:     "😢",
	Angry:   "😡",
	Excited: "🤩",
	Tired:   "😴",
	Scared:  "😱",
	Neutral: "😐",
	Loving:  "😍",
	Crying:  "😭",
}

// Moods returns the mood set in display order.
func Moods() []Mood {
	return append([]Mood(nil), moodOrder...)
}

// Valid reports whether m is part of the mood set.
func (m Mood) Valid() bool {
	_, ok := glyphs[m]
	return ok
}

// Validate returns an ErrInvalidMood error naming m if m is not valid.
func (m Mood) Validate() error {
	if m.Valid() {
		return nil
	}
	return invalidMood(string(m))
}

// Glyph returns the emoji conventionally shown for m, or "" if m is invalid.
func (m Mood) Glyph() string {
	return glyphs[m]
}

// Rank returns m's position in the display order, or -1 if m is invalid.
func (m Mood) Rank() int {
	for i, o := range moodOrder {
		if o == m {
			return i
		}
	}
	return -1
}

func (m Mood) String() string { return string(m) }

// ParseMood accepts a mood name (case-insensitive) or its glyph.
func ParseMood(s string) (Mood, error) {
	v := strings.TrimSpace(s)
	if m := Mood(strings.ToLower(v)); m.Valid() {
		return m, nil
	}
	for m, g := range glyphs {
		if g == v {
			return m, nil
		}
	}
	return "", invalidMood(s)
}

func invalidMood(v string) error {
	return fmt.Errorf("%w %q (want one of %s)", ErrInvalidMood, v, moodNames())
}

func moodNames() string {
	names := make([]string, len(moodOrder))
	for i, m := range moodOrder {
		names[i] = string(m)
	}
	return strings.Join(names, ", ")
}
