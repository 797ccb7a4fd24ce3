package entry

import (
	"errors"
	"fmt"
	"strings"
)

// Mood is one of the fixed journal moods.
type Mood string

const (
	MoodAmazing    Mood = "amazing"
	MoodGood       Mood = "good"
	MoodOkay       Mood = "okay"
	MoodRough      Mood = "rough"
	MoodStruggling Mood = "struggling"
)

// Moods lists every valid mood, best first. This is also the display order.
var Moods = []Mood{MoodAmazing, MoodGood, MoodOkay, MoodRough, MoodStruggling}

// ErrInvalidMood is returned when no mood was selected or the mood is not
// one of Moods.
var ErrInvalidMood = errors.New("invalid mood")

var moodEmojis = map[Mood]string{
	MoodAmazing:    "😄",
	MoodGood:       "🙂",
	MoodOkay:       "😐",
	MoodRough:      "😔",
	MoodStruggling: "😢",
}

// ParseMood parses a mood name case-insensitively.
// Empty input means no mood was selected and is rejected like an unknown mood.
func ParseMood(input string) (Mood, error) {
	s := strings.ToLower(strings.TrimSpace(input))
	if s == "" {
		return "", fmt.Errorf("%w: please select a mood (%s)", ErrInvalidMood, MoodList())
	}
	m := Mood(s)
	if !m.Valid() {
		return "", fmt.Errorf("%w '%s' (use one of: %s)", ErrInvalidMood, input, MoodList())
	}
	return m, nil
}

// Valid reports whether m belongs to the fixed enumeration.
func (m Mood) Valid() bool {
	_, ok := moodEmojis[m]
	return ok
}

// Emoji returns the face used to render the mood, or "?" for unknown moods.
func (m Mood) Emoji() string {
	if e, ok := moodEmojis[m]; ok {
		return e
	}
	return "?"
}

// Title returns the capitalized mood name.
func (m Mood) Title() string {
	if m == "" {
		return ""
	}
	s := string(m)
	return strings.ToUpper(s[:1]) + s[1:]
}

// Index returns the position of m in Moods, or -1.
func (m Mood) Index() int {
	for i, candidate := range Moods {
		if candidate == m {
			return i
		}
	}
	return -1
}

// MoodList returns the valid moods joined for help and error text.
func MoodList() string {
	names := make([]string, len(Moods))
	for i, m := range Moods {
		names[i] = string(m)
	}
	return strings.Join(names, ", ")
}
