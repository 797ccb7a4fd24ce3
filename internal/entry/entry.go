// Package entry defines the mood journal record and the closed set of moods.
package entry

import "time"

// DateLayout is the calendar date format stored in Entry.Date.
const DateLayout = "2006-01-02"

// Entry represents a single mood journal record.
// Entries are created once and never edited; removal is whole-record.
type Entry struct {
	ID        int64     `json:"id"`
	Date      string    `json:"date"`
	Mood      Mood      `json:"mood"`
	Notes     string    `json:"notes"`
	Timestamp time.Time `json:"timestamp"`
}

// HasNotes reports whether the entry carries a non-empty note.
func (e Entry) HasNotes() bool {
	return e.Notes != ""
}
