package storage

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"

	"github.com/xolan/vibe/internal/entry"
)

// ParseWarning describes a record that was skipped while decoding.
type ParseWarning struct {
	Index   int    // Position of the record in the stored array (0-based)
	Content string // Raw JSON of the skipped record
	Error   string // Why the record was skipped
}

func (w ParseWarning) String() string {
	return fmt.Sprintf("record %d: %s", w.Index, w.Error)
}

// ReadResult contains the decoded entries and any records that were skipped.
type ReadResult struct {
	Entries  []entry.Entry
	Warnings []ParseWarning
}

// record mirrors entry.Entry with loose field types so a single bad field
// skips one record instead of failing the whole document.
type record struct {
	ID        *int64          `json:"id"`
	Date      string          `json:"date"`
	Mood      string          `json:"mood"`
	Notes     string          `json:"notes"`
	Timestamp json.RawMessage `json:"timestamp"`
}

// TimestampLayout is the stored timestamp format: UTC with exactly three
// fractional digits, as produced by JavaScript's Date.toISOString.
const TimestampLayout = "2006-01-02T15:04:05.000Z"

// storedEntry is the encoded form of an entry. A zero timestamp is written
// as null.
type storedEntry struct {
	ID        int64      `json:"id"`
	Date      string     `json:"date"`
	Mood      entry.Mood `json:"mood"`
	Notes     string     `json:"notes"`
	Timestamp *string    `json:"timestamp"`
}

// EncodeEntries serializes the collection as an indented JSON array with a
// trailing newline. A nil or empty collection encodes as "[]".
func EncodeEntries(entries []entry.Entry) ([]byte, error) {
	out := make([]storedEntry, len(entries))
	for i, e := range entries {
		out[i] = storedEntry{ID: e.ID, Date: e.Date, Mood: e.Mood, Notes: e.Notes}
		if !e.Timestamp.IsZero() {
			ts := e.Timestamp.UTC().Format(TimestampLayout)
			out[i].Timestamp = &ts
		}
	}
	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}

// DecodeEntries parses a stored JSON array of entry records.
// Empty input and "null" decode to an empty collection. A document that is
// not a JSON array returns ErrMalformedData. Records with a missing id, an
// unknown mood, an invalid date or a duplicate id are skipped and reported
// as warnings; order is preserved for the rest.
func DecodeEntries(data []byte) (ReadResult, error) {
	result := ReadResult{Entries: []entry.Entry{}}

	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return result, nil
	}

	var raw []json.RawMessage
	if err := json.Unmarshal(trimmed, &raw); err != nil {
		return result, fmt.Errorf("%w: %w", ErrMalformedData, err)
	}

	seen := make(map[int64]bool, len(raw))
	for i, msg := range raw {
		e, err := decodeRecord(msg)
		if err == nil && seen[e.ID] {
			err = fmt.Errorf("duplicate id %d", e.ID)
		}
		if err != nil {
			result.Warnings = append(result.Warnings, ParseWarning{
				Index:   i,
				Content: string(msg),
				Error:   err.Error(),
			})
			continue
		}
		seen[e.ID] = true
		result.Entries = append(result.Entries, e)
	}

	return result, nil
}

func decodeRecord(msg json.RawMessage) (entry.Entry, error) {
	var r record
	if err := json.Unmarshal(msg, &r); err != nil {
		return entry.Entry{}, fmt.Errorf("invalid record: %w", err)
	}
	if r.ID == nil {
		return entry.Entry{}, fmt.Errorf("missing id")
	}

	mood := entry.Mood(r.Mood)
	if !mood.Valid() {
		return entry.Entry{}, fmt.Errorf("%w '%s'", entry.ErrInvalidMood, r.Mood)
	}

	if _, err := time.Parse(entry.DateLayout, r.Date); err != nil {
		return entry.Entry{}, fmt.Errorf("invalid date '%s'", r.Date)
	}

	var ts time.Time
	if len(r.Timestamp) > 0 && string(r.Timestamp) != "null" {
		if err := json.Unmarshal(r.Timestamp, &ts); err != nil {
			return entry.Entry{}, fmt.Errorf("invalid timestamp: %w", err)
		}
	}

	return entry.Entry{
		ID:        *r.ID,
		Date:      r.Date,
		Mood:      mood,
		Notes:     r.Notes,
		Timestamp: ts.UTC(),
	}, nil
}

// Health summarizes the state of a slot for the validate command.
type Health struct {
	Slot         string
	Exists       bool
	Malformed    bool
	TotalRecords int
	ValidEntries int
	Warnings     []ParseWarning
}

// Healthy reports whether every stored record decoded cleanly.
func (h Health) Healthy() bool {
	return !h.Malformed && len(h.Warnings) == 0
}

// ValidateSlot reads and decodes a slot without modifying it.
// Read failures are wrapped in ErrPersistenceUnavailable.
func ValidateSlot(slot Slot) (Health, error) {
	health := Health{Slot: slot.Name()}

	data, ok, err := slot.Read()
	if err != nil {
		return health, fmt.Errorf("%w: %w", ErrPersistenceUnavailable, err)
	}
	if !ok {
		return health, nil
	}
	health.Exists = true

	result, err := DecodeEntries(data)
	if err != nil {
		health.Malformed = true
		return health, nil
	}

	health.ValidEntries = len(result.Entries)
	health.Warnings = result.Warnings
	health.TotalRecords = health.ValidEntries + len(result.Warnings)
	return health, nil
}
