// Package journal owns the ordered collection of mood entries and keeps it
// in sync with a persistence slot.
package journal

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/xolan/vibe/internal/entry"
	"github.com/xolan/vibe/internal/storage"
	"github.com/xolan/vibe/internal/timeutil"
)

var (
	// ErrInvalidDate is returned by Add when the date is not YYYY-MM-DD.
	ErrInvalidDate = errors.New("invalid date")
	// ErrNotLoaded is returned by saves after Load could not read the slot.
	// Writing then would replace data the session never saw.
	ErrNotLoaded = errors.New("journal could not be read, refusing to overwrite it")
)

// LoadResult reports what Load found in the slot.
type LoadResult struct {
	Found       bool                   // The slot held a value
	Malformed   bool                   // The value was not an entry array and was discarded
	Warnings    []storage.ParseWarning // Records skipped while decoding
	Unavailable bool                   // The slot could not be read; saves are refused
}

// Lossy reports whether saving now would drop data that was in the slot.
func (r LoadResult) Lossy() bool {
	return r.Malformed || len(r.Warnings) > 0
}

// Store is the single owner of the entry collection. Entries are kept
// newest-created first and every mutation is saved immediately.
type Store struct {
	mu         sync.Mutex
	slot       storage.Slot
	entries    []entry.Entry
	now        func() time.Time
	logger     *zap.Logger
	unreadable bool
}

// Option configures a Store.
type Option func(*Store)

// WithClock sets the time source used for ids, timestamps and default dates.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		s.now = now
	}
}

// WithLogger sets the logger used for load and save diagnostics.
func WithLogger(logger *zap.Logger) Option {
	return func(s *Store) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// New creates an empty store bound to slot. Call Load to read existing entries.
func New(slot storage.Slot, opts ...Option) *Store {
	s := &Store{
		slot:    slot,
		entries: []entry.Entry{},
		now:     time.Now,
		logger:  zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Add validates and prepends a new entry, then saves the collection.
// An empty date means today's local date. If saving fails the entry stays
// in memory and the error wraps storage.ErrPersistenceUnavailable.
func (s *Store) Add(mood, date, notes string) (entry.Entry, error) {
	m, err := entry.ParseMood(mood)
	if err != nil {
		return entry.Entry{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	date = strings.TrimSpace(date)
	if date == "" {
		date = timeutil.FormatDate(now)
	} else if _, err := timeutil.ParseISODate(date); err != nil {
		return entry.Entry{}, fmt.Errorf("%w: %w", ErrInvalidDate, err)
	}

	e := entry.Entry{
		ID:        s.nextID(now),
		Date:      date,
		Mood:      m,
		Notes:     strings.TrimSpace(notes),
		Timestamp: now.UTC().Truncate(time.Millisecond),
	}

	s.entries = append([]entry.Entry{e}, s.entries...)
	s.logger.Debug("entry added", zap.Int64("id", e.ID), zap.String("mood", string(e.Mood)), zap.String("date", e.Date))

	return e, s.saveLocked()
}

// nextID returns the creation time in milliseconds, bumped past the largest
// existing id so ids stay unique when two entries share a millisecond.
func (s *Store) nextID(now time.Time) int64 {
	id := now.UnixMilli()
	for _, e := range s.entries {
		if e.ID >= id {
			id = e.ID + 1
		}
	}
	return id
}

// DeleteByID removes the entry with the given id and saves.
// A missing id is a no-op and reports false.
func (s *Store) DeleteByID(id int64) (entry.Entry, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, e := range s.entries {
		if e.ID != id {
			continue
		}
		s.entries = append(s.entries[:i:i], s.entries[i+1:]...)
		s.logger.Debug("entry deleted", zap.Int64("id", id))
		return e, true, s.saveLocked()
	}
	return entry.Entry{}, false, nil
}

// Clear removes every entry, saves, and returns how many were removed.
func (s *Store) Clear() (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := len(s.entries)
	s.entries = []entry.Entry{}
	s.logger.Debug("entries cleared", zap.Int("count", n))
	return n, s.saveLocked()
}

// Load replaces the in-memory collection with the slot contents.
// A malformed document leaves the store empty and is reported in the result
// rather than as an error. An unreadable slot also leaves the store empty
// and returns an error wrapping storage.ErrPersistenceUnavailable; the store
// keeps working in memory but refuses to save until a Load succeeds.
func (s *Store) Load() (LoadResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries = []entry.Entry{}

	data, ok, err := s.slot.Read()
	s.unreadable = err != nil
	if err != nil {
		s.logger.Warn("failed to read slot", zap.String("slot", s.slot.Name()), zap.Error(err))
		return LoadResult{Unavailable: true}, fmt.Errorf("%w: %w", storage.ErrPersistenceUnavailable, err)
	}
	if !ok {
		return LoadResult{}, nil
	}

	result, err := storage.DecodeEntries(data)
	if err != nil {
		s.logger.Warn("discarding malformed slot", zap.String("slot", s.slot.Name()), zap.Error(err))
		return LoadResult{Found: true, Malformed: true}, nil
	}

	for _, w := range result.Warnings {
		s.logger.Warn("skipped stored record", zap.Int("index", w.Index), zap.String("reason", w.Error))
	}

	s.entries = result.Entries
	s.logger.Debug("entries loaded", zap.String("slot", s.slot.Name()), zap.Int("count", len(s.entries)))
	return LoadResult{Found: true, Warnings: result.Warnings}, nil
}

// Save serializes the whole collection and overwrites the slot.
func (s *Store) Save() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.saveLocked()
}

func (s *Store) saveLocked() error {
	if s.unreadable {
		return fmt.Errorf("%w: %w", storage.ErrPersistenceUnavailable, ErrNotLoaded)
	}
	data, err := storage.EncodeEntries(s.entries)
	if err != nil {
		return fmt.Errorf("failed to encode entries: %w", err)
	}
	if err := s.slot.Write(data); err != nil {
		s.logger.Warn("failed to write slot", zap.String("slot", s.slot.Name()), zap.Error(err))
		return fmt.Errorf("%w: %w", storage.ErrPersistenceUnavailable, err)
	}
	return nil
}

// Entries returns a copy of the collection, newest first.
func (s *Store) Entries() []entry.Entry {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]entry.Entry, len(s.entries))
	copy(out, s.entries)
	return out
}

// Len returns the number of entries.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

// Get returns the entry with the given id.
func (s *Store) Get(id int64) (entry.Entry, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, e := range s.entries {
		if e.ID == id {
			return e, true
		}
	}
	return entry.Entry{}, false
}
