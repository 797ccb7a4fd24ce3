package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "modernc.org/sqlite"
)

// DatabaseFile is the default SQLite database file name.
const DatabaseFile = "vibe.db"

// DiscardedSuffix names the row that Archive copies a slot value into.
const DiscardedSuffix = ".discarded"

const createSlotsTable = `CREATE TABLE IF NOT EXISTS slots (
	name       TEXT PRIMARY KEY,
	value      TEXT NOT NULL,
	updated_at TEXT NOT NULL
)`

// SQLiteSlot stores the slot value as one row of a key/value table.
type SQLiteSlot struct {
	db   *sql.DB
	name string
	now  func() time.Time
}

// OpenSQLiteSlot opens (creating if needed) the database at path and
// returns the slot with the given name.
func OpenSQLiteSlot(path, name string) (*SQLiteSlot, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(createSlotsTable); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create slots table: %w", err)
	}

	return &SQLiteSlot{db: db, name: name, now: time.Now}, nil
}

// Name returns the slot name.
func (s *SQLiteSlot) Name() string {
	return s.name
}

// Read returns the stored value for the slot name.
func (s *SQLiteSlot) Read() ([]byte, bool, error) {
	var value string
	err := s.db.QueryRow(`SELECT value FROM slots WHERE name = ?`, s.name).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return []byte(value), true, nil
}

// Write upserts the slot row.
func (s *SQLiteSlot) Write(data []byte) error {
	_, err := s.db.Exec(
		`INSERT INTO slots (name, value, updated_at) VALUES (?, ?, ?)
		 ON CONFLICT(name) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		s.name, string(data), s.now().UTC().Format(time.RFC3339),
	)
	return err
}

// Archive copies the current value into the "<name>.discarded" row,
// replacing any earlier copy. An empty slot is left alone.
func (s *SQLiteSlot) Archive() error {
	_, err := s.db.Exec(
		`INSERT INTO slots (name, value, updated_at)
		 SELECT ?, value, ? FROM slots WHERE name = ?
		 ON CONFLICT(name) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		s.name+DiscardedSuffix, s.now().UTC().Format(time.RFC3339), s.name,
	)
	return err
}

// Close closes the underlying database handle.
func (s *SQLiteSlot) Close() error {
	return s.db.Close()
}
