package storage

import (
	"errors"
	"sync"
)

var (
	// ErrPersistenceUnavailable marks a slot that cannot be read or written
	// (disk full, permissions, storage disabled).
	ErrPersistenceUnavailable = errors.New("persistence unavailable")
	// ErrMalformedData is returned when a stored value does not parse as an
	// array of entry records.
	ErrMalformedData = errors.New("malformed persisted data")
)

// Slot is a single named durable location holding the serialized entry
// collection. Reads and writes are whole-value; there are no partial updates.
type Slot interface {
	// Name returns the slot name.
	Name() string
	// Read returns the stored value. ok is false when the slot has never
	// been written.
	Read() (data []byte, ok bool, err error)
	// Write replaces the stored value.
	Write(data []byte) error
}

// Archiver is implemented by slots that can set the stored value aside
// before it is overwritten, so records that failed to decode survive the
// next save.
type Archiver interface {
	Archive() error
}

// MemorySlot keeps the value in process memory.
type MemorySlot struct {
	mu       sync.Mutex
	name     string
	data     []byte
	set      bool
	archived []byte

	// ReadErr and WriteErr, when set, are returned by Read and Write.
	ReadErr  error
	WriteErr error
}

// NewMemorySlot creates an empty in-memory slot.
func NewMemorySlot(name string) *MemorySlot {
	return &MemorySlot{name: name}
}

// Name returns the slot name.
func (s *MemorySlot) Name() string {
	return s.name
}

// Read returns a copy of the stored value.
func (s *MemorySlot) Read() ([]byte, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.ReadErr != nil {
		return nil, false, s.ReadErr
	}
	if !s.set {
		return nil, false, nil
	}
	return append([]byte(nil), s.data...), true, nil
}

// Write stores a copy of data.
func (s *MemorySlot) Write(data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.WriteErr != nil {
		return s.WriteErr
	}
	s.data = append([]byte(nil), data...)
	s.set = true
	return nil
}

// Archive keeps a copy of the current value, readable through Archived.
func (s *MemorySlot) Archive() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.set {
		s.archived = append([]byte(nil), s.data...)
	}
	return nil
}

// Archived returns the value saved by the last Archive, or nil.
func (s *MemorySlot) Archived() []byte {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]byte(nil), s.archived...)
}
