package storage

import (
	"os"
	"path/filepath"
)

const (
	// AppName is the application name used for the data directory
	AppName = "vibe"
	// FileExtension is appended to the slot name to form the file name
	FileExtension = ".json"
)

// FileSlot stores the slot value as a single JSON document on disk.
type FileSlot struct {
	name string
	path string
}

// NewFileSlot creates a slot backed by <dir>/<name>.json.
func NewFileSlot(dir, name string) *FileSlot {
	return &FileSlot{
		name: name,
		path: filepath.Join(dir, name+FileExtension),
	}
}

// Name returns the slot name.
func (s *FileSlot) Name() string {
	return s.name
}

// Path returns the path of the backing file.
func (s *FileSlot) Path() string {
	return s.path
}

// Archive copies the file to the newest backup.
func (s *FileSlot) Archive() error {
	return CreateBackup(s.path)
}

// Read returns the file contents. A missing file is an empty slot.
func (s *FileSlot) Read() ([]byte, bool, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, false, nil
		}
		return nil, false, err
	}
	return data, true, nil
}

// Write replaces the file using the atomic write pattern
// (write to temp file, then rename).
func (s *FileSlot) Write(data []byte) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return err
	}

	tmpFile := s.path + ".tmp"
	file, err := os.OpenFile(tmpFile, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
	if err != nil {
		return err
	}

	if _, err := file.Write(data); err != nil {
		_ = file.Close()
		_ = os.Remove(tmpFile)
		return err
	}

	// Close temp file before rename
	if err := file.Close(); err != nil {
		_ = os.Remove(tmpFile)
		return err
	}

	return os.Rename(tmpFile, s.path)
}
