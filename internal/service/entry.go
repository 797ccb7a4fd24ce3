package service

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/xolan/vibe/internal/entry"
	"github.com/xolan/vibe/internal/filter"
	"github.com/xolan/vibe/internal/journal"
	"github.com/xolan/vibe/internal/storage"
)

// EntryService provides operations for managing journal entries
type EntryService struct {
	store    *journal.Store
	slot     storage.Slot
	logger   *zap.Logger
	lastLoad journal.LoadResult

	// archivePending is set while the slot holds data the store dropped
	// on load and that has not been set aside yet.
	archivePending bool
}

// NewEntryService creates a new EntryService
func NewEntryService(store *journal.Store, slot storage.Slot, logger *zap.Logger) *EntryService {
	return &EntryService{
		store:  store,
		slot:   slot,
		logger: logger,
	}
}

// Load (re)reads the journal from the slot. When records were skipped or
// the document was discarded, the slot is archived before the first save
// that would overwrite it.
func (s *EntryService) Load() (journal.LoadResult, error) {
	result, err := s.store.Load()
	s.lastLoad = result
	s.archivePending = result.Lossy()
	return result, err
}

// LastLoad returns the result of the most recent Load.
func (s *EntryService) LastLoad() journal.LoadResult {
	return s.lastLoad
}

// Create adds a new entry. mood is parsed case-insensitively, an empty date
// means today and notes are trimmed.
func (s *EntryService) Create(mood, date, notes string) (entry.Entry, error) {
	if _, err := entry.ParseMood(mood); err != nil {
		return entry.Entry{}, err
	}
	if err := s.beforeSave(false); err != nil {
		return entry.Entry{}, err
	}
	return s.store.Add(mood, date, notes)
}

// List returns entries matching f, newest first. A nil filter matches all.
func (s *EntryService) List(f *filter.Filter) ListResult {
	all := s.store.Entries()
	return ListResult{
		Entries:  filter.FilterEntries(all, f),
		Warnings: s.lastLoad.Warnings,
		Total:    len(all),
	}
}

// Get returns the entry with the given id.
func (s *EntryService) Get(id int64) (entry.Entry, error) {
	e, ok := s.store.Get(id)
	if !ok {
		return entry.Entry{}, fmt.Errorf("%w: %d", ErrEntryNotFound, id)
	}
	return e, nil
}

// Delete removes the entry with the given id after backing up the slot.
func (s *EntryService) Delete(id int64) (entry.Entry, error) {
	if _, ok := s.store.Get(id); !ok {
		return entry.Entry{}, fmt.Errorf("%w: %d", ErrEntryNotFound, id)
	}

	if err := s.beforeSave(true); err != nil {
		return entry.Entry{}, err
	}

	e, ok, err := s.store.DeleteByID(id)
	if err != nil {
		return e, fmt.Errorf("failed to delete entry: %w", err)
	}
	if !ok {
		return entry.Entry{}, fmt.Errorf("%w: %d", ErrEntryNotFound, id)
	}
	return e, nil
}

// Clear removes every entry after backing up the slot and returns the
// number of entries removed.
func (s *EntryService) Clear() (int, error) {
	if err := s.beforeSave(true); err != nil {
		return 0, err
	}

	n, err := s.store.Clear()
	if err != nil {
		return n, fmt.Errorf("failed to clear entries: %w", err)
	}
	return n, nil
}

// Count returns the number of entries in the journal.
func (s *EntryService) Count() int {
	return s.store.Len()
}

// Validate reports the health of the stored slot without modifying it.
func (s *EntryService) Validate() (storage.Health, error) {
	return storage.ValidateSlot(s.slot)
}

// SlotName returns the name of the persistence slot.
func (s *EntryService) SlotName() string {
	return s.slot.Name()
}

// Location returns a human-readable location of the slot.
func (s *EntryService) Location() string {
	if fs, ok := s.slot.(*storage.FileSlot); ok {
		return fs.Path()
	}
	return s.slot.Name()
}

// ListBackups returns the available backups, newest first.
func (s *EntryService) ListBackups() ([]storage.BackupInfo, error) {
	fs, ok := s.slot.(*storage.FileSlot)
	if !ok {
		return nil, ErrBackupsUnsupported
	}
	return storage.ListBackups(fs.Path()), nil
}

// Restore replaces the slot with backup n and reloads the journal.
func (s *EntryService) Restore(n int) (journal.LoadResult, error) {
	fs, ok := s.slot.(*storage.FileSlot)
	if !ok {
		return journal.LoadResult{}, ErrBackupsUnsupported
	}

	if err := storage.RestoreBackup(fs.Path(), n); err != nil {
		return journal.LoadResult{}, fmt.Errorf("failed to restore backup: %w", err)
	}
	s.logger.Info("backup restored", zap.Int("backup", n), zap.String("path", fs.Path()))

	return s.Load()
}

// beforeSave runs ahead of every mutation. A pending archive must succeed,
// otherwise the mutation is refused; the routine backup taken before
// destructive changes only logs failures.
func (s *EntryService) beforeSave(destructive bool) error {
	if s.archivePending && !s.lastLoad.Unavailable {
		if err := s.archive(); err != nil {
			return fmt.Errorf("%w: failed to keep a copy of unreadable records: %w", storage.ErrPersistenceUnavailable, err)
		}
		s.archivePending = false
		return nil
	}
	if destructive {
		s.backup()
	}
	return nil
}

// archive sets the current slot value aside, if the slot supports it.
func (s *EntryService) archive() error {
	a, ok := s.slot.(storage.Archiver)
	if !ok {
		s.logger.Warn("slot cannot archive skipped records", zap.String("slot", s.slot.Name()))
		return nil
	}
	if err := a.Archive(); err != nil {
		return err
	}
	s.logger.Info("archived slot before overwriting skipped records", zap.String("slot", s.slot.Name()))
	return nil
}

// backup copies the slot file aside before a destructive change. Failures
// are logged and do not block the change.
func (s *EntryService) backup() {
	fs, ok := s.slot.(*storage.FileSlot)
	if !ok {
		return
	}
	if err := storage.CreateBackup(fs.Path()); err != nil {
		s.logger.Warn("failed to create backup", zap.String("path", fs.Path()), zap.Error(err))
	}
}
