// Package service provides the business logic layer for the vibe application.
// It wires configuration, the persistence slot, the journal store and the
// logger together, providing one API for both CLI and TUI frontends.
package service

import (
	"errors"

	"github.com/xolan/vibe/internal/entry"
	"github.com/xolan/vibe/internal/storage"
)

// Common errors for the service layer
var (
	ErrEntryNotFound      = errors.New("entry not found")
	ErrBackupsUnsupported = errors.New("backups are only available for the file backend")
)

// ListResult contains the results of listing entries
type ListResult struct {
	Entries  []entry.Entry
	Warnings []storage.ParseWarning
	Total    int // Number of entries in the journal before filtering
}
