package storage

import (
	"bytes"
	"fmt"
	"os"
)

const (
	// BackupSuffix is the file extension for backup files
	BackupSuffix = ".bak"
	// MaxBackupCount is the maximum number of backup files to keep
	MaxBackupCount = 3
)

// BackupPath returns the path of backup n for the given slot file.
// Lower numbers are more recent (.bak.1 is the newest copy).
func BackupPath(storagePath string, n int) string {
	return fmt.Sprintf("%s%s.%d", storagePath, BackupSuffix, n)
}

// rotateBackups shifts .bak.1 -> .bak.2 -> .bak.3 and drops the oldest.
// Missing files are skipped.
func rotateBackups(storagePath string) error {
	if err := os.Remove(BackupPath(storagePath, MaxBackupCount)); err != nil && !os.IsNotExist(err) {
		return err
	}

	for i := MaxBackupCount - 1; i >= 1; i-- {
		if err := os.Rename(BackupPath(storagePath, i), BackupPath(storagePath, i+1)); err != nil && !os.IsNotExist(err) {
			return err
		}
	}

	return nil
}

// CreateBackup copies the slot file to .bak.1 after rotating older backups.
// A missing slot file is not an error; there is simply nothing to back up.
// Nothing rotates when .bak.1 already holds the same bytes.
func CreateBackup(storagePath string) error {
	data, err := os.ReadFile(storagePath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	if newest, err := os.ReadFile(BackupPath(storagePath, 1)); err == nil && bytes.Equal(newest, data) {
		return nil
	}

	if err := rotateBackups(storagePath); err != nil {
		return err
	}

	return os.WriteFile(BackupPath(storagePath, 1), data, 0644)
}

// BackupInfo contains information about a backup file
type BackupInfo struct {
	Number int    // The backup number (1 is the newest)
	Path   string // The full path to the backup file
}

// ListBackups returns the existing backups of a slot file, newest first.
func ListBackups(storagePath string) []BackupInfo {
	var backups []BackupInfo
	for i := 1; i <= MaxBackupCount; i++ {
		path := BackupPath(storagePath, i)
		if _, err := os.Stat(path); err == nil {
			backups = append(backups, BackupInfo{Number: i, Path: path})
		}
	}
	return backups
}

// RestoreBackup replaces the slot file with backup n. The current file is
// backed up first, so the restore itself can be reverted.
func RestoreBackup(storagePath string, n int) error {
	if n < 1 || n > MaxBackupCount {
		return fmt.Errorf("invalid backup number %d, must be between 1 and %d", n, MaxBackupCount)
	}

	data, err := os.ReadFile(BackupPath(storagePath, n))
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("backup %d does not exist", n)
		}
		return err
	}

	// Rotation renames the backup we just read, so copy it before rotating.
	if err := CreateBackup(storagePath); err != nil {
		return err
	}

	tmpFile := storagePath + ".tmp"
	if err := os.WriteFile(tmpFile, data, 0644); err != nil {
		return err
	}
	return os.Rename(tmpFile, storagePath)
}
